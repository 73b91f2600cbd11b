package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/matt94856/excel-financial-processor/model"
	"github.com/matt94856/excel-financial-processor/pkg/logger"
	"github.com/matt94856/excel-financial-processor/processor"
	"github.com/matt94856/excel-financial-processor/render"
)

const (
	excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	pdfContentType   = "application/pdf"
)

// WorkbookService runs the full pipeline for one upload: read, classify and
// extract, render both artifacts, store them, presign the download URLs.
// Each call owns its own document; the service holds no per-upload state
// and is safe for concurrent requests.
type WorkbookService struct {
	storage *StorageService
	store   *JobStore
	excel   *render.ExcelRenderer
	pdf     *render.PDFRenderer
}

func NewWorkbookService(storage *StorageService) *WorkbookService {
	style := render.DefaultStyle()
	return &WorkbookService{
		storage: storage,
		store:   GetJobStore(),
		excel:   render.NewExcelRenderer(style),
		pdf:     render.NewPDFRenderer(style),
	}
}

// Process handles one uploaded workbook synchronously. The job's status is
// updated as the pipeline advances; any failure marks it failed and returns
// the error.
func (s *WorkbookService) Process(ctx context.Context, job *model.Job, data []byte) error {
	ctx = context.WithValue(ctx, logger.JobIDKey, job.ID)
	s.store.UpdateStatus(job.ID, model.StatusProcessing, "")

	wb, err := processor.ReadWorkbook(job.Filename, bytes.NewReader(data))
	if err != nil {
		return s.fail(ctx, job, fmt.Errorf("read workbook: %w", err))
	}

	doc := processor.Process(wb)
	logger.Info(ctx, "workbook processed",
		"estimates", doc.Summary.TotalEstimates,
		"financial_statements", doc.Summary.TotalFinancialStatements,
		"raw_sheets", doc.Summary.TotalSheets,
		"grand_total", doc.Summary.GrandTotal,
	)

	excelData, err := s.excel.Render(doc)
	if err != nil {
		return s.fail(ctx, job, fmt.Errorf("render excel: %w", err))
	}
	pdfData, err := s.pdf.Render(doc)
	if err != nil {
		return s.fail(ctx, job, fmt.Errorf("render pdf: %w", err))
	}

	excelObject := fmt.Sprintf("%s/%s/processed.xlsx", job.Tenant, job.ID)
	pdfObject := fmt.Sprintf("%s/%s/processed.pdf", job.Tenant, job.ID)

	if err := s.storage.UploadArtifact(ctx, excelObject, excelData, excelContentType); err != nil {
		return s.fail(ctx, job, fmt.Errorf("store excel artifact: %w", err))
	}
	if err := s.storage.UploadArtifact(ctx, pdfObject, pdfData, pdfContentType); err != nil {
		return s.fail(ctx, job, fmt.Errorf("store pdf artifact: %w", err))
	}

	excelURL, err := s.storage.PresignedURL(ctx, excelObject)
	if err != nil {
		return s.fail(ctx, job, fmt.Errorf("presign excel artifact: %w", err))
	}
	pdfURL, err := s.storage.PresignedURL(ctx, pdfObject)
	if err != nil {
		return s.fail(ctx, job, fmt.Errorf("presign pdf artifact: %w", err))
	}

	s.store.Complete(job.ID, doc, excelObject, pdfObject, excelURL, pdfURL)
	logger.Info(ctx, "workbook job completed", "filename", job.Filename)
	return nil
}

// Cleanup removes a job's stored artifacts, best effort.
func (s *WorkbookService) Cleanup(ctx context.Context, job *model.Job) {
	for _, object := range []string{job.ExcelObject, job.PDFObject} {
		if object == "" {
			continue
		}
		if err := s.storage.DeleteArtifact(ctx, object); err != nil {
			logger.Warn(ctx, "failed to delete artifact", "object", object, "error", err)
		}
	}
}

func (s *WorkbookService) fail(ctx context.Context, job *model.Job, err error) error {
	logger.Error(ctx, "workbook job failed", "filename", job.Filename, "error", err)
	s.store.UpdateStatus(job.ID, model.StatusFailed, err.Error())
	return err
}
