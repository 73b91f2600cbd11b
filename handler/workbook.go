package handler

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/matt94856/excel-financial-processor/config"
	"github.com/matt94856/excel-financial-processor/middleware"
	"github.com/matt94856/excel-financial-processor/model"
	"github.com/matt94856/excel-financial-processor/service"
)

type WorkbookHandler struct {
	workbooks *service.WorkbookService
	store     *service.JobStore
	maxBytes  int64
}

func NewWorkbookHandler(workbookSvc *service.WorkbookService, cfg *config.UploadConfig) *WorkbookHandler {
	return &WorkbookHandler{
		workbooks: workbookSvc,
		store:     service.GetJobStore(),
		maxBytes:  cfg.MaxSizeMB * 1024 * 1024,
	}
}

// Upload handles workbook upload and runs the processing pipeline
// synchronously, so the response already carries the download links.
func (h *WorkbookHandler) Upload(c *gin.Context) {
	tenant := middleware.GetTenant(c)

	// Get file from form
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}
	defer file.Close()

	// Validate file type - Excel workbooks only
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".xlsx" && ext != ".xls" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only Excel files (.xlsx, .xls) are allowed"})
		return
	}

	if h.maxBytes > 0 && header.Size > h.maxBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File exceeds upload size limit"})
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
		return
	}

	job := &model.Job{
		ID:        uuid.New().String(),
		Filename:  header.Filename,
		Tenant:    tenant,
		Status:    model.StatusPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	h.store.Save(job)

	if err := h.workbooks.Process(c.Request.Context(), job, data); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"id":     job.ID,
			"status": model.StatusFailed,
			"error":  "Error processing file: " + err.Error(),
		})
		return
	}

	job = h.store.Get(job.ID)
	c.JSON(http.StatusOK, gin.H{
		"id":         job.ID,
		"filename":   job.Filename,
		"status":     job.Status,
		"excel_url":  job.ExcelURL,
		"pdf_url":    job.PDFURL,
		"summary":    job.Document.Summary,
		"created_at": job.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

// List returns all workbook jobs for the current tenant
func (h *WorkbookHandler) List(c *gin.Context) {
	tenant := middleware.GetTenant(c)
	jobs := h.store.GetByTenant(tenant)

	// Return without document data for list view
	result := make([]gin.H, len(jobs))
	for i, job := range jobs {
		result[i] = gin.H{
			"id":         job.ID,
			"filename":   job.Filename,
			"status":     job.Status,
			"excel_url":  job.ExcelURL,
			"pdf_url":    job.PDFURL,
			"created_at": job.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			"updated_at": job.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	c.JSON(http.StatusOK, gin.H{"workbooks": result})
}

// Get returns a single job with its processed document
func (h *WorkbookHandler) Get(c *gin.Context) {
	tenant := middleware.GetTenant(c)
	id := c.Param("id")

	job := h.store.Get(id)
	if job == nil || job.Tenant != tenant {
		c.JSON(http.StatusNotFound, gin.H{"error": "Workbook not found"})
		return
	}

	c.JSON(http.StatusOK, job)
}

// GetStatus returns the processing status of a job
func (h *WorkbookHandler) GetStatus(c *gin.Context) {
	tenant := middleware.GetTenant(c)
	id := c.Param("id")

	job := h.store.Get(id)
	if job == nil || job.Tenant != tenant {
		c.JSON(http.StatusNotFound, gin.H{"error": "Workbook not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        job.ID,
		"status":    job.Status,
		"error_msg": job.ErrorMsg,
	})
}

// Delete deletes a job and its stored artifacts
func (h *WorkbookHandler) Delete(c *gin.Context) {
	tenant := middleware.GetTenant(c)
	id := c.Param("id")

	job := h.store.Get(id)
	if job == nil || job.Tenant != tenant {
		c.JSON(http.StatusNotFound, gin.H{"error": "Workbook not found"})
		return
	}

	h.workbooks.Cleanup(c.Request.Context(), job)
	h.store.Delete(id)

	c.JSON(http.StatusOK, gin.H{"message": "Workbook deleted"})
}
