package render

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/go-pdf/fpdf"

	"github.com/matt94856/excel-financial-processor/model"
)

// PDFRenderer writes a processed document as a paginated report: estimates
// first, then financial statements, then the summary. Items and sections
// are rendered in the given order with no re-derivation of totals.
type PDFRenderer struct {
	style Style
}

func NewPDFRenderer(style Style) *PDFRenderer {
	return &PDFRenderer{style: style}
}

// Render produces the report bytes for one processed document.
func (r *PDFRenderer) Render(doc *model.ProcessedDocument) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 18)
	pdf.AddPage()

	r.reportHeader(pdf, doc.FileName)

	if len(doc.Estimates) > 0 {
		r.sectionHeader(pdf, "ESTIMATES")
		for _, estimate := range doc.Estimates {
			r.estimateTable(pdf, estimate)
		}
	}

	if len(doc.FinancialStatements) > 0 {
		r.sectionHeader(pdf, "FINANCIAL STATEMENTS")
		for _, financial := range doc.FinancialStatements {
			r.financialTables(pdf, financial)
		}
	}

	r.summaryTable(pdf, doc.Summary)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *PDFRenderer) reportHeader(pdf *fpdf.Fpdf, fileName string) {
	pdf.SetTextColor(0, 0, 139)
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "FINANCIAL DOCUMENT PROCESSOR", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, "Professional Estimates & Financial Statements", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, "Source File: "+fileName, "", 1, "L", false, 0, "")
	pdf.Ln(6)
}

func (r *PDFRenderer) sectionHeader(pdf *fpdf.Fpdf, title string) {
	pdf.SetTextColor(0, 0, 139)
	pdf.SetFont("Helvetica", "B", 15)
	pdf.CellFormat(0, 10, title, "B", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(3)
}

func (r *PDFRenderer) estimateTable(pdf *fpdf.Fpdf, estimate model.EstimateResult) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, estimate.Title, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	if len(estimate.Items) == 0 {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 7, "No estimate items found.", "", 1, "L", false, 0, "")
		pdf.Ln(4)
		return
	}

	widths := []float64{80, 25, 32, 32}
	headers := []string{"Description", "Quantity", "Unit Price", "Total"}

	pdf.SetFillColor(128, 128, 128)
	pdf.SetTextColor(245, 245, 245)
	pdf.SetFont("Helvetica", "B", 11)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 8, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFillColor(245, 245, 220)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)
	for _, item := range estimate.Items {
		pdf.CellFormat(widths[0], 7, item.Description, "1", 0, "L", true, 0, "")
		pdf.CellFormat(widths[1], 7, strconv.FormatFloat(item.Quantity, 'f', 2, 64), "1", 0, "R", true, 0, "")
		pdf.CellFormat(widths[2], 7, money(item.UnitPrice), "1", 0, "R", true, 0, "")
		pdf.CellFormat(widths[3], 7, money(item.Total), "1", 0, "R", true, 0, "")
		pdf.Ln(-1)
	}

	pdf.SetFillColor(211, 211, 211)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(widths[0]+widths[1], 8, "", "1", 0, "L", true, 0, "")
	pdf.CellFormat(widths[2], 8, "TOTAL:", "1", 0, "R", true, 0, "")
	pdf.CellFormat(widths[3], 8, money(estimate.Total), "1", 0, "R", true, 0, "")
	pdf.Ln(-1)
	pdf.Ln(6)
}

func (r *PDFRenderer) financialTables(pdf *fpdf.Fpdf, financial model.FinancialResult) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, financial.Title, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	for _, section := range financial.Sections {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 7, section.Name, "", 1, "L", false, 0, "")

		if len(section.Items) == 0 {
			pdf.SetFont("Helvetica", "", 10)
			pdf.CellFormat(0, 7, "No items found in this section.", "", 1, "L", false, 0, "")
			pdf.Ln(3)
			continue
		}

		pdf.SetFillColor(128, 128, 128)
		pdf.SetTextColor(245, 245, 245)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(110, 8, "Description", "1", 0, "L", true, 0, "")
		pdf.CellFormat(50, 8, "Amount", "1", 0, "L", true, 0, "")
		pdf.Ln(-1)

		pdf.SetFillColor(245, 245, 220)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "", 10)
		for _, item := range section.Items {
			pdf.CellFormat(110, 7, item.Description, "1", 0, "L", true, 0, "")
			pdf.CellFormat(50, 7, money(item.Amount), "1", 0, "R", true, 0, "")
			pdf.Ln(-1)
		}
		pdf.Ln(3)
	}
	pdf.Ln(4)
}

func (r *PDFRenderer) summaryTable(pdf *fpdf.Fpdf, summary model.Summary) {
	r.sectionHeader(pdf, "SUMMARY")

	rows := []struct {
		label string
		value string
	}{
		{"Total Estimates", strconv.Itoa(summary.TotalEstimates)},
		{"Total Financial Statements", strconv.Itoa(summary.TotalFinancialStatements)},
		{"Total Sheets Processed", strconv.Itoa(summary.TotalSheets)},
		{"Grand Total", money(summary.GrandTotal)},
	}

	pdf.SetFillColor(173, 216, 230)
	pdf.SetFont("Helvetica", "", 11)
	for i, row := range rows {
		if i == len(rows)-1 {
			pdf.SetFillColor(0, 0, 139)
			pdf.SetTextColor(245, 245, 245)
			pdf.SetFont("Helvetica", "B", 12)
		}
		pdf.CellFormat(80, 8, row.label, "1", 0, "L", true, 0, "")
		pdf.CellFormat(50, 8, row.value, "1", 0, "R", true, 0, "")
		pdf.Ln(-1)
	}
	pdf.SetTextColor(0, 0, 0)
}
