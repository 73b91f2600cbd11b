package processor

import (
	"log/slog"

	"github.com/matt94856/excel-financial-processor/model"
)

// Process classifies and extracts every sheet of a workbook into a
// ProcessedDocument, preserving the workbook's sheet order. Sheets that
// classify as neither estimate nor financial land in the raw fallback
// bucket. The whole pass is pure: the same workbook always produces a
// structurally identical document.
func Process(wb *model.Workbook) *model.ProcessedDocument {
	doc := &model.ProcessedDocument{
		FileName:            wb.FileName,
		Estimates:           []model.EstimateResult{},
		FinancialStatements: []model.FinancialResult{},
		Sheets:              map[string]model.RawSheetResult{},
	}

	for _, grid := range wb.Sheets {
		sheet := Clean(grid.Name, grid.Cells)
		contentType := Classify(sheet)
		slog.Debug("sheet classified", "sheet", grid.Name, "content_type", contentType)

		switch contentType {
		case ContentEstimate:
			doc.Estimates = append(doc.Estimates, ExtractEstimate(sheet))
		case ContentFinancial:
			doc.FinancialStatements = append(doc.FinancialStatements, GroupFinancial(sheet))
		default:
			doc.Sheets[grid.Name] = ExtractRaw(sheet)
			doc.SheetOrder = append(doc.SheetOrder, grid.Name)
		}
	}

	doc.Summary = Summarize(doc)
	return doc
}

// ExtractRaw is the fallback for mixed or unknown content: data rows become
// generic records keyed by the resolved header labels.
func ExtractRaw(sheet model.RawSheet) model.RawSheetResult {
	result := model.RawSheetResult{
		SheetName: sheet.Name,
		Title:     "Data - " + sheet.Name,
		Headers:   ResolveHeaders(sheet),
		Data:      []map[string]string{},
	}

	for i, row := range sheet.Rows {
		if i == 0 {
			continue
		}
		record := make(map[string]string, len(result.Headers))
		for j, header := range result.Headers {
			if j < len(row) {
				record[header] = row[j].Text
			} else {
				record[header] = ""
			}
		}
		result.Data = append(result.Data, record)
	}
	return result
}

// Summarize computes the roll-up counts and the grand total. Only estimate
// totals contribute to the grand total, and TotalSheets counts only the raw
// fallback bucket.
func Summarize(doc *model.ProcessedDocument) model.Summary {
	summary := model.Summary{
		TotalEstimates:           len(doc.Estimates),
		TotalFinancialStatements: len(doc.FinancialStatements),
		TotalSheets:              len(doc.Sheets),
	}
	for _, estimate := range doc.Estimates {
		summary.GrandTotal += estimate.Total
	}
	return summary
}
