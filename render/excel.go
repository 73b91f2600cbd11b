package render

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/matt94856/excel-financial-processor/model"
)

// ExcelRenderer writes a processed document as a formatted workbook: one
// summary sheet followed by a sheet per estimate, financial statement and
// raw sheet, in document order. All numeric fields are rendered as given.
type ExcelRenderer struct {
	style Style
}

func NewExcelRenderer(style Style) *ExcelRenderer {
	return &ExcelRenderer{style: style}
}

type excelStyles struct {
	title      int
	bold       int
	header     int
	cell       int
	moneyCell  int
	totalCell  int
	totalMoney int
}

// Render produces the workbook bytes for one processed document.
func (r *ExcelRenderer) Render(doc *model.ProcessedDocument) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	styles, err := r.buildStyles(f)
	if err != nil {
		return nil, fmt.Errorf("build styles: %w", err)
	}

	if err := r.summarySheet(f, styles, doc); err != nil {
		return nil, fmt.Errorf("summary sheet: %w", err)
	}
	for _, estimate := range doc.Estimates {
		if err := r.estimateSheet(f, styles, estimate); err != nil {
			return nil, fmt.Errorf("estimate sheet %s: %w", estimate.SheetName, err)
		}
	}
	for _, financial := range doc.FinancialStatements {
		if err := r.financialSheet(f, styles, financial); err != nil {
			return nil, fmt.Errorf("financial sheet %s: %w", financial.SheetName, err)
		}
	}
	for _, name := range doc.SheetOrder {
		if err := r.rawSheet(f, styles, doc.Sheets[name]); err != nil {
			return nil, fmt.Errorf("raw sheet %s: %w", name, err)
		}
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *ExcelRenderer) buildStyles(f *excelize.File) (excelStyles, error) {
	var s excelStyles
	var err error

	thin := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	numFmt := "#,##0.00"

	if s.title, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14, Color: r.style.TitleColor},
	}); err != nil {
		return s, err
	}
	if s.bold, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12},
	}); err != nil {
		return s, err
	}
	if s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: r.style.HeaderFontColor},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{r.style.HeaderFillColor}, Pattern: 1},
		Border:    thin,
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	}); err != nil {
		return s, err
	}
	if s.cell, err = f.NewStyle(&excelize.Style{Border: thin}); err != nil {
		return s, err
	}
	if s.moneyCell, err = f.NewStyle(&excelize.Style{
		Border:       thin,
		Alignment:    &excelize.Alignment{Horizontal: "right", Vertical: "center"},
		CustomNumFmt: &numFmt,
	}); err != nil {
		return s, err
	}
	if s.totalCell, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Border: thin,
		Fill:   excelize.Fill{Type: "pattern", Color: []string{r.style.TotalFillColor}, Pattern: 1},
	}); err != nil {
		return s, err
	}
	if s.totalMoney, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		Border:       thin,
		Fill:         excelize.Fill{Type: "pattern", Color: []string{r.style.TotalFillColor}, Pattern: 1},
		Alignment:    &excelize.Alignment{Horizontal: "right", Vertical: "center"},
		CustomNumFmt: &numFmt,
	}); err != nil {
		return s, err
	}
	return s, nil
}

func (r *ExcelRenderer) summarySheet(f *excelize.File, styles excelStyles, doc *model.ProcessedDocument) error {
	const sheet = "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	_ = f.SetCellValue(sheet, "A1", "FINANCIAL DOCUMENT PROCESSOR - SUMMARY")
	_ = f.SetCellStyle(sheet, "A1", "A1", styles.title)
	_ = f.MergeCell(sheet, "A1", "D1")

	_ = f.SetCellValue(sheet, "A3", "Source File: "+doc.FileName)
	_ = f.SetCellStyle(sheet, "A3", "A3", styles.bold)

	entries := []struct {
		label string
		value any
	}{
		{"Total Estimates", doc.Summary.TotalEstimates},
		{"Total Financial Statements", doc.Summary.TotalFinancialStatements},
		{"Total Sheets Processed", doc.Summary.TotalSheets},
		{"Grand Total", money(doc.Summary.GrandTotal)},
	}
	row := 5
	for _, entry := range entries {
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), entry.label)
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), entry.value)
		_ = f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), styles.cell)
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 28)
	_ = f.SetColWidth(sheet, "B", "B", 16)
	return nil
}

func (r *ExcelRenderer) estimateSheet(f *excelize.File, styles excelStyles, estimate model.EstimateResult) error {
	sheet := sheetTitle("Estimate_", estimate.SheetName)
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	_ = f.SetCellValue(sheet, "A1", estimate.Title)
	_ = f.SetCellStyle(sheet, "A1", "A1", styles.title)
	_ = f.MergeCell(sheet, "A1", "D1")

	headers := []string{"Description", "Quantity", "Unit Price", "Total"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 3)
		_ = f.SetCellValue(sheet, cell, header)
		_ = f.SetCellStyle(sheet, cell, cell, styles.header)
	}

	row := 4
	for _, item := range estimate.Items {
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), item.Description)
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), item.Quantity)
		_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", row), item.UnitPrice)
		_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", row), item.Total)
		_ = f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), styles.cell)
		_ = f.SetCellStyle(sheet, fmt.Sprintf("B%d", row), fmt.Sprintf("D%d", row), styles.moneyCell)
		row++
	}

	_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", row), "TOTAL:")
	_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", row), estimate.Total)
	_ = f.SetCellStyle(sheet, fmt.Sprintf("C%d", row), fmt.Sprintf("C%d", row), styles.totalCell)
	_ = f.SetCellStyle(sheet, fmt.Sprintf("D%d", row), fmt.Sprintf("D%d", row), styles.totalMoney)

	r.autoWidth(f, sheet)
	return nil
}

func (r *ExcelRenderer) financialSheet(f *excelize.File, styles excelStyles, financial model.FinancialResult) error {
	sheet := sheetTitle("Financial_", financial.SheetName)
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	_ = f.SetCellValue(sheet, "A1", financial.Title)
	_ = f.SetCellStyle(sheet, "A1", "A1", styles.title)
	_ = f.MergeCell(sheet, "A1", "B1")

	row := 3
	for _, section := range financial.Sections {
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), section.Name)
		_ = f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), styles.bold)
		row++

		if len(section.Items) > 0 {
			_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Description")
			_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), "Amount")
			_ = f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), styles.header)
			row++

			for _, item := range section.Items {
				_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), item.Description)
				_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), item.Amount)
				_ = f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), styles.cell)
				_ = f.SetCellStyle(sheet, fmt.Sprintf("B%d", row), fmt.Sprintf("B%d", row), styles.moneyCell)
				row++
			}
		}
		row++ // space between sections
	}

	r.autoWidth(f, sheet)
	return nil
}

func (r *ExcelRenderer) rawSheet(f *excelize.File, styles excelStyles, raw model.RawSheetResult) error {
	sheet := sheetTitle("Raw_", raw.SheetName)
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	_ = f.SetCellValue(sheet, "A1", raw.Title)
	_ = f.SetCellStyle(sheet, "A1", "A1", styles.title)

	for col, header := range raw.Headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 3)
		_ = f.SetCellValue(sheet, cell, header)
		_ = f.SetCellStyle(sheet, cell, cell, styles.header)
	}

	row := 4
	for _, record := range raw.Data {
		for col, header := range raw.Headers {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(sheet, cell, record[header])
			_ = f.SetCellStyle(sheet, cell, cell, styles.cell)
		}
		row++
	}

	r.autoWidth(f, sheet)
	return nil
}

// autoWidth sizes every column to its longest value plus padding, capped at
// the style's maximum.
func (r *ExcelRenderer) autoWidth(f *excelize.File, sheet string) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return
	}
	widths := make(map[int]int)
	for _, row := range rows {
		for col, value := range row {
			if len(value) > widths[col] {
				widths[col] = len(value)
			}
		}
	}
	for col, w := range widths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			continue
		}
		width := float64(w + 2)
		if width > r.style.MaxColumnWidth {
			width = r.style.MaxColumnWidth
		}
		_ = f.SetColWidth(sheet, name, name, width)
	}
}

// sheetTitle builds a workbook-safe sheet name; excel caps names at 31
// characters.
func sheetTitle(prefix, name string) string {
	title := prefix + name
	if len(title) > 31 {
		title = title[:31]
	}
	return title
}
