package render

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/matt94856/excel-financial-processor/model"
)

func testDocument() *model.ProcessedDocument {
	return &model.ProcessedDocument{
		FileName: "input.xlsx",
		Estimates: []model.EstimateResult{
			{
				SheetName: "Quote",
				Title:     "Estimate - Quote",
				Items: []model.EstimateItem{
					{Description: "Labor", Quantity: 5, UnitPrice: 10, Total: 50},
					{Description: "Materials", Quantity: 2, UnitPrice: 3, Total: 7},
				},
				Total:   57,
				Headers: []string{"Description", "Quantity", "Unit Price", "Total"},
			},
		},
		FinancialStatements: []model.FinancialResult{
			{
				SheetName: "Q1",
				Title:     "Financial Statement - Q1",
				Sections: []model.Section{
					{Name: "Total Revenue", Items: []model.FinancialItem{
						{Description: "Sales", Amount: 100},
					}},
				},
				Headers: []string{"A", "B"},
			},
		},
		Sheets: map[string]model.RawSheetResult{
			"Notes": {
				SheetName: "Notes",
				Title:     "Data - Notes",
				Headers:   []string{"Name", "Value"},
				Data:      []map[string]string{{"Name": "a", "Value": "1"}},
			},
		},
		SheetOrder: []string{"Notes"},
		Summary: model.Summary{
			TotalEstimates:           1,
			TotalFinancialStatements: 1,
			TotalSheets:              1,
			GrandTotal:               57,
		},
	}
}

func TestExcelRendererProducesAllSheets(t *testing.T) {
	renderer := NewExcelRenderer(DefaultStyle())

	data, err := renderer.Render(testDocument())
	if err != nil {
		t.Fatalf("Failed to render workbook: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Failed to reopen rendered workbook: %v", err)
	}
	defer f.Close()

	expected := []string{"Summary", "Estimate_Quote", "Financial_Q1", "Raw_Notes"}
	sheets := f.GetSheetList()
	if len(sheets) != len(expected) {
		t.Fatalf("Expected sheets %v, got %v", expected, sheets)
	}
	for i, name := range expected {
		if sheets[i] != name {
			t.Errorf("Expected sheet %q at position %d, got %q", name, i, sheets[i])
		}
	}
}

func TestExcelRendererSummaryContent(t *testing.T) {
	renderer := NewExcelRenderer(DefaultStyle())

	data, err := renderer.Render(testDocument())
	if err != nil {
		t.Fatalf("Failed to render workbook: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Failed to reopen rendered workbook: %v", err)
	}
	defer f.Close()

	source, _ := f.GetCellValue("Summary", "A3")
	if source != "Source File: input.xlsx" {
		t.Errorf("Expected source file line, got %q", source)
	}
	grand, _ := f.GetCellValue("Summary", "B8")
	if grand != "$57.00" {
		t.Errorf("Expected grand total '$57.00', got %q", grand)
	}
}

func TestExcelRendererItemOrder(t *testing.T) {
	renderer := NewExcelRenderer(DefaultStyle())

	data, err := renderer.Render(testDocument())
	if err != nil {
		t.Fatalf("Failed to render workbook: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Failed to reopen rendered workbook: %v", err)
	}
	defer f.Close()

	first, _ := f.GetCellValue("Estimate_Quote", "A4")
	second, _ := f.GetCellValue("Estimate_Quote", "A5")
	if first != "Labor" || second != "Materials" {
		t.Errorf("Expected items in given order [Labor Materials], got [%s %s]", first, second)
	}

	section, _ := f.GetCellValue("Financial_Q1", "A3")
	if section != "Total Revenue" {
		t.Errorf("Expected section name 'Total Revenue', got %q", section)
	}
}

func TestExcelRendererEmptyDocument(t *testing.T) {
	renderer := NewExcelRenderer(DefaultStyle())

	doc := &model.ProcessedDocument{
		FileName: "empty.xlsx",
		Sheets:   map[string]model.RawSheetResult{},
	}

	data, err := renderer.Render(doc)
	if err != nil {
		t.Fatalf("Failed to render empty document: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Failed to reopen rendered workbook: %v", err)
	}
	defer f.Close()

	if sheets := f.GetSheetList(); len(sheets) != 1 || sheets[0] != "Summary" {
		t.Errorf("Expected only the Summary sheet, got %v", sheets)
	}
}

func TestSheetTitleTruncation(t *testing.T) {
	long := "this sheet name is far too long for excel"
	title := sheetTitle("Raw_", long)
	if len(title) != 31 {
		t.Errorf("Expected title capped at 31 characters, got %d", len(title))
	}
}
