package processor

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/matt94856/excel-financial-processor/model"
)

func buildTestFile(t *testing.T) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Estimate"); err != nil {
		t.Fatalf("Failed to rename sheet: %v", err)
	}
	_ = f.SetCellValue("Estimate", "A1", "Description")
	_ = f.SetCellValue("Estimate", "B1", "Quantity")
	_ = f.SetCellValue("Estimate", "A2", "Labor")
	_ = f.SetCellValue("Estimate", "B2", 12.5)

	if _, err := f.NewSheet("Notes"); err != nil {
		t.Fatalf("Failed to add sheet: %v", err)
	}
	_ = f.SetCellValue("Notes", "A1", "remark")

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("Failed to write workbook: %v", err)
	}
	return buf.Bytes()
}

func TestReadWorkbook(t *testing.T) {
	data := buildTestFile(t)

	wb, err := ReadWorkbook("test.xlsx", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Failed to read workbook: %v", err)
	}

	if wb.FileName != "test.xlsx" {
		t.Errorf("Expected file name test.xlsx, got %q", wb.FileName)
	}
	if len(wb.Sheets) != 2 {
		t.Fatalf("Expected 2 sheets, got %d", len(wb.Sheets))
	}
	if wb.Sheets[0].Name != "Estimate" || wb.Sheets[1].Name != "Notes" {
		t.Errorf("Expected sheet order [Estimate Notes], got [%s %s]",
			wb.Sheets[0].Name, wb.Sheets[1].Name)
	}

	grid := wb.Sheets[0].Cells
	if grid[0][0].Kind != model.CellText || grid[0][0].Text != "Description" {
		t.Errorf("Expected text cell 'Description', got %+v", grid[0][0])
	}
	if grid[1][1].Kind != model.CellNumber || grid[1][1].Number != 12.5 {
		t.Errorf("Expected number cell 12.5, got %+v", grid[1][1])
	}
}

func TestReadWorkbookUnreadableBytes(t *testing.T) {
	_, err := ReadWorkbook("bad.xlsx", strings.NewReader("not a workbook"))
	if err == nil {
		t.Fatal("Expected error for unreadable bytes")
	}
}

func TestSheetErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := &SheetError{Sheet: "Q1", Err: inner}

	if !errors.Is(err, inner) {
		t.Error("Expected SheetError to unwrap to the inner error")
	}
	if !strings.Contains(err.Error(), "Q1") {
		t.Errorf("Expected error text to carry the sheet name, got %q", err.Error())
	}
}
