package processor

import (
	"testing"

	"github.com/matt94856/excel-financial-processor/model"
)

func TestResolveHeadersFromFirstRow(t *testing.T) {
	sheet := sheetOf(
		textRow("Description", "Amount"),
		textRow("Rent", "40"),
	)

	headers := ResolveHeaders(sheet)

	if len(headers) != 2 {
		t.Fatalf("Expected 2 headers, got %d", len(headers))
	}
	if headers[0] != "Description" || headers[1] != "Amount" {
		t.Errorf("Expected [Description Amount], got %v", headers)
	}
}

func TestResolveHeadersFallsBackToColumnLetters(t *testing.T) {
	sheet := model.RawSheet{
		Name: "test",
		Rows: [][]model.Cell{
			{model.EmptyCell(), model.EmptyCell()},
			textRow("a", "b"),
		},
	}

	headers := ResolveHeaders(sheet)

	if len(headers) != 2 {
		t.Fatalf("Expected 2 headers, got %d", len(headers))
	}
	if headers[0] != "A" || headers[1] != "B" {
		t.Errorf("Expected column letters [A B], got %v", headers)
	}
}

func TestResolveHeadersEmptySheet(t *testing.T) {
	headers := ResolveHeaders(model.RawSheet{Name: "empty"})

	if len(headers) != 0 {
		t.Errorf("Expected no headers for empty sheet, got %v", headers)
	}
}
