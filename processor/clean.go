package processor

import (
	"strings"

	"github.com/matt94856/excel-financial-processor/model"
)

// Clean normalizes a raw worksheet grid: rows that are empty across all
// columns and columns that are empty across all rows are dropped, missing
// cells become empty text, and every remaining cell keeps a trimmed text
// representation. Indices of the result are re-based at zero. An all-empty
// grid yields a sheet with zero rows.
func Clean(name string, cells [][]model.Cell) model.RawSheet {
	width := 0
	for _, row := range cells {
		if len(row) > width {
			width = len(row)
		}
	}

	var kept [][]model.Cell
	for _, row := range cells {
		if rowHasData(row) {
			kept = append(kept, row)
		}
	}

	colHasData := make([]bool, width)
	for _, row := range kept {
		for j, c := range row {
			if !cellEmpty(c) {
				colHasData[j] = true
			}
		}
	}

	sheet := model.RawSheet{Name: name}
	for _, row := range kept {
		normalized := make([]model.Cell, 0, width)
		for j := 0; j < width; j++ {
			if !colHasData[j] {
				continue
			}
			if j < len(row) {
				normalized = append(normalized, normalizeCell(row[j]))
			} else {
				normalized = append(normalized, model.EmptyCell())
			}
		}
		sheet.Rows = append(sheet.Rows, normalized)
	}
	return sheet
}

func rowHasData(row []model.Cell) bool {
	for _, c := range row {
		if !cellEmpty(c) {
			return true
		}
	}
	return false
}

func cellEmpty(c model.Cell) bool {
	return c.Kind == model.CellEmpty || strings.TrimSpace(c.Text) == ""
}

func normalizeCell(c model.Cell) model.Cell {
	if cellEmpty(c) {
		return model.EmptyCell()
	}
	c.Text = strings.TrimSpace(c.Text)
	return c
}
