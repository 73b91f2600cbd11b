package processor

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/matt94856/excel-financial-processor/model"
)

// ReadWorkbook parses uploaded workbook bytes into ordered sheets of tagged
// cells. A cell whose entire trimmed text is a numeral becomes a number
// cell; anything else with content is text. Unreadable bytes fail the whole
// document; a per-sheet read failure carries the sheet name.
func ReadWorkbook(fileName string, r io.Reader) (*model.Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	wb := &model.Workbook{FileName: fileName}
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, &SheetError{Sheet: name, Err: err}
		}

		grid := make([][]model.Cell, len(rows))
		for i, row := range rows {
			cells := make([]model.Cell, len(row))
			for j, value := range row {
				cells[j] = parseCell(value)
			}
			grid[i] = cells
		}
		wb.Sheets = append(wb.Sheets, model.SheetGrid{Name: name, Cells: grid})
	}
	return wb, nil
}

func parseCell(value string) model.Cell {
	text := strings.TrimSpace(value)
	if text == "" {
		return model.EmptyCell()
	}
	if IsNumeral(text) {
		if n, err := strconv.ParseFloat(text, 64); err == nil {
			return model.Cell{Kind: model.CellNumber, Text: text, Number: n}
		}
	}
	return model.TextCell(text)
}
