package model

import "strconv"

// CellKind discriminates what a worksheet cell holds.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
)

// Cell is one worksheet cell. Text always carries the trimmed text
// representation; Number is only meaningful when Kind is CellNumber.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
}

// EmptyCell returns a cell with no content.
func EmptyCell() Cell {
	return Cell{Kind: CellEmpty}
}

// TextCell returns a text cell.
func TextCell(text string) Cell {
	return Cell{Kind: CellText, Text: text}
}

// NumberCell returns a numeric cell whose text representation is derived
// from the value.
func NumberCell(value float64) Cell {
	return Cell{
		Kind:   CellNumber,
		Text:   strconv.FormatFloat(value, 'f', -1, 64),
		Number: value,
	}
}

// IsEmpty reports whether the cell has no content.
func (c Cell) IsEmpty() bool {
	return c.Kind == CellEmpty || c.Text == ""
}

// SheetGrid is one worksheet exactly as read from the workbook, before
// cleaning.
type SheetGrid struct {
	Name  string
	Cells [][]Cell
}

// Workbook is an uploaded spreadsheet file: ordered sheets of raw cells.
// Sheet order follows the workbook's own tab order.
type Workbook struct {
	FileName string
	Sheets   []SheetGrid
}

// RawSheet is a cleaned worksheet: empty rows and columns removed, every
// remaining row padded to the same width, indices re-based at zero.
// Immutable once produced.
type RawSheet struct {
	Name string
	Rows [][]Cell
}

// Width returns the column count of the cleaned sheet.
func (s RawSheet) Width() int {
	if len(s.Rows) == 0 {
		return 0
	}
	return len(s.Rows[0])
}
