package model

// EstimateItem is one line item of a cost estimate.
type EstimateItem struct {
	Description string   `json:"description"`
	Quantity    float64  `json:"quantity"`
	UnitPrice   float64  `json:"unit_price"`
	Total       float64  `json:"total"`
	RowData     []string `json:"row_data,omitempty"`
}

// EstimateResult holds the extracted line items of an estimate-typed sheet.
// Total is the sum of the item totals; renderers must not re-derive it.
type EstimateResult struct {
	SheetName string         `json:"sheet_name"`
	Title     string         `json:"title"`
	Items     []EstimateItem `json:"items"`
	Total     float64        `json:"total"`
	Headers   []string       `json:"headers"`
}

// FinancialItem is one description/amount entry inside a section.
type FinancialItem struct {
	Description string   `json:"description"`
	Amount      float64  `json:"amount"`
	RowData     []string `json:"row_data,omitempty"`
}

// Section is a named group of financial items. Every item belongs to
// exactly one section.
type Section struct {
	Name  string          `json:"name"`
	Items []FinancialItem `json:"items"`
}

// FinancialResult holds the grouped sections of a financial-typed sheet.
type FinancialResult struct {
	SheetName string    `json:"sheet_name"`
	Title     string    `json:"title"`
	Sections  []Section `json:"sections"`
	Headers   []string  `json:"headers"`
}

// RawSheetResult is the fallback for sheets that are neither estimate- nor
// financial-shaped: generic records keyed by the resolved header labels.
type RawSheetResult struct {
	SheetName string              `json:"sheet_name"`
	Title     string              `json:"title"`
	Headers   []string            `json:"headers"`
	Data      []map[string]string `json:"data"`
}

// Summary is the roll-up over one processed workbook. TotalSheets counts
// only the raw fallback bucket; GrandTotal sums estimate totals only.
type Summary struct {
	TotalEstimates           int     `json:"total_estimates"`
	TotalFinancialStatements int     `json:"total_financial_statements"`
	TotalSheets              int     `json:"total_sheets"`
	GrandTotal               float64 `json:"grand_total"`
}

// ProcessedDocument is the root aggregate produced for one upload. All
// slices preserve the workbook's sheet iteration order; SheetOrder keeps
// that order for the Sheets map.
type ProcessedDocument struct {
	FileName            string                    `json:"file_name"`
	Estimates           []EstimateResult          `json:"estimates"`
	FinancialStatements []FinancialResult         `json:"financial_statements"`
	Sheets              map[string]RawSheetResult `json:"sheets"`
	SheetOrder          []string                  `json:"-"`
	Summary             Summary                   `json:"summary"`
}
