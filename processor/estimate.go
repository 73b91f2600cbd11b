package processor

import (
	"strings"

	"github.com/matt94856/excel-financial-processor/model"
)

// ExtractEstimate turns an estimate-typed sheet into line items. Fields are
// assigned by numeral position within the row, not by header label: first
// number is the quantity, second the unit price, third the total. With only
// two numbers the total is their product; with one it is that number. Rows
// yielding no numbers are skipped. The estimate total is the sum of the
// item totals.
func ExtractEstimate(sheet model.RawSheet) model.EstimateResult {
	result := model.EstimateResult{
		SheetName: sheet.Name,
		Title:     "Estimate - " + sheet.Name,
		Items:     []model.EstimateItem{},
		Headers:   ResolveHeaders(sheet),
	}

	for i, row := range sheet.Rows {
		if i == 0 {
			continue
		}
		numbers := ExtractNumbers(row)
		if len(numbers) == 0 {
			continue
		}

		item := model.EstimateItem{
			Description: "Item",
			Quantity:    numbers[0],
			Total:       itemTotal(numbers),
			RowData:     rowText(row),
		}
		if desc := rowDescription(row); desc != "" {
			item.Description = desc
		}
		if len(numbers) > 1 {
			item.UnitPrice = numbers[1]
		}

		result.Items = append(result.Items, item)
		result.Total += item.Total
	}
	return result
}

func itemTotal(numbers []float64) float64 {
	switch {
	case len(numbers) >= 3:
		return numbers[2]
	case len(numbers) == 2:
		return numbers[0] * numbers[1]
	case len(numbers) == 1:
		return numbers[0]
	default:
		return 0
	}
}

// rowDescription returns the first non-empty cell that is not a pure
// numeral, or "" when the row has none.
func rowDescription(row []model.Cell) string {
	for _, c := range row {
		text := strings.TrimSpace(c.Text)
		if text != "" && !IsNumeral(text) {
			return text
		}
	}
	return ""
}

// rowText keeps the original cell values for traceability downstream.
func rowText(row []model.Cell) []string {
	values := make([]string, len(row))
	for i, c := range row {
		values[i] = c.Text
	}
	return values
}
