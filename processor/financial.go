package processor

import (
	"log/slog"
	"strings"

	"github.com/matt94856/excel-financial-processor/model"
)

// Row text containing any of these starts a new section.
var sectionKeywords = []string{"total", "subtotal", "summary", "section"}

// GroupFinancial turns a financial-typed sheet into named sections. The
// grouping is a two-state machine: no open section, or one open section
// collecting items. A section-header row closes the open section and opens
// a new one; a row with numbers lands in the open section with the last
// extracted number as its amount. Numeric rows arriving before the first
// header, and rows with no numbers, are dropped. An unterminated section is
// closed at end of sheet. A sheet with no header row anywhere therefore
// yields zero sections.
func GroupFinancial(sheet model.RawSheet) model.FinancialResult {
	result := model.FinancialResult{
		SheetName: sheet.Name,
		Title:     "Financial Statement - " + sheet.Name,
		Sections:  []model.Section{},
		Headers:   ResolveHeaders(sheet),
	}

	open := false
	var current model.Section
	dropped := 0

	for i, row := range sheet.Rows {
		if i == 0 {
			continue
		}

		if isSectionHeader(row) {
			if open {
				result.Sections = append(result.Sections, current)
			}
			current = model.Section{
				Name:  sectionName(row),
				Items: []model.FinancialItem{},
			}
			open = true
			continue
		}

		numbers := ExtractNumbers(row)
		if len(numbers) == 0 {
			continue
		}
		if !open {
			dropped++
			continue
		}

		current.Items = append(current.Items, model.FinancialItem{
			Description: rowDescription(row),
			Amount:      numbers[len(numbers)-1],
			RowData:     rowText(row),
		})
	}

	if open {
		result.Sections = append(result.Sections, current)
	}
	if dropped > 0 {
		slog.Debug("dropped rows preceding first section header",
			"sheet", sheet.Name,
			"rows", dropped,
		)
	}
	return result
}

func isSectionHeader(row []model.Cell) bool {
	var b strings.Builder
	for _, c := range row {
		b.WriteString(c.Text)
		b.WriteByte(' ')
	}
	text := strings.ToLower(b.String())
	for _, keyword := range sectionKeywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

func sectionName(row []model.Cell) string {
	for _, c := range row {
		if text := strings.TrimSpace(c.Text); text != "" {
			return text
		}
	}
	return "Section"
}
