package processor

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/matt94856/excel-financial-processor/model"
)

// ResolveHeaders picks the header labels for a cleaned sheet. If any cell
// of row 0 has text, that row's trimmed values are the headers; otherwise
// the spreadsheet column letters stand in. Row 0 is excluded from data
// processing either way.
func ResolveHeaders(sheet model.RawSheet) []string {
	if len(sheet.Rows) > 0 {
		first := sheet.Rows[0]
		for _, c := range first {
			if strings.TrimSpace(c.Text) != "" {
				headers := make([]string, len(first))
				for i, cell := range first {
					headers[i] = strings.TrimSpace(cell.Text)
				}
				return headers
			}
		}
	}

	headers := make([]string, sheet.Width())
	for i := range headers {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			name = ""
		}
		headers[i] = name
	}
	return headers
}
