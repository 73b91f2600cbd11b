package processor

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/matt94856/excel-financial-processor/model"
)

var (
	numberPattern  = regexp.MustCompile(`-?\d+\.?\d*`)
	numeralPattern = regexp.MustCompile(`^-?\d+\.?\d*$`)
)

// ExtractNumbers pulls every numeric token out of a row. Numeric cells
// contribute their value directly; text cells are scanned for optionally
// signed, optionally decimal substrings. Order is left-to-right, cell then
// substring, which is the ordering contract every downstream extractor
// relies on.
func ExtractNumbers(row []model.Cell) []float64 {
	var numbers []float64
	for _, c := range row {
		switch c.Kind {
		case model.CellNumber:
			numbers = append(numbers, c.Number)
		case model.CellText:
			for _, match := range numberPattern.FindAllString(c.Text, -1) {
				n, err := strconv.ParseFloat(match, 64)
				if err != nil {
					continue
				}
				numbers = append(numbers, n)
			}
		}
	}
	return numbers
}

// IsNumeral reports whether the trimmed text is a single pure numeral.
func IsNumeral(text string) bool {
	return numeralPattern.MatchString(strings.TrimSpace(text))
}
