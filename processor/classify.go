package processor

import (
	"strings"

	"github.com/matt94856/excel-financial-processor/model"
)

// ContentType is the classifier's verdict for one sheet.
type ContentType string

const (
	ContentEstimate  ContentType = "estimate"
	ContentFinancial ContentType = "financial"
	ContentMixed     ContentType = "mixed"
)

// The two fixed vocabularies the classifier scores against. Each keyword
// contributes at most one point no matter how often it appears.
var (
	estimateKeywords = []string{
		"estimate", "quote", "proposal", "cost", "price", "amount",
		"labor", "materials", "equipment", "subtotal", "total",
	}
	financialKeywords = []string{
		"revenue", "income", "expense", "profit", "loss", "balance",
		"assets", "liabilities", "equity", "cash flow", "statement",
	}
)

// Classify scores a cleaned sheet against both vocabularies and picks a
// content type. A type wins only when its score strictly exceeds the other
// and is greater than 2; ties and low-signal sheets fall through to mixed.
func Classify(sheet model.RawSheet) ContentType {
	var b strings.Builder
	for _, row := range sheet.Rows {
		for _, c := range row {
			b.WriteString(c.Text)
			b.WriteByte(' ')
		}
	}
	text := strings.ToLower(b.String())

	estimateScore := vocabularyScore(text, estimateKeywords)
	financialScore := vocabularyScore(text, financialKeywords)

	switch {
	case estimateScore > financialScore && estimateScore > 2:
		return ContentEstimate
	case financialScore > estimateScore && financialScore > 2:
		return ContentFinancial
	default:
		return ContentMixed
	}
}

func vocabularyScore(text string, keywords []string) int {
	score := 0
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			score++
		}
	}
	return score
}
