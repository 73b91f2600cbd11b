package render

import "github.com/shopspring/decimal"

// Style is the visual configuration shared by the renderers. It is passed
// in explicitly so render calls carry no package-level state.
type Style struct {
	HeaderFontColor string
	HeaderFillColor string
	TitleColor      string
	TotalFillColor  string
	MaxColumnWidth  float64
}

// DefaultStyle returns the standard report styling.
func DefaultStyle() Style {
	return Style{
		HeaderFontColor: "FFFFFF",
		HeaderFillColor: "366092",
		TitleColor:      "366092",
		TotalFillColor:  "D9E2F3",
		MaxColumnWidth:  50,
	}
}

// money renders a currency value with two fixed decimals.
func money(value float64) string {
	return "$" + decimal.NewFromFloat(value).StringFixed(2)
}
