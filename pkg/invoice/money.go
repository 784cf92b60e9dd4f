package invoice

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ToCents converts a dollar amount to cents, rounding half away from zero.
func ToCents(dollars float64) int64 {
	return int64(math.Round(dollars * 100))
}

// FormatAmount renders cents as a dollar amount with thousands separators, e.g. "$4,862.45".
func FormatAmount(cents int64) string {
	p := message.NewPrinter(language.English)
	return "$" + p.Sprint(number.Decimal(float64(cents)/100, number.Scale(2)))
}
