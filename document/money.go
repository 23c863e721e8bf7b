package document

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usPrinter = message.NewPrinter(language.English)

// parseAmount reads a whole-dollar decimal string the way the forms collect
// them. Ok is false for empty or malformed input so callers can fall back to
// a bracketed placeholder.
func parseAmount(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// formatAmount renders a dollar figure with thousands separators, no symbol:
// 98425 becomes "98,425". Negative values keep their sign.
func formatAmount(n int64) string {
	return usPrinter.Sprintf("%d", n)
}

// amountInWords spells a dollar amount out for the long-form documents. Small
// figures stay numeric; mid-range figures get a "thousand" split; seven
// digits and up fall back to the grouped numeral.
func amountInWords(n int64) string {
	if n < 1000 {
		return strconv.FormatInt(n, 10)
	}
	if n < 1000000 {
		out := strconv.FormatInt(n/1000, 10) + " thousand "
		if rem := n % 1000; rem > 0 {
			out += strconv.FormatInt(rem, 10)
		}
		return out
	}
	return formatAmount(n)
}
