package jptext

import (
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Normalize applies NFKC compatibility normalization followed by width
// folding, so full-width digits and punctuation commonly found in
// hand-maintained Japanese spreadsheets ("１４：００－１５：２０") become their
// ASCII equivalents before any parsing or table lookup.
func Normalize(s string) string {
	return width.Narrow.String(norm.NFKC.String(s))
}
