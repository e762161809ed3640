package extract

import "regexp"

var (
	reBarcodeHint = regexp.MustCompile(`(?i)LINHA\s+DIGIT|CODIGO\s+DE\s+BARRAS|NOSSO\s+N`)
	reDigitRun    = regexp.MustCompile(`[0-9]{20,60}`)
	reWhitespace  = regexp.MustCompile(`\s+`)
)

// HasBarcodeHint reports whether the text mentions a linha digitável or
// código de barras, meaning a digit sequence is worth extracting.
func HasBarcodeHint(text string) bool {
	return reBarcodeHint.MatchString(text)
}

// DigitSequence returns the first long digit run (20-60 digits) found
// after stripping whitespace, or "" when none exists.
func DigitSequence(text string) string {
	return reDigitRun.FindString(reWhitespace.ReplaceAllString(text, ""))
}

// Tail returns the last n digits of seq, or seq itself when shorter.
func Tail(seq string, n int) string {
	if len(seq) <= n {
		return seq
	}
	return seq[len(seq)-n:]
}
