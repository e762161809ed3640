package extract

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// PDF extractors leave behind ligature glyphs and U+2028 line separators.
var ligatures = strings.NewReplacer(
	"ﬁ", "fi",
	"ﬂ", "fl",
	" ", " ",
)

// CleanText fixes ligatures and line separators, then applies NFKC
// normalization so label matching sees plain composed characters.
func CleanText(s string) string {
	if s == "" {
		return ""
	}
	return norm.NFKC.String(ligatures.Replace(s))
}

// collapseSpaces folds all runs of whitespace into single spaces.
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
