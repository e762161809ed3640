package naming

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultMaxNameLen caps the sanitized base name, keeping paths safe for
// Windows shares where these archives end up.
const DefaultMaxNameLen = 60

// fallbackName is used when sanitization leaves nothing usable.
const fallbackName = "FORNECEDOR_DESCONHECIDO"

var (
	reForbidden  = regexp.MustCompile(`[\\/:*?"<>|]`)
	reNonAllowed = regexp.MustCompile(`[^0-9A-Za-z_\-\s()\[\]]`)

	accentStripper = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
)

// Sanitize makes a string safe for use as a filename: accents stripped,
// filesystem-forbidden characters removed, words joined by underscores,
// truncated to maxLen. Empty results collapse to the unknown-supplier
// fallback so every receipt still gets a name.
func Sanitize(name string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultMaxNameLen
	}
	name = strings.TrimSpace(name)
	if stripped, _, err := transform.String(accentStripper, name); err == nil {
		name = stripped
	}
	name = reForbidden.ReplaceAllString(name, "")
	name = reNonAllowed.ReplaceAllString(name, "")
	name = strings.Join(strings.Fields(name), "_")
	if len(name) > maxLen {
		name = name[:maxLen]
	}
	if name == "" {
		return fallbackName
	}
	return name
}
