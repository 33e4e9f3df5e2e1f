package catalog

import (
	"regexp"
	"strings"
)

var (
	// ASCII \s plus vertical tab, every unicode separator and the byte order mark
	whitespaceRuns = regexp.MustCompile(`[\s\v\p{Z}\x{FEFF}]+`)
	notSlugChars   = regexp.MustCompile(`[^a-z0-9-]`)
)

// Slug maps a product name onto its id: lower-cased, each whitespace run replaced by a
// single hyphen, everything outside [a-z0-9-] dropped. Accented letters are dropped, not
// transliterated: "Crème Brûlée" becomes "crme-brle".
func Slug(name string) string {
	slug := strings.ToLower(name)
	slug = whitespaceRuns.ReplaceAllString(slug, "-")
	return notSlugChars.ReplaceAllString(slug, "")
}
