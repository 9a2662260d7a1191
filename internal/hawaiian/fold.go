package hawaiian

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Fold trims surrounding whitespace and upper-cases word so lower-case input
// can be pronounced. Pronounce itself only accepts upper-case letters.
func Fold(word string) string {
	return cases.Upper(language.Und).String(strings.TrimSpace(word))
}
