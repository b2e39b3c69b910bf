package match

import (
	"strings"
	"unicode"
)

// Normalize folds a name for fuzzy comparison: lower case, without the
// separators '_', '-' and ' '. The '.' of property keys and the braces of
// Clark names are kept.
func Normalize(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}
