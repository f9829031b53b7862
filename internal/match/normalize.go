package match

import (
	"strings"
	"unicode"
)

// NormalizeName folds a name for fuzzy comparison: lower case, without the
// separators '_', '-', '.', ' ' and without a leading markup '@'.
func NormalizeName(s string) string {
	s = strings.TrimPrefix(s, "@")

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
	return r == '_' || r == '-' || r == '.' || r == ' '
}
