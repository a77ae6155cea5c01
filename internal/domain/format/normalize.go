package format

import (
	"strings"
	"unicode"
)

// Normalize prepares header text for comparison: invisible and control runes
// are dropped, whitespace runs collapse to a single space, and the result is
// trimmed and uppercased. The function is idempotent.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		case invisible(r):
			// zero-width and control characters sneak into copy-pasted
			// bank headers; drop them outright
		default:
			b.WriteRune(r)
		}
	}
	return strings.ToUpper(strings.Join(strings.Fields(b.String()), " "))
}

func invisible(r rune) bool {
	switch r {
	case '\u200B', '\u200C', '\u200D', '\u2060', '\uFEFF', '\u00AD':
		return true
	}
	return unicode.IsControl(r) || unicode.Is(unicode.Cf, r)
}

// headerSatisfies applies the loose bidirectional substring rule: a normalized
// non-empty cell satisfies a normalized required header when either contains
// the other. This tolerates truncated or extended header text such as
// trailing units.
func headerSatisfies(normCell, normRequired string) bool {
	if normCell == "" {
		return false
	}
	return strings.Contains(normCell, normRequired) || strings.Contains(normRequired, normCell)
}
