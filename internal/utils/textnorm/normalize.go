// Package textnorm canonicalizes free-text product names before matching.
package textnorm

import (
	"strings"
	"unicode"
)

// Normalize lower-cases raw, drops every rune that is not an ASCII letter,
// digit, hyphen or Unicode whitespace, collapses whitespace runs to a single
// space and trims the result. It is total and idempotent.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	pendingSpace := false
	for _, r := range strings.ToLower(raw) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
		case unicode.IsSpace(r):
			pendingSpace = true
		}
	}
	return b.String()
}

// NormalizeAll applies Normalize to every keyword and drops the ones that
// normalize to the empty string.
func NormalizeAll(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if n := Normalize(k); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// Fold lower-cases and trims raw without touching punctuation. Catalog
// matching compares folded strings.
func Fold(raw string) string {
	return strings.TrimSpace(strings.ToLower(raw))
}

// FoldAll applies Fold to every keyword and drops blanks.
func FoldAll(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if f := Fold(k); f != "" {
			out = append(out, f)
		}
	}
	return out
}
