package util

import (
	"strings"
	"unicode"
)

// maxFreeTextLen bounds user-supplied request notes before they reach the
// completion prompt.
const maxFreeTextLen = 500

// SanitizeFreeText strips control characters, collapses whitespace runs, and
// truncates overlong input. Returns "" when nothing usable remains.
func SanitizeFreeText(s string) string {
	var b strings.Builder
	space := false
	for _, r := range s {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			space = true
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteRune(r)
	}
	out := b.String()
	if len(out) > maxFreeTextLen {
		out = strings.TrimSpace(out[:maxFreeTextLen])
	}
	return out
}
