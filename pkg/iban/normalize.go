package iban

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Normalize removes all whitespace from s. Case and every other character are kept
// as they are, including bytes that are not valid UTF-8, so
// Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !(r == utf8.RuneError && size == 1) && unicode.IsSpace(r) {
			i += size
			continue
		}
		b.WriteString(s[i : i+size])
		i += size
	}
	return b.String()
}
