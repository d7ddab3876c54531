package gen

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Capitalize upper-cases the first rune of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// ExportName is the exported form of a field or parameter name;
// "id" in any case becomes "ID".
func ExportName(s string) string {
	if strings.EqualFold(s, "id") {
		return "ID"
	}
	return Capitalize(s)
}
