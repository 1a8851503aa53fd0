// Package scanner provides the low-level text scanning primitives used
// to pick media types and their parameters out of header field values.
// Scanning works over a plain string with an explicit cursor: each
// primitive takes the offset to start from and returns the offset just
// past whatever it consumed. Offsets are byte offsets, but consumption
// is always by whole code point, so a cursor returned by one primitive
// is always a valid starting point for the next.
package scanner

import (
	"strings"
	"unicode/utf8"
)

const whitespace = "\t\n\r "

// Collect consumes the longest run of code points in input, starting at
// pos, for which pred holds. It returns the consumed substring and the
// offset immediately after it. Cursors beyond the end of input are
// treated as pointing at the end, so the returned offset never passes
// it.
func Collect(input string, pos int, pred func(rune) bool) (string, int) {
	if pos > len(input) {
		pos = len(input)
	}

	start := pos
	for pos < len(input) {
		r, size := utf8.DecodeRuneInString(input[pos:])
		if !pred(r) {
			break
		}
		pos += size
	}

	return input[start:pos], pos
}

// CollectQuoted consumes an HTTP quoted-string from input, whose code
// point at pos must be a U+0022 quotation mark. Backslash escapes are
// honored: a backslash makes the following code point literal, whatever
// it is. Consumption stops just past the first unescaped closing
// quotation mark, or at the end of input when the string is
// unterminated (a trailing lone backslash is kept as literal text).
//
// If extractValue is set, the result is the unescaped text between the
// quotation marks. Otherwise it is the raw matched span, including the
// opening quotation mark and, when present, the closing one.
func CollectQuoted(input string, pos int, extractValue bool) (string, int) {
	start := pos

	var value strings.Builder
	pos++ // the opening quotation mark
	for {
		var text string
		text, pos = Collect(input, pos, func(r rune) bool {
			return r != '"' && r != '\\'
		})
		value.WriteString(text)

		if pos >= len(input) {
			break
		}

		quoteOrBackslash, size := utf8.DecodeRuneInString(input[pos:])
		pos += size

		if quoteOrBackslash == '"' {
			break
		}

		if pos >= len(input) {
			value.WriteByte('\\')
			break
		}

		escaped, size := utf8.DecodeRuneInString(input[pos:])
		value.WriteRune(escaped)
		pos += size
	}

	if extractValue {
		return value.String(), pos
	}

	return input[start:pos], pos
}

// SkipWhitespace returns the cursor advanced past any run of HTTP
// whitespace starting at pos.
func SkipWhitespace(input string, pos int) int {
	_, pos = Collect(input, pos, IsWhitespaceRune)
	return pos
}

// TrimWhitespace removes leading and trailing HTTP whitespace from s.
func TrimWhitespace(s string) string {
	return strings.Trim(s, whitespace)
}

// TrimTrailingWhitespace removes trailing HTTP whitespace from s.
func TrimTrailingWhitespace(s string) string {
	return strings.TrimRight(s, whitespace)
}
