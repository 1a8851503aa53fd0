package scanner

import "strings"

// octetClass describes which grammatical classes an octet belongs to when
// it appears in an HTTP header field value.
//
// From the "Field Values" chapter of RFC 7230:
//
//	token          = 1*tchar
//	tchar          = "!" / "#" / "$" / "%" / "&" / "'" / "*"
//	               / "+" / "-" / "." / "^" / "_" / "`" / "|" / "~"
//	               / DIGIT / ALPHA
//	quoted-string  = DQUOTE *( qdtext / quoted-pair ) DQUOTE
//	qdtext         = HTAB / SP / %x21 / %x23-5B / %x5D-7E / obs-text
//	obs-text       = %x80-FF
//
// The quoted-text class here is the set of code points that may be
// carried by a quoted-string once unescaped, which is HTAB, the visible
// ASCII range including SP, and obs-text.
type octetClass uint8

const (
	classToken octetClass = 1 << iota
	classQuotedText
	classWhitespace
)

var octetClasses [256]octetClass

func init() {
	for c := 0; c < 256; c++ {
		var t octetClass
		if c >= '0' && c <= '9' ||
			c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' ||
			strings.ContainsRune("!#$%&'*+-.^_`|~", rune(c)) {
			t |= classToken
		}
		if c == '\t' || c >= 0x20 && c != 0x7f {
			t |= classQuotedText
		}
		switch c {
		case '\t', '\n', '\r', ' ':
			t |= classWhitespace
		}
		octetClasses[c] = t
	}
}

// IsTokenRune reports whether r is an RFC 7230 token character.
func IsTokenRune(r rune) bool {
	return r >= 0 && r < 256 && octetClasses[r]&classToken != 0
}

// IsQuotedTextRune reports whether r may be carried by an HTTP
// quoted-string. Code points above U+00FF never qualify.
func IsQuotedTextRune(r rune) bool {
	return r >= 0 && r < 256 && octetClasses[r]&classQuotedText != 0
}

// IsWhitespaceRune reports whether r is HTTP whitespace, which is the
// set of horizontal tab, line feed, carriage return, and space.
func IsWhitespaceRune(r rune) bool {
	return r >= 0 && r < 256 && octetClasses[r]&classWhitespace != 0
}

// IsToken reports whether s is a non-empty string made up solely of
// token characters.
func IsToken(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !IsTokenRune(r) {
			return false
		}
	}
	return true
}

// IsQuotedText reports whether every code point of s may be carried by
// an HTTP quoted-string. The empty string qualifies.
func IsQuotedText(s string) bool {
	for _, r := range s {
		if !IsQuotedTextRune(r) {
			return false
		}
	}
	return true
}
