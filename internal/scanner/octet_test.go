package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-mimetype/internal/scanner"
)

func TestIsTokenRune(t *testing.T) {
	t.Parallel()

	for _, r := range "abczABCZ0129!#$%&'*+-.^_`|~" {
		assert.True(t, scanner.IsTokenRune(r), "rune %q", r)
	}
	for _, r := range "\x00\t\n\r (),/:;<=>?@[\\]\"{}\x7fé€" {
		assert.False(t, scanner.IsTokenRune(r), "rune %q", r)
	}
}

func TestIsQuotedTextRune(t *testing.T) {
	t.Parallel()

	for _, r := range "\ta z~\"\\éÿ\u00ff" {
		assert.True(t, scanner.IsQuotedTextRune(r), "rune %q", r)
	}
	for _, r := range "\x00\n\r\x0b\x1f\x7f\u0100€" {
		assert.False(t, scanner.IsQuotedTextRune(r), "rune %q", r)
	}
}

func TestIsToken(t *testing.T) {
	t.Parallel()

	assert.True(t, scanner.IsToken("text"))
	assert.True(t, scanner.IsToken("x-custom+json"))
	assert.False(t, scanner.IsToken(""))
	assert.False(t, scanner.IsToken("te xt"))
	assert.False(t, scanner.IsToken("text;"))
}

func TestIsQuotedText(t *testing.T) {
	t.Parallel()

	assert.True(t, scanner.IsQuotedText(""))
	assert.True(t, scanner.IsQuotedText(`spaces and "quotes" are fine`))
	assert.True(t, scanner.IsQuotedText("látin1 ÿ"))
	assert.False(t, scanner.IsQuotedText("line\nbreak"))
	assert.False(t, scanner.IsQuotedText("€"))
}

func TestIsWhitespaceRune(t *testing.T) {
	t.Parallel()

	for _, r := range "\t\n\r " {
		assert.True(t, scanner.IsWhitespaceRune(r), "rune %q", r)
	}

	// the HTTP whitespace set has only four members; form feed and
	// vertical tab are not among them
	for _, r := range "\x0b\x0c\u00a0x" {
		assert.False(t, scanner.IsWhitespaceRune(r), "rune %q", r)
	}
}
