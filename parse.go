package mimetype

import (
	"strings"

	"github.com/zostay/go-mimetype/internal/scanner"
)

func isNotSlash(r rune) bool     { return r != '/' }
func isNotSemicolon(r rune) bool { return r != ';' }
func isNotSemicolonOrEquals(r rune) bool {
	return r != ';' && r != '='
}

// Parse parses a single header field value, such as the body of a
// Content-type header, as a media type. It follows the parsing
// algorithm of the WHATWG MIME Sniffing standard, which is deliberately
// forgiving about the malformed values found in real traffic.
//
// Parsing fails with ErrInvalidMediaType only when no well-formed
// type/subtype pair can be found: the type or subtype is empty, one of
// them contains a character that is not legal in an HTTP token, or the
// "/" separator is missing altogether. Anything wrong after the subtype
// is absorbed one parameter at a time instead: a parameter with no "="
// or an empty unquoted value, a name or value containing illegal
// characters, and any repeat of a name already seen are each dropped
// without affecting the rest of the value.
//
// The type, subtype, and parameter names are lower-cased. Parameter
// values keep their case, with quoted values unescaped. Parameter order
// is preserved.
func Parse(input string) (*MimeType, error) {
	input = scanner.TrimWhitespace(input)

	typ, pos := scanner.Collect(input, 0, isNotSlash)
	if !scanner.IsToken(typ) {
		return nil, ErrInvalidMediaType
	}
	if pos >= len(input) {
		// there is no subtype separator
		return nil, ErrInvalidMediaType
	}
	pos++ // the "/"

	var subtype string
	subtype, pos = scanner.Collect(input, pos, isNotSemicolon)
	subtype = scanner.TrimTrailingWhitespace(subtype)
	if !scanner.IsToken(subtype) {
		return nil, ErrInvalidMediaType
	}

	mt := &MimeType{
		typ:     strings.ToLower(typ),
		subtype: strings.ToLower(subtype),
	}

	for pos < len(input) {
		pos++ // the ";"
		pos = scanner.SkipWhitespace(input, pos)

		var name string
		name, pos = scanner.Collect(input, pos, isNotSemicolonOrEquals)
		name = strings.ToLower(name)

		if pos < len(input) {
			if input[pos] == ';' {
				// no value to pair with this name, drop it and move on
				continue
			}
			pos++ // the "="
		}
		if pos >= len(input) {
			break
		}

		var value string
		if input[pos] == '"' {
			value, pos = scanner.CollectQuoted(input, pos, true)

			// anything between the closing quote and the next ";"
			// contributes nothing
			_, pos = scanner.Collect(input, pos, isNotSemicolon)
		} else {
			value, pos = scanner.Collect(input, pos, isNotSemicolon)
			value = scanner.TrimTrailingWhitespace(value)
			if value == "" {
				continue
			}
		}

		if scanner.IsToken(name) && scanner.IsQuotedText(value) && !mt.params.Has(name) {
			mt.params.add(name, value)
		}
	}

	return mt, nil
}
