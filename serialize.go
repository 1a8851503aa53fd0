package mimetype

import (
	"strings"

	"github.com/zostay/go-mimetype/internal/scanner"
)

// Essence returns the type and subtype joined with a slash, ignoring
// any parameters. For example, "text/html". Because the parser already
// lower-cases both halves, two media types share an essence exactly
// when their Essence() strings are equal.
func (mt *MimeType) Essence() string {
	return mt.typ + "/" + mt.subtype
}

// String returns the canonical serialization of the media type: the
// essence followed by each parameter, in insertion order, as
// ";name=value". A value is emitted bare when it is a legal HTTP token;
// otherwise it is wrapped in quotation marks with every backslash and
// quotation mark inside escaped. An empty value always serializes
// quoted, as "".
func (mt *MimeType) String() string {
	var b strings.Builder
	b.WriteString(mt.Essence())

	for _, name := range mt.params.names {
		value := mt.params.values[name]

		b.WriteByte(';')
		b.WriteString(name)
		b.WriteByte('=')

		if scanner.IsToken(value) {
			b.WriteString(value)
			continue
		}

		b.WriteByte('"')
		for _, r := range value {
			if r == '"' || r == '\\' {
				b.WriteByte('\\')
			}
			b.WriteRune(r)
		}
		b.WriteByte('"')
	}

	return b.String()
}

// Bytes returns the canonical serialization of the media type as a
// slice of bytes.
func (mt *MimeType) Bytes() []byte {
	return []byte(mt.String())
}

// MarshalText implements encoding.TextMarshaler using the canonical
// serialization.
func (mt *MimeType) MarshalText() ([]byte, error) {
	return mt.Bytes(), nil
}

// UnmarshalText implements encoding.TextUnmarshaler by parsing the text
// as a media type.
func (mt *MimeType) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*mt = *parsed
	return nil
}
