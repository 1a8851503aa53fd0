// Package charset resolves the charset parameter of a parsed media type
// into a character encoding, using the IANA index provided by
// golang.org/x/text. This will make the size of your compiled binaries
// somewhat larger, but it gives your code the ability to decode pretty
// much any character set it might encounter in the wild wild world of
// HTTP.
package charset

import (
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/zostay/go-mimetype"
)

// Lookup returns the character encoding registered for the given
// charset name, which is matched case-insensitively against the IANA
// registry.
func Lookup(name string) (encoding.Encoding, error) {
	e, err := ianaindex.MIME.Encoding(name)
	if err != nil {
		return nil, err
	}

	if e == nil {
		return nil, fmt.Errorf("no encoding found for charset %q", name)
	}

	return e, nil
}

// NewReader wraps r so that payload bytes are decoded into UTF-8
// according to the charset parameter of mt. When the media type carries
// no charset parameter, UTF-8 is assumed. If the charset names an
// encoding this package does not know, an error is returned.
func NewReader(mt *mimetype.MimeType, r io.Reader) (io.Reader, error) {
	name := mt.Charset()
	if name == "" {
		name = "utf-8"
	}

	e, err := Lookup(name)
	if err != nil {
		return nil, err
	}

	return e.NewDecoder().Reader(r), nil
}
