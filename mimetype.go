package mimetype

import (
	"errors"
	"strings"

	"github.com/zostay/go-mimetype/internal/scanner"
)

// Errors returned by the parsing and extraction functions. Both mark a
// normal, expected outcome rather than an exceptional one: header
// values found in the wild are frequently malformed and callers are
// expected to have their own fallback policy for the no-value case.
var (
	// ErrInvalidMediaType is returned by Parse() and the constructors
	// when the input does not contain a well-formed type/subtype pair.
	ErrInvalidMediaType = errors.New("invalid media type")

	// ErrNoMediaType is returned by Extract() when none of the header
	// values yields an acceptable media type.
	ErrNoMediaType = errors.New("no media type found in header values")
)

// Well-known parameter names.
const (
	// Charset is the name of the charset parameter that may be present
	// in the Content-type header.
	Charset = "charset"

	// Boundary is the name of the boundary parameter that may be
	// present in the Content-type header.
	Boundary = "boundary"

	// Filename is the name of the filename parameter that may be
	// present in the Content-disposition header.
	Filename = "filename"
)

// MimeType represents a validated media type, such as is carried by the
// Content-type header: a type and subtype plus zero or more named
// parameters. A MimeType object is immutable: you cannot change it in
// place. However, a Modify() function is provided to perform
// transformation of a MimeType into a new MimeType.
//
// Every MimeType satisfies the following invariants: the type and
// subtype are non-empty, lower-cased HTTP tokens; parameter names are
// unique, lower-cased HTTP tokens; parameter values carry only code
// points that an HTTP quoted-string can represent.
type MimeType struct {
	typ     string
	subtype string
	params  Parameters
}

// Parameter represents a single named parameter of a media type. It is
// used to hand ordered parameter lists to NewWithParams().
type Parameter struct {
	Name  string
	Value string
}

// New creates a media type with no parameters. The type and subtype are
// lower-cased. If either is empty or is not an HTTP token, this returns
// ErrInvalidMediaType.
func New(typ, subtype string) (*MimeType, error) {
	if !scanner.IsToken(typ) || !scanner.IsToken(subtype) {
		return nil, ErrInvalidMediaType
	}

	return &MimeType{
		typ:     strings.ToLower(typ),
		subtype: strings.ToLower(subtype),
	}, nil
}

// NewWithParams creates a media type with the given parameters, which
// are kept in the order given. Parameter names are lower-cased. If the
// type or subtype is invalid, if any parameter name is not an HTTP
// token, if any value cannot be represented by an HTTP quoted-string,
// or if two parameters share a name, this returns ErrInvalidMediaType.
func NewWithParams(typ, subtype string, params ...Parameter) (*MimeType, error) {
	mt, err := New(typ, subtype)
	if err != nil {
		return nil, err
	}

	for _, p := range params {
		name := strings.ToLower(p.Name)
		if !scanner.IsToken(name) || !scanner.IsQuotedText(p.Value) || mt.params.Has(name) {
			return nil, ErrInvalidMediaType
		}
		mt.params.add(name, p.Value)
	}

	return mt, nil
}

// Type returns the first half of the media type's essence. For example,
// if Essence() returns "image/jpeg", this method returns "image".
func (mt *MimeType) Type() string {
	return mt.typ
}

// Subtype returns the second half of the media type's essence. For
// example, if Essence() returns "text/html", this method returns
// "html".
func (mt *MimeType) Subtype() string {
	return mt.subtype
}

// Parameters returns the ordered parameters of this media type. Do not
// hold onto the returned object across a Modify() of the MimeType; take
// a Clone() first if you need a stable snapshot.
func (mt *MimeType) Parameters() *Parameters {
	return &mt.params
}

// Parameter returns the value of the parameter with the given name, or
// the empty string when it is absent. Use Parameters().Get() when the
// absent case must be told apart from an empty value.
func (mt *MimeType) Parameter(name string) string {
	return mt.params.values[name]
}

// Charset returns the value of the "charset" parameter.
func (mt *MimeType) Charset() string {
	return mt.params.values[Charset]
}

// Boundary returns the value of the "boundary" parameter.
func (mt *MimeType) Boundary() string {
	return mt.params.values[Boundary]
}

// Filename returns the value of the "filename" parameter. It is
// intended for use with the Content-disposition header.
func (mt *MimeType) Filename() string {
	return mt.params.values[Filename]
}

// Clone returns a deep copy of the MimeType.
func (mt *MimeType) Clone() *MimeType {
	return &MimeType{
		typ:     mt.typ,
		subtype: mt.subtype,
		params:  mt.params.clone(),
	}
}

// Modifier is a modification to apply to a MimeType when calling the
// Modify() function. Modifiers uphold the MimeType invariants: a
// modification that would produce an invalid media type is ignored,
// mirroring the drop-and-continue policy the parser applies to
// malformed parameters.
type Modifier func(*MimeType)

// Change is a Modifier that replaces the type and subtype of the
// MimeType. The replacements are lower-cased; if either is not an HTTP
// token, the change is ignored.
func Change(typ, subtype string) Modifier {
	return func(mt *MimeType) {
		if !scanner.IsToken(typ) || !scanner.IsToken(subtype) {
			return
		}
		mt.typ = strings.ToLower(typ)
		mt.subtype = strings.ToLower(subtype)
	}
}

// Set is a Modifier that sets a parameter with the given name on the
// MimeType, replacing its value in place when already present. The name
// is lower-cased; if it is not an HTTP token, or the value cannot be
// represented by an HTTP quoted-string, the change is ignored.
func Set(name, value string) Modifier {
	return func(mt *MimeType) {
		name = strings.ToLower(name)
		if !scanner.IsToken(name) || !scanner.IsQuotedText(value) {
			return
		}
		mt.params.put(name, value)
	}
}

// Delete is a Modifier that removes the parameter with the given name
// from the MimeType.
func Delete(name string) Modifier {
	return func(mt *MimeType) {
		mt.params.del(strings.ToLower(name))
	}
}

// Modify clones a MimeType, applies the given modifications (if any)
// and returns the new MimeType. You can pass multiple changes to this
// function:
//
//	mt, _ := mimetype.Parse("multipart/mixed; boundary=abc123; charset=latin1")
//	nmt := mimetype.Modify(mt, mimetype.Change("multipart", "alternative"), mimetype.Set("charset", "utf-8"))
func Modify(mt *MimeType, changes ...Modifier) *MimeType {
	copied := mt.Clone()
	for _, change := range changes {
		change(copied)
	}
	return copied
}
