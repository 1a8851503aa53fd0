// Package mimetype implements a standards-exact parser, normalizer, and
// serializer for media types ("MIME types") as they travel in
// HTTP-style header fields such as Content-type. It follows the parsing
// and serialization algorithms of the WHATWG MIME Sniffing standard
// rather than the stricter RFC 2045 grammar, because the forgiving
// WHATWG algorithms describe what actually works against the malformed
// headers found in the wild: a bad parameter is dropped and parsing
// carries on, and only a hopeless type/subtype fails a value outright.
//
// The center of the package is the MimeType, an immutable value holding
// a lower-cased type and subtype plus an ordered set of parameters. A
// MimeType is usually produced by Parse(), which handles a single
// header value, or by Extract(), which applies the standard merge rule
// across every occurrence of a header, including the charset
// carry-forward between consecutive values of the same essence. Going
// the other way, String() produces the canonical serialization, quoting
// and escaping parameter values only when the token grammar demands it.
//
// Parse() and Extract() fail by returning ErrInvalidMediaType and
// ErrNoMediaType respectively. Both are ordinary, expected outcomes
// when reading real traffic, not exceptional conditions: callers decide
// for themselves whether the absence of a usable media type is fatal,
// typically by falling back to a default such as text/plain or
// application/octet-stream.
//
// This package tracks the charset parameter as an opaque string and
// assigns no meaning to it. The companion charset package resolves that
// string into a character encoding for decoding payload bytes.
package mimetype
