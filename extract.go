package mimetype

import "net/http"

// ContentType is the name of the header this package is most often
// pointed at.
const ContentType = "Content-type"

// Extract derives the effective media type from the values of a header
// that occurred one or more times in a message, given in the order they
// appeared. A nil slice means the header was absent.
//
// Each value is parsed in turn. Values that fail to parse and values
// whose essence is the "*/*" wildcard are skipped; every other value
// replaces the running result, so the last acceptable value wins.
//
// A charset established by an earlier value carries forward across
// consecutive values sharing the same essence: when a later value of
// the same essence omits the charset parameter, the remembered charset
// is appended to its parameters. A value with a different essence
// resets that memory. For example, extracting from
//
//	Content-type: text/html;charset=gbk
//	Content-type: text/html
//
// yields text/html;charset=gbk, while interposing a text/plain value
// between the two would yield a final text/html with no charset.
//
// If no value yields an acceptable media type, this returns
// ErrNoMediaType. Callers should treat that as a normal outcome and
// apply their own fallback policy.
func Extract(values []string) (*MimeType, error) {
	var (
		mimeType    *MimeType
		essence     string
		charset     string
		haveCharset bool
	)

	for _, value := range values {
		parsed, err := Parse(value)
		if err != nil || parsed.Essence() == "*/*" {
			continue
		}

		mimeType = parsed
		if mimeType.Essence() != essence {
			charset, haveCharset = mimeType.params.Get(Charset)
			essence = mimeType.Essence()
		} else if !mimeType.params.Has(Charset) && haveCharset {
			mimeType.params.add(Charset, charset)
		}
	}

	if mimeType == nil {
		return nil, ErrNoMediaType
	}

	return mimeType, nil
}

// ExtractFromHeader extracts the effective media type from the
// Content-type values of h, as by Extract().
func ExtractFromHeader(h http.Header) (*MimeType, error) {
	if h == nil {
		return nil, ErrNoMediaType
	}
	return Extract(h.Values(ContentType))
}
