package mimetype_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-mimetype"
)

func TestExtract(t *testing.T) {
	t.Parallel()

	mt, err := mimetype.Extract([]string{"text/html;charset=gbk"})
	require.NoError(t, err)
	assert.Equal(t, "text/html", mt.Essence())
	assert.Equal(t, "gbk", mt.Charset())

	// the last acceptable value wins
	mt, err = mimetype.Extract([]string{"text/html", "application/json"})
	require.NoError(t, err)
	assert.Equal(t, "application/json", mt.Essence())

	// unparseable values are skipped
	mt, err = mimetype.Extract([]string{"text/html;charset=gbk", "bogus"})
	require.NoError(t, err)
	assert.Equal(t, "text/html", mt.Essence())
	assert.Equal(t, "gbk", mt.Charset())

	// the wildcard is never an acceptable answer
	mt, err = mimetype.Extract([]string{"*/*", "application/json"})
	require.NoError(t, err)
	assert.Equal(t, "application/json", mt.Essence())

	_, err = mimetype.Extract([]string{"*/*;charset=gbk"})
	assert.ErrorIs(t, err, mimetype.ErrNoMediaType)
}

func TestExtract_NoValue(t *testing.T) {
	t.Parallel()

	_, err := mimetype.Extract(nil)
	assert.ErrorIs(t, err, mimetype.ErrNoMediaType)

	_, err = mimetype.Extract([]string{})
	assert.ErrorIs(t, err, mimetype.ErrNoMediaType)

	_, err = mimetype.Extract([]string{"bogus", "also bogus"})
	assert.ErrorIs(t, err, mimetype.ErrNoMediaType)
}

func TestExtract_CharsetCarryForward(t *testing.T) {
	t.Parallel()

	// a later value of the same essence inherits the established
	// charset when it has none of its own
	mt, err := mimetype.Extract([]string{"text/html;charset=gbk", "text/html"})
	require.NoError(t, err)
	assert.Equal(t, "text/html", mt.Essence())
	assert.Equal(t, "gbk", mt.Charset())

	// its own charset takes precedence
	mt, err = mimetype.Extract([]string{"text/html;charset=gbk", "text/html;charset=utf-8"})
	require.NoError(t, err)
	assert.Equal(t, "utf-8", mt.Charset())

	// a change of essence resets the memory
	mt, err = mimetype.Extract([]string{"text/html;charset=gbk", "text/plain"})
	require.NoError(t, err)
	assert.Equal(t, "text/plain", mt.Essence())
	assert.Equal(t, "", mt.Charset())
	assert.False(t, mt.Parameters().Has(mimetype.Charset))

	// even when the original essence comes back
	mt, err = mimetype.Extract([]string{
		"text/html;charset=gbk",
		"text/plain",
		"text/html",
	})
	require.NoError(t, err)
	assert.Equal(t, "text/html", mt.Essence())
	assert.Equal(t, "", mt.Charset())

	// an inherited charset is appended after the value's own parameters
	mt, err = mimetype.Extract([]string{"text/html;charset=gbk", "text/html;a=1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "charset"}, mt.Parameters().Names())
	assert.Equal(t, "text/html;a=1;charset=gbk", mt.String())
}

func TestExtractFromHeader(t *testing.T) {
	t.Parallel()

	h := http.Header{}
	h.Add("Content-Type", "text/html;charset=gbk")
	h.Add("Content-Type", "text/html")

	mt, err := mimetype.ExtractFromHeader(h)
	require.NoError(t, err)
	assert.Equal(t, "text/html;charset=gbk", mt.String())

	_, err = mimetype.ExtractFromHeader(http.Header{})
	assert.ErrorIs(t, err, mimetype.ErrNoMediaType)

	_, err = mimetype.ExtractFromHeader(nil)
	assert.ErrorIs(t, err, mimetype.ErrNoMediaType)
}
