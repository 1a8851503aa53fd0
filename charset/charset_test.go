package charset_test

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-mimetype"
	"github.com/zostay/go-mimetype/charset"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	e, err := charset.Lookup("utf-8")
	require.NoError(t, err)
	assert.NotNil(t, e)

	e, err = charset.Lookup("ISO-8859-1")
	require.NoError(t, err)
	assert.NotNil(t, e)

	_, err = charset.Lookup("not-a-real-charset")
	assert.Error(t, err)
}

func TestNewReader(t *testing.T) {
	t.Parallel()

	mt, err := mimetype.Parse("text/plain;charset=iso-8859-1")
	require.NoError(t, err)

	r, err := charset.NewReader(mt, strings.NewReader("caf\xe9"))
	require.NoError(t, err)

	decoded, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "café", string(decoded))
}

func TestNewReader_DefaultCharset(t *testing.T) {
	t.Parallel()

	mt, err := mimetype.Parse("application/json")
	require.NoError(t, err)

	r, err := charset.NewReader(mt, strings.NewReader(`{"dice":"⚀⚁⚂"}`))
	require.NoError(t, err)

	decoded, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, `{"dice":"⚀⚁⚂"}`, string(decoded))
}
