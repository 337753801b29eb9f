package textio

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDecodingReader_Windows1250(t *testing.T) {
	t.Parallel()

	// "Hráč" in windows-1250.
	raw := []byte{0x48, 0x72, 0xE1, 0xE8}

	r, err := NewDecodingReader(bytes.NewReader(raw), "windows-1250")
	require.NoError(t, err)

	decoded, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "Hráč", string(decoded))
}

func TestNewDecodingReader_ISO88592(t *testing.T) {
	t.Parallel()

	// "Hráč" in iso-8859-2.
	raw := []byte{0x48, 0x72, 0xE1, 0xE8}

	r, err := NewDecodingReader(bytes.NewReader(raw), "iso-8859-2")
	require.NoError(t, err)

	decoded, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "Hráč", string(decoded))
}

func TestNewDecodingReader_UTF8PassThrough(t *testing.T) {
	t.Parallel()

	src := strings.NewReader("Příjmení, Hráč")

	for _, name := range []string{"", "utf-8", "UTF8"} {
		r, err := NewDecodingReader(src, name)
		require.NoError(t, err)
		assert.Same(t, io.Reader(src), r, "utf-8 input needs no decoding wrapper")
	}
}

func TestNewDecodingReader_Unsupported(t *testing.T) {
	t.Parallel()

	_, err := NewDecodingReader(strings.NewReader(""), "koi8-r")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "koi8-r")
}

func TestSupportedEncoding(t *testing.T) {
	t.Parallel()

	assert.True(t, SupportedEncoding("utf-8"))
	assert.True(t, SupportedEncoding("Windows-1250"))
	assert.True(t, SupportedEncoding("cp1250"))
	assert.True(t, SupportedEncoding(" iso-8859-2 "))
	assert.True(t, SupportedEncoding("latin-2"))
	assert.False(t, SupportedEncoding("koi8-r"))
}

// countingWriteCloser records writes and whether it was closed.
type countingWriteCloser struct {
	bytes.Buffer
	closed bool
}

func (c *countingWriteCloser) Close() error {
	c.closed = true
	return nil
}

func TestLazyWriteCloser_OpensOnFirstWrite(t *testing.T) {
	t.Parallel()

	var target *countingWriteCloser
	opens := 0
	l := NewLazyWriteCloser(func() (io.WriteCloser, error) {
		opens++
		target = &countingWriteCloser{}
		return target, nil
	})

	require.Equal(t, 0, opens, "nothing opened before the first write")

	_, err := l.Write([]byte("first"))
	require.NoError(t, err)
	_, err = l.Write([]byte(" second"))
	require.NoError(t, err)
	require.NoError(t, l.Close())

	assert.Equal(t, 1, opens)
	assert.Equal(t, "first second", target.String())
	assert.True(t, target.closed)
}

func TestLazyWriteCloser_NoWriteNoOpen(t *testing.T) {
	t.Parallel()

	opens := 0
	l := NewLazyWriteCloser(func() (io.WriteCloser, error) {
		opens++
		return &countingWriteCloser{}, nil
	})

	require.NoError(t, l.Close())
	assert.Equal(t, 0, opens)
}

func TestLazyWriteCloser_StickyOpenError(t *testing.T) {
	t.Parallel()

	openErr := errors.New("disk gone")
	opens := 0
	l := NewLazyWriteCloser(func() (io.WriteCloser, error) {
		opens++
		return nil, openErr
	})

	_, err := l.Write([]byte("x"))
	assert.ErrorIs(t, err, openErr)
	_, err = l.Write([]byte("y"))
	assert.ErrorIs(t, err, openErr)
	assert.Equal(t, 1, opens, "open failure is not retried")
	assert.NoError(t, l.Close())
}
