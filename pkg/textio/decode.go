// =============================================================================
// dtb2x - Input Decoding
// =============================================================================
//
// DTB files are exported from Czech Windows installations and arrive in
// utf-8, windows-1250, or iso-8859-2. This module wraps an input stream
// with the matching decoder so the rest of the pipeline only ever sees
// UTF-8 text.
//
// =============================================================================

package textio

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// encodings maps normalized encoding names to their character maps. UTF-8
// is handled separately: it needs no transformation.
var encodings = map[string]*charmap.Charmap{
	"windows-1250": charmap.Windows1250,
	"cp1250":       charmap.Windows1250,
	"iso-8859-2":   charmap.ISO8859_2,
	"latin-2":      charmap.ISO8859_2,
}

// NewDecodingReader wraps r with a decoder for the named encoding. For
// UTF-8 the reader is returned unchanged.
func NewDecodingReader(r io.Reader, name string) (io.Reader, error) {
	if isUTF8(name) {
		return r, nil
	}
	cm, ok := encodings[normalize(name)]
	if !ok {
		return nil, fmt.Errorf("unsupported input encoding %q (supported: %s)", name, EncodingNames())
	}
	var dec *encoding.Decoder = cm.NewDecoder()
	return transform.NewReader(r, dec), nil
}

// SupportedEncoding reports whether name refers to a known input encoding.
func SupportedEncoding(name string) bool {
	return isUTF8(name) || encodings[normalize(name)] != nil
}

// EncodingNames lists the canonical encoding names for error messages.
func EncodingNames() string {
	return "utf-8, windows-1250, iso-8859-2"
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func isUTF8(name string) bool {
	switch normalize(name) {
	case "", "utf-8", "utf8":
		return true
	}
	return false
}
