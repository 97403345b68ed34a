package inf

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"infreport/internal/errdefs"
)

// Driver-description files in the wild come in three encodings: UTF-16
// with a byte-order mark, UTF-8 (with or without a mark), and the legacy
// Windows-1252 code page for everything older.
var (
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
)

// DecodeText resolves raw's encoding and returns the document as a Go
// string. BOM-marked UTF-16 is transcoded; BOM-less input is taken as
// UTF-8 when it validates and as Windows-1252 otherwise.
func DecodeText(raw []byte) (string, error) {
	switch {
	case bytes.HasPrefix(raw, bomUTF16LE), bytes.HasPrefix(raw, bomUTF16BE):
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		text, err := dec.Bytes(raw)
		if err != nil {
			return "", errdefs.New(errdefs.KindEncoding, fmt.Errorf("decode UTF-16 input: %w", err))
		}
		return string(text), nil
	case bytes.HasPrefix(raw, bomUTF8):
		return string(raw[len(bomUTF8):]), nil
	case utf8.Valid(raw):
		return string(raw), nil
	default:
		text, err := charmap.Windows1252.NewDecoder().Bytes(raw)
		if err != nil {
			return "", errdefs.New(errdefs.KindEncoding, fmt.Errorf("decode Windows-1252 input: %w", err))
		}
		return string(text), nil
	}
}
