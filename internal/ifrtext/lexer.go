package ifrtext

import (
	"bytes"
	"errors"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var errUnsupportedEncoding = errors.New("ifrtext: unsupported encoding")

// DecodeInput converts dump or script bytes to UTF-8. A BOM always wins over
// the declared encoding; without one the declared encoding (or UTF-8) applies.
func DecodeInput(data []byte, enc string) ([]byte, error) {
	if bytes.HasPrefix(data, UTF16LEBOM) {
		return decodeUTF16LE(data[len(UTF16LEBOM):])
	}
	if bytes.HasPrefix(data, UTF8BOM) {
		return data[len(UTF8BOM):], nil
	}
	switch strings.ToUpper(enc) {
	case "", EncodingUTF8:
		return data, nil // no copy
	case EncodingUTF16LE:
		return decodeUTF16LE(data)
	default:
		return nil, errUnsupportedEncoding
	}
}

func decodeUTF16LE(data []byte) ([]byte, error) {
	dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	out, _, err := transform.Bytes(dec, data)
	return out, err
}

// EncodeUTF16LE encodes a string to UTF-16LE, optionally prefixed with a BOM.
// Used when emitting scripts for shells that expect UCS-2 .nsh files.
func EncodeUTF16LE(s string, withBOM bool) []byte {
	bom := unicode.IgnoreBOM
	if withBOM {
		bom = unicode.UseBOM
	}
	enc := unicode.UTF16(unicode.LittleEndian, bom).NewEncoder()
	out, _, _ := transform.Bytes(enc, []byte(s))
	return out
}
