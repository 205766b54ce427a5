package executor

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// decodeText turns raw file bytes into a string, trying UTF-8 first, then
// BOM-marked UTF-16, then Latin-1. Latin-1 accepts any byte, so the only
// inputs rejected outright are NUL-bearing ones, which mark binary files.
func decodeText(path string, raw []byte) (string, error) {
	if utf8.Valid(raw) {
		if bytes.IndexByte(raw, 0) >= 0 {
			return "", &EncodingError{Path: path}
		}
		return string(raw), nil
	}

	if len(raw) >= 2 {
		var dec *encoding.Decoder
		switch {
		case raw[0] == 0xFE && raw[1] == 0xFF:
			dec = unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
		case raw[0] == 0xFF && raw[1] == 0xFE:
			dec = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		}
		if dec != nil {
			decoded, err := dec.Bytes(raw)
			if err == nil && utf8.Valid(decoded) {
				return string(decoded), nil
			}
		}
	}

	if bytes.IndexByte(raw, 0) >= 0 {
		return "", &EncodingError{Path: path}
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return "", &EncodingError{Path: path}
	}
	return string(decoded), nil
}
