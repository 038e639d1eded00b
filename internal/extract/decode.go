package extract

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// LookupEncoding resolves a charset label through the WHATWG encoding
// registry and returns its canonical name. An empty label means utf-8.
func LookupEncoding(label string) (encoding.Encoding, string, error) {
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		label = DefaultEncoding
	}
	enc, name := charset.Lookup(label)
	if enc == nil {
		return nil, "", fmt.Errorf("unknown encoding %q", label)
	}
	return enc, name, nil
}

// Decode converts the raw bytes of the body entry to text. UTF-8, under any
// of its aliases, is checked strictly and invalid input is an error. UTF-16
// honours a leading byte order mark and drops it from the text.
func Decode(raw []byte, label string) (string, error) {
	enc, name, err := LookupEncoding(label)
	if err != nil {
		return "", err
	}
	var dec transform.Transformer
	switch name {
	case "utf-8":
		if !utf8.Valid(raw) {
			return "", fmt.Errorf("invalid utf-8 at byte %d", firstInvalid(raw))
		}
		return string(raw), nil
	case "utf-16le", "utf-16be":
		dec = unicode.BOMOverride(enc.NewDecoder())
	default:
		dec = enc.NewDecoder()
	}
	out, _, err := transform.Bytes(dec, raw)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", name, err)
	}
	return string(out), nil
}

func firstInvalid(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(b)
}
