package charset

import (
	"bytes"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// BOMEncoding identifies the byte-order-mark family detected at the start
// of a stream.
type BOMEncoding int

const (
	// BOMNone indicates no recognized byte-order mark was present.
	BOMNone BOMEncoding = iota
	// BOMUTF8 is the UTF-8 BOM, 0xEF 0xBB 0xBF.
	BOMUTF8
	// BOMUTF16LE is the UTF-16 little-endian BOM, 0xFF 0xFE.
	BOMUTF16LE
	// BOMUTF16BE is the UTF-16 big-endian BOM, 0xFE 0xFF.
	BOMUTF16BE
)

// DetectBOM inspects up to the first three bytes of b for a recognized
// byte-order mark. It returns the detected encoding and the remaining
// bytes with any BOM stripped. b is not mutated.
func DetectBOM(b []byte) (BOMEncoding, []byte) {
	switch {
	case len(b) >= 2 && b[0] == 0xFF && b[1] == 0xFE:
		return BOMUTF16LE, b[2:]
	case len(b) >= 2 && b[0] == 0xFE && b[1] == 0xFF:
		return BOMUTF16BE, b[2:]
	case len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF:
		return BOMUTF8, b[3:]
	default:
		return BOMNone, b
	}
}

// DecodeUTF16 converts UTF-16 encoded bytes (BOM already stripped) to
// UTF-8, using the indicated byte order.
func DecodeUTF16(b []byte, bigEndian bool) ([]byte, error) {
	endian := unicode.LittleEndian
	if bigEndian {
		endian = unicode.BigEndian
	}
	decoder := unicode.UTF16(endian, unicode.IgnoreBOM).NewDecoder()
	r := transform.NewReader(bytes.NewReader(b), decoder)
	return io.ReadAll(r)
}

// NormalizeToUTF8 resolves a complete GEDCOM byte stream to UTF-8 text,
// given the character set name declared by the file's own HEAD.CHAR tag
// (or "" if undetected). BOM detection takes priority over the declared
// charset for selecting between UTF-16 and 8-bit interpretations, matching
// real-world producer behavior of writing a BOM for UTF-16/UTF-8 files but
// leaving ANSEL/ASCII files BOM-less.
//
// declaredCharset is compared case-insensitively against "ANSEL", which
// selects ANSEL decoding. Any other value, including "", "ASCII", "UTF-8"
// and "UNICODE", is read as UTF-8, and bytes that are not valid UTF-8 fall
// back to ANSEL. UTF-16 is recognized only by its BOM.
func NormalizeToUTF8(raw []byte, declaredCharset string) ([]byte, error) {
	bom, rest := DetectBOM(raw)
	switch bom {
	case BOMUTF16LE:
		return DecodeUTF16(rest, false)
	case BOMUTF16BE:
		return DecodeUTF16(rest, true)
	case BOMUTF8:
		raw = rest
	default:
		raw = rest
	}

	if isANSEL(declaredCharset) {
		return []byte(DecodeString(raw)), nil
	}

	if !utf8.Valid(raw) {
		// Forgiving fallback: treat undeclared-but-invalid UTF-8 as ANSEL,
		// since that is the only other 8-bit GEDCOM encoding in scope.
		return []byte(DecodeString(raw)), nil
	}
	return raw, nil
}

func isANSEL(declared string) bool {
	switch normalizeCharsetName(declared) {
	case "ANSEL":
		return true
	default:
		return false
	}
}

func normalizeCharsetName(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		out = append(out, c)
	}
	return string(out)
}
