package charset

import "testing"

func TestDecodeASCIIPassthrough(t *testing.T) {
	for b := 0; b < 0x80; b++ {
		if got := Decode(byte(b)); got != rune(b) {
			t.Fatalf("Decode(0x%02X) = %q, want %q", b, got, rune(b))
		}
	}
}

func TestDecodeExtendedLatin(t *testing.T) {
	cases := map[byte]rune{
		0xA1: 'Ł',
		0xA5: 'Æ',
		0xB1: 'ł',
		0xB5: 'æ',
		0xC3: '©',
		0xCF: 'ß',
	}
	for b, want := range cases {
		if got := Decode(b); got != want {
			t.Errorf("Decode(0x%02X) = %q, want %q", b, got, want)
		}
	}
}

func TestDecodeUnmappedHighByte(t *testing.T) {
	for _, b := range []byte{0x80, 0x9F, 0xAF, 0xBB, 0xC9, 0xFF} {
		if got := Decode(b); got != ReplacementRune {
			t.Errorf("Decode(0x%02X) = %q, want replacement %q", b, got, ReplacementRune)
		}
	}
}

func TestRoundTripCanonicalPairs(t *testing.T) {
	for b, r := range anselToUnicode {
		if got := Decode(b); got != r {
			t.Fatalf("decode(encode) mismatch for byte 0x%02X: got %q want %q", b, got, r)
		}
		gotByte, ok := Encode(r)
		if !ok {
			t.Fatalf("Encode(%q) missing mapping, want 0x%02X", r, b)
		}
		if gotByte != b {
			t.Fatalf("encode(decode) mismatch for rune %q: got 0x%02X want 0x%02X", r, gotByte, b)
		}
	}
	for b, r := range anselCombining {
		if got := Decode(b); got != r {
			t.Fatalf("decode(encode) mismatch for combining byte 0x%02X: got %q want %q", b, got, r)
		}
		gotByte, ok := Encode(r)
		if !ok {
			t.Fatalf("Encode(%q) missing mapping, want 0x%02X", r, b)
		}
		if gotByte != b {
			t.Fatalf("encode(decode) mismatch for combining rune %q: got 0x%02X want 0x%02X", r, gotByte, b)
		}
	}
}

func TestEncodeUnknownRune(t *testing.T) {
	if _, ok := Encode('漢'); ok {
		t.Fatalf("Encode('漢') unexpectedly found a mapping")
	}
}

func TestEncodeLossyFallsBackToLowByte(t *testing.T) {
	// 'A' has no special ANSEL mapping of its own value beyond ASCII identity.
	if got := EncodeLossy('A'); got != 'A' {
		t.Errorf("EncodeLossy('A') = 0x%02X, want 0x41", got)
	}
	// A rune with no ANSEL mapping at all returns its low byte (U+6F22 -> 0x22).
	if got := EncodeLossy('漢'); got != 0x22 {
		t.Errorf("EncodeLossy('漢') = 0x%02X, want 0x22", got)
	}
}

func TestIsCombiningDiacritical(t *testing.T) {
	if !IsCombiningDiacritical(0xE0) || !IsCombiningDiacritical(0xFE) {
		t.Errorf("expected 0xE0 and 0xFE to be combining diacriticals")
	}
	if IsCombiningDiacritical(0xDF) || IsCombiningDiacritical(0xFF) {
		t.Errorf("expected 0xDF and 0xFF to not be combining diacriticals")
	}
}

func TestDecodeStringCombiningMarkOrderPreserved(t *testing.T) {
	// ANSEL places the combining mark before the base letter; this package
	// does not reorder, so the decoded string preserves source byte order.
	got := DecodeString([]byte{0xE2, 'e'})
	want := string([]rune{'́', 'e'})
	if got != want {
		t.Errorf("DecodeString([acute,e]) = %q, want %q (no reordering)", got, want)
	}
}
