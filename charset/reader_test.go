package charset

import (
	"bytes"
	"testing"
)

func TestDetectBOM(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
		want BOMEncoding
		rest []byte
	}{
		{"utf8", []byte{0xEF, 0xBB, 0xBF, '0', ' '}, BOMUTF8, []byte{'0', ' '}},
		{"utf16le", []byte{0xFF, 0xFE, '0', 0x00}, BOMUTF16LE, []byte{'0', 0x00}},
		{"utf16be", []byte{0xFE, 0xFF, 0x00, '0'}, BOMUTF16BE, []byte{0x00, '0'}},
		{"none", []byte("0 HEAD"), BOMNone, []byte("0 HEAD")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, rest := DetectBOM(tc.in)
			if got != tc.want {
				t.Errorf("DetectBOM encoding = %v, want %v", got, tc.want)
			}
			if !bytes.Equal(rest, tc.rest) {
				t.Errorf("DetectBOM rest = %v, want %v", rest, tc.rest)
			}
		})
	}
}

func TestNormalizeToUTF8_PlainASCII(t *testing.T) {
	in := []byte("0 HEAD\n1 CHAR ASCII\n")
	out, err := NormalizeToUTF8(in, "ASCII")
	if err != nil {
		t.Fatalf("NormalizeToUTF8 error: %v", err)
	}
	if !bytes.Equal(out, in) {
		t.Errorf("NormalizeToUTF8 = %q, want %q", out, in)
	}
}

func TestNormalizeToUTF8_ANSELHighByte(t *testing.T) {
	in := []byte{'1', ' ', 'N', 'A', 'M', 'E', ' ', 0xA5} // trailing AE ligature
	out, err := NormalizeToUTF8(in, "ANSEL")
	if err != nil {
		t.Fatalf("NormalizeToUTF8 error: %v", err)
	}
	want := "1 NAME Æ"
	if string(out) != want {
		t.Errorf("NormalizeToUTF8 = %q, want %q", out, want)
	}
}

func TestNormalizeToUTF8_StripsUTF8BOM(t *testing.T) {
	in := append([]byte{0xEF, 0xBB, 0xBF}, []byte("0 HEAD")...)
	out, err := NormalizeToUTF8(in, "UTF-8")
	if err != nil {
		t.Fatalf("NormalizeToUTF8 error: %v", err)
	}
	if string(out) != "0 HEAD" {
		t.Errorf("NormalizeToUTF8 = %q, want %q", out, "0 HEAD")
	}
}

func TestNormalizeToUTF8_UTF16LE(t *testing.T) {
	// "0 HEAD" in UTF-16LE with BOM.
	in := []byte{0xFF, 0xFE}
	for _, c := range "0 HEAD" {
		in = append(in, byte(c), 0x00)
	}
	out, err := NormalizeToUTF8(in, "")
	if err != nil {
		t.Fatalf("NormalizeToUTF8 error: %v", err)
	}
	if string(out) != "0 HEAD" {
		t.Errorf("NormalizeToUTF8 = %q, want %q", out, "0 HEAD")
	}
}

func TestNormalizeToUTF8_InvalidUTF8FallsBackToANSEL(t *testing.T) {
	in := []byte{'1', ' ', 'N', 'A', 'M', 'E', ' ', 0xA5}
	out, err := NormalizeToUTF8(in, "")
	if err != nil {
		t.Fatalf("NormalizeToUTF8 error: %v", err)
	}
	if string(out) != "1 NAME Æ" {
		t.Errorf("NormalizeToUTF8 = %q, want %q", out, "1 NAME Æ")
	}
}
