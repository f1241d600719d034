// Package charset provides character encoding utilities for GEDCOM files.
//
// GEDCOM 5.5 files are most commonly encoded in ANSEL (ANSI/NISO Z39.47), a
// legacy 8-bit encoding that predates Unicode. GEDCOM 5.5.1 files are more
// often UTF-8 or ASCII, but ANSEL remains valid. This package provides:
//
//   - a bidirectional ANSEL <-> Unicode code point mapping (Decode/Encode)
//   - byte-order-mark detection for UTF-8 and UTF-16 streams
//   - NormalizeToUTF8, which converts a whole byte stream in any supported
//     input encoding to UTF-8 bytes
package charset
