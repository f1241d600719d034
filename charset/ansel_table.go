package charset

// anselToUnicode maps ANSEL extended Latin characters (0xA1-0xCF) to Unicode
// code points. These are single-byte mappings for special letters and
// symbols used in European languages and other contexts found in
// genealogical records.
//
// Source: the canonical pairs enumerated in this module's specification,
// cross-checked against the Library of Congress MARC-8 table.
var anselToUnicode = map[byte]rune{
	// Uppercase special letters
	0xA1: 'Ł', // Ł
	0xA2: 'Ø', // Ø
	0xA3: 'Đ', // Đ
	0xA4: 'Þ', // Þ
	0xA5: 'Æ', // Æ
	0xA6: 'Œ', // Œ
	0xA7: 'ʹ', // ʹ
	0xA8: '·', // ·
	0xA9: '♭', // ♭
	0xAA: '®', // ®
	0xAB: '±', // ±
	0xAC: 'Ơ', // Ơ
	0xAD: 'Ư', // Ư
	0xAE: 'ʼ', // ʼ
	// 0xAF is undefined in ANSEL
	0xB0: 'ʻ', // ʻ

	// Lowercase special letters
	0xB1: 'ł', // ł
	0xB2: 'ø', // ø
	0xB3: 'đ', // đ
	0xB4: 'þ', // þ
	0xB5: 'æ', // æ
	0xB6: 'œ', // œ
	0xB7: 'ʺ', // ʺ
	0xB8: 'ı', // ı
	0xB9: '£', // £
	0xBA: 'ð', // ð
	// 0xBB is undefined in ANSEL
	0xBC: 'ơ', // ơ
	0xBD: 'ư', // ư

	// Symbols and punctuation
	0xC0: '°', // °
	0xC1: 'ℓ', // ℓ
	0xC2: '℗', // ℗
	0xC3: '©', // ©
	0xC4: '♯', // ♯
	0xC5: '¿', // ¿
	0xC6: '¡', // ¡
	// 0xC9-0xCC are undefined in ANSEL
	0xCF: 'ß', // ß
}

// anselCombining maps ANSEL combining diacritical marks (0xE0-0xFE) to their
// Unicode combining-mark equivalents. In ANSEL, a combining mark precedes
// the base character it modifies; in Unicode, combining marks follow the
// base character. This module performs only the one-to-one byte<->code
// point translation (spec-mandated); reordering relative to the base
// character is a higher-layer concern and is out of scope here.
var anselCombining = map[byte]rune{
	0xE0: '̉', // Combining hook above
	0xE1: '̀', // Combining grave accent
	0xE2: '́', // Combining acute accent
	0xE3: '̂', // Combining circumflex accent
	0xE4: '̃', // Combining tilde
	0xE5: '̄', // Combining macron
	0xE6: '̆', // Combining breve
	0xE7: '̇', // Combining dot above
	0xE8: '̈', // Combining diaeresis (umlaut)
	0xE9: '̌', // Combining caron (hacek)
	0xEA: '̊', // Combining ring above
	0xEB: '︠', // Combining ligature left half
	0xEC: '︡', // Combining ligature right half
	0xED: '̕', // Combining comma above right
	0xEE: '̋', // Combining double acute accent
	0xEF: '̐', // Combining candrabindu
	0xF0: '̧', // Combining cedilla
	0xF1: '̨', // Combining ogonek
	0xF2: '̣', // Combining dot below
	0xF3: '̤', // Combining diaeresis below
	0xF4: '̥', // Combining ring below
	0xF5: '̳', // Combining double low line
	0xF6: '̲', // Combining low line
	0xF7: '̦', // Combining comma below
	0xF8: '̜', // Combining left half ring below
	0xF9: '̮', // Combining breve below
	0xFA: '͠', // Combining double tilde (first half)
	0xFB: '͡', // Combining double inverted breve
	// 0xFC, 0xFD are undefined in ANSEL
	0xFE: '̓', // Combining comma above
}

// IsCombiningDiacritical reports whether b falls in the ANSEL combining
// diacritical range (0xE0-0xFE), regardless of whether that specific byte
// has a defined mapping.
func IsCombiningDiacritical(b byte) bool {
	return b >= 0xE0 && b <= 0xFE
}
