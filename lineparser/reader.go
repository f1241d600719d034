package lineparser

import (
	"bytes"
	"io"
	"strings"

	"github.com/jnorthrup/gedcom4go/charset"
)

// ReadAll reads an entire GEDCOM byte stream, resolves its character
// encoding (BOM-directed UTF-16 transcoding, or ANSEL/UTF-8 8-bit
// resolution guided by the header's own HEAD.CHAR declaration), splits it
// into logical lines normalizing CR/LF/CRLF, and lexes each line.
//
// The returned Warnings accumulate both lexical observations (over-length
// lines) from LexLine and are safe to ignore for callers that only care
// about the fatal error return.
func ReadAll(r io.Reader) ([]*Line, []Warning, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}

	declared := scanDeclaredCharset(raw)
	normalized, err := charset.NormalizeToUTF8(raw, declared)
	if err != nil {
		return nil, nil, err
	}

	var lines []*Line
	var warnings []Warning
	lineNumber := 0
	for _, rawLine := range splitLines(normalized) {
		lineNumber++
		if strings.TrimSpace(rawLine) == "" {
			continue
		}
		line, w, err := LexLine(rawLine, lineNumber)
		warnings = append(warnings, w...)
		if err != nil {
			return nil, warnings, err
		}
		lines = append(lines, line)
	}

	return lines, warnings, nil
}

// splitLines normalizes CR, LF, and CRLF line endings into a slice of
// logical lines, preserving empty lines so line numbering stays accurate.
func splitLines(b []byte) []string {
	s := string(b)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// scanDeclaredCharset looks for "1 CHAR <value>" inside the file's leading
// HEAD record using only ASCII-safe byte splitting, since GEDCOM structural
// tokens (levels and tags) are always ASCII regardless of whether the
// file's data values are ANSEL or UTF-8 encoded. Returns "" if no HEAD.CHAR
// declaration is found.
func scanDeclaredCharset(raw []byte) string {
	inHead := false
	for _, rawLine := range bytes.Split(normalizeNewlines(raw), []byte("\n")) {
		fields := strings.Fields(string(rawLine))
		if len(fields) < 2 {
			continue
		}
		if fields[0] == "0" {
			if inHead {
				break // left the header without finding CHAR
			}
			inHead = strings.EqualFold(fields[1], "HEAD")
			continue
		}
		if inHead && fields[0] == "1" && strings.EqualFold(fields[1], "CHAR") {
			return strings.Join(fields[2:], " ")
		}
	}
	return ""
}

func normalizeNewlines(b []byte) []byte {
	b = bytes.ReplaceAll(b, []byte("\r\n"), []byte("\n"))
	return bytes.ReplaceAll(b, []byte("\r"), []byte("\n"))
}
