package lineparser

import "testing"

func TestLexLineBasic(t *testing.T) {
	l, _, err := LexLine("1 NAME John /Smith/", 5)
	if err != nil {
		t.Fatalf("LexLine error: %v", err)
	}
	if l.Level != 1 || l.Tag != "NAME" || l.Value != "John /Smith/" || l.LineNumber != 5 {
		t.Fatalf("unexpected line: %+v", l)
	}
}

func TestLexLineWithXRef(t *testing.T) {
	l, _, err := LexLine("0 @I1@ INDI", 1)
	if err != nil {
		t.Fatalf("LexLine error: %v", err)
	}
	if l.Level != 0 || l.XRefID != "@I1@" || l.Tag != "INDI" || l.Value != "" {
		t.Fatalf("unexpected line: %+v", l)
	}
}

func TestLexLineLowercaseTagUppercased(t *testing.T) {
	l, _, err := LexLine("1 name John", 1)
	if err != nil {
		t.Fatalf("LexLine error: %v", err)
	}
	if l.Tag != "NAME" {
		t.Fatalf("expected uppercased tag, got %q", l.Tag)
	}
}

func TestLexLineCustomTag(t *testing.T) {
	l, _, err := LexLine("2 _FSFTID KWCJ-QN7", 1)
	if err != nil {
		t.Fatalf("LexLine error: %v", err)
	}
	if l.Tag != "_FSFTID" || l.Value != "KWCJ-QN7" {
		t.Fatalf("unexpected line: %+v", l)
	}
}

func TestLexLineNoLevelIsFatal(t *testing.T) {
	_, _, err := LexLine("HEAD", 1)
	if err == nil {
		t.Fatal("expected error for line with no level")
	}
}

func TestLexLineNegativeLevelIsFatal(t *testing.T) {
	_, _, err := LexLine("-1 HEAD", 1)
	if err == nil {
		t.Fatal("expected error for negative level")
	}
}

func TestLexLineMalformedXRef(t *testing.T) {
	_, _, err := LexLine("0 @I 1@ INDI", 1)
	if err == nil {
		t.Fatal("expected error for malformed xref")
	}
}

func TestLexLineOverLongLineWarns(t *testing.T) {
	long := "1 NOTE "
	for len(long) <= MaxLineLength {
		long += "x"
	}
	_, warnings, err := LexLine(long, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected one warning for over-length line, got %d", len(warnings))
	}
}

func TestLexLineEmptyValuePreserved(t *testing.T) {
	l, _, err := LexLine("1 CONT", 1)
	if err != nil {
		t.Fatalf("LexLine error: %v", err)
	}
	if l.Value != "" {
		t.Fatalf("expected empty value, got %q", l.Value)
	}
}

func TestIsXRef(t *testing.T) {
	if !IsXRef("@I1@") {
		t.Error("expected @I1@ to be a valid xref")
	}
	if IsXRef("@I 1@") {
		t.Error("expected @I 1@ to be invalid")
	}
	if IsXRef("I1") {
		t.Error("expected I1 (no @) to be invalid")
	}
}
