package decoder

import (
	"strings"
	"testing"
)

func TestDecodeEmptyFileIsStructuralFailure(t *testing.T) {
	_, _, err := Decode(strings.NewReader(""))
	if err == nil {
		t.Fatal("expected a structural error for an empty file")
	}
}

func TestDecodeTrailerOnlyFileReportsMissingHead(t *testing.T) {
	doc, diags, err := Decode(strings.NewReader("0 TRLR\n"))
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if doc.Header != nil {
		t.Fatal("expected no header")
	}
	if len(doc.Individuals) != 0 || len(doc.Families) != 0 {
		t.Fatal("expected empty collections")
	}
	if !diags.HasErrors() {
		t.Fatal("expected a missing-HEAD error")
	}
	found := false
	for _, d := range diags {
		if d.Code == CodeMissingHead {
			found = true
		}
	}
	if !found {
		t.Fatal("expected CodeMissingHead among diagnostics")
	}
}

func TestDecodeMinimalValidFile(t *testing.T) {
	input := `0 HEAD
1 GEDC
2 VERS 5.5.1
2 FORM LINEAGE-LINKED
1 CHAR UTF-8
0 @I1@ INDI
1 NAME John /Smith/
0 TRLR
`
	doc, diags, err := Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	ind := doc.GetIndividual("@I1@")
	if ind == nil || len(ind.Names) != 1 || ind.Names[0].Full != "John /Smith/" {
		t.Fatalf("unexpected individual: %+v", ind)
	}
	if diags.HasErrors() {
		t.Fatalf("expected no errors, got %v", diags.Errors())
	}
	if len(diags.Warnings()) != 0 {
		t.Fatalf("expected no warnings, got %v", diags.Warnings())
	}
}

func TestDecodeForwardXRefSharesHandle(t *testing.T) {
	input := `0 HEAD
1 GEDC
2 VERS 5.5.1
0 @F1@ FAM
1 HUSB @I1@
0 @I1@ INDI
1 NAME A /B/
0 TRLR
`
	doc, _, err := Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	fam := doc.GetFamily("@F1@")
	ind := doc.GetIndividual("@I1@")
	if fam == nil || ind == nil {
		t.Fatal("expected both family and individual to resolve")
	}
	if fam.Husband != ind {
		t.Fatal("expected fam.Husband to be the same object as the top-level individual")
	}
}

func TestDecodeVersionConformanceWarning(t *testing.T) {
	input := `0 HEAD
1 GEDC
2 VERS 5.5
0 @I1@ INDI
1 EMAIL x@y
0 TRLR
`
	doc, diags, err := Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	ind := doc.GetIndividual("@I1@")
	if len(ind.Email) != 1 || ind.Email[0] != "x@y" {
		t.Fatalf("expected email to still be loaded, got %+v", ind.Email)
	}
	warnings := diags.Warnings()
	if len(warnings) != 1 {
		t.Fatalf("expected exactly one warning, got %d: %v", len(warnings), warnings)
	}
	if !strings.Contains(warnings[0].Message, "5.5.1") {
		t.Fatalf("expected warning to mention 5.5.1, got %q", warnings[0].Message)
	}
}

func TestDecodeContConcReconstruction(t *testing.T) {
	input := `0 HEAD
1 GEDC
2 VERS 5.5.1
0 @N1@ NOTE Hello
1 CONC , world
1 CONT How are you
0 TRLR
`
	doc, _, err := Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	note := doc.GetNote("@N1@")
	want := []string{"Hello, world", "How are you"}
	if len(note.Text) != len(want) {
		t.Fatalf("unexpected note lines: %+v", note.Text)
	}
	for i := range want {
		if note.Text[i] != want[i] {
			t.Fatalf("line %d: got %q, want %q", i, note.Text[i], want[i])
		}
	}
}

func TestDecodeMultimediaStyleConflict(t *testing.T) {
	input := `0 HEAD
1 GEDC
2 VERS 5.5
0 @M1@ OBJE
1 FILE photo.jpg
2 FORM jpg
0 TRLR
`
	doc, diags, err := Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	obj := doc.GetMultimedia("@M1@")
	if obj == nil || len(obj.FileReferences) != 1 {
		t.Fatalf("unexpected multimedia: %+v", obj)
	}
	ref := obj.FileReferences[0]
	if ref.Ref != "photo.jpg" || ref.Format != "jpg" {
		t.Fatalf("unexpected file reference: %+v", ref)
	}
	found := false
	for _, d := range diags.Warnings() {
		if strings.Contains(d.Message, "5.5.1") {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a warning mentioning the 5.5.1-style conflict")
	}
}

func TestDecodeCitationDiscrimination(t *testing.T) {
	input := `0 HEAD
1 GEDC
2 VERS 5.5.1
0 @I1@ INDI
1 SOUR @S1@
1 SOUR Parish register
0 @S1@ SOUR
1 TITL Parish Records
0 TRLR
`
	doc, _, err := Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	ind := doc.GetIndividual("@I1@")
	if len(ind.Citations) != 2 {
		t.Fatalf("expected two citations, got %d", len(ind.Citations))
	}
	withSource, withoutSource := ind.Citations[0], ind.Citations[1]
	if withSource.Source == nil || withSource.Source.XRef != "@S1@" {
		t.Fatalf("expected first citation to resolve @S1@, got %+v", withSource)
	}
	if len(withoutSource.Description) != 1 || withoutSource.Description[0] != "Parish register" {
		t.Fatalf("expected second citation's description, got %+v", withoutSource.Description)
	}
}

func TestDecodeUnderscoreCustomTagNeverErrors(t *testing.T) {
	input := `0 HEAD
1 GEDC
2 VERS 5.5.1
0 @I1@ INDI
1 _MYTAG some value
0 TRLR
`
	doc, diags, err := Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	ind := doc.GetIndividual("@I1@")
	if len(ind.CustomTags) != 1 || ind.CustomTags[0].Tag != "_MYTAG" {
		t.Fatalf("expected custom tag recorded, got %+v", ind.CustomTags)
	}
	if diags.HasErrors() {
		t.Fatalf("custom tags must never produce errors, got %v", diags.Errors())
	}
}

func TestDecodeDanglingXRefIsFlagged(t *testing.T) {
	input := `0 HEAD
1 GEDC
2 VERS 5.5.1
0 @I1@ INDI
1 FAMC @F9@
0 TRLR
`
	_, diags, err := Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	found := false
	for _, d := range diags.Errors() {
		if d.Code == CodeDanglingXRef {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a dangling-xref error for @F9@")
	}
}
