package gedcom

import "testing"

func TestNewDocumentCollectionsInitialized(t *testing.T) {
	d := NewDocument()
	if d.GetIndividual("@I1@") != nil {
		t.Fatal("expected nil lookup in empty document")
	}
	d.Individuals["@I1@"] = &Individual{XRef: "@I1@"}
	if got := d.GetIndividual("@I1@"); got == nil || got.XRef != "@I1@" {
		t.Fatalf("unexpected lookup result: %+v", got)
	}
}

func TestDocumentSharesHandlesNotCopies(t *testing.T) {
	d := NewDocument()
	husband := &Individual{XRef: "@I1@"}
	d.Individuals["@I1@"] = husband
	fam := &Family{XRef: "@F1@", Husband: husband}
	d.Families["@F1@"] = fam

	husband.Sex = "M"
	if d.Families["@F1@"].Husband.Sex != "M" {
		t.Fatal("mutation through document handle not visible through family handle")
	}
}

func TestNoteFullText(t *testing.T) {
	n := &Note{Text: []string{"line one", "line two"}}
	if got := n.FullText(); got != "line one\nline two" {
		t.Fatalf("unexpected FullText: %q", got)
	}
	var nilNote *Note
	if nilNote.FullText() != "" {
		t.Fatal("expected empty string for nil note")
	}
}

func TestParseAPID(t *testing.T) {
	apid := ParseAPID("1,7602::2771226")
	if apid == nil || apid.Database != "7602" || apid.Record != "2771226" {
		t.Fatalf("unexpected parse: %+v", apid)
	}
	if apid.URL() != "https://www.ancestry.com/discoveryui-content/view/2771226:7602" {
		t.Fatalf("unexpected URL: %s", apid.URL())
	}
	if ParseAPID("garbage") != nil {
		t.Fatal("expected nil for unparseable APID")
	}
}

func TestDetectVendor(t *testing.T) {
	cases := map[string]Vendor{
		"Family Tree Maker":  VendorAncestry,
		"FamilySearch Tree":  VendorFamilySearch,
		"RootsMagic":         VendorRootsMagic,
		"":                   VendorUnknown,
		"Some Unknown Tool":  VendorUnknown,
	}
	for in, want := range cases {
		if got := DetectVendor(in); got != want {
			t.Errorf("DetectVendor(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFindCustomTag(t *testing.T) {
	tags := []CustomTag{{Tag: "_FSFTID", Value: "KWCJ-QN7"}, {Tag: "_APID", Value: "1,7602::2771226"}}
	if got := FindCustomTag(tags, "_FSFTID"); got == nil || got.Value != "KWCJ-QN7" {
		t.Fatalf("unexpected find: %+v", got)
	}
	if FindCustomTag(tags, "_MISSING") != nil {
		t.Fatal("expected nil for missing tag")
	}
}
