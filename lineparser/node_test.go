package lineparser

import "testing"

func lex(t *testing.T, raw string, n int) *Line {
	t.Helper()
	l, _, err := LexLine(raw, n)
	if err != nil {
		t.Fatalf("LexLine(%q) error: %v", raw, err)
	}
	return l
}

func TestBuildSimpleTree(t *testing.T) {
	lines := []*Line{
		lex(t, "0 HEAD", 1),
		lex(t, "1 GEDC", 2),
		lex(t, "2 VERS 5.5.1", 3),
		lex(t, "0 @I1@ INDI", 4),
		lex(t, "1 NAME John /Smith/", 5),
		lex(t, "0 TRLR", 6),
	}

	root, err := Build(lines)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if len(root.Children) != 3 {
		t.Fatalf("expected 3 top-level records, got %d", len(root.Children))
	}

	head := root.Children[0]
	if head.Tag != "HEAD" || head.Parent != root {
		t.Fatalf("unexpected head node: %+v", head)
	}
	if len(head.Children) != 1 || head.Children[0].Tag != "GEDC" {
		t.Fatalf("unexpected head children: %+v", head.Children)
	}
	gedc := head.Children[0]
	if len(gedc.Children) != 1 || gedc.Children[0].Tag != "VERS" || gedc.Children[0].Value != "5.5.1" {
		t.Fatalf("unexpected gedc children: %+v", gedc.Children)
	}
	if gedc.Children[0].Parent != gedc {
		t.Fatal("expected VERS parent to be GEDC")
	}

	indi := root.Children[1]
	if indi.XRefID != "@I1@" || indi.Tag != "INDI" {
		t.Fatalf("unexpected indi node: %+v", indi)
	}
	if len(indi.Children) != 1 || indi.Children[0].Tag != "NAME" {
		t.Fatalf("unexpected indi children: %+v", indi.Children)
	}

	for _, child := range root.Children {
		if child.Level != 0 {
			t.Fatalf("expected root child level 0, got %d", child.Level)
		}
	}
}

func TestBuildEnforcesLevelPlusOneInvariant(t *testing.T) {
	var walk func(n *Node)
	lines := []*Line{
		lex(t, "0 HEAD", 1),
		lex(t, "1 GEDC", 2),
		lex(t, "2 VERS 5.5.1", 3),
		lex(t, "2 FORM LINEAGE-LINKED", 4),
		lex(t, "1 CHAR UTF-8", 5),
	}
	root, err := Build(lines)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	walk = func(n *Node) {
		for _, c := range n.Children {
			if n.Level >= 0 && c.Level != n.Level+1 {
				t.Errorf("child %s level %d is not parent %s level %d + 1", c.Tag, c.Level, n.Tag, n.Level)
			}
			if c.Parent != n {
				t.Errorf("child %s parent mismatch", c.Tag)
			}
			walk(c)
		}
	}
	walk(root)
}

func TestBuildRejectsNonZeroFirstLine(t *testing.T) {
	lines := []*Line{lex(t, "1 GEDC", 1)}
	if _, err := Build(lines); err == nil {
		t.Fatal("expected error when first line is not level 0")
	}
}

func TestBuildRejectsLevelSkip(t *testing.T) {
	lines := []*Line{
		lex(t, "0 HEAD", 1),
		lex(t, "2 VERS 5.5.1", 2), // skips level 1
	}
	if _, err := Build(lines); err == nil {
		t.Fatal("expected error for level skip")
	}
}

func TestBuildHandlesSiblingsAtSameLevel(t *testing.T) {
	lines := []*Line{
		lex(t, "0 @I1@ INDI", 1),
		lex(t, "1 NAME A /B/", 2),
		lex(t, "1 SEX M", 3),
		lex(t, "1 NAME C /D/", 4),
	}
	root, err := Build(lines)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	indi := root.Children[0]
	if len(indi.Children) != 3 {
		t.Fatalf("expected 3 siblings under INDI, got %d", len(indi.Children))
	}
}

func TestBuildEmptyInputIsStructuralError(t *testing.T) {
	if _, err := Build(nil); err == nil {
		t.Fatal("expected a structural error for zero lines")
	}
}
