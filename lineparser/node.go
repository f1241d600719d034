package lineparser

// Node is one entry in the hierarchical line tree: a lexed Line together
// with its position in the tree. Children are ordered exactly as they
// appeared in the source file. Parent is a non-owning back-reference; it
// is nil only for the synthetic root returned by Build.
//
// Invariant: for every Node n with Parent p, n.Level == p.Level + 1.
type Node struct {
	Level      int
	XRefID     string
	Tag        string
	Value      string
	LineNumber int

	Parent   *Node
	Children []*Node
}

// newNodeFromLine copies the fields of a Line into a fresh, childless Node.
func newNodeFromLine(l *Line) *Node {
	return &Node{
		Level:      l.Level,
		XRefID:     l.XRefID,
		Tag:        l.Tag,
		Value:      l.Value,
		LineNumber: l.LineNumber,
	}
}

// Build assembles a flat, level-ordered sequence of lines into a tree. The
// returned Node is a synthetic root at level -1 whose Children are the
// file's top-level (level 0) records, in source order.
//
// Build maintains a stack of open ancestors indexed by level: for each
// incoming line at level L, it pops the stack until the top is at level
// L-1 (or, when L==0, until the stack holds only the synthetic root),
// attaches the new node as the top's child, and pushes the new node.
//
// Build fails with a *StructuralError if the first line is not at level 0,
// or if any line's level exceeds the current top-of-stack level plus one
// (an illegal forward jump, e.g. level 1 directly followed by level 3).
func Build(lines []*Line) (*Node, error) {
	if len(lines) == 0 {
		return nil, newStructuralError(0, "empty file: no lines to parse", "")
	}
	root := &Node{Level: -1}
	if lines[0].Level != 0 {
		return nil, newStructuralError(lines[0].LineNumber, "first line must be at level 0", lines[0].Tag)
	}

	stack := []*Node{root}

	for _, l := range lines {
		top := stack[len(stack)-1]
		if l.Level > top.Level+1 {
			return nil, newStructuralError(l.LineNumber, "level jumps forward by more than one", l.Tag)
		}
		for l.Level <= top.Level {
			stack = stack[:len(stack)-1]
			top = stack[len(stack)-1]
		}

		n := newNodeFromLine(l)
		n.Parent = top
		top.Children = append(top.Children, n)
		stack = append(stack, n)
	}

	return root, nil
}
