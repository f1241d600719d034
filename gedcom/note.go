package gedcom

// Note is a NOTE record or inline note structure: free text reconstructed
// from the value line plus any CONT/CONC continuation children. Notes
// that never had an xref (inline notes) are valid Note values that simply
// never enter Document.Notes.
type Note struct {
	// XRef is empty for an inline note.
	XRef string

	// Text holds one string per logical line, in source order, per
	// CONC/CONT reconstruction (§4.4.3): CONT appends a new line, CONC
	// appends to the last line without a separator.
	Text []string

	Citations      []*Citation
	UserReferences []*UserReference
	ChangeDate     *ChangeDate
	CustomTags     []CustomTag
}

// FullText joins Text into the note's complete content, one source line
// per newline.
func (n *Note) FullText() string {
	if n == nil {
		return ""
	}
	result := ""
	for i, line := range n.Text {
		if i > 0 {
			result += "\n"
		}
		result += line
	}
	return result
}
