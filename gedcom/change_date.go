package gedcom

// ChangeDate is the CHAN structure recording when a record was last
// modified: a raw date string (no calendar interpretation, see DESIGN.md)
// plus an optional time and notes.
type ChangeDate struct {
	Date string
	Time string
	Notes []*Note

	CustomTags []CustomTag
}

// UserReference is a REFN structure: a user-supplied reference number with
// an optional classifying TYPE.
type UserReference struct {
	Number string
	Type   string
}
