package gedcom

// CitationKind discriminates the two SOUR-citation shapes the GEDCOM
// grammar allows: a pointer to a Source record, or an inline description
// with no Source record behind it at all.
type CitationKind int

const (
	// CitationWithSource is built when the SOUR value matches the xref
	// pointer pattern; Source is then a resolved handle.
	CitationWithSource CitationKind = iota

	// CitationWithoutSource is built when the SOUR value is plain text;
	// Description/TextFromSource carry the inline content instead.
	CitationWithoutSource
)

// CitationData is the SOUR.DATA structure on a WithSource citation: the
// date the cited data was entered and the text excerpted from the source.
type CitationData struct {
	Date string
	Text []string
}

// Citation is a SOUR structure wherever it appears (on an event, a name,
// an attribute, an association, ...). Exactly one of the WithSource or
// WithoutSource field groups is populated, selected by Kind; see
// decoder's citation-discrimination logic for how Kind is decided.
type Citation struct {
	Kind CitationKind

	// --- CitationWithSource fields ---

	// Source is the resolved SOUR record handle.
	Source *Source

	WhereInSource string
	EventCited    string
	RoleInEvent   string
	Data          []*CitationData
	Certainty     string

	// --- CitationWithoutSource fields ---

	Description    []string
	TextFromSource []string

	Notes      []*Note
	Multimedia []*Multimedia
	CustomTags []CustomTag

	// AncestryAPID is recovered from an _APID custom tag, if present; see
	// FindCustomTag/ParseAPID.
	AncestryAPID *AncestryAPID
}
