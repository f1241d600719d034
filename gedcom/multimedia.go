package gedcom

// MultimediaStyle discriminates the two mutually-incompatible OBJE
// sub-grammars: the 5.5 embedded-blob form and the 5.5.1 file-reference
// form. The decoder's OBJE state machine settles on one of these (or
// rejects the element) per §4.4.5/§4.4.9.
type MultimediaStyle int

const (
	MultimediaStyleUnknown MultimediaStyle = iota
	MultimediaStyle55
	MultimediaStyle551
)

// FileReference is a 5.5.1-style OBJE.FILE structure.
type FileReference struct {
	Ref       string
	Format    string
	MediaType string
	Title     string
}

// Multimedia is the OBJE record or embedded OBJE link. Exactly one of
// FileReferences (5.5.1) or the embedded-blob fields (5.5) is populated,
// per Style. A rejected embedded link is reported by a decoder diagnostic
// and not attached to its owner; a rejected top-level record is reported
// the same way but stays in Document.Multimedia with only XRef and Style
// set.
type Multimedia struct {
	XRef  string
	Style MultimediaStyle

	// --- 5.5.1 (MultimediaStyle551) ---
	FileReferences []*FileReference

	// --- 5.5 (MultimediaStyle55) ---
	Form  string
	Title string
	Blob  []string

	// Continued is the 5.5-style chained OBJE continuation record.
	Continued *Multimedia

	Notes          []*Note
	Citations      []*Citation
	UserReferences []*UserReference
	ChangeDate     *ChangeDate
	CustomTags     []CustomTag
}
