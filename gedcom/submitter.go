package gedcom

// Submitter is a SUBM record: the person or organization responsible for
// the contents of the file, or referenced as an ancestor/descendant
// interest party on an Individual.
type Submitter struct {
	XRef string
	Name string

	Address *Address
	Phone   []string
	WWW     []string
	Fax     []string
	Email   []string

	Languages        []string
	RecordFileNumber string

	Multimedia     []*Multimedia
	Notes          []*Note
	ChangeDate     *ChangeDate
	CustomTags     []CustomTag
}

// Submission is a SUBN record: parameters describing a single submission
// of data to a sharing system (e.g. TempleReady).
type Submission struct {
	XRef string

	Submitter *Submitter

	FamilyFileName       string
	TempleCode           string
	AncestorsCount       string
	DescendantsCount     string
	OrdinanceProcessFlag string
	RecordFileNumber     string

	Notes      []*Note
	ChangeDate *ChangeDate
	CustomTags []CustomTag
}
