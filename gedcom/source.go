package gedcom

// SourceData is the SOUR.DATA structure: the events and date/place range
// a source covers, plus its originating agency.
type SourceData struct {
	EventsRecorded string
	DatePeriod     string
	Place          *Place
	Agency         string
	Notes          []*Note
}

// Source is a SOUR record: bibliographic information about a source of
// genealogical information, optionally tied to a holding Repository.
type Source struct {
	XRef string

	Title       string
	Author      string
	Publication string
	SourceText  []string

	Data       *SourceData
	Repository *RepositoryCitation

	Multimedia     []*Multimedia
	Notes          []*Note
	UserReferences []*UserReference
	ChangeDate     *ChangeDate
	CustomTags     []CustomTag
}
