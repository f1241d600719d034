package gedcom

// Document is a fully decoded GEDCOM transmission: its Header, every
// top-level record keyed by xref, an optional Submission, and a Trailer.
//
// Records reachable from more than one place (e.g. an Individual that is
// both FAM.HUSB and the target of an ASSO) are the same *Individual
// value in every case: collections never hold copies.
type Document struct {
	Header  *Header
	Trailer *Trailer

	Submission *Submission

	Individuals  map[string]*Individual
	Families     map[string]*Family
	Sources      map[string]*Source
	Repositories map[string]*Repository
	Notes        map[string]*Note
	Multimedia   map[string]*Multimedia
	Submitters   map[string]*Submitter
}

// NewDocument returns an empty Document with all collections initialized.
func NewDocument() *Document {
	return &Document{
		Individuals:  make(map[string]*Individual),
		Families:     make(map[string]*Family),
		Sources:      make(map[string]*Source),
		Repositories: make(map[string]*Repository),
		Notes:        make(map[string]*Note),
		Multimedia:   make(map[string]*Multimedia),
		Submitters:   make(map[string]*Submitter),
	}
}

// GetIndividual returns the individual with the given xref, or nil.
func (d *Document) GetIndividual(xref string) *Individual { return d.Individuals[xref] }

// GetFamily returns the family with the given xref, or nil.
func (d *Document) GetFamily(xref string) *Family { return d.Families[xref] }

// GetSource returns the source with the given xref, or nil.
func (d *Document) GetSource(xref string) *Source { return d.Sources[xref] }

// GetRepository returns the repository with the given xref, or nil.
func (d *Document) GetRepository(xref string) *Repository { return d.Repositories[xref] }

// GetNote returns the note with the given xref, or nil.
func (d *Document) GetNote(xref string) *Note { return d.Notes[xref] }

// GetMultimedia returns the multimedia object with the given xref, or nil.
func (d *Document) GetMultimedia(xref string) *Multimedia { return d.Multimedia[xref] }

// GetSubmitter returns the submitter with the given xref, or nil.
func (d *Document) GetSubmitter(xref string) *Submitter { return d.Submitters[xref] }
