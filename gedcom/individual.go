package gedcom

// FamilyLink is a FAMC structure: a reference to a family in which this
// individual is a child, with an optional pedigree type (PEDI).
type FamilyLink struct {
	Family   *Family
	Pedigree string

	// Status is 5.5.1-only (FAMC.STAT): "challenged", "disproven", or
	// "proven".
	Status string

	Notes []*Note
}

// Individual is an INDI record: a person, with their names, vital events,
// attributes, and the handles linking them into family structures.
type Individual struct {
	XRef string

	Names []*PersonalName
	Sex   string

	Address *Address
	Phone   []string
	WWW     []string
	Fax     []string
	Email   []string

	Events     []*Event
	Attributes []*Attribute

	LDSIndividualOrdinances []*LDSOrdinance

	FamiliesWhereSpouse []*Family
	FamiliesWhereChild  []*FamilyLink
	Associations        []*Association

	// AncestorInterest/DescendantInterest are ANCI/DESI submitter handles:
	// parties who have expressed interest in this individual's ancestors
	// or descendants respectively.
	AncestorInterest   []*Submitter
	DescendantInterest []*Submitter

	Aliases              []string
	AncestralFileNumber  string
	RecIDNumber          string
	PermanentRecFileNumber string

	// RestrictionNotice is 5.5.1-only (RESN).
	RestrictionNotice string

	Citations      []*Citation
	Multimedia     []*Multimedia
	Notes          []*Note
	Submitters     []*Submitter
	UserReferences []*UserReference
	ChangeDate     *ChangeDate
	CustomTags     []CustomTag
}

// BirthEvent returns the first BIRT event, or nil if the individual has
// none recorded.
func (i *Individual) BirthEvent() *Event {
	for _, e := range i.Events {
		if e.Type == EventBirth {
			return e
		}
	}
	return nil
}

// DeathEvent returns the first DEAT event, or nil if the individual has
// none recorded.
func (i *Individual) DeathEvent() *Event {
	for _, e := range i.Events {
		if e.Type == EventDeath {
			return e
		}
	}
	return nil
}
