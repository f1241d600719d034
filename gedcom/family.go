package gedcom

// Family is a FAM record: a husband, a wife, and their children, plus the
// family's own events (marriage, divorce, ...).
type Family struct {
	XRef string

	Husband *Individual
	Wife    *Individual
	// Children are the FAM's CHIL handles, in source order.
	Children []*Individual
	NumChildren string

	Events []*Event

	// RestrictionNotice is 5.5.1-only (RESN).
	RestrictionNotice string

	AutomatedRecordID string
	RecFileNumber     string

	LDSSpouseSealings []*LDSOrdinance

	Citations      []*Citation
	Multimedia     []*Multimedia
	Notes          []*Note
	Submitters     []*Submitter
	UserReferences []*UserReference
	ChangeDate     *ChangeDate
	CustomTags     []CustomTag
}
