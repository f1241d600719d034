package gedcom

// HeaderSourceData is the HEAD.SOUR.DATA structure: the name of the
// source data plus its date and copyright.
type HeaderSourceData struct {
	Name      string
	Date      string
	Copyright string
}

// Corporation is the HEAD.SOUR.CORP structure: the business that created
// the exporting product.
type Corporation struct {
	Name string

	Address *Address
	Phone   []string
	WWW     []string
	Fax     []string
	Email   []string
}

// SourceSystem is the HEAD.SOUR structure identifying the software that
// produced the file.
type SourceSystem struct {
	SystemID    string
	Version     string
	ProductName string

	// Vendor is detected from SystemID/ProductName; see DetectVendor.
	Vendor Vendor

	Corporation *Corporation
	SourceData  *HeaderSourceData
}

// Header is the HEAD record: file-level metadata required at the start
// of every GEDCOM transmission.
type Header struct {
	SourceSystem      *SourceSystem
	DestinationSystem string

	Date string
	Time string

	CharacterSet CharacterSet

	Submitter   *Submitter
	Submission  *Submission
	FileName    string
	GedcomVersion GedcomVersion

	// CopyrightData is HEAD.COPR plus its CONC/CONT continuations.
	// Multi-line copyright is 5.5.1-only; see decoder version-conformance.
	CopyrightData []string

	Language      string
	PlaceHierarchy string

	Notes      []string
	CustomTags []CustomTag
}
