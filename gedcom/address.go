package gedcom

// Address is a physical or digital address, shared by Header sources,
// Repository, Submitter, and event ADDR structures.
type Address struct {
	// Lines are the ADDR value plus any CONT-continued lines, in order.
	Lines []string

	// Addr1, Addr2 are the optional ADR1/ADR2 structured subordinates.
	Addr1 string
	Addr2 string

	City          string
	StateProvince string
	PostalCode    string
	Country       string

	Phone []string
	WWW   []string
	Fax   []string
	Email []string

	CustomTags []CustomTag
}
