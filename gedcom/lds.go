package gedcom

// LDSOrdinanceType is the ordinance structure tag (BAPL, CONL, ENDL, SLGC,
// SLGS).
type LDSOrdinanceType string

const (
	LDSBaptism        LDSOrdinanceType = "BAPL"
	LDSConfirmation   LDSOrdinanceType = "CONL"
	LDSEndowment      LDSOrdinanceType = "ENDL"
	LDSSealingChild   LDSOrdinanceType = "SLGC"
	LDSSealingSpouse  LDSOrdinanceType = "SLGS"
)

// LDSOrdinance is a Latter-Day Saints ordinance structure, attached either
// to an Individual (BAPL/CONL/ENDL/SLGC) or a Family (SLGS).
type LDSOrdinance struct {
	Type LDSOrdinanceType

	Date   string
	Temple string
	Place  *Place
	Status string

	// Family is the FAMC handle for a SLGC (child-to-parents sealing);
	// nil for every other ordinance type.
	Family *Family

	Notes      []*Note
	Citations  []*Citation
	CustomTags []CustomTag
}
