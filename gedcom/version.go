package gedcom

// VersionNumber is a GEDCOM specification version number. This module
// recognizes only the two lineage-linked versions; 7.0 is out of scope.
type VersionNumber string

const (
	// Version55 is GEDCOM 5.5.
	Version55 VersionNumber = "5.5"

	// Version551 is GEDCOM 5.5.1.
	Version551 VersionNumber = "5.5.1"
)

// IsValid returns true if the version number is one this module recognizes.
func (v VersionNumber) IsValid() bool {
	switch v {
	case Version55, Version551:
		return true
	default:
		return false
	}
}

// GedcomVersion is the HEAD.GEDC structure: the declared version number
// and the form of the lineage-linked grammar the file claims to follow.
type GedcomVersion struct {
	// VersionNumber is the declared version (GEDC.VERS).
	VersionNumber VersionNumber

	// Form is the grammar form (GEDC.FORM), conventionally "LINEAGE-LINKED".
	Form string
}

// Is55 reports whether the declared version is exactly 5.5. A Header with
// no GEDC.VERS, or a nil Header altogether, is treated as 5.5.1 by callers
// per the version-conformance default.
func (v GedcomVersion) Is55() bool {
	return v.VersionNumber == Version55
}
