package gedcom

import "strings"

// Vendor identifies the genealogy software that produced a GEDCOM file,
// detected from HEAD.SOUR.SystemID. Exporters are not required to declare
// themselves in any standard way, so detection is a best-effort substring
// match, not a parsed field.
type Vendor string

const (
	VendorUnknown      Vendor = ""
	VendorAncestry     Vendor = "ancestry"
	VendorFamilySearch Vendor = "familysearch"
	VendorRootsMagic   Vendor = "rootsmagic"
	VendorLegacy       Vendor = "legacy"
	VendorGramps       Vendor = "gramps"
	VendorMyHeritage   Vendor = "myheritage"
)

// DetectVendor identifies the vendor from a HEAD.SOUR.SystemID (or
// product name) string. Matching is case-insensitive and substring-based.
func DetectVendor(systemID string) Vendor {
	if systemID == "" {
		return VendorUnknown
	}
	lower := strings.ToLower(systemID)
	switch {
	case strings.Contains(lower, "ancestry"), strings.Contains(lower, "familytreemaker"), strings.Contains(lower, "family tree maker"):
		return VendorAncestry
	case strings.Contains(lower, "familysearch"):
		return VendorFamilySearch
	case strings.Contains(lower, "rootsmagic"):
		return VendorRootsMagic
	case strings.Contains(lower, "legacy"):
		return VendorLegacy
	case strings.Contains(lower, "gramps"):
		return VendorGramps
	case strings.Contains(lower, "myheritage"):
		return VendorMyHeritage
	default:
		return VendorUnknown
	}
}

// String returns the vendor's name, or "unknown" for VendorUnknown.
func (v Vendor) String() string {
	if v == VendorUnknown {
		return "unknown"
	}
	return string(v)
}
