package gedcom

// PlaceVariation is a phonetic (FONE) or romanized (ROMN) alternate
// rendering of a Place name, each tagged with the method used to produce
// it (FONE.TYPE / ROMN.TYPE).
type PlaceVariation struct {
	Value  string
	Method string
}

// Place is the PLAC structure: a hierarchical place name, its optional
// jurisdictional form, phonetic/romanized variations, and optional
// coordinates (5.5.1-only; see version-conformance warnings in decoder).
type Place struct {
	// Name is the PLAC value plus any CONC/CONT-continued text.
	Name string

	// Form is the PLAC.FORM jurisdictional hierarchy descriptor.
	Form string

	PhoneticVariations  []*PlaceVariation
	RomanizedVariations []*PlaceVariation

	// Latitude, Longitude hold the raw MAP.LATI/MAP.LONG strings.
	Latitude  string
	Longitude string

	Notes      []*Note
	Citations  []*Citation
	CustomTags []CustomTag
}
