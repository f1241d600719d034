package gedcom

// PersonalNameVariation is a phonetic (FONE) or romanized (ROMN) alternate
// rendering of a PersonalName, carrying the same name-part breakdown as
// the primary name plus the method used to produce it.
type PersonalNameVariation struct {
	Full   string
	Method string

	Prefix        string
	Given         string
	Nickname      string
	SurnamePrefix string
	Surname       string
	Suffix        string

	Notes      []*Note
	Citations  []*Citation
	CustomTags []CustomTag
}

// PersonalName is the NAME structure: the full "Given /Surname/" value
// plus its optional decomposed parts, type, and phonetic/romanized
// variations.
type PersonalName struct {
	// Full is the NAME value as written, e.g. "John /Smith/".
	Full string

	// Type is the name type (NAME.TYPE), e.g. "birth", "aka", "married".
	Type string

	Prefix        string
	Given         string
	Nickname      string
	SurnamePrefix string
	Surname       string
	Suffix        string

	PhoneticVariations  []*PersonalNameVariation
	RomanizedVariations []*PersonalNameVariation

	Notes      []*Note
	Citations  []*Citation
	CustomTags []CustomTag
}
