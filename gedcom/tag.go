package gedcom

// CustomTag is an unrecognized, user-defined (underscore-prefixed) tag
// preserved verbatim beneath whichever record or sub-structure it was
// found under. GEDCOM exporters routinely invent vendor tags (_FSFTID,
// _APID, _TREE, ...); rather than dropping them, most composite types in
// this package embed a CustomTags []CustomTag field so round-trip-minded
// callers can still see what was there. Structures without that field
// (FamilyLink, CitationData, SourceSystem, Corporation, HeaderSourceData,
// SourceData, RepositoryCitation, PlaceVariation, UserReference,
// FileReference) do not keep their underscore-prefixed children.
//
// CustomTag nests: all of a custom tag's own children, whatever their
// tags, are collected into Children rather than raising diagnostics of
// their own.
type CustomTag struct {
	Level      int
	Tag        string
	Value      string
	LineNumber int
	Children   []CustomTag
}
