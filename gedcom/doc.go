// Package gedcom defines the typed, in-memory representation of a decoded
// GEDCOM 5.5/5.5.1 file: a Document of cross-referenced records (Individual,
// Family, Source, Repository, Note, Multimedia, Submitter, Submission) plus
// a Header and an optional Trailer.
//
// Unlike a generic tag tree, every field here is typed to its GEDCOM
// meaning. Cross-references between records (e.g. Family.Husband) are
// live pointers into the Document's own collections rather than copied
// values or bare xref strings: mutating the pointee through one handle is
// visible through every other handle to the same record.
//
// This package holds no decoding logic. It is populated exclusively by
// the decoder package, which walks a lineparser.Node tree and resolves
// tags into these types.
package gedcom
