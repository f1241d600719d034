// Package lineparser implements the lexical and structural layer of GEDCOM
// parsing: turning a decoded byte stream into logical text lines, lexing
// each line into a (level, xref, tag, value) tuple, and assembling those
// tuples into a hierarchical Node tree keyed on level numbers.
//
// This package knows nothing about GEDCOM tag semantics; it only enforces
// the line grammar and the level-nesting invariant. The decoder package
// builds the typed document model on top of the tree this package produces.
package lineparser
