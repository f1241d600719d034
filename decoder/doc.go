// Package decoder implements the semantic parser: a tag-dispatched
// recursive descent over a lineparser.Node tree that produces a typed
// gedcom.Document.
//
// Decode and DecodeWithOptions are the entry points. Lexical/structural
// failures (bad level sequencing, malformed lines) abort the load and
// return a non-nil error; semantic issues (unrecognized tags, dangling
// cross-references, conflicting multimedia sub-grammars) are instead
// recorded into a Diagnostics value returned alongside the Document, so a
// malformed-but-recoverable file still yields as complete a Document as
// possible.
//
// Example usage:
//
//	doc, diags, err := decoder.Decode(r)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if diags.HasErrors() {
//	    log.Printf("%s", diags)
//	}
package decoder
