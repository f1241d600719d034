package decoder

import (
	"github.com/jnorthrup/gedcom4go/gedcom"
)

// decodeCtx threads the pieces every dispatcher needs: the document being
// built (for get-or-create xref resolution), the diagnostics collector,
// and the declared version (for version-conformance checks).
type decodeCtx struct {
	doc     *gedcom.Document
	diags   *collector
	opts    *DecodeOptions
	version gedcom.GedcomVersion

	// submissions tracks SUBN records by xref. gedcom.Document only
	// carries a single Submission (spec.md §3.2's "a single optional
	// submission"), but get-or-create still needs a keyed lookup to
	// resolve a forward reference from HEAD.SUBN to the eventual SUBN
	// record, per the same sharing invariant every other xref obeys.
	submissions map[string]*gedcom.Submission
}

// isG55 reports whether the file declared GEDCOM 5.5. Per spec.md §4.4.6,
// an absent or unversioned header is treated as 5.5.1.
func (c *decodeCtx) isG55() bool {
	return c.version.Is55()
}

// versionWarning records a version-conformance deviation. Severity
// depends on DecodeOptions.Strict: lenient callers get a warning (data is
// still loaded); strict callers get an error.
func (c *decodeCtx) versionWarning(line int, message string) {
	severity := SeverityWarning
	if c.opts != nil && c.opts.Strict {
		severity = SeverityError
	}
	c.diags.add(newDiagnostic(line, severity, CodeVersionConformance, message, ""))
}

// require551 warns if construct is encountered while the file declares
// 5.5 (the construct is 5.5.1-only).
func (c *decodeCtx) require551(line int, construct string) {
	if c.isG55() {
		c.versionWarning(line, construct+" is a GEDCOM 5.5.1 construct but the file declares 5.5")
	}
}

// require55 warns if construct is encountered while the file declares
// 5.5.1 (the construct is 5.5-only).
func (c *decodeCtx) require55(line int, construct string) {
	if !c.isG55() {
		c.versionWarning(line, construct+" is a GEDCOM 5.5 construct but the file declares 5.5.1")
	}
}
