package decoder

import (
	"reflect"

	"github.com/jnorthrup/gedcom4go/gedcom"
)

// getOrCreateIndividual implements the get-or-create xref policy of
// spec.md §4.4.2: if xref already names a record, return it; otherwise
// insert a placeholder (xref set, nothing else) and return that. This is
// how forward references resolve to the same handle a later top-level
// declaration will go on to fill in.
func getOrCreateIndividual(doc *gedcom.Document, xref string) *gedcom.Individual {
	if ind, ok := doc.Individuals[xref]; ok {
		return ind
	}
	ind := &gedcom.Individual{XRef: xref}
	doc.Individuals[xref] = ind
	return ind
}

func getOrCreateFamily(doc *gedcom.Document, xref string) *gedcom.Family {
	if fam, ok := doc.Families[xref]; ok {
		return fam
	}
	fam := &gedcom.Family{XRef: xref}
	doc.Families[xref] = fam
	return fam
}

func getOrCreateSource(doc *gedcom.Document, xref string) *gedcom.Source {
	if src, ok := doc.Sources[xref]; ok {
		return src
	}
	src := &gedcom.Source{XRef: xref}
	doc.Sources[xref] = src
	return src
}

func getOrCreateRepository(doc *gedcom.Document, xref string) *gedcom.Repository {
	if repo, ok := doc.Repositories[xref]; ok {
		return repo
	}
	repo := &gedcom.Repository{XRef: xref}
	doc.Repositories[xref] = repo
	return repo
}

func getOrCreateNote(doc *gedcom.Document, xref string) *gedcom.Note {
	if note, ok := doc.Notes[xref]; ok {
		return note
	}
	note := &gedcom.Note{XRef: xref}
	doc.Notes[xref] = note
	return note
}

func getOrCreateMultimedia(doc *gedcom.Document, xref string) *gedcom.Multimedia {
	if obj, ok := doc.Multimedia[xref]; ok {
		return obj
	}
	obj := &gedcom.Multimedia{XRef: xref}
	doc.Multimedia[xref] = obj
	return obj
}

func getOrCreateSubmission(ctx *decodeCtx, xref string) *gedcom.Submission {
	if sub, ok := ctx.submissions[xref]; ok {
		return sub
	}
	sub := &gedcom.Submission{XRef: xref}
	ctx.submissions[xref] = sub
	return sub
}

func getOrCreateSubmitter(doc *gedcom.Document, xref string) *gedcom.Submitter {
	if sub, ok := doc.Submitters[xref]; ok {
		return sub
	}
	sub := &gedcom.Submitter{XRef: xref}
	doc.Submitters[xref] = sub
	return sub
}

// checkDanglingXRefs walks every collection and records a diagnostic for
// any record that is still just a bare placeholder (no data beyond its
// XRef was ever filled in by a top-level declaration), per spec.md
// §4.4.2's dangling-reference invariant. Forgiving per spec: the
// placeholder is left in the document, only flagged.
func checkDanglingXRefs(ctx *decodeCtx, line int) {
	for xref, ind := range ctx.doc.Individuals {
		if isBlankIndividual(ind) {
			ctx.diags.addDanglingXRef(line, xref, "individual")
		}
	}
	for xref, fam := range ctx.doc.Families {
		if isBlankFamily(fam) {
			ctx.diags.addDanglingXRef(line, xref, "family")
		}
	}
	for xref, src := range ctx.doc.Sources {
		if reflect.DeepEqual(*src, gedcom.Source{XRef: xref}) {
			ctx.diags.addDanglingXRef(line, xref, "source")
		}
	}
	for xref, repo := range ctx.doc.Repositories {
		if reflect.DeepEqual(*repo, gedcom.Repository{XRef: xref}) {
			ctx.diags.addDanglingXRef(line, xref, "repository")
		}
	}
	for xref, sub := range ctx.doc.Submitters {
		if reflect.DeepEqual(*sub, gedcom.Submitter{XRef: xref}) {
			ctx.diags.addDanglingXRef(line, xref, "submitter")
		}
	}
	for xref, note := range ctx.doc.Notes {
		if reflect.DeepEqual(*note, gedcom.Note{XRef: xref}) {
			ctx.diags.addDanglingXRef(line, xref, "note")
		}
	}
	for xref, obj := range ctx.doc.Multimedia {
		if reflect.DeepEqual(*obj, gedcom.Multimedia{XRef: xref}) {
			ctx.diags.addDanglingXRef(line, xref, "multimedia")
		}
	}
}

func isBlankIndividual(ind *gedcom.Individual) bool {
	return reflect.DeepEqual(*ind, gedcom.Individual{XRef: ind.XRef})
}

func isBlankFamily(fam *gedcom.Family) bool {
	return reflect.DeepEqual(*fam, gedcom.Family{XRef: fam.XRef})
}
