package decoder

import (
	"io"

	"github.com/jnorthrup/gedcom4go/gedcom"
	"github.com/jnorthrup/gedcom4go/lineparser"
)

// Decode parses a GEDCOM byte stream with default (lenient) options.
func Decode(r io.Reader) (*gedcom.Document, Diagnostics, error) {
	return DecodeWithOptions(r, DefaultOptions())
}

// DecodeWithOptions parses a GEDCOM byte stream into a Document.
//
// A non-nil error means a lexical or structural failure (spec.md
// §4.4.8): the stream could not be split into a valid line tree at all,
// and no partial Document is returned. Everything past that point is
// recorded as Diagnostics instead: unrecognized tags, dangling
// cross-references, and version-conformance deviations never abort the
// load.
func DecodeWithOptions(r io.Reader, opts *DecodeOptions) (*gedcom.Document, Diagnostics, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := checkContext(opts); err != nil {
		return nil, nil, err
	}

	lines, lexWarnings, err := lineparser.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}

	if err := checkContext(opts); err != nil {
		return nil, nil, err
	}

	root, err := lineparser.Build(lines)
	if err != nil {
		return nil, nil, err
	}

	if err := checkContext(opts); err != nil {
		return nil, nil, err
	}

	doc := gedcom.NewDocument()
	ctx := &decodeCtx{
		doc:         doc,
		diags:       &collector{},
		opts:        opts,
		version:     gedcom.GedcomVersion{VersionNumber: gedcom.Version551},
		submissions: make(map[string]*gedcom.Submission),
	}
	for _, w := range lexWarnings {
		ctx.diags.add(newDiagnostic(w.Line, SeverityWarning, CodeInvalidValue, w.Message, ""))
	}

	dispatchRoot(ctx, root)
	for _, sub := range ctx.submissions {
		doc.Submission = sub
		break
	}
	checkDanglingXRefs(ctx, 0)

	return doc, ctx.diags.diagnostics, nil
}

func checkContext(opts *DecodeOptions) error {
	if opts.Context == nil {
		return nil
	}
	select {
	case <-opts.Context.Done():
		return opts.Context.Err()
	default:
		return nil
	}
}

// dispatchRoot walks the top-level records per spec.md §4.4.1. Exactly
// one HEAD is expected, first; a TRLR marks end-of-transmission (the
// root dispatch doesn't special-case anything about its position beyond
// that it's ignored as a no-op marker, since the whole stream has
// already been read in full).
func dispatchRoot(ctx *decodeCtx, root *lineparser.Node) {
	sawHead := false
	for i, n := range root.Children {
		switch n.Tag {
		case "HEAD":
			ctx.doc.Header = dispatchHeader(ctx, n)
			ctx.version = ctx.doc.Header.GedcomVersion
			if ctx.version.VersionNumber == "" {
				ctx.version.VersionNumber = gedcom.Version551
			}
			sawHead = true
			if i != 0 {
				ctx.diags.add(newDiagnostic(n.LineNumber, SeverityError, CodeMissingHead, "HEAD record must be the first in the file", ""))
			}

		case "TRLR":
			ctx.doc.Trailer = &gedcom.Trailer{LineNumber: n.LineNumber}

		case "SUBM":
			sub := getOrCreateSubmitter(ctx.doc, n.XRefID)
			dispatchSubmitterInto(ctx, n, sub)

		case "SUBN":
			ctx.doc.Submission = dispatchSubmission(ctx, n)

		case "INDI":
			ind := getOrCreateIndividual(ctx.doc, n.XRefID)
			dispatchIndividualInto(ctx, n, ind)

		case "FAM":
			fam := getOrCreateFamily(ctx.doc, n.XRefID)
			dispatchFamilyInto(ctx, n, fam)

		case "SOUR":
			src := getOrCreateSource(ctx.doc, n.XRefID)
			dispatchSourceInto(ctx, n, src)

		case "REPO":
			repo := getOrCreateRepository(ctx.doc, n.XRefID)
			dispatchRepositoryInto(ctx, n, repo)

		case "NOTE":
			note := getOrCreateNote(ctx.doc, n.XRefID)
			dispatchNoteInto(ctx, n, note)

		case "OBJE":
			obj, ok := dispatchMultimediaRecord(ctx, n)
			if ok {
				ctx.doc.Multimedia[obj.XRef] = obj
			}

		default:
			ctx.diags.add(newDiagnostic(n.LineNumber, SeverityError, CodeUnknownTag, "unrecognized top-level record tag: "+n.Tag, n.Tag))
		}
	}

	if !sawHead {
		ctx.diags.add(newDiagnostic(0, SeverityError, CodeMissingHead, "no HEAD record found", ""))
	}
}
