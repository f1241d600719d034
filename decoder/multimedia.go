package decoder

import (
	"strings"

	"github.com/jnorthrup/gedcom4go/gedcom"
	"github.com/jnorthrup/gedcom4go/lineparser"
)

// dispatchMultimediaRecord builds a top-level OBJE record, running the
// Unknown→Style55|Style551→Loaded|Rejected state machine of spec.md
// §4.4.9. Returns ok=false if the element was Rejected; the record still
// stays in the Document's Multimedia collection (get-or-create inserted it
// before the state machine ran), with only its XRef and Style set.
func dispatchMultimediaRecord(ctx *decodeCtx, n *lineparser.Node) (*gedcom.Multimedia, bool) {
	obj := getOrCreateMultimedia(ctx.doc, n.XRefID)
	ok := dispatchMultimediaInto(ctx, n, obj)
	return obj, ok
}

// dispatchMultimediaLink builds an OBJE sub-structure wherever it appears
// under another record (individual, family, event, citation, ...). A
// pointer value resolves to the shared Document-level Multimedia handle
// without re-running the state machine (the referenced top-level OBJE
// record owns that). A non-pointer value is an embedded structure and
// runs the state machine directly, which picks its 5.5 or 5.5.1 style.
func dispatchMultimediaLink(ctx *decodeCtx, n *lineparser.Node) (*gedcom.Multimedia, bool) {
	if lineparser.IsXRef(n.Value) {
		return getOrCreateMultimedia(ctx.doc, n.Value), true
	}
	obj := &gedcom.Multimedia{}
	ok := dispatchMultimediaInto(ctx, n, obj)
	return obj, ok
}

func dispatchMultimediaInto(ctx *decodeCtx, n *lineparser.Node, obj *gedcom.Multimedia) bool {
	var files, forms []*lineparser.Node
	for _, c := range n.Children {
		switch c.Tag {
		case "FILE":
			files = append(files, c)
		case "FORM":
			forms = append(forms, c)
		}
	}

	if len(files) > 0 {
		return dispatchMultimedia551(ctx, n, obj, files)
	}
	return dispatchMultimedia55(ctx, n, obj, forms)
}

func dispatchMultimedia551(ctx *decodeCtx, n *lineparser.Node, obj *gedcom.Multimedia, files []*lineparser.Node) bool {
	obj.Style = gedcom.MultimediaStyle551
	ctx.require551(n.LineNumber, "file-reference (FILE) multimedia style")

	for _, f := range files {
		ref := &gedcom.FileReference{Ref: f.Value}
		var sawForm bool
		for _, gc := range f.Children {
			switch gc.Tag {
			case "FORM":
				sawForm = true
				ref.Format = gc.Value
				for _, ggc := range gc.Children {
					switch ggc.Tag {
					case "MEDI", "TYPE":
						ref.MediaType = ggc.Value
					}
				}
			case "TITL":
				ref.Title = gc.Value
			}
		}
		if !sawForm {
			ctx.diags.add(newDiagnostic(f.LineNumber, SeverityError, CodeMultimediaConflict, "FILE is missing required FORM subordinate", f.Value))
		}
		obj.FileReferences = append(obj.FileReferences, ref)
	}

	for _, c := range n.Children {
		switch c.Tag {
		case "FILE", "FORM":
			// consumed above
		case "NOTE":
			if n.Level > 0 {
				ctx.diags.add(newDiagnostic(c.LineNumber, SeverityWarning, CodeMultimediaConflict, "NOTE under a 5.5.1-style OBJE link", ""))
			}
			obj.Notes = append(obj.Notes, dispatchNoteStructure(ctx, c))
		case "REFN":
			obj.UserReferences = append(obj.UserReferences, dispatchUserReference(c))
		case "CHAN":
			obj.ChangeDate = dispatchChangeDate(ctx, c)
		case "SOUR":
			obj.Citations = append(obj.Citations, dispatchCitation(ctx, c))
		default:
			if strings.HasPrefix(c.Tag, "_") {
				obj.CustomTags = append(obj.CustomTags, customTagFrom(c))
			} else {
				ctx.diags.addUnknownTag(c.LineNumber, c.Tag, "OBJE")
			}
		}
	}

	return true
}

func dispatchMultimedia55(ctx *decodeCtx, n *lineparser.Node, obj *gedcom.Multimedia, forms []*lineparser.Node) bool {
	obj.Style = gedcom.MultimediaStyle55
	ctx.require55(n.LineNumber, "embedded-blob (BLOB/chained OBJE) multimedia style")

	switch len(forms) {
	case 0:
		ctx.diags.add(newDiagnostic(n.LineNumber, SeverityWarning, CodeMultimediaConflict, "5.5-style OBJE has no FORM subordinate", ""))
	case 1:
		obj.Form = forms[0].Value
	default:
		ctx.diags.add(newDiagnostic(n.LineNumber, SeverityError, CodeMultimediaConflict, "5.5-style OBJE has more than one FORM subordinate", ""))
		return false
	}

	for _, c := range n.Children {
		switch c.Tag {
		case "FORM":
			// consumed above
		case "TITL":
			obj.Title = c.Value
		case "BLOB":
			for _, gc := range c.Children {
				if gc.Tag == "CONT" {
					obj.Blob = append(obj.Blob, gc.Value)
				}
			}
		case "OBJE":
			continued := &gedcom.Multimedia{}
			dispatchMultimediaInto(ctx, c, continued)
			obj.Continued = continued
		case "NOTE":
			obj.Notes = append(obj.Notes, dispatchNoteStructure(ctx, c))
		case "REFN":
			obj.UserReferences = append(obj.UserReferences, dispatchUserReference(c))
		case "CHAN":
			obj.ChangeDate = dispatchChangeDate(ctx, c)
		case "SOUR":
			obj.Citations = append(obj.Citations, dispatchCitation(ctx, c))
		default:
			if strings.HasPrefix(c.Tag, "_") {
				obj.CustomTags = append(obj.CustomTags, customTagFrom(c))
			} else {
				ctx.diags.addUnknownTag(c.LineNumber, c.Tag, "OBJE")
			}
		}
	}

	return true
}
