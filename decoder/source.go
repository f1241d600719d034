package decoder

import (
	"strings"

	"github.com/jnorthrup/gedcom4go/gedcom"
	"github.com/jnorthrup/gedcom4go/lineparser"
)

func dispatchSourceInto(ctx *decodeCtx, n *lineparser.Node, src *gedcom.Source) {
	for _, c := range n.Children {
		switch c.Tag {
		case "AUTH":
			src.Author = foldNameChildren(c)
		case "TITL":
			src.Title = foldNameChildren(c)
		case "PUBL":
			src.Publication = foldNameChildren(c)
		case "TEXT":
			lines := []string{c.Value}
			for _, gc := range c.Children {
				if isContinuation(gc.Tag) {
					lines = appendContinuation(lines, gc)
				}
			}
			src.SourceText = append(src.SourceText, lines...)
		case "DATA":
			src.Data = dispatchSourceData(ctx, c)
		case "REPO":
			src.Repository = dispatchRepositoryCitation(ctx, c)
		case "OBJE":
			if m, ok := dispatchMultimediaLink(ctx, c); ok {
				src.Multimedia = append(src.Multimedia, m)
			}
		case "NOTE":
			src.Notes = append(src.Notes, dispatchNoteStructure(ctx, c))
		case "REFN":
			src.UserReferences = append(src.UserReferences, dispatchUserReference(c))
		case "CHAN":
			src.ChangeDate = dispatchChangeDate(ctx, c)
		default:
			if strings.HasPrefix(c.Tag, "_") {
				src.CustomTags = append(src.CustomTags, customTagFrom(c))
			} else {
				ctx.diags.addUnknownTag(c.LineNumber, c.Tag, "SOUR")
			}
		}
	}
}

func dispatchSourceData(ctx *decodeCtx, n *lineparser.Node) *gedcom.SourceData {
	data := &gedcom.SourceData{}
	for _, c := range n.Children {
		switch c.Tag {
		case "EVEN":
			data.EventsRecorded = c.Value
			for _, gc := range c.Children {
				switch gc.Tag {
				case "DATE":
					data.DatePeriod = gc.Value
				case "PLAC":
					data.Place = dispatchPlace(ctx, gc)
				}
			}
		case "AGNC":
			data.Agency = c.Value
		case "NOTE":
			data.Notes = append(data.Notes, dispatchNoteStructure(ctx, c))
		default:
			if !strings.HasPrefix(c.Tag, "_") {
				ctx.diags.addUnknownTag(c.LineNumber, c.Tag, "SOUR > DATA")
			}
		}
	}
	return data
}

func dispatchRepositoryCitation(ctx *decodeCtx, n *lineparser.Node) *gedcom.RepositoryCitation {
	cite := &gedcom.RepositoryCitation{}
	if lineparser.IsXRef(n.Value) {
		cite.Repository = getOrCreateRepository(ctx.doc, n.Value)
	}
	for _, c := range n.Children {
		switch c.Tag {
		case "CALN":
			cite.CallNumber = c.Value
			for _, gc := range c.Children {
				if gc.Tag == "MEDI" {
					cite.MediaType = gc.Value
				}
			}
		case "NOTE":
			cite.Notes = append(cite.Notes, dispatchNoteStructure(ctx, c))
		default:
			if !strings.HasPrefix(c.Tag, "_") {
				ctx.diags.addUnknownTag(c.LineNumber, c.Tag, "SOUR > REPO")
			}
		}
	}
	return cite
}

// foldNameChildren concatenates a node's value with its CONC/CONT
// children, for scalar text fields (AUTH, TITL, PUBL) that the spec keeps
// as one string rather than a line list.
func foldNameChildren(n *lineparser.Node) string {
	value := n.Value
	for _, c := range n.Children {
		if isContinuation(c.Tag) {
			value = foldName(value, c)
		}
	}
	return value
}
