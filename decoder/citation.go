package decoder

import (
	"strconv"
	"strings"

	"github.com/jnorthrup/gedcom4go/gedcom"
	"github.com/jnorthrup/gedcom4go/lineparser"
)

// dispatchCitation implements spec.md §4.4.4's citation discrimination:
// a SOUR node whose value matches the xref pointer pattern builds a
// WithSource citation (resolving Source via get-or-create); otherwise it
// builds a WithoutSource citation from the inline description.
func dispatchCitation(ctx *decodeCtx, n *lineparser.Node) *gedcom.Citation {
	if lineparser.IsXRef(n.Value) {
		return dispatchCitationWithSource(ctx, n)
	}
	return dispatchCitationWithoutSource(ctx, n)
}

func dispatchCitationWithSource(ctx *decodeCtx, n *lineparser.Node) *gedcom.Citation {
	cite := &gedcom.Citation{
		Kind:   gedcom.CitationWithSource,
		Source: getOrCreateSource(ctx.doc, n.Value),
	}
	for _, c := range n.Children {
		switch c.Tag {
		case "PAGE":
			cite.WhereInSource = c.Value
		case "EVEN":
			cite.EventCited = c.Value
			for _, gc := range c.Children {
				if gc.Tag == "ROLE" {
					cite.RoleInEvent = gc.Value
				}
			}
		case "QUAY":
			if q, err := strconv.Atoi(c.Value); err != nil || q < 0 || q > 3 {
				ctx.diags.addInvalidValue(c.LineNumber, "QUAY", c.Value, "expected integer 0-3")
			}
			cite.Certainty = c.Value
		case "DATA":
			cite.Data = append(cite.Data, dispatchCitationData(ctx, c))
		case "NOTE":
			cite.Notes = append(cite.Notes, dispatchNoteStructure(ctx, c))
		case "OBJE":
			if m, ok := dispatchMultimediaLink(ctx, c); ok {
				cite.Multimedia = append(cite.Multimedia, m)
			}
		default:
			if strings.HasPrefix(c.Tag, "_") {
				cite.CustomTags = append(cite.CustomTags, customTagFrom(c))
			} else {
				ctx.diags.addUnknownTag(c.LineNumber, c.Tag, "SOUR")
			}
		}
	}
	cite.AncestryAPID = apidFromCustomTags(cite.CustomTags)
	return cite
}

func dispatchCitationWithoutSource(ctx *decodeCtx, n *lineparser.Node) *gedcom.Citation {
	cite := &gedcom.Citation{Kind: gedcom.CitationWithoutSource, Description: []string{n.Value}}
	for _, c := range n.Children {
		switch c.Tag {
		case "CONT", "CONC":
			cite.Description = appendContinuation(cite.Description, c)
		case "TEXT":
			lines := []string{c.Value}
			for _, gc := range c.Children {
				if isContinuation(gc.Tag) {
					lines = appendContinuation(lines, gc)
				}
			}
			cite.TextFromSource = append(cite.TextFromSource, lines...)
		case "NOTE":
			cite.Notes = append(cite.Notes, dispatchNoteStructure(ctx, c))
		default:
			if strings.HasPrefix(c.Tag, "_") {
				cite.CustomTags = append(cite.CustomTags, customTagFrom(c))
			} else {
				ctx.diags.addUnknownTag(c.LineNumber, c.Tag, "SOUR")
			}
		}
	}
	cite.AncestryAPID = apidFromCustomTags(cite.CustomTags)
	return cite
}

// apidFromCustomTags recovers an Ancestry.com record pointer from an
// _APID custom tag, if the citation carries one.
func apidFromCustomTags(tags []gedcom.CustomTag) *gedcom.AncestryAPID {
	tag := gedcom.FindCustomTag(tags, "_APID")
	if tag == nil {
		return nil
	}
	return gedcom.ParseAPID(tag.Value)
}

func dispatchCitationData(ctx *decodeCtx, n *lineparser.Node) *gedcom.CitationData {
	data := &gedcom.CitationData{}
	for _, c := range n.Children {
		switch c.Tag {
		case "DATE":
			data.Date = c.Value
		case "TEXT":
			lines := []string{c.Value}
			for _, gc := range c.Children {
				if isContinuation(gc.Tag) {
					lines = appendContinuation(lines, gc)
				}
			}
			data.Text = append(data.Text, lines...)
		default:
			if !strings.HasPrefix(c.Tag, "_") {
				ctx.diags.addUnknownTag(c.LineNumber, c.Tag, "SOUR > DATA")
			}
		}
	}
	return data
}
