package decoder

import (
	"strings"

	"github.com/jnorthrup/gedcom4go/gedcom"
	"github.com/jnorthrup/gedcom4go/lineparser"
)

// dispatchLDSOrdinance builds a BAPL/CONL/ENDL/SLGC/SLGS structure. SLGC
// additionally carries a FAMC back to the family in which the child was
// sealed; every other type leaves Family nil.
func dispatchLDSOrdinance(ctx *decodeCtx, n *lineparser.Node) *gedcom.LDSOrdinance {
	ord := &gedcom.LDSOrdinance{Type: gedcom.LDSOrdinanceType(n.Tag)}
	for _, c := range n.Children {
		switch c.Tag {
		case "DATE":
			ord.Date = c.Value
		case "TEMP":
			ord.Temple = c.Value
		case "PLAC":
			ord.Place = dispatchPlace(ctx, c)
		case "STAT":
			ord.Status = c.Value
		case "FAMC":
			ord.Family = getOrCreateFamily(ctx.doc, c.Value)
		case "SOUR":
			ord.Citations = append(ord.Citations, dispatchCitation(ctx, c))
		case "NOTE":
			ord.Notes = append(ord.Notes, dispatchNoteStructure(ctx, c))
		default:
			if strings.HasPrefix(c.Tag, "_") {
				ord.CustomTags = append(ord.CustomTags, customTagFrom(c))
			} else {
				ctx.diags.addUnknownTag(c.LineNumber, c.Tag, n.Tag)
			}
		}
	}
	return ord
}
