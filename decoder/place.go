package decoder

import (
	"strings"

	"github.com/jnorthrup/gedcom4go/gedcom"
	"github.com/jnorthrup/gedcom4go/lineparser"
)

func dispatchPlace(ctx *decodeCtx, n *lineparser.Node) *gedcom.Place {
	p := &gedcom.Place{Name: n.Value}
	for _, c := range n.Children {
		switch {
		case isContinuation(c.Tag):
			p.Name = foldName(p.Name, c)
		case c.Tag == "FORM":
			p.Form = c.Value
		case c.Tag == "FONE":
			ctx.require551(c.LineNumber, "place phonetic variation (FONE)")
			p.PhoneticVariations = append(p.PhoneticVariations, dispatchPlaceVariation(c))
		case c.Tag == "ROMN":
			ctx.require551(c.LineNumber, "place romanized variation (ROMN)")
			p.RomanizedVariations = append(p.RomanizedVariations, dispatchPlaceVariation(c))
		case c.Tag == "MAP":
			ctx.require551(c.LineNumber, "place coordinates (MAP)")
			for _, gc := range c.Children {
				switch gc.Tag {
				case "LATI":
					p.Latitude = gc.Value
				case "LONG":
					p.Longitude = gc.Value
				}
			}
		case c.Tag == "NOTE":
			p.Notes = append(p.Notes, dispatchNoteStructure(ctx, c))
		case c.Tag == "SOUR":
			p.Citations = append(p.Citations, dispatchCitation(ctx, c))
		default:
			if strings.HasPrefix(c.Tag, "_") {
				p.CustomTags = append(p.CustomTags, customTagFrom(c))
			} else {
				ctx.diags.addUnknownTag(c.LineNumber, c.Tag, "PLAC")
			}
		}
	}
	return p
}

func dispatchPlaceVariation(n *lineparser.Node) *gedcom.PlaceVariation {
	v := &gedcom.PlaceVariation{Value: n.Value}
	for _, c := range n.Children {
		if c.Tag == "TYPE" {
			v.Method = c.Value
		}
	}
	return v
}

// foldName applies CONC/CONT folding to a single accumulated string
// rather than a []string, for fields like Place.Name that the spec keeps
// as one concatenated value.
func foldName(current string, child *lineparser.Node) string {
	switch child.Tag {
	case "CONT":
		return current + "\n" + child.Value
	case "CONC":
		return current + child.Value
	default:
		return current
	}
}
