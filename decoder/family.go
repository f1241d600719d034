package decoder

import (
	"strings"

	"github.com/jnorthrup/gedcom4go/gedcom"
	"github.com/jnorthrup/gedcom4go/lineparser"
)

func dispatchFamilyInto(ctx *decodeCtx, n *lineparser.Node, fam *gedcom.Family) {
	for _, c := range n.Children {
		switch {
		case c.Tag == "HUSB":
			fam.Husband = getOrCreateIndividual(ctx.doc, c.Value)
		case c.Tag == "WIFE":
			fam.Wife = getOrCreateIndividual(ctx.doc, c.Value)
		case c.Tag == "CHIL":
			fam.Children = append(fam.Children, getOrCreateIndividual(ctx.doc, c.Value))
		case c.Tag == "NCHI":
			fam.NumChildren = c.Value
		case isEventTag(c.Tag):
			fam.Events = append(fam.Events, dispatchEvent(ctx, c))
		case c.Tag == "RESN":
			ctx.require551(c.LineNumber, "family RESN")
			fam.RestrictionNotice = c.Value
		case c.Tag == "RIN":
			fam.AutomatedRecordID = c.Value
		case c.Tag == "RFN":
			fam.RecFileNumber = c.Value
		case c.Tag == "SLGS":
			fam.LDSSpouseSealings = append(fam.LDSSpouseSealings, dispatchLDSOrdinance(ctx, c))
		case c.Tag == "SOUR":
			fam.Citations = append(fam.Citations, dispatchCitation(ctx, c))
		case c.Tag == "OBJE":
			if m, ok := dispatchMultimediaLink(ctx, c); ok {
				fam.Multimedia = append(fam.Multimedia, m)
			}
		case c.Tag == "NOTE":
			fam.Notes = append(fam.Notes, dispatchNoteStructure(ctx, c))
		case c.Tag == "SUBM":
			fam.Submitters = append(fam.Submitters, getOrCreateSubmitter(ctx.doc, c.Value))
		case c.Tag == "REFN":
			fam.UserReferences = append(fam.UserReferences, dispatchUserReference(c))
		case c.Tag == "CHAN":
			fam.ChangeDate = dispatchChangeDate(ctx, c)
		default:
			if strings.HasPrefix(c.Tag, "_") {
				fam.CustomTags = append(fam.CustomTags, customTagFrom(c))
			} else {
				ctx.diags.addUnknownTag(c.LineNumber, c.Tag, "FAM")
			}
		}
	}
}
