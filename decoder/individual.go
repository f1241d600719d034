package decoder

import (
	"strings"

	"github.com/jnorthrup/gedcom4go/gedcom"
	"github.com/jnorthrup/gedcom4go/lineparser"
)

func dispatchIndividualInto(ctx *decodeCtx, n *lineparser.Node, ind *gedcom.Individual) {
	for _, c := range n.Children {
		switch {
		case c.Tag == "NAME":
			ind.Names = append(ind.Names, dispatchName(ctx, c))
		case c.Tag == "SEX":
			ind.Sex = c.Value
		case c.Tag == "ADDR":
			ind.Address = dispatchAddress(ctx, c)
		case c.Tag == "PHON":
			ctx.require551(c.LineNumber, "individual PHON")
			ind.Phone = append(ind.Phone, c.Value)
		case c.Tag == "WWW":
			ctx.require551(c.LineNumber, "individual WWW")
			ind.WWW = append(ind.WWW, c.Value)
		case c.Tag == "FAX":
			ctx.require551(c.LineNumber, "individual FAX")
			ind.Fax = append(ind.Fax, c.Value)
		case c.Tag == "EMAIL":
			ctx.require551(c.LineNumber, "individual EMAIL")
			ind.Email = append(ind.Email, c.Value)
		case isEventTag(c.Tag):
			ind.Events = append(ind.Events, dispatchEvent(ctx, c))
		case isAttributeTag(c.Tag):
			ind.Attributes = append(ind.Attributes, dispatchAttribute(ctx, c))
		case c.Tag == "FAMC":
			ind.FamiliesWhereChild = append(ind.FamiliesWhereChild, dispatchFamilyLink(ctx, c))
		case c.Tag == "FAMS":
			ind.FamiliesWhereSpouse = append(ind.FamiliesWhereSpouse, getOrCreateFamily(ctx.doc, c.Value))
		case c.Tag == "ASSO":
			ind.Associations = append(ind.Associations, dispatchAssociation(ctx, c))
		case c.Tag == "ANCI":
			ind.AncestorInterest = append(ind.AncestorInterest, getOrCreateSubmitter(ctx.doc, c.Value))
		case c.Tag == "DESI":
			ind.DescendantInterest = append(ind.DescendantInterest, getOrCreateSubmitter(ctx.doc, c.Value))
		case c.Tag == "ALIA":
			ind.Aliases = append(ind.Aliases, c.Value)
		case c.Tag == "AFN":
			ind.AncestralFileNumber = c.Value
		case c.Tag == "RIN":
			ind.RecIDNumber = c.Value
		case c.Tag == "RFN":
			ind.PermanentRecFileNumber = c.Value
		case c.Tag == "RESN":
			ctx.require551(c.LineNumber, "individual RESN")
			ind.RestrictionNotice = c.Value
		case c.Tag == "BAPL" || c.Tag == "CONL" || c.Tag == "ENDL" || c.Tag == "SLGC":
			ind.LDSIndividualOrdinances = append(ind.LDSIndividualOrdinances, dispatchLDSOrdinance(ctx, c))
		case c.Tag == "SOUR":
			ind.Citations = append(ind.Citations, dispatchCitation(ctx, c))
		case c.Tag == "OBJE":
			if m, ok := dispatchMultimediaLink(ctx, c); ok {
				ind.Multimedia = append(ind.Multimedia, m)
			}
		case c.Tag == "NOTE":
			ind.Notes = append(ind.Notes, dispatchNoteStructure(ctx, c))
		case c.Tag == "SUBM":
			ind.Submitters = append(ind.Submitters, getOrCreateSubmitter(ctx.doc, c.Value))
		case c.Tag == "REFN":
			ind.UserReferences = append(ind.UserReferences, dispatchUserReference(c))
		case c.Tag == "CHAN":
			ind.ChangeDate = dispatchChangeDate(ctx, c)
		default:
			if strings.HasPrefix(c.Tag, "_") {
				ind.CustomTags = append(ind.CustomTags, customTagFrom(c))
			} else {
				ctx.diags.addUnknownTag(c.LineNumber, c.Tag, "INDI")
			}
		}
	}
}

func dispatchName(ctx *decodeCtx, n *lineparser.Node) *gedcom.PersonalName {
	name := &gedcom.PersonalName{Full: n.Value}
	for _, c := range n.Children {
		switch c.Tag {
		case "TYPE":
			name.Type = c.Value
		case "NPFX":
			name.Prefix = c.Value
		case "GIVN":
			name.Given = c.Value
		case "NICK":
			name.Nickname = c.Value
		case "SPFX":
			name.SurnamePrefix = c.Value
		case "SURN":
			name.Surname = c.Value
		case "NSFX":
			name.Suffix = c.Value
		case "FONE":
			ctx.require551(c.LineNumber, "name phonetic variation (FONE)")
			name.PhoneticVariations = append(name.PhoneticVariations, dispatchNameVariation(ctx, c))
		case "ROMN":
			ctx.require551(c.LineNumber, "name romanized variation (ROMN)")
			name.RomanizedVariations = append(name.RomanizedVariations, dispatchNameVariation(ctx, c))
		case "SOUR":
			name.Citations = append(name.Citations, dispatchCitation(ctx, c))
		case "NOTE":
			name.Notes = append(name.Notes, dispatchNoteStructure(ctx, c))
		default:
			if strings.HasPrefix(c.Tag, "_") {
				name.CustomTags = append(name.CustomTags, customTagFrom(c))
			} else {
				ctx.diags.addUnknownTag(c.LineNumber, c.Tag, "NAME")
			}
		}
	}
	return name
}

func dispatchNameVariation(ctx *decodeCtx, n *lineparser.Node) *gedcom.PersonalNameVariation {
	v := &gedcom.PersonalNameVariation{Full: n.Value}
	for _, c := range n.Children {
		switch c.Tag {
		case "TYPE":
			v.Method = c.Value
		case "NPFX":
			v.Prefix = c.Value
		case "GIVN":
			v.Given = c.Value
		case "NICK":
			v.Nickname = c.Value
		case "SPFX":
			v.SurnamePrefix = c.Value
		case "SURN":
			v.Surname = c.Value
		case "NSFX":
			v.Suffix = c.Value
		case "NOTE":
			v.Notes = append(v.Notes, dispatchNoteStructure(ctx, c))
		default:
			if strings.HasPrefix(c.Tag, "_") {
				v.CustomTags = append(v.CustomTags, customTagFrom(c))
			} else {
				ctx.diags.addUnknownTag(c.LineNumber, c.Tag, "FONE/ROMN")
			}
		}
	}
	return v
}

func dispatchFamilyLink(ctx *decodeCtx, n *lineparser.Node) *gedcom.FamilyLink {
	link := &gedcom.FamilyLink{Family: getOrCreateFamily(ctx.doc, n.Value)}
	for _, c := range n.Children {
		switch c.Tag {
		case "PEDI":
			link.Pedigree = c.Value
		case "STAT":
			ctx.require551(c.LineNumber, "FAMC STAT")
			link.Status = c.Value
		case "NOTE":
			link.Notes = append(link.Notes, dispatchNoteStructure(ctx, c))
		default:
			if !strings.HasPrefix(c.Tag, "_") {
				ctx.diags.addUnknownTag(c.LineNumber, c.Tag, "FAMC")
			}
		}
	}
	return link
}

func dispatchAssociation(ctx *decodeCtx, n *lineparser.Node) *gedcom.Association {
	asso := &gedcom.Association{Individual: getOrCreateIndividual(ctx.doc, n.Value)}
	for _, c := range n.Children {
		switch c.Tag {
		case "RELA":
			asso.Relation = c.Value
		case "SOUR":
			asso.Citations = append(asso.Citations, dispatchCitation(ctx, c))
		case "NOTE":
			asso.Notes = append(asso.Notes, dispatchNoteStructure(ctx, c))
		default:
			if strings.HasPrefix(c.Tag, "_") {
				asso.CustomTags = append(asso.CustomTags, customTagFrom(c))
			} else {
				ctx.diags.addUnknownTag(c.LineNumber, c.Tag, "ASSO")
			}
		}
	}
	return asso
}
