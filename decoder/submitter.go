package decoder

import (
	"strings"

	"github.com/jnorthrup/gedcom4go/gedcom"
	"github.com/jnorthrup/gedcom4go/lineparser"
)

func dispatchSubmitterInto(ctx *decodeCtx, n *lineparser.Node, sub *gedcom.Submitter) {
	for _, c := range n.Children {
		switch c.Tag {
		case "NAME":
			sub.Name = c.Value
		case "ADDR":
			sub.Address = dispatchAddress(ctx, c)
		case "PHON":
			sub.Phone = append(sub.Phone, c.Value)
		case "EMAIL":
			ctx.require551(c.LineNumber, "submitter EMAIL")
			sub.Email = append(sub.Email, c.Value)
		case "FAX":
			ctx.require551(c.LineNumber, "submitter FAX")
			sub.Fax = append(sub.Fax, c.Value)
		case "WWW":
			ctx.require551(c.LineNumber, "submitter WWW")
			sub.WWW = append(sub.WWW, c.Value)
		case "LANG":
			sub.Languages = append(sub.Languages, c.Value)
		case "RFN":
			sub.RecordFileNumber = c.Value
		case "OBJE":
			if m, ok := dispatchMultimediaLink(ctx, c); ok {
				sub.Multimedia = append(sub.Multimedia, m)
			}
		case "NOTE":
			sub.Notes = append(sub.Notes, dispatchNoteStructure(ctx, c))
		case "CHAN":
			sub.ChangeDate = dispatchChangeDate(ctx, c)
		default:
			if strings.HasPrefix(c.Tag, "_") {
				sub.CustomTags = append(sub.CustomTags, customTagFrom(c))
			} else {
				ctx.diags.addUnknownTag(c.LineNumber, c.Tag, "SUBM")
			}
		}
	}
}

func dispatchSubmission(ctx *decodeCtx, n *lineparser.Node) *gedcom.Submission {
	sub := getOrCreateSubmission(ctx, n.XRefID)
	for _, c := range n.Children {
		switch c.Tag {
		case "SUBM":
			sub.Submitter = getOrCreateSubmitter(ctx.doc, c.Value)
		case "FAMF":
			sub.FamilyFileName = c.Value
		case "TEMP":
			sub.TempleCode = c.Value
		case "ANCE":
			sub.AncestorsCount = c.Value
		case "DESC":
			sub.DescendantsCount = c.Value
		case "ORDI":
			sub.OrdinanceProcessFlag = c.Value
		case "RFN":
			sub.RecordFileNumber = c.Value
		case "NOTE":
			sub.Notes = append(sub.Notes, dispatchNoteStructure(ctx, c))
		case "CHAN":
			sub.ChangeDate = dispatchChangeDate(ctx, c)
		default:
			if strings.HasPrefix(c.Tag, "_") {
				sub.CustomTags = append(sub.CustomTags, customTagFrom(c))
			} else {
				ctx.diags.addUnknownTag(c.LineNumber, c.Tag, "SUBN")
			}
		}
	}
	return sub
}
