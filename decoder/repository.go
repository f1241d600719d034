package decoder

import (
	"strings"

	"github.com/jnorthrup/gedcom4go/gedcom"
	"github.com/jnorthrup/gedcom4go/lineparser"
)

func dispatchRepositoryInto(ctx *decodeCtx, n *lineparser.Node, repo *gedcom.Repository) {
	for _, c := range n.Children {
		switch c.Tag {
		case "NAME":
			repo.Name = c.Value
		case "ADDR":
			repo.Address = dispatchAddress(ctx, c)
		case "PHON":
			repo.Phone = append(repo.Phone, c.Value)
		case "WWW":
			ctx.require551(c.LineNumber, "repository WWW")
			repo.WWW = append(repo.WWW, c.Value)
		case "FAX":
			ctx.require551(c.LineNumber, "repository FAX")
			repo.Fax = append(repo.Fax, c.Value)
		case "EMAIL":
			ctx.require551(c.LineNumber, "repository EMAIL")
			repo.Email = append(repo.Email, c.Value)
		case "NOTE":
			repo.Notes = append(repo.Notes, dispatchNoteStructure(ctx, c))
		case "CHAN":
			repo.ChangeDate = dispatchChangeDate(ctx, c)
		default:
			if strings.HasPrefix(c.Tag, "_") {
				repo.CustomTags = append(repo.CustomTags, customTagFrom(c))
			} else {
				ctx.diags.addUnknownTag(c.LineNumber, c.Tag, "REPO")
			}
		}
	}
}
