package decoder

import (
	"strings"

	"github.com/jnorthrup/gedcom4go/gedcom"
	"github.com/jnorthrup/gedcom4go/lineparser"
)

// dispatchNoteStructure builds a Note from wherever a NOTE tag appears as
// a sub-structure. If the value matches the xref pointer pattern it
// resolves (get-or-create) the shared Document-level Note; otherwise it
// builds an inline Note from the value plus CONC/CONT children.
func dispatchNoteStructure(ctx *decodeCtx, n *lineparser.Node) *gedcom.Note {
	if lineparser.IsXRef(n.Value) {
		return getOrCreateNote(ctx.doc, n.Value)
	}

	note := &gedcom.Note{Text: []string{n.Value}}
	for _, c := range n.Children {
		switch {
		case isContinuation(c.Tag):
			note.Text = appendContinuation(note.Text, c)
		case c.Tag == "SOUR":
			note.Citations = append(note.Citations, dispatchCitation(ctx, c))
		default:
			if strings.HasPrefix(c.Tag, "_") {
				note.CustomTags = append(note.CustomTags, customTagFrom(c))
			} else {
				ctx.diags.addUnknownTag(c.LineNumber, c.Tag, "NOTE")
			}
		}
	}
	return note
}

// dispatchNoteInto populates a top-level NOTE record's fields.
func dispatchNoteInto(ctx *decodeCtx, n *lineparser.Node, note *gedcom.Note) {
	note.Text = append(note.Text, n.Value)
	for _, c := range n.Children {
		switch {
		case isContinuation(c.Tag):
			note.Text = appendContinuation(note.Text, c)
		case c.Tag == "SOUR":
			note.Citations = append(note.Citations, dispatchCitation(ctx, c))
		case c.Tag == "REFN":
			note.UserReferences = append(note.UserReferences, dispatchUserReference(c))
		case c.Tag == "CHAN":
			note.ChangeDate = dispatchChangeDate(ctx, c)
		default:
			if strings.HasPrefix(c.Tag, "_") {
				note.CustomTags = append(note.CustomTags, customTagFrom(c))
			} else {
				ctx.diags.addUnknownTag(c.LineNumber, c.Tag, "NOTE")
			}
		}
	}
}

func dispatchUserReference(n *lineparser.Node) *gedcom.UserReference {
	ref := &gedcom.UserReference{Number: n.Value}
	for _, c := range n.Children {
		if c.Tag == "TYPE" {
			ref.Type = c.Value
		}
	}
	return ref
}

func dispatchChangeDate(ctx *decodeCtx, n *lineparser.Node) *gedcom.ChangeDate {
	cd := &gedcom.ChangeDate{}
	for _, c := range n.Children {
		switch c.Tag {
		case "DATE":
			cd.Date = c.Value
			for _, gc := range c.Children {
				if gc.Tag == "TIME" {
					cd.Time = gc.Value
				}
			}
		case "NOTE":
			cd.Notes = append(cd.Notes, dispatchNoteStructure(ctx, c))
		default:
			if strings.HasPrefix(c.Tag, "_") {
				cd.CustomTags = append(cd.CustomTags, customTagFrom(c))
			} else {
				ctx.diags.addUnknownTag(c.LineNumber, c.Tag, "CHAN")
			}
		}
	}
	return cd
}

func dispatchAddress(ctx *decodeCtx, n *lineparser.Node) *gedcom.Address {
	addr := &gedcom.Address{Lines: []string{n.Value}}
	for _, c := range n.Children {
		switch c.Tag {
		case "CONT":
			addr.Lines = appendContinuation(addr.Lines, c)
		case "ADR1":
			addr.Addr1 = c.Value
		case "ADR2":
			addr.Addr2 = c.Value
		case "CITY":
			addr.City = c.Value
		case "STAE":
			addr.StateProvince = c.Value
		case "POST":
			addr.PostalCode = c.Value
		case "CTRY":
			addr.Country = c.Value
		default:
			if strings.HasPrefix(c.Tag, "_") {
				addr.CustomTags = append(addr.CustomTags, customTagFrom(c))
			} else {
				ctx.diags.addUnknownTag(c.LineNumber, c.Tag, "ADDR")
			}
		}
	}
	return addr
}
