package decoder

import (
	"strings"

	"github.com/jnorthrup/gedcom4go/gedcom"
	"github.com/jnorthrup/gedcom4go/lineparser"
)

// dispatchEvent builds an Event from any of the BIRT/DEAT/MARR/... tags
// enumerated in gedcom.EventType, all sharing one subordinate grammar per
// spec.md §4.4.7.
func dispatchEvent(ctx *decodeCtx, n *lineparser.Node) *gedcom.Event {
	ev := &gedcom.Event{Type: gedcom.EventType(n.Tag)}
	for _, c := range n.Children {
		switch c.Tag {
		case "TYPE":
			ev.TypeDetail = c.Value
		case "DATE":
			ev.Date = c.Value
		case "PLAC":
			ev.Place = dispatchPlace(ctx, c)
		case "ADDR":
			ev.Address = dispatchAddress(ctx, c)
		case "PHON":
			ctx.require551(c.LineNumber, "event PHON")
			ev.Phone = append(ev.Phone, c.Value)
		case "WWW":
			ctx.require551(c.LineNumber, "event WWW")
			ev.WWW = append(ev.WWW, c.Value)
		case "FAX":
			ctx.require551(c.LineNumber, "event FAX")
			ev.Fax = append(ev.Fax, c.Value)
		case "EMAIL":
			ctx.require551(c.LineNumber, "event EMAIL")
			ev.Email = append(ev.Email, c.Value)
		case "AGE":
			ev.Age = c.Value
		case "AGNC":
			ev.Agency = c.Value
		case "CAUS":
			ev.Cause = c.Value
		case "RESN":
			ctx.require551(c.LineNumber, "event RESN")
			ev.RestrictionNotice = c.Value
		case "SOUR":
			ev.Citations = append(ev.Citations, dispatchCitation(ctx, c))
		case "OBJE":
			if m, ok := dispatchMultimediaLink(ctx, c); ok {
				ev.Multimedia = append(ev.Multimedia, m)
			}
		case "NOTE":
			ev.Notes = append(ev.Notes, dispatchNoteStructure(ctx, c))
		default:
			if strings.HasPrefix(c.Tag, "_") {
				ev.CustomTags = append(ev.CustomTags, customTagFrom(c))
			} else {
				ctx.diags.addUnknownTag(c.LineNumber, c.Tag, n.Tag)
			}
		}
	}
	return ev
}

// dispatchAttribute builds a personal Attribute (OCCU, EDUC, RESI, ...).
// It shares Event's subordinate grammar but carries its scalar on the tag
// line itself (Value).
func dispatchAttribute(ctx *decodeCtx, n *lineparser.Node) *gedcom.Attribute {
	if gedcom.AttributeType(n.Tag) == gedcom.AttributeFact {
		ctx.require551(n.LineNumber, "FACT attribute")
	}
	attr := &gedcom.Attribute{Type: gedcom.AttributeType(n.Tag), Value: n.Value}
	for _, c := range n.Children {
		switch c.Tag {
		case "TYPE":
			attr.TypeDetail = c.Value
		case "DATE":
			attr.Date = c.Value
		case "PLAC":
			attr.Place = dispatchPlace(ctx, c)
		case "ADDR":
			attr.Address = dispatchAddress(ctx, c)
		case "PHON":
			ctx.require551(c.LineNumber, "attribute PHON")
			attr.Phone = append(attr.Phone, c.Value)
		case "WWW":
			ctx.require551(c.LineNumber, "attribute WWW")
			attr.WWW = append(attr.WWW, c.Value)
		case "FAX":
			ctx.require551(c.LineNumber, "attribute FAX")
			attr.Fax = append(attr.Fax, c.Value)
		case "EMAIL":
			ctx.require551(c.LineNumber, "attribute EMAIL")
			attr.Email = append(attr.Email, c.Value)
		case "AGE":
			attr.Age = c.Value
		case "AGNC":
			attr.Agency = c.Value
		case "CAUS":
			attr.Cause = c.Value
		case "SOUR":
			attr.Citations = append(attr.Citations, dispatchCitation(ctx, c))
		case "OBJE":
			if m, ok := dispatchMultimediaLink(ctx, c); ok {
				attr.Multimedia = append(attr.Multimedia, m)
			}
		case "NOTE":
			attr.Notes = append(attr.Notes, dispatchNoteStructure(ctx, c))
		default:
			if strings.HasPrefix(c.Tag, "_") {
				attr.CustomTags = append(attr.CustomTags, customTagFrom(c))
			} else {
				ctx.diags.addUnknownTag(c.LineNumber, c.Tag, n.Tag)
			}
		}
	}
	return attr
}

// isEventTag reports whether tag is one of the individual/family event
// tags sharing dispatchEvent's grammar.
func isEventTag(tag string) bool {
	switch gedcom.EventType(tag) {
	case gedcom.EventBirth, gedcom.EventChristening, gedcom.EventDeath, gedcom.EventBurial,
		gedcom.EventCremation, gedcom.EventAdoption, gedcom.EventBaptism, gedcom.EventBarMitzvah,
		gedcom.EventBasMitzvah, gedcom.EventBlessing, gedcom.EventAdultChristening, gedcom.EventConfirmation,
		gedcom.EventFirstCommunion, gedcom.EventOrdination, gedcom.EventNaturalization, gedcom.EventEmigration,
		gedcom.EventImmigration, gedcom.EventCensus, gedcom.EventProbate, gedcom.EventWill,
		gedcom.EventGraduation, gedcom.EventRetirement, gedcom.EventEvent,
		gedcom.EventMarriage, gedcom.EventMarriageBann, gedcom.EventMarriageContract, gedcom.EventMarriageLicense,
		gedcom.EventMarriageSettlement, gedcom.EventEngagement, gedcom.EventDivorce, gedcom.EventDivorceFiling,
		gedcom.EventAnnulment:
		return true
	}
	return false
}

// isAttributeTag reports whether tag is one of the personal attribute
// tags sharing dispatchAttribute's grammar.
func isAttributeTag(tag string) bool {
	switch gedcom.AttributeType(tag) {
	case gedcom.AttributeCaste, gedcom.AttributePhysicalDescription, gedcom.AttributeEducation,
		gedcom.AttributeIdentityNumber, gedcom.AttributeNationalOrigin, gedcom.AttributeChildCount,
		gedcom.AttributeMarriageCount, gedcom.AttributeOccupation, gedcom.AttributePossessions,
		gedcom.AttributeReligion, gedcom.AttributeResidence, gedcom.AttributeSocialSecurityNumber,
		gedcom.AttributeTitle, gedcom.AttributeFact:
		return true
	}
	return false
}
