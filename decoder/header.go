package decoder

import (
	"strings"

	"github.com/jnorthrup/gedcom4go/gedcom"
	"github.com/jnorthrup/gedcom4go/lineparser"
)

// dispatchHeader builds the Header record from the HEAD node's children.
func dispatchHeader(ctx *decodeCtx, n *lineparser.Node) *gedcom.Header {
	h := &gedcom.Header{}

	for _, c := range n.Children {
		switch c.Tag {
		case "SOUR":
			h.SourceSystem = dispatchSourceSystem(ctx, c)
		case "DEST":
			h.DestinationSystem = c.Value
		case "DATE":
			h.Date = c.Value
			for _, gc := range c.Children {
				if gc.Tag == "TIME" {
					h.Time = gc.Value
				}
			}
		case "CHAR":
			h.CharacterSet.Name = gedcom.Encoding(c.Value)
			for _, gc := range c.Children {
				if gc.Tag == "VERS" {
					h.CharacterSet.Version = gc.Value
				}
			}
		case "SUBM":
			h.Submitter = getOrCreateSubmitter(ctx.doc, c.Value)
		case "SUBN":
			h.Submission = getOrCreateSubmission(ctx, c.Value)
		case "FILE":
			h.FileName = c.Value
		case "GEDC":
			h.GedcomVersion = dispatchGedcomVersion(ctx, c)
		case "COPR":
			lines := []string{c.Value}
			for _, gc := range c.Children {
				if isContinuation(gc.Tag) {
					lines = appendContinuation(lines, gc)
				}
			}
			h.CopyrightData = lines
			if len(lines) > 1 {
				ctx.require551(c.LineNumber, "multi-line COPR")
			}
		case "LANG":
			h.Language = c.Value
		case "PLAC":
			for _, gc := range c.Children {
				if gc.Tag == "FORM" {
					h.PlaceHierarchy = gc.Value
				}
			}
		case "NOTE":
			lines := []string{c.Value}
			for _, gc := range c.Children {
				if isContinuation(gc.Tag) {
					lines = appendContinuation(lines, gc)
				}
			}
			h.Notes = lines
		default:
			if strings.HasPrefix(c.Tag, "_") {
				h.CustomTags = append(h.CustomTags, customTagFrom(c))
			} else {
				ctx.diags.addUnknownTag(c.LineNumber, c.Tag, "HEAD")
			}
		}
	}

	return h
}

func dispatchSourceSystem(ctx *decodeCtx, n *lineparser.Node) *gedcom.SourceSystem {
	ss := &gedcom.SourceSystem{SystemID: n.Value}
	for _, c := range n.Children {
		switch c.Tag {
		case "VERS":
			ss.Version = c.Value
		case "NAME":
			ss.ProductName = c.Value
		case "CORP":
			ss.Corporation = dispatchCorporation(ctx, c)
		case "DATA":
			ss.SourceData = dispatchHeaderSourceData(ctx, c)
		default:
			if strings.HasPrefix(c.Tag, "_") {
				continue
			}
			ctx.diags.addUnknownTag(c.LineNumber, c.Tag, "HEAD > SOUR")
		}
	}
	ss.Vendor = gedcom.DetectVendor(ss.SystemID)
	if ss.Vendor == gedcom.VendorUnknown {
		ss.Vendor = gedcom.DetectVendor(ss.ProductName)
	}
	return ss
}

func dispatchCorporation(ctx *decodeCtx, n *lineparser.Node) *gedcom.Corporation {
	corp := &gedcom.Corporation{Name: n.Value}
	for _, c := range n.Children {
		switch c.Tag {
		case "ADDR":
			corp.Address = dispatchAddress(ctx, c)
		case "PHON":
			corp.Phone = append(corp.Phone, c.Value)
		case "EMAIL":
			ctx.require551(c.LineNumber, "corporation EMAIL")
			corp.Email = append(corp.Email, c.Value)
		case "FAX":
			ctx.require551(c.LineNumber, "corporation FAX")
			corp.Fax = append(corp.Fax, c.Value)
		case "WWW":
			ctx.require551(c.LineNumber, "corporation WWW")
			corp.WWW = append(corp.WWW, c.Value)
		default:
			if !strings.HasPrefix(c.Tag, "_") {
				ctx.diags.addUnknownTag(c.LineNumber, c.Tag, "HEAD > SOUR > CORP")
			}
		}
	}
	return corp
}

func dispatchHeaderSourceData(ctx *decodeCtx, n *lineparser.Node) *gedcom.HeaderSourceData {
	data := &gedcom.HeaderSourceData{Name: n.Value}
	for _, c := range n.Children {
		switch c.Tag {
		case "DATE":
			data.Date = c.Value
		case "COPR":
			data.Copyright = c.Value
		default:
			if !strings.HasPrefix(c.Tag, "_") {
				ctx.diags.addUnknownTag(c.LineNumber, c.Tag, "HEAD > SOUR > DATA")
			}
		}
	}
	return data
}

func dispatchGedcomVersion(ctx *decodeCtx, n *lineparser.Node) gedcom.GedcomVersion {
	v := gedcom.GedcomVersion{}
	for _, c := range n.Children {
		switch c.Tag {
		case "VERS":
			v.VersionNumber = gedcom.VersionNumber(c.Value)
			if !v.VersionNumber.IsValid() {
				ctx.diags.add(newDiagnostic(c.LineNumber, SeverityError, CodeInvalidValue, "invalid GEDC.VERS value, expected 5.5 or 5.5.1", c.Value))
			}
		case "FORM":
			v.Form = c.Value
		default:
			if !strings.HasPrefix(c.Tag, "_") {
				ctx.diags.addUnknownTag(c.LineNumber, c.Tag, "HEAD > GEDC")
			}
		}
	}
	return v
}

// customTagFrom copies an unrecognized node (and its children,
// recursively) into a gedcom.CustomTag.
func customTagFrom(n *lineparser.Node) gedcom.CustomTag {
	ct := gedcom.CustomTag{Level: n.Level, Tag: n.Tag, Value: n.Value, LineNumber: n.LineNumber}
	for _, c := range n.Children {
		ct.Children = append(ct.Children, customTagFrom(c))
	}
	return ct
}
