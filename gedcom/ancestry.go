package gedcom

import "strings"

// AncestryAPID is a parsed Ancestry.com Permanent Identifier, carried as
// an _APID custom tag on citations and records exported from Ancestry
// trees. Format: "1,DATABASE::RECORD", with the leading "1," prefix
// optional.
type AncestryAPID struct {
	Raw      string
	Database string
	Record   string
}

// ParseAPID parses an _APID value. Returns nil if value does not contain
// the "::" database/record separator.
func ParseAPID(value string) *AncestryAPID {
	if value == "" {
		return nil
	}
	sep := strings.Index(value, "::")
	if sep == -1 {
		return nil
	}
	record := value[sep+2:]
	if record == "" {
		return nil
	}
	dbPart := value[:sep]
	database := dbPart
	if comma := strings.Index(dbPart, ","); comma != -1 {
		database = dbPart[comma+1:]
	}
	if database == "" {
		return nil
	}
	return &AncestryAPID{Raw: value, Database: database, Record: record}
}

// URL returns the ancestry.com URL for this record, or "" if a is nil or
// incomplete.
func (a *AncestryAPID) URL() string {
	if a == nil || a.Database == "" || a.Record == "" {
		return ""
	}
	return "https://www.ancestry.com/discoveryui-content/view/" + a.Record + ":" + a.Database
}

// FindCustomTag returns the first custom tag with the given tag name, or
// nil if none is present. Used to recover vendor extensions such as
// _APID or _FSFTID that the decoder preserves but does not interpret.
func FindCustomTag(tags []CustomTag, tag string) *CustomTag {
	for i := range tags {
		if tags[i].Tag == tag {
			return &tags[i]
		}
	}
	return nil
}
