package gedcom

// EventType is the tag identifying a life event (individual or family).
type EventType string

const (
	EventBirth        EventType = "BIRT"
	EventChristening  EventType = "CHR"
	EventDeath        EventType = "DEAT"
	EventBurial       EventType = "BURI"
	EventCremation    EventType = "CREM"
	EventAdoption     EventType = "ADOP"
	EventBaptism      EventType = "BAPM"
	EventBarMitzvah   EventType = "BARM"
	EventBasMitzvah   EventType = "BASM"
	EventBlessing     EventType = "BLES"
	EventAdultChristening EventType = "CHRA"
	EventConfirmation EventType = "CONF"
	EventFirstCommunion EventType = "FCOM"
	EventOrdination   EventType = "ORDN"
	EventNaturalization EventType = "NATU"
	EventEmigration   EventType = "EMIG"
	EventImmigration  EventType = "IMMI"
	EventCensus       EventType = "CENS"
	EventProbate      EventType = "PROB"
	EventWill         EventType = "WILL"
	EventGraduation   EventType = "GRAD"
	EventRetirement   EventType = "RETI"
	EventEvent        EventType = "EVEN"

	EventMarriage           EventType = "MARR"
	EventMarriageBann       EventType = "MARB"
	EventMarriageContract   EventType = "MARC"
	EventMarriageLicense    EventType = "MARL"
	EventMarriageSettlement EventType = "MARS"
	EventEngagement         EventType = "ENGA"
	EventDivorce            EventType = "DIV"
	EventDivorceFiling      EventType = "DIVF"
	EventAnnulment          EventType = "ANUL"
)

// AttributeType is the tag identifying a personal attribute (individual
// attributes share the same subordinate grammar as events, per §4.4.7).
type AttributeType string

const (
	AttributeCaste        AttributeType = "CAST"
	AttributePhysicalDescription AttributeType = "DSCR"
	AttributeEducation    AttributeType = "EDUC"
	AttributeIdentityNumber AttributeType = "IDNO"
	AttributeNationalOrigin AttributeType = "NATI"
	AttributeChildCount   AttributeType = "NCHI"
	AttributeMarriageCount AttributeType = "NMR"
	AttributeOccupation   AttributeType = "OCCU"
	AttributePossessions  AttributeType = "PROP"
	AttributeReligion     AttributeType = "RELI"
	AttributeResidence    AttributeType = "RESI"
	AttributeSocialSecurityNumber AttributeType = "SSN"
	AttributeTitle        AttributeType = "TITL"
	AttributeFact         AttributeType = "FACT"
)

// Event is an individual or family event structure: BIRT, DEAT, MARR, and
// the rest of the enumerated set in §4.4.7, all sharing one subordinate
// grammar (DATE, PLAC, ADDR, AGE, AGNC, CAUS, SOUR, NOTE, OBJE).
type Event struct {
	Type EventType

	// TypeDetail is the free-text TYPE subordinate refining a generic
	// EVEN or FACT event/attribute.
	TypeDetail string

	Date  string
	Place *Place

	Address *Address
	Phone   []string
	WWW     []string
	Fax     []string
	Email   []string

	Age    string
	Agency string
	Cause  string

	// RestrictionNotice is 5.5.1-only (RESN).
	RestrictionNotice string

	Citations  []*Citation
	Multimedia []*Multimedia
	Notes      []*Note
	CustomTags []CustomTag
}

// Attribute is a personal attribute structure (OCCU, EDUC, ...), sharing
// Event's subordinate grammar plus a scalar Value carried on the tag line
// itself.
type Attribute struct {
	Type  AttributeType
	Value string

	// TypeDetail is the free-text TYPE subordinate refining the attribute.
	TypeDetail string

	Date  string
	Place *Place

	Address *Address
	Phone   []string
	WWW     []string
	Fax     []string
	Email   []string

	Age    string
	Agency string
	Cause  string

	Citations  []*Citation
	Multimedia []*Multimedia
	Notes      []*Note
	CustomTags []CustomTag
}
