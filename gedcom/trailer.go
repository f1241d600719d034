package gedcom

// Trailer marks the end of a transmission. A valid GEDCOM file has
// exactly one, as the line "0 TRLR".
type Trailer struct {
	LineNumber int
}
