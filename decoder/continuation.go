package decoder

import "github.com/jnorthrup/gedcom4go/lineparser"

// appendContinuation folds a CONT or CONC child into lines, per spec.md
// §4.4.3: CONT appends a new line (empty if the child's value is empty),
// CONC appends to the last line without a separator, creating a new line
// if lines is currently empty. Order of children is preserved by the
// caller iterating n.Children in source order.
func appendContinuation(lines []string, child *lineparser.Node) []string {
	switch child.Tag {
	case "CONT":
		return append(lines, child.Value)
	case "CONC":
		if len(lines) == 0 {
			return append(lines, child.Value)
		}
		lines[len(lines)-1] += child.Value
		return lines
	default:
		return lines
	}
}

// isContinuation reports whether tag is CONT or CONC, for dispatchers
// that fold continuation children inline in their main switch instead of
// delegating to a separate loop.
func isContinuation(tag string) bool {
	return tag == "CONT" || tag == "CONC"
}
