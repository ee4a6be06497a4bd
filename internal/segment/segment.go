// Package segment splits display names into fragments with soft break
// hints so long identifiers can wrap in narrow navigation columns.
package segment

import "regexp"

// Fragment is one renderable span of a display name. BreakAfter marks that a
// wrap hint follows the span. Concatenating the Text of all fragments
// reproduces the original string exactly.
type Fragment struct {
	Text       string
	BreakAfter bool
}

// boundary matches the shortest window around a break point. The first
// alternative is a separator boundary: a non-separator, a separator (_ or -),
// and a following non-separator; the break lands after the separator. The
// second is a camel-case boundary: a non-uppercase character, an uppercase
// letter, and a following non-uppercase character; the break lands before
// the uppercase letter. Capture groups tell the two cut positions apart.
var boundary = regexp.MustCompile(`([^_-][_-])[^_-]|[^A-Z]([A-Z][^A-Z])`)

// Split scans s left to right and returns its fragments in order. Empty
// input yields a single empty fragment; input with no boundaries yields
// exactly one fragment.
func Split(s string) []Fragment {
	var frags []Fragment
	rest := s
	for {
		m := boundary.FindStringSubmatchIndex(rest)
		if m == nil {
			break
		}
		var cut int
		if m[2] >= 0 {
			// Separator boundary: consume up to and including the separator.
			cut = m[3]
		} else {
			// Camel-case boundary: cut just before the uppercase letter.
			cut = m[4]
		}
		frags = append(frags, Fragment{Text: rest[:cut], BreakAfter: true})
		rest = rest[cut:]
	}
	return append(frags, Fragment{Text: rest})
}
