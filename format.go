package cpoly

import (
	"strconv"
	"strings"

	"github.com/jonathanmweiss/go-cpoly/field"
)

// Indeterminate is the symbol used by Format and accepted by Parse.
const Indeterminate = "X"

// Format renders p from the highest to the lowest exponent, e.g.
// "X^2 - 5*X + (2 + 1i)". Terms whose coefficient renders as "0" are
// omitted and the zero polynomial renders as "0".
func Format(p *Polynomial) string {
	mustNotBeNil(p)

	terms := p.Terms()
	parts := make([]string, 0, len(terms))
	for i := len(terms) - 1; i >= 0; i-- {
		t := terms[i]
		// tiny negative components round to zero.
		if field.IsZero(t.Coefficient) || field.Format(t.Coefficient) == "0" {
			continue
		}

		parts = append(parts, formatTerm(t))
	}

	if len(parts) == 0 {
		return "0"
	}

	return strings.ReplaceAll(strings.Join(parts, " + "), " + -", " - ")
}

func formatTerm(t Term) string {
	if t.Exponent == 0 {
		return field.Format(t.Coefficient)
	}

	x := Indeterminate
	if t.Exponent > 1 {
		x += "^" + strconv.Itoa(t.Exponent)
	}

	switch t.Coefficient {
	case 1:
		return x
	case -1:
		return "-" + x
	default:
		return field.Format(t.Coefficient) + "*" + x
	}
}
