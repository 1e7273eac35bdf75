package cpoly

import "github.com/jonathanmweiss/go-cpoly/field"

// Compare orders polynomials by degree, then by coefficient magnitude from
// the highest exponent down. It returns -1, 0 or +1.
//
// The ordering ignores phase: X and iX compare equal. Division and the GCD
// loops depend on it.
func Compare(a, b *Polynomial) int {
	mustNotBeNil(a, b)

	switch {
	case a.degree < b.degree:
		return -1
	case a.degree > b.degree:
		return 1
	}

	for e := a.degree; e >= 0; e-- {
		x, y := field.Abs(a.Get(e)), field.Abs(b.Get(e))
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
	}

	return 0
}

// Equal reports whether a and b compare equal under Compare.
func Equal(a, b *Polynomial) bool {
	return Compare(a, b) == 0
}

// StructurallyEqual reports whether a and b store exactly the same
// non-zero coefficients.
func StructurallyEqual(a, b *Polynomial) bool {
	mustNotBeNil(a, b)

	for e, t := range a.terms {
		if b.Get(e) != t.Coefficient {
			return false
		}
	}

	for e, t := range b.terms {
		if a.Get(e) != t.Coefficient {
			return false
		}
	}

	return true
}
