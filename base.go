package cpoly

import (
	"github.com/jonathanmweiss/go-cpoly/common/errors"
	"github.com/jonathanmweiss/go-cpoly/field"
)

/*
FromValueInBase expands value greedily into digits of base, most
significant first, starting at X^maxDegree. At each degree d with place
value base^d:
  - a place value of 1 takes whatever remains,
  - a place value equal to the remainder contributes the digit 1,
  - a place value smaller in magnitude than the remainder contributes
    remainder / base^d, clamped in magnitude to |base^d|.

The expansion stops when nothing remains. The result evaluated at
X = base approximates value.
*/
func FromValueInBase(value, base complex128, maxDegree int) *Polynomial {
	var terms []Term

	toAdd := value
	for d := maxDegree; d >= 0 && field.Abs(toAdd) > 0; d-- {
		placeValue := field.PowInt(base, d)

		switch {
		case placeValue == 1:
			terms = append(terms, Term{Exponent: d, Coefficient: toAdd})
			toAdd = 0

		case placeValue == toAdd:
			terms = append(terms, Term{Exponent: d, Coefficient: 1})
			toAdd -= placeValue

		case field.Abs(placeValue) < field.Abs(toAdd):
			q := toAdd / placeValue
			if field.Abs(q) > field.Abs(placeValue) {
				q = placeValue
			}

			terms = append(terms, Term{Exponent: d, Coefficient: q})
			toAdd -= q * placeValue
		}
	}

	return New(terms...)
}

// FromRoots returns the monic polynomial (X - r_1)(X - r_2)...(X - r_n).
// With no roots it returns One.
func FromRoots(roots ...complex128) *Polynomial {
	coeffs := make([]complex128, len(roots)+1)
	coeffs[0] = 1

	deg := 0
	for _, r := range roots {
		for j := deg; j >= 0; j-- {
			// new[j+1] += old[j] * X
			coeffs[j+1] += coeffs[j]
			// new[j] = old[j] * (-r)
			coeffs[j] *= -r
		}
		deg++
	}

	return NewFromCoefficients(coeffs)
}

// ReduceDegree carries the leading coefficient into the next lower one:
// c_{d-1} += c_d·base, and drops X^d. The value at X = base is unchanged.
func ReduceDegree(p *Polynomial, base complex128) (*Polynomial, error) {
	if err := checkNotNil(p); err != nil {
		return nil, err
	}

	if p.degree == 0 {
		return nil, errors.WithContext(ErrInvalidArgument, "cannot reduce the degree of a constant")
	}

	coeffs := p.Coefficients()
	d := p.degree

	coeffs[d-1] += coeffs[d] * base

	return NewFromCoefficients(coeffs[:d]), nil
}

// MakeMonic sets a leading coefficient of magnitude above 1 to 1 and adds
// the excess (c_d - 1)·base to c_{d-1}. The value at X = base is unchanged.
func MakeMonic(p *Polynomial, base complex128) (*Polynomial, error) {
	if err := checkNotNil(p); err != nil {
		return nil, err
	}

	res := p.Clone()

	lead := res.LeadingCoefficient()
	if field.Abs(lead) <= 1 {
		return res, nil
	}

	d := res.degree
	if d == 0 {
		return nil, errors.WithContext(ErrInvalidArgument, "cannot carry out of a constant")
	}

	res.Set(d, 1)
	res.Set(d-1, res.Get(d-1)+(lead-1)*base)
	res.Canonicalize()

	return res, nil
}

/*
BalanceCoefficients moves excess magnitude upward, in place. For each
exponent below the degree whose coefficient is larger in magnitude than
both maxMagnitude and the next coefficient up, it removes
((c - maxMagnitude)/base + 1)·base and adds (c - maxMagnitude)/base + 1 one
degree up. A zero maxMagnitude means base.
*/
func BalanceCoefficients(p *Polynomial, base, maxMagnitude complex128) error {
	if err := checkNotNil(p); err != nil {
		return err
	}

	if field.IsZero(base) {
		return errors.WithContext(ErrDivisionByZero, "zero base")
	}

	if field.IsZero(maxMagnitude) {
		maxMagnitude = base
	}

	limit := field.Abs(maxMagnitude)
	for pos := 0; pos < p.degree; pos++ {
		c := p.Get(pos)
		if field.Abs(c) <= limit || field.Abs(c) <= field.Abs(p.Get(pos+1)) {
			continue
		}

		toAdd := (c-maxMagnitude)/base + 1

		p.Set(pos, c-toAdd*base)
		p.Set(pos+1, p.Get(pos+1)+toAdd)
	}

	p.Canonicalize()

	return nil
}
