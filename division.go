package cpoly

import (
	"fmt"

	"github.com/jonathanmweiss/go-cpoly/common/errors"
	"github.com/jonathanmweiss/go-cpoly/field"
)

// Divide returns q, r such that dividend = q·divisor + r, dividing by the
// divisor's leading coefficient term by term from the highest degree down.
//
// When the divisor has a higher degree than the dividend, or compares
// greater under Compare, no division step runs: q is zero and r is a copy
// of the dividend.
func Divide(dividend, divisor *Polynomial) (q, r *Polynomial, err error) {
	if err := checkNotNil(dividend, divisor); err != nil {
		return nil, nil, err
	}

	if divisor.IsZero() {
		return nil, nil, ErrDivisionByZero
	}

	return longDiv(dividend, divisor, identity)
}

// DivideWithScalarModulus runs Divide, reducing every produced coefficient
// modulo the scalar m as soon as it is computed.
func DivideWithScalarModulus(dividend, divisor *Polynomial, m complex128) (q, r *Polynomial, err error) {
	if err := checkNotNil(dividend, divisor); err != nil {
		return nil, nil, err
	}

	if err := checkScalarModulus(m); err != nil {
		return nil, nil, err
	}

	if divisor.IsZero() {
		return nil, nil, ErrDivisionByZero
	}

	return longDiv(dividend, divisor, func(c complex128) complex128 { return field.Mod(c, m) })
}

func identity(c complex128) complex128 { return c }

// Following Algorithm 2.5 (Polynomial division with remainder) in
// `Modern Computer Algebra` by Joachim von zur Gathen and Jürgen Gerhard,
// with every produced coefficient passed through reduce.
func longDiv(a, b *Polynomial, reduce func(complex128) complex128) (*Polynomial, *Polynomial, error) {
	if b.degree > a.degree || Compare(b, a) > 0 {
		return Zero(), a.Clone(), nil
	}

	n, m := a.degree, b.degree

	u := reduce(b.LeadingCoefficient())
	if field.IsZero(u) {
		return nil, nil, errors.WithContext(ErrDivisionByZero, "leading coefficient reduces to zero")
	}

	rem := a.Clone()
	q := Zero()

	for i := n - m; i >= 0; i-- {
		qi := reduce(rem.Get(m+i) / u)
		q.Set(i, qi)

		rem.Set(m+i, 0)
		for j := m + i - 1; j >= i; j-- {
			rem.Set(j, reduce(rem.Get(j)-reduce(qi*b.Get(j-i))))
		}
	}

	q.Canonicalize()
	rem.Canonicalize()

	return q, rem, nil
}

// ReducePolynomialModulo returns value unchanged if modulus compares
// greater, zero if they compare equal, and the remainder of
// Divide(value, modulus) otherwise.
func ReducePolynomialModulo(value, modulus *Polynomial) (*Polynomial, error) {
	if err := checkNotNil(value, modulus); err != nil {
		return nil, err
	}

	switch c := Compare(modulus, value); {
	case c > 0:
		return value.Clone(), nil
	case c == 0:
		return Zero(), nil
	}

	_, r, err := Divide(value, modulus)

	return r, err
}

// ReduceCoefficientsModulo reduces every coefficient modulo the scalar m.
func ReduceCoefficientsModulo(value *Polynomial, m complex128) (*Polynomial, error) {
	if err := checkNotNil(value); err != nil {
		return nil, err
	}

	if err := checkScalarModulus(m); err != nil {
		return nil, err
	}

	res := value.Clone()
	for _, t := range res.terms {
		t.Coefficient = field.Mod(t.Coefficient, m)
	}

	res.Canonicalize()

	return res, nil
}

// ReduceModBoth reduces value modulo the polynomial modulus, then each
// coefficient modulo the scalar m.
func ReduceModBoth(value, modulus *Polynomial, m complex128) (*Polynomial, error) {
	r, err := ReducePolynomialModulo(value, modulus)
	if err != nil {
		return nil, err
	}

	return ReduceCoefficientsModulo(r, m)
}

// MultiplyByScalarModulo returns (s · p) with every coefficient reduced
// modulo m.
func MultiplyByScalarModulo(p *Polynomial, s, m complex128) (*Polynomial, error) {
	if err := checkNotNil(p); err != nil {
		return nil, err
	}

	return ReduceCoefficientsModulo(Scale(p, s), m)
}

// PowCoefficientsModulo raises every coefficient independently to exponent
// and reduces it modulo m. This is not polynomial exponentiation.
// A reduced coefficient with a negative sign yields ErrArithmeticInvariant.
func PowCoefficientsModulo(p *Polynomial, exponent int, m complex128) (*Polynomial, error) {
	if err := checkNotNil(p); err != nil {
		return nil, err
	}

	if err := checkScalarModulus(m); err != nil {
		return nil, err
	}

	res := p.Clone()
	for e, t := range res.terms {
		if field.IsZero(t.Coefficient) {
			continue
		}

		t.Coefficient = field.Mod(field.PowInt(t.Coefficient, exponent), m)
		if field.Sign(t.Coefficient) < 0 {
			logger.Debug("negative coefficient after modular power",
				"exponent", e,
				"coefficient", t.Coefficient,
			)

			return nil, errors.WithContext(ErrArithmeticInvariant,
				fmt.Sprintf("coefficient of X^%d is negative after reduction", e))
		}
	}

	res.Canonicalize()

	return res, nil
}

// AdditiveInverseModulo maps every coefficient c to (m - c) mod m.
func AdditiveInverseModulo(p *Polynomial, m complex128) (*Polynomial, error) {
	if err := checkNotNil(p); err != nil {
		return nil, err
	}

	if err := checkScalarModulus(m); err != nil {
		return nil, err
	}

	res := p.Clone()
	for _, t := range res.terms {
		t.Coefficient = field.Mod(m-t.Coefficient, m)
	}

	res.Canonicalize()

	return res, nil
}

/*
ModularExponentiation squares p once, then multiplies by p exponent-2
more times, reducing by modulus only while the running product compares
less than modulus.

The result is not p^exponent mod modulus in general; PowModulo computes
that. Exponents 0, 1 and 2 return One, p and p² respectively.

The loop always ends, but its multiplications count against the iteration
limit (WithMaxIterations) as a bound on work: an exponent that needs more
than the limit fails with ErrNonConvergence before any multiplication.
*/
func ModularExponentiation(p *Polynomial, exponent int, modulus *Polynomial, opts ...Option) (*Polynomial, error) {
	if err := checkNotNil(p, modulus); err != nil {
		return nil, err
	}

	if exponent < 0 {
		return nil, errors.WithContext(ErrInvalidArgument, fmt.Sprintf("negative exponent %d", exponent))
	}

	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	switch exponent {
	case 0:
		return One(), nil
	case 1:
		return p.Clone(), nil
	case 2:
		return Square(p), nil
	}

	if exponent-2 > cfg.maxIterations {
		return nil, nonConvergence("modular exponentiation", cfg.maxIterations)
	}

	total := Square(p)
	for counter := exponent - 2; counter > 0; counter-- {
		total = Multiply(p, total)
		if Compare(total, modulus) < 0 {
			if total, err = ReducePolynomialModulo(total, modulus); err != nil {
				return nil, err
			}
		}
	}

	return total, nil
}

// PowModulo returns p^exponent reduced by ReduceModBoth(·, modulus, m)
// after every multiplication, using exponentiation by squaring.
func PowModulo(p *Polynomial, exponent int, modulus *Polynomial, m complex128) (*Polynomial, error) {
	if err := checkNotNil(p, modulus); err != nil {
		return nil, err
	}

	if exponent < 0 {
		return nil, errors.WithContext(ErrInvalidArgument, fmt.Sprintf("negative exponent %d", exponent))
	}

	if err := checkScalarModulus(m); err != nil {
		return nil, err
	}

	res, err := ReduceModBoth(One(), modulus, m)
	if err != nil {
		return nil, err
	}

	base, err := ReduceModBoth(p, modulus, m)
	if err != nil {
		return nil, err
	}

	for exponent > 0 {
		if exponent%2 == 1 {
			if res, err = ReduceModBoth(Multiply(res, base), modulus, m); err != nil {
				return nil, err
			}
		}

		exponent /= 2
		if exponent > 0 {
			if base, err = ReduceModBoth(Square(base), modulus, m); err != nil {
				return nil, err
			}
		}
	}

	return res, nil
}
