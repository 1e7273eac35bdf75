package cpoly

import (
	"github.com/jonathanmweiss/go-cpoly/field"
)

// GCD returns the monic greatest common divisor of a and b using the
// Euclidean algorithm. A constant result is reported as One.
func GCD(a, b *Polynomial, opts ...Option) (*Polynomial, error) {
	if err := checkNotNil(a, b); err != nil {
		return nil, err
	}

	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	g, err := euclid(a, b, cfg, "gcd", remainder)
	if err != nil {
		return nil, err
	}

	if g.degree == 0 {
		return One(), nil
	}

	return Monic(g), nil
}

// GCDWithScalarModulus runs the loop of GCD with every remainder also
// reduced coefficient-wise modulo m. The result is not normalized.
func GCDWithScalarModulus(a, b *Polynomial, m complex128, opts ...Option) (*Polynomial, error) {
	if err := checkNotNil(a, b); err != nil {
		return nil, err
	}

	if err := checkScalarModulus(m); err != nil {
		return nil, err
	}

	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	reduce := func(value, modulus *Polynomial) (*Polynomial, error) {
		return ReduceModBoth(value, modulus, m)
	}

	g, err := euclid(a, b, cfg, "gcd with scalar modulus", reduce)
	if err != nil {
		return nil, err
	}

	if g.degree == 0 {
		return One(), nil
	}

	return g, nil
}

// euclid orders the operands so the greater one leads, then replaces
// (a, b) with (b, a mod b) while b has degree at least 1. A non-zero
// constant b means the operands are coprime and yields a constant.
func euclid(a, b *Polynomial, cfg *config, operation string,
	mod func(value, modulus *Polynomial) (*Polynomial, error)) (*Polynomial, error) {
	a, b = a.Clone(), b.Clone()
	if Compare(b, a) > 0 {
		a, b = b, a
	}

	for i := 0; b.degree >= 1; i++ {
		if i >= cfg.maxIterations {
			return nil, nonConvergence(operation, cfg.maxIterations)
		}

		r, err := mod(a, b)
		if err != nil {
			return nil, err
		}

		a, b = b, r
	}

	if !b.IsZero() {
		return One(), nil
	}

	return a, nil
}

func remainder(value, modulus *Polynomial) (*Polynomial, error) {
	_, r, err := Divide(value, modulus)
	return r, err
}

/*
GCDWithBaseReduction is the GCD used on base-expansion polynomials (see
FromValueInBase). It carries the leading coefficient of the greater operand
down with ReduceDegree until both degrees match, keeps reducing both until
degree 1, then subtracts (SubtractTruncated) the smaller operand from the
greater one while no leading coefficient is negative.

A constant result is reported as One. Inputs that never reach a stop state
fail with ErrNonConvergence.
*/
func GCDWithBaseReduction(a, b *Polynomial, base complex128, opts ...Option) (*Polynomial, error) {
	if err := checkNotNil(a, b); err != nil {
		return nil, err
	}

	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	const operation = "gcd with base reduction"

	iterations := 0
	step := func() error {
		iterations++
		if iterations > cfg.maxIterations {
			return nonConvergence(operation, cfg.maxIterations)
		}
		return nil
	}

	a, b = a.Clone(), b.Clone()
	order := func() {
		if Compare(b, a) > 0 {
			a, b = b, a
		}
	}

	order()
	for a.degree != b.degree {
		if err := step(); err != nil {
			return nil, err
		}

		if a, err = ReduceDegree(a, base); err != nil {
			return nil, err
		}
		order()
	}

	for a.degree > 1 {
		if err := step(); err != nil {
			return nil, err
		}

		if a, err = ReduceDegree(a, base); err != nil {
			return nil, err
		}
		if b, err = ReduceDegree(b, base); err != nil {
			return nil, err
		}
		order()
	}

	for a.degree >= 1 {
		if err := step(); err != nil {
			return nil, err
		}

		order()
		if field.Sign(b.LeadingCoefficient()) < 0 {
			break
		}

		for !b.IsZero() && Compare(a, b) >= 0 {
			if err := step(); err != nil {
				return nil, err
			}

			if field.Sign(a.LeadingCoefficient()) < 0 || field.Sign(b.LeadingCoefficient()) < 0 {
				break
			}

			a = SubtractTruncated(a, b)
		}
	}

	if a.degree == 0 {
		return One(), nil
	}

	return a, nil
}

// ExtendedGCD is the compatibility variant: its loop exits before the
// first division, so the result is always One. The scalar modulus is
// accepted and unused. ExtendedEuclidean computes a real Bézout triple.
func ExtendedGCD(a, b *Polynomial, m complex128) (*Polynomial, error) {
	if err := checkNotNil(a, b); err != nil {
		return nil, err
	}

	rem := Two()
	x, y := a.Clone(), b.Clone()

	// the exit polynomial starts at zero, which ends the loop immediately.
	for c := Zero(); !c.IsZero() && !rem.IsZero() && !rem.IsOne(); {
		var err error
		if c, rem, err = Divide(x, y); err != nil {
			return nil, err
		}
		x, y = y, rem
	}

	if !rem.IsZero() || !rem.IsOne() {
		return One(), nil
	}

	return rem, nil
}

// ExtendedEuclidean returns the monic g = gcd(a, b) together with x, y
// such that a·x + b·y = g.
func ExtendedEuclidean(a, b *Polynomial, opts ...Option) (g, x, y *Polynomial, err error) {
	g, x, y, err = PartialExtendedEuclidean(a, b, 0, opts...)
	if err != nil {
		return nil, nil, nil, err
	}

	if g.IsZero() {
		return g, x, y, nil
	}

	lead := g.LeadingCoefficient()

	return divideCoefficients(g, lead), divideCoefficients(x, lead), divideCoefficients(y, lead), nil
}

// PartialExtendedEuclidean returns r, x, y such that a·x + b·y = r, stopping
// as soon as deg r < stopDegree or the next remainder is zero.
func PartialExtendedEuclidean(a, b *Polynomial, stopDegree int, opts ...Option) (gcd, x, y *Polynomial, err error) {
	if err := checkNotNil(a, b); err != nil {
		return nil, nil, nil, err
	}

	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, nil, nil, err
	}

	// Invariants:
	//   A = x0*a + y0*b
	//   B = x1*a + y1*b
	A, B := a.Clone(), b.Clone()
	x0, x1 := One(), Zero()
	y0, y1 := Zero(), One()

	for i := 0; A.degree >= stopDegree && !B.IsZero(); i++ {
		if i >= cfg.maxIterations {
			return nil, nil, nil, nonConvergence("extended euclidean", cfg.maxIterations)
		}

		q, r, err := Divide(A, B)
		if err != nil {
			return nil, nil, nil, err
		}
		A, B = B, r

		// (x0, x1) = (x1, x0 - q*x1)
		x0, x1 = x1, Subtract(x0, Multiply(q, x1))
		// (y0, y1) = (y1, y0 - q*y1)
		y0, y1 = y1, Subtract(y0, Multiply(q, y1))
	}

	return A, x0, y0, nil
}

// Monic returns p divided by its leading coefficient. The zero polynomial
// is returned unchanged.
func Monic(p *Polynomial) *Polynomial {
	mustNotBeNil(p)

	if p.IsZero() {
		return p.Clone()
	}

	return divideCoefficients(p, p.LeadingCoefficient())
}

func divideCoefficients(p *Polynomial, c complex128) *Polynomial {
	res := p.Clone()
	for _, t := range res.terms {
		t.Coefficient /= c
	}

	res.Canonicalize()

	return res
}
