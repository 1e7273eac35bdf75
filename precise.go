package cpoly

import (
	"github.com/tuneinsight/lattigo/v6/utils/bignum"
)

// DefaultPrecision is the mantissa size, in bits, used by EvaluatePrecise
// when a caller passes 0.
const DefaultPrecision uint = 256

// EvaluatePrecise evaluates p at x with Horner's rule in prec-bit
// arbitrary precision arithmetic and rounds the result to complex128.
// Coefficients and x are taken exactly as stored.
//
// Base expansions with large place values lose digits under Evaluate;
// EvaluatePrecise only rounds once, at the end.
func EvaluatePrecise(p *Polynomial, x complex128, prec uint) complex128 {
	mustNotBeNil(p)

	if prec == 0 {
		prec = DefaultPrecision
	}

	mul := bignum.NewComplexMultiplier()

	xBig := bignum.ToComplex(x, prec)
	y := bignum.ToComplex(p.LeadingCoefficient(), prec)
	for e := p.degree - 1; e >= 0; e-- {
		mul.Mul(y, xBig, y)
		y.Add(y, bignum.ToComplex(p.Get(e), prec))
	}

	re, _ := y[0].Float64()
	im, _ := y[1].Float64()

	return complex(re, im)
}
