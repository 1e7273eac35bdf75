package cpoly

import (
	"fmt"
	"math"

	"github.com/jonathanmweiss/go-cpoly/common/errors"
	"github.com/jonathanmweiss/go-cpoly/field"
)

// The ring operations below never modify their operands and always return
// a canonical result. They panic with ErrInvalidArgument on a nil operand.

// Add returns a + b.
func Add(a, b *Polynomial) *Polynomial {
	mustNotBeNil(a, b)

	coeffs := make([]complex128, max(a.degree, b.degree)+1)
	for e, t := range a.terms {
		coeffs[e] += t.Coefficient
	}

	for e, t := range b.terms {
		coeffs[e] += t.Coefficient
	}

	return NewFromCoefficients(coeffs)
}

// Subtract returns a - b over every exponent of either operand.
func Subtract(a, b *Polynomial) *Polynomial {
	mustNotBeNil(a, b)

	coeffs := make([]complex128, max(a.degree, b.degree)+1)
	for e, t := range a.terms {
		coeffs[e] += t.Coefficient
	}

	for e, t := range b.terms {
		coeffs[e] -= t.Coefficient
	}

	return NewFromCoefficients(coeffs)
}

// SubtractTruncated returns a - b restricted to the exponents
// 0..min(deg a, deg b); higher terms of either operand are dropped.
// GCDWithBaseReduction relies on this behaviour.
func SubtractTruncated(a, b *Polynomial) *Polynomial {
	mustNotBeNil(a, b)

	coeffs := make([]complex128, min(a.degree, b.degree)+1)
	for i := range coeffs {
		coeffs[i] = a.Get(i) - b.Get(i)
	}

	return NewFromCoefficients(coeffs)
}

// Multiply returns a · b.
func Multiply(a, b *Polynomial) *Polynomial {
	mustNotBeNil(a, b)

	out := make([]complex128, a.degree+b.degree+1)

	// schoolbook convolution: out[i+j] += a[i] * b[j].
	// Iterating in exponent order keeps the floating point sums deterministic.
	bTerms := b.Terms()
	for _, ta := range a.Terms() {
		if field.IsZero(ta.Coefficient) {
			continue
		}

		for _, tb := range bTerms {
			out[ta.Exponent+tb.Exponent] += ta.Coefficient * tb.Coefficient
		}
	}

	return NewFromCoefficients(out)
}

// Square returns a · a.
func Square(a *Polynomial) *Polynomial {
	return Multiply(a, a)
}

// Pow returns a^n using exponentiation by squaring. It panics for n < 0.
func Pow(a *Polynomial, n int) *Polynomial {
	mustNotBeNil(a)
	if n < 0 {
		panic(errors.WithContext(ErrInvalidArgument, fmt.Sprintf("negative exponent %d", n)))
	}

	res := One()
	base := a.Clone()
	for n > 0 {
		if n%2 == 1 {
			res = Multiply(res, base)
		}

		n /= 2
		if n > 0 {
			base = Square(base)
		}
	}

	return res
}

// Derivative returns the formal derivative of a.
func Derivative(a *Polynomial) *Polynomial {
	mustNotBeNil(a)

	terms := make([]Term, 0, len(a.terms))
	for e, t := range a.terms {
		if e == 0 {
			continue
		}

		terms = append(terms, Term{
			Exponent:    e - 1,
			Coefficient: t.Coefficient * complex(float64(e), 0),
		})
	}

	return New(terms...)
}

// Negate returns -a.
func Negate(a *Polynomial) *Polynomial {
	return Scale(a, -1)
}

// Scale returns c · a.
func Scale(a *Polynomial, c complex128) *Polynomial {
	mustNotBeNil(a)

	terms := make([]Term, 0, len(a.terms))
	for e, t := range a.terms {
		terms = append(terms, Term{Exponent: e, Coefficient: t.Coefficient * c})
	}

	return New(terms...)
}

// Sum adds all polynomials; the empty sum is zero.
func Sum(polys ...*Polynomial) *Polynomial {
	res := Zero()
	for _, p := range polys {
		res = Add(res, p)
	}

	return res
}

// Product multiplies all polynomials; the empty product is one.
func Product(polys ...*Polynomial) *Polynomial {
	res := One()
	for _, p := range polys {
		res = Multiply(res, p)
	}

	return res
}

// Evaluate returns a(x) using Horner's rule over the stored terms; gaps
// between exponents are bridged with exact integer powers of x.
func Evaluate(a *Polynomial, x complex128) complex128 {
	mustNotBeNil(a)

	terms := a.Terms()

	var result complex128
	prev := a.degree
	for i := len(terms) - 1; i >= 0; i-- {
		t := terms[i]
		result = result*field.PowInt(x, prev-t.Exponent) + t.Coefficient
		prev = t.Exponent
	}

	return result * field.PowInt(x, prev)
}

// EvaluateMagnitude returns sum |c_e| · x^e, a bound on |a(z)| for |z| = x.
func EvaluateMagnitude(a *Polynomial, x float64) float64 {
	mustNotBeNil(a)

	var result float64
	for _, t := range a.Terms() {
		result += field.Abs(t.Coefficient) * math.Pow(x, float64(t.Exponent))
	}

	return result
}
