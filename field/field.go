// Package field holds the scalar arithmetic used for polynomial
// coefficients: complex128 values with a sign, a rounding modulo and a
// textual form.
package field

import (
	"math"
	"math/cmplx"
	"strconv"
)

// ImaginaryUnit is the symbol written after the imaginary component.
const ImaginaryUnit = "i"

const (
	// components below roundingThreshold are rounded to roundingDecimals
	// places before being rendered.
	roundingThreshold = 1e-5
	roundingDecimals  = 5
)

func IsZero(a complex128) bool {
	return a == 0
}

// Sign returns the sign of the real component, or the sign of the
// imaginary component when the real one is zero.
func Sign(a complex128) int {
	if real(a) == 0 {
		return signum(imag(a))
	}

	return signum(real(a))
}

func signum(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func Abs(a complex128) float64 {
	return cmplx.Abs(a)
}

func Conjugate(a complex128) complex128 {
	return cmplx.Conj(a)
}

// Norm returns a·conj(a), the squared magnitude as a complex value.
func Norm(a complex128) complex128 {
	return a * cmplx.Conj(a)
}

// Mod returns a - b·round(a/b), each component of the quotient rounded
// half to even. The result can be negative.
func Mod(a, b complex128) complex128 {
	if b == 0 {
		panic("field: modulo by zero")
	}

	q := a / b
	return a - b*complex(math.RoundToEven(real(q)), math.RoundToEven(imag(q)))
}

// Round rounds both components half to even at the given number of
// decimal places.
func Round(a complex128, decimals int) complex128 {
	return complex(roundFloat(real(a), decimals), roundFloat(imag(a), decimals))
}

func roundFloat(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	// beyond 2^52 there is no fractional part left to round.
	if math.Abs(v)*p >= 1<<52 || math.IsNaN(v) {
		return v
	}

	return math.RoundToEven(v*p) / p
}

// PowInt returns x^n using exponentiation by squaring; negative exponents
// yield the reciprocal.
// https://en.wikipedia.org/wiki/Exponentiation_by_squaring
func PowInt(x complex128, n int) complex128 {
	if n < 0 {
		return 1 / PowInt(x, -n)
	}

	res := complex(1, 0)
	for n > 0 {
		if n%2 == 1 {
			res *= x
		}

		x *= x
		n /= 2
	}

	return res
}

// NthRoot returns the principal n-th root of a.
func NthRoot(a complex128, n int) complex128 {
	return cmplx.Pow(a, complex(1/float64(n), 0))
}

// RootOfUnity returns exp(2πik/n).
func RootOfUnity(n, k int) complex128 {
	return cmplx.Rect(1, 2*math.Pi*float64(k)/float64(n))
}

func IsPowerOfTwo(n uint64) bool {
	// https://graphics.stanford.edu/~seander/bithacks.html#DetermineIfPowerOf2
	return n != 0 && (n&(n-1)) == 0
}

// Format renders a as "re", "(re + imi)" or "(re - |im|i)".
//
// A component below 1e-5 (signed comparison, so every negative value)
// is first rounded half to even at five decimal places.
func Format(a complex128) string {
	re, im := real(a), imag(a)
	if re < roundingThreshold {
		re = roundFloat(re, roundingDecimals)
	}

	if im < roundingThreshold {
		im = roundFloat(im, roundingDecimals)
	}

	switch signum(im) {
	case 1:
		return "(" + formatFloat(re) + " + " + formatFloat(im) + ImaginaryUnit + ")"
	case -1:
		return "(" + formatFloat(re) + " - " + formatFloat(-im) + ImaginaryUnit + ")"
	default:
		return formatFloat(re)
	}
}

func formatFloat(v float64) string {
	if v == 0 {
		// drops the sign of -0.
		return "0"
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}
