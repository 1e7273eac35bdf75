package cpoly

import (
	"github.com/jonathanmweiss/go-cpoly/common/errors"
)

// Interpolate returns the polynomial of degree < len(xs) through the
// points (xs[i], ys[i]).
//
// Interpolation follows the Lagrange method
// https://en.wikipedia.org/wiki/Lagrange_polynomial
// in O(n^2) operations:
//  1. m(x) = \prod_{0\le i < n} (x - x_i).
//  2. q_i(x) = m(x) / (x - x_i), by synthetic division.
//  3. l_i(x) = q_i(x) / q_i(x_i).
//  4. p(x) = \sum_i y_i·l_i(x).
func Interpolate(xs, ys []complex128) (*Polynomial, error) {
	if err := validateInterpolationPoints(xs, ys); err != nil {
		return nil, err
	}

	m := FromRoots(xs...).Coefficients()

	sum := make([]complex128, len(xs))
	for i, x := range xs {
		qi := mDivMi(m, x)
		s := evaluateDense(qi, x)

		// y_i / \prod_{j\ne i} (x_i - x_j)
		scale := ys[i] / s
		for j, c := range qi {
			sum[j] += c * scale
		}
	}

	return NewFromCoefficients(sum), nil
}

/*
mDivMi divides m by (x - xi). This is quicker than long division since the
divisor is monic of degree 1 and xi is known to be a root of m.
*/
func mDivMi(m []complex128, xi complex128) []complex128 {
	rem := append([]complex128(nil), m...)
	q := make([]complex128, len(m)-1)

	for i := len(rem) - 1; i > 0; i-- {
		q[i-1] = rem[i]
		rem[i-1] += rem[i] * xi
	}

	return q
}

func evaluateDense(coeffs []complex128, x complex128) complex128 {
	var res complex128
	for i := len(coeffs) - 1; i >= 0; i-- {
		res = res*x + coeffs[i]
	}

	return res
}

func validateInterpolationPoints(xs, ys []complex128) error {
	if len(xs) != len(ys) {
		return ErrPointsSizeMismatch
	}

	if len(xs) == 0 {
		return errors.WithContext(ErrInvalidArgument, "no points to interpolate")
	}

	seen := make(map[complex128]struct{}, len(xs))
	for _, x := range xs {
		seen[x] = struct{}{}
	}

	if len(seen) != len(xs) {
		return ErrNonUniqueXs
	}

	return nil
}
