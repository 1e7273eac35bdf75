package cpoly

import (
	"fmt"
	"sync"

	"github.com/jonathanmweiss/go-cpoly/common/errors"
	"github.com/jonathanmweiss/go-cpoly/field"
)

// EvaluationMap evaluates polynomials on a fixed family of points, either
// one by one or with a fast transform.
type EvaluationMap interface {
	// EvaluationPoints returns the first n evaluation points.
	EvaluationPoints(n int) []complex128
	// EvaluatePolynomial returns p evaluated at EvaluationPoints(n).
	EvaluatePolynomial(p *Polynomial, n int) ([]complex128, error)

	// The locator polynomial for the evaluation points.
	// Namely, given the evaluation points x_1, ..., x_n, the locator polynomial is
	// L(x) = (x - x_1)(x - x_2)...(x - x_n)
	GenerateLocatorPolynomial(n int) *Polynomial
}

type evaluationCache struct {
	sync.Locker
	sizeToPoints map[int][]complex128
}

func newEvaluationCache() *evaluationCache {
	return &evaluationCache{
		Locker:       &sync.Mutex{},
		sizeToPoints: make(map[int][]complex128),
	}
}

func (e *evaluationCache) storePoints(n int, points []complex128) {
	e.Lock()
	defer e.Unlock()

	if _, ok := e.sizeToPoints[n]; ok {
		return
	}

	e.sizeToPoints[n] = points
}

func (e *evaluationCache) loadPoints(n int) []complex128 {
	e.Lock()
	defer e.Unlock()

	return e.sizeToPoints[n]
}

// PointEvaluator evaluates at 1, 2, ..., n one point at a time.
type PointEvaluator struct {
	cache *evaluationCache
}

func NewPointEvaluator() *PointEvaluator {
	return &PointEvaluator{cache: newEvaluationCache()}
}

func (e *PointEvaluator) EvaluationPoints(n int) []complex128 {
	if points := e.cache.loadPoints(n); points != nil {
		return points
	}

	points := make([]complex128, n)
	for i := range points {
		points[i] = complex(float64(i+1), 0)
	}

	e.cache.storePoints(n, points)

	return points
}

func (e *PointEvaluator) EvaluatePolynomial(p *Polynomial, n int) ([]complex128, error) {
	if err := checkNotNil(p); err != nil {
		return nil, err
	}

	if n < 0 {
		return nil, errors.WithContext(ErrInvalidArgument, fmt.Sprintf("negative point count %d", n))
	}

	points := e.EvaluationPoints(n)
	values := make([]complex128, len(points))
	for i, x := range points {
		values[i] = Evaluate(p, x)
	}

	return values, nil
}

func (e *PointEvaluator) GenerateLocatorPolynomial(n int) *Polynomial {
	return FromRoots(e.EvaluationPoints(n)...)
}

// RootsOfUnityEvaluator evaluates at the n-th roots of unity
// exp(2πik/n), k = 0..n-1, with a radix-2 FFT. n must be a power of two.
type RootsOfUnityEvaluator struct {
	cache *evaluationCache
	fft   *field.FFT
}

func NewRootsOfUnityEvaluator() *RootsOfUnityEvaluator {
	return &RootsOfUnityEvaluator{
		cache: newEvaluationCache(),
		fft:   field.NewFFT(),
	}
}

func (e *RootsOfUnityEvaluator) EvaluationPoints(n int) []complex128 {
	if points := e.cache.loadPoints(n); points != nil {
		return points
	}

	points := make([]complex128, n)
	for k := range points {
		points[k] = field.RootOfUnity(n, k)
	}

	e.cache.storePoints(n, points)

	return points
}

// EvaluatePolynomial folds the coefficients of p modulo X^n - 1, which
// leaves its values at the n-th roots of unity unchanged, and transforms
// them.
func (e *RootsOfUnityEvaluator) EvaluatePolynomial(p *Polynomial, n int) ([]complex128, error) {
	if err := checkNotNil(p); err != nil {
		return nil, err
	}

	if n <= 0 || !field.IsPowerOfTwo(uint64(n)) {
		return nil, errors.WithContext(ErrNotPowerOfTwo, fmt.Sprintf("%d points", n))
	}

	values := make([]complex128, n)
	for _, t := range p.Terms() {
		values[t.Exponent%n] += t.Coefficient
	}

	if err := e.fft.Forward(values); err != nil {
		return nil, err
	}

	return values, nil
}

// Interpolate returns the polynomial of degree < len(values) taking the
// given values at the len(values)-th roots of unity.
func (e *RootsOfUnityEvaluator) Interpolate(values []complex128) (*Polynomial, error) {
	coeffs := append([]complex128(nil), values...)
	if err := e.fft.Backward(coeffs); err != nil {
		return nil, err
	}

	return NewFromCoefficients(coeffs), nil
}

// GenerateLocatorPolynomial returns X^n - 1, which vanishes exactly on
// the n-th roots of unity.
func (e *RootsOfUnityEvaluator) GenerateLocatorPolynomial(n int) *Polynomial {
	return New(Term{Exponent: n, Coefficient: 1}, Term{Exponent: 0, Coefficient: -1})
}
