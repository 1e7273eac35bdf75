// Package cpoly implements univariate polynomials with complex128
// coefficients: canonical sparse storage, ring and modular arithmetic,
// GCDs, base-expansion construction, and a text form that Parse and
// String round-trip.
package cpoly

import (
	"fmt"
	"slices"

	"github.com/jonathanmweiss/go-cpoly/common/errors"
	"github.com/jonathanmweiss/go-cpoly/field"
)

// Term is a single Coefficient·X^Exponent pair.
type Term struct {
	Exponent    int
	Coefficient complex128
}

/*
Polynomial is a sparse polynomial keyed by exponent.

After construction and after every arithmetic operation a polynomial is
canonical: it stores no zero coefficient (except the single (0, 0) term of
the zero polynomial) and Degree is its highest stored exponent.
The zero value is usable and canonicalizes to the zero polynomial.
*/
type Polynomial struct {
	terms  map[int]*Term
	degree int
}

// New builds a canonical polynomial from terms. Terms sharing an exponent
// are summed. New panics on a negative exponent.
func New(terms ...Term) *Polynomial {
	p := &Polynomial{terms: make(map[int]*Term, len(terms))}
	for _, t := range terms {
		if t.Exponent < 0 {
			panic(errors.WithContext(ErrInvalidArgument, fmt.Sprintf("negative exponent %d", t.Exponent)))
		}

		if existing, ok := p.terms[t.Exponent]; ok {
			existing.Coefficient += t.Coefficient
			continue
		}

		p.terms[t.Exponent] = &Term{Exponent: t.Exponent, Coefficient: t.Coefficient}
	}

	p.Canonicalize()

	return p
}

/*
NewFromCoefficients expects the coefficients ordered from lowest to highest
degree. (e.g. [1, 2, 3] is 1 + 2X + 3X^2)
*/
func NewFromCoefficients(coeffs []complex128) *Polynomial {
	p := &Polynomial{terms: make(map[int]*Term, len(coeffs))}
	for e, c := range coeffs {
		if !field.IsZero(c) {
			p.terms[e] = &Term{Exponent: e, Coefficient: c}
		}
	}

	p.Canonicalize()

	return p
}

// Zero returns a fresh zero polynomial.
func Zero() *Polynomial {
	return New()
}

// One returns a fresh constant polynomial 1.
func One() *Polynomial {
	return New(Term{Exponent: 0, Coefficient: 1})
}

// Two returns a fresh constant polynomial 2.
func Two() *Polynomial {
	return New(Term{Exponent: 0, Coefficient: 2})
}

func (p *Polynomial) Degree() int {
	return p.degree
}

// Get returns the coefficient of X^exponent, or 0 when no such term is stored.
func (p *Polynomial) Get(exponent int) complex128 {
	if t, ok := p.terms[exponent]; ok {
		return t.Coefficient
	}

	return 0
}

// Set updates the term at exponent in place, even to zero. A new term is
// only stored for a non-zero coefficient, in which case the degree is
// recomputed. Call Canonicalize to drop coefficients that were set to zero.
func (p *Polynomial) Set(exponent int, c complex128) {
	if exponent < 0 {
		panic(errors.WithContext(ErrInvalidArgument, fmt.Sprintf("negative exponent %d", exponent)))
	}

	if t, ok := p.terms[exponent]; ok {
		t.Coefficient = c
		return
	}

	if field.IsZero(c) {
		return
	}

	if p.terms == nil {
		p.terms = make(map[int]*Term)
	}

	p.terms[exponent] = &Term{Exponent: exponent, Coefficient: c}
	p.setDegree()
}

// Canonicalize removes zero terms, inserts the (0, 0) term when nothing is
// left, and recomputes the degree.
func (p *Polynomial) Canonicalize() {
	if p.terms == nil {
		p.terms = make(map[int]*Term)
	}

	for e, t := range p.terms {
		if field.IsZero(t.Coefficient) {
			delete(p.terms, e)
		}
	}

	if len(p.terms) == 0 {
		p.terms[0] = &Term{}
	}

	p.setDegree()
}

func (p *Polynomial) setDegree() {
	p.degree = 0
	for e := range p.terms {
		if e > p.degree {
			p.degree = e
		}
	}
}

// Clone returns a deep copy of p.
func (p *Polynomial) Clone() *Polynomial {
	cpy := &Polynomial{
		terms:  make(map[int]*Term, len(p.terms)),
		degree: p.degree,
	}

	for e, t := range p.terms {
		cpy.terms[e] = &Term{Exponent: e, Coefficient: t.Coefficient}
	}

	return cpy
}

// Terms returns a copy of the stored terms in ascending exponent order.
func (p *Polynomial) Terms() []Term {
	ts := make([]Term, 0, len(p.terms))
	for _, t := range p.terms {
		ts = append(ts, *t)
	}

	slices.SortFunc(ts, func(a, b Term) int { return a.Exponent - b.Exponent })

	return ts
}

// Coefficients returns the dense coefficient slice of length Degree()+1,
// lowest degree first.
func (p *Polynomial) Coefficients() []complex128 {
	coeffs := make([]complex128, p.degree+1)
	for e, t := range p.terms {
		coeffs[e] = t.Coefficient
	}

	return coeffs
}

func (p *Polynomial) LeadingCoefficient() complex128 {
	return p.Get(p.degree)
}

// IsZero reports whether every stored coefficient is zero.
func (p *Polynomial) IsZero() bool {
	for _, t := range p.terms {
		if !field.IsZero(t.Coefficient) {
			return false
		}
	}

	return true
}

func (p *Polynomial) IsOne() bool {
	return p.degree == 0 && p.Get(0) == 1
}

func (p *Polynomial) String() string {
	return Format(p)
}
