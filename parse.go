package cpoly

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/jonathanmweiss/go-cpoly/common/errors"
)

/*
Parse reads the text notation produced by Format for real coefficients:
a sum of terms, each either a constant ("-3", "2.5"), the indeterminate
with an optional power and sign ("X", "-X^3"), or "coefficient*X[^k]".

Spaces are ignored. Terms sharing an exponent are summed. Every malformed
term is reported; the aggregate is wrapped in ErrFormat.
*/
func Parse(input string) (*Polynomial, error) {
	s := strings.ReplaceAll(input, " ", "")
	if s == "" {
		return nil, errors.WithContext(ErrFormat, "empty input")
	}

	s = strings.ReplaceAll(s, "-", "+-")

	var (
		terms []Term
		errs  *multierror.Error
	)
	for _, part := range strings.Split(s, "+") {
		if part == "" {
			continue
		}

		t, err := parseTerm(part)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}

		terms = append(terms, t)
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, errors.WithContext(ErrFormat, err.Error())
	}

	if len(terms) == 0 {
		return nil, errors.WithContext(ErrFormat, fmt.Sprintf("no terms in %q", input))
	}

	return New(terms...), nil
}

func parseTerm(s string) (Term, error) {
	parts := strings.Split(s, "*")
	switch len(parts) {
	case 1:
		if c, err := parseCoefficient(s); err == nil {
			return Term{Exponent: 0, Coefficient: c}, nil
		}

		coeff := complex(1, 0)
		if strings.HasPrefix(s, "-") {
			coeff = -1
			s = s[1:]
		}

		e, err := parseIndeterminate(s)
		if err != nil {
			return Term{}, err
		}

		return Term{Exponent: e, Coefficient: coeff}, nil

	case 2:
		c, err := parseCoefficient(parts[0])
		if err != nil {
			return Term{}, err
		}

		e, err := parseIndeterminate(parts[1])
		if err != nil {
			return Term{}, err
		}

		return Term{Exponent: e, Coefficient: c}, nil

	default:
		return Term{}, fmt.Errorf("term %q: expected at most one '*'", s)
	}
}

func parseCoefficient(s string) (complex128, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("coefficient %q: not a number", s)
	}

	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("coefficient %q: not finite", s)
	}

	return complex(v, 0), nil
}

func parseIndeterminate(s string) (int, error) {
	if s == Indeterminate {
		return 1, nil
	}

	exp, ok := strings.CutPrefix(s, Indeterminate+"^")
	if !ok {
		return 0, fmt.Errorf("term %q: expected %s or %s^k", s, Indeterminate, Indeterminate)
	}

	e, err := strconv.Atoi(exp)
	if err != nil || e < 0 {
		return 0, fmt.Errorf("term %q: exponent must be a non-negative integer", s)
	}

	return e, nil
}
