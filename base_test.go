package cpoly

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathanmweiss/go-cpoly/common/errors"
)

func TestFromValueInBase(t *testing.T) {
	a := assert.New(t)

	tests := []struct {
		value, base complex128
		degree      int
		want        string
	}{
		{value: 30, base: 5, degree: 1, want: "5*X + 5"},
		{value: 1000, base: 10, degree: 3, want: "X^3"},
		{value: 7, base: 2, degree: 2, want: "1.75*X^2"},
		{value: 0, base: 10, degree: 3, want: "0"},
		{value: 9, base: 10, degree: -1, want: "0"},
	}

	for _, tc := range tests {
		p := FromValueInBase(tc.value, tc.base, tc.degree)
		a.Equal(tc.want, p.String())
		if tc.degree >= 0 {
			a.Equal(tc.value, Evaluate(p, tc.base))
		}
	}
}

func TestFromRoots(t *testing.T) {
	a := assert.New(t)

	a.Equal("X^3 - 6*X^2 + 11*X - 6", FromRoots(1, 2, 3).String())
	a.Equal("X^2 + 1", FromRoots(complex(0, 1), complex(0, -1)).String())
	a.Equal("1", FromRoots().String())

	for _, r := range []complex128{1, 2, 3} {
		a.Equal(complex(0, 0), Evaluate(FromRoots(1, 2, 3), r))
	}
}

func TestReduceDegree(t *testing.T) {
	a := assert.New(t)

	r, err := ReduceDegree(mustParse(t, "5*X + 5"), 5)
	a.NoError(err)
	a.Equal("30", r.String())

	r, err = ReduceDegree(mustParse(t, "X^3 + 2*X"), 10)
	a.NoError(err)
	a.Equal("10*X^2 + 2*X", r.String())
	a.Equal(complex(1020, 0), Evaluate(r, 10))

	_, err = ReduceDegree(mustParse(t, "4"), 10)
	a.True(errors.Is(err, ErrInvalidArgument))
}

func TestMakeMonic(t *testing.T) {
	a := assert.New(t)

	r, err := MakeMonic(mustParse(t, "3*X + 2"), 10)
	a.NoError(err)
	a.Equal("X + 22", r.String())

	r, err = MakeMonic(mustParse(t, "X + 2"), 10)
	a.NoError(err)
	a.Equal("X + 2", r.String())

	_, err = MakeMonic(mustParse(t, "5"), 10)
	a.True(errors.Is(err, ErrInvalidArgument))
}

func TestBalanceCoefficients(t *testing.T) {
	a := assert.New(t)

	p := mustParse(t, "X + 25")
	a.NoError(BalanceCoefficients(p, 10, 0))
	a.Equal("3.5*X", p.String())
	a.Equal(complex(35, 0), Evaluate(p, 10))

	// already within bounds.
	p = mustParse(t, "3*X + 4")
	a.NoError(BalanceCoefficients(p, 10, 0))
	a.Equal("3*X + 4", p.String())

	a.True(errors.Is(BalanceCoefficients(p, 0, 0), ErrDivisionByZero))
	a.True(errors.Is(BalanceCoefficients(nil, 10, 0), ErrInvalidArgument))
}
