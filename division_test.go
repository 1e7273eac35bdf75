package cpoly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathanmweiss/go-cpoly/common/errors"
)

func TestDivide(t *testing.T) {
	a := assert.New(t)

	t.Run("zero divisor", func(t *testing.T) {
		_, _, err := Divide(mustParse(t, "X + 1"), Zero())
		a.True(errors.Is(err, ErrDivisionByZero))
	})

	t.Run("nil operand", func(t *testing.T) {
		_, _, err := Divide(nil, One())
		a.True(errors.Is(err, ErrInvalidArgument))
	})

	t.Run("divisor of higher degree", func(t *testing.T) {
		q, r, err := Divide(mustParse(t, "X + 1"), mustParse(t, "X^2"))
		a.NoError(err)
		a.Equal("0", q.String())
		a.Equal("X + 1", r.String())
	})

	t.Run("divisor compares greater", func(t *testing.T) {
		q, r, err := Divide(mustParse(t, "X + 1"), mustParse(t, "2*X + 1"))
		a.NoError(err)
		a.True(q.IsZero())
		a.Equal("X + 1", r.String())
	})

	t.Run("with remainder", func(t *testing.T) {
		q, r, err := Divide(mustParse(t, "X^3 + 2*X + 5"), mustParse(t, "X^2 + 1"))
		a.NoError(err)
		a.Equal("X", q.String())
		a.Equal("X + 5", r.String())
	})
}

func TestDivisionLaw(t *testing.T) {
	a := assert.New(t)

	for i := 0; i < 20; i++ {
		dividend := randomPolynomial(int64(i), 6)
		divisor := Add(mustParse(t, "X^2"), randomPolynomial(int64(1000+i), 1))

		q, r, err := Divide(dividend, divisor)
		a.NoError(err)
		a.Less(r.Degree(), divisor.Degree())
		a.True(StructurallyEqual(dividend, Add(Multiply(q, divisor), r)))
	}
}

func FuzzDivisionLaw(f *testing.F) {
	for _, seed := range []int64{1, 42, 4534523, 021310} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, seed int64) {
		dividend := randomPolynomial(seed, 5)
		divisor := Add(mustParse(t, "X^3"), randomPolynomial(seed+1, 2))

		q, r, err := Divide(dividend, divisor)
		if err != nil {
			t.Fatal(err)
		}

		if !StructurallyEqual(dividend, Add(Multiply(q, divisor), r)) {
			t.Fatalf("q*b + r != a for a=%v b=%v", dividend, divisor)
		}
	})
}

func TestDivideWithScalarModulus(t *testing.T) {
	a := assert.New(t)

	q, r, err := DivideWithScalarModulus(mustParse(t, "3*X^2 + 5*X + 2"), mustParse(t, "X + 1"), 7)
	a.NoError(err)
	a.Equal("3*X + 2", q.String())
	a.True(r.IsZero())

	q, r, err = DivideWithScalarModulus(mustParse(t, "9*X^2 + 5*X + 2"), mustParse(t, "X + 1"), 7)
	a.NoError(err)
	a.Equal("2*X + 3", q.String())
	a.Equal("-1", r.String())

	_, _, err = DivideWithScalarModulus(mustParse(t, "X^2"), mustParse(t, "X + 1"), 0)
	a.True(errors.Is(err, ErrDivisionByZero))

	// the divisor's leading coefficient vanishes modulo 7.
	_, _, err = DivideWithScalarModulus(mustParse(t, "X^2"), mustParse(t, "7*X + 1"), 7)
	a.True(errors.Is(err, ErrDivisionByZero))
}

func TestReducePolynomialModulo(t *testing.T) {
	a := assert.New(t)

	r, err := ReducePolynomialModulo(mustParse(t, "X + 1"), mustParse(t, "X^2"))
	a.NoError(err)
	a.Equal("X + 1", r.String())

	// equal under the magnitude ordering.
	r, err = ReducePolynomialModulo(mustParse(t, "X + 1"), mustParse(t, "X - 1"))
	a.NoError(err)
	a.Equal("0", r.String())

	r, err = ReducePolynomialModulo(mustParse(t, "X^3 + 2*X + 5"), mustParse(t, "X^2 + 1"))
	a.NoError(err)
	a.Equal("X + 5", r.String())

	_, err = ReducePolynomialModulo(mustParse(t, "5"), Zero())
	a.True(errors.Is(err, ErrDivisionByZero))
}

func TestCoefficientModulo(t *testing.T) {
	a := assert.New(t)

	r, err := ReduceCoefficientsModulo(mustParse(t, "12*X + 13"), 5)
	a.NoError(err)
	a.Equal("2*X - 2", r.String())

	r, err = ReduceCoefficientsModulo(mustParse(t, "10*X + 2"), 5)
	a.NoError(err)
	a.Equal("2", r.String())

	_, err = ReduceCoefficientsModulo(mustParse(t, "X"), 0)
	a.True(errors.Is(err, ErrDivisionByZero))

	r, err = ReduceModBoth(mustParse(t, "X^3 + 2*X + 12"), mustParse(t, "X^2 + 1"), 5)
	a.NoError(err)
	a.Equal("X + 2", r.String())

	r, err = MultiplyByScalarModulo(mustParse(t, "3*X + 4"), 3, 10)
	a.NoError(err)
	a.Equal("-X + 2", r.String())

	r, err = AdditiveInverseModulo(mustParse(t, "3*X + 4"), 10)
	a.NoError(err)
	a.Equal("-3*X - 4", r.String())
}

func TestPowCoefficientsModulo(t *testing.T) {
	a := assert.New(t)

	r, err := PowCoefficientsModulo(mustParse(t, "2*X + 1"), 2, 10)
	a.NoError(err)
	a.Equal("4*X + 1", r.String())

	// 2^2 mod 5 = -1.
	_, err = PowCoefficientsModulo(mustParse(t, "2*X"), 2, 5)
	a.True(errors.Is(err, ErrArithmeticInvariant))

	_, err = PowCoefficientsModulo(mustParse(t, "2*X"), 2, 0)
	a.True(errors.Is(err, ErrDivisionByZero))
}

func TestModularExponentiation(t *testing.T) {
	a := assert.New(t)
	p := mustParse(t, "X + 1")

	for exp, want := range map[int]string{
		0: "1",
		1: "X + 1",
		2: "X^2 + 2*X + 1",
	} {
		res, err := ModularExponentiation(p, exp, mustParse(t, "X^2"))
		require.NoError(t, err)
		a.Equal(want, res.String())
	}

	// the running product only gets reduced while it compares below the
	// modulus, so a small modulus leaves the power untouched.
	res, err := ModularExponentiation(p, 3, mustParse(t, "X^2"))
	a.NoError(err)
	a.Equal("X^3 + 3*X^2 + 3*X + 1", res.String())

	res, err = ModularExponentiation(p, 3, mustParse(t, "X^5"))
	a.NoError(err)
	a.Equal("X^3 + 3*X^2 + 3*X + 1", res.String())

	_, err = ModularExponentiation(p, -1, One())
	a.True(errors.Is(err, ErrInvalidArgument))

	_, err = ModularExponentiation(p, 10, One(), WithMaxIterations(3))
	a.True(errors.Is(err, ErrNonConvergence))

	res, err = ModularExponentiation(p, 5, One(), WithMaxIterations(3))
	a.NoError(err)
	a.Equal("X^5 + 5*X^4 + 10*X^3 + 10*X^2 + 5*X + 1", res.String())

	_, err = ModularExponentiation(p, 10, One(), WithMaxIterations(0))
	a.True(errors.Is(err, ErrInvalidArgument))
}

func TestPowModulo(t *testing.T) {
	a := assert.New(t)

	// (X + 1)^3 = 3X + 1 mod X^2.
	res, err := PowModulo(mustParse(t, "X + 1"), 3, mustParse(t, "X^2"), 7)
	a.NoError(err)
	a.Equal("3*X + 1", res.String())

	res, err = PowModulo(mustParse(t, "X + 1"), 0, mustParse(t, "X^2"), 7)
	a.NoError(err)
	a.Equal("1", res.String())

	_, err = PowModulo(mustParse(t, "X + 1"), -2, mustParse(t, "X^2"), 7)
	a.True(errors.Is(err, ErrInvalidArgument))
}
