package cpoly

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScenarios(t *testing.T) {
	a := assert.New(t)

	t.Run("add", func(t *testing.T) {
		sum := Add(mustParse(t, "12*X + 2"), mustParse(t, "12*X - 3"))
		a.Equal("24*X - 1", sum.String())
	})

	t.Run("subtract", func(t *testing.T) {
		diff := Subtract(mustParse(t, "7*X^2 + 3*X - 2"), mustParse(t, "2*X - 2"))
		a.Equal("7*X^2 + X", diff.String())
	})

	t.Run("multiply", func(t *testing.T) {
		prod := Multiply(mustParse(t, "12*X + 2"), mustParse(t, "12*X - 3"))
		a.Equal("144*X^2 - 12*X - 6", prod.String())
	})

	t.Run("divide", func(t *testing.T) {
		q, r, err := Divide(mustParse(t, "288*X^2 + 36*X - 2"), mustParse(t, "12*X + 2"))
		a.NoError(err)
		a.Equal("24*X - 1", q.String())
		a.True(r.IsZero())
	})

	t.Run("gcd", func(t *testing.T) {
		g, err := GCD(mustParse(t, "X^2 + 7*X + 6"), mustParse(t, "X^2 - 5*X - 6"))
		a.NoError(err)
		a.Equal("X + 1", g.String())
	})

	t.Run("derivative", func(t *testing.T) {
		d := Derivative(mustParse(t, "288*X^2 + 36*X - 2"))
		a.Equal("576*X + 36", d.String())
	})
}

func TestIdentities(t *testing.T) {
	a := assert.New(t)

	for i := 0; i < 10; i++ {
		p := randomPolynomial(int64(i), i)

		a.True(StructurallyEqual(p, Add(p, Zero())))
		a.True(StructurallyEqual(p, Multiply(p, One())))
		a.True(Subtract(p, p).IsZero())
		a.True(Add(p, Negate(p)).IsZero())
	}
}

func TestSubtractTruncated(t *testing.T) {
	a := assert.New(t)

	a.Equal("X", SubtractTruncated(mustParse(t, "7*X^2 + 3*X - 2"), mustParse(t, "2*X - 2")).String())
	a.Equal("-1", SubtractTruncated(mustParse(t, "X + 2"), mustParse(t, "3")).String())
}

func TestPow(t *testing.T) {
	a := assert.New(t)

	p := mustParse(t, "X + 1")
	a.Equal("1", Pow(p, 0).String())
	a.Equal("X + 1", Pow(p, 1).String())
	a.Equal("X^3 + 3*X^2 + 3*X + 1", Pow(p, 3).String())
	a.Equal("X^4 + 4*X^3 + 6*X^2 + 4*X + 1", Pow(p, 4).String())
	a.True(StructurallyEqual(Square(p), Pow(p, 2)))

	a.Panics(func() { Pow(p, -1) })
}

func TestDerivative(t *testing.T) {
	a := assert.New(t)

	a.Equal("0", Derivative(mustParse(t, "7")).String())
	a.Equal("10*X^9", Derivative(mustParse(t, "X^10 + 1")).String())
}

func TestEvaluate(t *testing.T) {
	a := assert.New(t)

	p := mustParse(t, "X^2 - 5*X + 6")
	a.Equal(complex(0, 0), Evaluate(p, 2))
	a.Equal(complex(0, 0), Evaluate(p, 3))
	a.Equal(complex(5, -5), Evaluate(p, complex(0, 1)))

	a.Equal(complex(1025, 0), Evaluate(mustParse(t, "X^10 + 1"), 2))
	a.Equal(complex(0, 0), Evaluate(Zero(), 7))

	a.Equal(7.0, EvaluateMagnitude(mustParse(t, "X^2 - 3"), 2))
}

func TestSumProduct(t *testing.T) {
	a := assert.New(t)

	a.Equal("0", Sum().String())
	a.Equal("1", Product().String())

	a.Equal("3*X + 3", Sum(mustParse(t, "X + 1"), mustParse(t, "X + 1"), mustParse(t, "X + 1")).String())
	a.Equal("X^2 - 1", Product(mustParse(t, "X + 1"), mustParse(t, "X - 1")).String())
	a.Equal("(0 + 2i)*X", Scale(mustParse(t, "2*X"), complex(0, 1)).String())
}

func TestMultiplyDegree(t *testing.T) {
	a := assert.New(t)

	for i := 0; i < 10; i++ {
		p := randomPolynomial(int64(i), i)
		q := randomPolynomial(int64(50+i), 10-i)

		a.Equal(p.Degree()+q.Degree(), Multiply(p, q).Degree())
	}
}

func TestNilOperands(t *testing.T) {
	a := assert.New(t)

	a.Panics(func() { Add(nil, One()) })
	a.Panics(func() { Multiply(One(), nil) })
	a.Panics(func() { Derivative(nil) })
}

func BenchmarkMultiply(b *testing.B) {
	p := randomPolynomial(1, 256)
	q := randomPolynomial(2, 256)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Multiply(p, q)
	}
}
