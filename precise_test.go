package cpoly

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluatePrecise(t *testing.T) {
	a := assert.New(t)

	a.Equal(complex(30, 0), EvaluatePrecise(FromValueInBase(30, 5, 1), 5, 0))
	a.Equal(complex(0, 0), EvaluatePrecise(Zero(), 3, 0))

	got := EvaluatePrecise(mustParse(t, "X^2 + 1"), complex(1, 1), 128)
	a.InDelta(1.0, real(got), 1e-15)
	a.InDelta(2.0, imag(got), 1e-15)

	p := randomPolynomial(7, 9)
	x := complex(0.5, -0.25)
	want := Evaluate(p, x)
	got = EvaluatePrecise(p, x, 0)
	a.InDelta(real(want), real(got), 1e-9)
	a.InDelta(imag(want), imag(got), 1e-9)
}

func BenchmarkEvaluatePrecise(b *testing.B) {
	p := randomPolynomial(1, 64)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		EvaluatePrecise(p, complex(0.5, 0.5), 0)
	}
}
