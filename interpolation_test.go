package cpoly

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathanmweiss/go-cpoly/common/errors"
)

func TestInterpolate(t *testing.T) {
	a := assert.New(t)

	t.Run("exact", func(t *testing.T) {
		p, err := Interpolate([]complex128{1, 2, 3}, []complex128{6, 15, 28})
		a.NoError(err)
		a.True(StructurallyEqual(mustParse(t, "2*X^2 + 3*X + 1"), p), p.String())
	})

	t.Run("single point", func(t *testing.T) {
		p, err := Interpolate([]complex128{4}, []complex128{complex(2, 1)})
		a.NoError(err)
		a.Equal("(2 + 1i)", p.String())
	})

	t.Run("random", func(t *testing.T) {
		for i := 1; i < 6; i++ {
			want := randomPolynomial(int64(i), i)

			xs := make([]complex128, i+1)
			ys := make([]complex128, i+1)
			for j := range xs {
				xs[j] = complex(float64(j)/2, float64(j%2))
				ys[j] = Evaluate(want, xs[j])
			}

			got, err := Interpolate(xs, ys)
			a.NoError(err)
			assertNearlyEqual(t, want, got, 1e-6)
		}
	})

	t.Run("errors", func(t *testing.T) {
		_, err := Interpolate([]complex128{1, 2}, []complex128{1})
		a.True(errors.Is(err, ErrPointsSizeMismatch))

		_, err = Interpolate(nil, nil)
		a.True(errors.Is(err, ErrInvalidArgument))

		_, err = Interpolate([]complex128{1, 1}, []complex128{1, 2})
		a.True(errors.Is(err, ErrNonUniqueXs))
	})
}
