package field

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSign(t *testing.T) {
	a := assert.New(t)

	a.Equal(1, Sign(complex(2, -5)))
	a.Equal(-1, Sign(complex(-2, 5)))
	a.Equal(-1, Sign(complex(0, -3)))
	a.Equal(1, Sign(complex(0, 3)))
	a.Equal(0, Sign(0))
}

func TestMod(t *testing.T) {
	a := assert.New(t)

	a.Equal(complex(2, 0), Mod(12, 5))
	// 13/5 = 2.6 rounds to 3.
	a.Equal(complex(-2, 0), Mod(13, 5))
	// 2.5 rounds half to even.
	a.Equal(complex(5, 0), Mod(25, 10))
	a.Equal(complex(1, 0), Mod(-6, 7))
	a.Equal(complex(-1, 0), Mod(4, 5))
	a.Equal(complex(1, 1), Mod(complex(8, 8), 7))

	a.Panics(func() { Mod(3, 0) })
}

func TestPowInt(t *testing.T) {
	a := assert.New(t)

	a.Equal(complex(1, 0), PowInt(complex(3, 4), 0))
	a.Equal(complex(1024, 0), PowInt(2, 10))
	a.Equal(complex(-1, 0), PowInt(complex(0, 1), 2))
	a.Equal(complex(0, -1), PowInt(complex(0, 1), 3))
	a.Equal(complex(0.125, 0), PowInt(2, -3))
}

func TestRootsOfUnity(t *testing.T) {
	a := assert.New(t)

	for _, n := range []int{2, 4, 8, 16} {
		w := RootOfUnity(n, 1)
		a.InDelta(0, cmplx.Abs(PowInt(w, n)-1), 1e-12)
		a.InDelta(0, cmplx.Abs(RootOfUnity(n, n/2)+1), 1e-12)
	}

	a.True(IsPowerOfTwo(1))
	a.True(IsPowerOfTwo(64))
	a.False(IsPowerOfTwo(0))
	a.False(IsPowerOfTwo(12))
}

func TestNthRoot(t *testing.T) {
	a := assert.New(t)

	a.InDelta(0, cmplx.Abs(NthRoot(27, 3)-3), 1e-12)
	a.InDelta(0, cmplx.Abs(NthRoot(-1, 2)-complex(0, 1)), 1e-12)
}

func TestFormat(t *testing.T) {
	a := assert.New(t)

	a.Equal("0", Format(0))
	a.Equal("0", Format(complex(math.Copysign(0, -1), 0)))
	a.Equal("12", Format(12))
	a.Equal("-3", Format(-3))
	a.Equal("1.5", Format(1.5))
	a.Equal("(2 + 3i)", Format(complex(2, 3)))
	a.Equal("(2 - 3i)", Format(complex(2, -3)))
	a.Equal("(0 - 0.08333i)", Format(complex(0, -1.0/12)))

	// negative components are always rounded, positive ones are not.
	a.Equal("-12.08333", Format(-12.083333333333334))
	a.Equal("0.3333333333333333", Format(1.0/3))
	a.Equal("0", Format(-0.000001))
}

func TestNorm(t *testing.T) {
	a := assert.New(t)

	a.Equal(complex(25, 0), Norm(complex(3, 4)))
	a.Equal(complex(3, -4), Conjugate(complex(3, 4)))
	a.Equal(5.0, Abs(complex(3, 4)))
}
