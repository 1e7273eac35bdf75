package field

import (
	"sync"

	"github.com/jonathanmweiss/go-cpoly/common/errors"
)

// ErrNotPowerOfTwo is returned when a transform length is not a power of two.
var ErrNotPowerOfTwo = errors.New("cpoly/field", 1, "field: length must be a power of two")

type twiddleSet struct {
	// For each stage s (m = 2<<s), fwd[s] (and inv[s]) has length m/2
	// holding w^j where w = exp(2πi/m) for forward, and its conjugate for inverse.
	fwd  [][]complex128
	inv  [][]complex128
	nInv complex128
}

// FFT evaluates dense coefficient slices at the n-th roots of unity
// exp(2πik/n), k = 0..n-1, and interpolates them back. Twiddle factors
// are cached per length; an FFT is safe for concurrent use.
type FFT struct {
	mu           sync.RWMutex
	twiddleCache map[int]*twiddleSet
}

func NewFFT() *FFT {
	return &FFT{twiddleCache: make(map[int]*twiddleSet)}
}

func (f *FFT) getTwiddles(n int) *twiddleSet {
	f.mu.RLock()
	if ts, ok := f.twiddleCache[n]; ok {
		f.mu.RUnlock()
		return ts
	}
	f.mu.RUnlock()

	var fwd, inv [][]complex128

	// stages: m = 2,4,8,...,n  => stage index s = 0..(log2(n)-1)
	for m := 2; m <= n; m <<= 1 {
		half := m >> 1

		rowF := make([]complex128, half)
		rowI := make([]complex128, half)
		for j := 0; j < half; j++ {
			// computed directly instead of by repeated products to keep the error flat.
			rowF[j] = RootOfUnity(m, j)
			rowI[j] = Conjugate(rowF[j])
		}

		fwd = append(fwd, rowF)
		inv = append(inv, rowI)
	}

	ts := &twiddleSet{
		fwd:  fwd,
		inv:  inv,
		nInv: complex(1/float64(n), 0),
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.twiddleCache[n]; ok {
		return existing
	}

	f.twiddleCache[n] = ts

	return ts
}

// Forward replaces the coefficients a_j with the values
// A_k = sum_j a_j·exp(2πijk/n).
func (f *FFT) Forward(a []complex128) error {
	if len(a) == 0 {
		return nil
	}

	n := len(a)
	if !IsPowerOfTwo(uint64(n)) {
		return errors.WithContext(ErrNotPowerOfTwo, "forward transform")
	}

	bitReverseInPlace(a)
	butterflies(a, f.getTwiddles(n).fwd)

	return nil
}

// Backward inverts Forward.
func (f *FFT) Backward(a []complex128) error {
	if len(a) == 0 {
		return nil
	}

	n := len(a)
	if !IsPowerOfTwo(uint64(n)) {
		return errors.WithContext(ErrNotPowerOfTwo, "backward transform")
	}

	ts := f.getTwiddles(n)

	bitReverseInPlace(a)
	butterflies(a, ts.inv)

	for i := range a {
		a[i] *= ts.nInv
	}

	return nil
}

func butterflies(a []complex128, stages [][]complex128) {
	n := len(a)
	for s, m := 0, 2; m <= n; s, m = s+1, m<<1 {
		half := m >> 1
		ws := stages[s]
		for k := 0; k < n; k += m {
			for j := 0; j < half; j++ {
				u := a[k+j]
				t := ws[j] * a[k+j+half]
				a[k+j] = u + t
				a[k+j+half] = u - t
			}
		}
	}
}

func bitReverseInPlace(xs []complex128) {
	n := len(xs)
	if n <= 1 {
		return
	}

	j := 0
	for i := 1; i < n-1; i++ {
		bit := n >> 1
		for j&bit != 0 {
			j &= ^bit
			bit >>= 1
		}
		j |= bit
		if i < j {
			xs[i], xs[j] = xs[j], xs[i]
		}
	}
}
