package cpoly

import (
	"fmt"

	"github.com/jonathanmweiss/go-cpoly/common/errors"
)

// DefaultMaxIterations bounds the iterative algorithms unless overridden
// with WithMaxIterations.
const DefaultMaxIterations = 10_000

type config struct {
	maxIterations int
}

// Option configures the iterative algorithms (GCD variants, extended
// Euclid, modular exponentiation).
type Option func(*config) error

// WithMaxIterations sets the iteration limit after which an algorithm
// fails with ErrNonConvergence.
func WithMaxIterations(n int) Option {
	return func(c *config) error {
		if n <= 0 {
			return errors.WithContext(ErrInvalidArgument, fmt.Sprintf("max iterations must be positive, got %d", n))
		}
		c.maxIterations = n
		return nil
	}
}

func newConfig(opts ...Option) (*config, error) {
	c := &config{maxIterations: DefaultMaxIterations}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}
