package cpoly

import (
	"github.com/jonathanmweiss/go-cpoly/common/errors"
	"github.com/jonathanmweiss/go-cpoly/common/logging"
	"github.com/jonathanmweiss/go-cpoly/field"
)

// ModuleName is the module the polynomial errors are registered under.
const ModuleName = "cpoly"

var (
	// ErrInvalidArgument is returned when a required operand is absent or
	// out of range.
	ErrInvalidArgument = errors.New(ModuleName, 1, "cpoly: invalid argument")
	// ErrFormat is returned by Parse for malformed input.
	ErrFormat = errors.New(ModuleName, 2, "cpoly: malformed polynomial")
	// ErrDivisionByZero is returned when dividing by the zero polynomial or
	// reducing modulo a zero scalar.
	ErrDivisionByZero = errors.New(ModuleName, 3, "cpoly: division by zero")
	// ErrArithmeticInvariant is returned when a modular result has a
	// negative sign.
	ErrArithmeticInvariant = errors.New(ModuleName, 4, "cpoly: arithmetic invariant violated")
	// ErrNonConvergence is returned when an iterative algorithm reaches its
	// iteration limit.
	ErrNonConvergence = errors.New(ModuleName, 5, "cpoly: iteration limit reached")

	ErrPointsSizeMismatch = errors.New(ModuleName, 6, "cpoly: points size mismatch")
	ErrNonUniqueXs        = errors.New(ModuleName, 7, "cpoly: non-unique x values")

	ErrNotPowerOfTwo = field.ErrNotPowerOfTwo
)

var logger = logging.GetLogger(ModuleName)

func mustNotBeNil(polys ...*Polynomial) {
	for _, p := range polys {
		if p == nil {
			panic(errors.WithContext(ErrInvalidArgument, "nil polynomial"))
		}
	}
}

func checkNotNil(polys ...*Polynomial) error {
	for _, p := range polys {
		if p == nil {
			return errors.WithContext(ErrInvalidArgument, "nil polynomial")
		}
	}

	return nil
}

func checkScalarModulus(m complex128) error {
	if field.IsZero(m) {
		return errors.WithContext(ErrDivisionByZero, "zero scalar modulus")
	}

	return nil
}

func nonConvergence(operation string, limit int) error {
	logger.Debug("iteration limit reached",
		"operation", operation,
		"max_iterations", limit,
	)

	return errors.WithContext(ErrNonConvergence, operation)
}
