package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jonathanmweiss/go-cpoly"
	"github.com/jonathanmweiss/go-cpoly/common/errors"
)

const (
	cfgCalcExponent   = "calc.exponent"
	cfgCalcModulus    = "calc.modulus"
	cfgCalcBase       = "calc.base"
	cfgCalcStopDegree = "calc.stop_degree"
)

var (
	calcFlags = flag.NewFlagSet("", flag.ContinueOnError)

	calcCmd = &cobra.Command{
		Use:   "calc <operation> <p> [q]",
		Short: "apply a polynomial operation",
		Long: `Apply a polynomial operation to one or two polynomials.

Operations:
` + calcUsage() + `
Polynomials starting with '-' must follow '--', e.g.

  cpoly calc add -- "-X + 1" X`,
		Args: cobra.RangeArgs(2, 3),
		RunE: doCalc,
	}
)

type calcOperation struct {
	arity int
	help  string
	run   func(w io.Writer, polys []*cpoly.Polynomial) error
}

var calcOperations = map[string]calcOperation{
	"add": {2, "p + q", func(w io.Writer, ps []*cpoly.Polynomial) error {
		writePolynomial(w, "", cpoly.Add(ps[0], ps[1]))
		return nil
	}},
	"sub": {2, "p - q", func(w io.Writer, ps []*cpoly.Polynomial) error {
		writePolynomial(w, "", cpoly.Subtract(ps[0], ps[1]))
		return nil
	}},
	"mul": {2, "p * q", func(w io.Writer, ps []*cpoly.Polynomial) error {
		writePolynomial(w, "", cpoly.Multiply(ps[0], ps[1]))
		return nil
	}},
	"square": {1, "p^2", func(w io.Writer, ps []*cpoly.Polynomial) error {
		writePolynomial(w, "", cpoly.Square(ps[0]))
		return nil
	}},
	"pow": {1, "p^exponent", func(w io.Writer, ps []*cpoly.Polynomial) error {
		n := viper.GetInt(cfgCalcExponent)
		if n < 0 {
			return errors.WithContext(cpoly.ErrInvalidArgument, fmt.Sprintf("negative exponent %d", n))
		}
		writePolynomial(w, "", cpoly.Pow(ps[0], n))
		return nil
	}},
	"deriv": {1, "dp/dX", func(w io.Writer, ps []*cpoly.Polynomial) error {
		writePolynomial(w, "", cpoly.Derivative(ps[0]))
		return nil
	}},
	"monic": {1, "p divided by its leading coefficient", func(w io.Writer, ps []*cpoly.Polynomial) error {
		writePolynomial(w, "", cpoly.Monic(ps[0]))
		return nil
	}},
	"cmp": {2, "-1, 0 or 1 by degree then coefficient magnitude", func(w io.Writer, ps []*cpoly.Polynomial) error {
		fmt.Fprintln(w, cpoly.Compare(ps[0], ps[1]))
		return nil
	}},
	"div": {2, "quotient and remainder of p / q, coefficients reduced modulo --calc.modulus if set", doDivide},
	"mod": {2, "p mod q, coefficients reduced modulo --calc.modulus if set", doModulo},
	"gcd": {2, "gcd(p, q), by base reduction with --calc.base or modulo --calc.modulus", doGCD},
	"xgcd": {2, "g, x, y with p*x + q*y = g, stopping below --calc.stop_degree if set", doExtendedGCD},
	"powmod": {2, "p^exponent mod q, coefficients reduced modulo --calc.modulus if set", doPowModulo},
}

func calcUsage() string {
	names := make([]string, 0, len(calcOperations))
	for name := range calcOperations {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "  %-7s %s\n", name, calcOperations[name].help)
	}

	return b.String()
}

func doCalc(cmd *cobra.Command, args []string) error {
	name := args[0]
	op, ok := calcOperations[name]
	if !ok {
		return fmt.Errorf("cpoly: unknown operation %q", name)
	}

	if len(args)-1 != op.arity {
		return fmt.Errorf("cpoly: %s takes %d operand(s), got %d", name, op.arity, len(args)-1)
	}

	return runOperation(name, func() error {
		polys, err := parsePolynomials(args[1:])
		if err != nil {
			return err
		}

		return op.run(cmd.OutOrStdout(), polys)
	})
}

// scalarFlag returns the scalar stored under key and whether it was set.
func scalarFlag(key string) (complex128, bool, error) {
	s := viper.GetString(key)
	if s == "" {
		return 0, false, nil
	}

	c, err := parseScalar(s)
	if err != nil {
		return 0, false, err
	}

	return c, true, nil
}

func doDivide(w io.Writer, ps []*cpoly.Polynomial) error {
	m, reduced, err := scalarFlag(cfgCalcModulus)
	if err != nil {
		return err
	}

	var q, r *cpoly.Polynomial
	if reduced {
		q, r, err = cpoly.DivideWithScalarModulus(ps[0], ps[1], m)
	} else {
		q, r, err = cpoly.Divide(ps[0], ps[1])
	}
	if err != nil {
		return err
	}

	writePolynomial(w, "q", q)
	writePolynomial(w, "r", r)

	return nil
}

func doModulo(w io.Writer, ps []*cpoly.Polynomial) error {
	m, reduced, err := scalarFlag(cfgCalcModulus)
	if err != nil {
		return err
	}

	var r *cpoly.Polynomial
	if reduced {
		r, err = cpoly.ReduceModBoth(ps[0], ps[1], m)
	} else {
		r, err = cpoly.ReducePolynomialModulo(ps[0], ps[1])
	}
	if err != nil {
		return err
	}

	writePolynomial(w, "", r)

	return nil
}

func doGCD(w io.Writer, ps []*cpoly.Polynomial) error {
	base, byBase, err := scalarFlag(cfgCalcBase)
	if err != nil {
		return err
	}

	m, reduced, err := scalarFlag(cfgCalcModulus)
	if err != nil {
		return err
	}

	var g *cpoly.Polynomial
	switch {
	case byBase:
		g, err = cpoly.GCDWithBaseReduction(ps[0], ps[1], base, algorithmOptions()...)
	case reduced:
		g, err = cpoly.GCDWithScalarModulus(ps[0], ps[1], m, algorithmOptions()...)
	default:
		g, err = cpoly.GCD(ps[0], ps[1], algorithmOptions()...)
	}
	if err != nil {
		return err
	}

	writePolynomial(w, "", g)

	return nil
}

func doExtendedGCD(w io.Writer, ps []*cpoly.Polynomial) error {
	var (
		g, x, y *cpoly.Polynomial
		err     error
	)
	if stop := viper.GetInt(cfgCalcStopDegree); stop > 0 {
		g, x, y, err = cpoly.PartialExtendedEuclidean(ps[0], ps[1], stop, algorithmOptions()...)
	} else {
		g, x, y, err = cpoly.ExtendedEuclidean(ps[0], ps[1], algorithmOptions()...)
	}
	if err != nil {
		return err
	}

	writePolynomial(w, "g", g)
	writePolynomial(w, "x", x)
	writePolynomial(w, "y", y)

	return nil
}

func doPowModulo(w io.Writer, ps []*cpoly.Polynomial) error {
	m, reduced, err := scalarFlag(cfgCalcModulus)
	if err != nil {
		return err
	}

	exponent := viper.GetInt(cfgCalcExponent)

	var r *cpoly.Polynomial
	if reduced {
		r, err = cpoly.PowModulo(ps[0], exponent, ps[1], m)
	} else {
		r, err = cpoly.ModularExponentiation(ps[0], exponent, ps[1], algorithmOptions()...)
	}
	if err != nil {
		return err
	}

	writePolynomial(w, "", r)

	return nil
}

func registerCalc(parentCmd *cobra.Command) {
	calcFlags.Int(cfgCalcExponent, 2, "exponent for pow and powmod")
	calcFlags.String(cfgCalcModulus, "", "scalar modulus applied to coefficients, e.g. 7 or 5+2i")
	calcFlags.String(cfgCalcBase, "", "base for the base-reduction gcd")
	calcFlags.Int(cfgCalcStopDegree, 0, "stop the extended Euclidean algorithm below this degree")
	_ = viper.BindPFlags(calcFlags)

	calcCmd.Flags().AddFlagSet(calcFlags)
	parentCmd.AddCommand(calcCmd)
}
