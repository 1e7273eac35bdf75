package cmd

import (
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jonathanmweiss/go-cpoly"
	"github.com/jonathanmweiss/go-cpoly/field"
)

const (
	cfgEvaluateRootsOfUnity = "evaluate.roots_of_unity"
	cfgEvaluatePrecision    = "evaluate.precision"
)

var (
	evaluateFlags = flag.NewFlagSet("", flag.ContinueOnError)

	evaluateCmd = &cobra.Command{
		Use:   "evaluate <p> [x...]",
		Short: "evaluate a polynomial",
		Long: `Evaluate a polynomial at the given points, or at the n-th roots of
unity with --evaluate.roots_of_unity n (n a power of two).

Arguments starting with '-' must follow '--', e.g.

  cpoly evaluate -- "-X^2 + 1" 2`,
		Args: cobra.MinimumNArgs(1),
		RunE: doEvaluate,
	}
)

func doEvaluate(cmd *cobra.Command, args []string) error {
	return runOperation("evaluate", func() error {
		p, err := cpoly.Parse(args[0])
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()

		if n := viper.GetInt(cfgEvaluateRootsOfUnity); n > 0 {
			e := cpoly.NewRootsOfUnityEvaluator()

			values, err := e.EvaluatePolynomial(p, n)
			if err != nil {
				return err
			}

			for k, x := range e.EvaluationPoints(n) {
				writeScalar(w, field.Format(x), values[k])
			}

			return nil
		}

		prec := viper.GetUint(cfgEvaluatePrecision)
		for _, s := range args[1:] {
			x, err := parseScalar(s)
			if err != nil {
				return err
			}

			var v complex128
			if prec > 0 {
				v = cpoly.EvaluatePrecise(p, x, prec)
			} else {
				v = cpoly.Evaluate(p, x)
			}

			writeScalar(w, field.Format(x), v)
		}

		return nil
	})
}

func registerEvaluate(parentCmd *cobra.Command) {
	evaluateFlags.Int(cfgEvaluateRootsOfUnity, 0, "evaluate at the n-th roots of unity")
	evaluateFlags.Uint(cfgEvaluatePrecision, 0, "evaluate in arbitrary precision with this many bits")
	_ = viper.BindPFlags(evaluateFlags)

	evaluateCmd.Flags().AddFlagSet(evaluateFlags)
	parentCmd.AddCommand(evaluateCmd)
}
