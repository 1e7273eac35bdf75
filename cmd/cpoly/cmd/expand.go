package cmd

import (
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jonathanmweiss/go-cpoly"
	"github.com/jonathanmweiss/go-cpoly/field"
)

const (
	cfgExpandBase    = "expand.base"
	cfgExpandDegree  = "expand.degree"
	cfgExpandMonic   = "expand.monic"
	cfgExpandBalance = "expand.balance"

	// relative error tolerated between the value and the expansion
	// evaluated at the base.
	expandTolerance = 1e-9
)

var (
	expandFlags = flag.NewFlagSet("", flag.ContinueOnError)

	expandCmd = &cobra.Command{
		Use:   "expand <value>",
		Short: "write a value as a polynomial in a base",
		Long: `Expand a complex value into digits of a base, most significant
first, so that the polynomial evaluated at X = base gives the value back.`,
		Args: cobra.ExactArgs(1),
		RunE: doExpand,
	}
)

func doExpand(cmd *cobra.Command, args []string) error {
	return runOperation("expand", func() error {
		value, err := parseScalar(args[0])
		if err != nil {
			return err
		}

		base, err := parseScalar(viper.GetString(cfgExpandBase))
		if err != nil {
			return err
		}

		p := cpoly.FromValueInBase(value, base, viper.GetInt(cfgExpandDegree))

		if viper.GetBool(cfgExpandMonic) && p.Degree() > 0 {
			if p, err = cpoly.MakeMonic(p, base); err != nil {
				return err
			}
		}

		if viper.GetBool(cfgExpandBalance) {
			if err = cpoly.BalanceCoefficients(p, base, 0); err != nil {
				return err
			}
		}

		check := cpoly.EvaluatePrecise(p, base, 0)
		if field.Abs(check-value) > expandTolerance*max(1, field.Abs(value)) {
			logger.Warn("expansion does not evaluate back to the value",
				"value", field.Format(value),
				"evaluated", field.Format(check),
			)
		}

		writePolynomial(cmd.OutOrStdout(), "", p)

		return nil
	})
}

func registerExpand(parentCmd *cobra.Command) {
	expandFlags.String(cfgExpandBase, "10", "base of the expansion")
	expandFlags.Int(cfgExpandDegree, 8, "highest exponent of the expansion")
	expandFlags.Bool(cfgExpandMonic, false, "carry the leading coefficient down to make it 1")
	expandFlags.Bool(cfgExpandBalance, false, "move excess coefficient magnitude to higher exponents")
	_ = viper.BindPFlags(expandFlags)

	expandCmd.Flags().AddFlagSet(expandFlags)
	parentCmd.AddCommand(expandCmd)
}
