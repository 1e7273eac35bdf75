package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathanmweiss/go-cpoly"
)

var interpolateCmd = &cobra.Command{
	Use:   "interpolate <x:y>...",
	Short: "find the polynomial through a set of points",
	Args:  cobra.MinimumNArgs(1),
	RunE:  doInterpolate,
}

func doInterpolate(cmd *cobra.Command, args []string) error {
	return runOperation("interpolate", func() error {
		xs := make([]complex128, 0, len(args))
		ys := make([]complex128, 0, len(args))
		for _, arg := range args {
			xStr, yStr, ok := strings.Cut(arg, ":")
			if !ok {
				return fmt.Errorf("cpoly: malformed point %q, expected x:y", arg)
			}

			x, err := parseScalar(xStr)
			if err != nil {
				return err
			}

			y, err := parseScalar(yStr)
			if err != nil {
				return err
			}

			xs = append(xs, x)
			ys = append(ys, y)
		}

		p, err := cpoly.Interpolate(xs, ys)
		if err != nil {
			return err
		}

		writePolynomial(cmd.OutOrStdout(), "", p)

		return nil
	})
}

func registerInterpolate(parentCmd *cobra.Command) {
	parentCmd.AddCommand(interpolateCmd)
}
