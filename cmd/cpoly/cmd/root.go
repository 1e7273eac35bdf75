// Package cmd implements the commands for the cpoly executable.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cpoly",
	Short: "complex polynomial calculator",
	Long: `cpoly parses, combines and evaluates polynomials with complex
coefficients written as e.g. "X^2 - 5*X + 6".`,
	SilenceUsage:      true,
	PersistentPreRunE: initConfig,
}

// RootCommand returns the root (top level) cobra.Command.
func RootCommand() *cobra.Command {
	return rootCmd
}

// Execute spawns the main entry point after handling the config file
// and command line arguments.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().AddFlagSet(rootFlags)
	rootCmd.PersistentFlags().AddFlagSet(metricsFlags)

	// Register all of the sub-commands.
	for _, v := range []func(*cobra.Command){
		registerCalc,
		registerExpand,
		registerEvaluate,
		registerInterpolate,
		registerCodec,
	} {
		v(rootCmd)
	}
}
