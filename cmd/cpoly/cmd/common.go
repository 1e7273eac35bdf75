package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jonathanmweiss/go-cpoly"
	"github.com/jonathanmweiss/go-cpoly/common/cbor"
	"github.com/jonathanmweiss/go-cpoly/common/logging"
	"github.com/jonathanmweiss/go-cpoly/field"
)

const (
	cfgConfigFile    = "config"
	cfgLogFmt        = "log.format"
	cfgLogLevel      = "log.level"
	cfgMaxIterations = "max_iterations"
	cfgOutput        = "output"

	outputText = "text"
	outputCBOR = "cbor"
)

var (
	rootFlags = flag.NewFlagSet("", flag.ContinueOnError)

	logger = logging.GetLogger("cmd/cpoly")

	loggingOnce sync.Once
	loggingErr  error
)

func initConfig(cmd *cobra.Command, args []string) error {
	if cfgFile := viper.GetString(cfgConfigFile); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("cpoly: failed to read config %s: %w", cfgFile, err)
		}
	}

	switch out := viper.GetString(cfgOutput); out {
	case outputText, outputCBOR:
	default:
		return fmt.Errorf("cpoly: unsupported output format %q", out)
	}

	loggingOnce.Do(func() {
		loggingErr = initLogging(cmd.ErrOrStderr())
	})

	return loggingErr
}

func initLogging(w io.Writer) error {
	var logLevel logging.Level
	moduleLevels := map[string]logging.Level{}
	if err := logLevel.Set(viper.GetString(cfgLogLevel)); err != nil {
		// A config file may set per-module levels under log.level.
		if errDefault := logLevel.Set(viper.GetString(cfgLogLevel + ".default")); errDefault != nil {
			return errDefault
		}

		for k, v := range viper.GetStringMapString(cfgLogLevel) {
			if k == "default" {
				continue
			}

			var lvl logging.Level
			if err = lvl.Set(v); err != nil {
				return err
			}
			moduleLevels[k] = lvl
		}
	}

	var logFmt logging.Format
	if err := logFmt.Set(viper.GetString(cfgLogFmt)); err != nil {
		return err
	}

	return logging.Initialize(w, logFmt, logLevel, moduleLevels)
}

// algorithmOptions returns the options shared by every iterative
// algorithm invoked from the command line.
func algorithmOptions() []cpoly.Option {
	return []cpoly.Option{cpoly.WithMaxIterations(viper.GetInt(cfgMaxIterations))}
}

func parsePolynomials(args []string) ([]*cpoly.Polynomial, error) {
	polys := make([]*cpoly.Polynomial, 0, len(args))
	for _, s := range args {
		p, err := cpoly.Parse(s)
		if err != nil {
			return nil, err
		}
		polys = append(polys, p)
	}

	return polys, nil
}

// parseScalar accepts anything strconv.ParseComplex does, e.g. "3",
// "-1.5" or "2+1i".
func parseScalar(s string) (complex128, error) {
	c, err := strconv.ParseComplex(strings.ReplaceAll(s, " ", ""), 128)
	if err != nil {
		return 0, fmt.Errorf("cpoly: malformed scalar %q: %w", s, err)
	}

	return c, nil
}

func writePolynomial(w io.Writer, label string, p *cpoly.Polynomial) {
	var s string
	switch viper.GetString(cfgOutput) {
	case outputCBOR:
		s = hex.EncodeToString(cpoly.Encode(p))
	default:
		s = p.String()
	}

	if label != "" {
		fmt.Fprintf(w, "%s: %s\n", label, s)
		return
	}

	fmt.Fprintln(w, s)
}

func writeScalar(w io.Writer, label string, c complex128) {
	fmt.Fprintf(w, "%s: %s\n", label, field.Format(c))
}

func init() {
	logFmt := logging.FmtLogfmt
	logLevel := logging.LevelWarn

	rootFlags.String(cfgConfigFile, "", "config file")
	rootFlags.Var(&logFmt, cfgLogFmt, "log format")
	rootFlags.Var(&logLevel, cfgLogLevel, "log level")
	rootFlags.Int(cfgMaxIterations, cpoly.DefaultMaxIterations, "iteration limit of the iterative algorithms")
	rootFlags.String(cfgOutput, outputText, "polynomial output format (text or cbor)")
	rootFlags.AddFlagSet(cbor.Flags)

	_ = viper.BindPFlags(rootFlags)
}
