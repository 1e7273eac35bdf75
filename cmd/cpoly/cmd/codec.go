package cmd

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathanmweiss/go-cpoly"
)

var (
	encodeCmd = &cobra.Command{
		Use:   "encode <p>",
		Short: "print the hex encoded canonical CBOR form of a polynomial",
		Args:  cobra.ExactArgs(1),
		RunE:  doEncode,
	}

	decodeCmd = &cobra.Command{
		Use:   "decode <hex>",
		Short: "print a hex encoded CBOR polynomial as text",
		Args:  cobra.ExactArgs(1),
		RunE:  doDecode,
	}
)

func doEncode(cmd *cobra.Command, args []string) error {
	return runOperation("encode", func() error {
		p, err := cpoly.Parse(args[0])
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(cpoly.Encode(p)))

		return nil
	})
}

func doDecode(cmd *cobra.Command, args []string) error {
	return runOperation("decode", func() error {
		data, err := hex.DecodeString(strings.TrimSpace(args[0]))
		if err != nil {
			return fmt.Errorf("cpoly: malformed hex: %w", err)
		}

		p, err := cpoly.Decode(data)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), p.String())

		return nil
	})
}

func registerCodec(parentCmd *cobra.Command) {
	for _, v := range []*cobra.Command{
		encodeCmd,
		decodeCmd,
	} {
		parentCmd.AddCommand(v)
	}
}
