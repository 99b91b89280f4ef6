package cmd

import (
	"encoding/hex"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/cube2222/octovalue/outputs/formats"
	"github.com/cube2222/octovalue/value"
)

var debug bool

var inspectCmd = &cobra.Command{
	Use:   "inspect <kind> <literal>",
	Short: "Show the kind, length, canonical text and raw bytes of a value.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := parseLiteral(args[0], args[1])
		if err != nil {
			return err
		}

		if err := printRows(cmd.OutOrStdout(),
			[]formats.Field{
				{Name: "kind", Type: value.AttrChars},
				{Name: "length", Type: value.AttrInts},
				{Name: "string", Type: value.AttrChars},
				{Name: "raw", Type: value.AttrChars},
			},
			[][]value.Value{{
				value.NewString(v.AttrType().String(), 0),
				value.NewInt(int32(v.Length())),
				value.NewString(v.String(), 0),
				value.NewString(hex.EncodeToString(v.RawBytes()), 0),
			}},
		); err != nil {
			return err
		}

		if debug {
			spew.Fdump(cmd.OutOrStdout(), v.Datum())
		}
		return nil
	},
}

func init() {
	inspectCmd.Flags().BoolVar(&debug, "debug", false, "Dump the payload with go-spew.")
}
