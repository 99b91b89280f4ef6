package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cube2222/octovalue/outputs/formats"
	"github.com/cube2222/octovalue/value"
)

var compareCmd = &cobra.Command{
	Use:   "compare <kind> <left> <kind> <right>",
	Short: "Compare two values, printing -1, 0 or 1.",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		left, err := parseLiteral(args[0], args[1])
		if err != nil {
			return err
		}
		right, err := parseLiteral(args[2], args[3])
		if err != nil {
			return err
		}

		return printRows(cmd.OutOrStdout(),
			[]formats.Field{
				{Name: "left", Type: left.AttrType()},
				{Name: "right", Type: right.AttrType()},
				{Name: "compare", Type: value.AttrInts},
			},
			[][]value.Value{{
				left,
				right,
				value.NewInt(int32(value.Compare(left, right))),
			}},
		)
	},
}
