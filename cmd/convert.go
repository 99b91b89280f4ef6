package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cube2222/octovalue/outputs/formats"
	"github.com/cube2222/octovalue/value"
)

var convertCmd = &cobra.Command{
	Use:   "convert <kind> <literal>",
	Short: "Convert a chars literal to the given kind and print the result code.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := value.AttrTypeFromString(args[0])
		v := value.NewString(args[1], 0)
		err := v.ConvertTo(target)

		return printRows(cmd.OutOrStdout(),
			[]formats.Field{
				{Name: "kind", Type: value.AttrChars},
				{Name: "value", Type: target},
				{Name: "rc", Type: value.AttrChars},
			},
			[][]value.Value{{
				value.NewString(v.AttrType().String(), 0),
				v,
				value.NewString(value.RCOf(err).String(), 0),
			}},
		)
	},
}
