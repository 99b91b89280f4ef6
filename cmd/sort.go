package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cube2222/octovalue/outputs/formats"
	"github.com/cube2222/octovalue/storage"
	"github.com/cube2222/octovalue/value"
)

var sortCmd = &cobra.Command{
	Use:   "sort <kind> <literal>...",
	Short: "Sort literals of one kind, null sorting first. Use null to pass a null.",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		set := storage.NewSortedSet()
		for _, literal := range args[1:] {
			kind := args[0]
			if literal == "null" {
				kind = value.AttrNull.String()
			}
			v, err := parseLiteral(kind, literal)
			if err != nil {
				return err
			}
			if err := set.Insert(v); err != nil {
				return fmt.Errorf("couldn't insert '%s': %w", literal, err)
			}
		}

		var rows [][]value.Value
		set.Ascend(func(v value.Value, count int) bool {
			rows = append(rows, []value.Value{v, value.NewInt(int32(count))})
			return true
		})

		return printRows(cmd.OutOrStdout(),
			[]formats.Field{
				{Name: "value", Type: value.AttrTypeFromString(args[0])},
				{Name: "count", Type: value.AttrInts},
			},
			rows,
		)
	},
}
