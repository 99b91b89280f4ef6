package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cube2222/octovalue/config"
	"github.com/cube2222/octovalue/logs"
	"github.com/cube2222/octovalue/outputs/formats"
	"github.com/cube2222/octovalue/value"
)

var configPath string
var output string

var cfg *config.Config

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "octovalue",
	Short: "Convert, compare and inspect scalar values the way the query engine does.",
	Example: `octovalue convert dates 2024-02-29
octovalue compare ints 3 floats 3.0
octovalue sort chars abc ab b
octovalue inspect floats 1.25 --debug`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Read(configPath)
		if err != nil {
			return fmt.Errorf("couldn't read config: %w", err)
		}
		if output != "" {
			cfg.Output = output
			if err := cfg.Validate(); err != nil {
				return err
			}
		}

		level, err := cfg.Level()
		if err != nil {
			return err
		}
		if err := logs.Initialize(level, cfg.LogFile); err != nil {
			return fmt.Errorf("couldn't initialize logger: %w", err)
		}
		return nil
	},
}

func Execute(ctx context.Context) {
	cobra.CheckErr(execute(ctx))
}

// execute runs the command tree. The log file is closed whether or not the
// command fails.
func execute(ctx context.Context) error {
	defer logs.CloseLogger()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Configuration file, defaults to ~/.octovalue/octovalue.yml.")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output format: table, json or csv. Overrides the configuration.")

	rootCmd.AddCommand(convertCmd, compareCmd, sortCmd, inspectCmd)
}

// printRows renders rows through the configured formatter.
func printRows(w io.Writer, fields []formats.Field, rows [][]value.Value) error {
	formatter, err := formats.New(cfg, w)
	if err != nil {
		return err
	}
	formatter.SetSchema(fields)
	for _, row := range rows {
		if err := formatter.Write(row); err != nil {
			return fmt.Errorf("couldn't write row: %w", err)
		}
	}
	return formatter.Close()
}
