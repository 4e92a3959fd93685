// Command entigen generates C# entity classes from a MySQL schema.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/syssam/entigen"
	"github.com/syssam/entigen/config"

	// Register the MySQL driver with database/sql.
	_ "github.com/go-sql-driver/mysql"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const defaultConfigPath = "entigen.yaml"

func main() {
	rootCmd := &cobra.Command{
		Use:   "entigen [config file]",
		Short: "Generate C# entity classes from a MySQL schema",
		Long: `entigen introspects a MySQL database and writes one annotated C#
entity class per table, plus an optional SQL structure script.

Examples:
  entigen init               # write a starter entigen.yaml
  entigen                    # generate using ./entigen.yaml
  entigen path/to/gen.yaml   # generate using an explicit config file`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultConfigPath
			if len(args) > 0 {
				path = args[0]
			}
			logger := newLogger()

			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			report, err := entigen.New(cfg).WithLogger(logger).Run(cmd.Context())
			if err != nil {
				return err
			}
			if len(report.Files) == 0 {
				return errors.New("no entity classes were generated")
			}
			return nil
		},
	}

	initCmd := &cobra.Command{
		Use:   "init [config file]",
		Short: "Write a starter configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultConfigPath
			if len(args) > 0 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists, not overwriting", path)
			}
			if err := config.Default().Save(path); err != nil {
				return err
			}
			fmt.Printf("Wrote %s. Fill in the database section and run entigen.\n", path)
			return nil
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("entigen %s (commit %s, built %s)\n", version, commit, date)
		},
	}

	rootCmd.AddCommand(initCmd, versionCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger() zerolog.Logger {
	writer := zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
		w.TimeFormat = time.RFC3339
	})
	return zerolog.New(writer).With().Timestamp().Logger()
}
