package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/arma-type-things/reforgerconf/pkg/cli"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "reforgerconf",
	Short: "Arma Reforger dedicated server configuration toolkit",
	Long: `Reforgerconf validates, generates, and converts Arma Reforger
dedicated server configurations (server.json).

Configurations go through a two-phase check:
  - Structural: the document is shaped like a server configuration
  - Business rules: values the server would reject are errors, values
    that degrade the session are warnings, each with a stable code

Exit status is 0 when the configuration is deployable (warnings are
allowed), 1 when validation fails, and 2 on usage errors.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitCode(err))
	}
}

// setupLogging points slog at stderr so command output on stdout stays
// machine-readable. Watch mode is the main consumer.
func setupLogging() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
