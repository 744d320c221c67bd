package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/arma-type-things/reforgerconf/pkg/cli"
	"github.com/arma-type-things/reforgerconf/pkg/validate"
	"github.com/arma-type-things/reforgerconf/pkg/watch"
)

var validateFlags struct {
	format         string
	strict         bool
	structuralOnly bool
	watch          bool
	ignoreErrors   []string
	ignoreWarnings []string
}

var validateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Validate a server configuration",
	Long: `Validate an Arma Reforger server configuration file.

The file goes through both validation phases:
  - Structural: JSON/YAML decoding, required sections, coarse ranges
  - Business rules: coded errors for values the server rejects, coded
    warnings for values that degrade the session

Warnings do not fail validation unless --strict is given. Individual
finding codes can be suppressed for pipelines that accept a known
violation.

Examples:
  # Validate a configuration
  reforgerconf validate server.json

  # JSON output for CI/CD
  reforgerconf validate server.json --format json

  # Treat warnings as errors
  reforgerconf validate server.json --strict

  # Accept a known finding
  reforgerconf validate server.json --ignore-warning EMPTY_ADMIN_PASSWORD

  # Re-validate on every save
  reforgerconf validate server.json --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&validateFlags.format, "format", "text", "output format: text, json")
	validateCmd.Flags().BoolVar(&validateFlags.strict, "strict", false, "treat warnings as errors")
	validateCmd.Flags().BoolVar(&validateFlags.structuralOnly, "structural-only", false, "stop after the structural phase")
	validateCmd.Flags().BoolVarP(&validateFlags.watch, "watch", "w", false, "re-validate whenever the file changes")
	validateCmd.Flags().StringSliceVar(&validateFlags.ignoreErrors, "ignore-error", nil, "error code to suppress (repeatable)")
	validateCmd.Flags().StringSliceVar(&validateFlags.ignoreWarnings, "ignore-warning", nil, "warning code to suppress (repeatable)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseOutputFormat(validateFlags.format)
	if err != nil {
		return err
	}

	opts := &validate.Options{
		SkipValidation: validateFlags.structuralOnly,
	}
	for _, code := range validateFlags.ignoreErrors {
		opts.IgnoreErrors = append(opts.IgnoreErrors, validate.ErrorCode(code))
	}
	for _, code := range validateFlags.ignoreWarnings {
		opts.IgnoreWarnings = append(opts.IgnoreWarnings, validate.WarningCode(code))
	}

	path := args[0]
	if validateFlags.watch {
		return watchAndValidate(path, opts, format)
	}

	res, err := validate.ParseFile(path, opts)
	if err != nil {
		return cli.NewConfigError(path, err.Error())
	}
	return reportResult(path, res, format)
}

// reportResult renders a parse result and converts failure into the
// exit-code-carrying error.
func reportResult(path string, res *validate.ParseResult, format cli.OutputFormat) error {
	if format == cli.FormatJSON {
		if err := cli.NewFormatter(format).FormatTo(os.Stdout, res); err != nil {
			return err
		}
	} else {
		renderText(path, res)
	}

	errorCount := len(res.Errors) + len(res.ValidationErrors)
	warningCount := len(res.Warnings)

	if errorCount > 0 || (validateFlags.strict && warningCount > 0) {
		return cli.NewCommandError("validate", &cli.ValidationFailedError{
			Errors:   errorCount,
			Warnings: warningCount,
		})
	}
	return nil
}

func renderText(path string, res *validate.ParseResult) {
	status := cli.NewStatus(os.Stdout)
	status.Printf("Validating %s...", path)

	if len(res.Errors) == 0 {
		status.Okf("Structure valid")
	}
	for _, msg := range res.Errors {
		status.Failf("Error: %s", msg)
	}

	if res.Success && len(res.Warnings) == 0 && !validateFlags.structuralOnly {
		status.Okf("All rules satisfied")
	}
	for _, e := range res.ValidationErrors {
		line := fmt.Sprintf("Error: %s", e.Message)
		if e.Field != "" {
			line = fmt.Sprintf("Error: %s: %s", e.Field, e.Message)
		}
		if e.Range != "" {
			line += fmt.Sprintf(" (expected %s)", e.Range)
		}
		status.Failf("%s [%s]", line, e.Code)
	}
	for _, w := range res.Warnings {
		line := fmt.Sprintf("Warning: %s", w.Message)
		if w.Field != "" {
			line = fmt.Sprintf("Warning: %s: %s", w.Field, w.Message)
		}
		if w.Recommended != nil {
			line += fmt.Sprintf(" (recommended: %v)", w.Recommended)
		}
		status.Warnf("%s [%s]", line, w.Code)
	}

	status.Blank()
	status.Printf("Summary:")
	status.Printf("  %d error(s), %d warning(s)", len(res.Errors)+len(res.ValidationErrors), len(res.Warnings))
	if validateFlags.strict && len(res.Warnings) > 0 {
		status.Printf("  Strict mode enabled: treating warnings as errors")
	}
}

// watchAndValidate runs one validation pass, then re-validates on
// every settled change until interrupted. The watch loop always exits
// 0 on interrupt; the per-pass outcome is on screen.
func watchAndValidate(path string, opts *validate.Options, format cli.OutputFormat) error {
	ctx := cli.SetupSignalHandler()

	w, err := watch.New(path, &watch.Options{Logger: slog.Default()})
	if err != nil {
		return cli.NewCommandError("validate", err)
	}
	defer func() { _ = w.Stop() }()

	recheck := func() error {
		res, err := validate.ParseFile(path, opts)
		if err != nil {
			return err
		}
		// Findings fail the pass, not the loop.
		_ = reportResult(path, res, format)
		return nil
	}

	if err := recheck(); err != nil {
		return cli.NewConfigError(path, err.Error())
	}

	fmt.Println("\nWatching for changes. Press Ctrl+C to stop.")
	return w.Watch(ctx, recheck)
}
