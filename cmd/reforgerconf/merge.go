package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arma-type-things/reforgerconf/pkg/cli"
	"github.com/arma-type-things/reforgerconf/pkg/server"
	"github.com/arma-type-things/reforgerconf/pkg/validate"
)

var mergeFlags struct {
	output string
	force  bool
}

var mergeCmd = &cobra.Command{
	Use:   "merge BASE OVERLAY...",
	Short: "Layer overlay configurations over a base",
	Long: `Merge one or more overlay configurations over a base.

Overlays apply left to right; a value set in a later file wins. Fields
the overlays leave at their zero value keep the base's value, so an
overlay only needs the fields it changes.

Without --output the merged configuration prints to stdout as JSON.

Examples:
  # Environment overlay over a shared base
  reforgerconf merge base.json production.json --output server.json

  # Inspect the merge result
  reforgerconf merge base.json event-weekend.json`,
	Args: cobra.MinimumNArgs(2),
	RunE: runMerge,
}

func init() {
	rootCmd.AddCommand(mergeCmd)

	mergeCmd.Flags().StringVarP(&mergeFlags.output, "output", "o", "", "output file (default: stdout)")
	mergeCmd.Flags().BoolVarP(&mergeFlags.force, "force", "f", false, "overwrite an existing file")
}

func runMerge(cmd *cobra.Command, args []string) error {
	cfg, err := server.MergeFiles(args...)
	if err != nil {
		return cli.NewCommandError("merge", err)
	}

	if mergeFlags.output == "" {
		data, err := server.Encode(cfg, server.FormatJSON)
		if err != nil {
			return cli.NewCommandError("merge", err)
		}
		fmt.Print(string(data))
		return nil
	}

	if err := writeConfigFile(mergeFlags.output, cfg, mergeFlags.force); err != nil {
		return err
	}

	status := cli.NewStatus(os.Stdout)
	status.Okf("Merged %d file(s) into %s", len(args), mergeFlags.output)

	// A merged result can combine individually fine values into a
	// violation, so flag it here rather than leaving it for deploy.
	if res := validate.Parse(cfg, nil); !res.Success {
		status.Warnf("Merged configuration has %d validation error(s); run: reforgerconf validate %s",
			len(res.ValidationErrors)+len(res.Errors), mergeFlags.output)
	}
	return nil
}
