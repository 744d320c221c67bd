package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arma-type-things/reforgerconf/pkg/cli"
	"github.com/arma-type-things/reforgerconf/pkg/server"
)

var convertFlags struct {
	force bool
}

var convertCmd = &cobra.Command{
	Use:   "convert IN OUT",
	Short: "Convert a configuration between JSON and YAML",
	Long: `Convert a server configuration between JSON and YAML.

The output format follows the output file extension. The content is
carried over as-is; run validate on the result to check it.

Examples:
  # YAML authoring copy to the deployable JSON
  reforgerconf convert server.yaml server.json

  # JSON back to YAML for editing
  reforgerconf convert server.json server.yaml`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().BoolVarP(&convertFlags.force, "force", "f", false, "overwrite an existing file")
}

func runConvert(cmd *cobra.Command, args []string) error {
	in, out := args[0], args[1]

	cfg, err := server.LoadFile(in)
	if err != nil {
		return cli.NewConfigError(in, fmt.Sprintf("failed to load: %v", err))
	}

	if err := writeConfigFile(out, cfg, convertFlags.force); err != nil {
		return err
	}

	cli.NewStatus(os.Stdout).Okf("Wrote %s (%s)", out, server.FormatForPath(out))
	return nil
}
