package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arma-type-things/reforgerconf/internal/wizard"
	"github.com/arma-type-things/reforgerconf/pkg/cli"
	"github.com/arma-type-things/reforgerconf/pkg/validate"
)

var wizardFlags struct {
	output string
	force  bool
}

var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive configuration setup",
	Long: `Set up a server configuration interactively.

The wizard walks through the common session settings (name, endpoint,
scenario, capacity, passwords) with the defaults pre-filled, assembles
the configuration, and writes it out. Everything else keeps the
documented server defaults and can be edited afterwards.`,
	RunE: runWizard,
}

func init() {
	rootCmd.AddCommand(wizardCmd)

	wizardCmd.Flags().StringVarP(&wizardFlags.output, "output", "o", "server.json", "output file (.json or .yaml)")
	wizardCmd.Flags().BoolVarP(&wizardFlags.force, "force", "f", false, "overwrite an existing file")
}

func runWizard(cmd *cobra.Command, args []string) error {
	cfg, err := wizard.Run()
	if err != nil {
		return cli.NewCommandError("wizard", err)
	}
	if cfg == nil {
		fmt.Println("Setup cancelled.")
		return nil
	}

	status := cli.NewStatus(os.Stdout)
	if err := writeConfigFile(wizardFlags.output, cfg, wizardFlags.force); err != nil {
		return err
	}
	status.Okf("Configuration written to %s", wizardFlags.output)

	// The wizard output is valid by construction; surface advisories
	// like an empty admin password all the same.
	for _, w := range validate.Parse(cfg, nil).Warnings {
		status.Warnf("Warning: %s [%s]", w.Message, w.Code)
	}
	return nil
}
