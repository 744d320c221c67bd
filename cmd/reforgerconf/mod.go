package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arma-type-things/reforgerconf/pkg/cli"
	"github.com/arma-type-things/reforgerconf/pkg/mods"
	"github.com/arma-type-things/reforgerconf/pkg/server"
)

var modCmd = &cobra.Command{
	Use:   "mod",
	Short: "Manage workshop mods in a configuration",
}

var modAddCmd = &cobra.Command{
	Use:   "add FILE URL_OR_ID...",
	Short: "Add workshop mods to a configuration",
	Long: `Add workshop mods to a configuration by URL or identifier.

Workshop URLs are resolved to their mod identifier; a bare identifier
is accepted as-is. Mods already present are skipped, comparing
identifiers case-insensitively.

Examples:
  # By workshop URL
  reforgerconf mod add server.json https://reforger.armaplatform.com/workshop/591AF5BDA9F7CE8B-ACE

  # By identifier
  reforgerconf mod add server.json 591AF5BDA9F7CE8B 5965550F24A0C152`,
	Args: cobra.MinimumNArgs(2),
	RunE: runModAdd,
}

var modListFlags struct {
	format string
}

var modListCmd = &cobra.Command{
	Use:   "list FILE",
	Short: "List workshop mods in a configuration",
	Args:  cobra.ExactArgs(1),
	RunE:  runModList,
}

func init() {
	rootCmd.AddCommand(modCmd)
	modCmd.AddCommand(modAddCmd)
	modCmd.AddCommand(modListCmd)

	modListCmd.Flags().StringVar(&modListFlags.format, "format", "text", "output format: text, json")
}

// modFromArg accepts either a bare mod identifier or a workshop URL.
func modFromArg(arg string) (server.Mod, error) {
	if mods.IsValidID(arg) {
		return server.Mod{ModID: strings.ToUpper(arg)}, nil
	}
	m, err := mods.FromURL(arg)
	if err != nil {
		return server.Mod{}, fmt.Errorf("%q is neither a mod identifier nor a workshop URL: %w", arg, err)
	}
	return m, nil
}

func runModAdd(cmd *cobra.Command, args []string) error {
	path := args[0]
	cfg, err := server.LoadFile(path)
	if err != nil {
		return cli.NewConfigError(path, fmt.Sprintf("failed to load: %v", err))
	}

	status := cli.NewStatus(os.Stdout)

	seen := make(map[string]bool, len(cfg.Game.Mods))
	for _, m := range cfg.Game.Mods {
		seen[strings.ToUpper(m.ModID)] = true
	}

	added := 0
	for _, arg := range args[1:] {
		m, err := modFromArg(arg)
		if err != nil {
			return cli.NewCommandError("mod add", err)
		}
		key := strings.ToUpper(m.ModID)
		if seen[key] {
			status.Warnf("Skipped %s (already present)", m.ModID)
			continue
		}
		seen[key] = true
		cfg.Game.Mods = append(cfg.Game.Mods, m)
		if m.Name != "" {
			status.Okf("Added %s (%s)", m.ModID, m.Name)
		} else {
			status.Okf("Added %s", m.ModID)
		}
		added++
	}

	if added == 0 {
		status.Printf("Nothing to add")
		return nil
	}

	if err := server.SaveFile(path, cfg); err != nil {
		return cli.NewConfigError(path, fmt.Sprintf("failed to write: %v", err))
	}
	status.Printf("%d mod(s) added to %s", added, path)
	return nil
}

func runModList(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseOutputFormat(modListFlags.format)
	if err != nil {
		return err
	}

	path := args[0]
	cfg, err := server.LoadFile(path)
	if err != nil {
		return cli.NewConfigError(path, fmt.Sprintf("failed to load: %v", err))
	}

	if format == cli.FormatJSON {
		return cli.NewFormatter(format).FormatTo(os.Stdout, cfg.Game.Mods)
	}

	status := cli.NewStatus(os.Stdout)
	if len(cfg.Game.Mods) == 0 {
		status.Printf("No mods in %s", path)
		return nil
	}

	status.Printf("Mods in %s (%d):", path, len(cfg.Game.Mods))
	for _, m := range cfg.Game.Mods {
		name := m.Name
		if name == "" {
			name = "-"
		}
		status.Printf("  %-16s  %-30s %s", m.ModID, name, mods.WorkshopURL(m.ModID))
	}
	return nil
}
