package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arma-type-things/reforgerconf/pkg/cli"
	"github.com/arma-type-things/reforgerconf/pkg/server"
	"github.com/arma-type-things/reforgerconf/pkg/validate"
)

var newFlags struct {
	output        string
	name          string
	scenario      string
	bindAddress   string
	bindPort      int
	publicAddress string
	maxPlayers    int
	gamePassword  string
	adminPassword string
	rconPassword  string
	crossPlatform bool
	hidden        bool
	mods          []string
	force         bool
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Generate a server configuration",
	Long: `Generate a server configuration from flags.

Unset flags keep the documented server defaults. The result is
validated before it is written; a configuration that would fail
validation is not written.

Examples:
  # Default configuration
  reforgerconf new --output server.json

  # Customized session
  reforgerconf new \
    --name "Weekend Conflict" \
    --max-players 96 \
    --admin-password hunter2 \
    --cross-platform \
    --output server.json

  # With workshop mods
  reforgerconf new --mod 591AF5BDA9F7CE8B --mod 5965550F24A0C152 --output server.json

  # YAML for hand editing
  reforgerconf new --output server.yaml`,
	RunE: runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().StringVarP(&newFlags.output, "output", "o", "server.json", "output file (.json or .yaml)")
	newCmd.Flags().StringVar(&newFlags.name, "name", server.DefaultServerName, "server name")
	newCmd.Flags().StringVar(&newFlags.scenario, "scenario", server.DefaultScenarioID, "scenario identifier")
	newCmd.Flags().StringVar(&newFlags.bindAddress, "bind-address", server.DefaultBindAddress, "address to bind")
	newCmd.Flags().IntVar(&newFlags.bindPort, "bind-port", server.DefaultBindPort, "game port")
	newCmd.Flags().StringVar(&newFlags.publicAddress, "public-address", "", "address advertised to the backend")
	newCmd.Flags().IntVar(&newFlags.maxPlayers, "max-players", server.DefaultMaxPlayers, "player slots")
	newCmd.Flags().StringVar(&newFlags.gamePassword, "password", "", "session join password")
	newCmd.Flags().StringVar(&newFlags.adminPassword, "admin-password", "", "in-game admin password")
	newCmd.Flags().StringVar(&newFlags.rconPassword, "rcon-password", "", "RCON password (empty disables RCON)")
	newCmd.Flags().BoolVar(&newFlags.crossPlatform, "cross-platform", false, "allow console players to join")
	newCmd.Flags().BoolVar(&newFlags.hidden, "hidden", false, "hide the server from the browser")
	newCmd.Flags().StringSliceVar(&newFlags.mods, "mod", nil, "workshop URL or mod identifier (repeatable)")
	newCmd.Flags().BoolVarP(&newFlags.force, "force", "f", false, "overwrite an existing file")
}

func runNew(cmd *cobra.Command, args []string) error {
	b := server.NewBuilder().
		WithName(newFlags.name).
		WithBindEndpoint(newFlags.bindAddress, newFlags.bindPort).
		WithScenario(newFlags.scenario).
		WithMaxPlayers(newFlags.maxPlayers).
		WithVisible(!newFlags.hidden)

	if newFlags.publicAddress != "" {
		b.WithPublicEndpoint(newFlags.publicAddress, newFlags.bindPort)
	}
	if newFlags.gamePassword != "" {
		b.WithGamePassword(newFlags.gamePassword)
	}
	if newFlags.adminPassword != "" {
		b.WithAdminPassword(newFlags.adminPassword)
	}
	if newFlags.rconPassword != "" {
		b.WithRCON(newFlags.rconPassword)
	}
	if newFlags.crossPlatform {
		b.WithCrossPlatform(server.PlatformPC, server.PlatformXbox, server.PlatformPlayStation)
	}

	for _, arg := range newFlags.mods {
		m, err := modFromArg(arg)
		if err != nil {
			return cli.NewCommandError("new", err)
		}
		b.WithMods(m)
	}

	cfg, err := b.Build()
	if err != nil {
		return cli.NewCommandError("new", err)
	}

	status := cli.NewStatus(os.Stdout)

	// Refuse to write a configuration the validator would reject.
	res := validate.Parse(cfg, nil)
	for _, e := range res.ValidationErrors {
		status.Failf("Error: %s: %s [%s]", e.Field, e.Message, e.Code)
	}
	for _, w := range res.Warnings {
		status.Warnf("Warning: %s [%s]", w.Message, w.Code)
	}
	if !res.Success {
		return cli.NewCommandError("new", &cli.ValidationFailedError{
			Errors:   len(res.ValidationErrors),
			Warnings: len(res.Warnings),
		})
	}

	if err := writeConfigFile(newFlags.output, cfg, newFlags.force); err != nil {
		return err
	}
	status.Okf("Configuration written to %s", newFlags.output)
	return nil
}

// writeConfigFile saves cfg at path, refusing to overwrite unless
// force is set.
func writeConfigFile(path string, cfg *server.Config, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return cli.NewConfigError(path, "file already exists (use --force to overwrite)")
		}
	}
	if err := server.SaveFile(path, cfg); err != nil {
		return cli.NewConfigError(path, fmt.Sprintf("failed to write: %v", err))
	}
	return nil
}
