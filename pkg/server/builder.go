package server

import "fmt"

// Builder provides a fluent API for assembling a Config. It starts from
// Default() and applies selective overrides. Steps that reject their
// input record the first failure; Build returns it.
//
// The builder does not run the validation engine. Callers that need the
// full rule set should validate the built configuration separately.
type Builder struct {
	cfg *Config
	err error
}

// NewBuilder creates a Builder seeded with the default configuration.
func NewBuilder() *Builder {
	return &Builder{cfg: Default()}
}

// Build returns the assembled configuration, or the first error a
// builder step recorded.
func (b *Builder) Build() (*Config, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.cfg, nil
}

// WithName sets the server name shown in the browser.
func (b *Builder) WithName(name string) *Builder {
	b.cfg.Game.Name = name
	return b
}

// WithBindEndpoint sets the bind address and game port. The public port
// follows the bind port; use WithPublicEndpoint afterwards when the
// server sits behind NAT.
func (b *Builder) WithBindEndpoint(address string, port int) *Builder {
	b.cfg.BindAddress = address
	b.cfg.BindPort = port
	b.cfg.PublicPort = port
	return b
}

// WithPublicEndpoint sets the advertised address and port.
func (b *Builder) WithPublicEndpoint(address string, port int) *Builder {
	b.cfg.PublicAddress = address
	b.cfg.PublicPort = port
	return b
}

// WithScenario sets the scenario. Malformed identifiers are recorded as
// a build error.
func (b *Builder) WithScenario(scenarioID string) *Builder {
	if !IsValidScenarioID(scenarioID) {
		b.fail(fmt.Errorf("malformed scenario identifier %q: expected {GUID}Path form", scenarioID))
		return b
	}
	b.cfg.Game.ScenarioID = scenarioID
	return b
}

// WithMaxPlayers sets the player slot count.
func (b *Builder) WithMaxPlayers(n int) *Builder {
	b.cfg.Game.MaxPlayers = n
	return b
}

// WithGamePassword protects the session with a join password.
func (b *Builder) WithGamePassword(password string) *Builder {
	b.cfg.Game.Password = password
	return b
}

// WithAdminPassword sets the in-game admin password.
func (b *Builder) WithAdminPassword(password string) *Builder {
	b.cfg.Game.PasswordAdmin = password
	return b
}

// WithAdmins replaces the admin identity list.
func (b *Builder) WithAdmins(ids ...string) *Builder {
	b.cfg.Game.Admins = ids
	return b
}

// WithVisible controls server browser listing.
func (b *Builder) WithVisible(visible bool) *Builder {
	b.cfg.Game.Visible = visible
	return b
}

// WithCrossPlatform enables cross-platform play for the given
// platforms. Passing no platforms keeps the current list.
func (b *Builder) WithCrossPlatform(platforms ...string) *Builder {
	b.cfg.Game.CrossPlatform = true
	if len(platforms) > 0 {
		b.cfg.Game.SupportedPlatforms = platforms
	}
	return b
}

// WithRCON enables the remote console with the given password.
func (b *Builder) WithRCON(password string) *Builder {
	b.cfg.RCON.Password = password
	return b
}

// WithRCONPermission sets the RCON access level.
func (b *Builder) WithRCONPermission(permission string) *Builder {
	b.cfg.RCON.Permission = permission
	return b
}

// WithMods appends mods to the load order.
func (b *Builder) WithMods(mods ...Mod) *Builder {
	b.cfg.Game.Mods = append(b.cfg.Game.Mods, mods...)
	return b
}

// WithModIDs appends bare workshop identifiers to the load order.
func (b *Builder) WithModIDs(ids ...string) *Builder {
	for _, id := range ids {
		b.cfg.Game.Mods = append(b.cfg.Game.Mods, Mod{ModID: id})
	}
	return b
}

// WithViewDistances sets the server and network view distances.
func (b *Builder) WithViewDistances(serverMax, network int) *Builder {
	b.cfg.Game.Properties.ServerMaxViewDistance = serverMax
	b.cfg.Game.Properties.NetworkViewDistance = network
	return b
}

// WithGrassDistance sets the forced minimum grass render distance.
func (b *Builder) WithGrassDistance(distance int) *Builder {
	b.cfg.Game.Properties.ServerMinGrassDistance = distance
	return b
}

// WithAILimit caps the AI character count.
func (b *Builder) WithAILimit(limit int) *Builder {
	b.cfg.Operating.AILimit = limit
	return b
}

// WithJoinQueue sets the join queue size.
func (b *Builder) WithJoinQueue(maxSize int) *Builder {
	b.cfg.Operating.JoinQueue.MaxSize = maxSize
	return b
}

// WithMissionHeader sets one mission header property.
func (b *Builder) WithMissionHeader(key string, value any) *Builder {
	if b.cfg.Game.Properties.MissionHeader == nil {
		b.cfg.Game.Properties.MissionHeader = make(map[string]any)
	}
	b.cfg.Game.Properties.MissionHeader[key] = value
	return b
}

// fail records the first error; later failures are dropped.
func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}
