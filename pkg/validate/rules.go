package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/arma-type-things/reforgerconf/pkg/mods"
	"github.com/arma-type-things/reforgerconf/pkg/server"
)

// Rule thresholds. Error bounds are hard limits the server enforces;
// warning thresholds mark the point where operators start paying for a
// setting in tick rate or bandwidth.
const (
	minRCONPasswordLen = 3
	minRCONClients     = 1
	maxRCONClients     = 16

	maxServerNameLen = 100
	maxAdminEntries  = 20

	minViewDistance        = 500
	maxViewDistance        = 10000
	recommendedMaxViewDist = 2500

	minNetworkViewDistance = 500
	maxNetworkViewDistance = 5000

	minGrassDistance      = 50
	maxGrassDistance      = 150
	grassPerformanceLimit = 100

	minSlotReservationSecs = 5
	maxSlotReservationSecs = 300

	maxJoinQueueSize = 50

	recommendedMaxPlayers = 96
	aiPerformanceLimit    = 80
)

// wildcardBindAddress is the bind that listens on every interface; a
// public address is expected to differ from it.
const wildcardBindAddress = "0.0.0.0"

// steam64Pattern matches a Steam64 account identifier.
var steam64Pattern = regexp.MustCompile(`^\d{17}$`)

// ValidateConfig runs every business rule over a typed configuration
// and returns the collected findings. The pass is pure: it never
// panics on field values, touches no shared state, and walks the
// sections in a fixed order (rcon, game, game properties, operating,
// mods, network), so the findings come back in a stable order.
func ValidateConfig(cfg *server.Config) *Result {
	res := &Result{}
	validateRCON(&cfg.RCON, res)
	validateGame(&cfg.Game, res)
	validateGameProperties(&cfg.Game.Properties, res)
	validateOperating(&cfg.Operating, res)
	validateMods(cfg.Game.Mods, res)
	validateNetwork(cfg, res)
	return res
}

// validateRCON checks the remote console section. An empty password
// means RCON is disabled, and a disabled section is not inspected.
func validateRCON(rcon *server.RCONConfig, res *Result) {
	if rcon.Password == "" {
		return
	}

	if n := len(rcon.Password); n < minRCONPasswordLen {
		res.addError(Error{
			Code:    ErrPasswordTooShort,
			Message: fmt.Sprintf("RCON password must be at least %d characters", minRCONPasswordLen),
			Field:   "rcon.password",
			Value:   n,
			Range:   fmt.Sprintf("at least %d characters", minRCONPasswordLen),
		})
		res.addWarning(Warning{
			Code:    WarnWeakRCONPassword,
			Message: fmt.Sprintf("RCON password is shorter than %d characters", minRCONPasswordLen),
			Field:   "rcon.password",
		})
	}
	if strings.Contains(rcon.Password, " ") {
		res.addError(Error{
			Code:    ErrPasswordContainsSpaces,
			Message: "RCON password must not contain spaces",
			Field:   "rcon.password",
		})
	}
	if rcon.Permission != "" &&
		rcon.Permission != server.RCONPermissionAdmin &&
		rcon.Permission != server.RCONPermissionMonitor {
		res.addError(Error{
			Code:    ErrInvalidPermission,
			Message: fmt.Sprintf("RCON permission must be %q or %q", server.RCONPermissionAdmin, server.RCONPermissionMonitor),
			Field:   "rcon.permission",
			Value:   rcon.Permission,
			Range:   fmt.Sprintf("%q or %q", server.RCONPermissionAdmin, server.RCONPermissionMonitor),
		})
	}
	if rcon.MaxClients != 0 && (rcon.MaxClients < minRCONClients || rcon.MaxClients > maxRCONClients) {
		res.addError(Error{
			Code:    ErrMaxClientsOutOfRange,
			Message: fmt.Sprintf("RCON maxClients must be between %d and %d", minRCONClients, maxRCONClients),
			Field:   "rcon.maxClients",
			Value:   rcon.MaxClients,
			Range:   fmt.Sprintf("%d to %d", minRCONClients, maxRCONClients),
		})
	}
}

// validateGame checks session identity, access, platforms, and player
// capacity.
func validateGame(game *server.GameConfig, res *Result) {
	if n := len(game.Name); n > maxServerNameLen {
		res.addError(Error{
			Code:    ErrNameTooLong,
			Message: fmt.Sprintf("server name must be at most %d characters", maxServerNameLen),
			Field:   "game.name",
			Value:   n,
			Range:   fmt.Sprintf("at most %d characters", maxServerNameLen),
		})
	}

	if strings.Contains(game.PasswordAdmin, " ") {
		res.addError(Error{
			Code:    ErrAdminPasswordContainsSpaces,
			Message: "admin password must not contain spaces",
			Field:   "game.passwordAdmin",
		})
	}
	if strings.TrimSpace(game.PasswordAdmin) == "" {
		res.addWarning(Warning{
			Code:    WarnEmptyAdminPassword,
			Message: "admin password is empty, in-game admin access is disabled",
			Field:   "game.passwordAdmin",
		})
	}

	if n := len(game.Admins); n > maxAdminEntries {
		res.addError(Error{
			Code:    ErrAdminsListTooLong,
			Message: fmt.Sprintf("admins list must have at most %d entries", maxAdminEntries),
			Field:   "game.admins",
			Value:   n,
			Range:   fmt.Sprintf("at most %d entries", maxAdminEntries),
		})
	}
	for i, admin := range game.Admins {
		if !isAdminIdentity(admin) {
			res.addWarning(Warning{
				Code:    WarnUnrecognizedAdminID,
				Message: fmt.Sprintf("admin entry %q is neither an identity UUID nor a Steam64 ID", admin),
				Field:   fmt.Sprintf("game.admins[%d]", i),
				Value:   admin,
			})
		}
	}

	for i, platform := range game.SupportedPlatforms {
		switch platform {
		case server.PlatformPC, server.PlatformXbox, server.PlatformPlayStation:
		default:
			res.addError(Error{
				Code:    ErrInvalidSupportedPlatform,
				Message: fmt.Sprintf("unknown platform %q", platform),
				Field:   fmt.Sprintf("game.supportedPlatforms[%d]", i),
				Value:   platform,
				Range:   fmt.Sprintf("%q, %q or %q", server.PlatformPC, server.PlatformXbox, server.PlatformPlayStation),
			})
		}
	}

	if game.MaxPlayers > recommendedMaxPlayers {
		res.addWarning(Warning{
			Code:        WarnPlayerCountExceedsRecommended,
			Message:     fmt.Sprintf("more than %d players degrades server performance", recommendedMaxPlayers),
			Field:       "game.maxPlayers",
			Value:       game.MaxPlayers,
			Recommended: recommendedMaxPlayers,
		})
	}
}

// validateGameProperties checks view distances and grass rendering.
// The warning rules are independent of the error rules; a value can
// raise both.
func validateGameProperties(p *server.GameProperties, res *Result) {
	if p.ServerMaxViewDistance < minViewDistance || p.ServerMaxViewDistance > maxViewDistance {
		res.addError(Error{
			Code:    ErrServerViewDistanceOutOfRange,
			Message: fmt.Sprintf("serverMaxViewDistance must be between %d and %d", minViewDistance, maxViewDistance),
			Field:   "game.gameProperties.serverMaxViewDistance",
			Value:   p.ServerMaxViewDistance,
			Range:   fmt.Sprintf("%d to %d", minViewDistance, maxViewDistance),
		})
	}
	if p.NetworkViewDistance < minNetworkViewDistance || p.NetworkViewDistance > maxNetworkViewDistance {
		res.addError(Error{
			Code:    ErrNetworkViewDistanceOutOfRange,
			Message: fmt.Sprintf("networkViewDistance must be between %d and %d", minNetworkViewDistance, maxNetworkViewDistance),
			Field:   "game.gameProperties.networkViewDistance",
			Value:   p.NetworkViewDistance,
			Range:   fmt.Sprintf("%d to %d", minNetworkViewDistance, maxNetworkViewDistance),
		})
	}
	if p.ServerMinGrassDistance != 0 && (p.ServerMinGrassDistance < minGrassDistance || p.ServerMinGrassDistance > maxGrassDistance) {
		res.addError(Error{
			Code:    ErrGrassDistanceInvalid,
			Message: fmt.Sprintf("serverMinGrassDistance must be 0 (off) or between %d and %d", minGrassDistance, maxGrassDistance),
			Field:   "game.gameProperties.serverMinGrassDistance",
			Value:   p.ServerMinGrassDistance,
			Range:   fmt.Sprintf("0 (off) or %d to %d", minGrassDistance, maxGrassDistance),
		})
	}

	if p.ServerMaxViewDistance > recommendedMaxViewDist {
		res.addWarning(Warning{
			Code:        WarnViewDistanceExceedsRecommended,
			Message:     fmt.Sprintf("serverMaxViewDistance above %d degrades server performance", recommendedMaxViewDist),
			Field:       "game.gameProperties.serverMaxViewDistance",
			Value:       p.ServerMaxViewDistance,
			Recommended: recommendedMaxViewDist,
		})
	}
	if p.ServerMaxViewDistance > maxViewDistance {
		res.addWarning(Warning{
			Code:        WarnViewDistanceExceedsMaximum,
			Message:     fmt.Sprintf("serverMaxViewDistance above %d is not supported by the engine", maxViewDistance),
			Field:       "game.gameProperties.serverMaxViewDistance",
			Value:       p.ServerMaxViewDistance,
			Recommended: maxViewDistance,
		})
	}
	if p.ServerMaxViewDistance < minViewDistance {
		res.addWarning(Warning{
			Code:        WarnViewDistanceBelowMinimum,
			Message:     fmt.Sprintf("serverMaxViewDistance below %d makes the game hard to play", minViewDistance),
			Field:       "game.gameProperties.serverMaxViewDistance",
			Value:       p.ServerMaxViewDistance,
			Recommended: minViewDistance,
		})
	}
	if p.NetworkViewDistance > p.ServerMaxViewDistance {
		res.addWarning(Warning{
			Code:    WarnNetworkViewDistanceMismatch,
			Message: "networkViewDistance exceeds serverMaxViewDistance, the excess is never replicated",
			Field:   "game.gameProperties.networkViewDistance",
			Value:   p.NetworkViewDistance,
			// Keep replication a notch below the render cap.
			Recommended: p.ServerMaxViewDistance * 9 / 10,
		})
	}
	if p.ServerMinGrassDistance > grassPerformanceLimit {
		res.addWarning(Warning{
			Code:        WarnGrassDistancePerformance,
			Message:     fmt.Sprintf("serverMinGrassDistance above %d degrades client performance", grassPerformanceLimit),
			Field:       "game.gameProperties.serverMinGrassDistance",
			Value:       p.ServerMinGrassDistance,
			Recommended: grassPerformanceLimit,
		})
	}
}

// validateOperating checks runtime tuning. A zero slot reservation
// timeout means "engine default" and is not a finding; a non-positive
// AI limit means unlimited and is never warned about.
func validateOperating(op *server.OperatingConfig, res *Result) {
	if op.SlotReservationTimeout != 0 &&
		(op.SlotReservationTimeout < minSlotReservationSecs || op.SlotReservationTimeout > maxSlotReservationSecs) {
		res.addError(Error{
			Code:    ErrSlotReservationTimeoutRange,
			Message: fmt.Sprintf("slotReservationTimeout must be between %d and %d seconds", minSlotReservationSecs, maxSlotReservationSecs),
			Field:   "operating.slotReservationTimeout",
			Value:   op.SlotReservationTimeout,
			Range:   fmt.Sprintf("%d to %d seconds", minSlotReservationSecs, maxSlotReservationSecs),
		})
	}
	if op.JoinQueue.MaxSize < 0 || op.JoinQueue.MaxSize > maxJoinQueueSize {
		res.addError(Error{
			Code:    ErrJoinQueueMaxSizeOutOfRange,
			Message: fmt.Sprintf("joinQueue.maxSize must be between 0 and %d", maxJoinQueueSize),
			Field:   "operating.joinQueue.maxSize",
			Value:   op.JoinQueue.MaxSize,
			Range:   fmt.Sprintf("0 to %d", maxJoinQueueSize),
		})
	}
	if op.AILimit > aiPerformanceLimit {
		res.addWarning(Warning{
			Code:        WarnAILimitPerformance,
			Message:     fmt.Sprintf("aiLimit above %d degrades server performance", aiPerformanceLimit),
			Field:       "operating.aiLimit",
			Value:       op.AILimit,
			Recommended: aiPerformanceLimit,
		})
	}
}

// validateMods checks the workshop load order. Every malformed
// identifier is reported; a repeated identifier is reported from its
// second occurrence on, so the first entry stays clean.
func validateMods(entries []server.Mod, res *Result) {
	seen := make(map[string]bool, len(entries))
	for i, m := range entries {
		field := fmt.Sprintf("game.mods[%d].modId", i)
		if !mods.IsValidID(m.ModID) {
			res.addWarning(Warning{
				Code:    WarnInvalidModIDFormat,
				Message: fmt.Sprintf("mod identifier %q is not 16 hexadecimal characters", m.ModID),
				Field:   field,
				Value:   m.ModID,
			})
		}
		key := strings.ToUpper(m.ModID)
		if seen[key] {
			res.addWarning(Warning{
				Code:    WarnDuplicateModID,
				Message: fmt.Sprintf("mod identifier %q appears more than once", m.ModID),
				Field:   field,
				Value:   m.ModID,
			})
			continue
		}
		seen[key] = true
	}
}

// validateNetwork checks cross-field consistency of the endpoints.
// The address comparison is a plain string heuristic, not a routing
// check: a wildcard bind means the public address is free to differ,
// and a public address carrying "local" is taken as deliberate.
func validateNetwork(cfg *server.Config, res *Result) {
	if cfg.BindAddress != wildcardBindAddress &&
		cfg.PublicAddress != "" &&
		cfg.PublicAddress != cfg.BindAddress &&
		!strings.Contains(cfg.PublicAddress, "local") {
		res.addWarning(Warning{
			Code:        WarnAddressMismatch,
			Message:     "publicAddress does not match bindAddress",
			Field:       "publicAddress",
			Value:       cfg.PublicAddress,
			Recommended: cfg.BindAddress,
		})
	}

	var conflict int
	var found bool
	switch {
	case cfg.BindPort == cfg.A2S.Port || cfg.BindPort == cfg.RCON.Port:
		conflict, found = cfg.BindPort, true
	case cfg.A2S.Port == cfg.RCON.Port:
		conflict, found = cfg.A2S.Port, true
	}
	if found {
		res.addWarning(Warning{
			Code:    WarnPortConflict,
			Message: "game, A2S and RCON ports must be distinct",
			Value:   conflict,
		})
	}
}

// isAdminIdentity reports whether an admin entry looks like either of
// the identity forms the backend accepts.
func isAdminIdentity(entry string) bool {
	if steam64Pattern.MatchString(entry) {
		return true
	}
	_, err := uuid.Parse(entry)
	return err == nil
}
