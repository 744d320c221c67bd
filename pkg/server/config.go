package server

// Config is the root configuration structure for a Reforger dedicated
// server. It mirrors the server.json layout the game executable consumes:
// network binding at the root, then the a2s, rcon, game, and operating
// sections. JSON is the canonical wire format; YAML is accepted for
// hand-authored files and converted before use.
type Config struct {
	// BindAddress is the local IP address the server binds to.
	// Use "0.0.0.0" to bind all interfaces.
	// Default: "0.0.0.0"
	BindAddress string `json:"bindAddress" yaml:"bindAddress"`

	// BindPort is the UDP game port the server binds to.
	// Must be in the range 1024-65535.
	// Default: 2001
	BindPort int `json:"bindPort" yaml:"bindPort"`

	// PublicAddress is the IP address advertised to the backend and to
	// clients. Leave empty to let the backend derive it automatically.
	PublicAddress string `json:"publicAddress" yaml:"publicAddress"`

	// PublicPort is the port advertised to the backend and to clients.
	// Usually equal to BindPort unless the server sits behind NAT.
	// Default: 2001
	PublicPort int `json:"publicPort" yaml:"publicPort"`

	// A2S contains the Steam query protocol endpoint configuration.
	A2S A2SConfig `json:"a2s" yaml:"a2s"`

	// RCON contains the remote console endpoint configuration.
	// RCON is enabled by setting a non-empty password.
	RCON RCONConfig `json:"rcon" yaml:"rcon"`

	// Game contains the session configuration: identity, scenario,
	// player limits, platforms, and mods.
	Game GameConfig `json:"game" yaml:"game"`

	// Operating contains runtime tuning for the server process.
	Operating OperatingConfig `json:"operating" yaml:"operating"`
}

// A2SConfig contains the A2S (Steam query) endpoint configuration.
// The endpoint answers server-browser queries for player counts and rules.
type A2SConfig struct {
	// Address is the IP address the A2S endpoint binds to.
	// Default: "0.0.0.0"
	Address string `json:"address" yaml:"address"`

	// Port is the UDP port for A2S queries. Must not collide with
	// BindPort or the RCON port.
	// Default: 17777
	Port int `json:"port" yaml:"port"`
}

// RCONConfig contains the remote console endpoint configuration.
// The whole section is inert while Password is empty.
type RCONConfig struct {
	// Address is the IP address the RCON endpoint binds to.
	// Default: "0.0.0.0"
	Address string `json:"address" yaml:"address"`

	// Port is the UDP port for RCON connections. Must not collide with
	// BindPort or the A2S port.
	// Default: 19999
	Port int `json:"port" yaml:"port"`

	// Password enables RCON when non-empty. Must be at least 3
	// characters and must not contain spaces.
	Password string `json:"password" yaml:"password"`

	// Permission is the access level granted to RCON clients.
	// Options: "admin" (full command access), "monitor" (read only)
	// Default: "admin"
	Permission string `json:"permission" yaml:"permission"`

	// Blacklist lists RCON commands denied to connected clients.
	Blacklist []string `json:"blacklist" yaml:"blacklist"`

	// Whitelist lists RCON commands allowed to connected clients.
	// An empty list allows everything not blacklisted.
	Whitelist []string `json:"whitelist" yaml:"whitelist"`

	// MaxClients is the maximum number of simultaneous RCON clients.
	// Must be in the range 1-16 when set; 0 keeps the engine default.
	// Default: 16
	MaxClients int `json:"maxClients" yaml:"maxClients"`
}

// GameConfig contains the session configuration.
type GameConfig struct {
	// Name is the server name shown in the server browser.
	// At most 100 characters.
	Name string `json:"name" yaml:"name"`

	// Password protects the session when non-empty. Clients must
	// supply it to join.
	Password string `json:"password" yaml:"password"`

	// PasswordAdmin is the in-game admin password. Must not contain
	// spaces. Leaving it empty disables in-game admin access.
	PasswordAdmin string `json:"passwordAdmin" yaml:"passwordAdmin"`

	// Admins lists player identities (identity UUID or Steam64 ID)
	// granted admin rights without a password. At most 20 entries.
	Admins []string `json:"admins" yaml:"admins"`

	// ScenarioID selects the scenario the server runs.
	// Format: "{ID}Path/To/Scenario.conf"
	// Default: "{ECC61978EDCC2B5A}Missions/23_Campaign.conf"
	ScenarioID string `json:"scenarioId" yaml:"scenarioId"`

	// MaxPlayers is the player slot count. Must be in the range 1-128.
	// Default: 64
	MaxPlayers int `json:"maxPlayers" yaml:"maxPlayers"`

	// Visible controls whether the server is listed in the server
	// browser.
	// Default: true
	Visible bool `json:"visible" yaml:"visible"`

	// CrossPlatform enables clients from all platforms listed in
	// SupportedPlatforms.
	// Default: false
	CrossPlatform bool `json:"crossPlatform" yaml:"crossPlatform"`

	// SupportedPlatforms lists the client platforms allowed to join.
	// Valid entries: "PLATFORM_PC", "PLATFORM_XBL", "PLATFORM_PSN".
	// Default: ["PLATFORM_PC"]
	SupportedPlatforms []string `json:"supportedPlatforms" yaml:"supportedPlatforms"`

	// Properties contains scenario and engine tuning properties.
	Properties GameProperties `json:"gameProperties" yaml:"gameProperties"`

	// Mods lists the workshop mods the server loads, in load order.
	Mods []Mod `json:"mods" yaml:"mods"`

	// ModsRequiredByDefault controls whether clients must have every
	// listed mod. Individual mods can override it.
	// Default: true
	ModsRequiredByDefault bool `json:"modsRequiredByDefault" yaml:"modsRequiredByDefault"`
}

// GameProperties contains scenario and engine tuning properties.
type GameProperties struct {
	// ServerMaxViewDistance is the server-enforced view distance cap in
	// meters. Must be in the range 500-10000; values above 2500 cost
	// server performance.
	// Default: 1600
	ServerMaxViewDistance int `json:"serverMaxViewDistance" yaml:"serverMaxViewDistance"`

	// ServerMinGrassDistance is the minimum grass render distance in
	// meters forced on clients. 0 leaves clients free; otherwise must
	// be in the range 50-150.
	// Default: 0
	ServerMinGrassDistance int `json:"serverMinGrassDistance" yaml:"serverMinGrassDistance"`

	// NetworkViewDistance is the distance in meters at which the server
	// replicates entities to clients. Must be in the range 500-5000 and
	// should stay below ServerMaxViewDistance.
	// Default: 1500
	NetworkViewDistance int `json:"networkViewDistance" yaml:"networkViewDistance"`

	// DisableThirdPerson forces the first-person camera on all clients.
	// Default: false
	DisableThirdPerson bool `json:"disableThirdPerson" yaml:"disableThirdPerson"`

	// FastValidation shortens client content validation at join time.
	// Default: true
	FastValidation bool `json:"fastValidation" yaml:"fastValidation"`

	// BattlEye enables the BattlEye anti-cheat service.
	// Default: true
	BattlEye bool `json:"battlEye" yaml:"battlEye"`

	// VONDisableUI hides the voice-over-network transmission UI.
	// Default: false
	VONDisableUI bool `json:"VONDisableUI" yaml:"VONDisableUI"`

	// VONDisableDirectSpeechUI hides the direct speech UI.
	// Default: false
	VONDisableDirectSpeechUI bool `json:"VONDisableDirectSpeechUI" yaml:"VONDisableDirectSpeechUI"`

	// VONCanTransmitCrossFaction allows voice transmission to enemy
	// factions.
	// Default: false
	VONCanTransmitCrossFaction bool `json:"VONCanTransmitCrossFaction" yaml:"VONCanTransmitCrossFaction"`

	// MissionHeader carries free-form scenario properties passed
	// through to the mission. Keys and values are scenario defined.
	MissionHeader map[string]any `json:"missionHeader,omitempty" yaml:"missionHeader,omitempty"`
}

// Mod identifies a single workshop mod.
type Mod struct {
	// ModID is the 16-character hexadecimal workshop identifier.
	ModID string `json:"modId" yaml:"modId"`

	// Name is a human-readable label. Informational only; the server
	// resolves mods by ModID.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Version pins a specific mod version. Empty means latest.
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
}

// OperatingConfig contains runtime tuning for the server process.
type OperatingConfig struct {
	// LobbyPlayerSynchronise sends the player list to the lobby so
	// joining clients see accurate counts.
	// Default: true
	LobbyPlayerSynchronise bool `json:"lobbyPlayerSynchronise" yaml:"lobbyPlayerSynchronise"`

	// PlayerSaveTime is the interval in seconds between player state
	// saves.
	// Default: 120
	PlayerSaveTime int `json:"playerSaveTime" yaml:"playerSaveTime"`

	// AILimit caps the number of AI characters. Negative values mean
	// no limit; values above 80 cost server performance.
	// Default: -1
	AILimit int `json:"aiLimit" yaml:"aiLimit"`

	// SlotReservationTimeout is how long in seconds a slot stays
	// reserved for a disconnected player. Must be in the range 5-300
	// when set; 0 keeps the engine default.
	// Default: 60
	SlotReservationTimeout int `json:"slotReservationTimeout" yaml:"slotReservationTimeout"`

	// DisableNavmeshStreaming disables navmesh streaming, loading all
	// navmeshes at start. Increases memory use.
	// Default: false
	DisableNavmeshStreaming bool `json:"disableNavmeshStreaming" yaml:"disableNavmeshStreaming"`

	// DisableServerShutdown keeps the server running when the backend
	// connection is lost.
	// Default: false
	DisableServerShutdown bool `json:"disableServerShutdown" yaml:"disableServerShutdown"`

	// DisableCrashReporter disables the crash report uploader.
	// Default: false
	DisableCrashReporter bool `json:"disableCrashReporter" yaml:"disableCrashReporter"`

	// DisableAI disables AI spawning entirely.
	// Default: false
	DisableAI bool `json:"disableAI" yaml:"disableAI"`

	// JoinQueue configures the connection queue for full servers.
	JoinQueue JoinQueueConfig `json:"joinQueue" yaml:"joinQueue"`
}

// JoinQueueConfig configures the connection queue for full servers.
type JoinQueueConfig struct {
	// MaxSize is the number of clients allowed to wait for a slot.
	// Must be in the range 0-50; 0 disables the queue.
	// Default: 0
	MaxSize int `json:"maxSize" yaml:"maxSize"`
}
