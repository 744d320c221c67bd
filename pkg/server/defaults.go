package server

// Platform identifiers accepted in GameConfig.SupportedPlatforms.
const (
	PlatformPC          = "PLATFORM_PC"
	PlatformXbox        = "PLATFORM_XBL"
	PlatformPlayStation = "PLATFORM_PSN"
)

// RCON permission levels accepted in RCONConfig.Permission.
const (
	RCONPermissionAdmin   = "admin"
	RCONPermissionMonitor = "monitor"
)

// Default values for configuration fields.
const (
	// Network defaults
	DefaultBindAddress = "0.0.0.0"
	DefaultBindPort    = 2001
	DefaultA2SAddress  = "0.0.0.0"
	DefaultA2SPort     = 17777
	DefaultRCONAddress = "0.0.0.0"
	DefaultRCONPort    = 19999

	// RCON defaults
	DefaultRCONPermission = RCONPermissionAdmin
	DefaultRCONMaxClients = 16

	// Game defaults
	DefaultServerName = "Reforger Server"
	DefaultScenarioID = "{ECC61978EDCC2B5A}Missions/23_Campaign.conf"
	DefaultMaxPlayers = 64
	DefaultVisible    = true

	// Game property defaults
	DefaultServerMaxViewDistance  = 1600
	DefaultServerMinGrassDistance = 0
	DefaultNetworkViewDistance    = 1500
	DefaultFastValidation         = true
	DefaultBattlEye               = true

	// Operating defaults
	DefaultLobbyPlayerSynchronise = true
	DefaultPlayerSaveTime         = 120
	DefaultAILimit                = -1
	DefaultSlotReservationTimeout = 60
	DefaultJoinQueueMaxSize       = 0
)

// Default returns a complete configuration populated with the documented
// default for every field. The result runs the vanilla Conflict scenario
// on the standard ports and passes validation as-is.
//
// A plain constructor is used instead of zero-value fill-in because
// several fields carry meaning at their zero value (a grass distance of
// 0, an invisible server); filling those in after the fact would
// silently rewrite an author's intent.
func Default() *Config {
	return &Config{
		BindAddress: DefaultBindAddress,
		BindPort:    DefaultBindPort,
		PublicPort:  DefaultBindPort,
		A2S: A2SConfig{
			Address: DefaultA2SAddress,
			Port:    DefaultA2SPort,
		},
		RCON: RCONConfig{
			Address:    DefaultRCONAddress,
			Port:       DefaultRCONPort,
			Permission: DefaultRCONPermission,
			MaxClients: DefaultRCONMaxClients,
		},
		Game: GameConfig{
			Name:               DefaultServerName,
			ScenarioID:         DefaultScenarioID,
			MaxPlayers:         DefaultMaxPlayers,
			Visible:            DefaultVisible,
			SupportedPlatforms: []string{PlatformPC},
			Properties: GameProperties{
				ServerMaxViewDistance:  DefaultServerMaxViewDistance,
				ServerMinGrassDistance: DefaultServerMinGrassDistance,
				NetworkViewDistance:    DefaultNetworkViewDistance,
				FastValidation:         DefaultFastValidation,
				BattlEye:               DefaultBattlEye,
			},
			ModsRequiredByDefault: true,
		},
		Operating: OperatingConfig{
			LobbyPlayerSynchronise: DefaultLobbyPlayerSynchronise,
			PlayerSaveTime:         DefaultPlayerSaveTime,
			AILimit:                DefaultAILimit,
			SlotReservationTimeout: DefaultSlotReservationTimeout,
			JoinQueue: JoinQueueConfig{
				MaxSize: DefaultJoinQueueMaxSize,
			},
		},
	}
}

// DefaultWithScenario returns Default() with the scenario replaced.
func DefaultWithScenario(scenarioID string) *Config {
	cfg := Default()
	cfg.Game.ScenarioID = scenarioID
	return cfg
}
