package server

import (
	"strings"
	"testing"
)

func TestBuilder_Defaults(t *testing.T) {
	cfg, err := NewBuilder().Build()
	if err != nil {
		t.Fatalf("failed to build config: %v", err)
	}
	if cfg.BindPort != DefaultBindPort {
		t.Errorf("expected default bind port %d, got %d", DefaultBindPort, cfg.BindPort)
	}
	if cfg.Game.ScenarioID != DefaultScenarioID {
		t.Errorf("expected default scenario, got %q", cfg.Game.ScenarioID)
	}
}

func TestBuilder_Chain(t *testing.T) {
	cfg, err := NewBuilder().
		WithName("Weekend Conflict").
		WithBindEndpoint("10.0.0.5", 2101).
		WithScenario(ScenarioConflictArland).
		WithMaxPlayers(96).
		WithAdminPassword("hunter2").
		WithAdmins("76561198000000001").
		WithCrossPlatform(PlatformPC, PlatformXbox).
		WithRCON("rconpass").
		WithRCONPermission(RCONPermissionMonitor).
		WithModIDs("591AF5BDA9F7CE8B", "5965550F24A0C152").
		WithViewDistances(2400, 1400).
		WithJoinQueue(20).
		Build()
	if err != nil {
		t.Fatalf("failed to build config: %v", err)
	}

	if cfg.Game.Name != "Weekend Conflict" {
		t.Errorf("expected name to be set, got %q", cfg.Game.Name)
	}
	if cfg.BindPort != 2101 || cfg.PublicPort != 2101 {
		t.Errorf("expected bind endpoint to set both ports, got bind %d public %d", cfg.BindPort, cfg.PublicPort)
	}
	if !cfg.Game.CrossPlatform {
		t.Error("expected cross platform to be enabled")
	}
	if len(cfg.Game.SupportedPlatforms) != 2 {
		t.Errorf("expected 2 platforms, got %v", cfg.Game.SupportedPlatforms)
	}
	if cfg.RCON.Password != "rconpass" || cfg.RCON.Permission != RCONPermissionMonitor {
		t.Errorf("expected rcon to be configured, got %+v", cfg.RCON)
	}
	if len(cfg.Game.Mods) != 2 {
		t.Errorf("expected 2 mods, got %d", len(cfg.Game.Mods))
	}
	if cfg.Game.Properties.ServerMaxViewDistance != 2400 {
		t.Errorf("expected view distance 2400, got %d", cfg.Game.Properties.ServerMaxViewDistance)
	}
	if cfg.Operating.JoinQueue.MaxSize != 20 {
		t.Errorf("expected join queue 20, got %d", cfg.Operating.JoinQueue.MaxSize)
	}
}

func TestBuilder_MalformedScenario(t *testing.T) {
	_, err := NewBuilder().
		WithScenario("Missions/NoGuid.conf").
		WithName("still chains").
		Build()
	if err == nil {
		t.Fatal("expected error for malformed scenario identifier")
	}
	if !strings.Contains(err.Error(), "Missions/NoGuid.conf") {
		t.Errorf("expected error to name the identifier, got %v", err)
	}
}

func TestBuilder_FirstErrorWins(t *testing.T) {
	_, err := NewBuilder().
		WithScenario("first-bad").
		WithScenario("second-bad").
		Build()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "first-bad") {
		t.Errorf("expected first failure to be reported, got %v", err)
	}
}

func TestBuilder_MissionHeader(t *testing.T) {
	cfg, err := NewBuilder().
		WithMissionHeader("m_sName", "Custom Op").
		WithMissionHeader("m_iPlayerCount", 40).
		Build()
	if err != nil {
		t.Fatalf("failed to build config: %v", err)
	}
	if cfg.Game.Properties.MissionHeader["m_sName"] != "Custom Op" {
		t.Errorf("expected mission header entry, got %v", cfg.Game.Properties.MissionHeader)
	}
	if cfg.Game.Properties.MissionHeader["m_iPlayerCount"] != 40 {
		t.Errorf("expected mission header entry, got %v", cfg.Game.Properties.MissionHeader)
	}
}
