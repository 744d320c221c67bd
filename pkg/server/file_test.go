package server

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"server.json", FormatJSON},
		{"server.yaml", FormatYAML},
		{"server.yml", FormatYAML},
		{"SERVER.YAML", FormatYAML},
		{"server.conf", FormatJSON},
		{"server", FormatJSON},
	}

	for _, tt := range tests {
		if got := FormatForPath(tt.path); got != tt.want {
			t.Errorf("FormatForPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestLoadFile_JSON(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "server.json")

	content := `{
  "bindAddress": "0.0.0.0",
  "bindPort": 2001,
  "a2s": {"address": "0.0.0.0", "port": 17777},
  "rcon": {"address": "0.0.0.0", "port": 19999},
  "game": {"name": "Test", "scenarioId": "{ECC61978EDCC2B5A}Missions/23_Campaign.conf", "maxPlayers": 32},
  "operating": {"playerSaveTime": 120}
}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Game.Name != "Test" {
		t.Errorf("expected name %q, got %q", "Test", cfg.Game.Name)
	}
	if cfg.Game.MaxPlayers != 32 {
		t.Errorf("expected max players 32, got %d", cfg.Game.MaxPlayers)
	}

	// Loading never fills in defaults; absent fields stay zero so a
	// validation pass sees the file as authored.
	if cfg.RCON.MaxClients != 0 {
		t.Errorf("expected absent maxClients to stay 0, got %d", cfg.RCON.MaxClients)
	}
}

func TestLoadFile_YAML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "server.yaml")

	content := `
bindAddress: "0.0.0.0"
bindPort: 2001
a2s:
  address: "0.0.0.0"
  port: 17777
rcon:
  address: "0.0.0.0"
  port: 19999
  password: "letmein"
game:
  name: "YAML Server"
  maxPlayers: 48
  gameProperties:
    serverMaxViewDistance: 2000
operating:
  aiLimit: 60
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Game.Name != "YAML Server" {
		t.Errorf("expected name %q, got %q", "YAML Server", cfg.Game.Name)
	}
	if cfg.RCON.Password != "letmein" {
		t.Errorf("expected rcon password %q, got %q", "letmein", cfg.RCON.Password)
	}
	if cfg.Game.Properties.ServerMaxViewDistance != 2000 {
		t.Errorf("expected view distance 2000, got %d", cfg.Game.Properties.ServerMaxViewDistance)
	}
	if cfg.Operating.AILimit != 60 {
		t.Errorf("expected ai limit 60, got %d", cfg.Operating.AILimit)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	tmpDir := t.TempDir()

	if _, err := LoadFile(filepath.Join(tmpDir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	badPath := filepath.Join(tmpDir, "bad.json")
	if err := os.WriteFile(badPath, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	if _, err := LoadFile(badPath); err == nil {
		t.Error("expected error for malformed JSON")
	} else if !strings.Contains(err.Error(), badPath) {
		t.Errorf("expected error to name the file, got %v", err)
	}
}

func TestSaveFile_RoundTrip(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := Default()
	cfg.Game.Name = "Round Trip"
	cfg.Game.Mods = []Mod{{ModID: "591AF5BDA9F7CE8B", Name: "Example"}}

	jsonPath := filepath.Join(tmpDir, "out.json")
	if err := SaveFile(jsonPath, cfg); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}
	loaded, err := LoadFile(jsonPath)
	if err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if loaded.Game.Name != "Round Trip" {
		t.Errorf("expected name to survive round trip, got %q", loaded.Game.Name)
	}
	if len(loaded.Game.Mods) != 1 || loaded.Game.Mods[0].ModID != "591AF5BDA9F7CE8B" {
		t.Errorf("expected mods to survive round trip, got %+v", loaded.Game.Mods)
	}

	yamlPath := filepath.Join(tmpDir, "out.yaml")
	if err := SaveFile(yamlPath, cfg); err != nil {
		t.Fatalf("failed to save yaml config: %v", err)
	}
	loaded, err = LoadFile(yamlPath)
	if err != nil {
		t.Fatalf("failed to reload yaml config: %v", err)
	}
	if loaded.Game.Name != "Round Trip" {
		t.Errorf("expected name to survive yaml round trip, got %q", loaded.Game.Name)
	}
}

func TestEncode_JSONShape(t *testing.T) {
	data, err := Encode(Default(), FormatJSON)
	if err != nil {
		t.Fatalf("failed to encode config: %v", err)
	}
	out := string(data)
	if !strings.HasPrefix(out, "{\n  \"bindAddress\"") {
		t.Errorf("expected two-space indented JSON, got prefix %q", out[:min(40, len(out))])
	}
	if !strings.HasSuffix(out, "}\n") {
		t.Error("expected trailing newline after closing brace")
	}

	if _, err := Encode(Default(), "toml"); err == nil {
		t.Error("expected error for unsupported format")
	}
}
