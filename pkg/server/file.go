package server

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Supported file formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// FormatForPath returns the file format implied by the path extension.
// ".yaml" and ".yml" select YAML; everything else selects JSON, the
// canonical wire format.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadFile reads a server configuration from path. The format is chosen
// by extension via FormatForPath. The file content is decoded as-is:
// no defaults are filled in and no validation runs, so a later
// validation pass sees exactly what the author wrote.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read server configuration %q: %w", path, err)
	}

	var cfg Config
	switch FormatForPath(path) {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse server configuration %q: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse server configuration %q: %w", path, err)
		}
	}

	return &cfg, nil
}

// Encode renders cfg in the named format. JSON output is indented with
// two spaces and ends with a newline, matching the game's shipped
// configuration files.
func Encode(cfg *Config, format string) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(cfg)
	case FormatJSON:
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported configuration format %q", format)
	}
}

// SaveFile writes cfg to path in the format implied by the extension.
func SaveFile(path string, cfg *Config) error {
	data, err := Encode(cfg, FormatForPath(path))
	if err != nil {
		return fmt.Errorf("failed to encode server configuration for %q: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write server configuration %q: %w", path, err)
	}
	return nil
}
