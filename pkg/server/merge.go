package server

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// Merge layers each overlay over base in order and returns the combined
// configuration. Non-zero overlay fields win; zero-valued overlay fields
// keep the value underneath. The inputs are not modified.
//
// Boolean false and numeric zero are Go zero values, so an overlay
// cannot clear a flag the base sets. Overlays that need to switch a
// flag off must carry the full section.
func Merge(base *Config, overlays ...*Config) (*Config, error) {
	out := &Config{}
	if err := mergo.Merge(out, base); err != nil {
		return nil, fmt.Errorf("failed to merge configuration layers: %w", err)
	}
	for _, overlay := range overlays {
		if overlay == nil {
			continue
		}
		if err := mergo.Merge(out, overlay, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge configuration layers: %w", err)
		}
	}
	return out, nil
}

// MergeFiles loads every path and layers later files over earlier ones.
// At least one path is required.
func MergeFiles(paths ...string) (*Config, error) {
	if len(paths) == 0 {
		return nil, errors.New("no configuration files to merge")
	}

	cfgs := make([]*Config, 0, len(paths))
	for _, path := range paths {
		cfg, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		cfgs = append(cfgs, cfg)
	}

	return Merge(cfgs[0], cfgs[1:]...)
}
