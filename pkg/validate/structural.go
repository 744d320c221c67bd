package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/arma-type-things/reforgerconf/pkg/server"
)

// requiredSections are the top-level keys a configuration document must
// carry before the business rules are worth running.
var requiredSections = []string{
	"bindAddress",
	"bindPort",
	"a2s",
	"rcon",
	"game",
	"operating",
}

// Structural bounds checked before typed narrowing. These predate the
// business-rule set and stay in the structural phase because a value
// outside them usually means the document was generated against the
// wrong schema, not mistuned.
const (
	structuralMinPort       = 1024
	structuralMaxPort       = 65535
	structuralMinMaxPlayers = 1
	structuralMaxMaxPlayers = 128
)

// CheckStructure runs the structural phase over raw input and narrows
// it to a typed configuration.
//
// Accepted inputs: JSON text ([]byte, string, or json.RawMessage), an
// already-decoded map[string]any, or a typed *server.Config /
// server.Config. Any other type yields a single structural error.
//
// The returned error strings are plain text: structural failures
// describe a document that is not a server configuration at all, so
// they carry no field taxonomy. The typed configuration is non-nil
// only when the error list is empty.
func CheckStructure(input any) (*server.Config, []string) {
	switch v := input.(type) {
	case nil:
		return nil, []string{"configuration input is nil"}
	case []byte:
		return checkDocument(v)
	case string:
		return checkDocument([]byte(v))
	case json.RawMessage:
		return checkDocument([]byte(v))
	case map[string]any:
		return checkObject(v)
	case *server.Config:
		if v == nil {
			return nil, []string{"configuration input is nil"}
		}
		return checkTyped(v)
	case server.Config:
		return checkTyped(&v)
	default:
		return nil, []string{fmt.Sprintf("unsupported configuration input type %T", input)}
	}
}

// checkDocument decodes JSON text and hands the result to checkObject.
func checkDocument(data []byte) (*server.Config, []string) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, []string{fmt.Sprintf("invalid JSON: %v", err)}
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, []string{"configuration root must be a JSON object"}
	}
	return checkObject(obj)
}

// checkObject verifies the object shape and coarse ranges, then narrows
// the document into the typed configuration.
func checkObject(obj map[string]any) (*server.Config, []string) {
	errs := shapeErrors(obj)
	if len(errs) > 0 {
		return nil, errs
	}

	// Narrow through the canonical codec so type mismatches surface
	// as a single decode error instead of a panic downstream.
	data, err := json.Marshal(obj)
	if err != nil {
		return nil, []string{fmt.Sprintf("failed to interpret configuration: %v", err)}
	}
	var cfg server.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, []string{fmt.Sprintf("failed to interpret configuration: %v", err)}
	}
	return &cfg, nil
}

// shapeErrors collects missing-section and coarse-range findings. The
// coarse ranges are still checked when sections are missing, so a
// caller sees everything structural in one pass.
func shapeErrors(obj map[string]any) []string {
	var errs []string

	var missing []string
	for _, section := range requiredSections {
		if _, ok := obj[section]; !ok {
			missing = append(missing, section)
		}
	}
	if len(missing) > 0 {
		errs = append(errs, fmt.Sprintf("missing required configuration sections: %s", strings.Join(missing, ", ")))
	}

	if raw, ok := obj["bindPort"]; ok {
		if port, ok := asNumber(raw); ok && (port < structuralMinPort || port > structuralMaxPort) {
			errs = append(errs, fmt.Sprintf("bindPort must be between %d and %d, got %v", structuralMinPort, structuralMaxPort, raw))
		}
	}
	if game, ok := obj["game"].(map[string]any); ok {
		if raw, ok := game["maxPlayers"]; ok {
			if n, ok := asNumber(raw); ok && (n < structuralMinMaxPlayers || n > structuralMaxMaxPlayers) {
				errs = append(errs, fmt.Sprintf("game.maxPlayers must be between %d and %d, got %v", structuralMinMaxPlayers, structuralMaxMaxPlayers, raw))
			}
		}
	}

	return errs
}

// checkTyped applies the coarse ranges to an already-typed
// configuration. The shape is satisfied by construction.
func checkTyped(cfg *server.Config) (*server.Config, []string) {
	var errs []string
	if cfg.BindPort < structuralMinPort || cfg.BindPort > structuralMaxPort {
		errs = append(errs, fmt.Sprintf("bindPort must be between %d and %d, got %d", structuralMinPort, structuralMaxPort, cfg.BindPort))
	}
	if cfg.Game.MaxPlayers < structuralMinMaxPlayers || cfg.Game.MaxPlayers > structuralMaxMaxPlayers {
		errs = append(errs, fmt.Sprintf("game.maxPlayers must be between %d and %d, got %d", structuralMinMaxPlayers, structuralMaxMaxPlayers, cfg.Game.MaxPlayers))
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return cfg, nil
}

// asNumber widens the numeric types JSON and YAML decoders produce.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
