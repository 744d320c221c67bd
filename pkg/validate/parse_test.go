package validate

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/arma-type-things/reforgerconf/pkg/server"
)

func TestParse_ValidDocument(t *testing.T) {
	cfg := cleanConfig()
	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("failed to marshal configuration: %v", err)
	}

	res := Parse(data, nil)
	if !res.Success {
		t.Fatalf("expected success, got errors %v / %+v", res.Errors, res.ValidationErrors)
	}
	if res.Config == nil {
		t.Fatal("expected the typed configuration on success")
	}
	if res.Config.BindPort != cfg.BindPort {
		t.Errorf("expected bindPort %d, got %d", cfg.BindPort, res.Config.BindPort)
	}
	if res.Errors == nil || res.ValidationErrors == nil || res.Warnings == nil {
		t.Error("expected initialized finding lists, got nil")
	}
	if res.HasErrors() || res.HasWarnings() {
		t.Errorf("expected a silent result, got %+v", res)
	}
}

func TestParse_StructuralFailureGatesRules(t *testing.T) {
	// The document is missing a section and carries a rule violation.
	// Only the structural finding may surface: the rules never ran.
	obj := documentObject(t, func(obj map[string]any) {
		delete(obj, "a2s")
		obj["rcon"].(map[string]any)["password"] = "ab"
	})
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("failed to marshal document: %v", err)
	}

	res := Parse(data, nil)
	if res.Success {
		t.Error("expected failure")
	}
	if res.Config != nil {
		t.Error("expected no configuration on failure")
	}
	if len(res.Errors) != 1 || !strings.Contains(res.Errors[0], "a2s") {
		t.Errorf("expected the missing-section error, got %v", res.Errors)
	}
	if len(res.ValidationErrors) != 0 || len(res.Warnings) != 0 {
		t.Errorf("expected no typed findings past the gate, got %+v", res)
	}
}

func TestParse_RuleViolations(t *testing.T) {
	cfg := cleanConfig()
	cfg.RCON.Password = "ab"

	res := Parse(cfg, nil)
	if res.Success {
		t.Error("expected failure")
	}
	if res.Config != nil {
		t.Error("expected no configuration on failure")
	}
	if len(res.Errors) != 0 {
		t.Errorf("expected no structural errors, got %v", res.Errors)
	}
	if len(res.ValidationErrors) != 1 || res.ValidationErrors[0].Code != ErrPasswordTooShort {
		t.Errorf("expected PASSWORD_TOO_SHORT, got %+v", res.ValidationErrors)
	}
	if len(res.Warnings) != 1 || res.Warnings[0].Code != WarnWeakRCONPassword {
		t.Errorf("expected WEAK_RCON_PASSWORD, got %+v", res.Warnings)
	}
}

func TestParse_WarningsDoNotBlockSuccess(t *testing.T) {
	// The stock defaults ship without an admin password, which is an
	// advisory finding and nothing more.
	res := Parse(server.Default(), nil)
	if !res.Success {
		t.Fatalf("expected success, got %v / %+v", res.Errors, res.ValidationErrors)
	}
	if res.Config == nil {
		t.Fatal("expected the typed configuration")
	}
	if len(res.Warnings) != 1 || res.Warnings[0].Code != WarnEmptyAdminPassword {
		t.Errorf("expected only EMPTY_ADMIN_PASSWORD, got %+v", res.Warnings)
	}
}

func TestParse_IgnoreErrors(t *testing.T) {
	cfg := cleanConfig()
	cfg.RCON.Password = "ab"

	res := Parse(cfg, &Options{IgnoreErrors: []ErrorCode{ErrPasswordTooShort}})
	if !res.Success {
		t.Fatalf("expected success with the violation suppressed, got %+v", res.ValidationErrors)
	}
	if res.Config == nil {
		t.Error("expected the typed configuration once suppression clears the errors")
	}
	if len(res.Warnings) != 1 || res.Warnings[0].Code != WarnWeakRCONPassword {
		t.Errorf("expected the warning to survive error suppression, got %+v", res.Warnings)
	}
}

func TestParse_IgnoreWarnings(t *testing.T) {
	cfg := cleanConfig()
	cfg.RCON.Password = "ab"

	res := Parse(cfg, &Options{
		IgnoreWarnings: []WarningCode{WarnWeakRCONPassword},
	})
	if len(res.Warnings) != 0 {
		t.Errorf("expected the warning suppressed, got %+v", res.Warnings)
	}
	if res.Success {
		t.Error("expected warning suppression to leave the error standing")
	}
	if len(res.ValidationErrors) != 1 {
		t.Errorf("expected the error untouched, got %+v", res.ValidationErrors)
	}
}

func TestParse_SuppressionLeavesComplement(t *testing.T) {
	// Two violations, one suppressed: exactly the other survives, in
	// its original position.
	cfg := cleanConfig()
	cfg.RCON.Password = "ab"
	cfg.Game.Name = strings.Repeat("x", 120)

	res := Parse(cfg, &Options{IgnoreErrors: []ErrorCode{ErrPasswordTooShort}})
	if len(res.ValidationErrors) != 1 || res.ValidationErrors[0].Code != ErrNameTooLong {
		t.Fatalf("expected only NAME_TOO_LONG to survive, got %+v", res.ValidationErrors)
	}

	res = Parse(cfg, &Options{IgnoreErrors: []ErrorCode{ErrPasswordTooShort, ErrNameTooLong}})
	if !res.Success {
		t.Errorf("expected success with both violations suppressed, got %+v", res.ValidationErrors)
	}
}

func TestParse_SkipValidation(t *testing.T) {
	t.Run("skips the rules", func(t *testing.T) {
		cfg := cleanConfig()
		cfg.RCON.Password = "ab"

		res := Parse(cfg, &Options{SkipValidation: true})
		if !res.Success {
			t.Errorf("expected success, got %+v", res)
		}
		if res.Config == nil {
			t.Error("expected the typed configuration")
		}
		if len(res.ValidationErrors) != 0 || len(res.Warnings) != 0 {
			t.Errorf("expected no typed findings, got %+v", res)
		}
	})

	t.Run("never skips the structural phase", func(t *testing.T) {
		res := Parse([]byte(`{"bindAddress": "0.0.0.0"}`), &Options{SkipValidation: true})
		if res.Success {
			t.Error("expected structural failure")
		}
		if len(res.Errors) == 0 {
			t.Error("expected structural errors")
		}
	})
}

func TestParse_Idempotent(t *testing.T) {
	obj := documentObject(t, func(obj map[string]any) {
		obj["rcon"].(map[string]any)["password"] = "ab"
		obj["game"].(map[string]any)["maxPlayers"] = float64(100)
	})
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("failed to marshal document: %v", err)
	}

	first := Parse(data, nil)
	second := Parse(data, nil)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical results, got %+v and %+v", first, second)
	}
}

func TestParseResult_JSONEnvelope(t *testing.T) {
	failed := Parse([]byte(`{"bindAddress": "0.0.0.0"}`), nil)
	data, err := json.Marshal(failed)
	if err != nil {
		t.Fatalf("failed to marshal result: %v", err)
	}
	out := string(data)
	if strings.Contains(out, `"config"`) {
		t.Errorf("expected no config key on failure, got %s", out)
	}
	for _, key := range []string{`"success":false`, `"errors":[`, `"validationErrors":[]`, `"warnings":[]`} {
		if !strings.Contains(out, key) {
			t.Errorf("expected %s in %s", key, out)
		}
	}

	ok := Parse(cleanConfig(), nil)
	data, err = json.Marshal(ok)
	if err != nil {
		t.Fatalf("failed to marshal result: %v", err)
	}
	if !strings.Contains(string(data), `"config"`) {
		t.Errorf("expected the config key on success, got %s", data)
	}
}

func TestParseFile_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.json")
	if err := server.SaveFile(path, server.Default()); err != nil {
		t.Fatalf("failed to write configuration: %v", err)
	}

	res, err := ParseFile(path, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Success {
		t.Errorf("expected success, got %v / %+v", res.Errors, res.ValidationErrors)
	}
}

func TestParseFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	if err := server.SaveFile(path, server.Default()); err != nil {
		t.Fatalf("failed to write configuration: %v", err)
	}

	res, err := ParseFile(path, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Success {
		t.Errorf("expected success, got %v / %+v", res.Errors, res.ValidationErrors)
	}
	if res.Config == nil || res.Config.BindPort != server.DefaultBindPort {
		t.Errorf("expected the decoded configuration, got %+v", res.Config)
	}
}

func TestParseFile_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yml")
	if err := os.WriteFile(path, []byte("game: [unclosed\n"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	res, err := ParseFile(path, nil)
	if err != nil {
		t.Fatalf("expected the problem in the result, got error %v", err)
	}
	if res.Success {
		t.Error("expected failure")
	}
	if len(res.Errors) != 1 || !strings.HasPrefix(res.Errors[0], "invalid YAML:") {
		t.Errorf("expected an invalid-YAML error, got %v", res.Errors)
	}
}

func TestParseFile_MissingFile(t *testing.T) {
	res, err := ParseFile(filepath.Join(t.TempDir(), "absent.json"), nil)
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if res != nil {
		t.Error("expected no result alongside the error")
	}
	if !strings.Contains(err.Error(), "absent.json") {
		t.Errorf("expected the path in the error, got %v", err)
	}
}
