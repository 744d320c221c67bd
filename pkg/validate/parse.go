package validate

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arma-type-things/reforgerconf/pkg/server"
)

// Options controls a Parse run. The zero value runs the full pipeline
// with nothing suppressed, so nil is always a valid argument.
type Options struct {
	// SkipValidation stops after the structural phase. The business
	// rules never run and the result carries no typed findings.
	SkipValidation bool

	// IgnoreErrors drops findings with these codes from the result
	// before success is computed. A deployment pipeline that accepts a
	// known violation suppresses exactly that code and nothing else.
	IgnoreErrors []ErrorCode

	// IgnoreWarnings drops findings with these codes from the result.
	// Warnings never affect success; suppression only quiets output.
	IgnoreWarnings []WarningCode
}

// ParseResult is the outcome of a full validation run.
//
// Success is true exactly when both error lists are empty after
// suppression, and Config is attached exactly when Success is true.
// Warnings have no influence on Success. The slices are never nil.
type ParseResult struct {
	// Success reports whether the configuration is deployable.
	Success bool `json:"success"`

	// Config is the typed configuration, present only on success.
	Config *server.Config `json:"config,omitempty"`

	// Errors lists structural failures as plain text. Non-empty only
	// when the input never reached the business rules.
	Errors []string `json:"errors"`

	// ValidationErrors lists business-rule violations after
	// suppression.
	ValidationErrors []Error `json:"validationErrors"`

	// Warnings lists advisory findings after suppression.
	Warnings []Warning `json:"warnings"`
}

// HasErrors reports whether any structural or business-rule error
// survived suppression.
func (r *ParseResult) HasErrors() bool {
	return len(r.Errors) > 0 || len(r.ValidationErrors) > 0
}

// HasWarnings reports whether any advisory finding survived
// suppression.
func (r *ParseResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

func newParseResult() *ParseResult {
	return &ParseResult{
		Errors:           []string{},
		ValidationErrors: []Error{},
		Warnings:         []Warning{},
	}
}

// Parse runs the two-phase pipeline over input and aggregates the
// outcome. The structural phase gates the business rules: a document
// that fails it is returned immediately with no typed findings.
//
// Parse is pure. Every call builds a fresh result, so concurrent calls
// are safe.
func Parse(input any, opts *Options) *ParseResult {
	if opts == nil {
		opts = &Options{}
	}

	res := newParseResult()

	cfg, structuralErrs := CheckStructure(input)
	if len(structuralErrs) > 0 {
		res.Errors = append(res.Errors, structuralErrs...)
		return res
	}

	if opts.SkipValidation {
		res.Success = true
		res.Config = cfg
		return res
	}

	found := ValidateConfig(cfg)
	res.ValidationErrors = filterErrors(found.Errors, opts.IgnoreErrors)
	res.Warnings = filterWarnings(found.Warnings, opts.IgnoreWarnings)

	res.Success = len(res.Errors) == 0 && len(res.ValidationErrors) == 0
	if res.Success {
		res.Config = cfg
	}
	return res
}

// ParseFile loads path and runs Parse over its content. JSON files go
// through the pipeline as raw text so the structural phase sees the
// document shape; YAML files are decoded to an object first and then
// follow the same path. The returned error covers file access only;
// everything about the content lands in the result.
func ParseFile(path string, opts *Options) (*ParseResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read server configuration %q: %w", path, err)
	}

	if server.FormatForPath(path) == server.FormatYAML {
		var obj map[string]any
		if err := yaml.Unmarshal(data, &obj); err != nil {
			res := newParseResult()
			res.Errors = append(res.Errors, fmt.Sprintf("invalid YAML: %v", err))
			return res, nil
		}
		return Parse(obj, opts), nil
	}

	return Parse(data, opts), nil
}

// filterErrors drops the suppressed codes, preserving order.
func filterErrors(errs []Error, ignore []ErrorCode) []Error {
	if len(errs) == 0 || len(ignore) == 0 {
		out := []Error{}
		return append(out, errs...)
	}
	suppressed := make(map[ErrorCode]bool, len(ignore))
	for _, code := range ignore {
		suppressed[code] = true
	}
	out := []Error{}
	for _, e := range errs {
		if !suppressed[e.Code] {
			out = append(out, e)
		}
	}
	return out
}

// filterWarnings drops the suppressed codes, preserving order.
func filterWarnings(warns []Warning, ignore []WarningCode) []Warning {
	if len(warns) == 0 || len(ignore) == 0 {
		out := []Warning{}
		return append(out, warns...)
	}
	suppressed := make(map[WarningCode]bool, len(ignore))
	for _, code := range ignore {
		suppressed[code] = true
	}
	out := []Warning{}
	for _, w := range warns {
		if !suppressed[w.Code] {
			out = append(out, w)
		}
	}
	return out
}
