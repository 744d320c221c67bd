// Package mods works with Reforger workshop mod identifiers: format
// checks, workshop URL parsing, and load-order dedupe.
package mods

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/arma-type-things/reforgerconf/pkg/server"
)

// WorkshopHost is the public workshop the game resolves mods against.
const WorkshopHost = "reforger.armaplatform.com"

// idPattern matches a workshop mod identifier: 16 hexadecimal digits.
var idPattern = regexp.MustCompile(`^[0-9A-Fa-f]{16}$`)

// IsValidID reports whether id is a well-formed workshop identifier.
func IsValidID(id string) bool {
	return idPattern.MatchString(id)
}

// ParseWorkshopURL extracts the mod identifier from a workshop page
// URL such as
// "https://reforger.armaplatform.com/workshop/591AF5BDA9F7CE8B-WeaponSwitching".
// The slug after the identifier is optional.
func ParseWorkshopURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse workshop URL %q: %w", rawURL, err)
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, segment := range segments {
		if segment != "workshop" || i+1 >= len(segments) {
			continue
		}
		id, _, _ := strings.Cut(segments[i+1], "-")
		if !IsValidID(id) {
			return "", fmt.Errorf("workshop URL %q carries malformed mod identifier %q", rawURL, id)
		}
		return strings.ToUpper(id), nil
	}

	return "", fmt.Errorf("no workshop mod identifier in URL %q", rawURL)
}

// FromURL builds a Mod entry from a workshop page URL. The display
// name is recovered from the URL slug when present; dashes in the slug
// become spaces.
func FromURL(rawURL string) (server.Mod, error) {
	id, err := ParseWorkshopURL(rawURL)
	if err != nil {
		return server.Mod{}, err
	}

	mod := server.Mod{ModID: id}
	if u, err := url.Parse(rawURL); err == nil {
		segments := strings.Split(strings.Trim(u.Path, "/"), "/")
		for i, segment := range segments {
			if segment == "workshop" && i+1 < len(segments) {
				if _, slug, ok := strings.Cut(segments[i+1], "-"); ok && slug != "" {
					mod.Name = strings.ReplaceAll(slug, "-", " ")
				}
			}
		}
	}
	return mod, nil
}

// WorkshopURL returns the public workshop page for a mod identifier.
func WorkshopURL(id string) string {
	return "https://" + WorkshopHost + "/workshop/" + strings.ToUpper(id)
}

// Dedupe removes repeated identifiers from a load order, keeping the
// first occurrence of each. Identifier comparison is case-insensitive;
// malformed entries are kept as-is so validation can report them.
func Dedupe(entries []server.Mod) []server.Mod {
	seen := make(map[string]bool, len(entries))
	out := make([]server.Mod, 0, len(entries))
	for _, m := range entries {
		key := strings.ToUpper(m.ModID)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, m)
	}
	return out
}
