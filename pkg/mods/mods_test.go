package mods

import (
	"strings"
	"testing"

	"github.com/arma-type-things/reforgerconf/pkg/server"
)

func TestIsValidID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"591AF5BDA9F7CE8B", true},
		{"591af5bda9f7ce8b", true},
		{"591AF5BDA9F7CE8", false},   // 15 digits
		{"591AF5BDA9F7CE8B1", false}, // 17 digits
		{"591AF5BDA9F7CE8G", false},  // non-hex
		{"", false},
		{"591AF5BD A9F7CE8B", false},
	}

	for _, tt := range tests {
		if got := IsValidID(tt.id); got != tt.want {
			t.Errorf("IsValidID(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestParseWorkshopURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{
			name: "full workshop url",
			url:  "https://reforger.armaplatform.com/workshop/591AF5BDA9F7CE8B-WeaponSwitching",
			want: "591AF5BDA9F7CE8B",
		},
		{
			name: "no slug",
			url:  "https://reforger.armaplatform.com/workshop/5965550F24A0C152",
			want: "5965550F24A0C152",
		},
		{
			name: "lowercase id is canonicalized",
			url:  "https://reforger.armaplatform.com/workshop/591af5bda9f7ce8b-WeaponSwitching",
			want: "591AF5BDA9F7CE8B",
		},
		{
			name:    "not a workshop url",
			url:     "https://reforger.armaplatform.com/news/release",
			wantErr: true,
		},
		{
			name:    "malformed identifier",
			url:     "https://reforger.armaplatform.com/workshop/notanid-Thing",
			wantErr: true,
		},
		{
			name:    "empty workshop segment",
			url:     "https://reforger.armaplatform.com/workshop/",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWorkshopURL(tt.url)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.url)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestFromURL(t *testing.T) {
	mod, err := FromURL("https://reforger.armaplatform.com/workshop/59673B6FBB95459D-ACE-Core")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mod.ModID != "59673B6FBB95459D" {
		t.Errorf("expected mod id 59673B6FBB95459D, got %q", mod.ModID)
	}
	if mod.Name != "ACE Core" {
		t.Errorf("expected name %q, got %q", "ACE Core", mod.Name)
	}

	mod, err = FromURL("https://reforger.armaplatform.com/workshop/5965550F24A0C152")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mod.Name != "" {
		t.Errorf("expected empty name without slug, got %q", mod.Name)
	}
}

func TestWorkshopURL(t *testing.T) {
	got := WorkshopURL("591af5bda9f7ce8b")
	if got != "https://reforger.armaplatform.com/workshop/591AF5BDA9F7CE8B" {
		t.Errorf("unexpected url %q", got)
	}
	if !strings.Contains(got, WorkshopHost) {
		t.Errorf("expected url to use workshop host, got %q", got)
	}
}

func TestDedupe(t *testing.T) {
	entries := []server.Mod{
		{ModID: "591AF5BDA9F7CE8B", Name: "First"},
		{ModID: "5965550F24A0C152"},
		{ModID: "591af5bda9f7ce8b", Name: "Duplicate of first"},
		{ModID: "notanid"},
		{ModID: "notanid"},
	}

	out := Dedupe(entries)
	if len(out) != 3 {
		t.Fatalf("expected 3 entries, got %d: %+v", len(out), out)
	}
	if out[0].Name != "First" {
		t.Errorf("expected first occurrence to win, got %+v", out[0])
	}
	if out[2].ModID != "notanid" {
		t.Errorf("expected malformed entry to be kept, got %+v", out[2])
	}
}
