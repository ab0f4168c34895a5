package cli

import (
	"strings"
	"testing"

	"github.com/opencode-ai/swatch/palette"
)

func TestFilterKeysByGroup(t *testing.T) {
	keys := []string{"accent.primary", "text.primary", "text.muted", "surface.card"}

	got := filterKeysByGroup(keys, "text")
	if len(got) != 2 {
		t.Fatalf("Expected 2 text keys, got %d: %v", len(got), got)
	}
	if got[0] != "text.primary" || got[1] != "text.muted" {
		t.Errorf("Expected input order preserved, got %v", got)
	}

	if got := filterKeysByGroup(keys, "shadow"); len(got) != 0 {
		t.Errorf("Expected no shadow keys, got %v", got)
	}
}

func TestKeySource(t *testing.T) {
	resolver := palette.New()
	resolver.RegisterFixed("brand.primary", palette.MustHex("#123456"))
	resolver.RegisterFixed("text.primary", palette.Black)

	tests := []struct {
		key  string
		want string
	}{
		{"brand.primary", "custom"},
		{"text.primary", "custom"},
		{"text.muted", "builtin"},
	}

	for _, tt := range tests {
		if got := keySource(resolver, tt.key); got != tt.want {
			t.Errorf("keySource(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestListTableRows(t *testing.T) {
	resolver := palette.New()
	listings := []keyListing{
		{Key: "text.primary", Light: "#111827", Dark: "#F9FAFB", Source: "builtin"},
		{Key: "surface.overlay", Light: "#FFFFFF33", Dark: "#FFFFFF1A", Source: "builtin"},
	}

	rows := listTableRows(resolver, listings, true)
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	for _, row := range rows {
		if len(row) != 5 {
			t.Fatalf("Expected 5 cells with swatches, got %d: %v", len(row), row)
		}
		// Interior cells must stay plain; escapes would skew tabwriter padding.
		for _, cell := range row[:4] {
			if strings.Contains(cell, "\x1b") {
				t.Errorf("Interior cell %q contains an escape", cell)
			}
		}
		if !strings.Contains(row[4], "\x1b[48;2;") {
			t.Errorf("Expected colored preview in trailing cell, got %q", row[4])
		}
	}

	rows = listTableRows(resolver, listings, false)
	for _, row := range rows {
		if len(row) != 4 {
			t.Fatalf("Expected 4 cells without swatches, got %d: %v", len(row), row)
		}
	}
}
