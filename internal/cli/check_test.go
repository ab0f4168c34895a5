package cli

import (
	"testing"

	"github.com/opencode-ai/swatch/internal/config"
	"github.com/opencode-ai/swatch/palette"
)

func TestAuditModes(t *testing.T) {
	tests := []struct {
		mode string
		want []bool
	}{
		{config.ModeLight, []bool{false}},
		{config.ModeDark, []bool{true}},
		{config.ModeAuto, []bool{false, true}},
		{"", []bool{false, true}},
	}

	for _, tt := range tests {
		got := auditModes(tt.mode)
		if len(got) != len(tt.want) {
			t.Errorf("auditModes(%q) returned %d modes, want %d", tt.mode, len(got), len(tt.want))
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("auditModes(%q)[%d] = %v, want %v", tt.mode, i, got[i], tt.want[i])
			}
		}
	}
}

func TestRunAudit(t *testing.T) {
	resolver := palette.New()
	resolver.RegisterFixed("test.fg", palette.White)
	resolver.RegisterFixed("test.bg", palette.Black)
	resolver.RegisterFixed("test.weak", palette.MustHex("#AAAAAA"))

	audit := []contrastPair{
		{"strong pair", "test.fg", "test.bg", palette.ContrastAA},
		{"weak pair", "test.weak", "test.fg", palette.ContrastAA},
	}

	results := runAudit(resolver, audit, []bool{false, true})
	if len(results) != 4 {
		t.Fatalf("Expected 4 results (2 pairs x 2 modes), got %d", len(results))
	}

	for _, res := range results {
		switch res.Name {
		case "strong pair":
			if !res.Pass {
				t.Errorf("Expected strong pair to pass, ratio %.2f", res.Ratio)
			}
			if res.Ratio < 20.9 || res.Ratio > 21.1 {
				t.Errorf("Expected black/white ratio near 21, got %.2f", res.Ratio)
			}
		case "weak pair":
			if res.Pass {
				t.Errorf("Expected weak pair to fail at AA, ratio %.2f", res.Ratio)
			}
		default:
			t.Errorf("Unexpected result name %q", res.Name)
		}
	}
}

func TestDefaultAuditKeysExist(t *testing.T) {
	resolver := palette.New()
	for _, pair := range defaultAudit {
		if !resolver.Has(pair.fg) {
			t.Errorf("Audit pair %q references unknown foreground %q", pair.name, pair.fg)
		}
		if !resolver.Has(pair.bg) {
			t.Errorf("Audit pair %q references unknown background %q", pair.name, pair.bg)
		}
	}
}

func TestModeLabel(t *testing.T) {
	if modeLabel(true) != "dark" {
		t.Errorf("modeLabel(true) = %q", modeLabel(true))
	}
	if modeLabel(false) != "light" {
		t.Errorf("modeLabel(false) = %q", modeLabel(false))
	}
}
