package cli

import (
	"testing"

	"github.com/opencode-ai/swatch/palette"
)

func TestSwatchCellDegradesWithoutColor(t *testing.T) {
	t.Setenv("SWATCH_NO_COLOR", "1")

	got := swatchCell(palette.MustHex("#112233"))
	if got != "#112233" {
		t.Errorf("Expected bare hex without color, got %q", got)
	}

	// Translucent colors keep their alpha suffix.
	got = swatchCell(palette.MustHex("#11223380"))
	if got != "#11223380" {
		t.Errorf("Expected alpha-suffixed hex, got %q", got)
	}
}

func TestColorizeDisabled(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	if got := colorize("hello", colorGreen); got != "hello" {
		t.Errorf("Expected unstyled text, got %q", got)
	}
}

func TestPassFailLabels(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	if passFail(true) != "PASS" {
		t.Errorf("passFail(true) = %q", passFail(true))
	}
	if passFail(false) != "FAIL" {
		t.Errorf("passFail(false) = %q", passFail(false))
	}
}
