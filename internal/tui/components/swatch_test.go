package components

import (
	"strings"
	"testing"

	"github.com/opencode-ai/swatch/palette"
	"github.com/opencode-ai/swatch/styles"
)

func TestRenderSwatch(t *testing.T) {
	result := RenderSwatch(palette.MustHex("#1F6FEB"))
	if !strings.Contains(result, "#1F6FEB") {
		t.Errorf("Expected hex value in output, got: %s", result)
	}

	result = RenderSwatch(palette.MustHex("#1F6FEB80"))
	if !strings.Contains(result, "#1F6FEB80") {
		t.Errorf("Expected alpha-suffixed hex in output, got: %s", result)
	}
}

func TestRenderKeyRow(t *testing.T) {
	styleSet := styles.Default(false)
	c := palette.MustHex("#111827")

	t.Run("selected row carries cursor marker", func(t *testing.T) {
		result := RenderKeyRow(styleSet, "text.primary", c, true, 20)
		if !strings.HasPrefix(result, "> ") {
			t.Errorf("Expected cursor marker prefix, got: %s", result)
		}
		if !strings.Contains(result, "text.primary") {
			t.Errorf("Expected key in output, got: %s", result)
		}
	})

	t.Run("unselected row is indented", func(t *testing.T) {
		result := RenderKeyRow(styleSet, "text.primary", c, false, 20)
		if !strings.HasPrefix(result, "  ") {
			t.Errorf("Expected indent prefix, got: %s", result)
		}
		if strings.HasPrefix(result, "> ") {
			t.Errorf("Unselected row must not carry the cursor marker, got: %s", result)
		}
	})

	t.Run("row includes the swatch hex", func(t *testing.T) {
		result := RenderKeyRow(styleSet, "text.primary", c, false, 20)
		if !strings.Contains(result, "#111827") {
			t.Errorf("Expected hex value in output, got: %s", result)
		}
	})
}
