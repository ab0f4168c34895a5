package components

import (
	"strings"
	"testing"

	"github.com/opencode-ai/swatch/palette"
	"github.com/opencode-ai/swatch/styles"
)

func TestRenderKeyDetail(t *testing.T) {
	light := palette.MustHex("#111827")
	dark := palette.MustHex("#F9FAFB")

	t.Run("light mode shows both values and contrast", func(t *testing.T) {
		result := RenderKeyDetail(styles.Default(false), "text.primary", light, dark)

		for _, expected := range []string{"text.primary", "#111827", "#F9FAFB", "contrast", "rgba(17, 24, 39, 1.00)"} {
			if !strings.Contains(result, expected) {
				t.Errorf("Expected %q in output, got: %s", expected, result)
			}
		}
	})

	t.Run("dark mode reports the dark value's channels", func(t *testing.T) {
		result := RenderKeyDetail(styles.Default(true), "text.primary", light, dark)

		if !strings.Contains(result, "rgba(249, 250, 251, 1.00)") {
			t.Errorf("Expected dark channels in output, got: %s", result)
		}
	})
}
