// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/swatch/palette"
	"github.com/opencode-ai/swatch/styles"
)

// RenderKeyDetail renders the detail panel for the selected key: both theme
// values, the active value's channels, and its contrast against the surface
// background.
func RenderKeyDetail(styleSet styles.Styles, key string, light, dark palette.Color) string {
	active := light
	if styleSet.Mode.Dark() {
		active = dark
	}
	surface := styleSet.Mode.Resolve("surface.background")
	ratio := palette.ContrastRatio(active, surface)

	lines := []string{
		styleSet.Title.Render(key),
		fmt.Sprintf("%s %s   %s %s",
			styleSet.Muted.Render("light"), light.HexRGBA(),
			styleSet.Muted.Render("dark"), dark.HexRGBA()),
		fmt.Sprintf("%s rgba(%d, %d, %d, %.2f)   %s %.2f:1 on surface.background",
			styleSet.Muted.Render("value"), active.R, active.G, active.B, active.Alpha(),
			styleSet.Muted.Render("contrast"), ratio),
	}
	return strings.Join(lines, "\n")
}
