// Package components provides reusable TUI components.
package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/swatch/palette"
	"github.com/opencode-ai/swatch/styles"
)

// RenderSwatch renders a filled color block followed by the hex value.
func RenderSwatch(c palette.Color) string {
	block := lipgloss.NewStyle().Background(styles.Color(c)).Render("      ")
	return fmt.Sprintf("%s %s", block, c.HexRGBA())
}

// RenderKeyRow renders one catalog key with its swatch. The selected row
// carries a cursor marker and the focus style.
func RenderKeyRow(styleSet styles.Styles, key string, c palette.Color, selected bool, keyWidth int) string {
	label := fmt.Sprintf("%-*s", keyWidth, key)
	marker := "  "
	if selected {
		marker = "> "
		label = styleSet.Focus.Render(label)
	} else {
		label = styleSet.Text.Render(label)
	}
	return fmt.Sprintf("%s%s  %s", marker, label, RenderSwatch(c))
}
