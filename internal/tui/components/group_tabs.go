// Package components provides reusable TUI components.
package components

import (
	"strings"

	"github.com/opencode-ai/swatch/styles"
)

// RenderGroupTabs renders the namespace tab bar with the active group
// bracketed and highlighted.
func RenderGroupTabs(styleSet styles.Styles, groups []string, active int) string {
	parts := make([]string, 0, len(groups))
	for i, group := range groups {
		if i == active {
			parts = append(parts, styleSet.Accent.Bold(true).Render("["+group+"]"))
		} else {
			parts = append(parts, styleSet.Muted.Render(" "+group+" "))
		}
	}
	return strings.Join(parts, " ")
}
