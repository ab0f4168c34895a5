// Package styles adapts resolved palette colors to lipgloss for terminal
// rendering. It is the only package that knows about the UI toolkit; the
// palette itself stays framework-free.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/swatch/palette"
)

// Color converts a palette color to a lipgloss terminal color.
func Color(c palette.Color) lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

// Adaptive resolves key for both themes and returns a lipgloss adaptive
// color, letting lipgloss pick the side matching the terminal background.
// Unknown keys fall back to the resolver's accent.primary so output stays
// visible rather than failing.
func Adaptive(r *palette.Resolver, key string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{
		Light: resolveHex(r, key, false),
		Dark:  resolveHex(r, key, true),
	}
}

func resolveHex(r *palette.Resolver, key string, dark bool) string {
	fallback := r.Resolve("accent.primary", dark, palette.Black)
	return r.Resolve(key, dark, fallback).Hex()
}

// Mode binds a resolver to an already-detected theme flag so render code can
// ask for keys without threading the flag everywhere.
type Mode struct {
	resolver *palette.Resolver
	dark     bool
}

// NewMode returns a mode for the given resolver and theme flag.
func NewMode(r *palette.Resolver, dark bool) Mode {
	return Mode{resolver: r, dark: dark}
}

// Dark reports the bound theme flag.
func (m Mode) Dark() bool {
	return m.dark
}

// Resolve returns the palette color for key, falling back to accent.primary.
func (m Mode) Resolve(key string) palette.Color {
	fallback := m.resolver.Resolve("accent.primary", m.dark, palette.Black)
	return m.resolver.Resolve(key, m.dark, fallback)
}

// Color returns the lipgloss color for key.
func (m Mode) Color(key string) lipgloss.Color {
	return Color(m.Resolve(key))
}

// Foreground returns a style with key as the foreground color.
func (m Mode) Foreground(key string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(m.Color(key))
}

// Background returns a style with key as the background color.
func (m Mode) Background(key string) lipgloss.Style {
	return lipgloss.NewStyle().Background(m.Color(key))
}

// Styles contains lipgloss styles derived from the semantic catalog.
type Styles struct {
	Mode     Mode
	Title    lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	Panel    lipgloss.Style
	Border   lipgloss.Style
	Focus    lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Info     lipgloss.Style
	Disabled lipgloss.Style
	Link     lipgloss.Style
}

// Build converts resolved catalog colors into lipgloss styles.
func Build(r *palette.Resolver, dark bool) Styles {
	m := NewMode(r, dark)

	return Styles{
		Mode:     m,
		Title:    m.Foreground("text.primary").Bold(true),
		Text:     m.Foreground("text.primary"),
		Muted:    m.Foreground("text.muted"),
		Accent:   m.Foreground("accent.primary"),
		Panel:    m.Foreground("text.primary").Background(m.Color("surface.card")).BorderStyle(lipgloss.NormalBorder()).BorderForeground(m.Color("border.default")),
		Border:   m.Foreground("border.default"),
		Focus:    m.Foreground("border.focus").Bold(true),
		Success:  m.Foreground("accent.success"),
		Warning:  m.Foreground("accent.warning"),
		Error:    m.Foreground("accent.danger"),
		Info:     m.Foreground("accent.info"),
		Disabled: m.Foreground("text.disabled"),
		Link:     m.Foreground("text.link").Underline(true),
	}
}

// Default builds styles for the built-in catalog with no overrides.
func Default(dark bool) Styles {
	return Build(palette.New(), dark)
}
