// Package tui implements the interactive catalog browser.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/opencode-ai/swatch/internal/tui/components"
	"github.com/opencode-ai/swatch/palette"
	"github.com/opencode-ai/swatch/styles"
	"github.com/opencode-ai/swatch/themes"
)

// Config carries everything the browser needs from the host command.
type Config struct {
	// Themes are the selectable override sets, sorted by name.
	Themes []*themes.Theme
	// Theme names the initially active theme; empty starts on the plain
	// built-in catalog.
	Theme string
	// Dark selects the initial display side.
	Dark bool
}

// RunWithConfig launches the catalog browser and blocks until the user quits.
func RunWithConfig(cfg Config) error {
	program := tea.NewProgram(newModel(cfg), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

const (
	minWidth  = 60
	minHeight = 15
)

type model struct {
	width  int
	height int

	dark     bool
	themes   []*themes.Theme
	themeIdx int // -1 selects the plain built-in catalog

	resolver *palette.Resolver
	styles   styles.Styles

	groups   []string
	groupIdx int
	cursor   int

	status string
}

func newModel(cfg Config) model {
	m := model{
		dark:     cfg.Dark,
		themes:   cfg.Themes,
		themeIdx: -1,
	}
	if cfg.Theme != "" {
		for i, theme := range cfg.Themes {
			if theme.Name == cfg.Theme {
				m.themeIdx = i
				break
			}
		}
	}
	m.rebuild()
	return m
}

// rebuild recreates the resolver for the active theme and refreshes styles
// and groups. Themes can add keys, so the groups and cursor are re-clamped.
func (m *model) rebuild() {
	resolver := palette.New()
	if m.themeIdx >= 0 && m.themeIdx < len(m.themes) {
		if err := m.themes[m.themeIdx].Apply(resolver); err != nil {
			m.status = fmt.Sprintf("theme %s: %v", m.themes[m.themeIdx].Name, err)
		}
	}
	m.resolver = resolver
	m.styles = styles.Build(resolver, m.dark)
	m.groups = groupNames(resolver)
	if m.groupIdx >= len(m.groups) {
		m.groupIdx = 0
	}
	m.clampCursor()
}

// groupNames returns the distinct key namespaces. Keys() is sorted, so
// first-appearance order is already sorted.
func groupNames(r *palette.Resolver) []string {
	seen := map[string]bool{}
	var groups []string
	for _, key := range r.Keys() {
		ns := palette.Namespace(key)
		if !seen[ns] {
			seen[ns] = true
			groups = append(groups, ns)
		}
	}
	return groups
}

func (m model) groupKeys() []string {
	if len(m.groups) == 0 {
		return nil
	}
	group := m.groups[m.groupIdx]
	var out []string
	for _, k := range m.resolver.Keys() {
		if palette.Namespace(k) == group {
			out = append(out, k)
		}
	}
	return out
}

func (m *model) clampCursor() {
	count := len(m.groupKeys())
	if count == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= count {
		m.cursor = count - 1
	}
}

func (m *model) cycleTheme(delta int) {
	if len(m.themes) == 0 {
		return
	}
	m.themeIdx += delta
	if m.themeIdx >= len(m.themes) {
		m.themeIdx = -1
	} else if m.themeIdx < -1 {
		m.themeIdx = len(m.themes) - 1
	}
	m.status = ""
	m.rebuild()
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, browserKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, browserKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, browserKeys.Down):
			if m.cursor < len(m.groupKeys())-1 {
				m.cursor++
			}
		case key.Matches(msg, browserKeys.NextGroup):
			if len(m.groups) > 0 {
				m.groupIdx = (m.groupIdx + 1) % len(m.groups)
				m.cursor = 0
			}
		case key.Matches(msg, browserKeys.PrevGroup):
			if len(m.groups) > 0 {
				m.groupIdx = (m.groupIdx - 1 + len(m.groups)) % len(m.groups)
				m.cursor = 0
			}
		case key.Matches(msg, browserKeys.ToggleDark):
			m.dark = !m.dark
			m.rebuild()
		case key.Matches(msg, browserKeys.NextTheme):
			m.cycleTheme(1)
		case key.Matches(msg, browserKeys.PrevTheme):
			m.cycleTheme(-1)
		}
	}
	return m, nil
}

func (m model) View() string {
	if m.width > 0 && m.height > 0 {
		if m.width < minWidth || m.height < minHeight {
			return fmt.Sprintf("%s\n", joinLines(m.smallViewLines()))
		}
	}

	lines := []string{
		m.styles.Title.Render("Swatch catalog"),
		m.styles.Muted.Render(m.statusLine()),
		"",
		components.RenderGroupTabs(m.styles, m.groups, m.groupIdx),
		"",
	}

	lines = append(lines, m.listLines()...)

	if detail := m.detailPanel(); detail != "" {
		lines = append(lines, "", detail)
	}

	if m.status != "" {
		lines = append(lines, "", m.styles.Warning.Render(m.status))
	}

	lines = append(lines, "", m.styles.Muted.Render("j/k move  tab group  d dark/light  t/T theme  q quit"))

	return fmt.Sprintf("%s\n", joinLines(lines))
}

func (m model) smallViewLines() []string {
	message := fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height)
	hint := fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight)

	return []string{
		m.styles.Warning.Render(message),
		m.styles.Muted.Render(hint),
		m.styles.Muted.Render("Press q to quit."),
	}
}

func (m model) statusLine() string {
	side := "light"
	if m.dark {
		side = "dark"
	}
	return fmt.Sprintf("mode: %s   theme: %s", side, m.themeName())
}

func (m model) themeName() string {
	if m.themeIdx < 0 || m.themeIdx >= len(m.themes) {
		return "default"
	}
	return m.themes[m.themeIdx].Name
}

func (m model) listLines() []string {
	groupKeys := m.groupKeys()
	if len(groupKeys) == 0 {
		return []string{m.styles.Muted.Render("No keys in this group.")}
	}

	visible := m.visibleRows()
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := start + visible
	if end > len(groupKeys) {
		end = len(groupKeys)
	}

	keyWidth := 0
	for _, k := range groupKeys {
		if len(k) > keyWidth {
			keyWidth = len(k)
		}
	}

	lines := make([]string, 0, end-start+1)
	for i := start; i < end; i++ {
		c, _ := m.resolver.Lookup(groupKeys[i], m.dark)
		lines = append(lines, components.RenderKeyRow(m.styles, groupKeys[i], c, i == m.cursor, keyWidth))
	}
	if end < len(groupKeys) {
		lines = append(lines, m.styles.Muted.Render(fmt.Sprintf("... %d more", len(groupKeys)-end)))
	}
	return lines
}

// visibleRows returns how many list rows fit between the header and footer.
func (m model) visibleRows() int {
	groupKeys := m.groupKeys()
	if m.height == 0 {
		return len(groupKeys)
	}
	rows := m.height - 13
	if rows < 4 {
		rows = 4
	}
	return rows
}

func (m model) detailPanel() string {
	groupKeys := m.groupKeys()
	if m.cursor >= len(groupKeys) {
		return ""
	}
	selected := groupKeys[m.cursor]
	light, _ := m.resolver.Lookup(selected, false)
	dark, _ := m.resolver.Lookup(selected, true)
	return components.RenderKeyDetail(m.styles, selected, light, dark)
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	out := lines[0]
	for _, line := range lines[1:] {
		out += "\n" + line
	}
	return out
}
