// Package cli provides theme lookup shared by commands.
package cli

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/swatch/internal/config"
	"github.com/opencode-ai/swatch/internal/logging"
	"github.com/opencode-ai/swatch/internal/store"
	"github.com/opencode-ai/swatch/palette"
	"github.com/opencode-ai/swatch/themes"
)

// resolveDark maps the configured mode to a concrete theme flag. Auto asks
// the terminal background and defaults to light without one.
func resolveDark(cfg *config.Config) bool {
	switch cfg.Mode {
	case config.ModeDark:
		return true
	case config.ModeLight:
		return false
	default:
		if IsNonInteractive() {
			return false
		}
		return lipgloss.HasDarkBackground()
	}
}

// defaultFallback is what unmatched keys resolve to unless a command
// overrides it.
func defaultFallback(r *palette.Resolver, dark bool) palette.Color {
	return r.Resolve("accent.primary", dark, palette.Black)
}

func openStore() (*store.DB, error) {
	database, err := store.Open(GetConfig().Store.Path)
	if err != nil {
		return nil, err
	}
	if _, err := database.MigrateUp(context.Background()); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}

// projectDir anchors file-theme search paths at the working directory.
func projectDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	return dir
}

// listThemes returns every known theme: project and user theme files first,
// then saved store themes, then the bundled builtins. The first occurrence of
// a name wins.
func listThemes(ctx context.Context) ([]*themes.Theme, error) {
	seen := make(map[string]struct{})
	var all []*themes.Theme
	add := func(theme *themes.Theme) {
		if _, exists := seen[theme.Name]; exists {
			return
		}
		seen[theme.Name] = struct{}{}
		all = append(all, theme)
	}

	for _, dir := range themes.SearchPaths(projectDir()) {
		loaded, err := themes.LoadDir(dir)
		if err != nil {
			return nil, err
		}
		for _, theme := range loaded {
			add(theme)
		}
	}

	database, err := openStore()
	if err != nil {
		logger := logging.Component("cli")
		logger.Warn().Err(err).Msg("saved themes unavailable")
	} else {
		defer database.Close()
		saved, err := store.NewThemeRepository(database).List(ctx)
		if err != nil {
			return nil, err
		}
		for _, s := range saved {
			add(s.Theme())
		}
	}

	builtins, err := themes.LoadBuiltins()
	if err != nil {
		return nil, err
	}
	for _, theme := range builtins {
		add(theme)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all, nil
}

// findTheme looks a theme up by name across files, store and builtins.
func findTheme(ctx context.Context, name string) (*themes.Theme, error) {
	all, err := listThemes(ctx)
	if err != nil {
		return nil, err
	}
	for _, theme := range all {
		if theme.Name == name {
			return theme, nil
		}
	}
	return nil, fmt.Errorf("theme %q: %w", name, themes.ErrThemeNotFound)
}

// buildResolver returns the palette resolver with the configured theme (if
// any) applied.
func buildResolver(ctx context.Context) (*palette.Resolver, error) {
	resolver := palette.New()
	name := GetConfig().Theme
	if name == "" {
		return resolver, nil
	}
	theme, err := findTheme(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := theme.Apply(resolver); err != nil {
		return nil, fmt.Errorf("apply theme %q: %w", name, err)
	}
	return resolver, nil
}
