package themes

import (
	"os"
	"path/filepath"
)

// SearchPaths returns theme search directories in precedence order.
func SearchPaths(projectDir string) []string {
	paths := make([]string, 0, 3)
	if projectDir != "" {
		paths = append(paths, filepath.Join(projectDir, ".swatch", "themes"))
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "swatch", "themes"))
	}

	paths = append(paths, filepath.Join(string(filepath.Separator), "usr", "share", "swatch", "themes"))
	return paths
}

// LoadFromSearchPaths loads themes from the search paths with first-hit
// precedence; bundled built-in themes come last.
func LoadFromSearchPaths(projectDir string) ([]*Theme, error) {
	paths := SearchPaths(projectDir)
	seen := make(map[string]*Theme)
	order := make([]string, 0)

	for _, path := range paths {
		themes, err := LoadDir(path)
		if err != nil {
			return nil, err
		}
		for _, theme := range themes {
			if _, exists := seen[theme.Name]; exists {
				continue
			}
			seen[theme.Name] = theme
			order = append(order, theme.Name)
		}
	}

	builtins, err := LoadBuiltins()
	if err != nil {
		return nil, err
	}
	for _, theme := range builtins {
		if _, exists := seen[theme.Name]; exists {
			continue
		}
		seen[theme.Name] = theme
		order = append(order, theme.Name)
	}

	resolved := make([]*Theme, 0, len(order))
	for _, name := range order {
		resolved = append(resolved, seen[name])
	}

	return resolved, nil
}

// Find loads a specific theme by name.
func Find(projectDir, name string) (*Theme, error) {
	themes, err := LoadFromSearchPaths(projectDir)
	if err != nil {
		return nil, err
	}
	for _, theme := range themes {
		if theme.Name == name {
			return theme, nil
		}
	}
	return nil, ErrThemeNotFound
}
