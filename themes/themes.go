// Package themes provides named color override sets loaded from YAML files,
// applied on top of the built-in palette catalog.
package themes

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/opencode-ai/swatch/palette"
)

var (
	// ErrThemeNameRequired is returned when a theme has no name.
	ErrThemeNameRequired = errors.New("theme name is required")
	// ErrThemeNoColors is returned when a theme overrides no colors.
	ErrThemeNoColors = errors.New("theme must override at least one color")
	// ErrThemeNotFound is returned when a theme is not found.
	ErrThemeNotFound = errors.New("theme not found")
)

// ThemeValidationError describes a validation error in a theme.
type ThemeValidationError struct {
	Theme   string
	Key     string
	Message string
}

func (e *ThemeValidationError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("theme %s: color %q: %s", e.Theme, e.Key, e.Message)
	}
	return fmt.Sprintf("theme %s: %s", e.Theme, e.Message)
}

// ColorSpec is a single override value. In YAML it is either a hex scalar for
// a theme-invariant color or a {light, dark} mapping for a pair.
type ColorSpec struct {
	Fixed string `json:"fixed,omitempty"`
	Light string `json:"light,omitempty"`
	Dark  string `json:"dark,omitempty"`
}

// UnmarshalYAML accepts both spec forms.
func (s *ColorSpec) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		return value.Decode(&s.Fixed)
	case yaml.MappingNode:
		var aux struct {
			Light string `yaml:"light"`
			Dark  string `yaml:"dark"`
		}
		if err := value.Decode(&aux); err != nil {
			return err
		}
		s.Light, s.Dark = aux.Light, aux.Dark
		return nil
	default:
		return errors.New("color must be a hex string or a light/dark mapping")
	}
}

// MarshalYAML writes the compact scalar form for fixed colors.
func (s ColorSpec) MarshalYAML() (interface{}, error) {
	if s.Fixed != "" {
		return s.Fixed, nil
	}
	return struct {
		Light string `yaml:"light"`
		Dark  string `yaml:"dark"`
	}{Light: s.Light, Dark: s.Dark}, nil
}

// IsFixed reports whether the value is the single-color form.
func (s ColorSpec) IsFixed() bool {
	return s.Fixed != ""
}

// Theme is a named set of palette key overrides.
type Theme struct {
	Name        string               `yaml:"name" json:"name"`
	Description string               `yaml:"description,omitempty" json:"description,omitempty"`
	Colors      map[string]ColorSpec `yaml:"colors" json:"colors"`
	Source      string               `yaml:"-" json:"-"` // file path, "builtin" or "store"
}

// Keys returns the overridden palette keys in sorted order.
func (t *Theme) Keys() []string {
	keys := make([]string, 0, len(t.Colors))
	for k := range t.Colors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate checks that the theme has a name and that every override parses.
func (t *Theme) Validate() error {
	if t.Name == "" {
		return ErrThemeNameRequired
	}
	if len(t.Colors) == 0 {
		return ErrThemeNoColors
	}
	for _, key := range t.Keys() {
		if strings.TrimSpace(key) == "" {
			return &ThemeValidationError{Theme: t.Name, Message: "color key must not be empty"}
		}
		spec := t.Colors[key]
		if spec.IsFixed() {
			if _, err := palette.Hex(spec.Fixed); err != nil {
				return &ThemeValidationError{Theme: t.Name, Key: key, Message: err.Error()}
			}
			continue
		}
		if spec.Light == "" || spec.Dark == "" {
			return &ThemeValidationError{Theme: t.Name, Key: key, Message: "pair form needs both light and dark"}
		}
		if _, err := palette.Hex(spec.Light); err != nil {
			return &ThemeValidationError{Theme: t.Name, Key: key, Message: err.Error()}
		}
		if _, err := palette.Hex(spec.Dark); err != nil {
			return &ThemeValidationError{Theme: t.Name, Key: key, Message: err.Error()}
		}
	}
	return nil
}

// Apply validates the theme and registers every override on the resolver.
// Applying a second theme overrides overlapping keys; the palette's
// last-write-wins semantics carry over.
func (t *Theme) Apply(r *palette.Resolver) error {
	if err := t.Validate(); err != nil {
		return err
	}
	for key, spec := range t.Colors {
		if spec.IsFixed() {
			c, err := palette.Hex(spec.Fixed)
			if err != nil {
				return &ThemeValidationError{Theme: t.Name, Key: key, Message: err.Error()}
			}
			r.RegisterFixed(key, c)
			continue
		}
		light, err := palette.Hex(spec.Light)
		if err != nil {
			return &ThemeValidationError{Theme: t.Name, Key: key, Message: err.Error()}
		}
		dark, err := palette.Hex(spec.Dark)
		if err != nil {
			return &ThemeValidationError{Theme: t.Name, Key: key, Message: err.Error()}
		}
		r.RegisterPair(key, light, dark)
	}
	return nil
}
