package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/swatch/palette"
)

func TestAdaptive(t *testing.T) {
	t.Parallel()
	r := palette.New()
	got := Adaptive(r, "text.primary")
	if got.Light != "#111827" || got.Dark != "#F9FAFB" {
		t.Errorf("Adaptive(text.primary) = %+v", got)
	}
}

func TestAdaptiveUnknownKeyFallsBackToAccent(t *testing.T) {
	t.Parallel()
	r := palette.New()
	got := Adaptive(r, "no.such.key")
	want := Adaptive(r, "accent.primary")
	if got != want {
		t.Errorf("fallback = %+v, want accent.primary %+v", got, want)
	}
}

func TestAdaptiveSeesRegistrations(t *testing.T) {
	t.Parallel()
	r := palette.New()
	r.RegisterPair("text.primary", palette.MustHex("#101010"), palette.MustHex("#EFEFEF"))
	got := Adaptive(r, "text.primary")
	if got.Light != "#101010" || got.Dark != "#EFEFEF" {
		t.Errorf("Adaptive after registration = %+v", got)
	}
}

func TestModeResolve(t *testing.T) {
	t.Parallel()
	r := palette.New()
	light := NewMode(r, false)
	dark := NewMode(r, true)
	if got := light.Resolve("surface.background").Hex(); got != "#FFFFFF" {
		t.Errorf("light background = %s", got)
	}
	if got := dark.Resolve("surface.background").Hex(); got != "#111827" {
		t.Errorf("dark background = %s", got)
	}
	if light.Dark() || !dark.Dark() {
		t.Error("Dark() flag mismatch")
	}
	if got := light.Color("text.link"); got != lipgloss.Color("#2563EB") {
		t.Errorf("Color(text.link) = %v", got)
	}
}

func TestBuild(t *testing.T) {
	t.Parallel()
	r := palette.New()
	s := Build(r, true)
	if got := s.Text.GetForeground(); got != lipgloss.Color("#F9FAFB") {
		t.Errorf("Text foreground = %v", got)
	}
	if got := s.Error.GetForeground(); got != lipgloss.Color("#EF4444") {
		t.Errorf("Error foreground = %v", got)
	}
	if !s.Title.GetBold() {
		t.Error("Title is not bold")
	}
	if !s.Link.GetUnderline() {
		t.Error("Link is not underlined")
	}
	if got := s.Panel.GetBackground(); got != lipgloss.Color("#1F2937") {
		t.Errorf("Panel background = %v", got)
	}
	if !s.Mode.Dark() {
		t.Error("Styles lost the theme flag")
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()
	s := Default(false)
	if got := s.Text.GetForeground(); got != lipgloss.Color("#111827") {
		t.Errorf("default light Text foreground = %v", got)
	}
}
