package cli

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/opencode-ai/swatch/themes"
)

func TestListThemesWithoutStore(t *testing.T) {
	// The default config has no store path, so the saved-theme branch is
	// skipped with a warning and listing continues.
	all, err := listThemes(context.Background())
	if err != nil {
		t.Fatalf("listThemes: %v", err)
	}

	names := make(map[string]bool, len(all))
	for _, theme := range all {
		names[theme.Name] = true
	}
	for _, want := range []string{"high-contrast", "midnight", "paper"} {
		if !names[want] {
			t.Errorf("Expected bundled theme %q in listing", want)
		}
	}

	sorted := sort.SliceIsSorted(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	if !sorted {
		t.Error("Expected themes sorted by name")
	}
}

func TestFindThemeUnknown(t *testing.T) {
	_, err := findTheme(context.Background(), "definitely-not-a-theme")
	if !errors.Is(err, themes.ErrThemeNotFound) {
		t.Errorf("Expected ErrThemeNotFound, got %v", err)
	}
}
