// Package cli provides theme management CLI commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/swatch/internal/store"
	"github.com/opencode-ai/swatch/palette"
	"github.com/opencode-ai/swatch/themes"
)

func init() {
	rootCmd.AddCommand(themesCmd)
	themesCmd.AddCommand(themesListCmd)
	themesCmd.AddCommand(themesShowCmd)
	themesCmd.AddCommand(themesSaveCmd)
	themesCmd.AddCommand(themesRemoveCmd)
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "Manage themes",
	Long:  "List, inspect, save, and remove color themes.",
}

// themeListing is one theme in list output.
type themeListing struct {
	Name        string `json:"name"`
	Source      string `json:"source"`
	Keys        int    `json:"keys"`
	Description string `json:"description,omitempty"`
}

var themesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available themes",
	Long:  "List themes from search paths, the local store, and the built-in set.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		all, err := listThemes(ctx)
		if err != nil {
			return err
		}

		listings := make([]themeListing, 0, len(all))
		for _, theme := range all {
			listings = append(listings, themeListing{
				Name:        theme.Name,
				Source:      theme.Source,
				Keys:        len(theme.Colors),
				Description: theme.Description,
			})
		}

		if IsJSONOutput() {
			return WriteOutput(os.Stdout, listings)
		}

		if len(listings) == 0 {
			fmt.Fprintln(os.Stdout, "No themes found.")
			return nil
		}

		rows := make([][]string, 0, len(listings))
		for _, listing := range listings {
			rows = append(rows, []string{
				listing.Name,
				listing.Source,
				fmt.Sprintf("%d", listing.Keys),
				listing.Description,
			})
		}
		return writeTable(os.Stdout, []string{"NAME", "SOURCE", "KEYS", "DESCRIPTION"}, rows)
	},
}

var themesShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a theme's colors",
	Long:  "Show every key a theme overrides and the values it assigns.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		theme, err := findTheme(ctx, args[0])
		if err != nil {
			return err
		}

		if IsJSONOutput() {
			return WriteOutput(os.Stdout, theme)
		}

		if err := writeKeyValues(os.Stdout, [][2]string{
			{"Name", theme.Name},
			{"Source", theme.Source},
			{"Description", theme.Description},
			{"Keys", fmt.Sprintf("%d", len(theme.Colors))},
		}); err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout)

		rows := make([][]string, 0, len(theme.Colors))
		for _, key := range theme.Keys() {
			spec := theme.Colors[key]
			rows = append(rows, []string{key, formatSpecCell(spec, false), formatSpecCell(spec, true)})
		}
		return writeTable(os.Stdout, []string{"KEY", "LIGHT", "DARK"}, rows)
	},
}

// formatSpecCell renders one side of a theme color as a normalized hex,
// reusing the fixed value for both sides when the theme does not split them.
// The cells sit in interior table columns, so no color escapes here.
func formatSpecCell(spec themes.ColorSpec, dark bool) string {
	value := spec.Fixed
	if !spec.IsFixed() {
		value = spec.Light
		if dark {
			value = spec.Dark
		}
	}
	c, err := palette.Hex(value)
	if err != nil {
		return value
	}
	return c.HexRGBA()
}

var themesSaveCmd = &cobra.Command{
	Use:   "save <file>",
	Short: "Save a theme to the local store",
	Long:  "Validate a theme file and persist it to the local store, overwriting any theme with the same name.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		theme, err := themes.Load(args[0])
		if err != nil {
			return err
		}

		step := startProgress("Saving theme")

		db, err := openStore()
		if err != nil {
			step.Fail(err)
			return err
		}
		defer db.Close()

		saved, err := store.NewThemeRepository(db).Save(ctx, theme)
		if err != nil {
			step.Fail(err)
			return fmt.Errorf("failed to save theme: %w", err)
		}
		step.Done()

		if IsJSONOutput() {
			return WriteOutput(os.Stdout, saved)
		}

		fmt.Fprintf(os.Stdout, "Theme %q saved (%d keys)\n", saved.Name, len(saved.Colors))
		return nil
	},
}

var themesRemoveCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Remove a theme from the local store",
	Long:  "Delete a stored theme by name. Built-in and file themes cannot be removed.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		if err := store.NewThemeRepository(db).Delete(ctx, args[0]); err != nil {
			if errors.Is(err, store.ErrThemeNotFound) {
				return &PreflightError{
					Message:  fmt.Sprintf("no stored theme named %q", args[0]),
					Hint:     "Only themes saved with 'swatch themes save' can be removed.",
					NextStep: "Run 'swatch themes list' to see theme sources.",
				}
			}
			return fmt.Errorf("failed to remove theme: %w", err)
		}

		fmt.Fprintf(os.Stdout, "Theme %q removed\n", args[0])
		return nil
	},
}
