// Package cli provides TUI launch commands.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/swatch/internal/tui"
)

func init() {
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Browse the catalog interactively",
	Long:  "Launch the interactive catalog browser with live mode and theme switching.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPreview()
	},
}

func runPreview() error {
	if IsNonInteractive() || !hasTTY() {
		return &PreflightError{
			Message:  "preview requires an interactive terminal",
			Hint:     "Run without --non-interactive and with a TTY, or use CLI subcommands",
			NextStep: "swatch list",
		}
	}

	ctx := context.Background()

	available, err := listThemes(ctx)
	if err != nil {
		return err
	}

	cfg := GetConfig()
	return tui.RunWithConfig(tui.Config{
		Themes: available,
		Theme:  cfg.Theme,
		Dark:   resolveDark(cfg),
	})
}
