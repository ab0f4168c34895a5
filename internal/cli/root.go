// Package cli implements the swatch command line interface.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/swatch/internal/config"
	"github.com/opencode-ai/swatch/internal/logging"
)

// Version information (set at build time).
var (
	Version   = "dev"
	CommitSHA = "unknown"
	BuildDate = "unknown"
)

// Global flags.
var (
	verbose        bool
	noColor        bool
	jsonOutput     bool
	nonInteractive bool
	modeFlag       string
	themeFlag      string
	darkFlag       bool
	lightFlag      bool
)

var appConfig *config.Config

var rootCmd = &cobra.Command{
	Use:   "swatch",
	Short: "Semantic color tokens for terminal UIs",
	Long: `swatch resolves semantic color keys ("text.primary", "accent.danger")
to concrete color values for light and dark themes.

It ships a built-in catalog covering text, surfaces, accents, borders,
icons, shadows and sign-in provider brand colors, plus named override
themes loaded from YAML files or a local store.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := ""
		if verbose {
			level = "debug"
		}
		if err := logging.Configure(level); err != nil {
			return err
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if darkFlag && lightFlag {
			return fmt.Errorf("--dark and --light are mutually exclusive")
		}
		if modeFlag != "" {
			cfg.Mode = modeFlag
		}
		if darkFlag {
			cfg.Mode = config.ModeDark
		}
		if lightFlag {
			cfg.Mode = config.ModeLight
		}
		if cmd.Flags().Changed("theme") {
			cfg.Theme = themeFlag
		}
		if noColor {
			cfg.NoColor = true
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		appConfig = cfg
		return nil
	},
}

// Execute runs the swatch CLI.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		var preflight *PreflightError
		if errors.As(err, &preflight) {
			fmt.Fprintln(os.Stderr, preflight.Format())
		} else {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "write machine-readable JSON to stdout")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "skip prompts and terminal detection")
	rootCmd.PersistentFlags().StringVar(&modeFlag, "mode", "", "theme mode: auto, light or dark")
	rootCmd.PersistentFlags().BoolVar(&darkFlag, "dark", false, "resolve for dark backgrounds (same as --mode dark)")
	rootCmd.PersistentFlags().BoolVar(&lightFlag, "light", false, "resolve for light backgrounds (same as --mode light)")
	rootCmd.PersistentFlags().StringVar(&themeFlag, "theme", "", "named theme to apply on top of the catalog")

	rootCmd.SetVersionTemplate(fmt.Sprintf("swatch version %s\n  commit: %s\n  built:  %s\n", Version, CommitSHA, BuildDate))
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("swatch version %s\n", Version)
		fmt.Printf("  commit: %s\n", CommitSHA)
		fmt.Printf("  built:  %s\n", BuildDate)
	},
}

// GetConfig returns the loaded configuration; commands run before or outside
// Execute (tests) get defaults.
func GetConfig() *config.Config {
	if appConfig == nil {
		return config.Default()
	}
	return appConfig
}
