// Package cli provides the catalog export command.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/opencode-ai/swatch/internal/config"
	"github.com/opencode-ai/swatch/palette"
)

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "output format: json or yaml")
	exportCmd.Flags().BoolVar(&exportBoth, "both", false, "export both light and dark values")
}

var (
	exportFormat string
	exportBoth   bool
)

// exportEntry is one resolved key in export output. Explicit --light or
// --dark limits the export to that side; --both keeps full pairs.
type exportEntry struct {
	Key   string `json:"key" yaml:"key"`
	Light string `json:"light,omitempty" yaml:"light,omitempty"`
	Dark  string `json:"dark,omitempty" yaml:"dark,omitempty"`
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the resolved catalog",
	Long:  "Export every key's resolved values for design-token consumers.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportBoth && (darkFlag || lightFlag) {
			return fmt.Errorf("--both cannot be combined with --dark or --light")
		}

		ctx := context.Background()

		resolver, err := buildResolver(ctx)
		if err != nil {
			return err
		}

		cfg := GetConfig()
		includeLight, includeDark := exportSides(cfg.Mode, exportBoth)
		entries := collectExportEntries(resolver, includeLight, includeDark)

		format := exportFormat
		if !cmd.Flags().Changed("format") && cfg.Output == config.OutputYAML {
			format = "yaml"
		}

		switch format {
		case "json":
			return WriteOutput(os.Stdout, entries)
		case "yaml":
			data, err := yaml.Marshal(entries)
			if err != nil {
				return fmt.Errorf("failed to encode export: %w", err)
			}
			_, err = os.Stdout.Write(data)
			return err
		default:
			return fmt.Errorf("unknown export format %q (want json or yaml)", format)
		}
	},
}

// exportSides decides which sides an export includes. --both forces full
// pairs; otherwise an explicit light or dark mode limits the export to
// that side.
func exportSides(mode string, both bool) (includeLight, includeDark bool) {
	if both {
		return true, true
	}
	return mode != config.ModeDark, mode != config.ModeLight
}

func collectExportEntries(r *palette.Resolver, includeLight, includeDark bool) []exportEntry {
	keys := r.Keys()
	entries := make([]exportEntry, 0, len(keys))
	for _, key := range keys {
		entry := exportEntry{Key: key}
		if includeLight {
			c, _ := r.Lookup(key, false)
			entry.Light = c.HexRGBA()
		}
		if includeDark {
			c, _ := r.Lookup(key, true)
			entry.Dark = c.HexRGBA()
		}
		entries = append(entries, entry)
	}
	return entries
}
