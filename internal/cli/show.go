// Package cli provides the key inspection command.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/swatch/palette"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

// keyDetail is the show command's JSON shape.
type keyDetail struct {
	Key       string    `json:"key"`
	Source    string    `json:"source"`
	Invariant bool      `json:"invariant"`
	Light     modeColor `json:"light"`
	Dark      modeColor `json:"dark"`
}

type modeColor struct {
	Hex   string  `json:"hex"`
	R     uint8   `json:"r"`
	G     uint8   `json:"g"`
	B     uint8   `json:"b"`
	Alpha float64 `json:"alpha"`
}

func newModeColor(c palette.Color) modeColor {
	return modeColor{Hex: c.HexRGBA(), R: c.R, G: c.G, B: c.B, Alpha: c.Alpha()}
}

var showCmd = &cobra.Command{
	Use:   "show <key>",
	Short: "Show one key in both themes",
	Long:  "Show a key's resolved colors, channels and source for both themes.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		key := args[0]

		resolver, err := buildResolver(ctx)
		if err != nil {
			return err
		}

		light, ok := resolver.Lookup(key, false)
		if !ok {
			return &PreflightError{
				Message:  fmt.Sprintf("unknown color key %q", key),
				Hint:     "Keys are dot-namespaced, like text.primary or accent.danger",
				NextStep: "swatch list",
			}
		}
		dark, _ := resolver.Lookup(key, true)

		detail := keyDetail{
			Key:       key,
			Source:    keySource(resolver, key),
			Invariant: light == dark,
			Light:     newModeColor(light),
			Dark:      newModeColor(dark),
		}

		if IsJSONOutput() {
			return WriteOutput(os.Stdout, detail)
		}

		return writeKeyValues(os.Stdout, [][2]string{
			{"Key", detail.Key},
			{"Source", detail.Source},
			{"Invariant", formatBool(detail.Invariant)},
			{"Light", swatchCell(light)},
			{"Dark", swatchCell(dark)},
			{"Light RGBA", formatChannels(light)},
			{"Dark RGBA", formatChannels(dark)},
		})
	},
}

func formatChannels(c palette.Color) string {
	return fmt.Sprintf("%d, %d, %d (alpha %.2f)", c.R, c.G, c.B, c.Alpha())
}

func formatBool(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
