// Package cli provides the scripting-friendly resolve command.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/swatch/palette"
)

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().StringVar(&resolveFallback, "fallback", "", "hex color returned for unknown keys (default: resolved accent.primary)")
}

var resolveFallback string

var resolveCmd = &cobra.Command{
	Use:   "resolve <key>",
	Short: "Resolve one key to a hex color",
	Long: `Resolve a key for the active theme mode and print the hex value.
Unknown keys print the fallback color; resolve never fails on a miss.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		key := args[0]

		resolver, err := buildResolver(ctx)
		if err != nil {
			return err
		}

		dark := resolveDark(GetConfig())
		fallback := defaultFallback(resolver, dark)
		if resolveFallback != "" {
			fallback, err = palette.Hex(resolveFallback)
			if err != nil {
				return fmt.Errorf("invalid --fallback: %w", err)
			}
		}

		color := resolver.Resolve(key, dark, fallback)

		if IsJSONOutput() {
			return WriteOutput(os.Stdout, struct {
				Key   string `json:"key"`
				Dark  bool   `json:"dark"`
				Hex   string `json:"hex"`
				Found bool   `json:"found"`
			}{Key: key, Dark: dark, Hex: color.HexRGBA(), Found: resolver.Has(key)})
		}

		fmt.Fprintln(os.Stdout, color.HexRGBA())
		return nil
	},
}
