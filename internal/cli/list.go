// Package cli provides catalog listing commands.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/swatch/palette"
)

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listGroup, "group", "", "only list keys in this namespace (text, surface, accent, ...)")
	listCmd.Flags().BoolVar(&listCustom, "custom", false, "only list keys overridden by the active theme")
}

var (
	listGroup  string
	listCustom bool
)

// keyListing is one list row in JSON output.
type keyListing struct {
	Key    string `json:"key"`
	Light  string `json:"light"`
	Dark   string `json:"dark"`
	Source string `json:"source"`
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List color keys",
	Long:  "List every resolvable color key with its light and dark values.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		resolver, err := buildResolver(ctx)
		if err != nil {
			return err
		}

		keys := resolver.Keys()
		if listCustom {
			keys = resolver.CustomKeys()
		}
		keys = filterKeysByGroup(keys, listGroup)

		listings := make([]keyListing, 0, len(keys))
		for _, key := range keys {
			light, _ := resolver.Lookup(key, false)
			dark, _ := resolver.Lookup(key, true)
			listings = append(listings, keyListing{
				Key:    key,
				Light:  light.HexRGBA(),
				Dark:   dark.HexRGBA(),
				Source: keySource(resolver, key),
			})
		}

		if IsJSONOutput() {
			return WriteOutput(os.Stdout, listings)
		}

		withSwatches := colorEnabled()
		headers := []string{"KEY", "LIGHT", "DARK", "SOURCE"}
		if withSwatches {
			headers = append(headers, "")
		}
		return writeTable(os.Stdout, headers, listTableRows(resolver, listings, withSwatches))
	},
}

// listTableRows renders listings as table rows. Hex values stay plain so the
// columns align; swatch previews go in a trailing column, where tabwriter
// computes no padding.
func listTableRows(r *palette.Resolver, listings []keyListing, withSwatches bool) [][]string {
	rows := make([][]string, 0, len(listings))
	for _, listing := range listings {
		row := []string{listing.Key, listing.Light, listing.Dark, listing.Source}
		if withSwatches {
			light, _ := r.Lookup(listing.Key, false)
			dark, _ := r.Lookup(listing.Key, true)
			row = append(row, swatchPair(light, dark))
		}
		rows = append(rows, row)
	}
	return rows
}

func filterKeysByGroup(keys []string, group string) []string {
	if group == "" {
		return keys
	}
	filtered := make([]string, 0, len(keys))
	for _, key := range keys {
		if palette.Namespace(key) == group {
			filtered = append(filtered, key)
		}
	}
	return filtered
}

func keySource(r *palette.Resolver, key string) string {
	if r.IsCustom(key) {
		return "custom"
	}
	return "builtin"
}
