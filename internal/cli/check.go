// Package cli provides the contrast audit command.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/swatch/internal/config"
	"github.com/opencode-ai/swatch/palette"
)

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVar(&checkFg, "fg", "", "foreground key for a single custom check")
	checkCmd.Flags().StringVar(&checkBg, "bg", "", "background key for a single custom check")
	checkCmd.Flags().Float64Var(&checkMin, "min", palette.ContrastAA, "required ratio for a custom check")
}

var (
	checkFg  string
	checkBg  string
	checkMin float64
)

// contrastPair is one foreground/background audit with its required ratio.
type contrastPair struct {
	name      string
	fg        string
	bg        string
	threshold float64
}

// defaultAudit covers the combinations the catalog is designed to keep
// readable. Deliberately low-contrast keys such as text.muted and
// border.default are not audited.
var defaultAudit = []contrastPair{
	{"body text on background", "text.primary", "surface.background", palette.ContrastAA},
	{"body text on card", "text.primary", "surface.card", palette.ContrastAA},
	{"secondary text on background", "text.secondary", "surface.background", palette.ContrastAA},
	{"secondary text on card", "text.secondary", "surface.card", palette.ContrastAA},
	{"link on background", "text.link", "surface.background", palette.ContrastAA},
	{"link on card", "text.link", "surface.card", palette.ContrastAA},
	{"focus ring on background", "border.focus", "surface.background", palette.ContrastAALarge},
	{"icons on background", "icon.primary", "surface.background", palette.ContrastAALarge},
	{"accent fill on background", "accent.primary", "surface.background", palette.ContrastAALarge},
	{"inverse text on accent", "text.inverse", "accent.primary", palette.ContrastAALarge},
	{"google button label", "auth.google.foreground", "auth.google.background", palette.ContrastAALarge},
	{"apple button label", "auth.apple.foreground", "auth.apple.background", palette.ContrastAALarge},
	{"github button label", "auth.github.foreground", "auth.github.background", palette.ContrastAALarge},
	{"facebook button label", "auth.facebook.foreground", "auth.facebook.background", palette.ContrastAALarge},
	{"twitter button label", "auth.twitter.foreground", "auth.twitter.background", palette.ContrastAALarge},
	{"microsoft button label", "auth.microsoft.foreground", "auth.microsoft.background", palette.ContrastAALarge},
}

// contrastResult is the outcome of one audited pair in one mode.
type contrastResult struct {
	Name       string  `json:"name"`
	Foreground string  `json:"foreground"`
	Background string  `json:"background"`
	Dark       bool    `json:"dark"`
	Ratio      float64 `json:"ratio"`
	Threshold  float64 `json:"threshold"`
	Pass       bool    `json:"pass"`
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Audit catalog contrast ratios",
	Long:  "Check WCAG contrast ratios for the catalog's readable pairs, or for a single custom pair.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if (checkFg == "") != (checkBg == "") {
			return &PreflightError{
				Message: "custom checks need both ends of the pair",
				Hint:    "--fg and --bg must be given together.",
				NextStep: "Run 'swatch check --fg text.primary --bg surface.card' " +
					"or drop both flags for the default audit.",
			}
		}

		resolver, err := buildResolver(ctx)
		if err != nil {
			return err
		}

		audit := defaultAudit
		if checkFg != "" {
			for _, key := range []string{checkFg, checkBg} {
				if !resolver.Has(key) {
					return &PreflightError{
						Message:  fmt.Sprintf("unknown key %q", key),
						Hint:     "Both ends of the pair must be catalog or registered keys.",
						NextStep: "Run 'swatch list' to see every known key.",
					}
				}
			}
			audit = []contrastPair{{"custom pair", checkFg, checkBg, checkMin}}
		}

		results := runAudit(resolver, audit, auditModes(GetConfig().Mode))

		failed := 0
		for _, res := range results {
			if !res.Pass {
				failed++
			}
		}

		if IsJSONOutput() {
			if err := WriteOutput(os.Stdout, results); err != nil {
				return err
			}
		} else if err := writeAuditTable(results); err != nil {
			return err
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d contrast checks failed", failed, len(results))
		}
		return nil
	},
}

// auditModes maps the configured mode to the dark flags to audit. Auto
// checks both sides; an explicit mode checks only that side.
func auditModes(mode string) []bool {
	switch mode {
	case config.ModeLight:
		return []bool{false}
	case config.ModeDark:
		return []bool{true}
	default:
		return []bool{false, true}
	}
}

func runAudit(r *palette.Resolver, audit []contrastPair, modes []bool) []contrastResult {
	results := make([]contrastResult, 0, len(audit)*len(modes))
	for _, dark := range modes {
		for _, pair := range audit {
			fg, _ := r.Lookup(pair.fg, dark)
			bg, _ := r.Lookup(pair.bg, dark)
			ratio := palette.ContrastRatio(fg, bg)
			results = append(results, contrastResult{
				Name:       pair.name,
				Foreground: pair.fg,
				Background: pair.bg,
				Dark:       dark,
				Ratio:      ratio,
				Threshold:  pair.threshold,
				Pass:       ratio >= pair.threshold,
			})
		}
	}
	return results
}

func writeAuditTable(results []contrastResult) error {
	rows := make([][]string, 0, len(results))
	for _, res := range results {
		rows = append(rows, []string{
			res.Name,
			modeLabel(res.Dark),
			fmt.Sprintf("%.2f", res.Ratio),
			fmt.Sprintf("%.1f", res.Threshold),
			passFail(res.Pass),
		})
	}
	return writeTable(os.Stdout, []string{"CHECK", "MODE", "RATIO", "NEED", "RESULT"}, rows)
}

func modeLabel(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}
