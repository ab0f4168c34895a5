package palette

// The built-in catalog. Keys are dot-namespaced semantic names; the exact
// values are part of the package's compatibility contract, pinned by the
// catalog test. Entries come in three shapes: fixed colors shared by both
// themes, light/dark pairs, and theme functions for the few alpha-derived
// entries (shadows and the overlay scrim).

func fixedHex(s string) entry {
	return fixed(MustHex(s))
}

func pairHex(light, dark string) entry {
	return pair(MustHex(light), MustHex(dark))
}

// shadow builds a black shadow entry. Dark surfaces need a stronger shadow to
// read as elevation, so the dark alpha is always the larger of the two.
func shadow(lightAlpha, darkAlpha float64) entry {
	return themed(func(dark bool) Color {
		if dark {
			return Black.WithAlpha(darkAlpha)
		}
		return Black.WithAlpha(lightAlpha)
	})
}

var builtins = map[string]entry{
	// Text.
	"text.primary":     pairHex("#111827", "#F9FAFB"),
	"text.secondary":   pairHex("#4B5563", "#9CA3AF"),
	"text.muted":       pairHex("#9CA3AF", "#4B5563"),
	"text.placeholder": pairHex("#9CA3AF", "#6B7280"),
	"text.disabled":    pairHex("#D1D5DB", "#374151"),
	"text.inverse":     pairHex("#F9FAFB", "#111827"),
	"text.link":        pairHex("#2563EB", "#60A5FA"),

	// Surfaces. The overlay scrim is white-based and lighter in dark mode,
	// where surfaces are already dim.
	"surface.background": pairHex("#FFFFFF", "#111827"),
	"surface.card":       pairHex("#F9FAFB", "#1F2937"),
	"surface.raised":     pairHex("#FFFFFF", "#374151"),
	"surface.sunken":     pairHex("#F3F4F6", "#030712"),
	"surface.input":      pairHex("#FFFFFF", "#1F2937"),
	"surface.hover":      pairHex("#F3F4F6", "#1F2937"),
	"surface.selection":  pairHex("#DBEAFE", "#1E3A8A"),
	"surface.overlay": themed(func(dark bool) Color {
		if dark {
			return White.WithAlpha(0.10)
		}
		return White.WithAlpha(0.20)
	}),

	// Semantic accents.
	"accent.primary":   pairHex("#2563EB", "#3B82F6"),
	"accent.secondary": pairHex("#7C3AED", "#8B5CF6"),
	"accent.success":   fixedHex("#10B981"),
	"accent.warning":   fixedHex("#F59E0B"),
	"accent.danger":    fixedHex("#EF4444"),
	"accent.info":      fixedHex("#3B82F6"),

	// Color wheel. Fixed hues except yellow and lime, which are darkened in
	// light mode so they stay legible on white.
	"accent.red":         fixedHex("#F44336"),
	"accent.pink":        fixedHex("#E91E63"),
	"accent.purple":      fixedHex("#9C27B0"),
	"accent.deep-purple": fixedHex("#673AB7"),
	"accent.indigo":      fixedHex("#3F51B5"),
	"accent.blue":        fixedHex("#2196F3"),
	"accent.light-blue":  fixedHex("#03A9F4"),
	"accent.cyan":        fixedHex("#00BCD4"),
	"accent.teal":        fixedHex("#009688"),
	"accent.green":       fixedHex("#4CAF50"),
	"accent.light-green": fixedHex("#8BC34A"),
	"accent.lime":        pairHex("#9E9D24", "#CDDC39"),
	"accent.yellow":      pairHex("#F9A825", "#FFEB3B"),
	"accent.amber":       fixedHex("#FFC107"),
	"accent.orange":      fixedHex("#FF9800"),
	"accent.deep-orange": fixedHex("#FF5722"),
	"accent.brown":       fixedHex("#795548"),

	// Borders.
	"border.default": pairHex("#E5E7EB", "#374151"),
	"border.strong":  pairHex("#9CA3AF", "#4B5563"),
	"border.divider": pairHex("#F3F4F6", "#1F2937"),
	"border.focus":   pairHex("#2563EB", "#60A5FA"),

	// Icons.
	"icon.primary":   pairHex("#374151", "#D1D5DB"),
	"icon.secondary": pairHex("#6B7280", "#9CA3AF"),
	"icon.disabled":  pairHex("#D1D5DB", "#4B5563"),
	"icon.inverse":   pairHex("#F9FAFB", "#1F2937"),
	"icon.accent":    pairHex("#2563EB", "#60A5FA"),

	// Shadows.
	"shadow.light":  shadow(0.05, 0.10),
	"shadow.medium": shadow(0.10, 0.20),
	"shadow.strong": shadow(0.20, 0.35),
	"shadow.modal":  shadow(0.40, 0.60),

	// Controls.
	"control.disabled": pairHex("#E5E7EB", "#374151"),

	// Sign-in provider brand colors. These are fixed by the providers' brand
	// guidelines and never follow the theme.
	"auth.google.background":    fixedHex("#FFFFFF"),
	"auth.google.foreground":    fixedHex("#1F1F1F"),
	"auth.google.border":        fixedHex("#747775"),
	"auth.apple.background":     fixedHex("#000000"),
	"auth.apple.foreground":     fixedHex("#FFFFFF"),
	"auth.github.background":    fixedHex("#24292F"),
	"auth.github.foreground":    fixedHex("#FFFFFF"),
	"auth.facebook.background":  fixedHex("#1877F2"),
	"auth.facebook.foreground":  fixedHex("#FFFFFF"),
	"auth.twitter.background":   fixedHex("#1D9BF0"),
	"auth.twitter.foreground":   fixedHex("#FFFFFF"),
	"auth.microsoft.background": fixedHex("#2F2F2F"),
	"auth.microsoft.foreground": fixedHex("#FFFFFF"),
	"auth.microsoft.border":     fixedHex("#8C8C8C"),
}
