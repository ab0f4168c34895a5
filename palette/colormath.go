package palette

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// WCAG 2.x contrast ratio thresholds.
const (
	// ContrastAA is the minimum ratio for normal text at level AA.
	ContrastAA = 4.5
	// ContrastAALarge is the minimum ratio for large text and UI components.
	ContrastAALarge = 3.0
	// ContrastAAA is the minimum ratio for normal text at level AAA.
	ContrastAAA = 7.0
)

func toColorful(c Color) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func fromColorful(c colorful.Color, alpha uint8) Color {
	c = c.Clamped()
	return Color{
		R: uint8(math.Round(c.R * 255)),
		G: uint8(math.Round(c.G * 255)),
		B: uint8(math.Round(c.B * 255)),
		A: alpha,
	}
}

// Luminance returns the WCAG relative luminance of c in [0, 1], ignoring
// alpha.
func Luminance(c Color) float64 {
	r, g, b := toColorful(c).LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastRatio returns the WCAG contrast ratio between two colors, in
// [1, 21]. The order of the arguments does not matter.
func ContrastRatio(a, b Color) float64 {
	la, lb := Luminance(a), Luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// Blend mixes a toward b by t in the Lab color space, which keeps midpoints
// perceptually even. Alpha interpolates linearly. t is clamped to [0, 1].
func Blend(a, b Color, t float64) Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	mixed := toColorful(a).BlendLab(toColorful(b), t)
	alpha := uint8(math.Round(float64(a.A) + (float64(b.A)-float64(a.A))*t))
	return fromColorful(mixed, alpha)
}

// Darken blends c toward black by t, preserving alpha.
func Darken(c Color, t float64) Color {
	return Blend(c, Color{A: c.A}, t)
}

// Lighten blends c toward white by t, preserving alpha.
func Lighten(c Color, t float64) Color {
	return Blend(c, Color{R: 255, G: 255, B: 255, A: c.A}, t)
}
