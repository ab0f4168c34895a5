package palette

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// Color is an 8-bit-per-channel RGBA color value. It carries no dependency on
// any UI framework; adapters convert it to whatever the rendering layer needs.
type Color struct {
	R, G, B, A uint8
}

// Common colors used by derived entries and as neutral fallbacks.
var (
	Black       = Color{0, 0, 0, 255}
	White       = Color{255, 255, 255, 255}
	Transparent = Color{0, 0, 0, 0}
)

// RGB returns an opaque color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA returns a color from 8-bit channels including alpha.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Hex parses a hex color string. Accepted forms are #RGB, #RRGGBB and
// #RRGGBBAA; the leading "#" is optional and parsing is case-insensitive.
func Hex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(h) {
	case 3:
		var b strings.Builder
		for _, r := range h {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		h = b.String()
	case 6, 8:
	default:
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 64)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	if len(h) == 8 {
		return Color{
			R: uint8(v >> 24),
			G: uint8(v >> 16),
			B: uint8(v >> 8),
			A: uint8(v),
		}, nil
	}
	return Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}, nil
}

// MustHex is like Hex but panics on malformed input. It is intended for
// package-level color tables with literal values.
func MustHex(s string) Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats the color as #RRGGBB, discarding alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// HexRGBA formats the color as #RRGGBB for opaque colors and #RRGGBBAA
// otherwise.
func (c Color) HexRGBA() string {
	if c.A == 255 {
		return c.Hex()
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// WithAlpha returns the same color with its alpha channel set to the given
// opacity fraction. The fraction is clamped to [0, 1].
func (c Color) WithAlpha(opacity float64) Color {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	c.A = uint8(math.Round(opacity * 255))
	return c
}

// Alpha returns the alpha channel as an opacity fraction in [0, 1].
func (c Color) Alpha() float64 {
	return float64(c.A) / 255
}

// Opaque reports whether the color has full alpha.
func (c Color) Opaque() bool {
	return c.A == 255
}

// NRGBA converts to the standard library's non-premultiplied color type.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// String returns the hex form, including alpha when not opaque.
func (c Color) String() string {
	return c.HexRGBA()
}
