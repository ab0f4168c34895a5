// Package cli provides ANSI color helpers for terminal output.
package cli

import (
	"fmt"
	"os"

	"github.com/opencode-ai/swatch/palette"
)

const (
	colorReset   = "\x1b[0m"
	colorRed     = "\x1b[31m"
	colorGreen   = "\x1b[32m"
	colorYellow  = "\x1b[33m"
	colorMagenta = "\x1b[35m"
	colorCyan    = "\x1b[36m"
)

// colorEnabled reports whether ANSI output should be colored. NO_COLOR and
// SWATCH_NO_COLOR always win.
func colorEnabled() bool {
	if GetConfig().NoColor {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if _, ok := os.LookupEnv("SWATCH_NO_COLOR"); ok {
		return false
	}
	return hasTTY()
}

func colorize(text, color string) string {
	if !colorEnabled() {
		return text
	}
	return color + text + colorReset
}

// swatchBlock renders a filled background block in the given color. The
// escape length varies with the channel digits, so blocks and anything built
// from them belong only in a line's last tabwriter cell, where no padding is
// computed.
func swatchBlock(c palette.Color) string {
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm    %s", c.R, c.G, c.B, colorReset)
}

// swatchCell renders a color as a filled block followed by its hex value,
// degrading to the hex value alone when colors are off.
func swatchCell(c palette.Color) string {
	hex := c.HexRGBA()
	if !colorEnabled() {
		return hex
	}
	return swatchBlock(c) + " " + hex
}

// swatchPair renders adjacent light and dark blocks for list previews.
func swatchPair(light, dark palette.Color) string {
	return swatchBlock(light) + " " + swatchBlock(dark)
}

// passFail renders a check verdict with color.
func passFail(ok bool) string {
	if ok {
		return colorize("PASS", colorGreen)
	}
	return colorize("FAIL", colorRed)
}
