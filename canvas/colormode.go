package canvas

import (
	"os"
	"strings"
)

// ColorMode selects how Paint encodes SGR color sequences for a given
// terminal's actual capability. The rasterizer and framebuffer always
// work in full 24-bit color internally; ColorMode only affects the
// bytes Paint emits, grounded on the terminal-capability detection in
// the teacher's internal/video/palette.go and
// internal/visualizer/color.go.
type ColorMode int

const (
	// ColorTrue emits 24-bit "38;2;r;g;b" / "48;2;r;g;b" sequences.
	ColorTrue ColorMode = iota
	// Color256 quantizes to the xterm 256-color cube/grayscale ramp.
	Color256
	// Color16 maps to the nearest of the 16 base ANSI colors.
	Color16
	// ColorOff emits no SGR color sequences at all.
	ColorOff
)

// DetectColorMode inspects NO_COLOR, TERM, and COLORTERM the same way
// the teacher's video renderer does, returning a reasonable default
// for the current process's environment.
func DetectColorMode() ColorMode {
	if _, disabled := os.LookupEnv("NO_COLOR"); disabled {
		return ColorOff
	}
	term := strings.ToLower(os.Getenv("TERM"))
	colorTerm := strings.ToLower(os.Getenv("COLORTERM"))

	switch {
	case strings.Contains(colorTerm, "truecolor"), strings.Contains(colorTerm, "24bit"):
		return ColorTrue
	case strings.Contains(term, "256color"):
		return Color256
	case term == "" || term == "dumb":
		return ColorOff
	default:
		return Color16
	}
}
