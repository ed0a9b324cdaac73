package canvas

import "github.com/lucasb-eyer/go-colorful"

// Palette maps xterm-style palette indices (0-255) to packed colors.
// Print's inline color escapes (spec.md section 4.C6 / section 6)
// resolve their numeric argument through a Palette; Canvas defaults to
// DefaultPalette.
type Palette [256]Color

// ansi16Base are the RGB triples for the standard 16-color ANSI
// palette (indices 0-15 of the xterm table), the same values
// terminal emulators ship with TERM=xterm-256color.
var ansi16Base = [16][3]byte{
	{0, 0, 0}, {205, 0, 0}, {0, 205, 0}, {205, 205, 0},
	{0, 0, 238}, {205, 0, 205}, {0, 205, 205}, {229, 229, 229},
	{127, 127, 127}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
	{92, 92, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
}

// cubeLevel is the standard xterm 6-step color-cube intensity ramp.
var cubeLevel = [6]byte{0, 95, 135, 175, 215, 255}

// DefaultPalette computes the standard xterm 256-color table: the 16
// base ANSI colors, a 6x6x6 RGB cube (indices 16-231), and a 24-step
// grayscale ramp (indices 232-255). It is computed rather than
// transcribed from a literal constant table, which sidesteps the
// byte-order mismatch spec.md section 9 calls out in the reference
// implementation's BGR-ordered lookup table entirely.
func DefaultPalette() Palette {
	var p Palette

	for i, c := range ansi16Base {
		p[i] = RGB(c[0], c[1], c[2])
	}

	idx := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				p[idx] = RGB(cubeLevel[r], cubeLevel[g], cubeLevel[b])
				idx++
			}
		}
	}

	for i := 0; i < 24; i++ {
		level := byte(8 + i*10)
		p[232+i] = RGB(level, level, level)
	}

	return p
}

// ansi256Index quantizes c onto the xterm 6x6x6 color cube, returning
// the corresponding palette index (16-231).
func ansi256Index(c Color) int {
	r, g, b := c.RGB()
	ri := int(r) * 5 / 255
	gi := int(g) * 5 / 255
	bi := int(b) * 5 / 255
	return 16 + 36*ri + 6*gi + bi
}

// ansi16Nearest returns the index (0-15) of the ANSI-16 base color
// perceptually closest to c, comparing in CIE-Lab space via
// go-colorful rather than naive Euclidean RGB distance, so that e.g.
// dark blue and black are not confused the way a flat RGB distance
// tends to for low-luminance colors.
func ansi16Nearest(c Color) int {
	r, g, b := c.RGB()
	target := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}

	best := 0
	bestDist := 0.0
	for i, cand := range ansi16Base {
		candColor := colorful.Color{
			R: float64(cand[0]) / 255,
			G: float64(cand[1]) / 255,
			B: float64(cand[2]) / 255,
		}
		d := target.DistanceLab(candColor)
		if i == 0 || d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}
