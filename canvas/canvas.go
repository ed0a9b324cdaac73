// Package canvas implements a truecolor terminal raster display with
// a software 3D rasterization pipeline: triangles and lines rasterize
// into a half-block double-height framebuffer, and a dirty-region
// paint pass emits the minimal ANSI bytes needed to bring a terminal
// in sync with it.
//
// Canvas is not safe for concurrent use. The whole system is designed
// to be single-threaded and synchronous: every call runs to
// completion on the caller's goroutine, there is no internal locking,
// and exactly one Canvas should own a given Host's stdout at a time.
package canvas

import "fmt"

// Canvas is the caller-owned equivalent of the process-global
// singleton in the reference implementation this package is modeled
// on (see DESIGN.md): one Framebuffer, one Viewport, one Host, and
// the current text colors used by Printf.
type Canvas struct {
	host Host
	fb   *Framebuffer

	viewport Viewport
	topRow   int // terminal row the canvas's row 0 maps to

	fgColor, bgColor Color
	palette          Palette
	colorMode        ColorMode
}

// Option configures a Canvas at construction time.
type Option func(*Canvas)

// WithPalette overrides the default xterm-256 palette Printf's inline
// color escapes resolve against.
func WithPalette(p Palette) Option {
	return func(c *Canvas) { c.palette = p }
}

// WithColorMode overrides the terminal color capability Paint encodes
// SGR sequences for. Defaults to DetectColorMode().
func WithColorMode(m ColorMode) Option {
	return func(c *Canvas) { c.colorMode = m }
}

// WithTopRow sets the terminal row (0-indexed) that canvas row 0 maps
// to. Defaults to 0 (the canvas owns the screen, or the caller has
// already positioned the cursor where the canvas should start). A
// Host implementation that scrolls the terminal to make room for the
// canvas (as the reference tz_init does) should report where the
// canvas landed through this option rather than Canvas probing cursor
// position itself, keeping that TTY-session policy out of the
// rasterizer's concerns.
func WithTopRow(row int) Option {
	return func(c *Canvas) { c.topRow = row }
}

// New creates a Canvas backed by host. If w and h are both non-zero
// they specify the canvas size directly in logical pixels (w columns,
// h pixel rows, so h/2 cell rows); otherwise the canvas spans the
// host's full reported terminal size. A failed size probe does not
// fail construction: the returned Canvas is valid but has zero extent,
// so every draw call becomes a no-op, per spec.md section 7. The
// returned error is advisory.
func New(host Host, w, h int, opts ...Option) (*Canvas, error) {
	c := &Canvas{
		host:      host,
		fgColor:   RGB(255, 255, 255),
		bgColor:   RGB(0, 0, 0),
		palette:   DefaultPalette(),
		colorMode: DetectColorMode(),
	}

	var probeErr error
	var rows, cols int
	if w != 0 && h != 0 {
		cols = w
		rows = h / 2
	} else {
		rows, cols, probeErr = host.Size()
	}

	c.fb = newFramebuffer(rows, cols)
	c.viewport = Viewport{X0: 0, Y0: 0, X1: cols - 1, Y1: c.fb.pixelHeight() - 1}

	for _, opt := range opts {
		opt(c)
	}

	if probeErr != nil {
		return c, fmt.Errorf("canvas: probing terminal size: %w", probeErr)
	}
	return c, nil
}

// Width returns the canvas width in logical pixels (one per column).
func (c *Canvas) Width() int { return c.fb.cols }

// Height returns the canvas height in logical pixels (two per cell
// row).
func (c *Canvas) Height() int { return c.fb.pixelHeight() }

// SetViewport sets the current draw rectangle, clamped to the
// framebuffer's extents.
func (c *Canvas) SetViewport(x, y, w, h int) {
	c.viewport = clampViewport(x, y, w, h, c.fb.cols, c.fb.pixelHeight())
}

// Clear resets every pixel and glyph within the current viewport to
// black/empty and marks those cells dirty for repaint; depth resets to
// the farthest value across the whole framebuffer regardless of the
// viewport. Pixels and dirty bits outside the viewport are untouched.
func (c *Canvas) Clear() {
	c.fb.clearViewport(c.viewport)
}

// CanRead reports whether a Read would return immediately, delegating
// to the underlying Host's non-blocking poll.
func (c *Canvas) CanRead() bool {
	return c.host.CanRead()
}

// Read performs a best-effort read of input bytes from the Host.
func (c *Canvas) Read(buf []byte) (int, error) {
	return c.host.Read(buf)
}
