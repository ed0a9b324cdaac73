package canvas

import "testing"

func TestPrintfOverlaysGlyphsKeepingBackgroundFromScene(t *testing.T) {
	c, _ := newTestCanvas(t)

	// Far red triangle covering the whole viewport, then a nearer blue
	// triangle covering the left half, same as the depth-test scenario.
	c.Triangle(
		Vertex{X: -1, Y: 1, Z: 0.9, W: 1, R: 255, G: 0, B: 0},
		Vertex{X: 1, Y: 1, Z: 0.9, W: 1, R: 255, G: 0, B: 0},
		Vertex{X: -1, Y: -1, Z: 0.9, W: 1, R: 255, G: 0, B: 0},
	)
	c.Triangle(
		Vertex{X: 1, Y: 1, Z: 0.9, W: 1, R: 255, G: 0, B: 0},
		Vertex{X: 1, Y: -1, Z: 0.9, W: 1, R: 255, G: 0, B: 0},
		Vertex{X: -1, Y: -1, Z: 0.9, W: 1, R: 255, G: 0, B: 0},
	)
	c.Triangle(
		Vertex{X: -1, Y: 1, Z: 0.1, W: 1, R: 0, G: 0, B: 255},
		Vertex{X: 0, Y: 1, Z: 0.1, W: 1, R: 0, G: 0, B: 255},
		Vertex{X: -1, Y: -1, Z: 0.1, W: 1, R: 0, G: 0, B: 255},
	)
	c.Triangle(
		Vertex{X: 0, Y: 1, Z: 0.1, W: 1, R: 0, G: 0, B: 255},
		Vertex{X: 0, Y: -1, Z: 0.1, W: 1, R: 0, G: 0, B: 255},
		Vertex{X: -1, Y: -1, Z: 0.1, W: 1, R: 0, G: 0, B: 255},
	)

	wantBG0 := c.fb.color[c.fb.colorIndex(0, 1)]
	wantBG1 := c.fb.color[c.fb.colorIndex(1, 1)]

	n := c.Printf(0, 0, "\x1b[f15]AB")
	if n != 2 {
		t.Fatalf("Printf() = %d columns written, want 2", n)
	}

	fg0, bg0, glyph0 := c.fb.cellColors(0, 0)
	if glyph0 != 'A' || fg0 != RGB(255, 255, 255) || bg0 != wantBG0 {
		t.Fatalf("cell(0,0) = (fg=%v,bg=%v,glyph=%q), want (white,%v,'A')", fg0, bg0, glyph0, wantBG0)
	}

	fg1, bg1, glyph1 := c.fb.cellColors(1, 0)
	if glyph1 != 'B' || fg1 != RGB(255, 255, 255) || bg1 != wantBG1 {
		t.Fatalf("cell(1,0) = (fg=%v,bg=%v,glyph=%q), want (white,%v,'B')", fg1, bg1, glyph1, wantBG1)
	}
}

func TestPrintfStopsAtViewportEdge(t *testing.T) {
	c, _ := newTestCanvas(t)
	c.SetViewport(0, 0, 2, c.fb.pixelHeight())

	n := c.Printf(0, 0, "ABCD")
	if n != 2 {
		t.Fatalf("Printf() = %d columns written, want 2 (clipped to viewport)", n)
	}
}
