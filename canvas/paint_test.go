package canvas

import "testing"

func TestPaintAfterClearThenRepaintEmitsOnlyBrackets(t *testing.T) {
	c, host := newTestCanvas(t)
	c.Clear()

	if err := c.Paint(); err != nil {
		t.Fatalf("first Paint() error = %v", err)
	}
	host.buf.Reset()

	if err := c.Paint(); err != nil {
		t.Fatalf("second Paint() error = %v", err)
	}

	want := "\x1b[?2026h\x1b[0m\x1b[?2026l"
	if got := host.buf.String(); got != want {
		t.Fatalf("second Paint() wrote %q, want %q", got, want)
	}
}

func TestPaintLeavesDirtyMapEntirelyZero(t *testing.T) {
	c, _ := newTestCanvas(t)
	c.Clear()
	c.Triangle(
		Vertex{X: -1, Y: 1, Z: 0.5, W: 1, R: 255, G: 0, B: 0},
		Vertex{X: 1, Y: 1, Z: 0.5, W: 1, R: 255, G: 0, B: 0},
		Vertex{X: -1, Y: -1, Z: 0.5, W: 1, R: 255, G: 0, B: 0},
	)

	if err := c.Paint(); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}

	for row := 0; row < c.fb.rows; row++ {
		for w := 0; w < c.fb.dirtyWords; w++ {
			if word := c.fb.dirtyWord(row, w); word != 0 {
				t.Fatalf("dirty word (%d,%d) = %#x after Paint(), want 0", row, w, word)
			}
		}
	}
}

func TestBlitRepeatedWithSameDataSetsNoNewDirtyBits(t *testing.T) {
	c, _ := newTestCanvas(t)
	c.Clear()

	data := make([]Color, c.fb.cols*c.fb.pixelHeight())
	for i := range data {
		data[i] = RGB(byte(i), byte(i*2), byte(i*3))
	}

	c.Blit(0, 0, c.fb.cols, c.fb.pixelHeight(), data)
	if err := c.Paint(); err != nil {
		t.Fatalf("Paint() after first blit error = %v", err)
	}

	c.Blit(0, 0, c.fb.cols, c.fb.pixelHeight(), data)
	for row := 0; row < c.fb.rows; row++ {
		for w := 0; w < c.fb.dirtyWords; w++ {
			if word := c.fb.dirtyWord(row, w); word != 0 {
				t.Fatalf("dirty word (%d,%d) = %#x after repeating identical blit, want 0", row, w, word)
			}
		}
	}
}
