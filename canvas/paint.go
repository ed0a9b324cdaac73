package canvas

import (
	"bufio"
	"fmt"
	"math/bits"
)

const halfBlockRune = "▀" // upper half block: fg=top pixel, bg=bottom pixel

// Paint drains the framebuffer's dirty bitmap into a minimal sequence
// of ANSI cursor-movement and SGR bytes, written to the Canvas's Host.
// It implements spec.md section 4.C7 exactly, including the two
// explicitly-decided edge cases from section 9: the synchronized
// update begin sequence carries its trailing 'h', and the dead
// relative-cursor-move branch from the reference source is not
// reproduced — cursor moves are always emitted in absolute form when
// the target cell is not immediately after the last one painted.
//
// Output goes through a bufio.Writer, and each cell's dirty bit is
// cleared once its bytes are queued in that buffer. A write error makes
// Paint return at once: cells it had not reached yet stay dirty and are
// emitted by the next Paint. Cells whose bytes were still buffered, or
// in the chunk whose write failed, are already marked clean and are not
// re-sent.
func (c *Canvas) Paint() error {
	w := bufio.NewWriter(c.host)

	if _, err := w.WriteString("\x1b[?2026h"); err != nil {
		return err
	}

	lastRow, lastCol := -1, -1
	var lastFg, lastBg Color
	haveLast := false

	fb := c.fb
	for row := 0; row < fb.rows; row++ {
		for wi := 0; wi < fb.dirtyWords; wi++ {
			dirty := fb.dirtyWord(row, wi)
			if dirty == 0 {
				continue
			}

			for dirty != 0 {
				bit := bits.TrailingZeros64(dirty)
				dirty &= dirty - 1
				col := wi*64 + bit

				fg, bg, glyph := fb.cellColors(col, row)

				if !haveLast || row != lastRow || col != lastCol {
					if err := c.writeCursorMove(w, row, col); err != nil {
						return err
					}
				}

				if !haveLast || fg != lastFg {
					if err := c.writeSGR(w, true, fg); err != nil {
						return err
					}
				}
				if !haveLast || bg != lastBg {
					if err := c.writeSGR(w, false, bg); err != nil {
						return err
					}
				}

				var writeErr error
				if glyph != 0 {
					_, writeErr = w.Write([]byte{glyph})
				} else {
					_, writeErr = w.WriteString(halfBlockRune)
				}
				if writeErr != nil {
					return writeErr
				}

				lastFg, lastBg = fg, bg
				lastRow, lastCol = row, col+1
				haveLast = true

				fb.clearDirtyBit(row, wi, bit)
			}
		}
	}

	if _, err := w.WriteString("\x1b[0m"); err != nil {
		return err
	}
	if _, err := w.WriteString("\x1b[?2026l"); err != nil {
		return err
	}

	if err := w.Flush(); err != nil {
		return err
	}

	// Drain any input buffered while painting, per spec.md section
	// 4.C7's end-of-paint check for a pending Ctrl-C.
	c.drainPendingInput()

	return nil
}

func (c *Canvas) writeCursorMove(w *bufio.Writer, row, col int) error {
	_, err := fmt.Fprintf(w, "\x1b[%d;%dH", 1+c.topRow+row, 1+col)
	return err
}

func (c *Canvas) writeSGR(w *bufio.Writer, foreground bool, col Color) error {
	r, g, b := col.RGB()

	switch c.colorMode {
	case ColorOff:
		return nil
	case ColorTrue:
		code := 38
		if !foreground {
			code = 48
		}
		_, err := fmt.Fprintf(w, "\x1b[%d;2;%d;%d;%dm", code, r, g, b)
		return err
	case Color256:
		code := 38
		if !foreground {
			code = 48
		}
		_, err := fmt.Fprintf(w, "\x1b[%d;5;%dm", code, ansi256Index(col))
		return err
	default: // Color16
		idx := ansi16Nearest(col)
		base := 30
		if !foreground {
			base = 40
		}
		if idx >= 8 {
			base += 60 // bright range starts at 90/100
			idx -= 8
		}
		_, err := fmt.Fprintf(w, "\x1b[%dm", base+idx)
		return err
	}
}

func (c *Canvas) drainPendingInput() {
	var buf [256]byte
	for c.host.CanRead() {
		n, err := c.host.Read(buf[:])
		if n == 0 || err != nil {
			return
		}
	}
}
