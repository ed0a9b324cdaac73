package canvas

import "fmt"

// Prompt draws prompt text at logical row y and reads a line of input
// directly from the Host, echoing characters as they're typed and
// handling backspace, writing into buf and returning the number of
// bytes read. It bypasses the framebuffer entirely (prompt output is
// not part of the raster scene and is erased before returning), the
// same way the reference tz_prompt writes straight to the terminal.
//
// The policy implemented here (line editing, echo, backspace,
// termination on '\0' or '\r') is fully specified and has no external
// dependency; only the underlying byte polling is delegated to Host,
// resolving the tension noted in spec.md between section 1 (which
// lists the line-prompt helper as an external collaborator) and
// section 6 (which lists Prompt as part of the public API surface) —
// see DESIGN.md Open Questions.
func (c *Canvas) Prompt(y int, prompt string, buf []byte) (int, error) {
	y += c.viewport.Y0
	row := y >> 1

	if _, err := fmt.Fprintf(c.host, "\x1b[%d;1H", 1+c.topRow+row); err != nil {
		return 0, err
	}
	if _, err := c.host.Write([]byte(prompt)); err != nil {
		return 0, err
	}

	n := 0
	var readBuf [256]byte

	for {
		read, err := c.host.Read(readBuf[:])
		if err != nil {
			return n, err
		}
		if read == 0 {
			break
		}

		b := readBuf[:read]
		if b[0] == '\x1b' {
			// Line editing / history is not implemented; the escape
			// sequence is simply discarded.
			continue
		}
		if b[0] == '\x7F' {
			if n > 0 {
				if _, err := c.host.Write([]byte("\b \b")); err != nil {
					return n, err
				}
				n--
			}
			continue
		}

		done := false
		for _, ch := range b {
			if ch == 0 || ch == '\r' {
				done = true
				break
			}

			if _, err := c.host.Write([]byte{ch}); err != nil {
				return n, err
			}
			if isPrintableASCII(ch) && n < len(buf) {
				buf[n] = ch
				n++
			}
		}
		if done {
			break
		}
	}

	if _, err := c.host.Write([]byte("\x1b[1K")); err != nil {
		return n, err
	}

	return n, nil
}

func isPrintableASCII(b byte) bool {
	return b >= 0x20 && b < 0x7F
}
