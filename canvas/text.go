package canvas

import "fmt"

// printState machine states, matching the escape grammar in spec.md
// section 4.C6: ESC '[' cmd num (';' num)* ']'.
const (
	stateGround = iota
	stateEsc
	stateCmd
	stateArg
)

// Printf formats a string and writes it starting at (x, y), parsing
// one inline escape form as it goes: ESC [ cmd num (; num)* ], where
// cmd='f' sets the current foreground color and any other cmd sets
// the background, each num a decimal index into the Canvas's Palette.
// Non-escape printable bytes are written as text cells. Rendering
// stops once the cursor leaves the viewport. Returns the number of
// columns written.
func (c *Canvas) Printf(x, y int, format string, args ...any) int {
	x += c.viewport.X0
	y += c.viewport.Y0

	msg := fmt.Sprintf(format, args...)

	state := stateGround
	var cmd byte
	arg := 0

	for i := 0; i < len(msg); i++ {
		if y < c.viewport.Y0 || y > c.viewport.Y1 || x > c.viewport.X1 {
			break
		}

		ch := msg[i]

		switch state {
		case stateEsc:
			if ch == '[' {
				state = stateCmd
			} else {
				state = stateGround
			}

		case stateCmd:
			cmd = ch
			state = stateArg
			arg = 0

		case stateArg:
			switch {
			case ch == ';' || ch == ']':
				c.applyPaletteArg(cmd, arg)
				arg = 0
				if ch == ']' {
					state = stateGround
				}
			case ch >= '0' && ch <= '9':
				arg = arg*10 + int(ch-'0')
			default:
				// Malformed escape: bail back to ground state rather
				// than looping forever on a non-digit, non-terminator
				// byte.
				state = stateGround
			}

		default: // stateGround
			if ch == '\x1b' {
				state = stateEsc
			} else {
				if x >= c.viewport.X0 {
					c.fb.setChar(x, y, c.fgColor, c.bgColor, ch)
				}
				x++
			}
		}
	}

	return x - c.viewport.X0
}

// applyPaletteArg resolves a parsed escape argument through the
// canvas's palette and updates the current fg/bg text color: cmd='f'
// sets foreground, any other cmd sets background.
func (c *Canvas) applyPaletteArg(cmd byte, arg int) {
	col := c.palette[arg&0xFF]
	if cmd == 'f' {
		c.fgColor = col
	} else {
		c.bgColor = col
	}
}
