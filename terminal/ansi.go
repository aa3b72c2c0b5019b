package terminal

import (
	"bufio"
	"strconv"
)

// Control sequences written by the session and the screen sink
const (
	csiRIS    = "\x1bc" // full reset, crash path only
	csiSGR0   = "\x1b[0m"
	csiEraseL = "\x1b[2K"

	csiCursorHide = "\x1b[?25l"
	csiCursorShow = "\x1b[?25h"

	csiAltScreenEnter = "\x1b[?1049h"
	csiAltScreenExit  = "\x1b[?1049l"

	// DECAWM off keeps a write to the bottom-right cell from scrolling the screen
	csiAutoWrapOn  = "\x1b[?7h"
	csiAutoWrapOff = "\x1b[?7l"
)

// writeCursorPos writes CUP for a 0-indexed position: ESC [ row ; col H
func writeCursorPos(w *bufio.Writer, x, y int) {
	var scratch [24]byte
	b := append(scratch[:0], '\x1b', '[')
	b = strconv.AppendInt(b, int64(max(y, 0)+1), 10)
	b = append(b, ';')
	b = strconv.AppendInt(b, int64(max(x, 0)+1), 10)
	b = append(b, 'H')
	w.Write(b)
}
