package terminal

import (
	"bufio"
)

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	// CSI sequences
	csiSGR0       = []byte("\x1b[0m")
	csiHome       = []byte("\x1b[H")
	csiClear      = []byte("\x1b[2J")
	csiClearBelow = []byte("\x1b[J")
	csiRIS        = []byte("\x1bc") // Reset to Initial State (emergency)

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")
	// SCO save/restore; pairs with the inline (no-clear) mode
	csiCursorSave    = []byte("\x1b[s")
	csiCursorRestore = []byte("\x1b[u")

	// Attribute sequences
	csiBoldWhite = []byte("\x1b[1;37m")
)

// writeInt writes an integer without allocation
// Optimized for counter values (0-999 typical)
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		w.WriteByte('-')
		n = -n
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	// Fallback for >999
	var buf [20]byte
	i := len(buf) - 1
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	w.Write(buf[i+1:])
}

// writeSpaces writes n spaces; n <= 0 writes nothing
func writeSpaces(w *bufio.Writer, n int) {
	for ; n > 0; n-- {
		w.WriteByte(' ')
	}
}
