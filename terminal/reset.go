package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery when the render engine cannot finish normally
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiSGR0)
	w.Write(csiRIS)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios; best-effort, errors ignored
	resetTerminalMode()
}

// IsTerminal reports whether fd refers to a terminal
func IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}
