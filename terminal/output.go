package terminal

import (
	"bufio"
	"io"
	"sync"
)

// Output owns the terminal output stream and the single lock that
// serializes every output-producing section. A section is buffered and
// flushed before the lock is released, so concurrent sections never
// interleave escape sequences.
type Output struct {
	mu     sync.Mutex
	writer *bufio.Writer
	sw     Writer
}

// NewOutput wraps w with a buffered, mutex-guarded output
func NewOutput(w io.Writer) *Output {
	o := &Output{
		writer: bufio.NewWriterSize(w, 65536), // 64KB buffer, one frame fits
	}
	o.sw.w = o.writer
	return o
}

// Section runs fn with exclusive access to the output and flushes the result
func (o *Output) Section(fn func(w *Writer)) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	fn(&o.sw)
	return o.writer.Flush()
}

// Writer is the section-scoped view of the output stream
type Writer struct {
	w *bufio.Writer
}

// WriteString writes s verbatim
func (w *Writer) WriteString(s string) {
	w.w.WriteString(s)
}

// Newline ends a row
func (w *Writer) Newline() {
	w.w.WriteByte('\n')
}

// Int writes n in decimal
func (w *Writer) Int(n int) {
	writeInt(w.w, n)
}

// Spaces writes n spaces
func (w *Writer) Spaces(n int) {
	writeSpaces(w.w, n)
}

// Home moves the cursor to the top-left corner
func (w *Writer) Home() { w.w.Write(csiHome) }

// Clear erases the whole screen without moving the cursor
func (w *Writer) Clear() { w.w.Write(csiClear) }

// ClearBelow erases from the cursor to the end of the screen
func (w *Writer) ClearBelow() { w.w.Write(csiClearBelow) }

// HideCursor hides the text cursor
func (w *Writer) HideCursor() { w.w.Write(csiCursorHide) }

// ShowCursor shows the text cursor
func (w *Writer) ShowCursor() { w.w.Write(csiCursorShow) }

// SaveCursor stores the cursor position for RestoreCursor
func (w *Writer) SaveCursor() { w.w.Write(csiCursorSave) }

// RestoreCursor returns to the position stored by SaveCursor
func (w *Writer) RestoreCursor() { w.w.Write(csiCursorRestore) }

// Reset clears all attributes
func (w *Writer) Reset() { w.w.Write(csiSGR0) }

// BoldWhite selects bright bold white text
func (w *Writer) BoldWhite() { w.w.Write(csiBoldWhite) }
