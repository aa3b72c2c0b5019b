package terminal

import (
	"bufio"
	"fmt"
	"io"
)

// WriteError reports a failed screen write; the frame being drawn is abandoned
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("screen write: %v", e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Output queues drawing primitives and emits them as one batch on Flush.
// Write errors are sticky: after the first failure every primitive is a no-op
// and Flush reports the failure.
type Output struct {
	writer *bufio.Writer
	width  int
	height int
}

// NewOutput creates a screen sink over w with the given dimensions
func NewOutput(w io.Writer, width, height int) *Output {
	return &Output{
		writer: bufio.NewWriterSize(w, 65536),
		width:  width,
		height: height,
	}
}

// Size returns the dimensions the sink was created with
func (o *Output) Size() (int, int) {
	return o.width, o.height
}

// HideCursor queues a cursor hide
func (o *Output) HideCursor() {
	o.writer.WriteString(csiCursorHide)
}

// ShowCursor queues a cursor show
func (o *Output) ShowCursor() {
	o.writer.WriteString(csiCursorShow)
}

// MoveTo queues an absolute cursor move (0-indexed)
func (o *Output) MoveTo(x, y int) {
	writeCursorPos(o.writer, x, y)
}

// ClearLine queues an erase of the line under the cursor
func (o *Output) ClearLine() {
	o.writer.WriteString(csiEraseL)
}

// Print queues text at the cursor position
func (o *Output) Print(s string) {
	o.writer.WriteString(s)
}

// Flush makes all queued primitives visible
func (o *Output) Flush() error {
	if err := o.writer.Flush(); err != nil {
		return &WriteError{Err: err}
	}
	return nil
}

// writeRaw writes and flushes immediately, used for mode switches outside a frame
func (o *Output) writeRaw(seqs ...string) error {
	for _, s := range seqs {
		o.writer.WriteString(s)
	}
	return o.Flush()
}
