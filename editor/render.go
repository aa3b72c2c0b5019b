package editor

import (
	"fmt"
	"strings"
)

const welcomeMessage = "Rust Editor -- version 0.1"

// RefreshScreen repaints the whole frame from current state and flushes it as one batch.
// On a write failure the frame is abandoned and the error returned.
func (e *Editor) RefreshScreen() error {
	s := e.screen
	s.HideCursor()
	s.MoveTo(0, 0)
	e.drawRows()

	pos := ToScreen(e.cursor, e.offset)
	s.MoveTo(pos.X, pos.Y)
	s.ShowCursor()

	if err := s.Flush(); err != nil {
		return fmt.Errorf("refresh screen: %w", err)
	}
	return nil
}

func (e *Editor) drawRows() {
	s := e.screen
	width, height := s.Size()

	for i := 0; i < height; i++ {
		s.ClearLine()

		if row, ok := e.doc.RowAt(i + e.offset.Y); ok {
			s.Print(row.Slice(e.offset.X, width))
		} else if e.doc.RowCount() == 0 && i == height/3 {
			s.Print(welcomeLine(width))
		} else {
			s.Print("~")
		}

		if i < height-1 {
			s.Print("\r\n")
		}
	}
}

// welcomeLine centers the banner after a leading tilde, truncated to width
func welcomeLine(width int) string {
	padding := max(width-len(welcomeMessage), 0) / 2
	line := "~" + strings.Repeat(" ", padding) + welcomeMessage
	if len(line) > width {
		line = line[:width]
	}
	return line
}
