// Package tcellterm implements the editor screen sink and key source over tcell.
//
// It is the alternative to the raw ANSI session in package terminal: tcell owns
// raw mode and terminfo, this package translates the editor's queued drawing
// primitives into cell writes and tcell key events into terminal.Event values.
package tcellterm

import (
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/lixenwraith/tilde/terminal"
)

// Screen adapts a tcell.Screen to the editor's drawing primitives.
// Cells written between two Flush calls become visible together on Show.
type Screen struct {
	screen tcell.Screen
	style  tcell.Style

	width  int
	height int

	// Pen position for Print, also the cursor position shown by ShowCursor
	x int
	y int

	cursorVisible bool

	mu       sync.Mutex
	released bool
}

// Open creates and initializes a tcell screen on the controlling terminal
func Open() (*Screen, error) {
	sc, err := tcell.NewScreen()
	if err != nil {
		return nil, &terminal.InitError{Op: "tcell screen", Err: err}
	}
	if err := sc.Init(); err != nil {
		return nil, &terminal.InitError{Op: "tcell init", Err: err}
	}

	s, err := New(sc)
	if err != nil {
		sc.Fini()
		return nil, err
	}
	return s, nil
}

// New wraps an initialized tcell screen, capturing its size once
func New(sc tcell.Screen) (*Screen, error) {
	w, h := sc.Size()
	if w <= 0 || h <= 0 {
		return nil, &terminal.InitError{Op: "size", Err: fmt.Errorf("terminal reports %dx%d", w, h)}
	}

	log.Printf("tcellterm: screen opened %dx%d", w, h)
	return &Screen{
		screen: sc,
		style:  tcell.StyleDefault,
		width:  w,
		height: h,
	}, nil
}

// With opens a tcell screen, runs fn, and finalizes the screen on every exit path
func With(fn func(*Screen) error) error {
	s, err := Open()
	if err != nil {
		return err
	}
	defer s.Release()

	return fn(s)
}

// Size returns the dimensions captured at construction
func (s *Screen) Size() (int, int) {
	return s.width, s.height
}

// HideCursor hides the terminal cursor
func (s *Screen) HideCursor() {
	s.cursorVisible = false
	s.screen.HideCursor()
}

// ShowCursor shows the cursor at the last MoveTo position
func (s *Screen) ShowCursor() {
	s.cursorVisible = true
	s.screen.ShowCursor(s.x, s.y)
}

// MoveTo sets the pen position (0-indexed)
func (s *Screen) MoveTo(x, y int) {
	s.x, s.y = x, y
}

// ClearLine blanks the row under the pen
func (s *Screen) ClearLine() {
	if s.y < 0 || s.y >= s.height {
		return
	}
	for col := 0; col < s.width; col++ {
		s.screen.SetContent(col, s.y, ' ', nil, s.style)
	}
}

// Print writes text at the pen position, one cell per grapheme cluster.
// CR returns to column 0 and LF advances one row; text past the right edge is dropped.
func (s *Screen) Print(text string) {
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cluster := g.Runes()
		switch cluster[0] {
		case '\r':
			s.x = 0
			if len(cluster) > 1 && cluster[1] == '\n' {
				s.y++
			}
			continue
		case '\n':
			s.y++
			continue
		}

		w := g.Width()
		if w < 1 {
			w = 1
		}
		if s.y >= 0 && s.y < s.height && s.x+w <= s.width {
			s.screen.SetContent(s.x, s.y, cluster[0], cluster[1:], s.style)
		}
		s.x += w
	}
}

// Flush presents the frame
func (s *Screen) Flush() error {
	s.screen.Show()
	return nil
}

// Cursor reports the pen position and cursor visibility
func (s *Screen) Cursor() (x, y int, visible bool) {
	return s.x, s.y, s.cursorVisible
}

// ReadKey blocks until the next key event; other tcell events are skipped
func (s *Screen) ReadKey() (terminal.Event, error) {
	for {
		ev := s.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			// Screen finalized
			return terminal.Event{}, io.EOF
		case *tcell.EventKey:
			return translate(ev), nil
		}
	}
}

// Release finalizes the tcell screen, restoring the terminal. Safe to call multiple times.
func (s *Screen) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.released {
		return
	}
	s.released = true
	s.screen.Fini()

	log.Printf("tcellterm: screen released")
}
