// Package editor is the interactive core: cursor and viewport state, key dispatch and full-frame redraw.
//
// The editor never blocks. A driver alternates RefreshScreen, a check of ShouldQuit,
// one blocking key read and ProcessKeypress.
package editor

import (
	"github.com/lixenwraith/tilde/document"
	"github.com/lixenwraith/tilde/terminal"
)

// Option configures an Editor
type Option func(*Editor)

// WithKeymap replaces the default keymap
func WithKeymap(km *Keymap) Option {
	return func(e *Editor) {
		e.keymap = km
	}
}

// WithBounds selects the cursor clamping mode
func WithBounds(b Bounds) Option {
	return func(e *Editor) {
		e.bounds = b
	}
}

// Editor owns the screen, the document and the cursor/viewport state.
// cursor is in document coordinates; offset is the document position shown at screen (0,0).
type Editor struct {
	screen Screen
	doc    *document.Document

	cursor Position
	offset Position

	keymap *Keymap
	bounds Bounds

	shouldQuit bool
}

// New creates an editor over screen showing doc. A nil doc is treated as empty.
func New(screen Screen, doc *document.Document, opts ...Option) *Editor {
	if doc == nil {
		doc = document.Empty()
	}
	e := &Editor{
		screen: screen,
		doc:    doc,
		keymap: DefaultKeymap(),
		bounds: BoundsScreen,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ShouldQuit reports whether a quit was requested. Once true it stays true.
func (e *Editor) ShouldQuit() bool {
	return e.shouldQuit
}

// Cursor returns the cursor in document coordinates
func (e *Editor) Cursor() Position {
	return e.cursor
}

// Offset returns the viewport offset
func (e *Editor) Offset() Position {
	return e.offset
}

// Document returns the document being shown
func (e *Editor) Document() *document.Document {
	return e.doc
}

// ProcessKeypress dispatches one key event. Unbound keys are ignored; the error is always nil.
func (e *Editor) ProcessKeypress(ev terminal.Event) error {
	switch e.keymap.Lookup(ev) {
	case ActionQuit:
		e.shouldQuit = true
	case ActionUp, ActionDown, ActionLeft, ActionRight:
		e.MoveCursor(ev)
	}
	return nil
}

// MoveCursor applies a movement key to the cursor; keys not bound to movement are ignored
func (e *Editor) MoveCursor(ev terminal.Event) {
	action := e.keymap.Lookup(ev)
	switch e.bounds {
	case BoundsDocument:
		e.moveInDocument(action)
		e.scroll()
	default:
		e.moveOnScreen(action)
	}
}

// moveOnScreen clamps against the terminal size; the offset is left untouched
func (e *Editor) moveOnScreen(action Action) {
	width, height := e.screen.Size()
	switch action {
	case ActionUp:
		e.cursor.Y = max(0, e.cursor.Y-1)
	case ActionDown:
		e.cursor.Y = min(height-1, e.cursor.Y+1)
	case ActionLeft:
		e.cursor.X = max(0, e.cursor.X-1)
	case ActionRight:
		e.cursor.X = min(width-1, e.cursor.X+1)
	}
}

// moveInDocument clamps y to the last row and x to one past the end of the current row
func (e *Editor) moveInDocument(action Action) {
	last := max(e.doc.RowCount()-1, 0)
	switch action {
	case ActionUp:
		e.cursor.Y = max(0, e.cursor.Y-1)
	case ActionDown:
		e.cursor.Y = min(last, e.cursor.Y+1)
	case ActionLeft:
		if row, ok := e.doc.RowAt(e.cursor.Y); ok {
			e.cursor.X = row.PrevColumn(e.cursor.X)
		}
		return
	case ActionRight:
		if row, ok := e.doc.RowAt(e.cursor.Y); ok {
			e.cursor.X = row.NextColumn(e.cursor.X)
		}
		return
	default:
		return
	}

	// Vertical move: snap x onto the new row
	if row, ok := e.doc.RowAt(e.cursor.Y); ok {
		e.cursor.X = row.SnapColumn(e.cursor.X)
	} else {
		e.cursor.X = 0
	}
}

// scroll adjusts the offset so the cursor lies inside the visible frame
func (e *Editor) scroll() {
	width, height := e.screen.Size()

	if e.cursor.Y < e.offset.Y {
		e.offset.Y = e.cursor.Y
	} else if e.cursor.Y >= e.offset.Y+height {
		e.offset.Y = e.cursor.Y - height + 1
	}

	if e.cursor.X < e.offset.X {
		e.offset.X = e.cursor.X
	} else if e.cursor.X >= e.offset.X+width {
		e.offset.X = e.cursor.X - width + 1
	}
}
