package tcellterm

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tilde/terminal"
)

func newSimScreen(t *testing.T, w, h int) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("initializing simulation screen failed: %v", err)
	}
	sim.SetSize(w, h)

	s, err := New(sim)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(s.Release)
	return s, sim
}

func rowText(sim tcell.SimulationScreen, y, w int) string {
	out := make([]rune, 0, w)
	for x := 0; x < w; x++ {
		r, _, _, _ := sim.GetContent(x, y)
		out = append(out, r)
	}
	return string(out)
}

func TestScreen_SizeCapturedOnce(t *testing.T) {
	s, sim := newSimScreen(t, 40, 10)

	sim.SetSize(100, 50)
	w, h := s.Size()
	if w != 40 || h != 10 {
		t.Errorf("Expected captured size 40x10, got %dx%d", w, h)
	}
}

func TestScreen_PrintAndLineBreaks(t *testing.T) {
	s, sim := newSimScreen(t, 10, 3)

	s.MoveTo(0, 0)
	s.ClearLine()
	s.Print("hello")
	s.Print("\r\n")
	s.ClearLine()
	s.Print("world")
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	if got := rowText(sim, 0, 10); got != "hello     " {
		t.Errorf("Expected row 0 %q, got %q", "hello     ", got)
	}
	if got := rowText(sim, 1, 10); got != "world     " {
		t.Errorf("Expected row 1 %q, got %q", "world     ", got)
	}
}

func TestScreen_PrintClipsAtRightEdge(t *testing.T) {
	s, sim := newSimScreen(t, 4, 1)

	s.MoveTo(0, 0)
	s.Print("abcdef")
	s.Flush()

	if got := rowText(sim, 0, 4); got != "abcd" {
		t.Errorf("Expected clipped row %q, got %q", "abcd", got)
	}
}

func TestScreen_ClearLineBlanksRow(t *testing.T) {
	s, sim := newSimScreen(t, 5, 2)

	s.MoveTo(0, 1)
	s.Print("xxxxx")
	s.MoveTo(0, 1)
	s.ClearLine()
	s.Flush()

	if got := rowText(sim, 1, 5); got != "     " {
		t.Errorf("Expected blank row, got %q", got)
	}
}

func TestScreen_CursorFollowsMoveTo(t *testing.T) {
	s, _ := newSimScreen(t, 80, 24)

	s.HideCursor()
	if _, _, visible := s.Cursor(); visible {
		t.Error("Expected cursor hidden")
	}

	s.MoveTo(3, 2)
	s.ShowCursor()
	x, y, visible := s.Cursor()
	if x != 3 || y != 2 || !visible {
		t.Errorf("Expected visible cursor at (3,2), got (%d,%d) visible=%v", x, y, visible)
	}
}

func TestScreen_ReleaseTwice(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("initializing simulation screen failed: %v", err)
	}
	sim.SetSize(80, 24)

	s, err := New(sim)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	s.Release()
	s.Release()
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want terminal.Event
	}{
		{"ctrl q key", tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl), terminal.Event{Key: terminal.KeyCtrlQ}},
		{"ctrl q rune", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModCtrl), terminal.Event{Key: terminal.KeyCtrlQ}},
		{"plain rune", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), terminal.Event{Key: terminal.KeyRune, Rune: 'w'}},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModAlt), terminal.Event{Key: terminal.KeyRune, Rune: 'd', Modifiers: terminal.ModAlt}},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), terminal.Event{Key: terminal.KeyUp}},
		{"shift right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModShift), terminal.Event{Key: terminal.KeyRight, Modifiers: terminal.ModShift}},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), terminal.Event{Key: terminal.KeyEnter}},
		{"backspace2", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), terminal.Event{Key: terminal.KeyBackspace}},
		{"page down", tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), terminal.Event{Key: terminal.KeyPageDown}},
		{"f12", tcell.NewEventKey(tcell.KeyF12, 0, tcell.ModNone), terminal.Event{Key: terminal.KeyF12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := translate(tt.ev); got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}
