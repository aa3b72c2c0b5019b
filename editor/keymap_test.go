package editor

import (
	"testing"

	"github.com/lixenwraith/tilde/terminal"
)

func TestDefaultKeymap(t *testing.T) {
	km := DefaultKeymap()

	tests := []struct {
		ev   terminal.Event
		want Action
	}{
		{terminal.Event{Key: terminal.KeyCtrlQ}, ActionQuit},
		{terminal.Event{Key: terminal.KeyUp}, ActionUp},
		{terminal.Event{Key: terminal.KeyUp, Modifiers: terminal.ModShift}, ActionUp},
		{terminal.Event{Key: terminal.KeyRune, Rune: 'w'}, ActionUp},
		{terminal.Event{Key: terminal.KeyRune, Rune: 's'}, ActionDown},
		{terminal.Event{Key: terminal.KeyRune, Rune: 'a'}, ActionLeft},
		{terminal.Event{Key: terminal.KeyRune, Rune: 'd'}, ActionRight},
		{terminal.Event{Key: terminal.KeyRune, Rune: 'd', Modifiers: terminal.ModAlt}, ActionNone},
		{terminal.Event{Key: terminal.KeyRune, Rune: 'q'}, ActionNone},
		{terminal.Event{Key: terminal.KeyRune, Rune: 'q', Modifiers: terminal.ModCtrl}, ActionQuit},
	}

	for _, tt := range tests {
		if got := km.Lookup(tt.ev); got != tt.want {
			t.Errorf("Lookup(%+v): expected %d, got %d", tt.ev, tt.want, got)
		}
	}
}

func TestNewKeymap_Overrides(t *testing.T) {
	km, err := NewKeymap(map[string]string{
		"k":      "up",
		"j":      "down",
		"w":      "none",
		"ctrl_x": "quit",
		"esc":    "quit",
		"space":  "right",
	})
	if err != nil {
		t.Fatalf("NewKeymap failed: %v", err)
	}

	tests := []struct {
		ev   terminal.Event
		want Action
	}{
		{terminal.Event{Key: terminal.KeyRune, Rune: 'k'}, ActionUp},
		{terminal.Event{Key: terminal.KeyRune, Rune: 'j'}, ActionDown},
		{terminal.Event{Key: terminal.KeyRune, Rune: 'w'}, ActionNone},
		{terminal.Event{Key: terminal.KeyRune, Rune: ' '}, ActionRight},
		{terminal.Event{Key: terminal.KeyCtrlX}, ActionQuit},
		{terminal.Event{Key: terminal.KeyEscape}, ActionQuit},
		// Untouched defaults survive
		{terminal.Event{Key: terminal.KeyCtrlQ}, ActionQuit},
		{terminal.Event{Key: terminal.KeyRune, Rune: 'd'}, ActionRight},
	}

	for _, tt := range tests {
		if got := km.Lookup(tt.ev); got != tt.want {
			t.Errorf("Lookup(%+v): expected %d, got %d", tt.ev, tt.want, got)
		}
	}

	// Defaults are not mutated by overrides
	if got := DefaultKeymap().Lookup(terminal.Event{Key: terminal.KeyRune, Rune: 'w'}); got != ActionUp {
		t.Errorf("Expected default 'w' still bound to up, got %d", got)
	}
}

func TestNewKeymap_Errors(t *testing.T) {
	cases := []map[string]string{
		{"k": "jump"},
		{"not_a_key": "up"},
		{"": "up"},
	}
	for _, overrides := range cases {
		if _, err := NewKeymap(overrides); err == nil {
			t.Errorf("Expected error for %v", overrides)
		}
	}
}

func TestNewKeymap_SameKeyTwice(t *testing.T) {
	cases := []map[string]string{
		{"esc": "quit", "escape": "none"},
		{"space": "up", " ": "down"},
		{"shift_tab": "left", "backtab": "right"},
		{"Escape": "quit", "escape": "quit"},
	}
	for _, overrides := range cases {
		// Map order varies between runs; every attempt must fail
		for range 20 {
			if _, err := NewKeymap(overrides); err == nil {
				t.Fatalf("Expected error for %v", overrides)
			}
		}
	}

	// Different keys with the same action are fine
	km, err := NewKeymap(map[string]string{"esc": "quit", "x": "quit"})
	if err != nil {
		t.Fatalf("NewKeymap failed: %v", err)
	}
	if got := km.Lookup(terminal.Event{Key: terminal.KeyEscape}); got != ActionQuit {
		t.Errorf("Expected escape bound to quit, got %d", got)
	}
}

func TestKeymap_UnbindQuit(t *testing.T) {
	km, err := NewKeymap(map[string]string{"ctrl_q": "none"})
	if err != nil {
		t.Fatalf("NewKeymap failed: %v", err)
	}
	if got := km.Lookup(terminal.Event{Key: terminal.KeyCtrlQ}); got != ActionNone {
		t.Errorf("Expected ctrl_q unbound, got %d", got)
	}

	clone := km.Clone()
	clone.Bind("ctrl_q", "quit")
	if got := km.Lookup(terminal.Event{Key: terminal.KeyCtrlQ}); got != ActionNone {
		t.Error("Expected Clone to be independent")
	}
}

func TestAction_String(t *testing.T) {
	if ActionQuit.String() != "quit" || ActionNone.String() != "none" || ActionLeft.String() != "left" {
		t.Errorf("Expected config names, got %s %s %s", ActionQuit, ActionNone, ActionLeft)
	}
	if got := Action(99).String(); got != "Action(99)" {
		t.Errorf("Expected Action(99), got %q", got)
	}
}
