package editor

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/lixenwraith/tilde/terminal"
)

// Action is what a key does in the editor
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
)

// actionNames maps config action names to actions; "none" unbinds
var actionNames = map[string]Action{
	"none":  ActionNone,
	"quit":  ActionQuit,
	"up":    ActionUp,
	"down":  ActionDown,
	"left":  ActionLeft,
	"right": ActionRight,
}

func (a Action) String() string {
	for name, act := range actionNames {
		if act == a {
			return name
		}
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

// Rune aliases for keys that can't be written as a single character
var runeAliases = map[string]rune{
	"space": ' ',
}

// Keymap binds runes and named keys to actions.
// Rune bindings match only without Ctrl or Alt; named keys match with any modifiers.
type Keymap struct {
	runes map[rune]Action
	keys  map[terminal.Key]Action
}

// DefaultKeymap binds Ctrl+Q to quit and arrows plus w/a/s/d to movement
func DefaultKeymap() *Keymap {
	return &Keymap{
		runes: map[rune]Action{
			'w': ActionUp,
			's': ActionDown,
			'a': ActionLeft,
			'd': ActionRight,
		},
		keys: map[terminal.Key]Action{
			terminal.KeyCtrlQ: ActionQuit,
			terminal.KeyUp:    ActionUp,
			terminal.KeyDown:  ActionDown,
			terminal.KeyLeft:  ActionLeft,
			terminal.KeyRight: ActionRight,
		},
	}
}

// NewKeymap applies key name -> action name overrides on top of the defaults.
// Two names for the same key (esc and escape, space and " ") are rejected.
func NewKeymap(overrides map[string]string) (*Keymap, error) {
	names := slices.Sorted(maps.Keys(overrides))

	km := DefaultKeymap()
	claimed := make(map[binding]string, len(names))
	for _, name := range names {
		b, err := resolveBinding(name)
		if err != nil {
			return nil, err
		}
		if prev, dup := claimed[b]; dup {
			return nil, fmt.Errorf("keys %q and %q name the same key", prev, name)
		}
		claimed[b] = name

		if err := km.bind(b, name, overrides[name]); err != nil {
			return nil, err
		}
	}
	return km, nil
}

// Clone returns an independent copy
func (km *Keymap) Clone() *Keymap {
	return &Keymap{
		runes: maps.Clone(km.runes),
		keys:  maps.Clone(km.keys),
	}
}

// Bind binds a key to an action by name.
// keyName is a single character, a rune alias, or a terminal key name; action "none" removes the binding.
func (km *Keymap) Bind(keyName, actionName string) error {
	b, err := resolveBinding(keyName)
	if err != nil {
		return err
	}
	return km.bind(b, keyName, actionName)
}

func (km *Keymap) bind(b binding, keyName, actionName string) error {
	action, ok := actionNames[strings.ToLower(strings.TrimSpace(actionName))]
	if !ok {
		return fmt.Errorf("key %q: unknown action: %q", keyName, actionName)
	}

	if b.isRune {
		if action == ActionNone {
			delete(km.runes, b.r)
		} else {
			km.runes[b.r] = action
		}
		return nil
	}
	if action == ActionNone {
		delete(km.keys, b.key)
	} else {
		km.keys[b.key] = action
	}
	return nil
}

// Lookup resolves a key event to its bound action
func (km *Keymap) Lookup(ev terminal.Event) Action {
	ev = ev.Normalize()
	if ev.Key == terminal.KeyRune {
		if ev.Modifiers&(terminal.ModCtrl|terminal.ModAlt) != 0 {
			return ActionNone
		}
		return km.runes[ev.Rune]
	}
	return km.keys[ev.Key]
}

// binding identifies a bindable key: a bare rune or a named terminal key
type binding struct {
	isRune bool
	r      rune
	key    terminal.Key
}

// resolveBinding accepts a single character, a rune alias or a terminal key name
func resolveBinding(name string) (binding, error) {
	if r, ok := runeAliases[strings.ToLower(name)]; ok {
		return binding{isRune: true, r: r}, nil
	}
	if runes := []rune(name); len(runes) == 1 {
		return binding{isRune: true, r: runes[0]}, nil
	}
	if k, ok := terminal.KeyByName(strings.ToLower(name)); ok {
		return binding{key: k}, nil
	}
	return binding{}, fmt.Errorf("unknown key name: %q", name)
}
