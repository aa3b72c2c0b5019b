package terminal

import (
	"fmt"
	"strings"
	"unicode"
)

// Key represents a parsed input key
type Key uint16

// Key constants - designed for expansion
const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Rune)

	// Control keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab // Shift+Tab
	KeyBackspace
	KeyDelete

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Ctrl+letter (Ctrl+A = 0x01, Ctrl+Z = 0x1A), contiguous
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlH // Often same as Backspace
	KeyCtrlI // Often same as Tab
	KeyCtrlJ // Often same as Enter
	KeyCtrlK
	KeyCtrlL
	KeyCtrlM // Often same as Enter
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ

	// Ctrl+special
	KeyCtrlSpace
	KeyCtrlBackslash
	KeyCtrlBracketRight
	KeyCtrlCaret
	KeyCtrlUnderscore
)

// Modifier flags
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
)

// Event is one decoded key press
type Event struct {
	Key       Key
	Rune      rune // Valid when Key == KeyRune
	Modifiers Modifier
}

// Normalize folds Ctrl+letter reported as a rune into the matching KeyCtrl* key
// Backends differ: raw decoding yields KeyCtrlQ for 0x11, tcell may yield KeyRune 'q' with ModCtrl
func (e Event) Normalize() Event {
	if e.Key != KeyRune || e.Modifiers&ModCtrl == 0 {
		return e
	}
	r := e.Rune
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	if r >= 'a' && r <= 'z' {
		return Event{Key: KeyCtrlA + Key(r-'a'), Modifiers: e.Modifiers &^ ModCtrl}
	}
	return e
}

// String formats the event as modifier prefixes plus the key name, e.g. "Alt+'x'" or "Shift+up"
func (e Event) String() string {
	var sb strings.Builder
	if e.Modifiers&ModCtrl != 0 {
		sb.WriteString("Ctrl+")
	}
	if e.Modifiers&ModAlt != 0 {
		sb.WriteString("Alt+")
	}
	if e.Modifiers&ModShift != 0 {
		sb.WriteString("Shift+")
	}

	switch e.Key {
	case KeyNone:
		sb.WriteString("none")
	case KeyRune:
		if unicode.IsPrint(e.Rune) {
			fmt.Fprintf(&sb, "'%c'", e.Rune)
		} else {
			fmt.Fprintf(&sb, "U+%04X", e.Rune)
		}
	default:
		if name := KeyName(e.Key); name != "" {
			sb.WriteString(name)
		} else {
			fmt.Fprintf(&sb, "Key(%d)", e.Key)
		}
	}
	return sb.String()
}

// xtermModifier decodes the xterm modifier parameter (1 + bitmask)
func xtermModifier(param int) Modifier {
	if param < 2 {
		return ModNone
	}
	bits := param - 1
	var m Modifier
	if bits&1 != 0 {
		m |= ModShift
	}
	if bits&2 != 0 {
		m |= ModAlt
	}
	if bits&4 != 0 {
		m |= ModCtrl
	}
	return m
}

// csiLetterKeys maps the final byte of "ESC [ [1;mod] X" sequences
var csiLetterKeys = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
	'P': KeyF1,
	'Q': KeyF2,
	'R': KeyF3,
	'S': KeyF4,
}

// csiTildeKeys maps the first parameter of "ESC [ N [;mod] ~" sequences
var csiTildeKeys = map[int]Key{
	1:  KeyHome,
	2:  KeyInsert,
	3:  KeyDelete,
	4:  KeyEnd,
	5:  KeyPageUp,
	6:  KeyPageDown,
	7:  KeyHome,
	8:  KeyEnd,
	11: KeyF1,
	12: KeyF2,
	13: KeyF3,
	14: KeyF4,
	15: KeyF5,
	17: KeyF6,
	18: KeyF7,
	19: KeyF8,
	20: KeyF9,
	21: KeyF10,
	23: KeyF11,
	24: KeyF12,
}

// lookupCSI resolves the parameter and final bytes following "ESC ["
func lookupCSI(seq []byte) (Key, Modifier, bool) {
	if len(seq) == 0 {
		return KeyNone, ModNone, false
	}
	final := seq[len(seq)-1]

	var params [2]int
	n := 0
	digits := false
	for _, b := range seq[:len(seq)-1] {
		switch {
		case b >= '0' && b <= '9':
			if n < len(params) {
				params[n] = params[n]*10 + int(b-'0')
			}
			digits = true
		case b == ';':
			n++
		default:
			return KeyNone, ModNone, false
		}
	}
	if digits || n > 0 {
		n++
	}

	switch final {
	case '~':
		if n == 0 {
			return KeyNone, ModNone, false
		}
		k, ok := csiTildeKeys[params[0]]
		if !ok {
			return KeyNone, ModNone, false
		}
		return k, xtermModifier(params[1]), true
	case 'Z':
		return KeyBacktab, ModShift, true
	}

	k, ok := csiLetterKeys[final]
	if !ok {
		return KeyNone, ModNone, false
	}
	return k, xtermModifier(params[1]), true
}

// lookupSS3 resolves the byte following "ESC O"
func lookupSS3(b byte) (Key, bool) {
	if b == 'M' {
		return KeyEnter, true // Keypad Enter
	}
	k, ok := csiLetterKeys[b]
	return k, ok
}
