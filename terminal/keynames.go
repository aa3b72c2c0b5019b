package terminal

import "strconv"

// namedKeys lists config names for keys that have no contiguous range.
// F-keys and Ctrl+letters are generated in init.
var namedKeys = []struct {
	name string
	key  Key
}{
	{"escape", KeyEscape},
	{"enter", KeyEnter},
	{"tab", KeyTab},
	{"backtab", KeyBacktab},
	{"backspace", KeyBackspace},
	{"delete", KeyDelete},
	{"up", KeyUp},
	{"down", KeyDown},
	{"left", KeyLeft},
	{"right", KeyRight},
	{"home", KeyHome},
	{"end", KeyEnd},
	{"page_up", KeyPageUp},
	{"page_down", KeyPageDown},
	{"insert", KeyInsert},
	{"ctrl_space", KeyCtrlSpace},
	{"ctrl_backslash", KeyCtrlBackslash},
	{"ctrl_bracket_right", KeyCtrlBracketRight},
	{"ctrl_caret", KeyCtrlCaret},
	{"ctrl_underscore", KeyCtrlUnderscore},
}

var (
	keyNames  = make(map[Key]string)
	nameToKey = make(map[string]Key)
)

func init() {
	register := func(name string, k Key) {
		keyNames[k] = name
		nameToKey[name] = k
	}
	for _, nk := range namedKeys {
		register(nk.name, nk.key)
	}
	for i := range 12 {
		register("f"+strconv.Itoa(i+1), KeyF1+Key(i))
	}
	for i := range 26 {
		register("ctrl_"+string(rune('a'+i)), KeyCtrlA+Key(i))
	}

	// Input-only aliases
	nameToKey["shift_tab"] = KeyBacktab
	nameToKey["esc"] = KeyEscape
}

// KeyName returns the config name of k, empty for KeyNone and KeyRune
func KeyName(k Key) string {
	return keyNames[k]
}

// KeyByName resolves a config name; false if the name is unknown
func KeyByName(name string) (Key, bool) {
	k, ok := nameToKey[name]
	return k, ok
}
