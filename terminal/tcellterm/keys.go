package tcellterm

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tilde/terminal"
)

// keyMap maps named tcell keys to terminal keys.
// Checked before the Ctrl+letter range: tcell aliases Backspace, Tab and Enter onto Ctrl+H/I/M.
var keyMap = map[tcell.Key]terminal.Key{
	tcell.KeyUp:         terminal.KeyUp,
	tcell.KeyDown:       terminal.KeyDown,
	tcell.KeyLeft:       terminal.KeyLeft,
	tcell.KeyRight:      terminal.KeyRight,
	tcell.KeyHome:       terminal.KeyHome,
	tcell.KeyEnd:        terminal.KeyEnd,
	tcell.KeyPgUp:       terminal.KeyPageUp,
	tcell.KeyPgDn:       terminal.KeyPageDown,
	tcell.KeyInsert:     terminal.KeyInsert,
	tcell.KeyDelete:     terminal.KeyDelete,
	tcell.KeyEnter:      terminal.KeyEnter,
	tcell.KeyTab:        terminal.KeyTab,
	tcell.KeyBacktab:    terminal.KeyBacktab,
	tcell.KeyEscape:     terminal.KeyEscape,
	tcell.KeyBackspace:  terminal.KeyBackspace,
	tcell.KeyBackspace2: terminal.KeyBackspace,
	tcell.KeyCtrlSpace:  terminal.KeyCtrlSpace,
	tcell.KeyF1:         terminal.KeyF1,
	tcell.KeyF2:         terminal.KeyF2,
	tcell.KeyF3:         terminal.KeyF3,
	tcell.KeyF4:         terminal.KeyF4,
	tcell.KeyF5:         terminal.KeyF5,
	tcell.KeyF6:         terminal.KeyF6,
	tcell.KeyF7:         terminal.KeyF7,
	tcell.KeyF8:         terminal.KeyF8,
	tcell.KeyF9:         terminal.KeyF9,
	tcell.KeyF10:        terminal.KeyF10,
	tcell.KeyF11:        terminal.KeyF11,
	tcell.KeyF12:        terminal.KeyF12,
}

func translateModifiers(m tcell.ModMask) terminal.Modifier {
	var mod terminal.Modifier
	if m&tcell.ModShift != 0 {
		mod |= terminal.ModShift
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		mod |= terminal.ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		mod |= terminal.ModCtrl
	}
	return mod
}

// translate converts a tcell key event into the backend-neutral form
func translate(ev *tcell.EventKey) terminal.Event {
	mods := translateModifiers(ev.Modifiers())
	k := ev.Key()

	if k == tcell.KeyRune {
		return terminal.Event{Key: terminal.KeyRune, Rune: ev.Rune(), Modifiers: mods}.Normalize()
	}
	if key, ok := keyMap[k]; ok {
		return terminal.Event{Key: key, Modifiers: mods}
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		// Ctrl is implied by the key itself
		return terminal.Event{Key: terminal.KeyCtrlA + terminal.Key(k-tcell.KeyCtrlA), Modifiers: mods &^ terminal.ModCtrl}
	}
	return terminal.Event{}
}
