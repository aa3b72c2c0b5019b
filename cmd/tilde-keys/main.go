// Command tilde-keys shows how key presses decode and which editor action each is bound to.
// It is a diagnostic for keymap overrides in the config file; Ctrl+C exits.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/tilde/config"
	"github.com/lixenwraith/tilde/editor"
	"github.com/lixenwraith/tilde/terminal"
)

const maxLog = 10

// keySource yields decoded key events
type keySource interface {
	ReadKey() (terminal.Event, error)
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mTILDE-KEYS CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	km, err := setup(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "tilde-keys: %v\n", err)
		os.Exit(1)
	}

	err = terminal.With(func(s *terminal.Session) error {
		return inspect(s, s, km)
	}, terminal.WithAltScreen(true))
	if err != nil {
		fmt.Fprintf(os.Stderr, "tilde-keys: %v\n", err)
		os.Exit(1)
	}
}

// setup silences the default logger and resolves the keymap from flags.
// Config loading logs through the standard logger, which would scribble over the alt screen.
func setup(args []string, stderr io.Writer) (*editor.Keymap, error) {
	log.SetOutput(io.Discard)

	fs := flag.NewFlagSet("tilde-keys", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "Config file whose [keys] section is applied")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: tilde-keys [flags]\n\nFlags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	return loadKeymap(*configPath)
}

func loadKeymap(path string) (*editor.Keymap, error) {
	explicit := path != ""
	if !explicit {
		p, err := config.DefaultPath()
		if err != nil {
			return editor.DefaultKeymap(), nil
		}
		path = p
	}
	cfg, err := config.Resolve(path, explicit)
	if err != nil {
		return nil, err
	}
	return cfg.Keymap()
}

// inspect logs each key event with its binding until Ctrl+C or the key source closes
func inspect(screen editor.Screen, keys keySource, km *editor.Keymap) error {
	entries := make([]string, 0, maxLog)

	for {
		if err := draw(screen, entries); err != nil {
			return err
		}

		ev, err := keys.ReadKey()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if ev.Normalize().Key == terminal.KeyCtrlC {
			return nil
		}

		if len(entries) == maxLog {
			entries = append(entries[:0], entries[1:]...)
		}
		entries = append(entries, fmt.Sprintf("%-20s -> %s", ev, km.Lookup(ev)))
	}
}

func draw(screen editor.Screen, entries []string) error {
	w, h := screen.Size()
	lines := append([]string{"tilde-keys: press keys to see their binding, Ctrl+C quits", ""}, entries...)

	screen.HideCursor()
	for y := 0; y < h; y++ {
		screen.MoveTo(0, y)
		screen.ClearLine()
		if y < len(lines) {
			screen.Print(runewidth.Truncate(lines[y], w, ""))
		}
	}
	screen.MoveTo(0, min(len(lines), h-1))
	screen.ShowCursor()
	return screen.Flush()
}
