package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/tilde/config"
	"github.com/lixenwraith/tilde/document"
	"github.com/lixenwraith/tilde/editor"
	"github.com/lixenwraith/tilde/terminal"
	"github.com/lixenwraith/tilde/terminal/tcellterm"
)

// KeySource yields one decoded key event per call, blocking until one is available
type KeySource interface {
	ReadKey() (terminal.Event, error)
}

func main() {
	// Panic Recovery: Ensure terminal is reset even if the editor crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)

			fmt.Fprintf(os.Stderr, "\n\x1b[31mTILDE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "tilde: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	// Silent until config decides otherwise
	setupLogging(false)

	opts, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	// Load before touching terminal modes so a bad path fails on a sane terminal
	doc := document.Empty()
	if path := opts.path(); path != "" {
		doc, err = document.Load(path,
			document.WithTabStop(cfg.TabStop),
			document.WithEscapeControl(cfg.EscapeControl),
		)
		if err != nil {
			return err
		}
	}

	keymap, err := cfg.Keymap()
	if err != nil {
		return err
	}
	bounds, err := cfg.BoundsMode()
	if err != nil {
		return err
	}
	edOpts := []editor.Option{editor.WithKeymap(keymap), editor.WithBounds(bounds)}

	log.Printf("tilde: starting backend=%s bounds=%s rows=%d", cfg.Backend, bounds, doc.RowCount())

	switch cfg.Backend {
	case config.BackendTcell:
		return tcellterm.With(func(s *tcellterm.Screen) error {
			return drive(editor.New(s, doc, edOpts...), s)
		})
	default:
		return terminal.With(func(s *terminal.Session) error {
			return drive(editor.New(s, doc, edOpts...), s)
		}, terminal.WithAltScreen(cfg.AltScreen))
	}
}

// drive runs the refresh / quit check / read / dispatch loop until quit or error.
// The quit check follows the refresh, so the final frame is drawn before exit.
func drive(ed *editor.Editor, keys KeySource) error {
	for {
		if err := ed.RefreshScreen(); err != nil {
			return err
		}
		if ed.ShouldQuit() {
			return nil
		}

		ev, err := keys.ReadKey()
		if errors.Is(err, io.EOF) {
			log.Printf("tilde: key source closed")
			return nil
		}
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}

		log.Printf("tilde: key %s", ev)
		if err := ed.ProcessKeypress(ev); err != nil {
			return err
		}
	}
}
