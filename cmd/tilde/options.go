package main

import (
	"flag"
	"fmt"
	"io"
	"log"

	"github.com/lixenwraith/tilde/config"
)

// options holds parsed command-line flags; set records which flags were given explicitly
type options struct {
	configPath string
	backend    string
	bounds     string
	tabStop    int
	debug      bool

	set  map[string]bool
	args []string
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	o := &options{set: make(map[string]bool)}

	fs := flag.NewFlagSet("tilde", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/tilde/config.toml)")
	fs.StringVar(&o.backend, "backend", "", "Screen backend: ansi, tcell")
	fs.StringVar(&o.bounds, "bounds", "", "Cursor bounds: screen, document")
	fs.IntVar(&o.tabStop, "tabstop", 0, "Tab stop width, 0 keeps tabs verbatim")
	fs.BoolVar(&o.debug, "debug", false, "Write debug log to logs/tilde.log")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: tilde [flags] [path]\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		o.set[f.Name] = true
	})

	o.args = fs.Args()
	if len(o.args) > 1 {
		return nil, fmt.Errorf("expected at most one path, got %d", len(o.args))
	}
	return o, nil
}

// path returns the document path argument, empty when none was given
func (o *options) path() string {
	if len(o.args) == 0 {
		return ""
	}
	return o.args[0]
}

// loadConfig resolves the config file and overlays explicitly set flags
func (o *options) loadConfig() (*config.Config, error) {
	var cfg *config.Config
	if o.set["config"] {
		c, err := config.Resolve(o.configPath, true)
		if err != nil {
			return nil, err
		}
		cfg = c
	} else if path, err := config.DefaultPath(); err == nil {
		c, err := config.Resolve(path, false)
		if err != nil {
			return nil, err
		}
		cfg = c
	} else {
		log.Printf("tilde: %v, using defaults", err)
		cfg = config.Default()
	}

	if o.set["backend"] {
		cfg.Backend = o.backend
	}
	if o.set["bounds"] {
		cfg.Bounds = o.bounds
	}
	if o.set["tabstop"] {
		cfg.TabStop = o.tabStop
	}
	if o.set["debug"] {
		cfg.Debug = o.debug
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
