// Package config loads the editor configuration from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/tilde/editor"
)

// Backend names
const (
	BackendANSI  = "ansi"
	BackendTcell = "tcell"
)

// Config is the decoded configuration file
type Config struct {
	Backend       string            `toml:"backend"`
	Bounds        string            `toml:"bounds"`
	TabStop       int               `toml:"tab_stop"`
	EscapeControl bool              `toml:"escape_control"`
	AltScreen     bool              `toml:"alt_screen"`
	Debug         bool              `toml:"debug"`
	Keys          map[string]string `toml:"keys"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Backend:       BackendANSI,
		Bounds:        "screen",
		TabStop:       0,
		EscapeControl: true,
		AltScreen:     true,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/tilde/config.toml (or the platform equivalent)
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: %w", err)
	}
	return filepath.Join(dir, "tilde", "config.toml"), nil
}

// Parse decodes TOML data over the defaults. Keys not present keep their default value;
// unknown keys are an error.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		// toml.ParseError carries the line and last key in its message
		return nil, fmt.Errorf("config: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("config: unknown keys: %s", strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads and parses the file at path
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Resolve loads the config at path. A missing file yields the defaults unless explicit is set.
func Resolve(path string, explicit bool) (*Config, error) {
	cfg, err := LoadFile(path)
	if err == nil {
		log.Printf("config: loaded %s", path)
		return cfg, nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		log.Printf("config: %s not found, using defaults", path)
		return Default(), nil
	}
	return nil, err
}

// Validate checks enum values, the tab stop and key bindings
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendANSI, BackendTcell:
	default:
		return fmt.Errorf("config: backend: unknown value %q (expected ansi or tcell)", c.Backend)
	}
	if _, err := editor.ParseBounds(c.Bounds); err != nil {
		return fmt.Errorf("config: bounds: %w", err)
	}
	if c.TabStop < 0 {
		return fmt.Errorf("config: tab_stop: must be >= 0, got %d", c.TabStop)
	}
	if _, err := editor.NewKeymap(c.Keys); err != nil {
		return fmt.Errorf("config: keys: %w", err)
	}
	return nil
}

// Keymap builds the editor keymap from the [keys] overrides
func (c *Config) Keymap() (*editor.Keymap, error) {
	km, err := editor.NewKeymap(c.Keys)
	if err != nil {
		return nil, fmt.Errorf("config: keys: %w", err)
	}
	return km, nil
}

// BoundsMode returns the parsed bounds setting
func (c *Config) BoundsMode() (editor.Bounds, error) {
	b, err := editor.ParseBounds(c.Bounds)
	if err != nil {
		return 0, fmt.Errorf("config: bounds: %w", err)
	}
	return b, nil
}
