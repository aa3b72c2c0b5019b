//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package terminal

import (
	"errors"
	"time"
)

// ErrNotTerminal is returned when stdin is not attached to an interactive terminal
var ErrNotTerminal = errors.New("stdin is not a terminal")

var errUnsupported = errors.New("raw terminal mode is not supported on this platform")

type unsupportedBackend struct{}

func newBackend() Backend { return unsupportedBackend{} }

func (unsupportedBackend) Init() error                             { return errUnsupported }
func (unsupportedBackend) Fini() error                             { return nil }
func (unsupportedBackend) Size() (int, int, error)                 { return 0, 0, errUnsupported }
func (unsupportedBackend) Write(p []byte) (int, error)             { return 0, errUnsupported }
func (unsupportedBackend) Read([]byte, time.Duration) (int, error) { return 0, errUnsupported }

func resetTerminalMode() {}
