package terminal

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// InitError reports a failed session open: raw mode switch, size query or mode setup
type InitError struct {
	Op  string
	Err error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("terminal init: %s: %v", e.Op, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// Option configures a Session
type Option func(*sessionConfig)

type sessionConfig struct {
	altScreen bool
}

// WithAltScreen draws on the alternate screen buffer, leaving the shell scrollback untouched
func WithAltScreen(on bool) Option {
	return func(c *sessionConfig) {
		c.altScreen = on
	}
}

// Session is an acquired raw-mode terminal.
// The embedded Output is the screen sink; dimensions are fixed at Open.
type Session struct {
	*Output

	backend   Backend
	keys      *keyReader
	altScreen bool

	mu       sync.Mutex
	released bool
}

// Open enters raw mode on stdin and captures the terminal size of stdout
func Open(opts ...Option) (*Session, error) {
	return OpenBackend(newBackend(), opts...)
}

// OpenBackend opens a session over an explicit backend
// On any failure after raw mode was entered, the backend is restored before returning
func OpenBackend(b Backend, opts ...Option) (*Session, error) {
	var cfg sessionConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	// Initialize backend (raw mode)
	if err := b.Init(); err != nil {
		return nil, &InitError{Op: "raw mode", Err: err}
	}

	w, h, err := b.Size()
	if err == nil && (w <= 0 || h <= 0) {
		err = fmt.Errorf("terminal reports %dx%d", w, h)
	}
	if err != nil {
		b.Fini()
		return nil, &InitError{Op: "size", Err: err}
	}

	s := &Session{
		Output:    NewOutput(b, w, h),
		backend:   b,
		keys:      newKeyReader(b),
		altScreen: cfg.altScreen,
	}

	// DISABLE AUTO-WRAP
	// Prevents terminal scroll/wrap on bottom-right corner write
	setup := []string{csiAutoWrapOff}
	if cfg.altScreen {
		setup = append([]string{csiAltScreenEnter}, setup...)
	}
	if err := s.Output.writeRaw(setup...); err != nil {
		b.Fini()
		return nil, &InitError{Op: "setup", Err: err}
	}

	log.Printf("terminal: session opened %dx%d alt=%v", w, h, cfg.altScreen)
	return s, nil
}

// With opens a session, runs fn, and releases the session on every exit path.
// A panic inside fn unwinds through the deferred release before propagating.
func With(fn func(*Session) error, opts ...Option) error {
	return WithBackend(newBackend(), fn, opts...)
}

// WithBackend is With over an explicit backend
func WithBackend(b Backend, fn func(*Session) error, opts ...Option) error {
	s, err := OpenBackend(b, opts...)
	if err != nil {
		return err
	}
	defer s.Release()

	return fn(s)
}

// ReadKey blocks until the next key event
func (s *Session) ReadKey() (Event, error) {
	s.mu.Lock()
	released := s.released
	s.mu.Unlock()
	if released {
		return Event{}, io.EOF
	}

	return s.keys.ReadKey()
}

// Release restores the terminal. Safe to call multiple times; errors are swallowed
// because teardown has nowhere to report them.
func (s *Session) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.released {
		return
	}
	s.released = true

	// Show cursor
	restore := []string{csiCursorShow}
	if s.altScreen {
		// Exit alternate screen
		restore = append(restore, csiAltScreenExit)
	}
	// Re-enable Auto-Wrap AFTER exiting alt screen to ensure the main buffer has wrap enabled
	restore = append(restore, csiAutoWrapOn, csiSGR0)
	if !s.altScreen {
		// Park the shell prompt below the last frame
		s.Output.MoveTo(0, s.Output.height-1)
		restore = append(restore, "\r\n")
	}
	_ = s.Output.writeRaw(restore...)

	// Backend cleanup
	_ = s.backend.Fini()

	log.Printf("terminal: session released")
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Release cannot be called normally
func EmergencyReset(w io.Writer) {
	io.WriteString(w, csiCursorShow+csiAltScreenExit+csiSGR0+csiAutoWrapOn+csiRIS)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Attempt raw mode reset via /dev/tty - escape sequences alone don't restore termios
	// This is best-effort; ignore errors in crash context
	resetTerminalMode()
}
