package terminal

import "time"

// Backend abstracts platform-specific terminal operations.
// Sessions are built over a Backend so the lifecycle can be exercised without a tty.
type Backend interface {
	// Lifecycle
	// Init enters raw mode. Fini restores the saved mode and must tolerate repeated calls.
	Init() error
	Fini() error

	// Capabilities
	Size() (width, height int, err error)

	// I/O
	// Write writes raw bytes to the terminal output.
	Write(p []byte) (int, error)

	// Read waits up to timeout for input (negative waits indefinitely).
	// Returns 0 and nil error when the timeout elapses with nothing to read.
	Read(p []byte, timeout time.Duration) (int, error)
}
