//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"errors"
	"io"
	"os"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// ErrNotTerminal is returned when stdin is not attached to an interactive terminal
var ErrNotTerminal = errors.New("stdin is not a terminal")

type unixBackend struct {
	out     *os.File
	inFd    int
	outFd   int
	oldTerm *term.State
}

func newBackend() Backend {
	return &unixBackend{
		out:   os.Stdout,
		inFd:  int(os.Stdin.Fd()),
		outFd: int(os.Stdout.Fd()),
	}
}

func (b *unixBackend) Init() error {
	if !term.IsTerminal(b.inFd) {
		return ErrNotTerminal
	}

	old, err := term.MakeRaw(b.inFd)
	if err != nil {
		return err
	}
	b.oldTerm = old
	return nil
}

func (b *unixBackend) Fini() error {
	if b.oldTerm == nil {
		return nil
	}
	old := b.oldTerm
	b.oldTerm = nil
	return term.Restore(b.inFd, old)
}

func (b *unixBackend) Size() (int, int, error) {
	ws, err := unix.IoctlGetWinsize(b.outFd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}

func (b *unixBackend) Write(p []byte) (int, error) {
	return b.out.Write(p)
}

func (b *unixBackend) Read(p []byte, timeout time.Duration) (int, error) {
	ms := -1
	if timeout >= 0 {
		ms = int(timeout / time.Millisecond)
	}

	for {
		fds := []unix.PollFd{
			{Fd: int32(b.inFd), Events: unix.POLLIN},
		}

		n, err := unix.Poll(fds, ms)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return 0, err
		}
		if n == 0 {
			return 0, nil // Timeout
		}

		rn, err := unix.Read(b.inFd, p)
		if err != nil {
			if err == unix.EINTR || err == unix.EAGAIN {
				continue
			}
			return 0, err
		}
		if rn == 0 {
			return 0, io.EOF
		}
		return rn, nil
	}
}

// resetTerminalMode attempts to restore terminal to cooked mode
// Best-effort for crash recovery; errors ignored
func resetTerminalMode() {
	// Try to restore via /dev/tty (works even if stdin redirected)
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return
	}
	defer tty.Close()

	fd := int(tty.Fd())
	// Get current termios, enable ECHO and ICANON
	if termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios); err == nil {
		termios.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
		termios.Iflag |= unix.ICRNL
		termios.Oflag |= unix.OPOST
		unix.IoctlSetTermios(fd, ioctlSetTermios, termios)
	}
}
