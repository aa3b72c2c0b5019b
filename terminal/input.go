package terminal

import (
	"time"
	"unicode/utf8"
)

// escapeTimeout is the duration to wait after ESC to distinguish
// standalone ESC from escape sequence start
const escapeTimeout = 50 * time.Millisecond

// maxSequence bounds the scan for a CSI final byte; longer runs are discarded as garbage
const maxSequence = 32

// keyReader decodes raw terminal input into key events synchronously.
// No goroutine is involved: the caller's ReadKey is the only blocking point.
type keyReader struct {
	backend Backend

	// Persistent buffer for stream assembly, holds partial UTF-8 and escape sequences across reads
	buf     []byte
	pending []Event
	scratch [256]byte
}

func newKeyReader(backend Backend) *keyReader {
	return &keyReader{
		backend: backend,
		buf:     make([]byte, 0, 256),
	}
}

// ReadKey blocks until one key event is decoded
func (r *keyReader) ReadKey() (Event, error) {
	for {
		if len(r.pending) > 0 {
			ev := r.pending[0]
			r.pending = r.pending[1:]
			return ev, nil
		}

		if len(r.buf) > 0 {
			r.consume(r.parseInput(r.buf))
			if len(r.pending) > 0 {
				continue
			}
		}

		// Incomplete sequence buffered: only wait briefly for its continuation
		timeout := time.Duration(-1)
		if len(r.buf) > 0 {
			timeout = escapeTimeout
		}

		n, err := r.backend.Read(r.scratch[:], timeout)
		if err != nil {
			return Event{}, err
		}
		if n == 0 {
			r.expire()
			continue
		}
		r.buf = append(r.buf, r.scratch[:n]...)
	}
}

// expire resolves a buffered fragment after the continuation timeout
func (r *keyReader) expire() {
	if len(r.buf) == 0 {
		return
	}
	if r.buf[0] == 0x1b {
		// Standalone ESC; whatever followed is parsed on its own
		r.pending = append(r.pending, Event{Key: KeyEscape})
		r.consume(1)
		return
	}
	// Truncated UTF-8 that never completed
	r.buf = r.buf[:0]
}

// consume drops n bytes from the front of the buffer
func (r *keyReader) consume(n int) {
	if n <= 0 {
		return
	}
	if n >= len(r.buf) {
		r.buf = r.buf[:0]
		return
	}
	copy(r.buf, r.buf[n:])
	r.buf = r.buf[:len(r.buf)-n]
}

func (r *keyReader) emit(ev Event) {
	// Swallowed unknown sequences carry KeyNone
	if ev.Key == KeyNone {
		return
	}
	r.pending = append(r.pending, ev)
}

// parseInput parses raw bytes into events and returns bytes consumed (stop on incomplete sequence)
func (r *keyReader) parseInput(data []byte) int {
	i := 0
	n := len(data)

	for i < n {
		b := data[i]

		// Fast path: printable ASCII
		if b >= 0x20 && b < 0x7f {
			r.emit(Event{Key: KeyRune, Rune: rune(b)})
			i++
			continue
		}

		// Escape sequence
		if b == 0x1b {
			// Need at least 2 bytes to determine sequence type
			if i+1 >= n {
				return i
			}
			consumed, ev := parseEscape(data[i:])
			if consumed == 0 {
				return i
			}
			r.emit(ev)
			i += consumed
			continue
		}

		// Control characters
		if b < 0x20 {
			r.emit(parseControl(b))
			i++
			continue
		}

		// DEL
		if b == 0x7f {
			r.emit(Event{Key: KeyBackspace})
			i++
			continue
		}

		// UTF-8 multibyte
		if !utf8.FullRune(data[i:]) {
			return i
		}
		rn, size := utf8.DecodeRune(data[i:])
		if rn != utf8.RuneError || size > 1 {
			r.emit(Event{Key: KeyRune, Rune: rn})
		}
		i += size
	}
	return i
}

// parseEscape attempts to parse an escape sequence, returns 0 on incomplete
func parseEscape(data []byte) (int, Event) {
	if len(data) < 2 {
		return 0, Event{}
	}

	switch c := data[1]; {
	case c == '[':
		return parseCSI(data)
	case c == 'O':
		return parseSS3(data)
	case c == 0x1b:
		// ESC ESC -> Alt+Escape
		return 2, Event{Key: KeyEscape, Modifiers: ModAlt}
	case c < 0x20:
		// Alt+Control character
		ev := parseControl(c)
		ev.Modifiers |= ModAlt
		return 2, ev
	case c < 0x7f:
		// Alt+printable
		return 2, Event{Key: KeyRune, Rune: rune(c), Modifiers: ModAlt}
	}

	// ESC followed by DEL or a multibyte rune: report the ESC alone
	return 1, Event{Key: KeyEscape}
}

// parseCSI parses "ESC [ params final"
func parseCSI(data []byte) (int, Event) {
	if len(data) < 3 {
		return 0, Event{}
	}

	end := 2
	for end < len(data) && end < maxSequence {
		b := data[end]
		if b >= 0x40 && b <= 0x7e {
			key, mod, ok := lookupCSI(data[2 : end+1])
			if !ok {
				// Unknown but valid CSI syntax - consume and swallow
				return end + 1, Event{}
			}
			return end + 1, Event{Key: key, Modifiers: mod}
		}
		if b < 0x20 || b > 0x7e {
			// Not a CSI body byte; drop the introducer
			return 2, Event{}
		}
		end++
	}

	if end >= maxSequence {
		return end, Event{}
	}
	return 0, Event{} // Incomplete
}

// parseSS3 parses "ESC O X", returns length even for unknown sequences
func parseSS3(data []byte) (int, Event) {
	if len(data) < 3 {
		return 0, Event{}
	}
	if key, ok := lookupSS3(data[2]); ok {
		return 3, Event{Key: key}
	}
	return 3, Event{}
}

// parseControl maps control characters to keys
func parseControl(b byte) Event {
	switch b {
	case 0x00: // Ctrl+Space or Ctrl+@
		return Event{Key: KeyCtrlSpace}
	case 0x08: // Ctrl+H or Backspace
		return Event{Key: KeyBackspace}
	case 0x09:
		return Event{Key: KeyTab}
	case 0x0a, 0x0d: // LF, CR (Enter)
		return Event{Key: KeyEnter}
	case 0x1b:
		return Event{Key: KeyEscape}
	case 0x1c:
		return Event{Key: KeyCtrlBackslash}
	case 0x1d:
		return Event{Key: KeyCtrlBracketRight}
	case 0x1e:
		return Event{Key: KeyCtrlCaret}
	case 0x1f:
		return Event{Key: KeyCtrlUnderscore}
	}
	if b >= 0x01 && b <= 0x1a {
		return Event{Key: KeyCtrlA + Key(b-0x01)}
	}
	return Event{}
}
