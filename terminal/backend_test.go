package terminal

import (
	"bytes"
	"io"
	"time"
)

// fakeBackend is an in-memory Backend recording lifecycle calls
type fakeBackend struct {
	width, height int

	initErr  error
	sizeErr  error
	writeErr error
	finiErr  error

	raw   bool
	inits int
	finis int

	out bytes.Buffer

	// Each Read delivers one chunk; an empty chunk simulates a poll timeout
	input [][]byte
}

func newFakeBackend(width, height int) *fakeBackend {
	return &fakeBackend{width: width, height: height}
}

func (f *fakeBackend) Init() error {
	f.inits++
	if f.initErr != nil {
		return f.initErr
	}
	f.raw = true
	return nil
}

func (f *fakeBackend) Fini() error {
	f.finis++
	f.raw = false
	return f.finiErr
}

func (f *fakeBackend) Size() (int, int, error) {
	if f.sizeErr != nil {
		return 0, 0, f.sizeErr
	}
	return f.width, f.height, nil
}

func (f *fakeBackend) Write(p []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	return f.out.Write(p)
}

func (f *fakeBackend) Read(p []byte, timeout time.Duration) (int, error) {
	if len(f.input) == 0 {
		if timeout >= 0 {
			return 0, nil
		}
		return 0, io.EOF
	}
	chunk := f.input[0]
	f.input = f.input[1:]
	return copy(p, chunk), nil
}

func (f *fakeBackend) feed(chunks ...string) {
	for _, c := range chunks {
		f.input = append(f.input, []byte(c))
	}
}
