package document

import (
	"errors"
	"fmt"
)

// ErrInvalidEncoding marks a source that is not valid UTF-8
var ErrInvalidEncoding = errors.New("invalid UTF-8")

// ReadError reports a failed document load.
// Err wraps fs.ErrNotExist, fs.ErrPermission or ErrInvalidEncoding where applicable.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
