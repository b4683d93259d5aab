package domain

import (
	"errors"
	"fmt"
)

// Domain errors fall into two kinds: configuration errors, raised before
// any file I/O, and I/O errors, raised while loading the document.
var (
	// ErrConfig indicates the invocation could not be resolved into a Config.
	ErrConfig = errors.New("configuration error")

	// ErrNotEnoughArguments indicates fewer than three argument tokens.
	ErrNotEnoughArguments = fmt.Errorf("%w: not enough arguments", ErrConfig)

	// ErrInvalidColor indicates an unknown colour mode.
	ErrInvalidColor = fmt.Errorf("%w: invalid color mode", ErrConfig)

	// ErrIO indicates the document could not be opened or fully read.
	ErrIO = errors.New("i/o error")

	// ErrInvalidEncoding indicates the document is not valid UTF-8 text.
	ErrInvalidEncoding = errors.New("stream did not contain valid UTF-8")
)

// IOError records a failure to load the document at Path.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *IOError) Unwrap() error { return e.Err }

// Is reports whether target is ErrIO, so callers can classify the failure
// without caring about its cause.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}
