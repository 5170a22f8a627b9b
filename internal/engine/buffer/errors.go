package buffer

import (
	"errors"
	"fmt"
)

// Buffer errors.
var (
	// ErrNoPath indicates a save was attempted on a buffer without a path.
	ErrNoPath = errors.New("buffer: no file path")

	// ErrInvalidUTF8 indicates file content is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("buffer: content is not valid UTF-8")

	// ErrStaleHandle indicates a handle whose buffer was removed from the store.
	ErrStaleHandle = errors.New("buffer: stale handle")

	// ErrEmptyPath indicates an empty path was supplied.
	ErrEmptyPath = errors.New("buffer: empty path")
)

// FileError represents a failed load or save.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
