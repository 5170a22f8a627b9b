package app

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dshills/linewise/internal/engine/buffer"
)

// OpenBuffers opens one buffer per path. Missing files become empty named
// buffers that are created on first save. With no paths it returns a
// single untitled buffer.
func OpenBuffers(paths []string) ([]*buffer.Buffer, error) {
	if len(paths) == 0 {
		return []*buffer.Buffer{buffer.Untitled()}, nil
	}

	buffers := make([]*buffer.Buffer, 0, len(paths))
	for _, p := range paths {
		b, err := openBuffer(p)
		if err != nil {
			return nil, err
		}
		buffers = append(buffers, b)
	}
	return buffers, nil
}

func openBuffer(path string) (*buffer.Buffer, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &OperationError{Op: "open", Target: path, Err: err}
	}
	name := filepath.Base(abs)

	info, err := os.Stat(abs)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return buffer.Empty(name, abs), nil
	case err != nil:
		return nil, &OperationError{Op: "open", Target: path, Err: err}
	case info.IsDir():
		return nil, &OperationError{Op: "open", Target: path, Err: ErrIsDirectory}
	}

	b, err := buffer.Load(name, abs)
	if err != nil {
		return nil, &OperationError{Op: "open", Target: path, Err: err}
	}
	return b, nil
}
