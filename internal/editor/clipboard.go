package editor

import (
	"github.com/atotto/clipboard"
)

// Clipboard is where yanked text goes.
type Clipboard interface {
	WriteAll(text string) error
	ReadAll() (string, error)
}

// SystemClipboard writes through to the operating system clipboard.
type SystemClipboard struct{}

// WriteAll copies text to the system clipboard.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	return clipboard.WriteAll(text)
}

// ReadAll returns the system clipboard contents.
func (SystemClipboard) ReadAll() (string, error) {
	if clipboard.Unsupported {
		return "", ErrClipboardUnavailable
	}
	return clipboard.ReadAll()
}

// MemoryClipboard keeps yanked text in process. It is used when the system
// clipboard is unavailable and in tests.
type MemoryClipboard struct {
	text string
}

// WriteAll stores text.
func (c *MemoryClipboard) WriteAll(text string) error {
	c.text = text
	return nil
}

// ReadAll returns the stored text.
func (c *MemoryClipboard) ReadAll() (string, error) {
	return c.text, nil
}
