package buffer

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Buffer is the in-memory text of one file as an ordered list of lines.
type Buffer struct {
	name    string
	path    string
	named   bool
	hasPath bool
	lines   []string
}

// Untitled creates a buffer with no name, no path and no lines.
func Untitled() *Buffer {
	return &Buffer{}
}

// Empty creates a named buffer with no lines, for a file that does not
// yet exist on disk.
func Empty(name, path string) *Buffer {
	return &Buffer{
		name:    name,
		path:    path,
		named:   true,
		hasPath: path != "",
	}
}

// Load reads the file at path into a new named buffer.
// A trailing line break does not produce an extra empty line.
func Load(name, path string) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Op: "load", Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return nil, &FileError{Op: "load", Path: path, Err: ErrInvalidUTF8}
	}

	b := Empty(name, path)
	b.lines = splitLines(string(data))
	return b, nil
}

// splitLines splits text on line breaks, accepting both \n and \r\n.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Name returns the buffer name, if it has one.
func (b *Buffer) Name() (string, bool) {
	return b.name, b.named
}

// Path returns the file path, if the buffer has one.
func (b *Buffer) Path() (string, bool) {
	return b.path, b.hasPath
}

// SetPath sets the file path, made absolute against the working
// directory, and names the buffer after the path's base name.
func (b *Buffer) SetPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return ErrEmptyPath
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return &FileError{Op: "resolve", Path: path, Err: err}
	}
	b.path = abs
	b.hasPath = true
	b.name = filepath.Base(abs)
	b.named = true
	return nil
}

// LinesCount returns the number of lines. Zero for an empty buffer.
func (b *Buffer) LinesCount() int {
	return len(b.lines)
}

// IsEmpty returns true if the buffer has no lines at all.
func (b *Buffer) IsEmpty() bool {
	return len(b.lines) == 0
}

// Lines returns a copy of the buffer's lines.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// Line returns the text of the line at index.
func (b *Buffer) Line(index int) (string, bool) {
	if index < 0 || index >= len(b.lines) {
		return "", false
	}
	return b.lines[index], true
}

// LineLength returns the rune count of the line at index.
// The second result is false when the buffer is empty or index is out of
// range, which is different from a line that exists and is empty.
func (b *Buffer) LineLength(index int) (int, bool) {
	if index < 0 || index >= len(b.lines) {
		return 0, false
	}
	return utf8.RuneCountInString(b.lines[index]), true
}

// InsertChar inserts r at pos. On an empty buffer r becomes the first line.
func (b *Buffer) InsertChar(r rune, pos Position) {
	if len(b.lines) == 0 {
		b.lines = append(b.lines, string(r))
		return
	}
	if pos.Line < 0 || pos.Line >= len(b.lines) {
		return
	}
	runes := []rune(b.lines[pos.Line])
	col := clamp(pos.Column, 0, len(runes))
	out := make([]rune, 0, len(runes)+1)
	out = append(out, runes[:col]...)
	out = append(out, r)
	out = append(out, runes[col:]...)
	b.lines[pos.Line] = string(out)
}

// RemoveChar removes the character at pos.
// It is a no-op when pos is at or past the end of its line.
func (b *Buffer) RemoveChar(pos Position) {
	length, ok := b.LineLength(pos.Line)
	if !ok || pos.Column < 0 || pos.Column >= length {
		return
	}
	runes := []rune(b.lines[pos.Line])
	b.lines[pos.Line] = string(append(runes[:pos.Column:pos.Column], runes[pos.Column+1:]...))
}

// ClearLine empties the line at pos. On an empty buffer it adds one empty line.
func (b *Buffer) ClearLine(pos Position) {
	if len(b.lines) == 0 {
		b.lines = append(b.lines, "")
		return
	}
	if pos.Line < 0 || pos.Line >= len(b.lines) {
		return
	}
	b.lines[pos.Line] = ""
}

// AddLine inserts content as a new line at index, shifting later lines down.
// An index equal to LinesCount appends.
func (b *Buffer) AddLine(index int, content string) {
	index = clamp(index, 0, len(b.lines))
	b.lines = append(b.lines, "")
	copy(b.lines[index+1:], b.lines[index:])
	b.lines[index] = content
}

// SplitLine breaks the line at pos in two. Text before the column stays,
// text from the column onward becomes the following line.
func (b *Buffer) SplitLine(pos Position) {
	if len(b.lines) == 0 {
		b.lines = append(b.lines, "")
	}
	if pos.Line < 0 || pos.Line >= len(b.lines) {
		return
	}
	runes := []rune(b.lines[pos.Line])
	col := clamp(pos.Column, 0, len(runes))
	head, tail := string(runes[:col]), string(runes[col:])
	b.lines[pos.Line] = head
	b.AddLine(pos.Line+1, tail)
}

// JoinWithNextLine appends the following line onto line and removes it.
// It is a no-op when line has no successor.
func (b *Buffer) JoinWithNextLine(line int) {
	if line < 0 || line+1 >= len(b.lines) {
		return
	}
	b.lines[line] += b.lines[line+1]
	b.lines = append(b.lines[:line+1], b.lines[line+2:]...)
}

// Save writes every line followed by a line break to the buffer's path.
func (b *Buffer) Save() error {
	if !b.hasPath {
		return &FileError{Op: "save", Err: ErrNoPath}
	}
	return b.write(b.path)
}

// SaveAs writes the buffer to path and, once the write succeeds, names the
// buffer after it. On failure the buffer's name and path are unchanged.
func (b *Buffer) SaveAs(path string) error {
	if strings.TrimSpace(path) == "" {
		return ErrEmptyPath
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return &FileError{Op: "resolve", Path: path, Err: err}
	}
	if err := b.write(abs); err != nil {
		return err
	}
	b.path, b.hasPath = abs, true
	b.name, b.named = filepath.Base(abs), true
	return nil
}

func (b *Buffer) write(path string) error {
	var sb strings.Builder
	for _, line := range b.lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return &FileError{Op: "save", Path: path, Err: err}
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
