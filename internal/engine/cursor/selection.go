package cursor

import (
	"fmt"
	"strings"

	"github.com/dshills/linewise/internal/engine/buffer"
)

// Selection is a character range between a fixed anchor and the moving
// cursor. Both ends are inclusive: the character under each end point is
// part of the selection.
type Selection struct {
	Fixed  buffer.Position // Where selection started
	Moving buffer.Position // Follows the cursor
}

// NewSelection creates a selection anchored at pos with no extent.
func NewSelection(pos buffer.Position) Selection {
	return Selection{Fixed: pos, Moving: pos}
}

// IsEmpty returns true if both ends are at the same position.
func (s Selection) IsEmpty() bool {
	return s.Fixed == s.Moving
}

// IsForward returns true if the moving end is at or after the fixed end.
func (s Selection) IsForward() bool {
	return !s.Moving.Before(s.Fixed)
}

// Range returns the selection ends ordered so that start <= end.
func (s Selection) Range() (start, end buffer.Position) {
	if s.IsForward() {
		return s.Fixed, s.Moving
	}
	return s.Moving, s.Fixed
}

// Contains returns true if pos lies within the selection.
func (s Selection) Contains(pos buffer.Position) bool {
	start, end := s.Range()
	return !pos.Before(start) && !pos.After(end)
}

// MoveTo returns the selection with its moving end at pos.
func (s Selection) MoveTo(pos buffer.Position) Selection {
	s.Moving = pos
	return s
}

// Text extracts the selected text from lines, joining lines with \n.
// Positions past the end of a line are clamped to it.
func (s Selection) Text(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	start, end := s.Range()
	if start.Line >= len(lines) {
		return ""
	}
	if end.Line >= len(lines) {
		end = buffer.Position{Line: len(lines) - 1, Column: len([]rune(lines[len(lines)-1]))}
	}

	var sb strings.Builder
	for i := start.Line; i <= end.Line; i++ {
		runes := []rune(lines[i])
		from := 0
		if i == start.Line {
			from = min(start.Column, len(runes))
		}
		to := len(runes)
		if i == end.Line {
			to = min(end.Column+1, len(runes))
		}
		if from < to {
			sb.WriteString(string(runes[from:to]))
		}
		if i < end.Line {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// String returns a human-readable representation of the selection.
func (s Selection) String() string {
	return fmt.Sprintf("Selection{%s -> %s}", s.Fixed, s.Moving)
}
