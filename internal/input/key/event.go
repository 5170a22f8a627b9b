package key

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Event represents a single key press event.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{
		Key:       KeyRune,
		Rune:      r,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{
		Key:       key,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character typed without
// Ctrl, Alt or Meta.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune) && !e.IsModified()
}

// IsModified returns true if any modifier is pressed.
// For character events, Shift alone is not considered modified
// since Shift changes the character itself.
func (e Event) IsModified() bool {
	if e.IsRune() {
		return e.Modifiers&(ModCtrl|ModAlt|ModMeta) != 0
	}
	return e.Modifiers != ModNone
}

// IsEscape returns true if this is the Escape key with no modifiers.
func (e Event) IsEscape() bool {
	return e.Key == KeyEscape && e.Modifiers == ModNone
}

// Spec returns the canonical specification of the event, as produced by
// Parse. Two events that should trigger the same binding share a spec.
// Examples: "a", "A", "<Space>", "<C-s>", "<S-Tab>", "<Esc>".
func (e Event) Spec() string {
	mods := e.Modifiers
	if e.IsRune() {
		// Shift is already reflected in the character.
		mods = mods.Without(ModShift)
		if mods == ModNone && e.Rune != ' ' && e.Rune != '<' {
			return string(e.Rune)
		}
	}

	var name string
	switch {
	case e.IsRune() && e.Rune == ' ':
		name = "Space"
	case e.IsRune() && e.Rune == '<':
		name = "lt"
	case e.IsRune() && mods.Has(ModCtrl):
		name = string(unicode.ToLower(e.Rune))
	case e.IsRune():
		name = string(e.Rune)
	default:
		name = e.Key.String()
	}

	if prefix := mods.String(); prefix != "" {
		return "<" + prefix + "-" + name + ">"
	}
	return "<" + name + ">"
}

// String returns the canonical specification.
func (e Event) String() string {
	return e.Spec()
}

// Equals returns true if two events represent the same key press.
// Timestamps are not compared.
func (e Event) Equals(other Event) bool {
	return e.Spec() == other.Spec()
}

// Matches checks if this event matches a key specification string.
func (e Event) Matches(spec string) bool {
	parsed, err := Parse(spec)
	if err != nil {
		return false
	}
	return e.Equals(parsed)
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %s}",
		e.Key, e.Rune, strings.TrimSpace(e.Modifiers.String()))
}
