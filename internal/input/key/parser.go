package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("key: empty key specification")
	ErrInvalidSpec = errors.New("key: invalid key specification")
)

// Parse parses a key specification string into an Event.
//
// Supported formats:
//   - Single character: "a", "A", "1", "$"
//   - Key names: "Enter", "Esc", "Tab", "BS", "Space", "F5"
//   - With modifiers: "Ctrl+S", "Alt+F4", "Shift+Tab"
//   - Vim-style: "<C-s>", "<A-f>", "<S-Tab>", "<CR>", "<Esc>", "<lt>"
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	if len(spec) > 2 && strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseVimStyle(spec[1 : len(spec)-1])
	}

	if len(spec) > 1 && strings.Contains(spec, "+") {
		return parseModifierStyle(spec)
	}

	return parseKey(spec, ModNone)
}

// parseVimStyle parses the inside of "<...>" like "C-s", "S-Tab", "CR".
func parseVimStyle(inner string) (Event, error) {
	// A trailing "-" is the minus key itself, as in "<C-->".
	keyPart := inner
	var modPart string
	if i := strings.LastIndex(inner[:len(inner)-1], "-"); i >= 0 {
		modPart, keyPart = inner[:i], inner[i+1:]
	}

	var mods Modifier
	if modPart != "" {
		for _, p := range strings.Split(modPart, "-") {
			mod := ModifierFromName(p)
			if mod == ModNone || len(strings.TrimSpace(p)) != 1 {
				return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
			}
			mods = mods.With(mod)
		}
	}

	return parseKey(keyPart, mods)
}

// parseModifierStyle parses "Ctrl+S" style notation.
func parseModifierStyle(spec string) (Event, error) {
	parts := strings.Split(spec, "+")
	keyPart := parts[len(parts)-1]
	if keyPart == "" {
		// "Ctrl++" binds the plus key.
		keyPart = "+"
		parts = parts[:len(parts)-1]
	}

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		if p == "" {
			continue
		}
		mod := ModifierFromName(p)
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}

	return parseKey(keyPart, mods)
}

// parseKey parses a key name or single character with known modifiers.
func parseKey(keyPart string, mods Modifier) (Event, error) {
	if strings.TrimSpace(keyPart) == "" {
		if keyPart == " " {
			return NewRuneEvent(' ', mods), nil
		}
		return Event{}, ErrInvalidSpec
	}

	runes := []rune(keyPart)
	if len(runes) == 1 {
		r := runes[0]
		if mods.Has(ModCtrl) {
			r = unicode.ToLower(r)
		} else if unicode.IsUpper(r) {
			mods = mods.With(ModShift)
		}
		return NewRuneEvent(r, mods), nil
	}

	switch strings.ToLower(keyPart) {
	case "space":
		return NewRuneEvent(' ', mods), nil
	case "lt":
		return NewRuneEvent('<', mods), nil
	case "gt":
		return NewRuneEvent('>', mods), nil
	case "bar":
		return NewRuneEvent('|', mods), nil
	}

	if k := FromName(keyPart); k != KeyNone {
		return NewSpecialEvent(k, mods), nil
	}

	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Event {
	event, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return event
}

// Normalize parses and re-formats a key specification to its canonical form.
func Normalize(spec string) (string, error) {
	event, err := Parse(spec)
	if err != nil {
		return "", err
	}
	return event.Spec(), nil
}
