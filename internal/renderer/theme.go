package renderer

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dshills/linewise/internal/renderer/core"
)

// ErrUnknownThemeKey is returned for an override naming no palette entry.
var ErrUnknownThemeKey = errors.New("renderer: unknown theme key")

// Palette keys accepted in theme overrides.
const (
	KeyTextForeground       = "text.foreground"
	KeyTextBackground       = "text.background"
	KeyCursorLineBackground = "cursorline.background"
	KeySelectionBackground  = "selection.background"
	KeyLineNumber           = "linenumber.foreground"
	KeyLineNumberCurrent    = "linenumber.current"
	KeyTablineForeground    = "tabline.foreground"
	KeyTablineBackground    = "tabline.background"
	KeyTablineBorder        = "tabline.border"
	KeyStatusForeground     = "status.foreground"
	KeyStatusBackground     = "status.background"
	KeyModeNormal           = "mode.normal"
	KeyModeInsert           = "mode.insert"
	KeyModeSelect           = "mode.select"
	KeyModeCommand          = "mode.command"
	KeyModeMenu             = "mode.menu"
	KeyMenuBackground       = "menu.background"
	KeyPromptForeground     = "prompt.foreground"
	KeyPromptBackground     = "prompt.background"
	KeyPromptBorder         = "prompt.border"
)

func defaultPalette() map[string]core.Color {
	text := core.ColorFromRGB(220, 200, 180)
	tabline := core.ColorFromRGB(144, 190, 255)
	return map[string]core.Color{
		KeyTextForeground:       text,
		KeyTextBackground:       core.ColorFromRGB(35, 35, 40),
		KeyCursorLineBackground: core.ColorFromRGB(50, 50, 55),
		KeySelectionBackground:  core.ColorFromRGB(70, 80, 110),
		KeyLineNumber:           core.ColorFromRGB(90, 90, 90),
		KeyLineNumberCurrent:    text,
		KeyTablineForeground:    tabline,
		KeyTablineBackground:    core.ColorFromRGB(20, 20, 40),
		KeyTablineBorder:        core.ColorFromRGB(80, 120, 180),
		KeyStatusForeground:     text,
		KeyStatusBackground:     core.ColorFromRGB(10, 10, 10),
		KeyModeNormal:           tabline,
		KeyModeInsert:           core.ColorFromRGB(120, 240, 140),
		KeyModeSelect:           core.ColorFromRGB(200, 150, 240),
		KeyModeCommand:          text,
		KeyModeMenu:             core.ColorFromRGB(220, 240, 140),
		KeyMenuBackground:       core.ColorFromRGB(25, 25, 30),
		KeyPromptForeground:     core.ColorFromRGB(255, 255, 160),
		KeyPromptBackground:     core.ColorFromRGB(0, 0, 0),
		KeyPromptBorder:         core.ColorFromRGB(110, 110, 110),
	}
}

// ThemeKeys returns the accepted override keys in sorted order.
func ThemeKeys() []string {
	keys := make([]string, 0, len(defaultPalette()))
	for k := range defaultPalette() {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Theme holds every style the renderer draws with. It is built once and
// never modified.
type Theme struct {
	Text              core.Style
	CursorLine        core.Style
	Selection         core.Style
	LineNumber        core.Style
	LineNumberCurrent core.Style
	Tabline           core.Style
	TabActive         core.Style
	TabSeparator      core.Style
	StatusBar         core.Style
	Menu              core.Style
	MenuKey           core.Style
	Prompt            core.Style
	PromptBorder      core.Style

	modes map[string]core.Style
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() *Theme {
	t, _ := NewTheme(nil)
	return t
}

// NewTheme builds a theme from the default palette with overrides applied.
// Overrides map palette keys (see ThemeKeys) to "#rrggbb" colours.
func NewTheme(overrides map[string]string) (*Theme, error) {
	p := defaultPalette()
	for k, v := range overrides {
		if _, ok := p[k]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownThemeKey, k)
		}
		c, err := core.ColorFromHex(v)
		if err != nil {
			return nil, fmt.Errorf("theme key %q: %w", k, err)
		}
		p[k] = c
	}

	textBg := p[KeyTextBackground]
	label := func(k string) core.Style {
		return core.NewStyle(textBg, p[k]).Bold()
	}
	tabline := core.NewStyle(p[KeyTablineForeground], p[KeyTablineBackground])

	return &Theme{
		Text:              core.NewStyle(p[KeyTextForeground], textBg),
		CursorLine:        core.NewStyle(p[KeyTextForeground], p[KeyCursorLineBackground]),
		Selection:         core.NewStyle(p[KeyTextForeground], p[KeySelectionBackground]),
		LineNumber:        core.NewStyle(p[KeyLineNumber], textBg),
		LineNumberCurrent: core.NewStyle(p[KeyLineNumberCurrent], textBg).Bold(),
		Tabline:           tabline,
		TabActive:         tabline.Bold().WithBackground(p[KeyCursorLineBackground]),
		TabSeparator:      core.NewStyle(p[KeyTablineBorder], p[KeyTablineBackground]),
		StatusBar:         core.NewStyle(p[KeyStatusForeground], p[KeyStatusBackground]),
		Menu:              core.NewStyle(p[KeyTextForeground], p[KeyMenuBackground]),
		MenuKey:           core.NewStyle(p[KeyModeMenu], p[KeyMenuBackground]).Bold(),
		Prompt:            core.NewStyle(p[KeyPromptForeground], p[KeyPromptBackground]),
		PromptBorder:      core.NewStyle(p[KeyPromptBorder], p[KeyPromptBackground]),
		modes: map[string]core.Style{
			"normal":  label(KeyModeNormal),
			"insert":  label(KeyModeInsert),
			"select":  label(KeyModeSelect),
			"command": label(KeyModeCommand),
			"menu":    label(KeyModeMenu),
		},
	}, nil
}

// ModeLabel returns the status bar label style for a mode name.
func (t *Theme) ModeLabel(name string) core.Style {
	if s, ok := t.modes[name]; ok {
		return s
	}
	return t.modes["normal"]
}
