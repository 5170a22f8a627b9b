// Package core provides the cell, colour and geometry types shared by the
// renderer and its backends.
package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Attribute is a set of text attributes.
type Attribute uint8

// Text attribute flags.
const (
	AttrNone      Attribute = 0
	AttrBold      Attribute = 1 << iota
	AttrDim                 // faint text
	AttrItalic              // italic text
	AttrUnderline           // underlined text
	AttrReverse             // swap fg/bg
)

// Has reports whether attr is set.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// Color is a 24-bit colour or the terminal default.
type Color struct {
	R, G, B uint8
	Default bool
}

// ColorDefault is the terminal's own colour.
var ColorDefault = Color{Default: true}

// ColorFromRGB creates a colour from its components.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ColorFromHex parses "#rrggbb" or "#rgb". The leading '#' is optional.
func ColorFromHex(hex string) (Color, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return Color{}, fmt.Errorf("invalid hex color length: %q", hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color: %q", hex)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// IsDefault reports whether c is the terminal default.
func (c Color) IsDefault() bool {
	return c.Default
}

// Hex returns c as "#rrggbb", or "default".
func (c Color) Hex() string {
	if c.Default {
		return "default"
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Style is a foreground, background and attribute set.
type Style struct {
	Foreground Color
	Background Color
	Attributes Attribute
}

// DefaultStyle uses the terminal's colours and no attributes.
func DefaultStyle() Style {
	return Style{Foreground: ColorDefault, Background: ColorDefault}
}

// NewStyle creates a style with the given colours.
func NewStyle(fg, bg Color) Style {
	return Style{Foreground: fg, Background: bg}
}

// WithForeground returns s with a new foreground.
func (s Style) WithForeground(fg Color) Style {
	s.Foreground = fg
	return s
}

// WithBackground returns s with a new background.
func (s Style) WithBackground(bg Color) Style {
	s.Background = bg
	return s
}

// Bold returns s with bold added.
func (s Style) Bold() Style {
	s.Attributes |= AttrBold
	return s
}

// Cell is one terminal cell.
type Cell struct {
	Rune  rune
	Width int
	Style Style
}

// EmptyCell returns a blank cell in the default style.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Width: 1, Style: DefaultStyle()}
}

// NewStyledCell creates a cell for r in style.
func NewStyledCell(r rune, style Style) Cell {
	return Cell{Rune: r, Width: RuneWidth(r), Style: style}
}

// RuneWidth returns the number of columns r occupies.
func RuneWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

// StringWidth returns the number of columns s occupies.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most width columns, ending with tail when it
// had to cut.
func Truncate(s string, width int, tail string) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, tail)
}

// Rect is a screen region. X and Y are the top-left corner.
type Rect struct {
	X, Y          int
	Width, Height int
}

// IsEmpty reports whether r covers no cells.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Bottom returns the first row below r.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Right returns the first column right of r.
func (r Rect) Right() int { return r.X + r.Width }

// Centered returns a rect of the given fraction of r's size, centred in r.
func (r Rect) Centered(fraction float64) Rect {
	w := int(float64(r.Width) * fraction)
	h := int(float64(r.Height) * fraction)
	return Rect{
		X:      r.X + (r.Width-w)/2,
		Y:      r.Y + (r.Height-h)/2,
		Width:  w,
		Height: h,
	}
}
