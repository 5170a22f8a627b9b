package core

import (
	"testing"
)

func TestColorDefault(t *testing.T) {
	if !ColorDefault.IsDefault() {
		t.Error("ColorDefault should be default")
	}
	if ColorFromRGB(1, 2, 3).IsDefault() {
		t.Error("RGB color should not be default")
	}
}

func TestColorFromHex(t *testing.T) {
	tests := []struct {
		hex     string
		r, g, b uint8
		wantErr bool
	}{
		{"#FF8040", 255, 128, 64, false},
		{"#ff8040", 255, 128, 64, false},
		{"FF8040", 255, 128, 64, false},
		{"#FFF", 255, 255, 255, false},
		{" #232328 ", 35, 35, 40, false},
		{"invalid", 0, 0, 0, true},
		{"#GGG", 0, 0, 0, true},
		{"#12345", 0, 0, 0, true},
		{"", 0, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			c, err := ColorFromHex(tt.hex)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ColorFromHex(%q) expected error", tt.hex)
				}
				return
			}
			if err != nil {
				t.Fatalf("ColorFromHex(%q) error = %v", tt.hex, err)
			}
			if c.R != tt.r || c.G != tt.g || c.B != tt.b {
				t.Errorf("ColorFromHex(%q) = (%d,%d,%d), want (%d,%d,%d)",
					tt.hex, c.R, c.G, c.B, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestColorHex(t *testing.T) {
	if got := ColorFromRGB(255, 128, 0).Hex(); got != "#ff8000" {
		t.Errorf("Hex() = %q, want %q", got, "#ff8000")
	}
	if got := ColorDefault.Hex(); got != "default" {
		t.Errorf("Hex() = %q, want %q", got, "default")
	}
}

func TestStyleBuilders(t *testing.T) {
	fg := ColorFromRGB(1, 1, 1)
	bg := ColorFromRGB(2, 2, 2)
	s := DefaultStyle().WithForeground(fg).WithBackground(bg).Bold()

	if s.Foreground != fg || s.Background != bg {
		t.Errorf("colors = %v/%v, want %v/%v", s.Foreground, s.Background, fg, bg)
	}
	if !s.Attributes.Has(AttrBold) {
		t.Error("Bold() should set AttrBold")
	}
	if s.Attributes.Has(AttrReverse) {
		t.Error("Bold() should not set AttrReverse")
	}
}

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{'a', 1},
		{'é', 1},
		{'世', 2},
		{'한', 2},
	}
	for _, tt := range tests {
		if got := RuneWidth(tt.r); got != tt.want {
			t.Errorf("RuneWidth(%q) = %d, want %d", tt.r, got, tt.want)
		}
	}
	if got := StringWidth("a世b"); got != 4 {
		t.Errorf("StringWidth() = %d, want 4", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		s     string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello world", 8, "hello w>"},
		{"hello", 0, ""},
		{"世界世界", 5, "世界>"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.s, tt.width, ">"); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.s, tt.width, got, tt.want)
		}
	}
}

func TestRectCentered(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 100, Height: 50}
	got := r.Centered(0.8)
	want := Rect{X: 10, Y: 5, Width: 80, Height: 40}
	if got != want {
		t.Errorf("Centered(0.8) = %+v, want %+v", got, want)
	}
	if got.Bottom() != 45 || got.Right() != 90 {
		t.Errorf("Bottom/Right = %d/%d, want 45/90", got.Bottom(), got.Right())
	}
	if !(Rect{Width: 0, Height: 3}).IsEmpty() {
		t.Error("zero-width rect should be empty")
	}
}
