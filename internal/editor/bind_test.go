package editor

import (
	"errors"
	"testing"
)

func TestBindOverridesDefault(t *testing.T) {
	e, _ := newEditor(t, loadBuffer(t, "abc"))

	if err := e.Bind("normal", "x", ActionCursorEOL); err != nil {
		t.Fatalf("Bind() error = %v", err)
	}
	press(t, e, "x")
	if got := e.View().Cursor().Column; got != 2 {
		t.Errorf("cursor column = %d, want 2", got)
	}
}

func TestBindNewKey(t *testing.T) {
	e, _ := newEditor(t, loadBuffer(t, "abc"))

	if err := e.Bind("normal", "<C-e>", ActionModeInsert); err != nil {
		t.Fatalf("Bind() error = %v", err)
	}
	press(t, e, "<C-e>")
	if e.Mode().Name() != "insert" {
		t.Errorf("mode = %s, want insert", e.Mode().Name())
	}
}

func TestBindLeader(t *testing.T) {
	e, _ := newEditor(t, loadBuffer(t, "abc"))

	if err := e.Bind("leader", "e", ActionCursorEOL); err != nil {
		t.Fatalf("Bind() error = %v", err)
	}
	press(t, e, "<Space>", "e")
	if got := e.View().Cursor().Column; got != 2 {
		t.Errorf("cursor column = %d, want 2", got)
	}
}

func TestBindErrors(t *testing.T) {
	e, _ := newEditor(t)

	tests := []struct {
		name   string
		mode   string
		keys   string
		action string
		want   error
	}{
		{"unknown mode", "visual", "x", ActionQuit, ErrUnknownMode},
		{"unknown action", "normal", "x", "editor.explode", ErrUnknownAction},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := e.Bind(tt.mode, tt.keys, tt.action); !errors.Is(err, tt.want) {
				t.Errorf("Bind() error = %v, want %v", err, tt.want)
			}
		})
	}

	if err := e.Bind("normal", "<Bogus>", ActionQuit); err == nil {
		t.Error("Bind() with an unparsable key should fail")
	}
}

func TestBindAll(t *testing.T) {
	e, _ := newEditor(t, loadBuffer(t, "abc"))

	err := e.BindAll("config", map[string]map[string]string{
		"normal": {"Q": ActionQuit},
		"insert": {"<C-c>": ActionModeNormal},
	})
	if err != nil {
		t.Fatalf("BindAll() error = %v", err)
	}

	press(t, e, "i", "<C-c>")
	if e.Mode().Name() != "normal" {
		t.Errorf("mode = %s, want normal", e.Mode().Name())
	}
	press(t, e, "Q")
	if e.IsActive() {
		t.Error("editor still active after Q")
	}
}

func TestBindAllRejectsWholeTable(t *testing.T) {
	e, _ := newEditor(t, loadBuffer(t, "abc"))

	err := e.BindAll("config", map[string]map[string]string{
		"normal": {"Q": ActionQuit},
		"bogus":  {"x": ActionQuit},
	})
	if !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("BindAll() error = %v, want ErrUnknownMode", err)
	}

	press(t, e, "Q")
	if !e.IsActive() {
		t.Error("Q was bound although the table was rejected")
	}
}
