package layer

import (
	"reflect"
	"testing"
)

func TestDeepMerge(t *testing.T) {
	tests := []struct {
		name     string
		dst      map[string]any
		src      map[string]any
		expected map[string]any
	}{
		{
			name:     "nil dst",
			dst:      nil,
			src:      map[string]any{"a": 1},
			expected: map[string]any{"a": 1},
		},
		{
			name:     "nil src",
			dst:      map[string]any{"a": 1},
			src:      nil,
			expected: map[string]any{"a": 1},
		},
		{
			name:     "src overrides dst",
			dst:      map[string]any{"a": 1},
			src:      map[string]any{"a": 2},
			expected: map[string]any{"a": 2},
		},
		{
			name: "nested merge",
			dst: map[string]any{
				"theme": map[string]any{"text.background": "#000000"},
			},
			src: map[string]any{
				"theme": map[string]any{"text.foreground": "#ffffff"},
			},
			expected: map[string]any{
				"theme": map[string]any{
					"text.background": "#000000",
					"text.foreground": "#ffffff",
				},
			},
		},
		{
			name:     "scalar replaces map",
			dst:      map[string]any{"logging": map[string]any{"level": "info"}},
			src:      map[string]any{"logging": "off"},
			expected: map[string]any{"logging": "off"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeepMerge(tt.dst, tt.src)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("DeepMerge() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestDeepMergeClonesSource(t *testing.T) {
	src := map[string]any{"keymap": map[string]any{"normal": map[string]any{"x": "a"}}}
	got := DeepMerge(nil, src)

	SetByPath(got, "keymap.normal.x", "b")
	if v, _ := GetByPath(src, "keymap.normal.x"); v != "a" {
		t.Errorf("source modified through merged copy: %v", v)
	}
}

func TestGetSetByPath(t *testing.T) {
	data := map[string]any{}
	SetByPath(data, "editor.initScript", "init.lua")
	SetByPath(data, "logging.level", "debug")
	SetByPath(data, "logging.level", "warn")

	if v, ok := GetByPath(data, "editor.initScript"); !ok || v != "init.lua" {
		t.Errorf("GetByPath(editor.initScript) = %v, %v", v, ok)
	}
	if v, ok := GetByPath(data, "logging.level"); !ok || v != "warn" {
		t.Errorf("GetByPath(logging.level) = %v, %v", v, ok)
	}
	if _, ok := GetByPath(data, "logging.level.deeper"); ok {
		t.Error("GetByPath() through a scalar should fail")
	}
	if _, ok := GetByPath(nil, "a"); ok {
		t.Error("GetByPath(nil) should fail")
	}
	SetByPath(nil, "a", 1) // must not panic
}

func TestMergeLayers(t *testing.T) {
	got := Merge(
		Layer{Source: SourceDefaults, Data: map[string]any{"logging": map[string]any{"level": "info", "file": ""}}},
		Layer{Source: SourceFile, Data: map[string]any{"logging": map[string]any{"level": "debug"}}},
		Layer{Source: SourceEnv, Data: map[string]any{"logging": map[string]any{"file": "/tmp/lw.log"}}},
		Layer{Source: SourceFlags, Data: nil},
	)
	want := map[string]any{"logging": map[string]any{"level": "debug", "file": "/tmp/lw.log"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merge() = %v, want %v", got, want)
	}
}

func TestChanges(t *testing.T) {
	old := map[string]any{
		"theme":   map[string]any{"text.background": "#000000"},
		"logging": map[string]any{"level": "info"},
	}
	updated := map[string]any{
		"theme":  map[string]any{"text.background": "#111111"},
		"editor": map[string]any{"initScript": "init.lua"},
	}

	got := Changes(old, updated)
	want := []string{"editor.initScript", "logging.level", "theme.text.background"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Changes() = %v, want %v", got, want)
	}
	if got := Changes(old, old); len(got) != 0 {
		t.Errorf("Changes(same) = %v, want none", got)
	}
}
