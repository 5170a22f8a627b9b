package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

type staticLoader map[string]any

func (s staticLoader) Load() (map[string]any, error) { return s, nil }

type failingLoader struct{}

func (failingLoader) Load() (map[string]any, error) { return nil, errors.New("boom") }

var noEnv = staticLoader(nil)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	s, err := Load(Options{Env: noEnv})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", s.Logging.Level, "info")
	}
	if len(s.Theme) != 0 || len(s.Keymap) != 0 {
		t.Errorf("defaults should have empty theme and keymap: %+v", s)
	}
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "config.toml", `
[theme]
"text.background" = "#202020"

[theme.status]
foreground = "#ffffff"

[keymap.normal]
"<C-s>" = "buffer.save"
"x" = "char.delete"

[logging]
level = "DEBUG"
file = "/tmp/lw.log"

[editor]
initScript = "/etc/linewise/init.lua"
`)

	s, err := Load(Options{Path: path, Env: noEnv})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	wantTheme := map[string]string{
		"text.background":   "#202020",
		"status.foreground": "#ffffff",
	}
	if !reflect.DeepEqual(s.Theme, wantTheme) {
		t.Errorf("Theme = %v, want %v", s.Theme, wantTheme)
	}
	wantKeymap := map[string]map[string]string{
		"normal": {"<C-s>": "buffer.save", "x": "char.delete"},
	}
	if !reflect.DeepEqual(s.Keymap, wantKeymap) {
		t.Errorf("Keymap = %v, want %v", s.Keymap, wantKeymap)
	}
	if s.Logging.Level != "debug" || s.Logging.File != "/tmp/lw.log" {
		t.Errorf("Logging = %+v", s.Logging)
	}
	if s.Editor.InitScript != "/etc/linewise/init.lua" {
		t.Errorf("Editor.InitScript = %q", s.Editor.InitScript)
	}
	if s.Path != path {
		t.Errorf("Path = %q, want %q", s.Path, path)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
keymap:
  insert:
    "<C-c>": mode.normal
logging:
  level: warn
`)

	s, err := Load(Options{Path: path, Env: noEnv})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := s.Keymap["insert"]["<C-c>"]; got != "mode.normal" {
		t.Errorf("Keymap[insert][<C-c>] = %q", got)
	}
	if s.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn", s.Logging.Level)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	s, err := Load(Options{Path: path, Env: noEnv})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", s.Logging.Level)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "config.toml", "[logging]\nlevel = \"debug\"\n")
	env := staticLoader{"logging": map[string]any{"level": "error"}}

	s, err := Load(Options{Path: path, Env: env})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Logging.Level != "error" {
		t.Errorf("Logging.Level = %q, want error", s.Logging.Level)
	}
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	env := staticLoader{"logging": map[string]any{"level": "error", "file": "/tmp/env.log"}}
	flags := map[string]string{"logging.level": "debug", "logging.file": ""}

	s, err := Load(Options{Env: env, Flags: flags})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", s.Logging.Level)
	}
	if s.Logging.File != "/tmp/env.log" {
		t.Errorf("Logging.File = %q, empty flag should not override", s.Logging.File)
	}
}

func TestLoad_RealEnvironment(t *testing.T) {
	t.Setenv("LINEWISE_LOG_FILE", "/tmp/env.log")

	s, err := Load(Options{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Logging.File != "/tmp/env.log" {
		t.Errorf("Logging.File = %q, want /tmp/env.log", s.Logging.File)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    error
	}{
		{"unknown section", "c.toml", "[fonts]\nsize = 12\n", ErrUnknownSetting},
		{"unknown logging key", "c.toml", "[logging]\ncolour = \"red\"\n", ErrUnknownSetting},
		{"bad level", "c.toml", "[logging]\nlevel = \"loud\"\n", ErrInvalidValue},
		{"theme not string", "c.toml", "[theme]\n\"text.background\" = 3\n", ErrTypeMismatch},
		{"section not table", "c.toml", "theme = \"dark\"\n", ErrTypeMismatch},
		{"keymap mode not table", "c.toml", "[keymap]\nnormal = \"x\"\n", ErrTypeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			_, err := Load(Options{Path: path, Env: noEnv})
			if !errors.Is(err, tt.want) {
				t.Errorf("Load() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoad_ParseError(t *testing.T) {
	path := writeFile(t, "config.toml", "[logging\n")
	if _, err := Load(Options{Path: path, Env: noEnv}); err == nil {
		t.Error("Load() should fail on malformed TOML")
	}
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	path := writeFile(t, "config.ini", "level=debug\n")
	if _, err := Load(Options{Path: path, Env: noEnv}); err == nil {
		t.Error("Load() should reject .ini files")
	}
}

func TestLoad_EnvError(t *testing.T) {
	if _, err := Load(Options{Env: failingLoader{}}); err == nil {
		t.Error("Load() should report environment errors")
	}
}

func TestTypeError(t *testing.T) {
	err := typeError("logging.level", "string", int64(3))
	if !errors.Is(err, ErrTypeMismatch) {
		t.Error("TypeError should match ErrTypeMismatch")
	}
	want := "type error for logging.level: expected string, got int64"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/test")

	if got := expandHome("~/init.lua"); got != filepath.Join("/home/test", "init.lua") {
		t.Errorf("expandHome(~/init.lua) = %q", got)
	}
	if got := expandHome("/abs/init.lua"); got != "/abs/init.lua" {
		t.Errorf("expandHome(/abs/init.lua) = %q", got)
	}
}

func TestChanged(t *testing.T) {
	old, err := LoadMap(Options{Env: noEnv})
	if err != nil {
		t.Fatal(err)
	}
	path := writeFile(t, "config.toml", "[theme]\n\"text.background\" = \"#101010\"\n")
	updated, err := LoadMap(Options{Path: path, Env: noEnv})
	if err != nil {
		t.Fatal(err)
	}

	got := Changed(old, updated)
	want := []string{"theme.text.background"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Changed() = %v, want %v", got, want)
	}
}
