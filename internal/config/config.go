package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dshills/linewise/internal/config/layer"
	"github.com/dshills/linewise/internal/config/loader"
)

// EnvPrefix prefixes every environment variable the editor reads.
const EnvPrefix = "LINEWISE_"

// Log levels accepted under logging.level.
var logLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
	"off":   true,
}

// Logging configures the log file.
type Logging struct {
	Level string
	File  string
}

// EditorSettings holds editor behaviour settings.
type EditorSettings struct {
	// InitScript is a Lua file run at startup.
	InitScript string
}

// Settings is the decoded configuration.
type Settings struct {
	// Theme maps palette keys to "#rrggbb" colours.
	Theme map[string]string

	// Keymap maps mode -> key sequence -> action name.
	Keymap map[string]map[string]string

	Logging Logging
	Editor  EditorSettings

	// Path is the file the settings were read from, if any.
	Path string
}

// Defaults returns the built-in settings.
func Defaults() map[string]any {
	return map[string]any{
		"theme":  map[string]any{},
		"keymap": map[string]any{},
		"logging": map[string]any{
			"level": "info",
			"file":  "",
		},
		"editor": map[string]any{
			"initScript": "",
		},
	}
}

// DefaultPath returns the user config file location, or "" when the
// user config directory is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "linewise", "config.toml")
}

// Options controls Load.
type Options struct {
	// Path is the config file. Empty skips the file layer.
	Path string

	// FS reads the config file. Nil means the OS filesystem.
	FS loader.FileSystem

	// Env replaces the environment loader, mainly for tests.
	Env loader.Loader

	// Flags holds command line overrides, keyed by dotted path.
	Flags map[string]string
}

// Load merges defaults, the config file and the environment, and
// decodes the result. A missing config file is not an error.
func Load(opts Options) (*Settings, error) {
	data, err := LoadMap(opts)
	if err != nil {
		return nil, err
	}
	s, err := Decode(data)
	if err != nil {
		if opts.Path != "" {
			return nil, fmt.Errorf("%s: %w", opts.Path, err)
		}
		return nil, err
	}
	s.Path = opts.Path
	return s, nil
}

// LoadMap returns the merged configuration without decoding it.
// Empty flag values are ignored.
func LoadMap(opts Options) (map[string]any, error) {
	layers := []layer.Layer{{Source: layer.SourceDefaults, Data: Defaults()}}

	if opts.Path != "" {
		fsys := opts.FS
		if fsys == nil {
			fsys = loader.DefaultFS()
		}
		l, err := loader.ForPath(fsys, opts.Path)
		if err != nil {
			return nil, err
		}
		data, err := l.Load()
		if err != nil {
			return nil, err
		}
		layers = append(layers, layer.Layer{Source: layer.SourceFile, Data: data})
	}

	env := opts.Env
	if env == nil {
		env = loader.NewEnvLoader(EnvPrefix)
	}
	data, err := env.Load()
	if err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}
	layers = append(layers, layer.Layer{Source: layer.SourceEnv, Data: data})

	if len(opts.Flags) > 0 {
		flags := make(map[string]any)
		for path, value := range opts.Flags {
			if value != "" {
				layer.SetByPath(flags, path, value)
			}
		}
		layers = append(layers, layer.Layer{Source: layer.SourceFlags, Data: flags})
	}

	return layer.Merge(layers...), nil
}

// Decode converts a merged configuration map into Settings.
func Decode(data map[string]any) (*Settings, error) {
	s := &Settings{
		Theme:  map[string]string{},
		Keymap: map[string]map[string]string{},
	}

	sections := make([]string, 0, len(data))
	for k := range data {
		sections = append(sections, k)
	}
	sort.Strings(sections)

	for _, name := range sections {
		raw := data[name]
		section, ok := raw.(map[string]any)
		if !ok {
			return nil, typeError(name, "table", raw)
		}
		var err error
		switch name {
		case "theme":
			s.Theme, err = stringTable(name, section)
		case "keymap":
			err = decodeKeymap(s, section)
		case "logging":
			err = decodeLogging(s, section)
		case "editor":
			err = decodeEditor(s, section)
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownSetting, name)
		}
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

// stringTable flattens a table into dotted keys with string values, so
// both `"text.background" = ...` and `[theme.text] background = ...`
// produce the same entry.
func stringTable(path string, table map[string]any) (map[string]string, error) {
	out := make(map[string]string)
	for k, v := range layer.FlattenMap(table) {
		str, ok := v.(string)
		if !ok {
			return nil, typeError(path+"."+k, "string", v)
		}
		out[k] = str
	}
	return out, nil
}

func decodeKeymap(s *Settings, table map[string]any) error {
	for m, raw := range table {
		bindings, ok := raw.(map[string]any)
		if !ok {
			return typeError("keymap."+m, "table", raw)
		}
		keys, err := stringTable("keymap."+m, bindings)
		if err != nil {
			return err
		}
		s.Keymap[m] = keys
	}
	return nil
}

func decodeLogging(s *Settings, table map[string]any) error {
	for k, v := range table {
		str, ok := v.(string)
		if !ok {
			return typeError("logging."+k, "string", v)
		}
		switch k {
		case "level":
			level := strings.ToLower(str)
			if !logLevels[level] {
				return fmt.Errorf("%w: logging.level %q", ErrInvalidValue, str)
			}
			s.Logging.Level = level
		case "file":
			s.Logging.File = str
		default:
			return fmt.Errorf("%w: logging.%s", ErrUnknownSetting, k)
		}
	}
	return nil
}

func decodeEditor(s *Settings, table map[string]any) error {
	for k, v := range table {
		switch k {
		case "initScript":
			str, ok := v.(string)
			if !ok {
				return typeError("editor."+k, "string", v)
			}
			s.Editor.InitScript = expandHome(str)
		default:
			return fmt.Errorf("%w: editor.%s", ErrUnknownSetting, k)
		}
	}
	return nil
}

func expandHome(path string) string {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, rest)
}

// Changed lists the dotted setting paths that differ between two loads.
func Changed(old, new map[string]any) []string {
	return layer.Changes(old, new)
}
