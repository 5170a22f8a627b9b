package keymap

import (
	"errors"
	"reflect"
	"testing"

	"github.com/dshills/linewise/internal/input/key"
	"github.com/dshills/linewise/internal/input/mode"
)

func newDefaultResolver(t *testing.T) *Resolver {
	t.Helper()
	r := NewResolver()
	if err := LoadDefaults(r); err != nil {
		t.Fatalf("LoadDefaults() error = %v", err)
	}
	return r
}

func TestKeymapBuilders(t *testing.T) {
	km := NewKeymap("test").
		ForMode("normal").
		WithPriority(10).
		WithSource("test-source").
		Add("j", "cursor.down").
		Add("k", "cursor.up")

	if km.Mode != "normal" {
		t.Errorf("Mode = %q, want %q", km.Mode, "normal")
	}
	if km.Priority != 10 {
		t.Errorf("Priority = %d, want %d", km.Priority, 10)
	}
	if km.Source != "test-source" {
		t.Errorf("Source = %q, want %q", km.Source, "test-source")
	}
	if len(km.Bindings) != 2 {
		t.Errorf("len(Bindings) = %d, want %d", len(km.Bindings), 2)
	}
}

func TestKeymapValidate(t *testing.T) {
	tests := []struct {
		name    string
		keymap  *Keymap
		wantErr bool
	}{
		{"valid", NewKeymap("k").ForMode("normal").Add("j", "cursor.down"), false},
		{"no mode", NewKeymap("k").Add("j", "cursor.down"), true},
		{"empty keys", NewKeymap("k").ForMode("normal").Add("", "cursor.down"), true},
		{"empty action", NewKeymap("k").ForMode("normal").Add("j", ""), true},
		{"bad keys", NewKeymap("k").ForMode("normal").Add("<Bogus>", "cursor.down"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.keymap.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidBinding) {
				t.Errorf("expected ErrInvalidBinding, got %v", err)
			}
		})
	}
}

func TestResolveDefaults(t *testing.T) {
	r := newDefaultResolver(t)

	tests := []struct {
		name string
		ev   key.Event
		mode string
		want string
	}{
		{"normal i", key.NewRuneEvent('i', key.ModNone), mode.ModeNormal, "mode.insert"},
		{"normal A", key.NewRuneEvent('A', key.ModShift), mode.ModeNormal, "mode.appendEOL"},
		{"normal x", key.NewRuneEvent('x', key.ModNone), mode.ModeNormal, "edit.deleteForward"},
		{"normal space", key.NewRuneEvent(' ', key.ModNone), mode.ModeNormal, "menu.open"},
		{"normal shift-tab", key.NewSpecialEvent(key.KeyTab, key.ModShift), mode.ModeNormal, "tab.prev"},
		{"normal enter", key.NewSpecialEvent(key.KeyEnter, key.ModNone), mode.ModeNormal, "cursor.nextLine"},
		{"normal arrow", key.NewSpecialEvent(key.KeyDown, key.ModNone), mode.ModeNormal, "cursor.down"},
		{"insert esc", key.NewSpecialEvent(key.KeyEscape, key.ModNone), mode.ModeInsert, "mode.normal"},
		{"insert enter", key.NewSpecialEvent(key.KeyEnter, key.ModNone), mode.ModeInsert, "edit.lineBreak"},
		{"insert end", key.NewSpecialEvent(key.KeyEnd, key.ModNone), mode.ModeInsert, "cursor.eol"},
		{"select y", key.NewRuneEvent('y', key.ModNone), mode.ModeSelect, "select.yank"},
		{"select motion", key.NewRuneEvent('l', key.ModNone), mode.ModeSelect, "cursor.right"},
		{"command esc", key.NewSpecialEvent(key.KeyEscape, key.ModNone), mode.ModeCommand, "mode.normal"},
		{"leader w", key.NewRuneEvent('w', key.ModNone), ModeLeader, "buffer.save"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, err := r.Resolve(tt.ev, tt.mode)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if action.Name != tt.want {
				t.Errorf("Resolve() = %q, want %q", action.Name, tt.want)
			}
		})
	}
}

func TestResolveInsertChar(t *testing.T) {
	r := newDefaultResolver(t)

	for _, ch := range []rune{'a', 'i', 'Z', ' ', 'é', '!'} {
		action, err := r.Resolve(key.NewRuneEvent(ch, key.ModNone), mode.ModeInsert)
		if err != nil {
			t.Fatalf("Resolve(%q) error = %v", ch, err)
		}
		if action.Name != ActionInsertChar || action.Args.Text != string(ch) {
			t.Errorf("Resolve(%q) = %+v", ch, action)
		}
	}
}

func TestResolveUnbound(t *testing.T) {
	r := newDefaultResolver(t)

	tests := []struct {
		ev   key.Event
		mode string
	}{
		{key.NewRuneEvent('z', key.ModNone), mode.ModeNormal},
		{key.NewRuneEvent('s', key.ModCtrl), mode.ModeInsert},
		{key.NewSpecialEvent(key.KeyF1, key.ModNone), mode.ModeInsert},
		{key.NewRuneEvent('w', key.ModNone), mode.ModeCommand},
		{key.NewRuneEvent('a', key.ModNone), "nonexistent"},
	}

	for _, tt := range tests {
		if _, err := r.Resolve(tt.ev, tt.mode); !errors.Is(err, ErrUnbound) {
			t.Errorf("Resolve(%s, %s) error = %v, want ErrUnbound", tt.ev, tt.mode, err)
		}
	}
}

func TestRegisterPriority(t *testing.T) {
	r := newDefaultResolver(t)

	user := NewKeymap("user").ForMode(mode.ModeNormal).WithPriority(UserPriority).Add("x", "buffer.save")
	if err := r.Register(user); err != nil {
		t.Fatal(err)
	}

	// A later default-priority keymap must not shadow the user binding.
	late := NewKeymap("late").ForMode(mode.ModeNormal).Add("x", "editor.quit")
	if err := r.Register(late); err != nil {
		t.Fatal(err)
	}

	action, _ := r.Resolve(key.NewRuneEvent('x', key.ModNone), mode.ModeNormal)
	if action.Name != "buffer.save" {
		t.Errorf("expected user binding, got %q", action.Name)
	}

	// Equal priority: later wins.
	again := NewKeymap("again").ForMode(mode.ModeNormal).WithPriority(UserPriority).Add("Ctrl+Q", "editor.quit")
	again2 := NewKeymap("again2").ForMode(mode.ModeNormal).WithPriority(UserPriority).Add("<C-q>", "menu.open")
	if err := r.RegisterAll([]*Keymap{again, again2}); err != nil {
		t.Fatal(err)
	}
	action, _ = r.Resolve(key.NewRuneEvent('q', key.ModCtrl), mode.ModeNormal)
	if action.Name != "menu.open" {
		t.Errorf("expected later binding, got %q", action.Name)
	}
}

func TestRegisterInvalid(t *testing.T) {
	r := NewResolver()

	if err := r.Register(nil); !errors.Is(err, ErrInvalidBinding) {
		t.Errorf("Register(nil) error = %v", err)
	}
	bad := NewKeymap("bad").ForMode("normal").Add("<Nope>", "x")
	if err := r.Register(bad); !errors.Is(err, ErrInvalidBinding) {
		t.Errorf("Register(bad) error = %v", err)
	}
	if len(r.Modes()) != 0 {
		t.Error("invalid keymap should register nothing")
	}
}

func TestBindingArgsCarried(t *testing.T) {
	r := NewResolver()
	km := NewKeymap("args").ForMode("normal").
		AddBinding(NewBinding("g", "cursor.lastLine").WithArgs(map[string]any{"n": 1}).WithDescription("Last"))
	if err := r.Register(km); err != nil {
		t.Fatal(err)
	}

	action, err := r.Resolve(key.NewRuneEvent('g', key.ModNone), "normal")
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := action.Args.Get("n"); !ok || v != 1 {
		t.Errorf("expected arg n=1, got %v", action.Args.Extra)
	}
}

func TestFromConfig(t *testing.T) {
	table := map[string]map[string]string{
		"normal": {"<C-s>": "buffer.save", "Q": "editor.quit"},
		"insert": {"Ctrl+S": "buffer.save"},
	}

	keymaps := FromConfig("config", table)
	if len(keymaps) != 2 {
		t.Fatalf("expected 2 keymaps, got %d", len(keymaps))
	}
	if keymaps[0].Mode != "insert" || keymaps[1].Mode != "normal" {
		t.Errorf("keymaps not sorted by mode: %s, %s", keymaps[0].Mode, keymaps[1].Mode)
	}
	wantKeys := []string{"<C-s>", "Q"}
	var gotKeys []string
	for _, b := range keymaps[1].Bindings {
		gotKeys = append(gotKeys, b.Keys)
	}
	if !reflect.DeepEqual(gotKeys, wantKeys) {
		t.Errorf("keys = %v, want %v", gotKeys, wantKeys)
	}

	r := newDefaultResolver(t)
	if err := r.RegisterAll(keymaps); err != nil {
		t.Fatal(err)
	}
	action, err := r.Resolve(key.NewRuneEvent('s', key.ModCtrl), mode.ModeInsert)
	if err != nil || action.Name != "buffer.save" {
		t.Errorf("Resolve(<C-s>) = %q, %v", action.Name, err)
	}
}

func TestBindingsListing(t *testing.T) {
	r := newDefaultResolver(t)

	leader := r.Bindings(ModeLeader)
	if len(leader) != 5 {
		t.Fatalf("expected 5 leader bindings, got %d", len(leader))
	}
	for _, b := range leader {
		if b.Description == "" {
			t.Errorf("leader binding %q has no description", b.Keys)
		}
	}

	want := []string{mode.ModeCommand, mode.ModeInsert, ModeLeader, mode.ModeNormal, mode.ModeSelect}
	if got := r.Modes(); !reflect.DeepEqual(got, want) {
		t.Errorf("Modes() = %v, want %v", got, want)
	}
}
