package editor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/dshills/linewise/internal/dispatcher"
	"github.com/dshills/linewise/internal/engine/buffer"
	"github.com/dshills/linewise/internal/input"
	"github.com/dshills/linewise/internal/input/key"
	"github.com/dshills/linewise/internal/input/mode"
)

func writeFile(t *testing.T, lines []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.txt")
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func loadBuffer(t *testing.T, lines ...string) *buffer.Buffer {
	t.Helper()
	path := writeFile(t, lines)
	b, err := buffer.Load("test.txt", path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return b
}

func newEditor(t *testing.T, buffers ...*buffer.Buffer) (*Editor, *MemoryClipboard) {
	t.Helper()
	clip := &MemoryClipboard{}
	e, err := New(buffers, Config{Clipboard: clip})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	for _, tab := range e.Tabs() {
		tab.View.Resize(20, 80)
	}
	return e, clip
}

func press(t *testing.T, e *Editor, specs ...string) {
	t.Helper()
	for _, spec := range specs {
		if err := e.HandleKey(key.MustParse(spec)); err != nil {
			t.Fatalf("HandleKey(%q) error = %v", spec, err)
		}
	}
}

func typeText(t *testing.T, e *Editor, text string) {
	t.Helper()
	for _, r := range text {
		if err := e.HandleKey(key.NewRuneEvent(r, 0)); err != nil {
			t.Fatalf("HandleKey(%q) error = %v", r, err)
		}
	}
}

func lines(t *testing.T, e *Editor) []string {
	t.Helper()
	b, err := e.CurrentBuffer()
	if err != nil {
		t.Fatalf("CurrentBuffer() error = %v", err)
	}
	return b.Lines()
}

func assertLines(t *testing.T, e *Editor, want ...string) {
	t.Helper()
	got := lines(t, e)
	if len(got) == 0 && len(want) == 0 {
		return
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("lines = %q, want %q", got, want)
	}
}

func assertCursor(t *testing.T, e *Editor, line, col int) {
	t.Helper()
	want := buffer.Position{Line: line, Column: col}
	if got := e.View().Cursor(); got != want {
		t.Errorf("cursor = %v, want %v", got, want)
	}
}

func assertMode(t *testing.T, e *Editor, name string) {
	t.Helper()
	if got := e.Modes().CurrentName(); got != name {
		t.Errorf("mode = %s, want %s", got, name)
	}
}

func TestNewEditorUntitled(t *testing.T) {
	e, _ := newEditor(t)

	assertCursor(t, e, 0, 0)
	assertMode(t, e, mode.ModeNormal)

	b, err := e.CurrentBuffer()
	if err != nil {
		t.Fatalf("CurrentBuffer() error = %v", err)
	}
	if _, ok := b.Name(); ok {
		t.Error("untitled buffer should have no name")
	}
	if _, ok := b.Path(); ok {
		t.Error("untitled buffer should have no path")
	}
	if got := e.TabTitle(e.CurrentTab()); got != "Untitled" {
		t.Errorf("TabTitle() = %q, want Untitled", got)
	}
}

func TestTypeThenExitInsert(t *testing.T) {
	e, _ := newEditor(t)

	press(t, e, "i")
	typeText(t, e, "abcd123!")
	assertCursor(t, e, 0, 8)
	assertMode(t, e, mode.ModeInsert)

	press(t, e, "<Esc>")
	assertCursor(t, e, 0, 7)
	assertMode(t, e, mode.ModeNormal)
	assertLines(t, e, "abcd123!")
}

func TestInsertForwardDeleteAtEOLJoinsLines(t *testing.T) {
	e, _ := newEditor(t, loadBuffer(t, "abcdefgh", "ijklmnop", "", "", "qrstu"))

	press(t, e, "j", "A")
	assertCursor(t, e, 1, 8)
	assertMode(t, e, mode.ModeInsert)

	press(t, e, "<Del>")
	assertLines(t, e, "abcdefgh", "ijklmnop", "", "qrstu")
	assertCursor(t, e, 1, 8)
}

func TestInsertForwardDeleteOnLastLineIsNoOp(t *testing.T) {
	e, _ := newEditor(t, loadBuffer(t, "ab"))

	press(t, e, "A", "<Del>")
	assertLines(t, e, "ab")
	assertCursor(t, e, 0, 2)
}

func TestNormalForwardDeleteAtEOL(t *testing.T) {
	e, _ := newEditor(t, loadBuffer(t, "abcdefgh", "ijklmnop", "qrstu"))

	press(t, e, "j", "j", "$")
	assertCursor(t, e, 2, 4)

	press(t, e, "x")
	assertLines(t, e, "abcdefgh", "ijklmnop", "qrst")
	assertCursor(t, e, 2, 3)

	press(t, e, "x", "x", "x", "x")
	assertLines(t, e, "abcdefgh", "ijklmnop", "")
	assertCursor(t, e, 2, 0)

	press(t, e, "x")
	assertLines(t, e, "abcdefgh", "ijklmnop", "")
	assertCursor(t, e, 2, 0)
}

func TestNormalBackwardDelete(t *testing.T) {
	e, _ := newEditor(t, loadBuffer(t, "abcd"))

	press(t, e, "X")
	assertLines(t, e, "abcd")

	press(t, e, "l", "l", "X")
	assertLines(t, e, "acd")
	assertCursor(t, e, 0, 1)
}

func TestInsertBackspace(t *testing.T) {
	e, _ := newEditor(t, loadBuffer(t, "abcdefgh", "ijkl", "qrstu"))

	press(t, e, "j", "j", "i", "<BS>")
	assertLines(t, e, "abcdefgh", "ijklqrstu")
	assertCursor(t, e, 1, 4)

	press(t, e, "<BS>")
	assertLines(t, e, "abcdefgh", "ijkqrstu")
	assertCursor(t, e, 1, 3)

	press(t, e, "<Esc>", "k", "0", "i", "<BS>")
	assertLines(t, e, "abcdefgh", "ijkqrstu")
	assertCursor(t, e, 0, 0)
}

func TestOpenLine(t *testing.T) {
	e, _ := newEditor(t, loadBuffer(t, "one", "two"))

	press(t, e, "o")
	assertLines(t, e, "one", "", "two")
	assertCursor(t, e, 1, 0)
	assertMode(t, e, mode.ModeInsert)

	press(t, e, "<Esc>", "O")
	assertLines(t, e, "one", "", "", "two")
	assertCursor(t, e, 1, 0)
	assertMode(t, e, mode.ModeInsert)
}

func TestOpenLineOnEmptyBuffer(t *testing.T) {
	tests := []struct {
		key  string
		line int
	}{
		{"o", 1},
		{"O", 0},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			e, _ := newEditor(t)
			press(t, e, tt.key)
			assertLines(t, e, "", "")
			assertCursor(t, e, tt.line, 0)
			assertMode(t, e, mode.ModeInsert)
		})
	}
}

func TestLineBreak(t *testing.T) {
	e, _ := newEditor(t, loadBuffer(t, "abcdef"))

	press(t, e, "l", "l", "i", "<Enter>")
	assertLines(t, e, "ab", "cdef")
	assertCursor(t, e, 1, 0)

	typeText(t, e, "xy")
	assertLines(t, e, "ab", "xycdef")
}

func TestReplaceLine(t *testing.T) {
	e, _ := newEditor(t, loadBuffer(t, "abc", "def"))

	press(t, e, "j", "$", "S")
	assertLines(t, e, "abc", "")
	assertCursor(t, e, 1, 0)
	assertMode(t, e, mode.ModeInsert)
}

func TestAppendVariants(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		col  int
	}{
		{"append", []string{"a"}, 1},
		{"append at EOL", []string{"A"}, 3},
		{"insert at home", []string{"$", "I"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newEditor(t, loadBuffer(t, "abc"))
			press(t, e, tt.keys...)
			assertCursor(t, e, 0, tt.col)
			assertMode(t, e, mode.ModeInsert)
		})
	}
}

func TestEOLInInsertGoesPastEnd(t *testing.T) {
	e, _ := newEditor(t, loadBuffer(t, "abc"))

	press(t, e, "i", "<End>")
	assertCursor(t, e, 0, 3)

	press(t, e, "<Home>")
	assertCursor(t, e, 0, 0)
}

func TestStickyEOLAcrossLines(t *testing.T) {
	e, _ := newEditor(t, loadBuffer(t, "abcdef", "ab", "abcdef"))

	press(t, e, "$", "j")
	assertCursor(t, e, 1, 1)
	press(t, e, "j")
	assertCursor(t, e, 2, 5)
}

func TestNextLineAndBack(t *testing.T) {
	e, _ := newEditor(t, loadBuffer(t, "abc", "de"))

	press(t, e, "l", "<Enter>")
	assertCursor(t, e, 1, 0)

	press(t, e, "<Enter>")
	assertCursor(t, e, 1, 0)

	press(t, e, "<BS>")
	assertCursor(t, e, 0, 2)

	press(t, e, "<BS>")
	assertCursor(t, e, 0, 1)
}

func TestJumpToLastLine(t *testing.T) {
	var content []string
	for i := 0; i < 50; i++ {
		content = append(content, fmt.Sprintf("line %d", i))
	}
	e, _ := newEditor(t, loadBuffer(t, content...))

	press(t, e, "G")
	assertCursor(t, e, 49, 0)
	if e.View().TopLine() != 30 {
		t.Errorf("TopLine() = %d, want 30", e.View().TopLine())
	}
}

func TestSaveNamedBuffer(t *testing.T) {
	b := loadBuffer(t, "abc")
	path, _ := b.Path()
	e, _ := newEditor(t, b)

	press(t, e, "i")
	typeText(t, e, "X")
	press(t, e, "<Esc>", "<Space>", "w")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "Xabc\n" {
		t.Errorf("saved %q, want %q", data, "Xabc\n")
	}
	if !strings.Contains(e.Status(), "written") {
		t.Errorf("Status() = %q, want a written message", e.Status())
	}
	if e.Overlay() != nil {
		t.Error("leader menu should close after saving")
	}
}

func TestSaveUnnamedPromptsForName(t *testing.T) {
	e, _ := newEditor(t)
	path := filepath.Join(t.TempDir(), "out.txt")

	press(t, e, "i")
	typeText(t, e, "hi")
	press(t, e, "<Esc>", "<Space>", "w")

	prompt, ok := e.Overlay().(*NamePrompt)
	if !ok {
		t.Fatalf("Overlay() = %T, want *NamePrompt", e.Overlay())
	}

	typeText(t, e, path+"x")
	press(t, e, "<BS>")
	if prompt.Input() != path {
		t.Errorf("Input() = %q, want %q", prompt.Input(), path)
	}

	press(t, e, "<Enter>")
	if e.Overlay() != nil {
		t.Fatal("prompt should close on Enter")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "hi\n" {
		t.Errorf("saved %q, want %q", data, "hi\n")
	}
	if got := e.TabTitle(e.CurrentTab()); got != "out.txt" {
		t.Errorf("TabTitle() = %q, want out.txt", got)
	}
}

func TestNamePromptCancel(t *testing.T) {
	e, _ := newEditor(t)

	press(t, e, "<Space>", "w")
	typeText(t, e, "name.txt")
	press(t, e, "<Esc>")

	if e.Overlay() != nil {
		t.Fatal("prompt should close on Esc")
	}
	b, _ := e.CurrentBuffer()
	if _, ok := b.Name(); ok {
		t.Error("cancelled prompt should leave the buffer unnamed")
	}
	assertMode(t, e, mode.ModeNormal)
}

func TestNamePromptIgnoresEmptyInput(t *testing.T) {
	e, _ := newEditor(t)

	press(t, e, "<Space>", "w", "<Enter>")
	if _, ok := e.Overlay().(*NamePrompt); !ok {
		t.Error("empty input should keep the prompt open")
	}
}

func TestNamePromptRejectsDirectory(t *testing.T) {
	e, _ := newEditor(t)
	dir := t.TempDir()

	press(t, e, "i")
	typeText(t, e, "hi")
	press(t, e, "<Esc>", "<Space>", "w")
	typeText(t, e, dir)

	err := e.HandleKey(key.MustParse("<Enter>"))
	if !errors.Is(err, ErrIsDirectory) {
		t.Fatalf("HandleKey(<Enter>) error = %v, want ErrIsDirectory", err)
	}
	if _, ok := e.Overlay().(*NamePrompt); !ok {
		t.Fatalf("Overlay() = %T, want the prompt to stay open", e.Overlay())
	}
	b, _ := e.CurrentBuffer()
	if _, ok := b.Name(); ok {
		t.Error("rejected path should leave the buffer unnamed")
	}
	if _, ok := b.Path(); ok {
		t.Error("rejected path should leave the buffer without a path")
	}

	// Saving again after cancelling asks for a name again.
	press(t, e, "<Esc>", "<Space>", "w")
	if _, ok := e.Overlay().(*NamePrompt); !ok {
		t.Fatalf("Overlay() = %T, want *NamePrompt", e.Overlay())
	}

	path := filepath.Join(dir, "out.txt")
	typeText(t, e, path)
	press(t, e, "<Enter>")
	if e.Overlay() != nil {
		t.Fatal("prompt should close after a successful save")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "hi\n" {
		t.Errorf("saved %q, want %q", data, "hi\n")
	}
}

func TestNamePromptStaysOpenOnSaveFailure(t *testing.T) {
	e, _ := newEditor(t)
	path := filepath.Join(t.TempDir(), "missing", "x.txt")

	press(t, e, "<Space>", "w")
	typeText(t, e, path)

	var fileErr *buffer.FileError
	if err := e.HandleKey(key.MustParse("<Enter>")); !errors.As(err, &fileErr) {
		t.Fatalf("HandleKey(<Enter>) error = %v, want *FileError", err)
	}
	prompt, ok := e.Overlay().(*NamePrompt)
	if !ok {
		t.Fatalf("Overlay() = %T, want *NamePrompt", e.Overlay())
	}
	if prompt.Input() != path {
		t.Errorf("Input() = %q, want %q", prompt.Input(), path)
	}
	b, _ := e.CurrentBuffer()
	if _, ok := b.Name(); ok {
		t.Error("failed save should leave the buffer unnamed")
	}
	if e.Status() == "" {
		t.Error("save failure should set the status message")
	}
}

func TestSaveFailureIsReported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "x.txt")
	e, _ := newEditor(t, buffer.Empty("x.txt", path))

	err := e.HandleKey(key.MustParse("<Space>"))
	if err != nil {
		t.Fatalf("HandleKey(<Space>) error = %v", err)
	}
	err = e.HandleKey(key.MustParse("w"))

	var fileErr *buffer.FileError
	if !errors.As(err, &fileErr) || fileErr.Op != "save" {
		t.Fatalf("save error = %v, want *FileError{Op: save}", err)
	}
	if e.Status() == "" {
		t.Error("save failure should set the status message")
	}
}

func TestTabCycling(t *testing.T) {
	e, _ := newEditor(t, loadBuffer(t, "a"), loadBuffer(t, "b"), loadBuffer(t, "c"))

	steps := []struct {
		keys []string
		want int
	}{
		{[]string{"<Tab>"}, 1},
		{[]string{"<S-Tab>"}, 0},
		{[]string{"<S-Tab>"}, 2},
		{[]string{"<Tab>"}, 0},
		{[]string{"<Space>", "p"}, 2},
		{[]string{"<Space>", "n"}, 0},
	}

	for _, step := range steps {
		press(t, e, step.keys...)
		if got := e.CurrentTabIndex(); got != step.want {
			t.Errorf("after %v: CurrentTabIndex() = %d, want %d", step.keys, got, step.want)
		}
	}
}

func TestTabsKeepIndependentCursors(t *testing.T) {
	e, _ := newEditor(t, loadBuffer(t, "abc"), loadBuffer(t, "xyz"))

	press(t, e, "l", "l", "<Tab>")
	assertCursor(t, e, 0, 0)
	press(t, e, "<Tab>")
	assertCursor(t, e, 0, 2)
}

func TestCommandModeNotImplemented(t *testing.T) {
	e, _ := newEditor(t)

	press(t, e, ":")
	assertMode(t, e, mode.ModeCommand)

	err := e.HandleKey(key.MustParse("w"))
	if !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("HandleKey(w) error = %v, want ErrNotImplemented", err)
	}

	press(t, e, "<Esc>")
	assertMode(t, e, mode.ModeNormal)
}

func TestUnboundKeyIsIgnored(t *testing.T) {
	e, _ := newEditor(t, loadBuffer(t, "abc"))

	press(t, e, "z", "<C-q>")
	assertLines(t, e, "abc")
	assertCursor(t, e, 0, 0)
}

func TestSelectTracksCursorAndYanks(t *testing.T) {
	e, clip := newEditor(t, loadBuffer(t, "abcdef", "ghij"))

	press(t, e, "l", "v", "l", "l")
	sel, ok := e.Selection()
	if !ok {
		t.Fatal("Selection() inactive in select mode")
	}
	if sel.Fixed != (buffer.Position{Line: 0, Column: 1}) || sel.Moving != (buffer.Position{Line: 0, Column: 3}) {
		t.Errorf("selection = %v", sel)
	}

	press(t, e, "j")
	sel, _ = e.Selection()
	if sel.Moving != (buffer.Position{Line: 1, Column: 3}) {
		t.Errorf("moving end = %v, want (1:3)", sel.Moving)
	}

	press(t, e, "y")
	if got, _ := clip.ReadAll(); got != "bcdef\nghij" {
		t.Errorf("clipboard = %q, want %q", got, "bcdef\nghij")
	}
	assertMode(t, e, mode.ModeNormal)
	if _, ok := e.Selection(); ok {
		t.Error("selection should end after yank")
	}
	if e.Status() != "10 characters yanked" {
		t.Errorf("Status() = %q", e.Status())
	}
}

func TestSelectEscape(t *testing.T) {
	e, _ := newEditor(t, loadBuffer(t, "abc"))

	press(t, e, "v", "$", "<Esc>")
	assertMode(t, e, mode.ModeNormal)
	assertCursor(t, e, 0, 2)
}

func TestLeaderMenu(t *testing.T) {
	e, _ := newEditor(t)

	press(t, e, "<Space>")
	menu, ok := e.Overlay().(*LeaderMenu)
	if !ok {
		t.Fatalf("Overlay() = %T, want *LeaderMenu", e.Overlay())
	}
	view := menu.View()
	if view.Kind != OverlayMenu {
		t.Errorf("Kind = %v, want OverlayMenu", view.Kind)
	}
	found := false
	for _, entry := range view.Entries {
		if entry.Keys == "w" && entry.Description == "Save" {
			found = true
		}
	}
	if !found {
		t.Errorf("entries %v missing save", view.Entries)
	}

	press(t, e, "<Esc>")
	if e.Overlay() != nil {
		t.Error("Esc should close the menu")
	}

	press(t, e, "<Space>", "z")
	if e.Overlay() != nil {
		t.Error("an unbound key should close the menu")
	}

	press(t, e, "<Space>", "q")
	if e.IsActive() {
		t.Error("q should quit")
	}
}

func TestOverlayInterceptsInput(t *testing.T) {
	e, _ := newEditor(t, loadBuffer(t, "abc"))

	press(t, e, "<Space>", "l")
	assertCursor(t, e, 0, 0)
	if e.Overlay() != nil {
		t.Error("menu should close on an unbound key")
	}
}

func TestInsertCharTextArgument(t *testing.T) {
	e, _ := newEditor(t)

	if err := e.Execute(input.Action{Name: ActionModeInsert}); err != nil {
		t.Fatalf("Execute(mode.insert) error = %v", err)
	}
	if err := e.Execute(input.Action{Name: ActionInsertChar}.WithText("héllo")); err != nil {
		t.Fatalf("Execute(insertChar) error = %v", err)
	}
	assertLines(t, e, "héllo")
	assertCursor(t, e, 0, 5)
}

func TestExecuteUnknownAction(t *testing.T) {
	e, _ := newEditor(t)

	if err := e.Execute(input.Action{Name: "no.such"}); err == nil {
		t.Error("expected error for unknown action")
	}
	if e.Status() == "" {
		t.Error("error should be reported in the status bar")
	}
}

func TestLoggingAndMetrics(t *testing.T) {
	var logs []string
	e, err := New(nil, Config{
		Clipboard:     &MemoryClipboard{},
		EnableMetrics: true,
		LogFunc: func(format string, args ...any) {
			logs = append(logs, fmt.Sprintf(format, args...))
		},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	press(t, e, "i", "<Esc>")

	if got := e.Dispatcher().Metrics().TotalDispatches(); got != 2 {
		t.Errorf("TotalDispatches() = %d, want 2", got)
	}
	joined := strings.Join(logs, "\n")
	if !strings.Contains(joined, "mode normal -> insert") {
		t.Errorf("logs missing mode change:\n%s", joined)
	}
	if !strings.Contains(joined, "dispatching action: mode.insert") {
		t.Errorf("logs missing dispatch:\n%s", joined)
	}
}

func TestEditActionsOnEmptyBuffers(t *testing.T) {
	actions := []input.Action{
		{Name: ActionCursorUp},
		{Name: ActionCursorDown},
		{Name: ActionCursorLeft},
		{Name: ActionCursorRight},
		{Name: ActionCursorHome},
		{Name: ActionCursorEOL},
		{Name: ActionCursorLastLine},
		{Name: ActionCursorNextLine},
		{Name: ActionCursorBack},
		{Name: ActionModeAppend},
		{Name: ActionModeAppendEOL},
		{Name: ActionModeInsertHome},
		input.Action{Name: ActionInsertChar}.WithText("x"),
		{Name: ActionDeleteForward},
		{Name: ActionDeleteBackward},
		{Name: ActionLineBreak},
		{Name: ActionOpenBelow},
		{Name: ActionOpenAbove},
		{Name: ActionReplaceLine},
	}
	buffers := map[string]func() *buffer.Buffer{
		"no lines": buffer.Untitled,
		"one empty line": func() *buffer.Buffer {
			b := buffer.Untitled()
			b.AddLine(0, "")
			return b
		},
	}
	modes := []string{ActionModeNormal, ActionModeInsert, ActionModeSelect}

	for bufName, newBuffer := range buffers {
		for _, m := range modes {
			for _, action := range actions {
				t.Run(bufName+"/"+m+"/"+action.Name, func(t *testing.T) {
					e, _ := newEditor(t, newBuffer())
					if err := e.Execute(input.Action{Name: m}); err != nil {
						t.Fatalf("Execute(%s) error = %v", m, err)
					}

					err := e.Execute(action)
					if errors.Is(err, dispatcher.ErrPanic) {
						t.Fatalf("Execute(%s) panicked: %v", action.Name, err)
					}

					n := e.View().LinesCount()
					cur := e.View().Cursor()
					if cur.Line < 0 || cur.Column < 0 || (n > 0 && cur.Line >= n) {
						t.Errorf("cursor = %v outside %d line(s)", cur, n)
					}
				})
			}
		}
	}
}
