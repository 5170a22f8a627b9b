package editor

import (
	"fmt"
	"os"
	"strings"

	"github.com/dshills/linewise/internal/engine/buffer"
	"github.com/dshills/linewise/internal/input"
	"github.com/dshills/linewise/internal/input/key"
	"github.com/dshills/linewise/internal/input/keymap"
)

// Callback is a deferred change an overlay asks the editor to apply.
type Callback func(e *Editor) error

// Overlay intercepts all key input while it is on top of the stack.
type Overlay interface {
	// HandleKey consumes one key. It returns an optional callback and
	// whether the overlay is finished and should be removed. The overlay
	// is removed before the callback runs.
	HandleKey(ev key.Event) (Callback, bool)

	// View describes what to draw.
	View() OverlayView
}

// OverlayKind selects how an overlay is drawn.
type OverlayKind uint8

const (
	// OverlayMenu is a panel above the status bar.
	OverlayMenu OverlayKind = iota
	// OverlayPrompt is a floating window in the middle of the screen.
	OverlayPrompt
)

// MenuEntry is one line of a menu overlay.
type MenuEntry struct {
	Keys        string
	Description string
}

// OverlayView is the renderer's view of an overlay.
type OverlayView struct {
	Kind    OverlayKind
	Title   string
	Entries []MenuEntry
	Input   string
}

// LeaderMenu lists the leader bindings and runs the chosen one.
type LeaderMenu struct {
	resolver *keymap.Resolver
	entries  []MenuEntry
}

// NewLeaderMenu creates a leader menu over the resolver's leader bindings.
func NewLeaderMenu(r *keymap.Resolver) *LeaderMenu {
	m := &LeaderMenu{resolver: r}
	for _, b := range r.Bindings(keymap.ModeLeader) {
		desc := b.Description
		if desc == "" {
			desc = b.Action
		}
		m.entries = append(m.entries, MenuEntry{Keys: b.Keys, Description: desc})
	}
	return m
}

// HandleKey closes the menu and runs the bound action, if any.
func (m *LeaderMenu) HandleKey(ev key.Event) (Callback, bool) {
	b, ok := m.resolver.Lookup(ev, keymap.ModeLeader)
	if !ok {
		return nil, true
	}
	action := input.Action{
		Name:   b.Action,
		Args:   input.ActionArgs{Extra: b.Args},
		Source: input.SourceOverlay,
	}
	return func(e *Editor) error {
		return e.Execute(action)
	}, true
}

// View returns the menu entries.
func (m *LeaderMenu) View() OverlayView {
	return OverlayView{Kind: OverlayMenu, Title: "Leader", Entries: m.entries}
}

// NamePrompt asks for a file name for an unnamed buffer, then saves it.
type NamePrompt struct {
	handle buffer.Handle
	input  []rune
}

// NewNamePrompt creates a prompt that names the buffer behind h.
func NewNamePrompt(h buffer.Handle) *NamePrompt {
	return &NamePrompt{handle: h}
}

// Input returns the text typed so far.
func (p *NamePrompt) Input() string { return string(p.input) }

// HandleKey edits the input. Enter saves the buffer under the typed path
// and names it after the file; the prompt stays open when the save fails.
// Esc cancels without touching the buffer.
func (p *NamePrompt) HandleKey(ev key.Event) (Callback, bool) {
	switch {
	case ev.Key == key.KeyEscape:
		return nil, true

	case ev.Key == key.KeyEnter:
		path := strings.TrimSpace(string(p.input))
		if path == "" {
			return nil, false
		}
		return func(e *Editor) error { return p.commit(e, path) }, false

	case ev.Key == key.KeyBackspace:
		if len(p.input) > 0 {
			p.input = p.input[:len(p.input)-1]
		}

	case ev.IsChar():
		p.input = append(p.input, ev.Rune)
	}
	return nil, false
}

func (p *NamePrompt) commit(e *Editor, path string) error {
	b, err := e.store.Get(p.handle)
	if err != nil {
		return e.report(err)
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return e.report(fmt.Errorf("%w: %s", ErrIsDirectory, path))
	}
	if err := b.SaveAs(path); err != nil {
		return e.report(err)
	}
	if e.Overlay() == p {
		e.PopOverlay()
	}
	name, _ := b.Name()
	e.status = savedMessage(name, b.LinesCount())
	return nil
}

// View returns the prompt text.
func (p *NamePrompt) View() OverlayView {
	return OverlayView{Kind: OverlayPrompt, Title: "Name this buffer", Input: string(p.input)}
}
