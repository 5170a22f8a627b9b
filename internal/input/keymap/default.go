package keymap

import "github.com/dshills/linewise/internal/input/mode"

// ModeLeader is the pseudo-mode holding leader menu bindings.
const ModeLeader = "leader"

// LoadDefaults registers all default keymaps with the resolver.
func LoadDefaults(r *Resolver) error {
	keymaps := []*Keymap{
		DefaultNormalKeymap(),
		DefaultInsertKeymap(),
		DefaultSelectKeymap(),
		DefaultCommandKeymap(),
		DefaultLeaderKeymap(),
	}

	for _, km := range keymaps {
		if err := r.Register(km); err != nil {
			return err
		}
	}
	return nil
}

// motionBindings are shared by Normal and Select mode.
func motionBindings() []Binding {
	return []Binding{
		{Keys: "h", Action: "cursor.left", Description: "Move left", Category: "Movement"},
		{Keys: "j", Action: "cursor.down", Description: "Move down", Category: "Movement"},
		{Keys: "k", Action: "cursor.up", Description: "Move up", Category: "Movement"},
		{Keys: "l", Action: "cursor.right", Description: "Move right", Category: "Movement"},
		{Keys: "<Left>", Action: "cursor.left", Description: "Move left", Category: "Movement"},
		{Keys: "<Down>", Action: "cursor.down", Description: "Move down", Category: "Movement"},
		{Keys: "<Up>", Action: "cursor.up", Description: "Move up", Category: "Movement"},
		{Keys: "<Right>", Action: "cursor.right", Description: "Move right", Category: "Movement"},
		{Keys: "0", Action: "cursor.home", Description: "Move to line start", Category: "Movement"},
		{Keys: "<Home>", Action: "cursor.home", Description: "Move to line start", Category: "Movement"},
		{Keys: "$", Action: "cursor.eol", Description: "Move to line end", Category: "Movement"},
		{Keys: "<End>", Action: "cursor.eol", Description: "Move to line end", Category: "Movement"},
		{Keys: "G", Action: "cursor.lastLine", Description: "Go to last line", Category: "Movement"},
	}
}

// DefaultNormalKeymap returns default normal mode bindings.
func DefaultNormalKeymap() *Keymap {
	km := &Keymap{
		Name:   "default-normal",
		Mode:   mode.ModeNormal,
		Source: "default",
		Bindings: []Binding{
			{Keys: "<Enter>", Action: "cursor.nextLine", Description: "Start of next line", Category: "Movement"},
			{Keys: "<BS>", Action: "cursor.back", Description: "Move back", Category: "Movement"},

			{Keys: "i", Action: "mode.insert", Description: "Insert before cursor", Category: "Mode"},
			{Keys: "a", Action: "mode.append", Description: "Append after cursor", Category: "Mode"},
			{Keys: "A", Action: "mode.appendEOL", Description: "Append at line end", Category: "Mode"},
			{Keys: "I", Action: "mode.insertHome", Description: "Insert at line start", Category: "Mode"},
			{Keys: "v", Action: "mode.select", Description: "Start selection", Category: "Mode"},
			{Keys: ":", Action: "mode.command", Description: "Command line", Category: "Mode"},

			{Keys: "o", Action: "edit.openBelow", Description: "Open line below", Category: "Edit"},
			{Keys: "O", Action: "edit.openAbove", Description: "Open line above", Category: "Edit"},
			{Keys: "S", Action: "edit.replaceLine", Description: "Replace line", Category: "Edit"},
			{Keys: "x", Action: "edit.deleteForward", Description: "Delete character", Category: "Edit"},
			{Keys: "<Del>", Action: "edit.deleteForward", Description: "Delete character", Category: "Edit"},
			{Keys: "X", Action: "edit.deleteBackward", Description: "Delete previous character", Category: "Edit"},

			{Keys: "<Space>", Action: "menu.open", Description: "Leader menu", Category: "Editor"},
			{Keys: "<Tab>", Action: "tab.next", Description: "Next tab", Category: "Editor"},
			{Keys: "<S-Tab>", Action: "tab.prev", Description: "Previous tab", Category: "Editor"},
		},
	}
	km.Bindings = append(km.Bindings, motionBindings()...)
	return km
}

// DefaultInsertKeymap returns default insert mode bindings.
// Printable keys need no binding; the resolver turns them into
// edit.insertChar.
func DefaultInsertKeymap() *Keymap {
	return &Keymap{
		Name:   "default-insert",
		Mode:   mode.ModeInsert,
		Source: "default",
		Bindings: []Binding{
			{Keys: "<Esc>", Action: "mode.normal", Description: "Normal mode", Category: "Mode"},
			{Keys: "<Enter>", Action: "edit.lineBreak", Description: "Break line", Category: "Edit"},
			{Keys: "<BS>", Action: "edit.deleteBackward", Description: "Delete previous character", Category: "Edit"},
			{Keys: "<Del>", Action: "edit.deleteForward", Description: "Delete character", Category: "Edit"},
			{Keys: "<Left>", Action: "cursor.left", Description: "Move left", Category: "Movement"},
			{Keys: "<Down>", Action: "cursor.down", Description: "Move down", Category: "Movement"},
			{Keys: "<Up>", Action: "cursor.up", Description: "Move up", Category: "Movement"},
			{Keys: "<Right>", Action: "cursor.right", Description: "Move right", Category: "Movement"},
			{Keys: "<Home>", Action: "cursor.home", Description: "Move to line start", Category: "Movement"},
			{Keys: "<End>", Action: "cursor.eol", Description: "Move past line end", Category: "Movement"},
		},
	}
}

// DefaultSelectKeymap returns default select mode bindings.
func DefaultSelectKeymap() *Keymap {
	km := &Keymap{
		Name:   "default-select",
		Mode:   mode.ModeSelect,
		Source: "default",
		Bindings: []Binding{
			{Keys: "<Esc>", Action: "mode.normal", Description: "Normal mode", Category: "Mode"},
			{Keys: "y", Action: "select.yank", Description: "Copy selection", Category: "Edit"},
		},
	}
	km.Bindings = append(km.Bindings, motionBindings()...)
	return km
}

// DefaultCommandKeymap returns default command mode bindings.
func DefaultCommandKeymap() *Keymap {
	return &Keymap{
		Name:   "default-command",
		Mode:   mode.ModeCommand,
		Source: "default",
		Bindings: []Binding{
			{Keys: "<Esc>", Action: "mode.normal", Description: "Normal mode", Category: "Mode"},
		},
	}
}

// DefaultLeaderKeymap returns the leader menu entries.
func DefaultLeaderKeymap() *Keymap {
	return &Keymap{
		Name:   "default-leader",
		Mode:   ModeLeader,
		Source: "default",
		Bindings: []Binding{
			{Keys: "w", Action: "buffer.save", Description: "Save", Category: "File"},
			{Keys: "q", Action: "editor.quit", Description: "Quit", Category: "Editor"},
			{Keys: "n", Action: "tab.next", Description: "Next tab", Category: "Editor"},
			{Keys: "p", Action: "tab.prev", Description: "Previous tab", Category: "Editor"},
			{Keys: "<Esc>", Action: "menu.close", Description: "Close", Category: "Editor"},
		},
	}
}
