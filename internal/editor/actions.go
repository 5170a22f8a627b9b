package editor

// Action names understood by the editor.
const (
	ActionModeInsert     = "mode.insert"
	ActionModeNormal     = "mode.normal"
	ActionModeSelect     = "mode.select"
	ActionModeCommand    = "mode.command"
	ActionModeAppend     = "mode.append"
	ActionModeAppendEOL  = "mode.appendEOL"
	ActionModeInsertHome = "mode.insertHome"

	ActionCursorUp       = "cursor.up"
	ActionCursorDown     = "cursor.down"
	ActionCursorLeft     = "cursor.left"
	ActionCursorRight    = "cursor.right"
	ActionCursorHome     = "cursor.home"
	ActionCursorEOL      = "cursor.eol"
	ActionCursorLastLine = "cursor.lastLine"
	ActionCursorNextLine = "cursor.nextLine"
	ActionCursorBack     = "cursor.back"

	ActionInsertChar     = "edit.insertChar"
	ActionDeleteForward  = "edit.deleteForward"
	ActionDeleteBackward = "edit.deleteBackward"
	ActionLineBreak      = "edit.lineBreak"
	ActionOpenBelow      = "edit.openBelow"
	ActionOpenAbove      = "edit.openAbove"
	ActionReplaceLine    = "edit.replaceLine"

	ActionSave    = "buffer.save"
	ActionTabNext = "tab.next"
	ActionTabPrev = "tab.prev"

	ActionMenuOpen  = "menu.open"
	ActionMenuClose = "menu.close"
	ActionQuit      = "editor.quit"

	ActionYank = "select.yank"
)
