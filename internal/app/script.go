package app

import (
	"github.com/dshills/linewise/internal/editor"
	"github.com/dshills/linewise/internal/plugin/lua"
)

// scriptHost exposes the editor to the init script.
type scriptHost struct {
	editor *editor.Editor
	log    *Logger
}

func (h scriptHost) Map(mode, keys, action string) error {
	return h.editor.Bind(mode, keys, action)
}

func (h scriptHost) Log(msg string) {
	h.log.Info("%s", msg)
}

func (h scriptHost) SetStatus(msg string) {
	h.editor.SetStatus(msg)
}

// runInitScript runs path in a new Lua state. The state is kept open
// until shutdown.
func (a *Application) runInitScript(path string) error {
	state, err := lua.NewState(scriptHost{editor: a.editor, log: a.logger.WithComponent("script")})
	if err != nil {
		return err
	}
	a.script = state
	if err := state.DoFile(path); err != nil {
		return &OperationError{Op: "run", Target: path, Err: err}
	}
	return nil
}
