// Package lua runs the user's init script.
//
// Scripts run in a gopher-lua state with only the base, table, string and
// math libraries opened. File loading functions are removed and print is
// routed to the editor log. A global "linewise" table is the whole of the
// editor API:
//
//	linewise.map("normal", "<C-s>", "buffer.save")
//	linewise.map("insert", { ["<C-c>"] = "mode.normal" })
//	linewise.log("loaded", 3, "bindings")
//	linewise.status("init.lua ready")
//	print(linewise.version)
//
// Every call into Lua is bounded by a timeout; a script that runs past it
// is cancelled through the state's context and reports
// ErrExecutionTimeout.
//
//	state, err := lua.NewState(host, lua.WithExecutionTimeout(time.Second))
//	if err != nil {
//	    return err
//	}
//	defer state.Close()
//	return state.DoFile(path)
package lua
