package lua

import (
	lua "github.com/yuin/gopher-lua"
)

// APIName is the global table scripts use.
const APIName = "linewise"

// Version is exposed to scripts as linewise.version.
var Version = "dev"

func installAPI(L *lua.LState, host Host) {
	api := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"map":    apiMap(host),
		"log":    apiLog(host),
		"status": apiStatus(host),
	})
	api.RawSetString("version", lua.LString(Version))
	L.SetGlobal(APIName, api)
}

// apiMap implements linewise.map(mode, keys, action) and
// linewise.map(mode, {keys = action, ...}).
func apiMap(host Host) lua.LGFunction {
	return func(L *lua.LState) int {
		mode := L.CheckString(1)

		if tbl, ok := L.Get(2).(*lua.LTable); ok {
			var err error
			tbl.ForEach(func(k, v lua.LValue) {
				if err != nil {
					return
				}
				keys, kok := k.(lua.LString)
				action, vok := v.(lua.LString)
				if !kok || !vok {
					L.ArgError(2, "bindings must map strings to strings")
					return
				}
				err = host.Map(mode, string(keys), string(action))
			})
			if err != nil {
				L.RaiseError("linewise.map: %s", err.Error())
			}
			return 0
		}

		keys := L.CheckString(2)
		action := L.CheckString(3)
		if err := host.Map(mode, keys, action); err != nil {
			L.RaiseError("linewise.map: %s", err.Error())
		}
		return 0
	}
}

func apiLog(host Host) lua.LGFunction {
	return func(L *lua.LState) int {
		host.Log(joinArgs(L, 1))
		return 0
	}
}

func apiStatus(host Host) lua.LGFunction {
	return func(L *lua.LState) int {
		host.SetStatus(L.CheckString(1))
		return 0
	}
}
