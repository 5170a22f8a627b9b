package lua

import (
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// unsafeGlobals can load code from disk or from strings, bypassing the
// closed libraries.
var unsafeGlobals = []string{
	"dofile",
	"loadfile",
	"load",
	"loadstring",
	"require",
	"module",
}

// installSandbox removes the unsafe base functions and sends print output
// to the host log.
func installSandbox(L *lua.LState, host Host) {
	for _, name := range unsafeGlobals {
		L.SetGlobal(name, lua.LNil)
	}
	L.SetGlobal("print", L.NewFunction(func(L *lua.LState) int {
		host.Log(joinArgs(L, 1))
		return 0
	}))
}

// joinArgs converts the arguments from index first onwards with tostring
// semantics and joins them with spaces.
func joinArgs(L *lua.LState, first int) string {
	n := L.GetTop()
	parts := make([]string, 0, max(n-first+1, 0))
	for i := first; i <= n; i++ {
		parts = append(parts, L.ToStringMeta(L.Get(i)).String())
	}
	return strings.Join(parts, " ")
}
