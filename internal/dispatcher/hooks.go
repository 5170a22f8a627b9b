package dispatcher

import (
	"github.com/dshills/linewise/internal/input"
)

// PreDispatchHook is called before an action is dispatched.
// Returning false cancels the dispatch.
type PreDispatchHook interface {
	PreDispatch(action *input.Action) bool
}

// PostDispatchHook is called after an action is dispatched.
type PostDispatchHook interface {
	PostDispatch(action *input.Action, result *Result)
}

// PreDispatchFunc is a function adapter for PreDispatchHook.
type PreDispatchFunc func(action *input.Action) bool

// PreDispatch implements PreDispatchHook.
func (f PreDispatchFunc) PreDispatch(action *input.Action) bool {
	return f(action)
}

// PostDispatchFunc is a function adapter for PostDispatchHook.
type PostDispatchFunc func(action *input.Action, result *Result)

// PostDispatch implements PostDispatchHook.
func (f PostDispatchFunc) PostDispatch(action *input.Action, result *Result) {
	f(action, result)
}

// LoggingHook reports every dispatch through LogFunc.
type LoggingHook struct {
	LogFunc func(format string, args ...any)
}

// NewLoggingHook creates a new logging hook.
func NewLoggingHook(logFunc func(format string, args ...any)) *LoggingHook {
	return &LoggingHook{LogFunc: logFunc}
}

// PreDispatch logs the action being dispatched.
func (h *LoggingHook) PreDispatch(action *input.Action) bool {
	if h.LogFunc != nil {
		h.LogFunc("dispatching action: %s (source=%s)", action.Name, action.Source)
	}
	return true
}

// PostDispatch logs the dispatch result.
func (h *LoggingHook) PostDispatch(action *input.Action, result *Result) {
	if h.LogFunc == nil {
		return
	}
	if result.Err != nil {
		h.LogFunc("dispatch complete: %s -> %s: %v", action.Name, result.Status, result.Err)
		return
	}
	h.LogFunc("dispatch complete: %s -> %s", action.Name, result.Status)
}
