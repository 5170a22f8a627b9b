package dispatcher

import (
	"sort"

	"github.com/dshills/linewise/internal/input"
)

// Handler executes one action.
type Handler interface {
	Handle(action input.Action) Result
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(action input.Action) Result

// Handle implements Handler.
func (f HandlerFunc) Handle(action input.Action) Result {
	return f(action)
}

// Registry maps exact action names to handlers.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry creates a new handler registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
	}
}

// Register sets the handler for an action name, replacing any previous one.
func (r *Registry) Register(actionName string, h Handler) {
	r.handlers[actionName] = h
}

// Unregister removes the handler for an action name.
func (r *Registry) Unregister(actionName string) {
	delete(r.handlers, actionName)
}

// Get returns the handler for an action, or nil.
func (r *Registry) Get(actionName string) Handler {
	return r.handlers[actionName]
}

// Has returns true if a handler is registered for the action.
func (r *Registry) Has(actionName string) bool {
	_, ok := r.handlers[actionName]
	return ok
}

// List returns all registered action names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered actions.
func (r *Registry) Count() int {
	return len(r.handlers)
}
