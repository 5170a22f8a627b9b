// Package dispatcher routes actions to handlers and coordinates execution.
package dispatcher

import (
	"fmt"
	"runtime"
	"time"

	"github.com/dshills/linewise/internal/input"
)

// Dispatcher routes actions to handlers by name.
type Dispatcher struct {
	registry *Registry
	config   Config
	metrics  *Metrics

	preHooks  []PreDispatchHook
	postHooks []PostDispatchHook
}

// New creates a new dispatcher with the given configuration.
func New(config Config) *Dispatcher {
	d := &Dispatcher{
		registry: NewRegistry(),
		config:   config,
	}
	if config.EnableMetrics {
		d.metrics = NewMetrics()
	}
	return d
}

// NewWithDefaults creates a new dispatcher with default configuration.
func NewWithDefaults() *Dispatcher {
	return New(DefaultConfig())
}

// Dispatch executes an action synchronously.
func (d *Dispatcher) Dispatch(action input.Action) Result {
	startTime := time.Now()

	if action.Name == "" {
		return Failed(ErrInvalidAction)
	}

	for _, h := range d.preHooks {
		if !h.PreDispatch(&action) {
			return Cancelled()
		}
	}

	h := d.registry.Get(action.Name)
	if h == nil {
		return Failed(fmt.Errorf("%w: %s", ErrNoHandler, action.Name))
	}

	var result Result
	if d.config.RecoverFromPanic {
		result = d.executeWithRecovery(h, action)
	} else {
		result = h.Handle(action)
	}

	for _, h := range d.postHooks {
		h.PostDispatch(&action, &result)
	}

	if d.metrics != nil {
		d.metrics.RecordDispatch(action.Name, time.Since(startTime), result.Status)
	}

	return result
}

// executeWithRecovery executes a handler with panic recovery.
func (d *Dispatcher) executeWithRecovery(h Handler, action input.Action) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)

			result = Failed(fmt.Errorf("%w for %s: %v\n%s", ErrPanic, action.Name, r, string(stack[:n])))

			if d.metrics != nil {
				d.metrics.RecordPanic(action.Name)
			}
		}
	}()

	return h.Handle(action)
}

// RegisterHandler registers a handler for an exact action name.
func (d *Dispatcher) RegisterHandler(actionName string, h Handler) {
	d.registry.Register(actionName, h)
}

// RegisterHandlerFunc registers a handler function for an action name.
func (d *Dispatcher) RegisterHandlerFunc(actionName string, fn func(input.Action) Result) {
	d.registry.Register(actionName, HandlerFunc(fn))
}

// UnregisterHandler removes a handler for an action name.
func (d *Dispatcher) UnregisterHandler(actionName string) {
	d.registry.Unregister(actionName)
}

// RegisterPreHook registers a pre-dispatch hook.
func (d *Dispatcher) RegisterPreHook(hook PreDispatchHook) {
	d.preHooks = append(d.preHooks, hook)
}

// RegisterPostHook registers a post-dispatch hook.
func (d *Dispatcher) RegisterPostHook(hook PostDispatchHook) {
	d.postHooks = append(d.postHooks, hook)
}

// Registry returns the handler registry.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Metrics returns the metrics collector (may be nil if disabled).
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// Config returns the dispatcher configuration.
func (d *Dispatcher) Config() Config {
	return d.config
}
