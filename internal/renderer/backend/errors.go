package backend

import "errors"

// ErrEventQueueFull is returned when an event cannot be queued.
var ErrEventQueueFull = errors.New("backend: event queue full")
