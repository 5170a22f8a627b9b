package app

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyRunning indicates Run was called twice.
	ErrAlreadyRunning = errors.New("application already running")

	// ErrIsDirectory indicates a directory was given as a file to open.
	ErrIsDirectory = errors.New("is a directory")
)

// OperationError is a failure of one named step, such as opening a file
// or loading the configuration.
type OperationError struct {
	Op     string
	Target string
	Err    error
}

func (e *OperationError) Error() string {
	msg := e.Op
	if e.Target != "" {
		msg = fmt.Sprintf("%s %s", e.Op, e.Target)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// PanicError carries a recovered panic out of Run.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v\n%s", e.Value, e.Stack)
}
