package config

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeMismatch indicates a setting has the wrong type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrUnknownSetting indicates a setting the editor does not read.
	ErrUnknownSetting = errors.New("unknown setting")

	// ErrInvalidValue indicates a setting has an unacceptable value.
	ErrInvalidValue = errors.New("invalid value")
)

// TypeError is returned when a setting cannot be decoded.
type TypeError struct {
	Path     string
	Expected string
	Actual   string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("type error for %s: expected %s, got %s", e.Path, e.Expected, e.Actual)
}

// Is matches ErrTypeMismatch.
func (e *TypeError) Is(target error) bool {
	return target == ErrTypeMismatch
}

func typeError(path, expected string, value any) error {
	return &TypeError{Path: path, Expected: expected, Actual: fmt.Sprintf("%T", value)}
}
