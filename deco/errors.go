package deco

import (
	"errors"
	"strconv"
)

var (
	// ErrNilFunc is returned when a decorator is applied to a nil Func
	// or a Func holding a nil function.
	ErrNilFunc = errors.New("deco: nil function")

	// ErrRegistryPanic is returned if a registry provider panics while being resolved.
	ErrRegistryPanic = errors.New("deco: panic during Resolve")
)

// NilDecoratorError indicates a nil decorator (or provider) for a specific name.
type NilDecoratorError struct{ Name string }

// Error implements the error interface.
func (e NilDecoratorError) Error() string {
	// Example: deco: nil decorator "timer"
	return "deco: nil decorator " + strconv.Quote(e.Name)
}

// UnknownDecoratorError is returned when a decorator name is not registered.
type UnknownDecoratorError struct{ Name string }

// Error implements the error interface.
func (e UnknownDecoratorError) Error() string {
	// Example: deco: unknown decorator "timer"
	return "deco: unknown decorator " + strconv.Quote(e.Name)
}
