// Copyright (c) 2025 Marcos Sartori
//
// MIT License

package espresso

import (
	"errors"
	"fmt"
)

// ErrStaleCover reports a cover handed to Minimize that was released or
// belongs to a torn-down instance.
var ErrStaleCover = errors.New("espresso: cover does not belong to the live instance")

// DimensionError reports a request for an instance or cover whose dimensions
// conflict with the live instance.
type DimensionError struct {
	RequestedInputs  int
	RequestedOutputs int
	ExistingInputs   int
	ExistingOutputs  int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("espresso: requested dimensions %dx%d conflict with live instance %dx%d",
		e.RequestedInputs, e.RequestedOutputs, e.ExistingInputs, e.ExistingOutputs)
}

// ConfigError reports a request carrying a configuration different from the
// live instance's.
type ConfigError struct {
	NumInputs  int
	NumOutputs int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("espresso: configuration conflicts with live %dx%d instance",
		e.NumInputs, e.NumOutputs)
}

// ValueError reports a cube byte outside the ternary alphabet {0, 1, 2} for
// inputs or {0, 1} for outputs.
type ValueError struct {
	Value    byte
	Position int
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("espresso: invalid cube value %d at position %d", e.Value, e.Position)
}
