// Copyright (c) 2025 Marcos Sartori
//
// MIT License

package espressologic

import "fmt"

// OutputExistsError reports an attempt to attach an expression under an
// output name the cover already carries.
type OutputExistsError struct {
	Name string
}

func (e *OutputExistsError) Error() string {
	return fmt.Sprintf("output %q already exists", e.Name)
}

// OutputNotFoundError reports a lookup of an output name the cover does not
// carry.
type OutputNotFoundError struct {
	Name string
}

func (e *OutputNotFoundError) Error() string {
	return fmt.Sprintf("output %q not found", e.Name)
}

// OutputIndexError reports an output index outside the cover's columns. Max
// is the largest valid index, 0 for an empty cover.
type OutputIndexError struct {
	Index int
	Max   int
}

func (e *OutputIndexError) Error() string {
	return fmt.Sprintf("output index %d out of bounds (max %d)", e.Index, e.Max)
}

// MinimizationErrorKind classifies where a minimization failure originated.
type MinimizationErrorKind int

const (
	// MinimizationInstance: the primitive could not be acquired, usually a
	// dimension or configuration conflict with the live instance.
	MinimizationInstance MinimizationErrorKind = iota
	// MinimizationCube: a cube could not be encoded for the primitive.
	MinimizationCube
	// MinimizationIO: the primitive failed while running.
	MinimizationIO
)

func (k MinimizationErrorKind) String() string {
	switch k {
	case MinimizationInstance:
		return "instance"
	case MinimizationCube:
		return "cube"
	case MinimizationIO:
		return "io"
	}
	return "unknown"
}

// MinimizationError wraps a failure from the minimizer primitive, tagged
// with the stage it came from. The underlying error is available through
// errors.As / errors.Unwrap.
type MinimizationError struct {
	Kind MinimizationErrorKind
	Err  error
}

func (e *MinimizationError) Error() string {
	return fmt.Sprintf("minimization failed (%s): %v", e.Kind, e.Err)
}

func (e *MinimizationError) Unwrap() error { return e.Err }
