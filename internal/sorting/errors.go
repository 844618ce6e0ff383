package sorting

import (
	"errors"
	"fmt"
)

// Domain errors for configuring a sort run.
var (
	// ErrUnknownAlgorithm indicates an algorithm name with no registered stepper.
	ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")

	// ErrInvalidLength indicates an array length outside the accepted bounds.
	ErrInvalidLength = errors.New("sorting: invalid array length")

	// ErrInvalidValue indicates an array element that is not a positive integer.
	ErrInvalidValue = errors.New("sorting: invalid array value")

	// ErrInvariant indicates a broken internal invariant. It is never returned,
	// only carried by panics.
	ErrInvariant = errors.New("sorting: invariant violated")
)

// InvariantError describes a programming error detected while driving a
// stepper. It is raised with panic and unwraps to [ErrInvariant].
type InvariantError struct {
	Algorithm string
	Step      int
	Message   string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s step %d: %s: %s", e.Algorithm, e.Step, ErrInvariant.Error(), e.Message)
}

func (e *InvariantError) Unwrap() error {
	return ErrInvariant
}
