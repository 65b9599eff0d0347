package collutils

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a required function, such as a key function or a collector's
	// accumulate function, is nil.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNoElements is returned by operations that need at least one element, such as Min or Max,
	// when the input is nil or empty.
	ErrNoElements = errors.New("no elements")

	// ErrShortCircuit is a generic error used to short-circuit a source by canceling its context.
	// It is never returned to callers.
	ErrShortCircuit = errors.New("short circuit")
)

// A DuplicateKeyError is returned by KeyBy to indicate that a key could not be added to a map
// because it already exists.
type DuplicateKeyError[T any, K comparable] struct {
	// Element is the element that caused the error.
	Element T

	// Key is the key that was already in the map.
	Key K
}

// Error implements error.
func (e *DuplicateKeyError[T, K]) Error() string {
	return fmt.Sprintf("duplicate key: %v", e.Key)
}

// invalidArgument returns an error wrapping ErrInvalidArgument that names the offending argument.
func invalidArgument(name string) error {
	return fmt.Errorf("%w: %s is nil", ErrInvalidArgument, name)
}
