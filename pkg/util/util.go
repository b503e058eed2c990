// Package util contains various utilities used by go-sparsekit.
package util

import (
	"fmt"
	"slices"
)

// Must takes a function call's return tuple, whose last element is an error,
// and panics if the error is not nil.  Upon no error, it returns the tuple
// minus the error element at the end.
func Must[R any](r R, err error) R {
	if err != nil {
		panic(err)
	}
	return r
}

// ShrinkWrap shrink-wraps the slice, i.e. leaves no excess capacity.
// Identical to slices.Clip, except it coerces zero-length slice into nil.
func ShrinkWrap[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return slices.Clip(s)
}

// IndexOutOfBoundsError is returned when the requested index is out of bounds.
type IndexOutOfBoundsError struct {
	Index int
	Bound int
}

func (e IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("index %d out of bounds 0 <= index < %d", e.Index,
		e.Bound)
}
