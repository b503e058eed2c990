// Package sparse implements compressed sparse matrices (CSR/CSC)
// and the construction of new matrices from existing ones:
// stacking along either axis, block composition with implicit zero
// blocks, and conversion from dense matrices.
//
// All construction functions are pure: inputs are read-only for the
// duration of a call, and every returned matrix is freshly allocated
// and exclusively owned by the caller.
package sparse

import "golang.org/x/exp/constraints"

// Element is the set of numeric types a sparse matrix can hold.
type Element interface {
	constraints.Signed | constraints.Float
}

func abs[T Element](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
