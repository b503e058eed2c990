package sparse

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch signals a dimension mismatch
// between related data structures,
// ex: a matrix and an outer vector being appended to it.
var ErrDimensionMismatch = errors.New("dimension mismatch")

// ErrEmptyStackingList signals that zero matrices (or zero blocks)
// were supplied where at least one is required.
var ErrEmptyStackingList = errors.New("empty stacking list")

// ErrIncompatibleDimensions signals that the matrices being combined
// disagree on a dimension they must share,
// ex: differing inner dimensions in a stack,
// or ragged block rows in a block grid.
var ErrIncompatibleDimensions = errors.New("incompatible dimensions")

// ErrIncompatibleStorages signals that a same-storage operation
// received matrices of mixed storage orientations.
var ErrIncompatibleStorages = errors.New("incompatible storage orientations")

// ErrEmptyBmatRow signals a block row whose cells are all absent,
// making its height unrecoverable.
var ErrEmptyBmatRow = errors.New("block row entirely absent")

// ErrEmptyBmatCol signals a block column whose cells are all absent,
// making its width unrecoverable.
var ErrEmptyBmatCol = errors.New("block column entirely absent")

// Raw-construction validation failures; see New.
var (
	ErrBadIndPtr        = errors.New("indptr must start at 0 and be monotonically non-decreasing")
	ErrOutOfBoundsIndex = errors.New("index out of bounds")
	ErrUnsortedIndices  = errors.New("indices not strictly increasing within an outer slot")
	ErrLengthMismatch   = errors.New("array length mismatch")
)

// NegativeDimensionError signals a negative row/column count.
type NegativeDimensionError struct {
	Rows, Cols int
}

func (e NegativeDimensionError) Error() string {
	return fmt.Sprintf("negative dimensions %dx%d not allowed", e.Rows, e.Cols)
}
