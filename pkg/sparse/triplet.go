package sparse

import (
	"slices"
	"sort"

	"github.com/sparsekit/go-sparsekit/pkg/util"
)

// TriMat is a sparse matrix in triplet (coordinate-list) format:
// parallel lists of (row, column, value) entries in no particular
// order, possibly with duplicate locations.
// It is an intermediate representation for building compressed
// matrices, ex. when reading a coordinate file format.
type TriMat[T Element] struct {
	rows, cols int
	rowInds    []int
	colInds    []int
	data       []T
}

// NewTriMat creates an empty triplet matrix with the given shape.
func NewTriMat[T Element](rows, cols int) *TriMat[T] {
	return &TriMat[T]{rows: rows, cols: cols}
}

// Reserve grows the entry capacity to hold
// the given number of entries without further reallocation.
func (t *TriMat[T]) Reserve(nnz int) {
	if n := nnz - len(t.data); n > 0 {
		t.rowInds = slices.Grow(t.rowInds, n)
		t.colInds = slices.Grow(t.colInds, n)
		t.data = slices.Grow(t.data, n)
	}
}

// Add records one (row, column, value) entry.
func (t *TriMat[T]) Add(row, col int, value T) error {
	if row < 0 || row >= t.rows {
		return util.IndexOutOfBoundsError{Index: row, Bound: t.rows}
	}
	if col < 0 || col >= t.cols {
		return util.IndexOutOfBoundsError{Index: col, Bound: t.cols}
	}
	t.rowInds = append(t.rowInds, row)
	t.colInds = append(t.colInds, col)
	t.data = append(t.data, value)
	return nil
}

// Dims returns the numbers of rows/columns.
func (t *TriMat[T]) Dims() (rows, cols int) { return t.rows, t.cols }

// Rows returns the number of rows.
func (t *TriMat[T]) Rows() int { return t.rows }

// Cols returns the number of columns.
func (t *TriMat[T]) Cols() int { return t.cols }

// NNZ returns the number of recorded entries,
// counting duplicate locations separately.
func (t *TriMat[T]) NNZ() int { return len(t.data) }

// ToCSR compresses the triplet matrix into CSR storage.
// Entries at duplicate locations are summed.
func (t *TriMat[T]) ToCSR() *Matrix[T] { return t.compress(CSR) }

// ToCSC compresses the triplet matrix into CSC storage.
// Entries at duplicate locations are summed.
func (t *TriMat[T]) ToCSC() *Matrix[T] { return t.compress(CSC) }

func (t *TriMat[T]) compress(storage Storage) *Matrix[T] {
	outerDim := t.rows
	outerInds, innerInds := t.rowInds, t.colInds
	if storage == CSC {
		outerDim = t.cols
		outerInds, innerInds = t.colInds, t.rowInds
	}

	// Bucket entries into outer slots by counting.
	indPtr := make([]int, outerDim+1)
	for _, outer := range outerInds {
		indPtr[outer+1]++
	}
	for i := 0; i < outerDim; i++ {
		indPtr[i+1] += indPtr[i]
	}
	nnz := len(t.data)
	indices := make([]int, nnz)
	data := make([]T, nnz)
	next := make([]int, outerDim)
	copy(next, indPtr[:outerDim])
	for k, outer := range outerInds {
		pos := next[outer]
		indices[pos] = innerInds[k]
		data[pos] = t.data[k]
		next[outer]++
	}

	// Sort each slot, then fold duplicate locations by summation,
	// compacting in place (the write cursor never passes the read one).
	w := 0
	readStart := 0
	for outer := 0; outer < outerDim; outer++ {
		readEnd := indPtr[outer+1]
		sort.Sort(innerSorter[T]{
			indices: indices[readStart:readEnd],
			data:    data[readStart:readEnd],
		})
		slotStart := w
		for k := readStart; k < readEnd; k++ {
			if w > slotStart && indices[w-1] == indices[k] {
				data[w-1] += data[k]
				continue
			}
			indices[w] = indices[k]
			data[w] = data[k]
			w++
		}
		indPtr[outer+1] = w
		readStart = readEnd
	}

	return &Matrix[T]{
		storage: storage,
		rows:    t.rows,
		cols:    t.cols,
		indPtr:  indPtr,
		indices: util.ShrinkWrap(indices[:w]),
		data:    util.ShrinkWrap(data[:w]),
	}
}

// innerSorter sorts an outer slot's parallel index/data slices
// by inner index.
type innerSorter[T Element] struct {
	indices []int
	data    []T
}

func (s innerSorter[T]) Len() int { return len(s.indices) }

func (s innerSorter[T]) Swap(i, j int) {
	s.indices[i], s.indices[j] = s.indices[j], s.indices[i]
	s.data[i], s.data[j] = s.data[j], s.data[i]
}

func (s innerSorter[T]) Less(i, j int) bool {
	return s.indices[i] < s.indices[j]
}
