package sparse

import (
	"fmt"
	"slices"
)

// Storage is a compressed storage orientation.
type Storage int

const (
	// CSR is compressed sparse row storage:
	// the outer axis is the row axis, the inner axis is the column axis.
	CSR Storage = iota

	// CSC is compressed sparse column storage:
	// the outer axis is the column axis, the inner axis is the row axis.
	CSC
)

func (s Storage) String() string {
	switch s {
	case CSR:
		return "CSR"
	case CSC:
		return "CSC"
	default:
		return fmt.Sprintf("Storage(%d)", int(s))
	}
}

// Other returns the opposite storage orientation.
func (s Storage) Other() Storage {
	if s == CSR {
		return CSC
	}
	return CSR
}

// Matrix is a compressed sparse matrix in one storage orientation.
//
// Its indptr array has outer-dimension+1 elements; slot i's entries
// occupy indices[indPtr[i]:indPtr[i+1]] and data[indPtr[i]:indPtr[i+1]],
// with indices strictly increasing within each slot.
// Use New to build one from raw arrays with these invariants checked.
type Matrix[T Element] struct {
	storage    Storage
	rows, cols int
	indPtr     []int
	indices    []int
	data       []T
}

// New creates a matrix from raw compressed arrays, validating them:
// indPtr must have outer-dimension+1 elements, start at 0,
// and be monotonically non-decreasing;
// indices and data must both have indPtr's last element as length;
// indices must be in [0, inner dimension)
// and strictly increasing within each outer slot.
// The given slices are owned by the returned matrix.
func New[T Element](
	storage Storage, rows, cols int, indPtr, indices []int, data []T,
) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, NegativeDimensionError{Rows: rows, Cols: cols}
	}
	m := &Matrix[T]{
		storage: storage,
		rows:    rows,
		cols:    cols,
		indPtr:  indPtr,
		indices: indices,
		data:    data,
	}
	if len(indPtr) != m.OuterDim()+1 {
		return nil, fmt.Errorf("indptr has %d elements, want %d: %w",
			len(indPtr), m.OuterDim()+1, ErrLengthMismatch)
	}
	if indPtr[0] != 0 {
		return nil, fmt.Errorf("indptr starts at %d: %w", indPtr[0],
			ErrBadIndPtr)
	}
	for i := 1; i < len(indPtr); i++ {
		if indPtr[i] < indPtr[i-1] {
			return nil, fmt.Errorf("indptr[%d]=%d < indptr[%d]=%d: %w",
				i, indPtr[i], i-1, indPtr[i-1], ErrBadIndPtr)
		}
	}
	nnz := indPtr[len(indPtr)-1]
	if len(indices) != nnz || len(data) != nnz {
		return nil, fmt.Errorf(
			"%d indices and %d data elements, want %d each: %w",
			len(indices), len(data), nnz, ErrLengthMismatch)
	}
	innerDim := m.InnerDim()
	for outer := 0; outer < m.OuterDim(); outer++ {
		prev := -1
		for _, inner := range indices[indPtr[outer]:indPtr[outer+1]] {
			if inner < 0 || inner >= innerDim {
				return nil, fmt.Errorf(
					"outer slot %d: inner index %d outside [0, %d): %w",
					outer, inner, innerDim, ErrOutOfBoundsIndex)
			}
			if inner <= prev {
				return nil, fmt.Errorf("outer slot %d: %w", outer,
					ErrUnsortedIndices)
			}
			prev = inner
		}
	}
	return m, nil
}

// Empty creates a matrix of the given storage orientation
// with the given inner dimension and a zero outer dimension.
// Outer slots are added with AppendOuter.
func Empty[T Element](storage Storage, innerDim int) *Matrix[T] {
	m := &Matrix[T]{storage: storage, indPtr: []int{0}}
	if storage == CSR {
		m.cols = innerDim
	} else {
		m.rows = innerDim
	}
	return m
}

// Zero creates an all-zero rows x cols matrix in CSR storage.
func Zero[T Element](rows, cols int) *Matrix[T] {
	return &Matrix[T]{
		storage: CSR,
		rows:    rows,
		cols:    cols,
		indPtr:  make([]int, rows+1),
	}
}

// Eye creates a dim x dim identity matrix
// in the given storage orientation.
func Eye[T Element](storage Storage, dim int) *Matrix[T] {
	indPtr := make([]int, dim+1)
	indices := make([]int, dim)
	data := make([]T, dim)
	for i := 0; i < dim; i++ {
		indPtr[i+1] = i + 1
		indices[i] = i
		data[i] = 1
	}
	return &Matrix[T]{
		storage: storage,
		rows:    dim,
		cols:    dim,
		indPtr:  indPtr,
		indices: indices,
		data:    data,
	}
}

// Dims returns the numbers of rows/columns.
func (m *Matrix[T]) Dims() (rows, cols int) { return m.rows, m.cols }

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.cols }

// Storage returns the storage orientation.
func (m *Matrix[T]) Storage() Storage { return m.storage }

// IsCSR returns whether the matrix is in CSR storage.
func (m *Matrix[T]) IsCSR() bool { return m.storage == CSR }

// IsCSC returns whether the matrix is in CSC storage.
func (m *Matrix[T]) IsCSC() bool { return m.storage == CSC }

// OuterDim returns the outer dimension:
// the number of rows for CSR storage, of columns for CSC storage.
func (m *Matrix[T]) OuterDim() int {
	if m.storage == CSR {
		return m.rows
	}
	return m.cols
}

// InnerDim returns the inner dimension:
// the number of columns for CSR storage, of rows for CSC storage.
func (m *Matrix[T]) InnerDim() int {
	if m.storage == CSR {
		return m.cols
	}
	return m.rows
}

// NNZ returns the number of stored entries.
func (m *Matrix[T]) NNZ() int { return m.indPtr[len(m.indPtr)-1] }

// OuterView returns the given outer slot
// (a row for CSR storage, a column for CSC storage)
// as a sparse vector view.
// The view shares the receiver's arrays and must not be modified.
func (m *Matrix[T]) OuterView(outer int) VecView[T] {
	start, end := m.indPtr[outer], m.indPtr[outer+1]
	return VecView[T]{
		Dim:     m.InnerDim(),
		Indices: m.indices[start:end],
		Data:    m.data[start:end],
	}
}

// AppendOuter appends one more outer slot
// (a row for CSR storage, a column for CSC storage)
// holding the given vector's entries, growing the outer dimension by one.
// The vector's dimension must equal the receiver's inner dimension.
func (m *Matrix[T]) AppendOuter(v VecView[T]) error {
	if v.Dim != m.InnerDim() {
		return ErrDimensionMismatch
	}
	m.indices = append(m.indices, v.Indices...)
	m.data = append(m.data, v.Data...)
	m.indPtr = append(m.indPtr, len(m.indices))
	if m.storage == CSR {
		m.rows++
	} else {
		m.cols++
	}
	return nil
}

// ReserveOuterDim grows the indptr capacity to hold
// the given outer dimension without further reallocation.
func (m *Matrix[T]) ReserveOuterDim(outerDim int) {
	if n := outerDim + 1 - len(m.indPtr); n > 0 {
		m.indPtr = slices.Grow(m.indPtr, n)
	}
}

// ReserveNNZ grows the index/data capacities to hold
// the given number of entries without further reallocation.
func (m *Matrix[T]) ReserveNNZ(nnz int) {
	if n := nnz - len(m.indices); n > 0 {
		m.indices = slices.Grow(m.indices, n)
		m.data = slices.Grow(m.data, n)
	}
}

// ToCSR returns the matrix in CSR storage.
// If the receiver is already CSR, it is returned as is
// and must be treated as read-only;
// otherwise a converted copy is returned and the receiver is untouched.
func (m *Matrix[T]) ToCSR() *Matrix[T] { return m.toStorage(CSR) }

// ToCSC returns the matrix in CSC storage.
// If the receiver is already CSC, it is returned as is
// and must be treated as read-only;
// otherwise a converted copy is returned and the receiver is untouched.
func (m *Matrix[T]) ToCSC() *Matrix[T] { return m.toStorage(CSC) }

func (m *Matrix[T]) toStorage(target Storage) *Matrix[T] {
	if m.storage == target {
		return m
	}
	outDim := m.InnerDim() // the inner axis becomes the outer one
	indPtr := make([]int, outDim+1)
	for _, inner := range m.indices {
		indPtr[inner+1]++
	}
	for i := 0; i < outDim; i++ {
		indPtr[i+1] += indPtr[i]
	}
	indices := make([]int, m.NNZ())
	data := make([]T, m.NNZ())
	next := make([]int, outDim)
	copy(next, indPtr[:outDim])
	// Scanning outer slots in order keeps each target slot sorted.
	for outer := 0; outer < m.OuterDim(); outer++ {
		start, end := m.indPtr[outer], m.indPtr[outer+1]
		for k := start; k < end; k++ {
			inner := m.indices[k]
			pos := next[inner]
			indices[pos] = outer
			data[pos] = m.data[k]
			next[inner]++
		}
	}
	return &Matrix[T]{
		storage: target,
		rows:    m.rows,
		cols:    m.cols,
		indPtr:  indPtr,
		indices: indices,
		data:    data,
	}
}

// Transpose returns the transposed matrix by reinterpreting storage:
// rows and columns swap roles and the orientation flips,
// with no data movement.
// The returned matrix shares the receiver's arrays.
func (m *Matrix[T]) Transpose() *Matrix[T] {
	return &Matrix[T]{
		storage: m.storage.Other(),
		rows:    m.cols,
		cols:    m.rows,
		indPtr:  m.indPtr,
		indices: m.indices,
		data:    m.data,
	}
}

// Clone returns a deep copy of the receiver.
func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{
		storage: m.storage,
		rows:    m.rows,
		cols:    m.cols,
		indPtr:  append(m.indPtr[:0:0], m.indPtr...),
		indices: append(m.indices[:0:0], m.indices...),
		data:    append(m.data[:0:0], m.data...),
	}
}
