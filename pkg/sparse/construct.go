package sparse

// SameStorageFastStack concatenates the given matrices along their
// outer axis, in input order: a vertical stack for CSR matrices,
// a horizontal stack for CSC matrices.
// All matrices must share one storage orientation
// and one inner dimension; no index renumbering is needed,
// so the result is assembled by plain array concatenation in O(nnz).
func SameStorageFastStack[T Element](mats []*Matrix[T]) (*Matrix[T], error) {
	if len(mats) == 0 {
		return nil, ErrEmptyStackingList
	}
	innerDim := mats[0].InnerDim()
	for _, m := range mats {
		if m.InnerDim() != innerDim {
			return nil, ErrIncompatibleDimensions
		}
	}
	storage := mats[0].Storage()
	for _, m := range mats {
		if m.Storage() != storage {
			return nil, ErrIncompatibleStorages
		}
	}

	outerDim, nnz := 0, 0
	for _, m := range mats {
		outerDim += m.OuterDim()
		nnz += m.NNZ()
	}

	res := Empty[T](storage, innerDim)
	res.ReserveOuterDim(outerDim)
	res.ReserveNNZ(nnz)
	for _, m := range mats {
		for outer := 0; outer < m.OuterDim(); outer++ {
			if err := res.AppendOuter(m.OuterView(outer)); err != nil {
				return nil, err
			}
		}
	}
	return res, nil
}

// VStack stacks the given matrices on top of one another.
// All matrices must have the same number of columns.
// Matrices not already in CSR storage are converted first;
// the inputs themselves are never modified.
// The result is in CSR storage.
func VStack[T Element](mats []*Matrix[T]) (*Matrix[T], error) {
	return stackAs(CSR, mats)
}

// HStack stacks the given matrices side by side.
// All matrices must have the same number of rows.
// Matrices not already in CSC storage are converted first;
// the inputs themselves are never modified.
// The result is in CSC storage.
func HStack[T Element](mats []*Matrix[T]) (*Matrix[T], error) {
	return stackAs(CSC, mats)
}

func stackAs[T Element](storage Storage, mats []*Matrix[T]) (*Matrix[T], error) {
	conforming := true
	for _, m := range mats {
		if m.Storage() != storage {
			conforming = false
			break
		}
	}
	if conforming {
		return SameStorageFastStack(mats)
	}
	converted := make([]*Matrix[T], len(mats))
	for i, m := range mats {
		converted[i] = m.toStorage(storage)
	}
	return SameStorageFastStack(converted)
}

// BMat composes a rectangular grid of optional blocks into one matrix.
// A nil cell is an implicit all-zero block whose shape is inferred:
// the maximum row count among present blocks in its block row,
// and the maximum column count among present blocks in its block column.
// Ragged grids are therefore tolerated,
// padded with implicit zero rows/columns up to the largest sibling.
// The result is in CSR storage.
func BMat[T Element](blocks [][]*Matrix[T]) (*Matrix[T], error) {
	superRows := len(blocks)
	if superRows == 0 {
		return nil, ErrEmptyStackingList
	}
	superCols := len(blocks[0])
	if superCols == 0 {
		return nil, ErrEmptyStackingList
	}
	for _, blockRow := range blocks {
		if len(blockRow) != superCols {
			return nil, ErrIncompatibleDimensions
		}
	}
	for _, blockRow := range blocks {
		present := false
		for _, block := range blockRow {
			if block != nil {
				present = true
				break
			}
		}
		if !present {
			return nil, ErrEmptyBmatRow
		}
	}
	for j := 0; j < superCols; j++ {
		present := false
		for _, blockRow := range blocks {
			if blockRow[j] != nil {
				present = true
				break
			}
		}
		if !present {
			return nil, ErrEmptyBmatCol
		}
	}

	// Infer the shapes of the absent blocks.
	rowsPerRow := make([]int, superRows)
	for i, blockRow := range blocks {
		for _, block := range blockRow {
			if block != nil {
				rowsPerRow[i] = max(rowsPerRow[i], block.Rows())
			}
		}
	}
	colsPerCol := make([]int, superCols)
	for j := 0; j < superCols; j++ {
		for _, blockRow := range blocks {
			if block := blockRow[j]; block != nil {
				colsPerCol[j] = max(colsPerCol[j], block.Cols())
			}
		}
	}

	bands := make([]*Matrix[T], 0, superRows)
	for i, blockRow := range blocks {
		withZeros := make([]*Matrix[T], superCols)
		for j, block := range blockRow {
			if block == nil {
				block = Zero[T](rowsPerRow[i], colsPerCol[j])
			}
			withZeros[j] = block
		}
		band, err := HStack(withZeros)
		if err != nil {
			return nil, err
		}
		bands = append(bands, band)
	}
	return VStack(bands)
}

// View is a read-only dense 2D view of numeric cells.
type View[T Element] interface {
	// Dims returns the numbers of rows/columns.
	Dims() (rows, cols int)

	// At returns the cell value at the given row/column.
	At(i, j int) T
}

// CSRFromDense creates a CSR matrix from a dense view,
// retaining the entries whose absolute value strictly exceeds epsilon.
// A negative epsilon is clamped to zero.
func CSRFromDense[T Element](d View[T], epsilon T) *Matrix[T] {
	if epsilon < 0 {
		epsilon = 0
	}
	rows, cols := d.Dims()

	// First pass counts retained entries per row,
	// so the arrays below are allocated exactly once.
	indPtr := make([]int, rows+1)
	nnz := 0
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if abs(d.At(i, j)) > epsilon {
				nnz++
			}
		}
		indPtr[i+1] = nnz
	}

	indices := make([]int, 0, nnz)
	data := make([]T, 0, nnz)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v := d.At(i, j); abs(v) > epsilon {
				indices = append(indices, j)
				data = append(data, v)
			}
		}
	}
	// The left-to-right scan keeps each row's indices sorted,
	// so the structure is valid by construction.
	return &Matrix[T]{
		storage: CSR,
		rows:    rows,
		cols:    cols,
		indPtr:  indPtr,
		indices: indices,
		data:    data,
	}
}

// CSCFromDense creates a CSC matrix from a dense view,
// retaining the entries whose absolute value strictly exceeds epsilon.
// A negative epsilon is clamped to zero.
func CSCFromDense[T Element](d View[T], epsilon T) *Matrix[T] {
	return CSRFromDense[T](transposedView[T]{d}, epsilon).Transpose()
}

type transposedView[T Element] struct {
	d View[T]
}

func (t transposedView[T]) Dims() (rows, cols int) {
	cols, rows = t.d.Dims()
	return rows, cols
}

func (t transposedView[T]) At(i, j int) T { return t.d.At(j, i) }
