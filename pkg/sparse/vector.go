package sparse

// VecView is a read-only view of a sparse vector,
// typically one outer slot of a compressed matrix
// (a row of a CSR matrix, a column of a CSC matrix).
type VecView[T Element] struct {
	// Dim is the dimension of the vector.
	Dim int

	// Indices holds the indices of stored entries, strictly increasing.
	// For each index, 0 <= index < Dim holds.
	Indices []int

	// Data holds the entry values, parallel to Indices.
	Data []T
}

// NNZ returns the number of stored entries.
func (v VecView[T]) NNZ() int { return len(v.Indices) }

// NewVecView creates a vector view over the given parallel slices.
// The slices are not copied.
func NewVecView[T Element](dim int, indices []int, data []T) VecView[T] {
	return VecView[T]{Dim: dim, Indices: indices, Data: data}
}
