package sparse

import (
	"errors"
	"reflect"
	"testing"
)

//   ║   0    1    2    3
// ══╬═══════════════════
// 0 ║ 100  200  300    0
// 1 ║   0  400    0  500
// 2 ║   0    0    0    0
// 3 ║ 600  700  800  900
// 4 ║   0    0 1000    0
func exampleCSR() *Matrix[float64] {
	return &Matrix[float64]{
		storage: CSR,
		rows:    5,
		cols:    4,
		indPtr:  []int{0, 3, 5, 5, 9, 10},
		indices: []int{0, 1, 2, 1, 3, 0, 1, 2, 3, 2},
		data:    []float64{100, 200, 300, 400, 500, 600, 700, 800, 900, 1000},
	}
}

func exampleCSC() *Matrix[float64] {
	return &Matrix[float64]{
		storage: CSC,
		rows:    5,
		cols:    4,
		indPtr:  []int{0, 2, 5, 8, 10},
		indices: []int{0, 3, 0, 1, 3, 0, 3, 4, 1, 3},
		data:    []float64{100, 600, 200, 400, 700, 300, 800, 1000, 500, 900},
	}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		storage Storage
		rows    int
		cols    int
		indPtr  []int
		indices []int
		data    []float64
		wantErr error
	}{
		{
			name:    "Valid",
			storage: CSR, rows: 2, cols: 3,
			indPtr:  []int{0, 1, 2},
			indices: []int{2, 0},
			data:    []float64{1, 2},
			wantErr: nil,
		},
		{
			name:    "BadIndPtrLength",
			storage: CSR, rows: 2, cols: 3,
			indPtr:  []int{0, 1},
			indices: []int{2},
			data:    []float64{1},
			wantErr: ErrLengthMismatch,
		},
		{
			name:    "IndPtrNotStartingAtZero",
			storage: CSR, rows: 2, cols: 3,
			indPtr:  []int{1, 1, 2},
			indices: []int{2, 0},
			data:    []float64{1, 2},
			wantErr: ErrBadIndPtr,
		},
		{
			name:    "NonMonotonicIndPtr",
			storage: CSR, rows: 2, cols: 3,
			indPtr:  []int{0, 2, 1},
			indices: []int{0},
			data:    []float64{1},
			wantErr: ErrBadIndPtr,
		},
		{
			name:    "DataLengthMismatch",
			storage: CSR, rows: 2, cols: 3,
			indPtr:  []int{0, 1, 2},
			indices: []int{2, 0},
			data:    []float64{1},
			wantErr: ErrLengthMismatch,
		},
		{
			name:    "IndexOutOfRange",
			storage: CSR, rows: 2, cols: 3,
			indPtr:  []int{0, 1, 2},
			indices: []int{3, 0},
			data:    []float64{1, 2},
			wantErr: ErrOutOfBoundsIndex,
		},
		{
			name:    "UnsortedWithinSlot",
			storage: CSR, rows: 1, cols: 3,
			indPtr:  []int{0, 2},
			indices: []int{2, 0},
			data:    []float64{1, 2},
			wantErr: ErrUnsortedIndices,
		},
		{
			name:    "DuplicateWithinSlot",
			storage: CSR, rows: 1, cols: 3,
			indPtr:  []int{0, 2},
			indices: []int{1, 1},
			data:    []float64{1, 2},
			wantErr: ErrUnsortedIndices,
		},
		{
			name:    "CSCOuterIsColumns",
			storage: CSC, rows: 3, cols: 2,
			indPtr:  []int{0, 1, 2},
			indices: []int{2, 0},
			data:    []float64{1, 2},
			wantErr: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.storage, tt.rows, tt.cols,
				tt.indPtr, tt.indices, tt.data)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestMatrix_StorageConversion(t *testing.T) {
	csr := exampleCSR()
	csc := exampleCSC()

	if got := csr.ToCSC(); !reflect.DeepEqual(got, csc) {
		t.Errorf("csr.ToCSC() = %v, want %v", got, csc)
	}
	if got := csc.ToCSR(); !reflect.DeepEqual(got, csr) {
		t.Errorf("csc.ToCSR() = %v, want %v", got, csr)
	}
	// Converting to the orientation already in use returns the receiver.
	if got := csr.ToCSR(); got != csr {
		t.Errorf("csr.ToCSR() = %p, want the receiver %p", got, csr)
	}
}

func TestMatrix_Transpose(t *testing.T) {
	m := exampleCSR()
	mt := m.Transpose()
	if mt.Storage() != CSC {
		t.Errorf("mt.Storage() = %v, want %v", mt.Storage(), CSC)
	}
	if r, c := mt.Dims(); r != 4 || c != 5 {
		t.Errorf("mt.Dims() = %d, %d, want 4, 5", r, c)
	}
	if mtt := mt.Transpose(); !reflect.DeepEqual(mtt, m) {
		t.Errorf("m.Transpose().Transpose() = %v, want %v", mtt, m)
	}
	// Transposition then conversion back to CSR reads out
	// the example's columns as rows.
	want := exampleCSC()
	want.storage = CSR
	want.rows, want.cols = want.cols, want.rows
	if got := mt.ToCSR(); !reflect.DeepEqual(got, want) {
		t.Errorf("m.Transpose().ToCSR() = %v, want %v", got, want)
	}
}

func TestEye(t *testing.T) {
	for _, storage := range []Storage{CSR, CSC} {
		m := Eye[float64](storage, 3)
		if r, c := m.Dims(); r != 3 || c != 3 {
			t.Errorf("Eye(%v, 3).Dims() = %d, %d, want 3, 3", storage, r, c)
		}
		if m.NNZ() != 3 {
			t.Errorf("Eye(%v, 3).NNZ() = %d, want 3", storage, m.NNZ())
		}
		for i := 0; i < 3; i++ {
			v := m.OuterView(i)
			if len(v.Indices) != 1 || v.Indices[0] != i || v.Data[0] != 1 {
				t.Errorf("Eye(%v, 3).OuterView(%d) = %v", storage, i, v)
			}
		}
	}
}

func TestZero(t *testing.T) {
	m := Zero[float64](3, 4)
	if r, c := m.Dims(); r != 3 || c != 4 {
		t.Errorf("Zero(3, 4).Dims() = %d, %d, want 3, 4", r, c)
	}
	if m.NNZ() != 0 {
		t.Errorf("Zero(3, 4).NNZ() = %d, want 0", m.NNZ())
	}
	if !m.IsCSR() {
		t.Errorf("Zero(3, 4).Storage() = %v, want %v", m.Storage(), CSR)
	}
}

func TestMatrix_AppendOuter(t *testing.T) {
	m := Empty[float64](CSR, 3)
	err := m.AppendOuter(VecView[float64]{
		Dim:     3,
		Indices: []int{0, 2},
		Data:    []float64{1, 2},
	})
	if err != nil {
		t.Fatalf("AppendOuter() error = %v", err)
	}
	if m.Rows() != 1 || m.NNZ() != 2 {
		t.Errorf("after append: rows = %d, nnz = %d, want 1, 2",
			m.Rows(), m.NNZ())
	}
	err = m.AppendOuter(VecView[float64]{Dim: 4})
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("AppendOuter() error = %v, want %v", err,
			ErrDimensionMismatch)
	}
}

func TestMatrix_Reserve(t *testing.T) {
	m := Empty[float64](CSR, 5)
	m.ReserveOuterDim(10)
	m.ReserveNNZ(17)
	if cap(m.indPtr) < 11 {
		t.Errorf("cap(indPtr) = %d, want >= 11", cap(m.indPtr))
	}
	if cap(m.indices) < 17 || cap(m.data) < 17 {
		t.Errorf("cap(indices) = %d, cap(data) = %d, want >= 17",
			cap(m.indices), cap(m.data))
	}
}
