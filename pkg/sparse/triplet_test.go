package sparse

import (
	"errors"
	"reflect"
	"testing"

	"github.com/sparsekit/go-sparsekit/pkg/util"
)

func TestTriMat_ToCSR(t *testing.T) {
	tests := []struct {
		name    string
		rows    int
		cols    int
		entries [][3]int // row, col, value
		want    *Matrix[int]
	}{
		{
			name: "Empty",
			rows: 2, cols: 3,
			want: &Matrix[int]{
				storage: CSR,
				rows:    2,
				cols:    3,
				indPtr:  []int{0, 0, 0},
			},
		},
		{
			name: "UnorderedInput",
			rows: 3, cols: 3,
			entries: [][3]int{
				{2, 0, 7},
				{0, 2, 3},
				{0, 0, 1},
				{1, 1, 5},
			},
			want: &Matrix[int]{
				storage: CSR,
				rows:    3,
				cols:    3,
				indPtr:  []int{0, 2, 3, 4},
				indices: []int{0, 2, 1, 0},
				data:    []int{1, 3, 5, 7},
			},
		},
		{
			name: "DuplicatesSummed",
			rows: 2, cols: 2,
			entries: [][3]int{
				{0, 1, 2},
				{0, 1, 3},
				{1, 0, 4},
				{0, 1, -1},
			},
			want: &Matrix[int]{
				storage: CSR,
				rows:    2,
				cols:    2,
				indPtr:  []int{0, 1, 2},
				indices: []int{1, 0},
				data:    []int{4, 4},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tri := NewTriMat[int](tt.rows, tt.cols)
			for _, e := range tt.entries {
				if err := tri.Add(e[0], e[1], e[2]); err != nil {
					t.Fatalf("Add(%v) error = %v", e, err)
				}
			}
			if got := tri.ToCSR(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ToCSR() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestTriMat_ToCSC(t *testing.T) {
	tri := NewTriMat[int](3, 2)
	for _, e := range [][3]int{
		{0, 0, 1},
		{2, 1, 6},
		{1, 0, 3},
		{0, 1, 2},
	} {
		if err := tri.Add(e[0], e[1], e[2]); err != nil {
			t.Fatalf("Add(%v) error = %v", e, err)
		}
	}
	want := &Matrix[int]{
		storage: CSC,
		rows:    3,
		cols:    2,
		indPtr:  []int{0, 2, 4},
		indices: []int{0, 1, 0, 2},
		data:    []int{1, 3, 2, 6},
	}
	if got := tri.ToCSC(); !reflect.DeepEqual(got, want) {
		t.Errorf("ToCSC() = %#v, want %#v", got, want)
	}
}

func TestTriMat_AddOutOfBounds(t *testing.T) {
	tri := NewTriMat[float64](2, 2)
	var oob util.IndexOutOfBoundsError
	if err := tri.Add(2, 0, 1); !errors.As(err, &oob) {
		t.Errorf("Add(2, 0, 1) error = %v, want IndexOutOfBoundsError", err)
	}
	if err := tri.Add(0, -1, 1); !errors.As(err, &oob) {
		t.Errorf("Add(0, -1, 1) error = %v, want IndexOutOfBoundsError", err)
	}
	if tri.NNZ() != 0 {
		t.Errorf("NNZ() = %d after rejected adds, want 0", tri.NNZ())
	}
}
