// Package mmio reads and writes sparse matrices in the Matrix Market
// coordinate text format.
//
// Only the "general" structural qualifier with "integer" or "real"
// fields is supported; symmetric/hermitian/pattern/complex files are
// rejected.  Indices are 1-based on disk and 0-based in memory.
package mmio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-faster/errors"

	"github.com/sparsekit/go-sparsekit/pkg/sparse"
)

// ErrBadMatrixMarketFile signals a malformed Matrix Market file:
// bad header, bad dimension line, or a malformed data line.
var ErrBadMatrixMarketFile = errors.New("bad matrix market file")

// ErrUnsupportedFormat signals a well-formed header declaring a
// structural qualifier or field kind this package does not support.
var ErrUnsupportedFormat = errors.New("unsupported matrix market format")

// Kind is the numeric field kind declared in a Matrix Market header.
type Kind int

const (
	Integer Kind = iota
	Real
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "integer"
	case Real:
		return "real"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// KindOf returns the field kind matching the element type T.
func KindOf[T sparse.Element]() Kind {
	var zero T
	switch reflect.TypeOf(zero).Kind() {
	case reflect.Float32, reflect.Float64:
		return Real
	default:
		return Integer
	}
}

// Read reads a Matrix Market coordinate stream into a triplet matrix.
// Integer and real fields are converted into the element type T.
func Read[T sparse.Element](r io.Reader) (*sparse.TriMat[T], error) {
	lr := &lineReader{scanner: bufio.NewScanner(r)}
	header, ok := lr.next()
	if !ok {
		return nil, lr.failed("missing header")
	}
	kind, err := parseHeader(header)
	if err != nil {
		return nil, err
	}

	// Comment and blank lines may appear between the header
	// and the dimension line.
	var dimLine string
	for {
		line, ok := lr.next()
		if !ok {
			return nil, lr.failed("missing dimension line")
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "%") {
			continue
		}
		dimLine = trimmed
		break
	}
	fields := strings.Fields(dimLine)
	if len(fields) != 3 {
		return nil, errors.Wrapf(ErrBadMatrixMarketFile,
			"line %d: dimension line has %d fields, want 3",
			lr.line, len(fields))
	}
	rows, err := parseCount(fields[0], lr.line)
	if err != nil {
		return nil, err
	}
	cols, err := parseCount(fields[1], lr.line)
	if err != nil {
		return nil, err
	}
	entries, err := parseCount(fields[2], lr.line)
	if err != nil {
		return nil, err
	}

	tri := sparse.NewTriMat[T](rows, cols)
	tri.Reserve(entries)
	for n := 0; n < entries; n++ {
		// Blank lines between data lines are skippable.
		var line string
		for {
			l, ok := lr.next()
			if !ok {
				return nil, lr.failed(fmt.Sprintf(
					"%d of %d entries read", n, entries))
			}
			if strings.TrimSpace(l) != "" {
				line = l
				break
			}
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, errors.Wrapf(ErrBadMatrixMarketFile,
				"line %d: entry has %d fields, want 3", lr.line, len(fields))
		}
		row, err := parseIndex(fields[0], lr.line)
		if err != nil {
			return nil, err
		}
		col, err := parseIndex(fields[1], lr.line)
		if err != nil {
			return nil, err
		}
		var value T
		switch kind {
		case Integer:
			v, err := strconv.ParseInt(fields[2], 10, 64)
			if err != nil {
				return nil, errors.Wrapf(ErrBadMatrixMarketFile,
					"line %d: bad integer value %q", lr.line, fields[2])
			}
			value = T(v)
		case Real:
			v, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, errors.Wrapf(ErrBadMatrixMarketFile,
					"line %d: bad real value %q", lr.line, fields[2])
			}
			value = T(v)
		}
		if err := tri.Add(row, col, value); err != nil {
			return nil, errors.Wrapf(err, "line %d", lr.line)
		}
	}
	return tri, nil
}

// Write writes the matrix as a Matrix Market coordinate stream,
// with the field kind taken from the element type T.
func Write[T sparse.Element](w io.Writer, m *sparse.Matrix[T]) error {
	bw := bufio.NewWriter(w)
	kind := KindOf[T]()
	rows, cols := m.Dims()
	_, err := fmt.Fprintf(bw,
		"%%%%MatrixMarket matrix coordinate %s general\n", kind)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(bw, "% written by sparsekit"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(bw, "%d %d %d\n", rows, cols, m.NNZ()); err != nil {
		return err
	}
	for outer := 0; outer < m.OuterDim(); outer++ {
		v := m.OuterView(outer)
		for k, inner := range v.Indices {
			row, col := outer, inner
			if m.IsCSC() {
				row, col = inner, outer
			}
			_, err := fmt.Fprintf(bw, "%d %d %s\n",
				row+1, col+1, formatValue(v.Data[k], kind))
			if err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// ReadFile reads a Matrix Market file into a triplet matrix.
func ReadFile[T sparse.Element](path string) (*sparse.TriMat[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open matrix market file")
	}
	defer func() { _ = f.Close() }()
	tri, err := Read[T](f)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return tri, nil
}

// WriteFile writes the matrix into a Matrix Market file.
func WriteFile[T sparse.Element](path string, m *sparse.Matrix[T]) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "cannot create matrix market file")
	}
	err = Write(f, m)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return errors.Wrapf(err, "%s", path)
	}
	return nil
}

func parseHeader(line string) (Kind, error) {
	// All header tags are case-insensitive.
	header := strings.ToLower(line)
	if !strings.HasPrefix(header, "%%matrixmarket matrix coordinate") {
		return 0, errors.Wrapf(ErrBadMatrixMarketFile, "bad header %q", line)
	}
	if !strings.Contains(header, "general") {
		return 0, errors.Wrapf(ErrUnsupportedFormat,
			"header %q: only the general qualifier is supported", line)
	}
	switch {
	case strings.Contains(header, "real"):
		return Real, nil
	case strings.Contains(header, "integer"):
		return Integer, nil
	}
	return 0, errors.Wrapf(ErrUnsupportedFormat,
		"header %q: only integer and real fields are supported", line)
}

func parseCount(field string, line int) (int, error) {
	n, err := strconv.Atoi(field)
	if err != nil || n < 0 {
		return 0, errors.Wrapf(ErrBadMatrixMarketFile,
			"line %d: bad count %q", line, field)
	}
	return n, nil
}

// parseIndex parses a 1-based index field into a 0-based index.
func parseIndex(field string, line int) (int, error) {
	n, err := strconv.Atoi(field)
	if err != nil || n < 1 {
		return 0, errors.Wrapf(ErrBadMatrixMarketFile,
			"line %d: bad index %q", line, field)
	}
	return n - 1, nil
}

func formatValue[T sparse.Element](v T, kind Kind) string {
	if kind == Integer {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(float64(v), 'g', -1, 64)
}

type lineReader struct {
	scanner *bufio.Scanner
	line    int
}

func (r *lineReader) next() (string, bool) {
	if !r.scanner.Scan() {
		return "", false
	}
	r.line++
	return r.scanner.Text(), true
}

// failed turns an exhausted scanner into an error:
// the underlying read error if there is one, a truncation error if not.
func (r *lineReader) failed(msg string) error {
	if err := r.scanner.Err(); err != nil {
		return errors.Wrap(err, msg)
	}
	return errors.Wrapf(ErrBadMatrixMarketFile,
		"%s: unexpected end of file", msg)
}
