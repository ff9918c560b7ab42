// Package matrix: Dense is the concrete, row-major container behind the
// Matrix interface, storing elements in a flat slice for cache friendliness.
// Element (i, j) lives at flat index i*c + j. The buffer is exclusively
// owned by the Dense value that allocated it; the only sanctioned aliasing
// is an intentional view created through WrapDense.

package matrix

import (
	"fmt"
	"io"
	"math/rand"
)

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// A nil data slice marks a released (dead) matrix; every operation detects
// that state and reports ErrReleased instead of touching freed storage.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c; nil once released
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Go's allocator zero-fills, so this single constructor covers both the
// "uninitialized" and "zeroed" construction of the classic C interface.
//
// Errors: ErrBadShape when rows <= 0 or cols <= 0.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseRepeated creates an r×c Dense with every cell set to x.
//
// Errors: ErrBadShape when rows <= 0 or cols <= 0.
// Complexity: O(r*c).
func NewDenseRepeated(rows, cols int, x float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	// Fill cannot fail on a freshly allocated matrix.
	_ = m.Fill(x)

	return m, nil
}

// NewDenseUniform creates an r×c Dense with every cell drawn uniformly from
// [lo, hi): cell = lo + u*(hi-lo) with u = rng.Float64() in [0, 1).
// The pseudo-random source is explicit so callers control seeding and
// reproducibility; there is no hidden process-global state.
//
// Errors: ErrBadShape, ErrInvalidInterval (hi <= lo), ErrNilRand.
// Complexity: O(r*c).
func NewDenseUniform(rows, cols int, lo, hi float64, rng *rand.Rand) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if err = m.FillUniform(lo, hi, rng); err != nil {
		return nil, err
	}

	return m, nil
}

// WrapDense builds an r×c Dense header over a caller-owned slice without
// copying. Mutations through the matrix are visible through the original
// slice and vice versa. The caller keeps ownership of the memory: Release
// on a wrapped matrix only detaches the header, and the wrapped slice must
// not be handed to two live matrices at once.
//
// Errors: ErrBadShape when rows <= 0, cols <= 0, or len(data) != rows*cols.
// Complexity: O(1).
func WrapDense(rows, cols int, data []float64) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	if len(data) != rows*cols {
		return nil, ErrBadShape
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c
}

// Len returns the total number of elements (Rows * Cols). The shape
// invariant len(buffer) == Len() holds through every operation.
// Complexity: O(1).
func (m *Dense) Len() int {
	return m.r * m.c
}

// indexOf computes the flat index for (row, col) after liveness and bounds
// checks. Returns the sentinel without an op tag; exported callers wrap.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if m.data == nil {
		return 0, ErrReleased
	}
	if row < 0 || row >= m.r {
		return 0, fmt.Errorf("At(%d,%d): %w", row, col, ErrOutOfRange)
	}
	if col < 0 || col >= m.c {
		return 0, fmt.Errorf("At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
//
// Errors: ErrOutOfRange on bad indices, ErrReleased on a dead buffer.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
//
// Errors: ErrOutOfRange on bad indices, ErrReleased on a dead buffer.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix. Cloning a released matrix
// yields another released matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() Matrix {
	if m.data == nil {
		return &Dense{}
	}
	copyData := make([]float64, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// Release drops the backing buffer and resets the shape to 0×0, leaving the
// handle in a detectable dead state: any further operation, including a
// second Release, reports ErrReleased rather than silently reusing freed
// storage. For wrapped matrices this only detaches the header; the caller
// retains the underlying slice.
//
// Errors: ErrNilMatrix, ErrReleased (double release).
// Complexity: O(1).
func (m *Dense) Release() error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.data == nil {
		return ErrReleased
	}
	m.data = nil
	m.r, m.c = 0, 0

	return nil
}

// Fill replaces every cell with v.
//
// Errors: ErrNilMatrix, ErrReleased.
// Complexity: O(r*c).
func (m *Dense) Fill(v float64) error {
	if err := ValidateLive(m); err != nil {
		return matrixErrorf(opFill, err)
	}
	for i := range m.data {
		m.data[i] = v
	}

	return nil
}

// FillUniform replaces every cell with a uniform draw from [lo, hi):
// cell = lo + u*(hi-lo), u = rng.Float64() in [0, 1). Cells therefore
// satisfy lo <= cell < hi exactly (half-open policy).
//
// Errors: ErrNilMatrix, ErrReleased, ErrInvalidInterval (hi <= lo), ErrNilRand.
// Complexity: O(r*c).
func (m *Dense) FillUniform(lo, hi float64, rng *rand.Rand) error {
	if err := ValidateLive(m); err != nil {
		return matrixErrorf(opFill, err)
	}
	if err := ValidateInterval(lo, hi); err != nil {
		return matrixErrorf(opFill, err)
	}
	if err := ValidateRand(rng); err != nil {
		return matrixErrorf(opFill, err)
	}

	span := hi - lo // interpolation width, positive by validation
	for i := range m.data {
		m.data[i] = lo + rng.Float64()*span
	}

	return nil
}

// Dump writes the matrix to sink as human-readable fixed-point text: each
// row on its own line, cells separated (and trailed) by a single space.
// This is a debug/inspection aid, not a wire format.
//
// Errors: ErrNilMatrix, ErrReleased, plus any sink write error (wrapped).
// Complexity: O(r*c).
func (m *Dense) Dump(sink io.Writer) error {
	if err := ValidateLive(m); err != nil {
		return matrixErrorf(opDump, err)
	}

	var row, col int
	var err error
	for row = 0; row < m.r; row++ {
		for col = 0; col < m.c; col++ {
			if _, err = fmt.Fprintf(sink, "%f ", m.data[row*m.c+col]); err != nil {
				return matrixErrorf(opDump, err)
			}
		}
		if _, err = fmt.Fprintln(sink); err != nil {
			return matrixErrorf(opDump, err)
		}
	}

	return nil
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	if m.data == nil {
		return "[released]"
	}
	var s string
	var i, j int
	for i = 0; i < m.r; i++ {
		s += "["
		for j = 0; j < m.c; j++ {
			s += fmt.Sprintf("%g", m.data[i*m.c+j])
			if j < m.c-1 {
				s += ", "
			}
		}
		s += "]\n"
	}

	return s
}
