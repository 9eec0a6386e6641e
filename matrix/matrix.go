// Package matrix: Dense is the concrete row-major float32 matrix.
// Elements live in a flat slice for cache friendliness; cell (r,c) maps to
// linear index r*cols+c. Shape is fixed at construction; cells are mutable.

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Dense is a row-major matrix of float32 values.
// rows and cols are the logical shape; data holds rows*cols elements.
type Dense struct {
	rows, cols int       // logical shape, immutable after construction
	data       []float32 // flat backing storage, length == rows*cols
}

// denseErrorf wraps an underlying sentinel with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// New creates a rows×cols Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate the flat backing slice.
// Stage 3 (Finalize): return the new Dense or ErrBadShape.
// Complexity: O(rows*cols) time and memory.
func New(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Dense{rows: rows, cols: cols, data: make([]float32, rows*cols)}, nil
}

// NewFilled creates a rows×cols Dense matrix with every cell set to value.
// Complexity: O(rows*cols) time and memory.
func NewFilled(rows, cols int, value float32) (*Dense, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	// Fill the flat store in one deterministic pass.
	for i := range m.data {
		m.data[i] = value
	}

	return m, nil
}

// NewFromData creates a rows×cols Dense matrix backed by a copy of data,
// interpreted row-major.
// Stage 1 (Validate): shape must be positive; len(data) must equal rows*cols,
// otherwise ErrDataLength.
// Stage 2 (Prepare): copy data so the caller's slice never aliases the matrix.
// Complexity: O(rows*cols) time and memory.
func NewFromData(rows, cols int, data []float32) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	if len(data) != rows*cols {
		return nil, ErrDataLength
	}
	store := make([]float32, len(data))
	copy(store, data)

	return &Dense{rows: rows, cols: cols, data: store}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.cols }

// Data returns the flat row-major backing store as a live view.
// Mutating it bypasses bounds checks; it exists so multiply kernels that have
// already validated shapes can walk memory sequentially. The length invariant
// len(Data()) == Rows()*Cols() always holds.
// Complexity: O(1).
func (m *Dense) Data() []float32 { return m.data }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.rows {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	if col < 0 || col >= m.cols {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.cols + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from the flat store.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float32, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col). No other cell is touched.
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): write into the flat store.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float32) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns the live row-major view of row r, length Cols().
// Mutations through the view are visible in the matrix.
// Complexity: O(1).
func (m *Dense) Row(r int) ([]float32, error) {
	if r < 0 || r >= m.rows {
		return nil, denseErrorf("Row", r, 0, ErrOutOfRange)
	}

	return m.data[r*m.cols : (r+1)*m.cols], nil
}

// Clone returns a deep copy; the copy shares no storage with the receiver.
// Complexity: O(rows*cols) time and memory.
func (m *Dense) Clone() *Dense {
	store := make([]float32, len(m.data))
	copy(store, m.data)

	return &Dense{rows: m.rows, cols: m.cols, data: store}
}

// Equal reports whether other has the same shape and bitwise-equal cells.
// Used by determinism tests where reassociation must not change a single bit.
// Complexity: O(rows*cols).
func (m *Dense) Equal(other *Dense) bool {
	if other == nil || m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := range m.data {
		if m.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// AllClose reports whether other has the same shape and every cell agrees
// within eps, absolutely or relative to the larger magnitude. This is the
// closeness predicate used when comparing reassociated summation orders.
// Complexity: O(rows*cols).
func (m *Dense) AllClose(other *Dense, eps float64) bool {
	if other == nil || m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := range m.data {
		x, y := float64(m.data[i]), float64(other.data[i])
		diff := math.Abs(x - y)
		if diff <= eps {
			continue
		}
		if diff <= eps*math.Max(math.Abs(x), math.Abs(y)) {
			continue
		}

		return false
	}

	return true
}

// String implements fmt.Stringer for easy debugging: one bracketed line per row.
// Complexity: O(rows*cols) for string construction.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		sb.WriteString("[")
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.cols+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
