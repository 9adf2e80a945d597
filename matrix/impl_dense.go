// Dense is the flat, row-major storage backing every matrix-valued slot
// in the repo: dataset.Dataset's Matrix field, model.Model's Parameters
// and Info pages, and every intermediate result the numeric kernels in
// this package allocate. A single contiguous []float64 underlies each
// Dense so that dataset rows can be packed/unpacked, centered, and fed
// into mle/mcmc's parameter vectors without per-cell interface dispatch.
package matrix

import (
	"fmt"
	"math"
)

// Dense is the concrete row-major Matrix. rows and cols describe the
// logical shape; cells holds rows*cols elements in row-major order.
// finite, when true, makes Set reject non-finite values with ErrNaNInf;
// its default comes from DefaultValidateNaNInf in options.go.
type Dense struct {
	rows, cols int
	cells      []float64
	finite     bool
}

var _ Matrix = (*Dense)(nil)

// NewDense allocates a rows×cols Dense of zeros. rows and cols must both
// be strictly positive, or ErrInvalidDimensions is returned.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Dense{
		rows:   rows,
		cols:   cols,
		cells:  make([]float64, rows*cols),
		finite: DefaultValidateNaNInf,
	}, nil
}

// newDenseWithPolicy allocates a Dense with an explicit finite-value
// policy, for callers (tests, and dataset sanitization paths) that need
// to override the package default.
func newDenseWithPolicy(rows, cols int, finite bool) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	m.finite = finite
	return m, nil
}

// NewPreparedDense allocates a rows×cols Dense of zeros with its
// finite-value policy resolved from opts, for callers (tests, and
// dataset ingestion paths that need WithNoValidateNaNInf) that must pick
// the policy at construction time rather than accept the package default.
func NewPreparedDense(rows, cols int, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	return newDenseWithPolicy(rows, cols, o.validateNaNInf)
}

// Rows reports the row count.
func (m *Dense) Rows() int { return m.rows }

// Cols reports the column count.
func (m *Dense) Cols() int { return m.cols }

// Shape reports (Rows(), Cols()) in one call; used by callers (dataset's
// stacking and packing code) that need both dimensions at once.
func (m *Dense) Shape() (rows, cols int) { return m.rows, m.cols }

// offset maps a (row, col) pair to its position in cells, or reports
// ErrOutOfRange if either index falls outside the matrix.
func (m *Dense) offset(row, col int) (int, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, ErrOutOfRange
	}
	return row*m.cols + col, nil
}

// At reads the element at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.offset(row, col)
	if err != nil {
		return 0, wrapIndexErr("Dense.At", row, col, err)
	}
	return m.cells[off], nil
}

// Set writes v at (row, col). If the Dense enforces a finite-value
// policy, NaN/Inf are rejected with ErrNaNInf rather than stored.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.offset(row, col)
	if err != nil {
		return wrapIndexErr("Dense.Set", row, col, err)
	}
	if m.finite && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return wrapIndexErr("Dense.Set", row, col, ErrNaNInf)
	}
	m.cells[off] = v
	return nil
}

// Fill overwrites the backing storage in row-major order, bypassing Set's
// finite-value policy entirely. It exists for the sanitizer test fixtures
// (ReplaceInfNaN, Clip) that need a Dense seeded with NaN/Inf regardless
// of the package default, since Set itself would reject them.
func (m *Dense) Fill(vals []float64) error {
	if len(vals) != len(m.cells) {
		return wrapErr("Dense.Fill", fmt.Errorf("got %d values, want %d: %w", len(vals), len(m.cells), ErrBadShape))
	}
	copy(m.cells, vals)
	return nil
}

// Clone deep-copies the matrix, including its finite-value policy.
func (m *Dense) Clone() Matrix {
	cells := make([]float64, len(m.cells))
	copy(cells, m.cells)
	return &Dense{rows: m.rows, cols: m.cols, cells: cells, finite: m.finite}
}

// String renders the matrix one bracketed row per line, for debug
// logging; it is not used on any hot path.
func (m *Dense) String() string {
	out := ""
	for i := 0; i < m.rows; i++ {
		out += "["
		rowBase := i * m.cols
		for j := 0; j < m.cols; j++ {
			out += fmt.Sprintf("%g", m.cells[rowBase+j])
			if j+1 < m.cols {
				out += ", "
			}
		}
		out += "]\n"
	}
	return out
}

// View returns a non-copying window onto the rows×cols block starting at
// (r0, c0); writes through the view mutate the base Dense. It exists for
// code paths (block-wise MCMC proposals, dataset column slicing) that
// need to address a sub-region without paying for a full Induced copy.
func (m *Dense) View(r0, c0, rows, cols int) (*MatrixView, error) {
	if r0 < 0 || c0 < 0 || rows < 0 || cols < 0 || r0+rows > m.rows || c0+cols > m.cols {
		return nil, fmt.Errorf("Dense.View(%d,%d,%d,%d): %w", r0, c0, rows, cols, ErrBadShape)
	}
	return &MatrixView{base: m, r0: r0, c0: c0, rows: rows, cols: cols}, nil
}

// Induced builds a new, independently-owned Dense by gathering the given
// row and column index sets out of m; indices may repeat. Used wherever
// a caller needs a permuted or resampled copy (dataset row reordering,
// bootstrap resampling) rather than a live view.
func (m *Dense) Induced(rowIdx, colIdx []int) (*Dense, error) {
	rp, cp := len(rowIdx), len(colIdx)
	if rp == 0 || cp == 0 {
		return &Dense{rows: rp, cols: cp, cells: make([]float64, 0), finite: m.finite}, nil
	}

	res, err := NewDense(rp, cp)
	if err != nil {
		return nil, err
	}
	for i, ri := range rowIdx {
		if ri < 0 || ri >= m.rows {
			return nil, fmt.Errorf("Dense.Induced: row index %d: %w", ri, ErrOutOfRange)
		}
		srcBase := ri * m.cols
		dstBase := i * cp
		for j, cj := range colIdx {
			if cj < 0 || cj >= m.cols {
				return nil, fmt.Errorf("Dense.Induced: col index %d: %w", cj, ErrOutOfRange)
			}
			res.cells[dstBase+j] = m.cells[srcBase+cj]
		}
	}
	return res, nil
}

// MatrixView is a non-owning rows×cols window into a base Dense's
// storage. It deliberately does not implement Matrix: algorithms that
// accept a Matrix expect to own their input, and a view silently
// aliasing another matrix's cells would violate that.
type MatrixView struct {
	base       *Dense
	r0, c0     int
	rows, cols int
}

// Rows reports the view's row count.
func (v *MatrixView) Rows() int { return v.rows }

// Cols reports the view's column count.
func (v *MatrixView) Cols() int { return v.cols }

// At reads a value through the view, in view-local coordinates.
func (v *MatrixView) At(i, j int) (float64, error) {
	if i < 0 || i >= v.rows || j < 0 || j >= v.cols {
		return 0, wrapIndexErr("MatrixView.At", i, j, ErrOutOfRange)
	}
	return v.base.cells[(v.r0+i)*v.base.cols+(v.c0+j)], nil
}

// Set writes a value through the view, honoring the base matrix's
// finite-value policy.
func (v *MatrixView) Set(i, j int, val float64) error {
	if i < 0 || i >= v.rows || j < 0 || j >= v.cols {
		return wrapIndexErr("MatrixView.Set", i, j, ErrOutOfRange)
	}
	if v.base.finite && (math.IsNaN(val) || math.IsInf(val, 0)) {
		return wrapIndexErr("MatrixView.Set", i, j, ErrNaNInf)
	}
	v.base.cells[(v.r0+i)*v.base.cols+(v.c0+j)] = val
	return nil
}
