package dataset

import (
	"math"

	"github.com/halvard/apostat/internal/xlog"
	"github.com/halvard/apostat/matrix"
	"github.com/halvard/apostat/naming"
)

// emptyText is the shared sentinel for a "blank" text cell (spec.md §3.1:
// "text cells never hold null pointers; a shared sentinel empty string is
// used for blank"). Go strings have no null state, so this constant exists
// purely to document and name the convention call sites rely on.
const emptyText = ""

// Dataset is the tabular container: an optional vector, an optional
// matrix, an optional text grid, optional row weights, a name object, and
// a pointer to the next page in the `more` chain.
type Dataset struct {
	Vector  []float64
	Matrix  *matrix.Dense
	Text    [][]string
	Weights []float64
	Names   *naming.Names

	More  *Dataset
	Error byte // zero (StatusClean) means no error recorded
}

// New returns an empty, clean Dataset with the given title.
func New(title string) *Dataset {
	return &Dataset{Names: naming.New(title)}
}

// rows returns the dataset's effective row count: the longest of vector
// length, matrix row count, and text row count.
func (d *Dataset) rows() int {
	r := len(d.Vector)
	if d.Matrix != nil && d.Matrix.Rows() > r {
		r = d.Matrix.Rows()
	}
	if len(d.Text) > r {
		r = len(d.Text)
	}
	return r
}

// Rows is the exported form of rows, used by callers outside the package
// (sorting, stacking, summarizing) that need the effective row count.
func (d *Dataset) Rows() int { return d.rows() }

// Get reads element (r, c). c == -1 reads the vector at r; otherwise it
// reads the matrix at (r, c). Out-of-bounds access returns NaN and logs a
// warning rather than panicking or erroring, per spec.md §3.1.
func (d *Dataset) Get(r, c int) float64 {
	if c == -1 {
		if r < 0 || r >= len(d.Vector) {
			xlog.Logger().Warn().Int("row", r).Msg("dataset: vector index out of bounds")
			return math.NaN()
		}
		return d.Vector[r]
	}
	if d.Matrix == nil {
		xlog.Logger().Warn().Msg("dataset: Get on nil matrix")
		return math.NaN()
	}
	v, err := d.Matrix.At(r, c)
	if err != nil {
		xlog.Logger().Warn().Int("row", r).Int("col", c).Msg("dataset: matrix index out of bounds")
		return math.NaN()
	}
	return v
}

// GetByName reads a cell selected by row-name and/or column-name instead of
// numeric indices (case-insensitive, per naming.Names). A row or column
// name with no match behaves like an out-of-bounds Get: NaN plus a warning.
func (d *Dataset) GetByName(rowName, colName string) float64 {
	r, c := -1, -1
	if d.Names != nil {
		if rowName != "" {
			r = d.Names.RowIndex(rowName)
		}
		if colName != "" {
			c = d.Names.ColIndex(colName)
		}
	}
	if r == -1 && rowName != "" {
		xlog.Logger().Warn().Str("row_name", rowName).Msg("dataset: row name not found")
		return math.NaN()
	}
	if c == -1 && colName != "" {
		xlog.Logger().Warn().Str("col_name", colName).Msg("dataset: column name not found")
		return math.NaN()
	}
	return d.Get(r, c)
}

// Set mirrors Get; it returns ErrOutOfBounds on bad indices and
// ErrMissingPart when c != -1 but the matrix is nil.
func (d *Dataset) Set(r, c int, v float64) error {
	if c == -1 {
		if r < 0 || r >= len(d.Vector) {
			return ErrOutOfBounds
		}
		d.Vector[r] = v
		return nil
	}
	if d.Matrix == nil {
		return ErrMissingPart
	}
	if err := d.Matrix.Set(r, c, v); err != nil {
		return ErrOutOfBounds
	}
	return nil
}

// Copy performs a deep copy, including every page reachable via More. A
// cyclic chain is detected and reported via ErrCycle rather than recursing
// forever.
func (d *Dataset) Copy() (*Dataset, error) {
	return d.copyChain(make(map[*Dataset]bool))
}

func (d *Dataset) copyChain(seen map[*Dataset]bool) (*Dataset, error) {
	if d == nil {
		return nil, nil
	}
	if seen[d] {
		return &Dataset{Error: StatusCycle}, ErrCycle
	}
	seen[d] = true

	cp := &Dataset{
		Vector:  append([]float64(nil), d.Vector...),
		Weights: append([]float64(nil), d.Weights...),
		Names:   d.Names.Clone(),
		Error:   d.Error,
	}
	if d.Matrix != nil {
		cp.Matrix = d.Matrix.Clone().(*matrix.Dense)
	}
	if d.Text != nil {
		cp.Text = make([][]string, len(d.Text))
		for i, row := range d.Text {
			cp.Text[i] = append([]string(nil), row...)
		}
	}
	if d.More != nil {
		more, err := d.More.copyChain(seen)
		if err != nil {
			cp.Error = StatusCycle
			return cp, err
		}
		cp.More = more
	}
	return cp, nil
}
