package dataset

import "github.com/halvard/apostat/matrix"

// Axis selects the stacking/splitting direction.
type Axis byte

const (
	AxisRows Axis = 'r'
	AxisCols Axis = 'c'
)

// Stack concatenates a and b along axis. If either carries a matrix, both
// must: row-stacking then requires matching column counts and
// column-stacking matching row counts. The More chain is never carried over, matching
// spec.md §3.1's "`more` ignored" rule for stack.
func Stack(a, b *Dataset, axis Axis) (*Dataset, error) {
	switch axis {
	case AxisRows:
		return stackRows(a, b)
	case AxisCols:
		return stackCols(a, b)
	default:
		return nil, ErrInput
	}
}

func stackRows(a, b *Dataset) (*Dataset, error) {
	out := &Dataset{Names: a.Names.Clone()}
	out.Vector = append(append([]float64(nil), a.Vector...), b.Vector...)
	out.Weights = append(append([]float64(nil), a.Weights...), b.Weights...)

	if a.Matrix != nil || b.Matrix != nil {
		if a.Matrix == nil || b.Matrix == nil || a.Matrix.Cols() != b.Matrix.Cols() {
			return nil, ErrDimension
		}
		m, err := matrix.NewDense(a.Matrix.Rows()+b.Matrix.Rows(), a.Matrix.Cols())
		if err != nil {
			return nil, err
		}
		if err := copyBlock(m, a.Matrix, 0, 0); err != nil {
			return nil, err
		}
		if err := copyBlock(m, b.Matrix, a.Matrix.Rows(), 0); err != nil {
			return nil, err
		}
		out.Matrix = m
	}

	if a.Text != nil || b.Text != nil {
		out.Text = append(append([][]string(nil), a.Text...), b.Text...)
	}
	return out, nil
}

func stackCols(a, b *Dataset) (*Dataset, error) {
	out := &Dataset{Names: a.Names.Clone(), Vector: a.Vector, Weights: a.Weights}

	if a.Matrix != nil || b.Matrix != nil {
		if a.Matrix == nil || b.Matrix == nil || a.Matrix.Rows() != b.Matrix.Rows() {
			return nil, ErrDimension
		}
		m, err := matrix.NewDense(a.Matrix.Rows(), a.Matrix.Cols()+b.Matrix.Cols())
		if err != nil {
			return nil, err
		}
		if err := copyBlock(m, a.Matrix, 0, 0); err != nil {
			return nil, err
		}
		if err := copyBlock(m, b.Matrix, 0, a.Matrix.Cols()); err != nil {
			return nil, err
		}
		out.Matrix = m
	}

	if a.Text != nil && b.Text != nil && len(a.Text) == len(b.Text) {
		out.Text = make([][]string, len(a.Text))
		for i := range a.Text {
			out.Text[i] = append(append([]string(nil), a.Text[i]...), b.Text[i]...)
		}
	}
	return out, nil
}

// copyBlock writes src into dst starting at (r0, c0).
func copyBlock(dst, src *matrix.Dense, r0, c0 int) error {
	for i := 0; i < src.Rows(); i++ {
		for j := 0; j < src.Cols(); j++ {
			v, err := src.At(i, j)
			if err != nil {
				return err
			}
			if err := dst.Set(r0+i, c0+j, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// Split is the inverse of Stack for a single split point: it returns the
// rows/columns before `at` and the rows/columns from `at` onward. Either
// half may be empty (zero rows/cols) if at is 0 or equals the full extent.
func Split(d *Dataset, at int, axis Axis) (*Dataset, *Dataset, error) {
	switch axis {
	case AxisRows:
		return splitRows(d, at)
	case AxisCols:
		return splitCols(d, at)
	default:
		return nil, nil, ErrInput
	}
}

func splitRows(d *Dataset, at int) (*Dataset, *Dataset, error) {
	total := d.rows()
	if at < 0 || at > total {
		return nil, nil, ErrInput
	}
	left := &Dataset{Names: d.Names.Clone()}
	right := &Dataset{Names: d.Names.Clone()}

	if d.Vector != nil {
		left.Vector = append([]float64(nil), d.Vector[:min(at, len(d.Vector))]...)
		right.Vector = append([]float64(nil), d.Vector[min(at, len(d.Vector)):]...)
	}
	if d.Weights != nil {
		left.Weights = append([]float64(nil), d.Weights[:min(at, len(d.Weights))]...)
		right.Weights = append([]float64(nil), d.Weights[min(at, len(d.Weights)):]...)
	}
	if d.Matrix != nil {
		lm, err := d.Matrix.Induced(rangeIdx(0, at), rangeIdx(0, d.Matrix.Cols()))
		if err != nil {
			return nil, nil, err
		}
		rm, err := d.Matrix.Induced(rangeIdx(at, d.Matrix.Rows()), rangeIdx(0, d.Matrix.Cols()))
		if err != nil {
			return nil, nil, err
		}
		left.Matrix, right.Matrix = lm, rm
	}
	if d.Text != nil {
		left.Text = append([][]string(nil), d.Text[:min(at, len(d.Text))]...)
		right.Text = append([][]string(nil), d.Text[min(at, len(d.Text)):]...)
	}
	return left, right, nil
}

func splitCols(d *Dataset, at int) (*Dataset, *Dataset, error) {
	if d.Matrix == nil {
		return nil, nil, ErrMissingPart
	}
	if at < 0 || at > d.Matrix.Cols() {
		return nil, nil, ErrInput
	}
	left := &Dataset{Names: d.Names.Clone(), Vector: d.Vector, Weights: d.Weights}
	right := &Dataset{Names: d.Names.Clone(), Vector: d.Vector, Weights: d.Weights}

	lm, err := d.Matrix.Induced(rangeIdx(0, d.Matrix.Rows()), rangeIdx(0, at))
	if err != nil {
		return nil, nil, err
	}
	rm, err := d.Matrix.Induced(rangeIdx(0, d.Matrix.Rows()), rangeIdx(at, d.Matrix.Cols()))
	if err != nil {
		return nil, nil, err
	}
	left.Matrix, right.Matrix = lm, rm
	return left, right, nil
}

func rangeIdx(from, to int) []int {
	out := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, i)
	}
	return out
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// RmColumns drops every matrix column j where mask[j] is true, adjusting
// column names to match.
func RmColumns(d *Dataset, mask []bool) (*Dataset, error) {
	if d.Matrix == nil {
		return nil, ErrMissingPart
	}
	if len(mask) != d.Matrix.Cols() {
		return nil, ErrInput
	}
	keep := make([]int, 0, d.Matrix.Cols())
	for j, drop := range mask {
		if !drop {
			keep = append(keep, j)
		}
	}
	m, err := d.Matrix.Induced(rangeIdx(0, d.Matrix.Rows()), keep)
	if err != nil {
		return nil, err
	}
	out := &Dataset{Matrix: m, Vector: d.Vector, Weights: d.Weights, Text: d.Text}
	out.Names = d.Names.Clone()
	if out.Names != nil && len(out.Names.ColNames) > 0 {
		names := make([]string, 0, len(keep))
		padded := paddedNames(out.Names.ColNames, d.Matrix.Cols())
		for _, j := range keep {
			names = append(names, padded[j])
		}
		out.Names.ColNames = names
	}
	return out, nil
}

func paddedNames(list []string, n int) []string {
	if len(list) >= n {
		return list
	}
	out := make([]string, n)
	copy(out, list)
	return out
}

// RmRows drops every row for which pred returns true. pred receives the
// row index and a one-row view dataset (spec.md's "predicate invoked on a
// one-row subview").
func RmRows(d *Dataset, pred func(i int, row *Dataset) bool) (*Dataset, error) {
	total := d.rows()
	keepRows := make([]int, 0, total)
	for i := 0; i < total; i++ {
		row := rowView(d, i)
		if !pred(i, row) {
			keepRows = append(keepRows, i)
		}
	}

	out := &Dataset{Names: d.Names.Clone()}
	if d.Vector != nil {
		v := make([]float64, 0, len(keepRows))
		for _, i := range keepRows {
			if i < len(d.Vector) {
				v = append(v, d.Vector[i])
			}
		}
		out.Vector = v
	}
	if d.Weights != nil {
		w := make([]float64, 0, len(keepRows))
		for _, i := range keepRows {
			if i < len(d.Weights) {
				w = append(w, d.Weights[i])
			}
		}
		out.Weights = w
	}
	if d.Matrix != nil {
		m, err := d.Matrix.Induced(keepRows, rangeIdx(0, d.Matrix.Cols()))
		if err != nil {
			return nil, err
		}
		out.Matrix = m
	}
	if d.Text != nil {
		t := make([][]string, 0, len(keepRows))
		for _, i := range keepRows {
			if i < len(d.Text) {
				t = append(t, d.Text[i])
			}
		}
		out.Text = t
	}
	return out, nil
}

func rowView(d *Dataset, i int) *Dataset {
	row := &Dataset{}
	if d.Vector != nil && i < len(d.Vector) {
		row.Vector = []float64{d.Vector[i]}
	}
	if d.Matrix != nil && i < d.Matrix.Rows() {
		m, _ := d.Matrix.Induced([]int{i}, rangeIdx(0, d.Matrix.Cols()))
		row.Matrix = m
	}
	if d.Text != nil && i < len(d.Text) {
		row.Text = [][]string{d.Text[i]}
	}
	return row
}

// Transpose swaps the matrix's and text grid's rows and columns; row and
// column names swap roles accordingly. Vector and weights are preserved
// unchanged, since neither has a meaningful transpose.
func Transpose(d *Dataset) (*Dataset, error) {
	out := &Dataset{Vector: d.Vector, Weights: d.Weights}
	if d.Matrix != nil {
		t, err := matrix.Transpose(d.Matrix)
		if err != nil {
			return nil, err
		}
		out.Matrix = t.(*matrix.Dense)
	}
	if d.Text != nil {
		rows := len(d.Text)
		cols := 0
		if rows > 0 {
			cols = len(d.Text[0])
		}
		tt := make([][]string, cols)
		for j := 0; j < cols; j++ {
			tt[j] = make([]string, rows)
			for i := 0; i < rows; i++ {
				tt[j][i] = d.Text[i][j]
			}
		}
		out.Text = tt
	}
	if d.Names != nil {
		swapped := d.Names.Clone()
		swapped.RowNames, swapped.ColNames = swapped.ColNames, swapped.RowNames
		out.Names = swapped
	}
	return out, nil
}
