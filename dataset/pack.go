package dataset

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/halvard/apostat/matrix"
	"github.com/halvard/apostat/naming"
)

// Pack flattens a dataset into a single vector: the vector part, then the
// matrix in row-major order, then the weights. When allPages is true, every
// page reachable via More is appended in chain order; a cyclic chain stops
// packing at the point of revisit rather than looping forever.
func Pack(d *Dataset, allPages bool) []float64 {
	var out []float64
	seen := make(map[*Dataset]bool)
	for page := d; page != nil; page = page.More {
		if seen[page] {
			break
		}
		seen[page] = true

		out = append(out, page.Vector...)
		if page.Matrix != nil {
			for i := 0; i < page.Matrix.Rows(); i++ {
				for j := 0; j < page.Matrix.Cols(); j++ {
					v, _ := page.Matrix.At(i, j)
					out = append(out, v)
				}
			}
		}
		out = append(out, page.Weights...)

		if !allPages {
			break
		}
	}
	return out
}

// Unpack is Pack's inverse: it fills d's vector, matrix (row-major) and
// weights from v in the same order Pack emits them, across the same page
// chain when allPages is true. v must contain exactly the number of values
// the target shapes require, or ErrDimension is returned and d is left
// unmodified.
func Unpack(v []float64, d *Dataset, allPages bool) error {
	need := 0
	pages := []*Dataset{}
	seen := make(map[*Dataset]bool)
	for page := d; page != nil; page = page.More {
		if seen[page] {
			break
		}
		seen[page] = true
		pages = append(pages, page)
		need += len(page.Vector) + len(page.Weights)
		if page.Matrix != nil {
			need += page.Matrix.Rows() * page.Matrix.Cols()
		}
		if !allPages {
			break
		}
	}
	if need != len(v) {
		return ErrDimension
	}

	pos := 0
	for _, page := range pages {
		for i := range page.Vector {
			page.Vector[i] = v[pos]
			pos++
		}
		if page.Matrix != nil {
			for i := 0; i < page.Matrix.Rows(); i++ {
				for j := 0; j < page.Matrix.Cols(); j++ {
					if err := page.Matrix.Set(i, j, v[pos]); err != nil {
						return err
					}
					pos++
				}
			}
		}
		for i := range page.Weights {
			page.Weights[i] = v[pos]
			pos++
		}
	}
	return nil
}

// SortInPlace reorders every row-aligned part (vector, matrix rows, text
// rows, weights, row names) by the values in column col, where col == -1
// sorts by the vector instead of a matrix column. The sort is stable;
// ties keep their original relative order.
func SortInPlace(d *Dataset, col int, ascending bool) error {
	n := d.rows()
	if n == 0 {
		return nil
	}
	key := make([]float64, n)
	for i := 0; i < n; i++ {
		key[i] = d.Get(i, col)
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		if ascending {
			return key[perm[a]] < key[perm[b]]
		}
		return key[perm[a]] > key[perm[b]]
	})

	if d.Vector != nil {
		if err := applyPermFloat(d.Vector, perm); err != nil {
			return err
		}
	}
	if d.Weights != nil {
		if err := applyPermFloat(d.Weights, perm); err != nil {
			return err
		}
	}
	if d.Text != nil {
		if err := applyPermText(d.Text, perm); err != nil {
			return err
		}
	}
	if d.Matrix != nil {
		if err := applyPermMatrixRows(d.Matrix, perm); err != nil {
			return err
		}
	}
	if d.Names != nil && len(d.Names.RowNames) > 0 {
		padded := naming.Pad(d.Names.RowNames, n)
		if err := naming.ApplyPermutation(padded, perm); err != nil {
			return err
		}
		d.Names.RowNames = padded
	}
	return nil
}

// applyPermFloat reuses the cycle-following strategy naming.ApplyPermutation
// uses for name lists, so a sort touches each element exactly once.
func applyPermFloat(list []float64, perm []int) error {
	if len(list) != len(perm) {
		return ErrDimension
	}
	visited := make([]bool, len(perm))
	for start := range perm {
		if visited[start] {
			continue
		}
		cur := start
		carry := list[start]
		for {
			visited[cur] = true
			src := perm[cur]
			if src == start {
				list[cur] = carry
				break
			}
			list[cur] = list[src]
			cur = src
		}
	}
	return nil
}

func applyPermText(rows [][]string, perm []int) error {
	if len(rows) != len(perm) {
		return ErrDimension
	}
	out := make([][]string, len(rows))
	for i, p := range perm {
		out[i] = rows[p]
	}
	copy(rows, out)
	return nil
}

func applyPermMatrixRows(m *matrix.Dense, perm []int) error {
	if m.Rows() != len(perm) {
		return ErrDimension
	}
	cp := m.Clone().(*matrix.Dense)
	for i, p := range perm {
		for j := 0; j < m.Cols(); j++ {
			v, err := cp.At(p, j)
			if err != nil {
				return err
			}
			if err := m.Set(i, j, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// Summarize returns a new Dataset whose matrix has one row per statistic
// (mean, sd, variance, min, median, max) and one column per column of d's
// matrix, with row names set accordingly. Weighted moments are used when d
// carries weights.
func Summarize(d *Dataset) *Dataset {
	out := New(titleOf(d.Names) + " summary")
	if d.Matrix == nil {
		return out
	}
	cols := d.Matrix.Cols()
	rows := d.Matrix.Rows()
	m, _ := matrix.NewDense(6, cols)

	for j := 0; j < cols; j++ {
		col := make([]float64, rows)
		for i := 0; i < rows; i++ {
			col[i], _ = d.Matrix.At(i, j)
		}
		var weights []float64
		if len(d.Weights) == rows {
			weights = d.Weights
		}
		mean := stat.Mean(col, weights)
		variance := stat.Variance(col, weights)
		sd := stat.StdDev(col, weights)
		sorted := append([]float64(nil), col...)
		sort.Float64s(sorted)
		median := stat.Quantile(0.5, stat.Empirical, sorted, nil)

		m.Set(0, j, mean)
		m.Set(1, j, sd)
		m.Set(2, j, variance)
		m.Set(3, j, sorted[0])
		m.Set(4, j, median)
		m.Set(5, j, sorted[len(sorted)-1])
	}
	out.Matrix = m
	out.Names.RowNames = []string{"mean", "sd", "variance", "min", "median", "max"}
	if d.Names != nil {
		out.Names.ColNames = d.Names.ColNames
	}
	return out
}

// titleOf reads a Names title, tolerating a nil Names (an untitled dataset).
func titleOf(n *naming.Names) string {
	if n == nil {
		return ""
	}
	return n.Title
}

// rowKey renders a matrix row as a comparable string, used to detect
// duplicate rows for PmfCompress.
func rowKey(m *matrix.Dense, i int) string {
	var b strings.Builder
	for j := 0; j < m.Cols(); j++ {
		v, _ := m.At(i, j)
		fmt.Fprintf(&b, "%v|", v)
	}
	return b.String()
}

// PmfCompress collapses duplicate matrix rows into one, summing their
// weights (a uniform weight of 1 is assumed for rows with no Weights
// entry). Row order follows first occurrence; this is the dataset-level
// analogue of building an empirical PMF from a sample of draws.
func PmfCompress(d *Dataset) (*Dataset, error) {
	if d.Matrix == nil {
		return nil, ErrMissingPart
	}
	rows := d.Matrix.Rows()
	cols := d.Matrix.Cols()

	order := make([]string, 0, rows)
	weightOf := make(map[string]float64, rows)
	rowOf := make(map[string]int, rows)

	for i := 0; i < rows; i++ {
		key := rowKey(d.Matrix, i)
		w := 1.0
		if i < len(d.Weights) {
			w = d.Weights[i]
		}
		if _, ok := weightOf[key]; !ok {
			order = append(order, key)
			rowOf[key] = i
		}
		weightOf[key] += w
	}

	out := New(titleOf(d.Names) + " pmf")
	m, err := matrix.NewDense(len(order), cols)
	if err != nil {
		return nil, err
	}
	weights := make([]float64, len(order))
	for oi, key := range order {
		src := rowOf[key]
		for j := 0; j < cols; j++ {
			v, _ := d.Matrix.At(src, j)
			if err := m.Set(oi, j, v); err != nil {
				return nil, err
			}
		}
		weights[oi] = weightOf[key]
	}
	out.Matrix = m
	out.Weights = weights
	if d.Names != nil {
		out.Names.ColNames = d.Names.ColNames
	}
	return out, nil
}

// PivotLongToWide reshapes a three-column long-format dataset (row key
// column, column key column, value column, all read from d's matrix) into a
// wide grid: one row per distinct row-key value, one column per distinct
// col-key value, cell values from the value column. Cells with no matching
// long-format record are left at zero. This is the ambient addition from
// SPEC_FULL.md §1, used to prepare raking's observed-margin tables from
// tidy survey data.
func PivotLongToWide(d *Dataset, rowKeyCol, colKeyCol, valueCol int) (*Dataset, error) {
	if d.Matrix == nil {
		return nil, ErrMissingPart
	}
	rows := d.Matrix.Rows()

	rowKeys := make([]string, 0)
	rowIdx := make(map[string]int)
	colKeys := make([]string, 0)
	colIdx := make(map[string]int)

	type cell struct {
		r, c int
		v    float64
	}
	cells := make([]cell, 0, rows)

	for i := 0; i < rows; i++ {
		rv, err := d.Matrix.At(i, rowKeyCol)
		if err != nil {
			return nil, err
		}
		cv, err := d.Matrix.At(i, colKeyCol)
		if err != nil {
			return nil, err
		}
		val, err := d.Matrix.At(i, valueCol)
		if err != nil {
			return nil, err
		}
		rk := fmt.Sprintf("%v", rv)
		ck := fmt.Sprintf("%v", cv)

		ri, ok := rowIdx[rk]
		if !ok {
			ri = len(rowKeys)
			rowIdx[rk] = ri
			rowKeys = append(rowKeys, rk)
		}
		ci, ok := colIdx[ck]
		if !ok {
			ci = len(colKeys)
			colIdx[ck] = ci
			colKeys = append(colKeys, ck)
		}
		cells = append(cells, cell{ri, ci, val})
	}

	m, err := matrix.NewDense(len(rowKeys), len(colKeys))
	if err != nil {
		return nil, err
	}
	for _, c := range cells {
		if err := m.Set(c.r, c.c, c.v); err != nil {
			return nil, err
		}
	}

	out := New(titleOf(d.Names) + " wide")
	out.Matrix = m
	out.Names.RowNames = rowKeys
	out.Names.ColNames = colKeys
	return out, nil
}
