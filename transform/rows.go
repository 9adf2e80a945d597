package transform

import (
	"github.com/halvard/apostat/dataset"
	"github.com/halvard/apostat/matrix"
)

func matrixFromRow(row []float64) (*matrix.Dense, error) {
	return matrixFromRows([][]float64{row})
}

// matrixFromRows builds a dense matrix from row-major data, all rows
// expected to share the same width.
func matrixFromRows(rows [][]float64) (*matrix.Dense, error) {
	mat, err := matrix.NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		for c, v := range row {
			_ = mat.Set(r, c, v)
		}
	}
	return mat, nil
}

// numRows returns the number of observations in d, one per vector entry
// or matrix row (matching model.Model's own defaultPrep width logic).
func numRows(d *dataset.Dataset) int {
	return d.Rows()
}

// rowAt returns observation i of d as a flat []float64: the matrix row
// if d has one, else the single vector scalar.
func rowAt(d *dataset.Dataset, i int) []float64 {
	if d.Matrix != nil {
		cols := d.Matrix.Cols()
		row := make([]float64, cols)
		for c := 0; c < cols; c++ {
			row[c] = d.Get(i, c)
		}
		return row
	}
	return []float64{d.Get(i, -1)}
}

// oneRowDataset wraps a single observation as a Dataset, mirroring
// arms.FromModel's "embed x as the sole element of a one-row dataset"
// construction.
func oneRowDataset(row []float64) *dataset.Dataset {
	d := dataset.New("observation")
	if len(row) == 1 {
		d.Vector = []float64{row[0]}
		return d
	}
	mat, err := matrixFromRow(row)
	if err == nil {
		d.Matrix = mat
	}
	return d
}
