// Package matrix_test holds fixtures shared by this package's test files:
// allocate-or-fail constructors, row-major fixture builders, and the
// tolerance-based comparators the numeric kernels' tests lean on.
package matrix_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/halvard/apostat/matrix"
)

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}
	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}
	return v
}

// MustSet writes a finite scalar into m[i,j] through Set's policy. Non-finite
// values are rejected here deliberately; use MustFillRowMajor for dirty
// fixtures that need to land NaN/Inf in storage.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if math.IsNaN(v) || math.IsInf(v, 0) {
		t.Fatalf("MustSet refuses non-finite v=%v; use MustFillRowMajor for NaN/Inf fixtures", v)
	}
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// NewFilledDense builds an r×c *Dense from a row-major flat slice, through
// Set's policy (so vals must already be finite).
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	if len(vals) != r*c {
		t.Fatalf("NewFilledDense: want %d values, got %d", r*c, len(vals))
	}
	for idx, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("NewFilledDense: vals[%d]=%v is non-finite; use MustFillRowMajor for dirty fixtures", idx, v)
		}
	}

	d := MustDense(t, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			MustSet(t, d, i, j, vals[i*c+j])
		}
	}
	return d
}

// MustFillRowMajor raw-ingests vals into m's storage, bypassing Set's
// finite-value policy. Used by sanitizer tests (ReplaceInfNaN, Clip) that
// need NaN/Inf seeded into the matrix regardless of the package default.
func MustFillRowMajor(t *testing.T, m matrix.Matrix, vals []float64) {
	t.Helper()
	f, ok := m.(interface{ Fill([]float64) error })
	if !ok {
		t.Fatalf("matrix does not support raw Fill([]float64); cannot ingest non-finite test data")
	}
	if err := f.Fill(vals); err != nil {
		t.Fatalf("Fill(row-major): %v", err)
	}
}

// RandFilledDense returns a new r×c Dense filled with deterministic U(-1,1)
// values for the given seed.
func RandFilledDense(t *testing.T, r, c int, seed int64) matrix.Matrix {
	t.Helper()
	m := MustDense(t, r, c)
	RandomFill(t, m, seed)
	return m
}

// RandomFill fills m with deterministic U(-1,1) values by seed, row-major.
func RandomFill(t *testing.T, m matrix.Matrix, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows, cols := m.Rows(), m.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if err := m.Set(i, j, rng.Float64()*2-1); err != nil {
				t.Fatalf("RandomFill Set(%d,%d): %v", i, j, err)
			}
		}
	}
}

// CompareExact asserts m equals the 2D literal want, element-for-element,
// with no tolerance.
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	r, c := m.Rows(), m.Cols()
	if len(want) != r {
		t.Fatalf("CompareExact: Rows = %d; want %d", r, len(want))
	}
	for i := 0; i < r; i++ {
		if len(want[i]) != c {
			t.Fatalf("CompareExact: Cols[%d] = %d; want %d", i, c, len(want[i]))
		}
		for j := 0; j < c; j++ {
			if v := MustAt(t, m, i, j); v != want[i][j] {
				t.Fatalf("m[%d,%d]=%v; want %v", i, j, v, want[i][j])
			}
		}
	}
}

// CompareClose asserts matrix.AllClose(a, b, rtol, atol) holds.
func CompareClose(t *testing.T, a, b matrix.Matrix, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, rtol, atol)
	if err != nil {
		t.Fatalf("AllClose err: %v", err)
	}
	if !ok {
		t.Fatalf("AllClose=false (rtol=%g, atol=%g)", rtol, atol)
	}
}

// sliceClose asserts |a[i]-b[i]| <= atol + rtol*|b[i]| for every index,
// mirroring AllClose's tolerance formula for plain slices.
func sliceClose(t *testing.T, a, b []float64, rtol, atol float64) {
	t.Helper()
	if len(a) != len(b) {
		t.Fatalf("slice lengths: %d vs %d", len(a), len(b))
	}
	for i := range a {
		diff := math.Abs(a[i] - b[i])
		if diff > atol+rtol*math.Abs(b[i]) {
			t.Fatalf("sliceClose idx=%d: got=%g want=%g (rtol=%g atol=%g)", i, a[i], b[i], rtol, atol)
		}
	}
}

// AlmostEqualSlice reports whether a and b differ by more than delta at any
// index (non-fatal predicate, for conditional test logic).
func AlmostEqualSlice(got, want []float64, delta float64) bool {
	if len(got) != len(want) {
		return true
	}
	for i := range got {
		if math.IsNaN(got[i]) || math.IsNaN(want[i]) {
			return true
		}
		if math.IsInf(got[i], 0) || math.IsInf(want[i], 0) {
			if got[i] != want[i] {
				return true
			}
			continue
		}
		if math.Abs(got[i]-want[i]) > delta {
			return true
		}
	}
	return false
}

// AssertErrorIs wraps errors.Is with a consistent failure message.
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v; got %v", target, err)
	}
}

// InDelta reports whether |got-want| > delta (true means mismatch). NaN
// never compares equal; infinities must match by sign.
func InDelta(t *testing.T, got, want, delta float64) bool {
	t.Helper()
	if math.IsNaN(got) || math.IsNaN(want) {
		return true
	}
	if math.IsInf(got, 0) || math.IsInf(want, 0) {
		return got != want
	}
	return math.Abs(got-want) > delta
}
