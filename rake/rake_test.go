package rake_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/halvard/apostat/dataset"
	"github.com/halvard/apostat/rake"
)

// TestRunTwoByTwo encodes the literal 2x2 scenario: margins over (age,
// sex), observed row sums [50, 50] and column sums [40, 60], expecting
// cell estimates to converge to approximately (20, 30, 20, 30).
func TestRunTwoByTwo(t *testing.T) {
	ageMargin := rake.Margin{
		Contrast: rake.Contrast{"age"},
		Data: &dataset.Dataset{
			Text:    [][]string{{"young"}, {"old"}},
			Weights: []float64{50, 50},
		},
	}
	sexMargin := rake.Margin{
		Contrast: rake.Contrast{"sex"},
		Data: &dataset.Dataset{
			Text:    [][]string{{"m"}, {"f"}},
			Weights: []float64{40, 60},
		},
	}

	tbl, err := rake.NewTable([]string{"age", "sex"}, []rake.Margin{ageMargin, sexMargin}, nil)
	require.NoError(t, err)
	require.Len(t, tbl.Cells, 4)

	iterations, maxDev, err := rake.Run(tbl, rake.New())
	require.NoError(t, err)
	require.Greater(t, iterations, 0)
	require.LessOrEqual(t, maxDev, 1e-5)

	want := map[[2]string]float64{
		{"young", "m"}: 20,
		{"young", "f"}: 30,
		{"old", "m"}:   20,
		{"old", "f"}:   30,
	}
	for _, c := range tbl.Cells {
		key := [2]string{c.Categories[0], c.Categories[1]}
		require.InDelta(t, want[key], c.Estimate, 1e-3)
	}
}

// TestRunAppliesStructuralZero confirms a structural zero is excluded
// from the enumerated cell set regardless of its margin projections.
func TestRunAppliesStructuralZero(t *testing.T) {
	ageMargin := rake.Margin{
		Contrast: rake.Contrast{"age"},
		Data: &dataset.Dataset{
			Text:    [][]string{{"young"}, {"old"}},
			Weights: []float64{50, 50},
		},
	}
	sexMargin := rake.Margin{
		Contrast: rake.Contrast{"sex"},
		Data: &dataset.Dataset{
			Text:    [][]string{{"m"}, {"f"}},
			Weights: []float64{40, 60},
		},
	}

	structZero := func(categories map[string]string) bool {
		return categories["age"] == "old" && categories["sex"] == "f"
	}

	tbl, err := rake.NewTable([]string{"age", "sex"}, []rake.Margin{ageMargin, sexMargin}, structZero)
	require.NoError(t, err)
	require.Len(t, tbl.Cells, 3)
	for _, c := range tbl.Cells {
		require.False(t, c.Categories[0] == "old" && c.Categories[1] == "f")
	}
}

func TestNewTableRequiresVariables(t *testing.T) {
	_, err := rake.NewTable(nil, []rake.Margin{{Contrast: rake.Contrast{"age"}, Data: &dataset.Dataset{}}}, nil)
	require.ErrorIs(t, err, rake.ErrNoVariables)
}

func TestNewTableRequiresMargins(t *testing.T) {
	_, err := rake.NewTable([]string{"age"}, nil, nil)
	require.ErrorIs(t, err, rake.ErrEmptyMargin)
}
