package rake

import (
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/halvard/apostat/dataset"
)

// fieldSep separates category values when forming a lookup key; chosen
// to be a byte that never appears in ordinary category text.
const fieldSep = "\x1f"

// Cell is one potentially-nonzero combination of category values in the
// contingency table being raked.
type Cell struct {
	Categories []string // one value per variable, in Table.Vars order
	Estimate   float64
}

// Contrast is an unordered set of variable names whose joint margin the
// raking procedure must match (spec.md §4.6's "contrasts").
type Contrast []string

// Margin is one contrast's observed margin table: Data.Text holds one
// row per observed category combination over Contrast's variables (in
// Contrast order), and Data.Weights holds that combination's observed
// total.
type Margin struct {
	Contrast Contrast
	Data     *dataset.Dataset
}

// StructuralZero reports whether a cell's category combination is known
// to always be zero and must be excluded from the enumeration.
type StructuralZero func(categories map[string]string) bool

// Table is the enumerated cell set being raked: the Cartesian product
// of observed category values, minus cells whose projection onto any
// margin's contrast never appears in that margin, minus structural
// zeros (spec.md §4.6's "preparation").
type Table struct {
	Vars   []string
	Values [][]string // per-variable distinct observed values, in Vars order
	Cells  []*Cell

	varIndex map[string]int
	margins  []Margin
	obsIndex []map[string]float64 // obsIndex[i][comboKey] = observed total for margins[i]

	index    [][]*bitset.BitSet // index[v][k] = cells whose Vars[v] == Values[v][k]
	valIndex []map[string]int   // valIndex[v][value] = k into Values[v]
}

// NewTable enumerates every potentially nonzero cell over vars. Each
// margin supplies the distinct category values for its own variables
// and the observed total for each combination it lists; a candidate
// cell survives only if its projection onto every margin's contrast
// appears in that margin, and structZero (if non-nil) does not reject
// it (spec.md §4.6, steps 1-3 of "Preparation").
func NewTable(vars []string, margins []Margin, structZero StructuralZero) (*Table, error) {
	if len(vars) == 0 {
		return nil, ErrNoVariables
	}
	if len(margins) == 0 {
		return nil, ErrEmptyMargin
	}

	varIndex := make(map[string]int, len(vars))
	for i, v := range vars {
		varIndex[v] = i
	}

	t := &Table{Vars: vars, Values: make([][]string, len(vars)), varIndex: varIndex, margins: margins}
	seen := make([]map[string]bool, len(vars))
	for i := range seen {
		seen[i] = map[string]bool{}
	}

	obsIndex := make([]map[string]float64, len(margins))
	for mi, m := range margins {
		obs := make(map[string]float64)
		rows := len(m.Data.Text)
		for r := 0; r < rows; r++ {
			row := m.Data.Text[r]
			for i, v := range m.Contrast {
				val := row[i]
				vi := varIndex[v]
				if !seen[vi][val] {
					seen[vi][val] = true
					t.Values[vi] = append(t.Values[vi], val)
				}
			}
			w := 1.0
			if r < len(m.Data.Weights) {
				w = m.Data.Weights[r]
			}
			obs[cellKey(row[:len(m.Contrast)])] += w
		}
		obsIndex[mi] = obs
	}
	t.obsIndex = obsIndex

	for _, combo := range cartesian(t.Values) {
		if structZero != nil {
			cats := make(map[string]string, len(vars))
			for i, v := range vars {
				cats[v] = combo[i]
			}
			if structZero(cats) {
				continue
			}
		}

		keep := true
		for mi, m := range margins {
			key := cellKey(projectValues(combo, varIndex, m.Contrast))
			if _, ok := obsIndex[mi][key]; !ok {
				keep = false
				break
			}
		}
		if !keep {
			continue
		}

		t.Cells = append(t.Cells, &Cell{Categories: append([]string(nil), combo...)})
	}

	t.buildIndex()
	return t, nil
}

func (t *Table) buildIndex() {
	t.index = make([][]*bitset.BitSet, len(t.Vars))
	t.valIndex = make([]map[string]int, len(t.Vars))
	n := uint(len(t.Cells))
	for v := range t.Vars {
		t.index[v] = make([]*bitset.BitSet, len(t.Values[v]))
		t.valIndex[v] = make(map[string]int, len(t.Values[v]))
		for k, val := range t.Values[v] {
			t.index[v][k] = bitset.New(n)
			t.valIndex[v][val] = k
		}
	}
	for ci, cell := range t.Cells {
		for v, val := range cell.Categories {
			k := t.valIndex[v][val]
			t.index[v][k].Set(uint(ci))
		}
	}
}

// membersFor intersects the per-dimension membership bitsets for the
// variables in c, given one chosen value per variable (in c's order),
// returning the indices into t.Cells that carry every one of those
// values (spec.md §4.6's "intersect the per-dimension bitsets").
func (t *Table) membersFor(c Contrast, values []string) []int {
	var result *bitset.BitSet
	for i, v := range c {
		dim := t.varIndex[v]
		k, ok := t.valIndex[dim][values[i]]
		if !ok {
			return nil
		}
		b := t.index[dim][k]
		if result == nil {
			result = b.Clone()
		} else {
			result = result.Intersection(b)
		}
	}
	if result == nil {
		return nil
	}
	members := make([]int, 0, result.Count())
	for i, ok := result.NextSet(0); ok; i, ok = result.NextSet(i + 1) {
		members = append(members, int(i))
	}
	return members
}

func (t *Table) valuesFor(c Contrast) [][]string {
	out := make([][]string, len(c))
	for i, v := range c {
		out[i] = t.Values[t.varIndex[v]]
	}
	return out
}

func cartesian(values [][]string) [][]string {
	if len(values) == 0 {
		return nil
	}
	combos := [][]string{{}}
	for _, vs := range values {
		next := make([][]string, 0, len(combos)*len(vs))
		for _, c := range combos {
			for _, v := range vs {
				next = append(next, append(append([]string(nil), c...), v))
			}
		}
		combos = next
	}
	return combos
}

func cellKey(values []string) string {
	return strings.Join(values, fieldSep)
}

func projectValues(combo []string, varIndex map[string]int, c Contrast) []string {
	out := make([]string, len(c))
	for i, v := range c {
		out[i] = combo[varIndex[v]]
	}
	return out
}
