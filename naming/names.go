package naming

import "strings"

// Names holds the five ordered name lists a dataset carries: a title, an
// optional vector name, and the row/column/text-column name lists. All
// lookups besides the vector name are case-insensitive linear scans; this
// mirrors the small cardinalities (tens to low thousands of columns) these
// lists hold in practice, where a map would just add allocation overhead.
type Names struct {
	Title        string
	VectorName   string
	RowNames     []string
	ColNames     []string
	TextColNames []string
}

// New returns an empty Names with the given title.
func New(title string) *Names {
	return &Names{Title: title}
}

// AppendRow appends a row name.
func (n *Names) AppendRow(name string) { n.RowNames = append(n.RowNames, name) }

// AppendCol appends a matrix column name.
func (n *Names) AppendCol(name string) { n.ColNames = append(n.ColNames, name) }

// AppendTextCol appends a text column name.
func (n *Names) AppendTextCol(name string) { n.TextColNames = append(n.TextColNames, name) }

// ClearRows resets the row name list to empty.
func (n *Names) ClearRows() { n.RowNames = nil }

// ClearCols resets the column name list to empty.
func (n *Names) ClearCols() { n.ColNames = nil }

// findIndex does a case-insensitive linear scan, returning -1 on miss.
func findIndex(list []string, name string) int {
	for i, v := range list {
		if strings.EqualFold(v, name) {
			return i
		}
	}
	return -1
}

// RowIndex returns the index of a row name, or -1 if absent.
func (n *Names) RowIndex(name string) int { return findIndex(n.RowNames, name) }

// ColIndex returns the index of a matrix column name, or -1 if absent.
func (n *Names) ColIndex(name string) int { return findIndex(n.ColNames, name) }

// TextColIndex returns the index of a text-column name, or -1 if absent.
func (n *Names) TextColIndex(name string) int { return findIndex(n.TextColNames, name) }

// Pad grows a name list to length n with empty strings, leaving existing
// entries untouched. This implements the dataset invariant that a short
// name list is padded with "" rather than treated as an error.
func Pad(list []string, n int) []string {
	if len(list) >= n {
		return list
	}
	out := make([]string, n)
	copy(out, list)
	return out
}

// Clone returns a deep copy; the three slices are independently backed so
// mutating the copy never touches the original.
func (n *Names) Clone() *Names {
	if n == nil {
		return nil
	}
	cp := &Names{Title: n.Title, VectorName: n.VectorName}
	cp.RowNames = append([]string(nil), n.RowNames...)
	cp.ColNames = append([]string(nil), n.ColNames...)
	cp.TextColNames = append([]string(nil), n.TextColNames...)
	return cp
}

// ApplyPermutation reorders a name list in place according to perm, where
// perm[i] is the index in the original list that should end up at position
// i. It walks perm cycle by cycle so the auxiliary memory is O(1) beyond a
// single "visited" bitset, the same strategy the dataset sort-in-place
// operation uses for row data.
func ApplyPermutation(list []string, perm []int) error {
	if len(list) != len(perm) {
		return ErrLengthMismatch
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
