package model

import "github.com/halvard/apostat/dataset"

// defaultPrep allocates Parameters and Info sized from d's width whenever
// Vsize/Msize1/Msize2 carry the -1 "same as data width" sentinel, leaving
// already-allocated parts untouched (the idempotent-ish contract spec.md
// §3.3 describes).
func (m *Model) defaultPrep(d *dataset.Dataset) error {
	width := 0
	if d != nil {
		if d.Matrix != nil {
			width = d.Matrix.Cols()
		} else if len(d.Vector) > 0 {
			width = 1
		}
	}

	if m.Vsize == -1 {
		m.Vsize = width
	}
	if m.Msize1 == -1 {
		m.Msize1 = width
	}
	if m.Msize2 == -1 {
		m.Msize2 = width
	}
	if m.Dsize == -1 {
		m.Dsize = width
	}

	if m.Parameters == nil {
		m.Parameters = dataset.New(m.Name + " parameters")
		if m.Vsize > 0 {
			m.Parameters.Vector = make([]float64, m.Vsize)
		}
	}
	if m.Info == nil {
		m.Info = dataset.New(m.Name + " info")
	}
	return nil
}

// Free releases Parameters, Info, the More block and the settings
// registry. Go's garbage collector reclaims the memory regardless; Free
// exists so a caller can explicitly drop large parameter/info chains
// (e.g. covariance pages) from a long-lived model without waiting on a
// future GC cycle, mirroring the teacher's explicit-release pattern for
// its own large graph structures.
func (m *Model) Free() {
	m.Parameters = nil
	m.Info = nil
	m.More = nil
	m.Settings = nil
}
