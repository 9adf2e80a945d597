package model

import (
	"reflect"
	"sync"
)

// VTable dispatches per-method specialized implementations keyed by a
// model's identity: the memory address of its LogLikelihood (or, failing
// that, its P) function pointer, per spec.md §4.2's "stable hash of the
// model's function pointers" contract. A default implementation per
// method name is used when no specialized entry matches.
type VTable struct {
	mu       sync.RWMutex
	entries  map[string]map[uintptr]any
	defaults map[string]any
}

// NewVTable returns an empty dispatch table.
func NewVTable() *VTable {
	return &VTable{
		entries:  make(map[string]map[uintptr]any),
		defaults: make(map[string]any),
	}
}

// identity computes the dispatch key for m: the LogLikelihood pointer if
// set, else the P pointer, else zero (meaning "no specialization possible,
// always use the default").
func identity(m *Model) uintptr {
	switch {
	case m.LogLikelihood != nil:
		return reflect.ValueOf(m.LogLikelihood).Pointer()
	case m.P != nil:
		return reflect.ValueOf(m.P).Pointer()
	default:
		return 0
	}
}

// Register associates fn with method for models sharing m's identity.
func (vt *VTable) Register(method string, m *Model, fn any) {
	vt.mu.Lock()
	defer vt.mu.Unlock()
	if vt.entries[method] == nil {
		vt.entries[method] = make(map[uintptr]any)
	}
	vt.entries[method][identity(m)] = fn
}

// SetDefault installs the fallback implementation used when no
// specialized entry matches.
func (vt *VTable) SetDefault(method string, fn any) {
	vt.mu.Lock()
	defer vt.mu.Unlock()
	vt.defaults[method] = fn
}

// Lookup returns the specialized implementation for method on m's
// identity if one is registered, else the default, else (nil, false).
func (vt *VTable) Lookup(method string, m *Model) (any, bool) {
	vt.mu.RLock()
	defer vt.mu.RUnlock()
	if table, ok := vt.entries[method]; ok {
		if fn, ok := table[identity(m)]; ok {
			return fn, true
		}
	}
	fn, ok := vt.defaults[method]
	return fn, ok
}
