package settings

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Group is a named, cloneable bundle of method-specific configuration.
// Concrete groups (mle.Settings, arms.Settings, mcmc.Settings, ...) embed
// their fields directly and implement this interface.
type Group interface {
	// Name identifies the group within a Registry (e.g. "mle", "arms").
	Name() string
	// Clone returns a deep copy, invoked whenever the owning model is
	// copied so that per-copy estimation never shares mutable state.
	Clone() Group
}

// Snapshotter is implemented by groups that can render themselves as a
// plain value for YAML serialization. Groups holding RNGs, callbacks, or
// other non-serializable state simply don't implement it.
type Snapshotter interface {
	Snapshot() any
}

// Registry is an ordered list of settings groups with name-based lookup.
// Order is preserved so Dump output and iteration are deterministic.
type Registry struct {
	order []string
	byName map[string]Group
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{byName: make(map[string]Group)}
}

// Set adds or replaces the group under its own Name().
func (r *Registry) Set(g Group) {
	name := g.Name()
	if _, exists := r.byName[name]; !exists {
		r.order = append(r.order, name)
	}
	r.byName[name] = g
}

// Get looks up a group by name (case-sensitive; group names are fixed
// identifiers like "mle", not user text).
func (r *Registry) Get(name string) (Group, bool) {
	g, ok := r.byName[name]
	return g, ok
}

// Remove drops a group by name; it is a no-op if absent.
func (r *Registry) Remove(name string) {
	if _, ok := r.byName[name]; !ok {
		return
	}
	delete(r.byName, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Names returns the group names in insertion order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Clone deep-copies every group via its Clone method. This is the
// settings-registry half of model.Model's copy contract (spec.md §3.3).
func (r *Registry) Clone() *Registry {
	cp := New()
	for _, name := range r.order {
		cp.Set(r.byName[name].Clone())
	}
	return cp
}

// Dump renders every Snapshotter-implementing group to YAML, keyed by
// group name, in Registry order. Groups that don't implement Snapshotter
// are silently skipped (RNGs and callbacks have no serializable form).
func (r *Registry) Dump() ([]byte, error) {
	snap := make(map[string]any, len(r.order))
	for _, name := range r.order {
		g := r.byName[name]
		if s, ok := g.(Snapshotter); ok {
			snap[name] = s.Snapshot()
		}
	}
	out, err := yaml.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("settings: Dump: %w", err)
	}
	return out, nil
}
