// Package settings implements the per-model settings-group registry: a
// named bundle of method-specific configuration (MLE parameters, ARMS
// parameters, MCMC parameters, and so on) attached to a model.
//
// A settings group is any type implementing Group; Registry looks groups up
// by name and clones them (the copy-hook from spec.md §3.4) when a model is
// copied. Free-hooks from the original C design have no Go equivalent —
// the garbage collector reclaims a group's memory once its Registry entry
// is dropped — so Group has no Free method.
//
// Ambient addition (SPEC_FULL.md §2): a group may optionally serialize
// itself to YAML for trace/restart bookkeeping by implementing Snapshotter;
// groups that hold RNGs or function values simply don't implement it and
// are skipped during Dump.
package settings
