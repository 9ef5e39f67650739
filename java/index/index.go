// Package index implements the process-wide concurrent class index of
// spec.md §4.E: a map from fully-qualified class name to ClassModel,
// populated from the JDK, project dependencies and project sources, and
// read concurrently by query-surface pipelines while background loaders
// keep inserting.
package index

import (
	"github.com/sasha-s/go-deadlock"

	"github.com/javasem/javasem/java"
)

// Index is a concurrent FQCN -> *java.ClassModel map. Updates replace the
// whole *ClassModel pointer, never mutate one in place, so a concurrent Get
// always observes either the old or the new descriptor, never a torn one
// (spec.md §3 "Lifecycle and ownership").
type Index struct {
	mu      deadlock.RWMutex
	classes map[string]*java.ClassModel
}

// New returns an empty Index.
func New() *Index {
	return &Index{classes: make(map[string]*java.ClassModel)}
}

// Insert adds or atomically replaces the descriptor for class.Name.
func (idx *Index) Insert(class *java.ClassModel) {
	if class == nil || class.Name == "" {
		return
	}
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.classes[class.Name] = class
}

// InsertAll inserts every class, useful for bulk loader results.
func (idx *Index) InsertAll(classes []*java.ClassModel) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	for _, c := range classes {
		if c != nil && c.Name != "" {
			idx.classes[c.Name] = c
		}
	}
}

// Get returns the descriptor for fqcn, or nil if absent.
func (idx *Index) Get(fqcn string) *java.ClassModel {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.classes[fqcn]
}

// Remove deletes fqcn from the index, if present.
func (idx *Index) Remove(fqcn string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	delete(idx.classes, fqcn)
}

// RemoveFile removes every class index entry whose SourceFile matches path,
// used when a project source file is deleted or about to be fully
// re-inserted on save.
func (idx *Index) RemoveFile(path string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	for fqcn, c := range idx.classes {
		if c.SourceFile == path {
			delete(idx.classes, fqcn)
		}
	}
}

// Len returns the number of indexed classes.
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.classes)
}

// Snapshot returns a point-in-time slice of every indexed descriptor. The
// slice is safe to range over without holding any lock; later Insert/Remove
// calls do not affect it (spec.md §4.E "iter() snapshot semantics OK").
func (idx *Index) Snapshot() []*java.ClassModel {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	out := make([]*java.ClassModel, 0, len(idx.classes))
	for _, c := range idx.classes {
		out = append(out, c)
	}
	return out
}

// SnapshotMap returns a point-in-time FQCN -> descriptor map, the shape the
// type resolver (java.Resolver.Classes) wants.
func (idx *Index) SnapshotMap() map[string]*java.ClassModel {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	out := make(map[string]*java.ClassModel, len(idx.classes))
	for k, v := range idx.classes {
		out[k] = v
	}
	return out
}
