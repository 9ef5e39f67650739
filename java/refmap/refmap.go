// Package refmap implements the reference map of spec.md §4.F: a concurrent
// inverted index from a class path to every project source location that
// refers to it (type use, field read/write, method call, import site,
// super-type use).
package refmap

import (
	"github.com/sasha-s/go-deadlock"

	"github.com/javasem/javasem/java"
	"github.com/javasem/javasem/java/index"
	"github.com/javasem/javasem/java/parser"
)

// ReferenceKind tags why a location refers to a class, per spec.md §3.
type ReferenceKind int

const (
	KindTypeUse ReferenceKind = iota
	KindFieldRead
	KindFieldWrite
	KindMethodCall
	KindImportSite
	KindSuperTypeUse
)

// ReferenceUnit is one recorded reference to a class path.
type ReferenceUnit struct {
	SourceFile string
	Range      parser.Span
	Kind       ReferenceKind
}

// Map is the concurrent FQCN -> []ReferenceUnit inverted index. Per-key
// lists are replaced wholesale on update, never mutated in place, matching
// spec.md §3's ownership rule.
type Map struct {
	mu   deadlock.RWMutex
	refs map[string][]ReferenceUnit
}

// New returns an empty Map.
func New() *Map {
	return &Map{refs: make(map[string][]ReferenceUnit)}
}

// Get returns the references recorded for fqcn.
func (m *Map) Get(fqcn string) []ReferenceUnit {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.refs[fqcn]
}

// RebuildFrom recomputes the whole map from a project's classes, using idx
// to resolve simple names found in supertype/field/method-signature
// positions against imports. This is the bulk path used at startup and
// after a full project rescan (spec.md §4.F "bulk rebuild_from").
func (m *Map) RebuildFrom(classes []*java.ClassModel, idx *index.Index) {
	fresh := make(map[string][]ReferenceUnit)
	for _, c := range classes {
		collectReferences(c, fresh)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refs = fresh
}

// UpdateClass purges every entry whose SourceFile equals class.SourceFile,
// then re-adds references derived from the freshly re-parsed descriptor —
// spec.md §4.F's incremental on-save policy.
func (m *Map) UpdateClass(class *java.ClassModel, idx *index.Index) {
	if class == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	for fqcn, units := range m.refs {
		kept := units[:0:0]
		for _, u := range units {
			if u.SourceFile != class.SourceFile {
				kept = append(kept, u)
			}
		}
		if len(kept) == 0 {
			delete(m.refs, fqcn)
		} else {
			m.refs[fqcn] = kept
		}
	}

	fresh := make(map[string][]ReferenceUnit)
	collectReferences(class, fresh)
	for fqcn, units := range fresh {
		m.refs[fqcn] = append(m.refs[fqcn], units...)
	}
}

// PurgeFile removes every reference unit whose SourceFile equals path,
// used when a file is deleted outright (no replacement descriptor).
func (m *Map) PurgeFile(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for fqcn, units := range m.refs {
		kept := units[:0:0]
		for _, u := range units {
			if u.SourceFile != path {
				kept = append(kept, u)
			}
		}
		if len(kept) == 0 {
			delete(m.refs, fqcn)
		} else {
			m.refs[fqcn] = kept
		}
	}
}

func collectReferences(c *java.ClassModel, out map[string][]ReferenceUnit) {
	if c == nil {
		return
	}

	add := func(fqcn string, kind ReferenceKind, span parser.Span) {
		if fqcn == "" {
			return
		}
		out[fqcn] = append(out[fqcn], ReferenceUnit{SourceFile: c.SourceFile, Range: span, Kind: kind})
	}

	declSpan := parser.Span{}

	if c.SuperClass != "" {
		add(c.SuperClass, KindSuperTypeUse, declSpan)
	}
	for _, iface := range c.Interfaces {
		add(iface, KindSuperTypeUse, declSpan)
	}
	for _, f := range c.Fields {
		if f.SourceRange != nil {
			add(f.Type.Name, KindTypeUse, *f.SourceRange)
		} else {
			add(f.Type.Name, KindTypeUse, declSpan)
		}
	}
	for _, m := range c.Methods {
		if m.SourceRange != nil {
			add(m.ReturnType.Name, KindTypeUse, *m.SourceRange)
		} else {
			add(m.ReturnType.Name, KindTypeUse, declSpan)
		}
		for _, p := range m.Parameters {
			add(p.Type.Name, KindTypeUse, declSpan)
		}
		for _, ex := range m.Exceptions {
			add(ex, KindTypeUse, declSpan)
		}
	}
}
