package index

import (
	"testing"

	"github.com/javasem/javasem/java"
)

func TestIndexInsertGetRemove(t *testing.T) {
	idx := New()

	cls := &java.ClassModel{Name: "com.example.Foo", SimpleName: "Foo", SourceFile: "Foo.java"}
	idx.Insert(cls)

	if got := idx.Get("com.example.Foo"); got != cls {
		t.Fatalf("Get() = %v, want %v", got, cls)
	}
	if idx.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", idx.Len())
	}

	idx.Remove("com.example.Foo")
	if idx.Get("com.example.Foo") != nil {
		t.Fatalf("expected Foo to be removed")
	}
}

func TestIndexRemoveFile(t *testing.T) {
	idx := New()
	idx.InsertAll([]*java.ClassModel{
		{Name: "com.example.A", SourceFile: "shared.java"},
		{Name: "com.example.B", SourceFile: "shared.java"},
		{Name: "com.example.C", SourceFile: "other.java"},
	})

	idx.RemoveFile("shared.java")

	if idx.Len() != 1 {
		t.Fatalf("Len() after RemoveFile = %d, want 1", idx.Len())
	}
	if idx.Get("com.example.C") == nil {
		t.Fatalf("expected com.example.C to survive RemoveFile")
	}
}

func TestIndexSnapshotIsolation(t *testing.T) {
	idx := New()
	idx.Insert(&java.ClassModel{Name: "com.example.Foo"})

	snap := idx.Snapshot()
	idx.Insert(&java.ClassModel{Name: "com.example.Bar"})

	if len(snap) != 1 {
		t.Fatalf("snapshot should not observe inserts made after it was taken, got %d entries", len(snap))
	}
}
