package refmap

import (
	"testing"

	"github.com/javasem/javasem/java"
	"github.com/javasem/javasem/java/index"
)

func TestRebuildFromCollectsSuperTypeAndFieldReferences(t *testing.T) {
	idx := index.New()
	classes := []*java.ClassModel{
		{
			Name:       "com.example.Animal",
			SimpleName: "Animal",
			SourceFile: "Animal.java",
		},
		{
			Name:       "com.example.Dog",
			SimpleName: "Dog",
			SourceFile: "Dog.java",
			SuperClass: "com.example.Animal",
			Fields: []java.FieldModel{
				{Name: "owner", Type: java.TypeModel{Name: "com.example.Person"}},
			},
		},
	}
	idx.InsertAll(classes)

	m := New()
	m.RebuildFrom(classes, idx)

	refs := m.Get("com.example.Animal")
	if len(refs) != 1 || refs[0].Kind != KindSuperTypeUse || refs[0].SourceFile != "Dog.java" {
		t.Fatalf("expected one super-type reference from Dog.java, got %+v", refs)
	}

	fieldRefs := m.Get("com.example.Person")
	if len(fieldRefs) != 1 || fieldRefs[0].Kind != KindTypeUse {
		t.Fatalf("expected one field type-use reference to Person, got %+v", fieldRefs)
	}
}

func TestPurgeFileRemovesOnlyThatFilesReferences(t *testing.T) {
	idx := index.New()
	classes := []*java.ClassModel{
		{Name: "com.example.A", SourceFile: "a.java", SuperClass: "com.example.Base"},
		{Name: "com.example.B", SourceFile: "b.java", SuperClass: "com.example.Base"},
	}
	idx.InsertAll(classes)

	m := New()
	m.RebuildFrom(classes, idx)

	m.PurgeFile("a.java")

	refs := m.Get("com.example.Base")
	if len(refs) != 1 || refs[0].SourceFile != "b.java" {
		t.Fatalf("expected only b.java's reference to survive, got %+v", refs)
	}
}
