package pom

import (
	"strings"
	"testing"
)

const sampleDot = `digraph "com.example:app:jar:1.0" {
	"com.example:app:jar:1.0" -> "org.apache.commons:commons-lang3:jar:3.12.0:compile" ;
	"com.example:app:jar:1.0" -> "com.google.guava:guava:jar:31.1-jre:compile" ;
	"com.google.guava:guava:jar:31.1-jre:compile" -> "com.google.guava:failureaccess:jar:1.0.1:compile" ;
}
`

func TestParseDependencyTreeDot(t *testing.T) {
	roots, err := ParseDependencyTreeDot(strings.NewReader(sampleDot))
	if err != nil {
		t.Fatalf("ParseDependencyTreeDot() error = %v", err)
	}
	if len(roots) != 1 {
		t.Fatalf("got %d roots, want 1 (the project itself): %+v", len(roots), roots)
	}

	root := roots[0]
	if root.ArtifactID != "app" {
		t.Fatalf("root artifact = %q, want %q", root.ArtifactID, "app")
	}
	if len(root.Children) != 2 {
		t.Fatalf("root has %d children, want 2", len(root.Children))
	}

	var guava *TreeNode
	for _, c := range root.Children {
		if c.ArtifactID == "guava" {
			guava = c
		}
	}
	if guava == nil {
		t.Fatalf("expected guava among root's children: %+v", root.Children)
	}
	if len(guava.Children) != 1 || guava.Children[0].ArtifactID != "failureaccess" {
		t.Fatalf("expected failureaccess as guava's child, got %+v", guava.Children)
	}
}

func TestNodeFromCoordinate(t *testing.T) {
	n := nodeFromCoordinate("org.apache.commons:commons-lang3:jar:3.12.0:compile")
	if n.GroupID != "org.apache.commons" || n.ArtifactID != "commons-lang3" || n.Version != "3.12.0" || n.Scope != "compile" {
		t.Fatalf("unexpected node: %+v", n)
	}
}
