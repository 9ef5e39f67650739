package java

import (
	"bytes"
	"testing"

	"github.com/javasem/javasem/java/parser"
)

func TestLocalVariablesAt(t *testing.T) {
	source := `public class Example {
  private int counter;

  public void test(String name) {
    int total = 0;
    if (total > 0) {
      String inner = "x";
    }
  }
}`
	p := parser.ParseCompilationUnit(bytes.NewReader([]byte(source)), parser.WithPositions())
	root := p.Finish()
	if root == nil {
		t.Fatalf("failed to parse source")
	}

	// Position inside the if-block, after `inner` is declared.
	pos := parser.Position{Line: 8, Column: 1}
	vars := LocalVariablesAt(root, pos, nil)

	byName := make(map[string]LocalVariable)
	for _, v := range vars {
		byName[v.Name] = v
	}

	for _, name := range []string{"counter", "name", "total", "inner"} {
		if _, ok := byName[name]; !ok {
			t.Errorf("expected %q to be visible, got %+v", name, vars)
		}
	}

	if byName["counter"].Level != levelField {
		t.Errorf("counter level = %d, want field level %d", byName["counter"].Level, levelField)
	}
	if byName["name"].Level != levelParameter {
		t.Errorf("name level = %d, want parameter level %d", byName["name"].Level, levelParameter)
	}
	if byName["inner"].Level <= byName["total"].Level {
		t.Errorf("inner (nested block) should have a higher level than total: inner=%d total=%d",
			byName["inner"].Level, byName["total"].Level)
	}
}

func TestLocalVariablesAtShadowing(t *testing.T) {
	source := `public class Example {
  private String value;

  public void test() {
    String value = "local";
  }
}`
	p := parser.ParseCompilationUnit(bytes.NewReader([]byte(source)), parser.WithPositions())
	root := p.Finish()
	if root == nil {
		t.Fatalf("failed to parse source")
	}

	pos := parser.Position{Line: 5, Column: 30}
	jtype, ok := VariableTypeAt(root, pos, nil, "value")
	if !ok {
		t.Fatalf("expected value to resolve")
	}
	if jtype.Name != "java.lang.String" {
		t.Errorf("shadowed value resolved to %q, want local declaration's %q", jtype.Name, "java.lang.String")
	}
}
