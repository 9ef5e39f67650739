package java

import (
	"bytes"
	"testing"

	"github.com/javasem/javasem/java/parser"
)

func TestCallChainAt(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		line     int
		column   int
		wantKinds []CallItemKind
		wantNames []string
	}{
		{
			name: "simple field access chain",
			source: `public class Example {
  public void test() {
    foo.bar.baz
  }
}`,
			line:      3,
			column:    16,
			wantKinds: []CallItemKind{CallItemClassOrVariable, CallItemFieldAccess, CallItemFieldAccess},
			wantNames: []string{"foo", "bar", "baz"},
		},
		{
			name: "method call chain",
			source: `public class Example {
  public void test() {
    foo.bar().baz
  }
}`,
			line:      3,
			column:    18,
			wantKinds: []CallItemKind{CallItemClassOrVariable, CallItemMethodCall, CallItemFieldAccess},
			wantNames: []string{"foo", "bar", "baz"},
		},
		{
			name: "this chain",
			source: `public class Example {
  public void test() {
    this.field
  }
}`,
			line:      3,
			column:    10,
			wantKinds: []CallItemKind{CallItemThis, CallItemFieldAccess},
			wantNames: []string{"", "field"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := parser.ParseCompilationUnit(bytes.NewReader([]byte(tt.source)), parser.WithPositions())
			root := p.Finish()
			if root == nil {
				t.Fatalf("failed to parse source")
			}

			pos := parser.Position{Line: tt.line, Column: tt.column}
			chain := CallChainAt(root, pos)

			if len(chain) != len(tt.wantKinds) {
				t.Fatalf("CallChainAt() returned %d atoms, want %d: %+v", len(chain), len(tt.wantKinds), chain)
			}
			for i, item := range chain {
				if item.Kind != tt.wantKinds[i] {
					t.Errorf("atom %d kind = %v, want %v", i, item.Kind, tt.wantKinds[i])
				}
				if item.Name != tt.wantNames[i] {
					t.Errorf("atom %d name = %q, want %q", i, item.Name, tt.wantNames[i])
				}
			}
		})
	}
}

func TestCallChainAtArgumentList(t *testing.T) {
	source := `public class Example {
  public void test() {
    foo.bar(baz.qux)
  }
}`
	p := parser.ParseCompilationUnit(bytes.NewReader([]byte(source)), parser.WithPositions())
	root := p.Finish()
	if root == nil {
		t.Fatalf("failed to parse source")
	}

	pos := parser.Position{Line: 3, Column: 18} // inside "baz.qux"
	chain := CallChainAt(root, pos)
	if len(chain) == 0 {
		t.Fatalf("expected a non-empty chain inside argument list")
	}
	if chain[0].Kind != CallItemArgumentList {
		t.Fatalf("expected leading ArgumentList atom, got %v", chain[0].Kind)
	}
	if len(chain[0].Prev) == 0 || chain[0].Prev[0].Name != "foo" {
		t.Errorf("ArgumentList.Prev = %+v, want chain starting at foo", chain[0].Prev)
	}
}
