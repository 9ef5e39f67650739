package java

import "testing"

func TestResolverResolveFieldAndMethodChain(t *testing.T) {
	fooClass := &ClassModel{
		Name:       "com.example.Foo",
		SimpleName: "Foo",
		Package:    "com.example",
		Kind:       ClassKindClass,
		Fields: []FieldModel{
			{Name: "bar", Type: TypeModel{Name: "com.example.Bar"}},
		},
	}
	barClass := &ClassModel{
		Name:       "com.example.Bar",
		SimpleName: "Bar",
		Package:    "com.example",
		Kind:       ClassKindClass,
		Methods: []MethodModel{
			{Name: "baz", ReturnType: TypeModel{Name: "java.lang.String"}},
		},
	}

	classes := map[string]*ClassModel{
		fooClass.Name: fooClass,
		barClass.Name: barClass,
	}

	resolver := &Resolver{
		EnclosingPackage: "com.example",
		Classes:          classes,
	}

	chain := []CallItem{
		{Kind: CallItemClassOrVariable, Name: "Foo"},
		{Kind: CallItemFieldAccess, Name: "bar"},
		{Kind: CallItemMethodCall, Name: "baz"},
	}

	state, err := resolver.Resolve(chain)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if state.Method == nil || state.Method.Name != "baz" {
		t.Fatalf("expected resolved method baz, got %+v", state.Method)
	}
}

func TestResolverResolveLocalVariableShadowsField(t *testing.T) {
	stringClass := &ClassModel{
		Name:       "java.lang.String",
		SimpleName: "String",
		Package:    "java.lang",
		Kind:       ClassKindClass,
		Methods: []MethodModel{
			{Name: "length", ReturnType: TypeModel{Name: "int"}},
		},
	}

	resolver := &Resolver{
		EnclosingPackage: "java.lang",
		Classes:          map[string]*ClassModel{stringClass.Name: stringClass},
		Locals: []LocalVariable{
			{Level: 2, Name: "value", JType: TypeModel{Name: "java.lang.Object"}},
			{Level: 4, Name: "value", JType: TypeModel{Name: "java.lang.String"}},
		},
	}

	chain := []CallItem{
		{Kind: CallItemVariable, Name: "value"},
		{Kind: CallItemMethodCall, Name: "length"},
	}

	state, err := resolver.Resolve(chain)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if state.Method == nil || state.Method.Name != "length" {
		t.Fatalf("expected the innermost 'value' (String) to resolve length(), got %+v", state.Method)
	}
}

func TestResolverUnknownClassFails(t *testing.T) {
	resolver := &Resolver{Classes: map[string]*ClassModel{}}
	chain := []CallItem{{Kind: CallItemClass, Name: "Missing"}}

	_, err := resolver.Resolve(chain)
	if err == nil {
		t.Fatalf("expected an error resolving an unknown class")
	}
	tyresErr, ok := err.(*TyresError)
	if !ok || tyresErr.Kind != ErrClassNotFound {
		t.Fatalf("expected ErrClassNotFound, got %v", err)
	}
}
