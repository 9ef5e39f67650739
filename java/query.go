package java

import "github.com/javasem/javasem/java/parser"

// PackageOf returns the package declared in a compilation unit, or "" for
// the default package.
func PackageOf(cu *parser.Node) string {
	if cu == nil {
		return ""
	}
	return packageFromCompilationUnit(cu)
}

// ImportsOf returns the raw import declarations of a compilation unit, in
// the shape NewResolverFromImports expects.
func ImportsOf(cu *parser.Node) []importInfo {
	if cu == nil {
		return nil
	}
	return importsFromCompilationUnit(cu)
}

// FindEnclosingClassAt returns the fully qualified name of the class,
// interface, enum or record declaration enclosing pos, or "" if none does.
func FindEnclosingClassAt(root *parser.Node, pos parser.Position) string {
	if root == nil {
		return ""
	}
	pkg := packageFromCompilationUnit(root)
	classNode := findEnclosingClass(root, pos)
	if classNode == nil {
		return ""
	}
	return getClassName(classNode, pkg)
}

// SymbolKind numbers match the LSP SymbolKind enumeration directly, so
// java/codebase can cast straight into protocol.SymbolKind.
type SymbolKind int

const (
	SymbolKindClass     SymbolKind = 5
	SymbolKindMethod    SymbolKind = 6
	SymbolKindField     SymbolKind = 8
	SymbolKindEnum      SymbolKind = 10
	SymbolKindInterface SymbolKind = 11
)

// PositionSymbol names one declaration found by the AST range queries
// below, in the document-order they were visited.
type PositionSymbol struct {
	Name  string
	Range parser.Span
	Kind  SymbolKind
}

// FoundClass is the Java type name referenced at a cursor position: an
// import's imported class, a declaration's own name, a superclass or
// implemented/permitted interface, a type-parameter bound, a field type, a
// method's return or parameter type, or an instanceof/cast target.
type FoundClass struct {
	Name  string
	Range parser.Span
}

// GetClassAt returns the type reference under pos, or nil if pos does not
// sit on one. Imports are checked first (the whole import declaration's
// range counts, not just its identifier's), then declarations are walked
// innermost-first: a declaration's own name, its annotations, implements,
// permits and superclass clauses, its type parameters, and finally its body
// — recursing only into child ranges that actually contain pos.
func GetClassAt(root *parser.Node, pos parser.Position) *FoundClass {
	if root == nil {
		return nil
	}
	if found := classInImports(root, pos); found != nil {
		return found
	}
	return classInNode(root, pos)
}

func classInImports(root *parser.Node, pos parser.Position) *FoundClass {
	for _, imp := range root.ChildrenOfKind(parser.KindImportDecl) {
		if !positionInSpan(pos, imp.Span) {
			continue
		}
		if found := foundClassFromQualifiedName(imp.FirstChildOfKind(parser.KindQualifiedName)); found != nil {
			return found
		}
	}
	return nil
}

// classInNode descends only into nodes whose span contains pos and returns
// the innermost type reference found, preferring a declaration's own name
// over its clauses and its clauses over its body.
func classInNode(node *parser.Node, pos parser.Position) *FoundClass {
	if node == nil || !positionInSpan(pos, node.Span) {
		return nil
	}
	if isClassLikeDecl(node.Kind) {
		return classInDecl(node, pos)
	}
	if node.Kind == parser.KindType {
		if found := foundClassFromType(node); found != nil {
			return found
		}
	}
	for _, child := range node.Children {
		if found := classInNode(child, pos); found != nil {
			return found
		}
	}
	return nil
}

func classInDecl(decl *parser.Node, pos parser.Position) *FoundClass {
	if id := decl.FirstChildOfKind(parser.KindIdentifier); id != nil && id.Token != nil && positionInSpan(pos, id.Span) {
		return &FoundClass{Name: id.Token.Literal, Range: id.Span}
	}
	for _, ann := range decl.ChildrenOfKind(parser.KindAnnotation) {
		if found := classInAnnotation(ann, pos); found != nil {
			return found
		}
	}
	for _, clauseKind := range []parser.NodeKind{parser.KindExtendsClause, parser.KindImplementsClause, parser.KindPermitsClause, parser.KindTypeParameters} {
		if clause := decl.FirstChildOfKind(clauseKind); clause != nil {
			if found := classInNode(clause, pos); found != nil {
				return found
			}
		}
	}
	if body := decl.FirstChildOfKind(parser.KindBlock); body != nil {
		if found := classInNode(body, pos); found != nil {
			return found
		}
	}
	return nil
}

func classInAnnotation(ann *parser.Node, pos parser.Position) *FoundClass {
	if !positionInSpan(pos, ann.Span) {
		return nil
	}
	if found := foundClassFromQualifiedName(ann.FirstChildOfKind(parser.KindQualifiedName)); found != nil {
		return found
	}
	if id := ann.FirstChildOfKind(parser.KindIdentifier); id != nil && id.Token != nil {
		return &FoundClass{Name: id.Token.Literal, Range: id.Span}
	}
	return nil
}

// foundClassFromType extracts the simple type name from a Type node: either
// its QualifiedName child (a class/interface reference) or its bare
// Identifier child (a primitive or "var", which names no class).
func foundClassFromType(typeNode *parser.Node) *FoundClass {
	if found := foundClassFromQualifiedName(typeNode.FirstChildOfKind(parser.KindQualifiedName)); found != nil {
		return found
	}
	if id := typeNode.FirstChildOfKind(parser.KindIdentifier); id != nil && id.Token != nil && !isPrimitiveOrVar(id.Token.Literal) {
		return &FoundClass{Name: id.Token.Literal, Range: id.Span}
	}
	return nil
}

func foundClassFromQualifiedName(qn *parser.Node) *FoundClass {
	if qn == nil || len(qn.Children) == 0 {
		return nil
	}
	last := qn.Children[len(qn.Children)-1]
	if last.Kind != parser.KindIdentifier || last.Token == nil {
		return nil
	}
	return &FoundClass{Name: last.Token.Literal, Range: last.Span}
}

func isPrimitiveOrVar(name string) bool {
	switch name {
	case "boolean", "byte", "char", "short", "int", "long", "float", "double", "void", "var":
		return true
	default:
		return false
	}
}

// GetClassPositions lists every class/interface/enum/record declaration in
// a compilation unit, in document order, including nested ones.
func GetClassPositions(root *parser.Node) []PositionSymbol {
	var out []PositionSymbol
	var walk func(node *parser.Node)
	walk = func(node *parser.Node) {
		if node == nil {
			return
		}
		if isClassLikeDecl(node.Kind) {
			if id := node.FirstChildOfKind(parser.KindIdentifier); id != nil && id.Token != nil {
				out = append(out, PositionSymbol{Name: id.Token.Literal, Range: node.Span, Kind: classDeclSymbolKind(node.Kind)})
			}
		}
		for _, c := range node.Children {
			walk(c)
		}
	}
	walk(root)
	return out
}

// GetMethodPositions lists every method/constructor declaration inside the
// class/interface/enum/record declaration enclosing pos.
func GetMethodPositions(root *parser.Node, pos parser.Position) []PositionSymbol {
	classNode := findEnclosingClass(root, pos)
	if classNode == nil {
		return nil
	}
	var out []PositionSymbol
	body := classNode.FirstChildOfKind(parser.KindBlock)
	if body == nil {
		return nil
	}
	for _, member := range body.Children {
		switch member.Kind {
		case parser.KindMethodDecl:
			if id := member.FirstChildOfKind(parser.KindIdentifier); id != nil && id.Token != nil {
				out = append(out, PositionSymbol{Name: id.Token.Literal, Range: member.Span, Kind: SymbolKindMethod})
			}
		case parser.KindConstructorDecl:
			out = append(out, PositionSymbol{Name: "<init>", Range: member.Span, Kind: SymbolKindMethod})
		}
	}
	return out
}

// GetFieldPositions lists every field declared in the class enclosing pos.
func GetFieldPositions(root *parser.Node, pos parser.Position) []PositionSymbol {
	classNode := findEnclosingClass(root, pos)
	if classNode == nil {
		return nil
	}
	var out []PositionSymbol
	body := classNode.FirstChildOfKind(parser.KindBlock)
	if body == nil {
		return nil
	}
	for _, member := range body.Children {
		if member.Kind != parser.KindFieldDecl {
			continue
		}
		for _, child := range member.Children {
			if child.Kind == parser.KindIdentifier && child.Token != nil {
				out = append(out, PositionSymbol{Name: child.Token.Literal, Range: child.Span, Kind: SymbolKindField})
			}
		}
	}
	return out
}

func isClassLikeDecl(kind parser.NodeKind) bool {
	switch kind {
	case parser.KindClassDecl, parser.KindInterfaceDecl, parser.KindEnumDecl, parser.KindRecordDecl:
		return true
	default:
		return false
	}
}

func classDeclSymbolKind(kind parser.NodeKind) SymbolKind {
	switch kind {
	case parser.KindInterfaceDecl:
		return SymbolKindInterface
	case parser.KindEnumDecl:
		return SymbolKindEnum
	default:
		return SymbolKindClass
	}
}
