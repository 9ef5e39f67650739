package java

import (
	"github.com/javasem/javasem/java/parser"
)

// LocalVariable is one name visible at a point, per spec.md §4.H.
type LocalVariable struct {
	Level            int
	JType            TypeModel
	Name             string
	IsFunction       bool
	DeclarationRange parser.Span
}

const (
	levelField     = 2
	levelParameter = 3
	levelLocal     = 4
)

// LocalVariablesAt implements spec.md §4.H: fields and pseudo-variable
// methods of the enclosing class, then parameters and local declarations of
// the enclosing method, descending into every block-shaped construct that
// can introduce a scope (if/while/for/enhanced-for/try/switch/lambda).
func LocalVariablesAt(root *parser.Node, pos parser.Position, classes []*ClassModel) []LocalVariable {
	if root == nil {
		return nil
	}

	pkg := packageFromCompilationUnit(root)
	resolver := newTypeResolver(pkg, importsFromCompilationUnit(root), classes)

	classNode := findEnclosingClass(root, pos)
	if classNode == nil {
		return nil
	}
	className := getClassName(classNode, pkg)
	collectAndRegisterInnerClasses(classNode, className, resolver)

	body := classNode.FirstChildOfKind(parser.KindBlock)
	if body == nil {
		return nil
	}

	var vars []LocalVariable
	var methodNode *parser.Node

	for _, member := range body.Children {
		switch member.Kind {
		case parser.KindFieldDecl:
			for _, f := range fieldModelsFromFieldDecl(member, resolver, nil) {
				vars = append(vars, LocalVariable{
					Level:            levelField,
					JType:            f.Type,
					Name:             f.Name,
					DeclarationRange: member.Span,
				})
			}
		case parser.KindMethodDecl:
			m := methodModelFromMethodDecl(member, resolver, nil)
			vars = append(vars, LocalVariable{
				Level:            levelField,
				JType:            m.ReturnType,
				Name:             m.Name,
				IsFunction:       true,
				DeclarationRange: member.Span,
			})
			if positionInSpan(pos, member.Span) {
				methodNode = member
			}
		case parser.KindConstructorDecl:
			if positionInSpan(pos, member.Span) {
				methodNode = member
			}
		}
	}

	if methodNode == nil {
		return vars
	}

	if params := methodNode.FirstChildOfKind(parser.KindParameters); params != nil {
		for _, p := range parametersFromNode(params, resolver) {
			vars = append(vars, LocalVariable{
				Level:            levelParameter,
				JType:            p.Type,
				Name:             p.Name,
				DeclarationRange: params.Span,
			})
		}
	}

	if block := methodNode.FirstChildOfKind(parser.KindBlock); block != nil {
		scanBlockForLocals(block, resolver, levelLocal, &vars)
	}

	return vars
}

func scanBlockForLocals(node *parser.Node, resolver *typeResolver, level int, out *[]LocalVariable) {
	if node == nil {
		return
	}

	switch node.Kind {
	case parser.KindLocalVarDecl:
		emitLocalVarDecl(node, resolver, level, out)
		for _, c := range node.Children {
			scanBlockForLocals(c, resolver, level, out)
		}
		return

	case parser.KindEnhancedForStmt:
		emitEnhancedFor(node, resolver, level, out)
		for _, c := range node.Children {
			scanBlockForLocals(c, resolver, level+1, out)
		}
		return

	case parser.KindCatchClause:
		emitCatchVar(node, resolver, level, out)
		for _, c := range node.Children {
			scanBlockForLocals(c, resolver, level+1, out)
		}
		return

	case parser.KindTypePattern, parser.KindInstanceofExpr:
		emitPatternVar(node, resolver, level, out)

	case parser.KindLambdaExpr:
		emitLambdaParams(node, resolver, level+1, out)
		for _, c := range node.Children {
			scanBlockForLocals(c, resolver, level+1, out)
		}
		return

	case parser.KindBlock, parser.KindIfStmt, parser.KindWhileStmt, parser.KindDoStmt,
		parser.KindForStmt, parser.KindForInit, parser.KindSwitchStmt, parser.KindSwitchCase,
		parser.KindTryStmt, parser.KindSynchronizedStmt:
		for _, c := range node.Children {
			scanBlockForLocals(c, resolver, level+1, out)
		}
		return
	}

	for _, c := range node.Children {
		scanBlockForLocals(c, resolver, level, out)
	}
}

func emitLocalVarDecl(node *parser.Node, resolver *typeResolver, level int, out *[]LocalVariable) {
	jtype := typeFromDeclaration(node, resolver)
	for _, c := range node.Children {
		if c.Kind == parser.KindIdentifier && c.Token != nil {
			*out = append(*out, LocalVariable{
				Level:            level,
				JType:            TypeModel{Name: jtype},
				Name:             c.Token.Literal,
				DeclarationRange: node.Span,
			})
			return
		}
	}
}

func emitEnhancedFor(node *parser.Node, resolver *typeResolver, level int, out *[]LocalVariable) {
	var typeNode, idNode *parser.Node
	for _, c := range node.Children {
		switch c.Kind {
		case parser.KindType, parser.KindArrayType, parser.KindParameterizedType:
			typeNode = c
		case parser.KindIdentifier:
			if idNode == nil {
				idNode = c
			}
		}
	}
	if idNode == nil {
		return
	}
	tm := TypeModel{Name: "var"}
	if typeNode != nil {
		tm = typeModelFromTypeNode(typeNode, resolver)
	}
	*out = append(*out, LocalVariable{Level: level, JType: tm, Name: idNode.Token.Literal, DeclarationRange: node.Span})
}

func emitCatchVar(node *parser.Node, resolver *typeResolver, level int, out *[]LocalVariable) {
	var typeNode, idNode *parser.Node
	for _, c := range node.Children {
		switch c.Kind {
		case parser.KindType:
			typeNode = c
		case parser.KindIdentifier:
			idNode = c
		}
	}
	if idNode == nil {
		return
	}
	tm := TypeModel{Name: "Exception"}
	if typeNode != nil {
		tm = typeModelFromTypeNode(typeNode, resolver)
	}
	*out = append(*out, LocalVariable{Level: level, JType: tm, Name: idNode.Token.Literal, DeclarationRange: node.Span})
}

func emitPatternVar(node *parser.Node, resolver *typeResolver, level int, out *[]LocalVariable) {
	var typeNode, idNode *parser.Node
	for i, c := range node.Children {
		if c.Kind == parser.KindType || c.Kind == parser.KindTypePattern {
			typeNode = c
		}
		if c.Kind == parser.KindIdentifier && i > 0 {
			idNode = c
		}
	}
	if idNode == nil || idNode.Token == nil {
		return
	}
	tm := TypeModel{Name: "Object"}
	if typeNode != nil {
		tm = typeModelFromTypeNode(typeNode, resolver)
	}
	*out = append(*out, LocalVariable{Level: level, JType: tm, Name: idNode.Token.Literal, DeclarationRange: node.Span})
}

func emitLambdaParams(node *parser.Node, resolver *typeResolver, level int, out *[]LocalVariable) {
	params := node.FirstChildOfKind(parser.KindParameters)
	if params == nil {
		return
	}
	for _, c := range params.Children {
		switch c.Kind {
		case parser.KindIdentifier:
			if c.Token != nil {
				*out = append(*out, LocalVariable{Level: level, JType: TypeModel{Name: "var"}, Name: c.Token.Literal, DeclarationRange: c.Span})
			}
		case parser.KindParameter:
			for _, pc := range parametersFromNode(params, resolver) {
				*out = append(*out, LocalVariable{Level: level, JType: pc.Type, Name: pc.Name, DeclarationRange: c.Span})
			}
			return
		}
	}
}

// VariableTypeAt returns the declared/inferred type of name as seen at pos,
// using the shadowing rule: the entry with the highest Level wins.
func VariableTypeAt(root *parser.Node, pos parser.Position, classes []*ClassModel, name string) (TypeModel, bool) {
	best := -1
	var result TypeModel
	for _, v := range LocalVariablesAt(root, pos, classes) {
		if v.Name == name && v.Level > best {
			best = v.Level
			result = v.JType
		}
	}
	return result, best >= 0
}
