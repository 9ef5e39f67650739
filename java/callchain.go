package java

import (
	"github.com/javasem/javasem/java/parser"
)

// CallItemKind is the tag of a CallItem variant (see CallChainAt).
type CallItemKind int

const (
	CallItemClass CallItemKind = iota
	CallItemVariable
	CallItemClassOrVariable
	CallItemFieldAccess
	CallItemMethodCall
	CallItemThis
	CallItemArgumentList
)

func (k CallItemKind) String() string {
	switch k {
	case CallItemClass:
		return "Class"
	case CallItemVariable:
		return "Variable"
	case CallItemClassOrVariable:
		return "ClassOrVariable"
	case CallItemFieldAccess:
		return "FieldAccess"
	case CallItemMethodCall:
		return "MethodCall"
	case CallItemThis:
		return "This"
	case CallItemArgumentList:
		return "ArgumentList"
	default:
		return "Unknown"
	}
}

// CallItem is one atom of a call chain, as described in SPEC_FULL.md §5.4.
// ArgumentList atoms use Prev/FilledParams/ActiveParam; every other kind uses
// only Name and Range.
type CallItem struct {
	Kind  CallItemKind
	Name  string
	Range parser.Span

	Prev         []CallItem
	FilledParams [][]CallItem
	ActiveParam  int
}

var chainExprKinds = map[parser.NodeKind]bool{
	parser.KindFieldAccess: true,
	parser.KindCallExpr:    true,
	parser.KindNewExpr:     true,
	parser.KindIdentifier:  true,
	parser.KindThis:        true,
	parser.KindArrayAccess: true,
	parser.KindLiteral:     true,
	parser.KindParenExpr:   true,
}

// CallChainAt recovers the dotted call-chain ending at (or containing) pos, per
// SPEC_FULL.md §5.4 / spec.md §4.G. It returns nil if pos is not inside any
// Thing, or the expression under the cursor is not chain-shaped.
func CallChainAt(root *parser.Node, pos parser.Position) []CallItem {
	if root == nil {
		return nil
	}

	path := pathToPosition(root, pos)
	if len(path) == 0 {
		return nil
	}

	if item, chain, ok := argumentListChainAt(path, pos); ok {
		return append([]CallItem{item}, chain...)
	}

	// Find the outermost node in the containment path that begins a chain
	// expression; everything from there down to the leaf is one expression.
	for _, n := range path {
		if chainExprKinds[n.Kind] {
			return flattenChain(n)
		}
	}
	return nil
}

// pathToPosition returns the chain of nodes from root down to the innermost
// node whose span contains pos (root first, leaf last).
func pathToPosition(node *parser.Node, pos parser.Position) []*parser.Node {
	if node == nil || !positionInSpan(pos, node.Span) {
		return nil
	}
	path := []*parser.Node{node}
	for _, child := range node.Children {
		if sub := pathToPosition(child, pos); sub != nil {
			path = append(path, sub...)
			break
		}
	}
	return path
}

// argumentListChainAt detects whether pos lies within a CallExpr's argument
// list and, if so, builds the ArgumentList atom plus the focused sub-chain of
// the argument containing pos (spec.md §4.G / scenario 3).
func argumentListChainAt(path []*parser.Node, pos parser.Position) (CallItem, []CallItem, bool) {
	for i := len(path) - 1; i > 0; i-- {
		argsNode := path[i]
		if argsNode.Kind != parser.KindParameters {
			continue
		}
		callExpr := path[i-1]
		if callExpr.Kind != parser.KindCallExpr || len(callExpr.Children) == 0 || callExpr.Children[len(callExpr.Children)-1] != argsNode {
			continue
		}

		target := callExpr.Children[0]
		prev := flattenChain(target)
		if len(prev) > 0 {
			prev[len(prev)-1].Kind = CallItemMethodCall
		}

		filled := make([][]CallItem, len(argsNode.Children))
		active := 0
		for idx, arg := range argsNode.Children {
			filled[idx] = flattenChain(arg)
			if positionInSpan(pos, arg.Span) {
				active = idx
			}
		}

		item := CallItem{
			Kind:        CallItemArgumentList,
			Prev:        prev,
			FilledParams: filled,
			ActiveParam: active,
			Range:       argsNode.Span,
		}

		var focused []CallItem
		if active < len(argsNode.Children) {
			focused = flattenChain(argsNode.Children[active])
		}
		return item, focused, true
	}
	return CallItem{}, nil, false
}

// flattenChain turns an expression subtree into a left-to-right CallItem
// list. It is the core of spec.md §4.G's translation step.
func flattenChain(node *parser.Node) []CallItem {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case parser.KindParenExpr:
		if len(node.Children) > 0 {
			return flattenChain(node.Children[0])
		}
		return nil

	case parser.KindThis:
		return []CallItem{{Kind: CallItemThis, Range: node.Span}}

	case parser.KindLiteral:
		if node.Token != nil && (node.Token.Kind == parser.TokenStringLiteral || node.Token.Kind == parser.TokenTextBlock) {
			return []CallItem{{Kind: CallItemClass, Name: "String", Range: node.Span}}
		}
		return nil

	case parser.KindIdentifier:
		if node.Token == nil {
			return nil
		}
		if !isPlainIdentifierToken(node.Token) {
			return nil
		}
		return []CallItem{{Kind: CallItemClassOrVariable, Name: node.Token.Literal, Range: node.Span}}

	case parser.KindFieldAccess:
		if len(node.Children) < 2 {
			return flattenChain(firstOrNil(node.Children))
		}
		chain := flattenChain(node.Children[0])
		accessed := node.Children[len(node.Children)-1]
		if accessed.Kind == parser.KindThis {
			return append(chain, CallItem{Kind: CallItemThis, Range: accessed.Span})
		}
		if accessed.Token == nil || !isPlainIdentifierToken(accessed.Token) {
			return chain
		}
		return append(chain, CallItem{Kind: CallItemFieldAccess, Name: accessed.Token.Literal, Range: accessed.Span})

	case parser.KindCallExpr:
		if len(node.Children) == 0 {
			return nil
		}
		target := node.Children[0]
		chain := flattenChain(target)
		if len(chain) == 0 {
			return chain
		}
		chain[len(chain)-1].Kind = CallItemMethodCall
		return chain

	case parser.KindNewExpr:
		if len(node.Children) == 0 {
			return nil
		}
		name := qualifiedOrIdentName(node.Children[0])
		if name == "" {
			return nil
		}
		item := CallItem{Kind: CallItemClass, Name: name, Range: node.Children[0].Span}
		rest := []CallItem{item}
		for _, child := range node.Children[1:] {
			if child.Kind == parser.KindParameters {
				rest[len(rest)-1].Kind = CallItemMethodCall
			}
		}
		return rest

	case parser.KindArrayAccess:
		if len(node.Children) == 0 {
			return nil
		}
		return flattenChain(node.Children[0])

	default:
		return nil
	}
}

func firstOrNil(nodes []*parser.Node) *parser.Node {
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}

func qualifiedOrIdentName(node *parser.Node) string {
	if node == nil {
		return ""
	}
	switch node.Kind {
	case parser.KindQualifiedName:
		return qualifiedNameToString(node)
	case parser.KindIdentifier:
		if node.Token != nil {
			return node.Token.Literal
		}
	}
	return ""
}

// isPlainIdentifierToken reports whether a token is a genuine identifier
// rather than a keyword lexed into an identifier-shaped node slot. This is
// the decision recorded in SPEC_FULL.md §9.2: the extractor suppresses the
// "return"-as-FieldAccess artifact at the source, rather than filtering it
// downstream in the resolver.
func isPlainIdentifierToken(tok *parser.Token) bool {
	return tok.Kind == parser.TokenIdent
}
