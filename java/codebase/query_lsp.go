package codebase

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/javasem/javasem/format"
	"github.com/javasem/javasem/java"
	"github.com/javasem/javasem/java/parser"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// textDocumentHover answers spec.md §4.J's hover query: resolve the call
// chain at the cursor and render the resolved class/field/method.
func (ls *LSPServer) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}

	line, col := lspToModelPosition(params.Position)
	state, _, err := ls.codebase.ChainResolutionAt(path, line, col)
	if err != nil || state == nil {
		return nil, nil
	}

	text := hoverText(state)
	if text == "" {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: text,
		},
	}, nil
}

func hoverText(state *java.ResolveState) string {
	switch {
	case state.Method != nil:
		return fmt.Sprintf("```java\n%s\n```", formatMethodSignature(*state.Method))
	case state.Field != nil:
		return fmt.Sprintf("```java\n%s %s\n```", state.Field.Type.Name, state.Field.Name)
	case state.Class != nil:
		return fmt.Sprintf("```java\n%s %s\n```", state.Class.Kind, state.Class.Name)
	default:
		return ""
	}
}

// textDocumentDefinition answers go-to-definition by resolving the chain and
// pointing at the resolved member/class's recorded source range.
func (ls *LSPServer) textDocumentDefinition(ctx *glsp.Context, params *protocol.DefinitionParams) (any, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}

	line, col := lspToModelPosition(params.Position)
	state, _, err := ls.codebase.ChainResolutionAt(path, line, col)
	if err != nil || state == nil {
		return nil, nil
	}

	var (
		span       *parser.Span
		sourceFile string
	)
	switch {
	case state.Method != nil:
		span = state.Method.SourceRange
		if state.Class != nil {
			sourceFile = state.Class.SourceFile
		}
	case state.Field != nil:
		span = state.Field.SourceRange
		if state.Class != nil {
			sourceFile = state.Class.SourceFile
		}
	case state.Class != nil:
		sourceFile = state.Class.SourceFile
	}

	if sourceFile == "" {
		return nil, nil
	}

	rng := protocol.Range{}
	if span != nil {
		rng = spanToRange(*span)
	}

	return protocol.Location{
		URI:   pathToURI(sourceFile),
		Range: rng,
	}, nil
}

// textDocumentReferences answers find-references from the reference map:
// resolve the chain, find the target FQCN, and return every recorded unit.
func (ls *LSPServer) textDocumentReferences(ctx *glsp.Context, params *protocol.ReferenceParams) ([]protocol.Location, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}

	line, col := lspToModelPosition(params.Position)
	state, _, err := ls.codebase.ChainResolutionAt(path, line, col)
	if err != nil || state == nil || state.Class == nil {
		return nil, nil
	}

	units := ls.codebase.References().Get(state.Class.Name)
	if len(units) == 0 {
		return nil, nil
	}

	locations := make([]protocol.Location, 0, len(units))
	for _, u := range units {
		locations = append(locations, protocol.Location{
			URI:   pathToURI(u.SourceFile),
			Range: spanToRange(u.Range),
		})
	}
	return locations, nil
}

// textDocumentDocumentSymbol lists the classes, fields and methods declared
// in one file, per spec.md §4.C's position-query family.
func (ls *LSPServer) textDocumentDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}

	file := ls.codebase.GetFile(path)
	if file == nil || file.AST == nil || len(file.Classes) == 0 {
		return nil, nil
	}

	classPositions := java.GetClassPositions(file.AST)
	rangeByName := make(map[string]protocol.Range, len(classPositions))
	for _, p := range classPositions {
		rangeByName[p.Name] = spanToRange(p.Range)
	}

	var symbols []protocol.DocumentSymbol
	for _, cls := range file.Classes {
		symbols = append(symbols, classToDocumentSymbol(cls, rangeByName[cls.SimpleName]))
	}
	return symbols, nil
}

func classToDocumentSymbol(cls *java.ClassModel, classRange protocol.Range) protocol.DocumentSymbol {
	var children []protocol.DocumentSymbol
	for _, f := range cls.Fields {
		children = append(children, protocol.DocumentSymbol{
			Name:           f.Name,
			Kind:           protocol.SymbolKindField,
			Range:          spanOrZero(f.SourceRange),
			SelectionRange: spanOrZero(f.SourceRange),
		})
	}
	for _, m := range cls.Methods {
		children = append(children, protocol.DocumentSymbol{
			Name:           m.Name,
			Kind:           protocol.SymbolKindMethod,
			Range:          spanOrZero(m.SourceRange),
			SelectionRange: spanOrZero(m.SourceRange),
		})
	}
	return protocol.DocumentSymbol{
		Name:           cls.SimpleName,
		Kind:           classKindToSymbolKind(cls.Kind),
		Range:          classRange,
		SelectionRange: classRange,
		Children:       children,
	}
}

func classKindToSymbolKind(kind java.ClassKind) protocol.SymbolKind {
	switch kind {
	case java.ClassKindInterface:
		return protocol.SymbolKindInterface
	case java.ClassKindEnum:
		return protocol.SymbolKindEnum
	default:
		return protocol.SymbolKindClass
	}
}

// workspaceSymbol answers a project-wide fuzzy class search over the index.
func (ls *LSPServer) workspaceSymbol(ctx *glsp.Context, params *protocol.WorkspaceSymbolParams) ([]protocol.SymbolInformation, error) {
	if ls.codebase == nil {
		return nil, nil
	}

	query := strings.ToLower(params.Query)
	var results []protocol.SymbolInformation
	for _, cls := range ls.codebase.AllClasses() {
		if query != "" && !strings.Contains(strings.ToLower(cls.SimpleName), query) {
			continue
		}
		if cls.SourceFile == "" {
			continue
		}
		results = append(results, protocol.SymbolInformation{
			Name: cls.SimpleName,
			Kind: classKindToSymbolKind(cls.Kind),
			Location: protocol.Location{
				URI: pathToURI(cls.SourceFile),
			},
		})
		if len(results) >= 200 {
			break
		}
	}
	return results, nil
}

// textDocumentFormatting answers spec.md §4.J's formatting query by running
// the source pretty-printer and replacing the whole document, the same
// whole-file-replace shape the original LSP's external-formatter handler
// uses.
func (ls *LSPServer) textDocumentFormatting(ctx *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}

	file := ls.codebase.GetFile(path)
	if file == nil || file.ParseErr != nil {
		return nil, nil
	}

	formatted, err := format.PrettyPrintJavaFile(file.Content, path)
	if err != nil || formatted == nil {
		return nil, nil
	}

	return []protocol.TextEdit{{
		Range:   wholeDocumentRange(file.Content),
		NewText: string(formatted),
	}}, nil
}

func wholeDocumentRange(content []byte) protocol.Range {
	line := bytes.Count(content, []byte("\n"))
	lastNewline := bytes.LastIndexByte(content, '\n')
	col := len(content) - (lastNewline + 1)
	return protocol.Range{
		Start: protocol.Position{Line: 0, Character: 0},
		End:   protocol.Position{Line: uint32(line), Character: uint32(col)},
	}
}

// textDocumentCodeAction answers spec.md §4.C/§4.J's "propose add-import"
// query: find the type reference under the requested range and, if it
// is not covered by an import, offer one quick-fix import per index match
// (at most four).
func (ls *LSPServer) textDocumentCodeAction(ctx *glsp.Context, params *protocol.CodeActionParams) (any, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}

	file := ls.codebase.GetFile(path)
	if file == nil || file.AST == nil {
		return nil, nil
	}

	line, col := lspToModelPosition(params.Range.Start)
	found := java.GetClassAt(file.AST, parser.Position{Line: line, Column: col})
	if found == nil {
		return nil, nil
	}

	if importAlreadyCovers(file.AST, found.Name) {
		return nil, nil
	}

	actions := make([]protocol.CodeAction, 0, 4)
	for _, cls := range ls.codebase.AllClasses() {
		if cls.SimpleName != found.Name || cls.Name == "" {
			continue
		}
		actions = append(actions, importQuickFix(file, cls.Name))
		if len(actions) >= 4 {
			break
		}
	}
	if len(actions) == 0 {
		return nil, nil
	}
	return actions, nil
}

// importAlreadyCovers reports whether name needs no new import: it is already
// imported by exact simple name, or the file has any wildcard import (the
// wildcard's package is not checked against name).
func importAlreadyCovers(root *parser.Node, name string) bool {
	for _, imp := range root.ChildrenOfKind(parser.KindImportDecl) {
		qn := imp.FirstChildOfKind(parser.KindQualifiedName)
		if qn == nil || len(qn.Children) == 0 {
			continue
		}
		wildcard := false
		for _, c := range imp.Children {
			if c.Kind == parser.KindIdentifier && c.Token != nil && c.Token.Literal == "*" {
				wildcard = true
			}
		}
		last := qn.Children[len(qn.Children)-1]
		if wildcard || (last.Kind == parser.KindIdentifier && last.Token != nil && last.Token.Literal == name) {
			return true
		}
	}
	return false
}

// importQuickFix builds the "Import <fqcn>" code action: a single text
// edit inserting an import declaration right after the package declaration
// (or at the top of the file, for the default package).
func importQuickFix(file *FileInfo, fqcn string) protocol.CodeAction {
	insertLine := 0
	for _, child := range file.AST.Children {
		if child.Kind == parser.KindPackageDecl {
			insertLine = child.Span.End.Line
		}
	}

	edit := protocol.TextEdit{
		Range: protocol.Range{
			Start: protocol.Position{Line: uint32(insertLine), Character: 0},
			End:   protocol.Position{Line: uint32(insertLine), Character: 0},
		},
		NewText: fmt.Sprintf("import %s;\n", fqcn),
	}

	uri := pathToURI(file.Path)
	title := fmt.Sprintf("Import %s", fqcn)
	kind := protocol.CodeActionKindQuickFix
	return protocol.CodeAction{
		Title: title,
		Kind:  &kind,
		Edit: &protocol.WorkspaceEdit{
			Changes: map[string][]protocol.TextEdit{
				uri: {edit},
			},
		},
	}
}

func spanOrZero(span *parser.Span) protocol.Range {
	if span == nil {
		return protocol.Range{}
	}
	return spanToRange(*span)
}

func spanToRange(span parser.Span) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{
			Line:      uint32(max0(span.Start.Line - 1)),
			Character: uint32(max0(span.Start.Column)),
		},
		End: protocol.Position{
			Line:      uint32(max0(span.End.Line - 1)),
			Character: uint32(max0(span.End.Column)),
		},
	}
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func lspToModelPosition(pos protocol.Position) (line, col int) {
	return int(pos.Line) + 1, int(pos.Character)
}

func pathToURI(path string) string {
	if strings.HasPrefix(path, "file://") {
		return path
	}
	if strings.Contains(path, ":") {
		// virtual paths like "jdk:..." carry no real filesystem location.
		return "jdk://" + path
	}
	return "file://" + path
}
