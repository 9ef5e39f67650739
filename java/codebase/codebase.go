package codebase

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/sasha-s/go-deadlock"

	"github.com/javasem/javasem/java"
	"github.com/javasem/javasem/java/index"
	"github.com/javasem/javasem/java/parser"
	"github.com/javasem/javasem/java/refmap"
)

// Codebase holds the process-wide class index (spec.md §4.E) and reference
// map (spec.md §4.F) for one project root, plus the per-file ASTs needed to
// answer point queries (hover, go-to-definition, completion).
type Codebase struct {
	mu      deadlock.RWMutex
	rootDir string
	files   map[string]*FileInfo

	index *index.Index
	refs  *refmap.Map
}

type FileInfo struct {
	Path     string
	Content  []byte
	AST      *parser.Node
	Classes  []*java.ClassModel
	ParseErr error
}

func New(rootDir string) *Codebase {
	return &Codebase{
		rootDir: rootDir,
		files:   make(map[string]*FileInfo),
		index:   index.New(),
		refs:    refmap.New(),
	}
}

func (c *Codebase) RootDir() string {
	return c.rootDir
}

// Index exposes the underlying class index for background loaders (JDK,
// dependency jars) that insert descriptors outside the file-update path.
func (c *Codebase) Index() *index.Index {
	return c.index
}

// References exposes the reference map for the query surface.
func (c *Codebase) References() *refmap.Map {
	return c.refs
}

func (c *Codebase) ScanAll() error {
	return filepath.Walk(c.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			return nil
		}
		if filepath.Ext(path) == ".java" {
			c.ScanFile(path)
		}
		return nil
	})
}

func (c *Codebase) ScanFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return c.UpdateFile(path, content)
}

func (c *Codebase) UpdateFile(path string, content []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.updateFileLocked(path, content)
}

func (c *Codebase) updateFileLocked(path string, content []byte) error {
	p := parser.ParseCompilationUnit(bytes.NewReader(content), parser.WithFile(filepath.Base(path)), parser.WithPositions())
	ast := p.Finish()

	var classes []*java.ClassModel
	var parseErr error
	if ast != nil {
		classes, parseErr = java.ClassModelsFromSource(content, parser.WithFile(filepath.Base(path)))
	}

	c.index.RemoveFile(path)
	for _, cls := range classes {
		cls.SourceFile = path
		c.index.Insert(cls)
	}

	c.files[path] = &FileInfo{
		Path:     path,
		Content:  content,
		AST:      ast,
		Classes:  classes,
		ParseErr: parseErr,
	}

	java.ResolveInnerClassReferences(c.index.Snapshot())
	for _, cls := range classes {
		c.refs.UpdateClass(cls, c.index)
	}
	return nil
}

// AddClassModel inserts a binary descriptor (decoded from a .class file, a
// jar entry, or the JDK) directly into the index, bypassing the file-parse
// path: binary classes have no source AST.
func (c *Codebase) AddClassModel(model *java.ClassModel) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index.Insert(model)
}

func (c *Codebase) RemoveFile(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.files, path)
	c.index.RemoveFile(path)
	c.refs.PurgeFile(path)
}

func (c *Codebase) GetFile(path string) *FileInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.files[path]
}

func (c *Codebase) AllClasses() []*java.ClassModel {
	return c.index.Snapshot()
}

func (c *Codebase) FindClass(name string) *java.ClassModel {
	return c.index.Get(name)
}

func (c *Codebase) TypeAtPoint(path string, line, column int) string {
	c.mu.RLock()
	f := c.files[path]
	c.mu.RUnlock()

	if f == nil || f.AST == nil {
		return ""
	}

	pos := parser.Position{Line: line, Column: column}
	return java.TypeAtPoint(f.AST, pos, c.AllClasses())
}

// ChainResolutionAt implements spec.md §4.J's composition of call-chain
// extraction, local-variable scope scanning and type resolution into one
// query: recover the chain under the cursor and thread it through the class
// index, returning the resolved state used by hover/definition/completion.
func (c *Codebase) ChainResolutionAt(path string, line, column int) (*java.ResolveState, []java.CallItem, error) {
	c.mu.RLock()
	f := c.files[path]
	c.mu.RUnlock()

	if f == nil || f.AST == nil {
		return nil, nil, nil
	}

	pos := parser.Position{Line: line, Column: column}
	chain := java.CallChainAt(f.AST, pos)
	if len(chain) == 0 {
		return nil, nil, nil
	}

	resolver := c.resolverAt(f.AST, pos)
	state, err := resolver.Resolve(chain)
	return state, chain, err
}

func (c *Codebase) resolverAt(ast *parser.Node, pos parser.Position) *java.Resolver {
	classes := c.index.SnapshotMap()
	locals := java.LocalVariablesAt(ast, pos, c.AllClasses())

	var enclosing *java.ClassModel
	if cn := java.FindEnclosingClassAt(ast, pos); cn != "" {
		enclosing = classes[cn]
	}

	imports := java.ImportsOf(ast)
	pkg := java.PackageOf(ast)
	return java.NewResolverFromImports(imports, pkg, enclosing, locals, classes)
}

func (c *Codebase) CompletionsAtPoint(path string, line, column int) []CompletionItem {
	if state, _, err := c.ChainResolutionAt(path, line, column); err == nil && state != nil && state.Class != nil {
		return completionsForClass(state.Class)
	}

	typeName := c.TypeAtPoint(path, line, column)
	if typeName == "" {
		return nil
	}

	typeName = strings.TrimSuffix(typeName, "[]")

	cls := c.FindClass(typeName)
	if cls == nil {
		return nil
	}

	return completionsForClass(cls)
}

func completionsForClass(cls *java.ClassModel) []CompletionItem {
	var items []CompletionItem

	for _, m := range cls.Methods {
		if m.Visibility != java.VisibilityPublic {
			continue
		}
		items = append(items, CompletionItem{
			Label:      m.Name,
			Kind:       CompletionKindMethod,
			Detail:     formatMethodSignature(m),
			InsertText: formatMethodInsert(m),
		})
	}

	for _, f := range cls.Fields {
		if f.Visibility != java.VisibilityPublic {
			continue
		}
		items = append(items, CompletionItem{
			Label:      f.Name,
			Kind:       CompletionKindField,
			Detail:     f.Type.Name,
			InsertText: f.Name,
		})
	}

	// Record components have implicit accessor methods
	for _, rc := range cls.RecordComponents {
		items = append(items, CompletionItem{
			Label:      rc.Name,
			Kind:       CompletionKindMethod,
			Detail:     rc.Type.Name,
			InsertText: rc.Name + "()",
		})
	}

	return items
}

type CompletionKind int

const (
	CompletionKindMethod CompletionKind = iota
	CompletionKindField
	CompletionKindClass
)

type CompletionItem struct {
	Label      string
	Kind       CompletionKind
	Detail     string
	InsertText string
}

func formatMethodSignature(m java.MethodModel) string {
	var params []string
	for _, p := range m.Parameters {
		params = append(params, p.Type.Name+" "+p.Name)
	}
	return m.ReturnType.Name + " " + m.Name + "(" + strings.Join(params, ", ") + ")"
}

func formatMethodInsert(m java.MethodModel) string {
	if len(m.Parameters) == 0 {
		return m.Name + "()"
	}
	var placeholders []string
	for i, p := range m.Parameters {
		name := p.Name
		if name == "" {
			name = p.Type.Name
		}
		placeholders = append(placeholders, "${"+itoa(i+1)+":"+name+"}")
	}
	return m.Name + "(" + strings.Join(placeholders, ", ") + ")"
}

func itoa(i int) string {
	if i < 10 {
		return string(rune('0' + i))
	}
	return itoa(i/10) + itoa(i%10)
}
