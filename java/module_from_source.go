package java

import (
	"bytes"

	"github.com/javasem/javasem/java/parser"
)

// ModuleModelFromSource parses a module-info.java source file and returns
// its module declaration, or nil if the source has none.
func ModuleModelFromSource(source []byte, opts ...parser.Option) (*ModuleModel, error) {
	opts = append(opts, parser.WithComments())
	p := parser.ParseCompilationUnit(bytes.NewReader(source), opts...)
	cu := p.Finish()
	if cu == nil {
		return nil, nil
	}

	decl := cu.FirstChildOfKind(parser.KindModuleDecl)
	if decl == nil {
		return nil, nil
	}

	mod := moduleModelFromDecl(decl)

	if sourcePath := p.SourcePath(); sourcePath != "" {
		mod.SourceFile = sourcePath
		mod.SourceURL = FileURL(sourcePath)
	}

	jf := newJavadocFinder(p.Comments())
	mod.Javadoc = jf.FindForNode(decl)

	return mod, nil
}

func moduleModelFromDecl(decl *parser.Node) *ModuleModel {
	mod := &ModuleModel{}

	for _, child := range decl.Children {
		switch child.Kind {
		case parser.KindIdentifier:
			if child.Token != nil && child.Token.Literal == "open" {
				mod.IsOpen = true
			}
		case parser.KindAnnotation:
			mod.Annotations = append(mod.Annotations, annotationModelFromNode(child, nil))
		case parser.KindQualifiedName:
			mod.Name = qualifiedNameToString(child)
		case parser.KindRequiresDirective:
			mod.Requires = append(mod.Requires, requiresDirectiveFromNode(child))
		case parser.KindExportsDirective:
			mod.Exports = append(mod.Exports, exportsDirectiveFromNode(child))
		case parser.KindOpensDirective:
			mod.Opens = append(mod.Opens, opensDirectiveFromNode(child))
		case parser.KindUsesDirective:
			if qn := child.FirstChildOfKind(parser.KindQualifiedName); qn != nil {
				mod.Uses = append(mod.Uses, qualifiedNameToString(qn))
			}
		case parser.KindProvidesDirective:
			mod.Provides = append(mod.Provides, providesDirectiveFromNode(child))
		}
	}

	return mod
}

func requiresDirectiveFromNode(node *parser.Node) RequiresDirective {
	req := RequiresDirective{}
	for _, child := range node.Children {
		switch child.Kind {
		case parser.KindIdentifier:
			if child.Token == nil {
				continue
			}
			switch child.Token.Literal {
			case "transitive":
				req.IsTransitive = true
			case "static":
				req.IsStatic = true
			}
		case parser.KindQualifiedName:
			req.ModuleName = qualifiedNameToString(child)
		}
	}
	return req
}

func exportsDirectiveFromNode(node *parser.Node) ExportsDirective {
	exp := ExportsDirective{}
	qualNames := qualifiedNameChildren(node)
	if len(qualNames) > 0 {
		exp.PackageName = qualifiedNameToString(qualNames[0])
	}
	for _, qn := range qualNames[1:] {
		exp.ToModules = append(exp.ToModules, qualifiedNameToString(qn))
	}
	return exp
}

func opensDirectiveFromNode(node *parser.Node) OpensDirective {
	opens := OpensDirective{}
	qualNames := qualifiedNameChildren(node)
	if len(qualNames) > 0 {
		opens.PackageName = qualifiedNameToString(qualNames[0])
	}
	for _, qn := range qualNames[1:] {
		opens.ToModules = append(opens.ToModules, qualifiedNameToString(qn))
	}
	return opens
}

func providesDirectiveFromNode(node *parser.Node) ProvidesDirective {
	prov := ProvidesDirective{}
	qualNames := qualifiedNameChildren(node)
	if len(qualNames) > 0 {
		prov.ServiceName = qualifiedNameToString(qualNames[0])
	}
	for _, qn := range qualNames[1:] {
		prov.ImplementationNames = append(prov.ImplementationNames, qualifiedNameToString(qn))
	}
	return prov
}

func qualifiedNameChildren(node *parser.Node) []*parser.Node {
	var names []*parser.Node
	for _, child := range node.Children {
		if child.Kind == parser.KindQualifiedName {
			names = append(names, child)
		}
	}
	return names
}
