package format

import (
	"io"
	"strings"

	"github.com/javasem/javasem/java"
)

// JavaModelEncoder renders a ClassModel back as Java source, mirroring
// JavaEncoder but operating on the AST-derived model instead of a
// classfile.
type JavaModelEncoder struct {
	w     io.Writer
	model *java.ClassModel
}

func NewJavaModelEncoder(w io.Writer) *JavaModelEncoder {
	return &JavaModelEncoder{w: w}
}

func (e *JavaModelEncoder) Encode(model *java.ClassModel) error {
	e.model = model
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JavaModelEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	m := e.model

	if m.Package != "" {
		sb.WriteString("package ")
		sb.WriteString(m.Package)
		sb.WriteString(";\n\n")
	}

	e.writeClassDeclaration(&sb)
	sb.WriteString(" {\n")

	e.writeFields(&sb)
	e.writeMethods(&sb)

	sb.WriteString("}\n")
	return []byte(sb.String()), nil
}

func (e *JavaModelEncoder) writeClassDeclaration(sb *strings.Builder) {
	m := e.model

	if m.Visibility == java.VisibilityPublic {
		sb.WriteString("public ")
	}
	if m.IsAbstract && m.Kind != java.ClassKindInterface {
		sb.WriteString("abstract ")
	}
	if m.IsSealed {
		sb.WriteString("sealed ")
	}
	if m.IsFinal && m.Kind != java.ClassKindRecord {
		sb.WriteString("final ")
	}

	switch m.Kind {
	case java.ClassKindAnnotation:
		sb.WriteString("@interface ")
	case java.ClassKindEnum:
		sb.WriteString("enum ")
	case java.ClassKindRecord:
		sb.WriteString("record ")
	case java.ClassKindInterface:
		sb.WriteString("interface ")
	default:
		sb.WriteString("class ")
	}

	sb.WriteString(m.SimpleName)

	if m.Kind == java.ClassKindRecord {
		e.writeRecordComponents(sb)
	}

	if m.SuperClass != "" && m.SuperClass != "java.lang.Object" && m.SuperClass != "java.lang.Record" && m.Kind != java.ClassKindEnum {
		sb.WriteString(" extends ")
		sb.WriteString(m.SuperClass)
	}

	if len(m.Interfaces) > 0 {
		if m.Kind == java.ClassKindInterface {
			sb.WriteString(" extends ")
		} else {
			sb.WriteString(" implements ")
		}
		sb.WriteString(strings.Join(m.Interfaces, ", "))
	}

	if len(m.PermittedSubclasses) > 0 {
		sb.WriteString(" permits ")
		sb.WriteString(strings.Join(m.PermittedSubclasses, ", "))
	}
}

func (e *JavaModelEncoder) writeFields(sb *strings.Builder) {
	for _, f := range e.model.Fields {
		if f.IsSynthetic {
			continue
		}
		sb.WriteString("    ")
		e.writeFieldDeclaration(sb, f)
		sb.WriteString(";\n")
	}
	if len(e.model.Fields) > 0 {
		sb.WriteString("\n")
	}
}

func (e *JavaModelEncoder) writeFieldDeclaration(sb *strings.Builder, f java.FieldModel) {
	switch f.Visibility {
	case java.VisibilityPublic:
		sb.WriteString("public ")
	case java.VisibilityPrivate:
		sb.WriteString("private ")
	case java.VisibilityProtected:
		sb.WriteString("protected ")
	}
	if f.IsStatic {
		sb.WriteString("static ")
	}
	if f.IsFinal {
		sb.WriteString("final ")
	}
	if f.IsVolatile {
		sb.WriteString("volatile ")
	}
	if f.IsTransient {
		sb.WriteString("transient ")
	}
	sb.WriteString(typeModelStr(f.Type))
	sb.WriteString(" ")
	sb.WriteString(f.Name)
}

func (e *JavaModelEncoder) writeMethods(sb *strings.Builder) {
	first := true
	for _, m := range e.model.Methods {
		if m.IsSynthetic || m.IsBridge {
			continue
		}
		if !first {
			sb.WriteString("\n")
		}
		first = false
		sb.WriteString("    ")
		e.writeMethodDeclaration(sb, m)
		if m.IsAbstract || m.IsNative || e.model.Kind == java.ClassKindInterface {
			sb.WriteString(";\n")
		} else {
			sb.WriteString(" { }\n")
		}
	}
}

func (e *JavaModelEncoder) writeMethodDeclaration(sb *strings.Builder, m java.MethodModel) {
	switch m.Visibility {
	case java.VisibilityPublic:
		sb.WriteString("public ")
	case java.VisibilityPrivate:
		sb.WriteString("private ")
	case java.VisibilityProtected:
		sb.WriteString("protected ")
	}
	if m.IsStatic {
		sb.WriteString("static ")
	}
	if m.IsFinal {
		sb.WriteString("final ")
	}
	if m.IsAbstract && e.model.Kind != java.ClassKindInterface {
		sb.WriteString("abstract ")
	}
	if m.IsSynchronized {
		sb.WriteString("synchronized ")
	}
	if m.IsNative {
		sb.WriteString("native ")
	}

	if m.Name == "<init>" {
		sb.WriteString(e.model.SimpleName)
	} else {
		sb.WriteString(typeModelStr(m.ReturnType))
		sb.WriteString(" ")
		sb.WriteString(m.Name)
	}

	sb.WriteString("(")
	for i, p := range m.Parameters {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(typeModelStr(p.Type))
		if p.Name != "" {
			sb.WriteString(" ")
			sb.WriteString(p.Name)
		}
	}
	sb.WriteString(")")

	if len(m.Exceptions) > 0 {
		sb.WriteString(" throws ")
		sb.WriteString(strings.Join(m.Exceptions, ", "))
	}
}

func (e *JavaModelEncoder) writeRecordComponents(sb *strings.Builder) {
	sb.WriteString("(")
	for i, c := range e.model.RecordComponents {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(typeModelStr(c.Type))
		sb.WriteString(" ")
		sb.WriteString(c.Name)
	}
	sb.WriteString(")")
}
