package format

import (
	"strings"

	"cedar/internal/ast"
	"cedar/internal/doc"
)

// Options controls indentation. Schema text is always indented with spaces:
// a tab is not whitespace for the lexer.
type Options struct {
	IndentWidth int
}

func (o Options) withDefaults() Options {
	if o.IndentWidth <= 0 {
		o.IndentWidth = 2
	}
	return o
}

func (o Options) config() doc.Config {
	o = o.withDefaults()
	return doc.Config{IndentBy: o.IndentWidth, IndentChar: ' '}
}

// Module renders m as schema text. Type declarations are separated by a blank
// line; consecutive functions are kept together. The result is empty for an
// empty module and otherwise ends with exactly one newline.
func Module(m *ast.Module, opt Options) string {
	out := strings.TrimSpace(doc.Render(Doc(m), opt.config()))
	if out == "" {
		return ""
	}
	return out + "\n"
}

// Doc builds the document for m without rendering it.
func Doc(m *ast.Module) doc.Doc {
	var (
		out  doc.Doc = doc.Empty{}
		prev ast.Decl
	)
	for _, d := range m.Decls {
		if prev != nil && (ast.DeclaresType(prev) || ast.DeclaresType(d)) {
			out = out.Append(doc.Newline())
		}
		decl := ast.VisitDecl[doc.Doc](d, printer{})
		if prev != nil {
			decl = doc.LineOf(decl)
		}
		out = out.Append(decl)
		prev = d
	}
	return out
}

type printer struct{}

func (printer) VisitEnum(e *ast.Enum) doc.Doc {
	tags := make([]doc.Doc, len(e.Tags))
	for i, tag := range e.Tags {
		tags[i] = doc.Str(tag.Name + ",")
	}
	return doc.Join(doc.Str("enum "+e.Name), doc.Body("{", "}", tags...))
}

func (printer) VisitUnion(u *ast.Union) doc.Doc {
	members := make([]doc.Doc, len(u.Members))
	for i, m := range u.Members {
		members[i] = doc.Str(m.Name + ",")
	}
	return doc.Join(doc.Str("union "+u.Name), doc.Body("{", "}", members...))
}

func (printer) VisitRecord(r *ast.Record) doc.Doc {
	attrs := make([]doc.Doc, len(r.Attributes))
	for i, a := range r.Attributes {
		attrs[i] = doc.Join(doc.Str(a.Name+" "), typeDoc(a.Type))
	}
	return doc.Join(doc.Str("record "+r.Name), doc.Body("{", "}", attrs...))
}

func (printer) VisitFunction(f *ast.Function) doc.Doc {
	params := make([]doc.Doc, len(f.Parameters))
	for i, p := range f.Parameters {
		params[i] = doc.Join(doc.Str(p.Name+" "), typeDoc(p.Type))
	}
	return doc.Join(
		doc.Str("fn "+f.Name+"("),
		doc.Sep(doc.Str(", "), params),
		doc.Str(") "),
		typeDoc(f.Return),
	)
}

func typeDoc(t ast.TypeExpr) doc.Doc {
	return ast.VisitType[doc.Doc](t, typePrinter{})
}

type typePrinter struct{}

func (typePrinter) VisitNamed(n *ast.Named) doc.Doc {
	return doc.Str(n.Name)
}

func (typePrinter) VisitList(l *ast.List) doc.Doc {
	return doc.Join(doc.Str("["), typeDoc(l.Elem), doc.Str("]"))
}

func (typePrinter) VisitDict(d *ast.Dict) doc.Doc {
	return doc.Join(doc.Str("{"+d.Key.Name+": "), typeDoc(d.Value), doc.Str("}"))
}

func (typePrinter) VisitNullable(n *ast.Nullable) doc.Doc {
	return typeDoc(n.Inner).Append(doc.Str("?"))
}
