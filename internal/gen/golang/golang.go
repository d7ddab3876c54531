// Package golang generates a net/http JSON server skeleton from a module.
//
// Every function becomes a request struct, a handler field on the server type
// and a Handle<Name> registration method. ServeHTTP dispatches POST ?fn=<name>.
package golang

import (
	"fmt"
	goken "go/token"

	"github.com/cockroachdb/errors"

	"cedar/internal/ast"
	"cedar/internal/doc"
	"cedar/internal/gen"
)

const (
	OptPackage = "package"
	OptServer  = "server"

	DefaultPackage = "server"
	DefaultServer  = "Server"
)

var imports = []string{"encoding/json", "errors", "net/http"}

// Generator implements gen.Generator for Go.
type Generator struct{}

func New() *Generator {
	return &Generator{}
}

func (*Generator) Metadata() gen.Metadata {
	return gen.Metadata{
		Name:        "go",
		Description: "Go net/http server with JSON request and response types",
		Extension:   ".go",
		Render:      doc.Tabs,
		Options: []gen.Option{
			{Name: OptPackage, Default: DefaultPackage, Usage: "package clause of the generated file"},
			{Name: OptServer, Default: DefaultServer, Usage: "name of the generated server type"},
		},
	}
}

// Generate builds the Go file for m. Output order: package, imports, enums,
// unions, records and request structs in declaration order, the server type,
// ServeHTTP, then one registration method per function.
func (*Generator) Generate(m *ast.Module, cfg gen.Config) (doc.Doc, error) {
	e := &emitter{
		pkg:    cfg.Get(OptPackage, DefaultPackage),
		server: cfg.Get(OptServer, DefaultServer),
		names:  make(map[string]string, len(m.Decls)*2),
	}
	if !goken.IsIdentifier(e.pkg) {
		return nil, errors.Newf("invalid package name %q", e.pkg)
	}
	if !goken.IsIdentifier(e.server) || !goken.IsExported(e.server) {
		return nil, errors.Newf("server type name %q must be an exported Go identifier", e.server)
	}
	if err := e.claim(e.server, "the server type"); err != nil {
		return nil, err
	}
	for _, d := range m.Decls {
		if err := ast.VisitDecl[error](d, e); err != nil {
			return nil, err
		}
	}
	return e.file(), nil
}

type handler struct {
	name    string // имя функции в схеме и значение ?fn=
	field   string
	method  string
	request string
	typ     string
}

type emitter struct {
	pkg, server string
	names       map[string]string // занятые имена Go верхнего уровня -> что их заняло

	enums, unions, records []doc.Doc
	handlers               []handler
}

func (e *emitter) claim(name, what string) error {
	if prev, ok := e.names[name]; ok {
		return errors.WithHint(
			errors.Newf("Go name %s of %s collides with %s", name, what, prev),
			"rename one of the declarations or pick another server name",
		)
	}
	e.names[name] = what
	return nil
}

func (e *emitter) VisitEnum(en *ast.Enum) error {
	if err := e.claim(en.Name, "enum "+en.Name); err != nil {
		return err
	}
	consts := make([]doc.Doc, 0, len(en.Tags))
	for _, tag := range en.Tags {
		name := en.Name + tag.Name
		if err := e.claim(name, fmt.Sprintf("tag %s of enum %s", tag.Name, en.Name)); err != nil {
			return err
		}
		consts = append(consts, doc.Str(fmt.Sprintf("%s %s = %q", name, en.Name, tag.Name)))
	}
	e.enums = append(e.enums,
		doc.Str("type "+en.Name+" string"),
		doc.Join(doc.Str("var"), doc.Body("(", ")", consts...)),
	)
	return nil
}

func (e *emitter) VisitUnion(u *ast.Union) error {
	if err := e.claim(u.Name, "union "+u.Name); err != nil {
		return err
	}
	e.unions = append(e.unions, doc.Str("type "+u.Name+" interface{}"))
	return nil
}

func (e *emitter) VisitRecord(r *ast.Record) error {
	if err := e.claim(r.Name, "record "+r.Name); err != nil {
		return err
	}
	fields, err := structFields(r.Name, r.Attributes)
	if err != nil {
		return err
	}
	e.records = append(e.records, doc.Join(doc.Str("type "+r.Name+" struct"), doc.Body("{", "}", fields...)))
	return nil
}

func (e *emitter) VisitFunction(f *ast.Function) error {
	exported := gen.Capitalize(f.Name)
	h := handler{
		name:    f.Name,
		field:   fieldIdent(f.Name),
		method:  "Handle" + exported,
		request: exported + "Request",
	}
	h.typ = fmt.Sprintf("func(*http.Request, *%s) (%s, error)", h.request, goType(f.Return))
	if err := e.claim(h.request, "the request type of function "+f.Name); err != nil {
		return err
	}

	params := make([]ast.Attribute, len(f.Parameters))
	for i, p := range f.Parameters {
		params[i] = ast.Attribute(p)
	}
	fields, err := structFields(h.request, params)
	if err != nil {
		return err
	}
	e.records = append(e.records, doc.Join(doc.Str("type "+h.request+" struct"), doc.Body("{", "}", fields...)))
	e.handlers = append(e.handlers, h)
	return nil
}

// structFields рендерит поля с json-тегами; совпадение экспортных имён - ошибка.
func structFields(owner string, attrs []ast.Attribute) ([]doc.Doc, error) {
	seen := make(map[string]string, len(attrs))
	out := make([]doc.Doc, 0, len(attrs))
	for _, a := range attrs {
		name := gen.ExportName(a.Name)
		if prev, dup := seen[name]; dup {
			return nil, errors.Newf("%s: fields %q and %q both become Go field %s", owner, prev, a.Name, name)
		}
		seen[name] = a.Name
		out = append(out, doc.Str(fmt.Sprintf("%s %s `json:%q`", name, goType(a.Type), a.Name)))
	}
	return out, nil
}

// fieldIdent keeps the function name as the unexported handler field,
// escaping Go keywords.
func fieldIdent(name string) string {
	if goken.IsKeyword(name) {
		return name + "_"
	}
	return name
}

func (e *emitter) file() doc.Doc {
	quoted := make([]doc.Doc, len(imports))
	for i, imp := range imports {
		quoted[i] = doc.Str(fmt.Sprintf("%q", imp))
	}

	top := []doc.Doc{
		doc.Str("package " + e.pkg),
		doc.Join(doc.Str("import"), doc.Body("(", ")", quoted...)),
	}
	top = append(top, e.enums...)
	top = append(top, e.unions...)
	top = append(top, e.records...)
	top = append(top, e.serverType(), e.serveHTTP())
	for _, h := range e.handlers {
		top = append(top, e.register(h))
	}

	var out doc.Doc = doc.Empty{}
	for i, d := range top {
		if i > 0 {
			out = out.Append(doc.Newline()).Append(doc.Newline())
		}
		out = out.Append(d)
	}
	return out
}

func (e *emitter) serverType() doc.Doc {
	fields := make([]doc.Doc, len(e.handlers))
	for i, h := range e.handlers {
		fields[i] = doc.Str(h.field + " " + h.typ)
	}
	return doc.Join(doc.Str("type "+e.server+" struct"), doc.Body("{", "}", fields...))
}

func (e *emitter) serveHTTP() doc.Doc {
	dispatch := []doc.Doc{doc.Str(`switch req.URL.Query().Get("fn") {`)}
	for _, h := range e.handlers {
		dispatch = append(dispatch,
			doc.LineOf(doc.Str(fmt.Sprintf("case %q:", h.name))),
			doc.Body("", "",
				ifBlock("s."+h.field+" == nil",
					doc.Str(`err = errors.New("function not implemented")`),
					doc.Str("break"),
				),
				doc.Str("var request "+h.request),
				ifBlock("err = json.NewDecoder(req.Body).Decode(&request); err == nil",
					doc.Str(fmt.Sprintf("res, err = s.%s(req, &request)", h.field)),
				),
			),
		)
	}
	dispatch = append(dispatch,
		doc.LineOf(doc.Str("default:")),
		doc.Body("", "", doc.Str(`err = errors.New("invalid function")`)),
		doc.LineOf(doc.Str("}")),
	)

	body := []doc.Doc{
		doc.Str("var res interface{}"),
		doc.Str("var err error"),
		doc.Join(
			ifBlock("req.Method != http.MethodPost", doc.Str(`err = errors.New("method not allowed")`)),
			doc.Str(" else"),
			doc.Body("{", "}", doc.Join(dispatch...)),
		),
		doc.Str(`rw.Header().Set("Content-Type", "application/json")`),
		doc.Join(
			ifBlock("err != nil",
				doc.Str("rw.WriteHeader(http.StatusBadRequest)"),
				doc.Str("res = err.Error()"),
			),
			doc.Str(" else"),
			doc.Body("{", "}", doc.Str("rw.WriteHeader(http.StatusOK)")),
		),
		ifBlock("err := json.NewEncoder(rw).Encode(res); err != nil", doc.Str("panic(err)")),
	}
	header := fmt.Sprintf("func (s *%s) ServeHTTP(rw http.ResponseWriter, req *http.Request)", e.server)
	return doc.Join(doc.Str(header), doc.Body("{", "}", body...))
}

func (e *emitter) register(h handler) doc.Doc {
	header := fmt.Sprintf("func (s *%s) %s(h %s) *%s", e.server, h.method, h.typ, e.server)
	return doc.Join(doc.Str(header), doc.Body("{", "}",
		doc.Str("s."+h.field+" = h"),
		doc.Str("return s"),
	))
}

func ifBlock(cond string, stmts ...doc.Doc) doc.Doc {
	return doc.Join(doc.Str("if "+cond), doc.Body("{", "}", stmts...))
}
