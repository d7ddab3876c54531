package golang

import "cedar/internal/ast"

var builtinTypes = map[string]string{
	ast.Bool:      "bool",
	ast.Int:       "int",
	ast.Float:     "float64",
	ast.String:    "string",
	ast.Timestamp: "float64",
}

func goType(t ast.TypeExpr) string {
	return ast.VisitType[string](t, typeMapper{})
}

type typeMapper struct{}

func (typeMapper) VisitNamed(n *ast.Named) string {
	if g, ok := builtinTypes[n.Name]; ok {
		return g
	}
	return n.Name
}

func (typeMapper) VisitList(l *ast.List) string {
	return "[]" + goType(l.Elem)
}

func (typeMapper) VisitDict(d *ast.Dict) string {
	return "map[string]" + goType(d.Value)
}

func (typeMapper) VisitNullable(n *ast.Nullable) string {
	return "*" + goType(n.Inner)
}
