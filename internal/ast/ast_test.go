package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cedar/internal/ast"
)

func sampleModule() *ast.Module {
	return &ast.Module{
		Name: "api.cedar",
		Decls: []ast.Decl{
			&ast.Enum{Name: "Role", Tags: []ast.Tag{{Name: "Admin"}, {Name: "Guest"}}},
			&ast.Record{Name: "User", Attributes: []ast.Attribute{
				{Name: "id", Type: ast.NewNamed(ast.Int)},
				{Name: "friends", Type: ast.NewList(ast.NewNamed("User"))},
				{Name: "meta", Type: ast.NewNullable(ast.NewDict(ast.String, ast.NewNamed(ast.Float)))},
			}},
			&ast.Union{Name: "Subject", Members: []*ast.Named{ast.NewNamed("User"), ast.NewNamed("Role")}},
			&ast.Function{
				Name:       "findUser",
				Parameters: []ast.Parameter{{Name: "id", Type: ast.NewNamed(ast.Int)}},
				Return:     ast.NewNullable(ast.NewNamed("User")),
			},
		},
	}
}

func TestEqual(t *testing.T) {
	a, b := sampleModule(), sampleModule()
	b.Name = "other.cedar"
	assert.True(t, ast.Equal(a, b), "module names are not part of equality")

	b.Decls[1].(*ast.Record).Attributes[2].Type = ast.NewDict(ast.String, ast.NewNamed(ast.Float))
	assert.False(t, ast.Equal(a, b), "dropping nullable must change equality")

	c := sampleModule()
	c.Decls[0], c.Decls[1] = c.Decls[1], c.Decls[0]
	assert.False(t, ast.Equal(a, c), "declaration order is significant")

	assert.True(t, ast.Equal(&ast.Module{}, &ast.Module{Decls: []ast.Decl{}}))
	assert.True(t, ast.EqualDecl(&ast.Enum{Name: "A"}, &ast.Enum{Name: "A", Tags: []ast.Tag{}}))
	assert.False(t, ast.EqualDecl(&ast.Enum{Name: "A"}, &ast.Record{Name: "A"}))
	assert.False(t, ast.Equal(nil, &ast.Module{}))
	assert.True(t, ast.Equal(nil, nil))
}

func TestEqualType(t *testing.T) {
	cases := []struct {
		a, b ast.TypeExpr
		want bool
	}{
		{ast.NewNamed("A"), ast.NewNamed("A"), true},
		{ast.NewNamed("A"), ast.NewNamed("B"), false},
		{ast.NewList(ast.NewNamed("A")), ast.NewList(ast.NewNamed("A")), true},
		{ast.NewList(ast.NewNamed("A")), ast.NewNamed("A"), false},
		{ast.NewDict("String", ast.NewNamed("A")), ast.NewDict("String", ast.NewNamed("A")), true},
		{ast.NewDict("String", ast.NewNamed("A")), ast.NewDict("Int", ast.NewNamed("A")), false},
		{ast.NewNullable(ast.NewList(ast.NewNamed("A"))), ast.NewNullable(ast.NewList(ast.NewNamed("A"))), true},
		{ast.NewNullable(ast.NewNamed("A")), ast.NewList(ast.NewNamed("A")), false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ast.EqualType(c.a, c.b), "%s vs %s", c.a, c.b)
	}
}

func TestTypeString(t *testing.T) {
	typ := ast.NewNullable(ast.NewDict(ast.String, ast.NewList(ast.NewNullable(ast.NewNamed("User")))))
	assert.Equal(t, "{String: [User?]}?", typ.String())
}

func TestBuiltins(t *testing.T) {
	assert.Equal(t, []string{"Bool", "Int", "Float", "String", "Timestamp"}, ast.Builtins())
	for _, name := range ast.Builtins() {
		assert.True(t, ast.IsBuiltin(name))
	}
	assert.False(t, ast.IsBuiltin("User"))
	assert.False(t, ast.IsBuiltin("string"))
}

type kindVisitor struct{}

func (kindVisitor) VisitEnum(*ast.Enum) string         { return "enum" }
func (kindVisitor) VisitUnion(*ast.Union) string       { return "union" }
func (kindVisitor) VisitRecord(*ast.Record) string     { return "record" }
func (kindVisitor) VisitFunction(*ast.Function) string { return "fn" }

type depthVisitor struct{}

func (depthVisitor) VisitNamed(*ast.Named) int { return 0 }
func (v depthVisitor) VisitList(t *ast.List) int {
	return 1 + ast.VisitType[int](t.Elem, v)
}
func (v depthVisitor) VisitDict(t *ast.Dict) int {
	return 1 + ast.VisitType[int](t.Value, v)
}
func (v depthVisitor) VisitNullable(t *ast.Nullable) int {
	return 1 + ast.VisitType[int](t.Inner, v)
}

func TestVisitors(t *testing.T) {
	m := sampleModule()
	kinds := make([]string, 0, len(m.Decls))
	for _, d := range m.Decls {
		kinds = append(kinds, ast.VisitDecl[string](d, kindVisitor{}))
	}
	assert.Equal(t, []string{"enum", "record", "union", "fn"}, kinds)

	meta := m.Decls[1].(*ast.Record).Attributes[2].Type
	assert.Equal(t, 2, ast.VisitType[int](meta, depthVisitor{}))
}

func TestWalk(t *testing.T) {
	typ := ast.NewList(ast.NewDict(ast.String, ast.NewNullable(ast.NewNamed("User"))))
	var seen []string
	ast.Walk(typ, func(t ast.TypeExpr) {
		if n, ok := t.(*ast.Named); ok {
			seen = append(seen, n.Name)
		}
	})
	assert.Equal(t, []string{"String", "User"}, seen)
}

func TestFind(t *testing.T) {
	m := sampleModule()
	d, ok := m.Find("User", true)
	require.True(t, ok)
	assert.IsType(t, &ast.Record{}, d)

	_, ok = m.Find("User", false)
	assert.False(t, ok, "types and functions live in separate namespaces")

	fn, ok := m.Find("findUser", false)
	require.True(t, ok)
	assert.Equal(t, "findUser", fn.DeclName())
	assert.False(t, ast.DeclaresType(fn))
}
