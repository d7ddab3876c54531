package gen_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cedar/internal/ast"
	"cedar/internal/doc"
	"cedar/internal/gen"
)

// names перечисляет объявления по одному на строку.
type names struct{ name string }

func (n names) Metadata() gen.Metadata {
	return gen.Metadata{
		Name:    n.name,
		Render:  doc.DefaultConfig,
		Options: []gen.Option{{Name: "prefix", Default: "- "}},
	}
}

func (names) Generate(m *ast.Module, cfg gen.Config) (doc.Doc, error) {
	if len(m.Decls) == 0 {
		return nil, errors.New("nothing to list")
	}
	lines := make([]doc.Doc, len(m.Decls))
	for i, d := range m.Decls {
		lines[i] = doc.Str(cfg.Get("prefix", "- ") + d.DeclName())
	}
	return doc.Join(doc.Str("decls:"), doc.Body("", "", lines...)), nil
}

func sample() *ast.Module {
	return &ast.Module{Decls: []ast.Decl{
		&ast.Enum{Name: "A"},
		&ast.Function{Name: "f", Return: ast.NewNamed("A")},
	}}
}

func TestRender(t *testing.T) {
	out, err := gen.Render(names{"names"}, sample(), nil)
	require.NoError(t, err)
	assert.Equal(t, "decls:\n  - A\n  - f\n", string(out))

	out, err = gen.Render(names{"names"}, sample(), gen.Config{"prefix": "* "})
	require.NoError(t, err)
	assert.Equal(t, "decls:\n  * A\n  * f\n", string(out))
}

func TestRenderErrors(t *testing.T) {
	_, err := gen.Render(names{"names"}, &ast.Module{}, nil)
	assert.EqualError(t, err, "generate names: nothing to list")

	_, err = gen.Render(names{"names"}, sample(), gen.Config{"indent": "4"})
	require.Error(t, err)
	assert.Equal(t, `generator "names" has no option "indent"`, err.Error())
	assert.Equal(t, "known options: prefix", errors.FlattenHints(err))
}

func TestRegistry(t *testing.T) {
	r := gen.NewRegistry(names{"b"}, names{"a"})
	assert.Equal(t, []string{"a", "b"}, r.Names())

	g, ok := r.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, "a", g.Metadata().Name)

	require.Error(t, r.Register(names{"a"}), "duplicate names are rejected")
	require.Error(t, r.Register(names{""}))
	require.NoError(t, r.Register(names{"c"}))
	assert.Equal(t, []string{"a", "b", "c"}, r.Names())

	_, err := r.Get("elm")
	require.ErrorIs(t, err, gen.ErrUnknownGenerator)
	assert.Contains(t, errors.FlattenHints(err), `choose from ["a" "b" "c"]`)

	_, err = gen.NewRegistry().Get("go")
	require.ErrorIs(t, err, gen.ErrUnknownGenerator)
}

func TestRegistryPanicsOnDuplicate(t *testing.T) {
	assert.Panics(t, func() { gen.NewRegistry(names{"x"}, names{"x"}) })
}

func TestNaming(t *testing.T) {
	tests := []struct{ in, capital, export string }{
		{"id", "Id", "ID"},
		{"ID", "ID", "ID"},
		{"userId", "UserId", "UserId"},
		{"name", "Name", "Name"},
		{"", "", ""},
		{"éclair", "Éclair", "Éclair"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.capital, gen.Capitalize(tt.in), tt.in)
		assert.Equal(t, tt.export, gen.ExportName(tt.in), tt.in)
	}
}
