package doc_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cedar/internal/doc"
)

// randomDoc строит произвольное конечное дерево документа.
func randomDoc(r *rand.Rand, depth int) doc.Doc {
	kind := r.Intn(5)
	if depth <= 0 {
		kind = r.Intn(2)
	}
	words := []string{"a", "bc", "", "record", " ", "{", "}"}
	switch kind {
	case 0:
		return doc.Empty{}
	case 1:
		return doc.Text{Value: words[r.Intn(len(words))], Next: randomDoc(r, depth-1)}
	case 2:
		return doc.Line{Next: randomDoc(r, depth-1)}
	case 3:
		n := r.Intn(4)
		children := make([]doc.Doc, n)
		for i := range children {
			children[i] = randomDoc(r, depth-1)
		}
		return doc.Block{Children: children}
	default:
		n := r.Intn(4)
		children := make([]doc.Doc, n)
		for i := range children {
			children[i] = randomDoc(r, depth-1)
		}
		return doc.Concat{Children: children}
	}
}

func configs() []doc.Config {
	return []doc.Config{
		doc.DefaultConfig,
		doc.Tabs,
		{Offset: 3, IndentBy: 4, IndentChar: '.'},
	}
}

func TestEmptyIsIdentity(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for range 500 {
		x := randomDoc(r, 4)
		assert.Equal(t, x, doc.Empty{}.Append(x))
		assert.Equal(t, x, x.Append(doc.Empty{}))
	}
}

func TestAppendIsAssociative(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for range 500 {
		a, b, c := randomDoc(r, 3), randomDoc(r, 3), randomDoc(r, 3)
		left := a.Append(b).Append(c)
		right := a.Append(b.Append(c))
		for _, cfg := range configs() {
			require.Equal(t, doc.Render(left, cfg), doc.Render(right, cfg))
		}
	}
}

func TestRenderIsHomomorphic(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for range 500 {
		a, b := randomDoc(r, 4), randomDoc(r, 4)
		for _, cfg := range configs() {
			require.Equal(t, doc.Render(a, cfg)+doc.Render(b, cfg), doc.Render(a.Append(b), cfg))
		}
	}
}

func TestAppendRules(t *testing.T) {
	text := doc.Str("a")
	line := doc.Newline()
	block := doc.Block{Children: []doc.Doc{doc.Str("x")}}

	assert.Equal(t, doc.Text{Value: "a", Next: doc.Str("b")}, text.Append(doc.Str("b")))
	assert.Equal(t, doc.Line{Next: doc.Str("b")}, line.Append(doc.Str("b")))
	assert.Equal(t, doc.Concat{Children: []doc.Doc{block, text}}, block.Append(text))

	c := doc.Concat{Children: []doc.Doc{text}}
	assert.Equal(t, doc.Concat{Children: []doc.Doc{text, block}}, c.Append(block))
	assert.Equal(t, doc.Concat{Children: []doc.Doc{text, line, block}},
		c.Append(doc.Concat{Children: []doc.Doc{line, block}}))

	// исходный Concat не меняется
	assert.Len(t, c.Children, 1)
}

func TestTextChainCollapses(t *testing.T) {
	d := doc.Join(doc.Str("a"), doc.Str("b"), doc.Str("c"))
	want := doc.Text{Value: "a", Next: doc.Text{Value: "b", Next: doc.Text{Value: "c", Next: doc.Empty{}}}}
	assert.Equal(t, want, d)
	assert.Equal(t, doc.Empty{}, doc.Join())
}

func TestRenderBlockIndentsChildren(t *testing.T) {
	inner := doc.Join(doc.Newline(), doc.Str("x"), doc.LineOf(doc.Str("y")))
	b := doc.Block{Children: []doc.Doc{inner, inner}}

	for _, cfg := range configs() {
		pad := strings.Repeat(string(cfg.IndentChar), cfg.Offset+cfg.IndentBy)
		want := "\n" + pad + "x\n" + pad + "y"
		assert.Equal(t, want+want, doc.Render(b, cfg))

		deeper := cfg
		deeper.Offset += cfg.IndentBy
		assert.Equal(t, doc.Render(inner, deeper)+doc.Render(inner, deeper), doc.Render(b, cfg))
	}
}

func TestRenderNested(t *testing.T) {
	d := doc.Join(
		doc.Str("record User"),
		doc.Body("{", "}",
			doc.Str("id Int"),
			doc.Join(doc.Str("tags"), doc.Body("[", "]", doc.Str("String"))),
		),
	)
	want := "record User {\n  id Int\n  tags [\n    String\n  ]\n}"
	assert.Equal(t, want, doc.Render(d, doc.DefaultConfig))

	wantTabs := "record User {\n\tid Int\n\ttags [\n\t\tString\n\t]\n}"
	assert.Equal(t, wantTabs, doc.Render(d, doc.Tabs))
}

func TestBodyWithoutBrackets(t *testing.T) {
	d := doc.Join(doc.Str("head:"), doc.Body("", "", doc.Str("one"), doc.Str("two")))
	assert.Equal(t, "head:\n  one\n  two", doc.Render(d, doc.DefaultConfig))

	empty := doc.Join(doc.Str("enum A"), doc.Body("{", "}"))
	assert.Equal(t, "enum A {\n}", doc.Render(empty, doc.DefaultConfig))
}

func TestSep(t *testing.T) {
	d := doc.Sep(doc.Str(", "), []doc.Doc{doc.Str("a A"), doc.Str("b B"), doc.Str("c C")})
	assert.Equal(t, "a A, b B, c C", doc.Render(d, doc.DefaultConfig))
	assert.Equal(t, "", doc.Render(doc.Sep(doc.Str(", "), nil), doc.DefaultConfig))
}

func TestNilContinuation(t *testing.T) {
	d := doc.Text{Value: "x"}
	assert.Equal(t, "x", doc.Render(d, doc.DefaultConfig))
	assert.Equal(t, "xy", doc.Render(d.Append(doc.Str("y")), doc.DefaultConfig))
	assert.Equal(t, doc.Empty{}, doc.Empty{}.Append(nil))
}

func TestRenderOffset(t *testing.T) {
	cfg := doc.Config{Offset: 2, IndentBy: 2, IndentChar: ' '}
	assert.Equal(t, "a\n  b", doc.Render(doc.Join(doc.Str("a"), doc.LineOf(doc.Str("b"))), cfg))
	assert.Equal(t, doc.Config{Offset: 4, IndentBy: 2, IndentChar: ' '}, cfg.Indent())
}
