package gen

import (
	"slices"
	"strings"

	"github.com/cockroachdb/errors"

	"cedar/internal/ast"
	"cedar/internal/doc"
)

// Config holds generator options keyed by option name.
type Config map[string]string

// Get returns the value of key or def when it is unset or empty.
func (c Config) Get(key, def string) string {
	if v, ok := c[key]; ok && v != "" {
		return v
	}
	return def
}

// Option describes one configuration key understood by a generator.
type Option struct {
	Name    string
	Default string
	Usage   string
}

// Metadata describes a generator to the registry and the CLI.
type Metadata struct {
	Name        string
	Description string
	// Extension of generated files, with the leading dot.
	Extension string
	// Render is the layout the produced document is rendered with.
	Render  doc.Config
	Options []Option
}

// Option looks up an option by name.
func (m Metadata) Option(name string) (Option, bool) {
	for _, o := range m.Options {
		if o.Name == name {
			return o, true
		}
	}
	return Option{}, false
}

// Generator renders a validated module into a target language.
// Generate must not have side effects; the same input gives the same document.
type Generator interface {
	Metadata() Metadata
	Generate(m *ast.Module, cfg Config) (doc.Doc, error)
}

// Validate rejects config keys the generator does not know.
func Validate(meta Metadata, cfg Config) error {
	keys := make([]string, 0, len(cfg))
	for k := range cfg {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if _, ok := meta.Option(k); ok {
			continue
		}
		known := make([]string, 0, len(meta.Options))
		for _, o := range meta.Options {
			known = append(known, o.Name)
		}
		slices.Sort(known)
		err := errors.Newf("generator %q has no option %q", meta.Name, k)
		if len(known) == 0 {
			return errors.WithHint(err, "this generator takes no options")
		}
		return errors.WithHintf(err, "known options: %s", strings.Join(known, ", "))
	}
	return nil
}

// Render validates cfg, generates m and renders the document with the
// generator's layout. Non-empty output always ends with a newline.
func Render(g Generator, m *ast.Module, cfg Config) ([]byte, error) {
	meta := g.Metadata()
	if err := Validate(meta, cfg); err != nil {
		return nil, err
	}
	d, err := g.Generate(m, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "generate %s", meta.Name)
	}
	out := doc.Render(d, meta.Render)
	if out != "" && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return []byte(out), nil
}
