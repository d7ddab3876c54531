package format

import (
	"cedar/internal/ast"
	"cedar/internal/doc"
	"cedar/internal/gen"
)

// Generator exposes the canonical formatter as the "cedar" target.
type Generator struct {
	Options Options
}

func (g Generator) Metadata() gen.Metadata {
	return gen.Metadata{
		Name:        "cedar",
		Description: "canonical schema text",
		Extension:   ".cedar",
		Render:      g.Options.config(),
	}
}

func (Generator) Generate(m *ast.Module, _ gen.Config) (doc.Doc, error) {
	return Doc(m), nil
}
