package format

import (
	"github.com/cockroachdb/errors"

	"cedar/internal/ast"
	"cedar/internal/parser"
	"cedar/internal/source"
)

// ErrNotRoundTrip means the formatted text parses to a different module.
var ErrNotRoundTrip = errors.New("fmt-check: module differs after round-trip")

// File parses sf without typechecking and returns its canonical text.
// Syntax errors come back unchanged as *diag.Error.
func File(sf *source.File, opt Options) ([]byte, *ast.Module, error) {
	m, err := parser.Parse(sf, parser.Options{SkipTypecheck: true})
	if err != nil {
		return nil, nil, err
	}
	return []byte(Module(m, opt)), m, nil
}

// CheckRoundTrip formats sf, re-parses the output and requires the result to be
// structurally equal to the original module.
func CheckRoundTrip(sf *source.File, opt Options) error {
	out, orig, err := File(sf, opt)
	if err != nil {
		return errors.Wrap(err, "fmt-check: initial parse failed")
	}

	fs := source.NewFileSetWithBase("")
	again, err := parser.Parse(fs.Get(fs.AddVirtual(sf.Path, out)), parser.Options{SkipTypecheck: true})
	if err != nil {
		return errors.Wrap(err, "fmt-check: reparse failed")
	}
	if !ast.Equal(orig, again) {
		return errors.WithDetailf(ErrNotRoundTrip, "formatted:\n%s", out)
	}
	return nil
}
