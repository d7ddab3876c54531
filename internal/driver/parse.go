package driver

import (
	"context"
	"strconv"

	"cedar/internal/ast"
	"cedar/internal/parser"
	"cedar/internal/source"
	"cedar/internal/trace"
)

// ParseResult holds one parsed file.
type ParseResult struct {
	File   *source.File
	Module *ast.Module
}

// Parse loads path and runs the fused parse and typecheck. With
// skipTypecheck the tree comes back even when it references unknown types.
// Errors from the parser are returned unwrapped (*diag.Error or diag.Errors)
// so callers can render them; File is set whenever loading succeeded.
func Parse(ctx context.Context, path string, skipTypecheck bool, opts *Options) (*ParseResult, error) {
	f, err := load(ctx, path, opts)
	if err != nil {
		return nil, err
	}
	res := &ParseResult{File: f}
	res.Module, err = parseFile(ctx, f, skipTypecheck, opts)
	return res, err
}

// Check is Parse with typechecking; only the errors matter.
func Check(ctx context.Context, path string, opts *Options) (*ParseResult, error) {
	return Parse(ctx, path, false, opts)
}

func parseFile(ctx context.Context, f *source.File, skipTypecheck bool, opts *Options) (*ast.Module, error) {
	_, span := trace.Start(ctx, trace.ScopePass, "parse")
	done := opts.timer().Track("parse")

	m, err := parser.Parse(f, parser.Options{SkipTypecheck: skipTypecheck})

	note := "ok"
	if err != nil {
		note = "errors"
	} else {
		span.WithExtra("decls", strconv.Itoa(len(m.Decls)))
	}
	done(note)
	span.End(note)
	return m, err
}
