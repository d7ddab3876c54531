package driver

import (
	"context"

	"github.com/cockroachdb/errors"

	"cedar/internal/gen"
	"cedar/internal/source"
	"cedar/internal/trace"
)

// GenerateResult is a rendered target file.
type GenerateResult struct {
	File   *source.File
	Output []byte
}

// Generate checks path and renders it with g. Diagnostics come back as from
// Check; generator failures are wrapped with the generator name.
func Generate(ctx context.Context, path string, g gen.Generator, cfg gen.Config, opts *Options) (*GenerateResult, error) {
	pr, err := Check(ctx, path, opts)
	if err != nil {
		if pr == nil {
			return nil, err
		}
		return &GenerateResult{File: pr.File}, err
	}
	res := &GenerateResult{File: pr.File}

	name := g.Metadata().Name
	_, span := trace.Start(ctx, trace.ScopePass, "render")
	span.WithExtra("generator", name)
	done := opts.timer().Track("render")
	res.Output, err = gen.Render(g, pr.Module, cfg)
	done(name)
	span.End("")
	if err != nil {
		return res, errors.Wrapf(err, "%s", path)
	}
	opts.log().Debugw("generated", "path", path, "generator", name, "bytes", len(res.Output))
	return res, nil
}
