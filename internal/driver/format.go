package driver

import (
	"bytes"
	"context"

	"cedar/internal/format"
	"cedar/internal/source"
	"cedar/internal/trace"
)

// FormatResult is the canonical text of one file.
type FormatResult struct {
	File    *source.File
	Output  []byte
	Changed bool // Output differs from the file content
}

// Format loads path and renders its canonical text. Unknown types are kept;
// only syntax errors fail. With verify the output is re-parsed and must
// give back the same module.
func Format(ctx context.Context, path string, fopts format.Options, verify bool, opts *Options) (*FormatResult, error) {
	f, err := load(ctx, path, opts)
	if err != nil {
		return nil, err
	}
	res := &FormatResult{File: f}

	_, span := trace.Start(ctx, trace.ScopePass, "format")
	done := opts.timer().Track("format")
	res.Output, _, err = format.File(f, fopts)
	if err == nil && verify {
		err = format.CheckRoundTrip(f, fopts)
	}
	done("")
	span.End("")
	if err != nil {
		return res, err
	}
	res.Changed = !bytes.Equal(res.Output, f.Content)
	return res, nil
}
