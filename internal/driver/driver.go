// Package driver runs the core passes over files on disk: load, tokenize,
// parse and typecheck, render. It owns everything the core stays out of:
// file I/O, the disk cache, tracing, timings, logging and progress events.
package driver

import (
	"context"
	"os"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"cedar/internal/diag"
	"cedar/internal/format"
	"cedar/internal/gen"
	"cedar/internal/gen/golang"
	"cedar/internal/observ"
	"cedar/internal/pipeline"
	"cedar/internal/source"
	"cedar/internal/trace"
)

// SchemaExt is the extension directory runs look for.
const SchemaExt = ".cedar"

// ErrLoad marks failures to read an input file.
var ErrLoad = errors.New("load failed")

// Options are shared by every driver entry point. The zero value works:
// no logging, no timings, no cache, no progress.
type Options struct {
	Logger   *zap.SugaredLogger
	Timer    *observ.Timer
	Cache    *DiskCache
	Progress pipeline.Sink
	// Jobs bounds parallel work in directory runs; <= 0 means GOMAXPROCS.
	Jobs int
}

func (o *Options) log() *zap.SugaredLogger {
	if o == nil || o.Logger == nil {
		return zap.NewNop().Sugar()
	}
	return o.Logger
}

func (o *Options) timer() *observ.Timer {
	if o == nil {
		return nil
	}
	return o.Timer
}

func (o *Options) sink() pipeline.Sink {
	if o == nil || o.Progress == nil {
		return pipeline.Nop
	}
	return o.Progress
}

// Generators returns a registry with every built-in target.
func Generators() *gen.Registry {
	return gen.NewRegistry(golang.New(), format.Generator{})
}

// load reads path into a fresh FileSet. Every file gets its own set so
// parses never share state.
func load(ctx context.Context, path string, opts *Options) (*source.File, error) {
	_, span := trace.Start(ctx, trace.ScopePass, "load")
	span.WithExtra("path", path)
	defer span.End("")
	done := opts.timer().Track("load")

	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		done("failed")
		return nil, errors.Mark(errors.Wrapf(err, "%s %s", diag.IOLoadFileError.ID(), path), ErrLoad)
	}
	f := fs.Get(id)
	done(path)
	if f.Flags&(source.FileHadBOM|source.FileNormalizedCRLF|source.FileNormalizedNFC) != 0 {
		opts.log().Debugw("normalized input", "path", path, "flags", f.Flags)
	}
	return f, nil
}

// WriteFile writes data to path atomically: a temp file in the same
// directory renamed over the target.
func WriteFile(path string, data []byte, opts *Options) error {
	tmp, err := os.CreateTemp(dirOf(path), ".cedar-*")
	if err != nil {
		return errors.Wrapf(err, "%s %s", diag.IOWriteFileError.ID(), path)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.Wrapf(err, "%s %s", diag.IOWriteFileError.ID(), path)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "%s %s", diag.IOWriteFileError.ID(), path)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return errors.Wrapf(err, "%s %s", diag.IOWriteFileError.ID(), path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrapf(err, "%s %s", diag.IOWriteFileError.ID(), path)
	}
	opts.log().Infow("wrote file", "path", path, "bytes", len(data))
	return nil
}
