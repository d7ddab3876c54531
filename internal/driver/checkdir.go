package driver

import (
	"context"
	"path/filepath"
	"runtime"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"cedar/internal/diag"
	"cedar/internal/pipeline"
	"cedar/internal/source"
	"cedar/internal/trace"
)

// FileResult is the outcome of checking one file of a directory run.
type FileResult struct {
	Path    string
	File    *source.File  // nil when the file could not be read
	Errors  []*diag.Error // lexical, syntax or semantic failures in source order
	LoadErr error
	Decls   int
	Cached  bool
	Elapsed time.Duration
}

// Failed reports whether the file has any error.
func (r *FileResult) Failed() bool {
	return r.LoadErr != nil || len(r.Errors) > 0
}

// CheckDir checks every *.cedar file under dir. Files are independent: each
// is loaded and parsed on its own, at most opts.Jobs at a time. Results come
// back in path order whatever the completion order was.
func CheckDir(ctx context.Context, dir string, opts *Options) ([]FileResult, error) {
	files, err := ListSchemaFiles(dir)
	if err != nil {
		return nil, err
	}
	return CheckFiles(ctx, files, opts)
}

// CheckFiles is CheckDir over an explicit list.
func CheckFiles(ctx context.Context, files []string, opts *Options) ([]FileResult, error) {
	sink := opts.sink()
	pipeline.Queue(sink, files)
	if len(files) == 0 {
		return nil, nil
	}

	ctx, runSpan := trace.Start(ctx, trace.ScopeDriver, "check")
	defer runSpan.End("")

	jobs := 0
	if opts != nil {
		jobs = opts.Jobs
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индекс i уникален для каждой горутины, мьютекс не нужен
	results := make([]FileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = checkOne(gctx, path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, errors.Wrap(err, "check")
	}

	failed := 0
	for i := range results {
		if results[i].Failed() {
			failed++
		}
	}
	opts.log().Infow("checked", "files", len(files), "failed", failed)
	return results, nil
}

func checkOne(ctx context.Context, path string, opts *Options) FileResult {
	sink := opts.sink()
	log := opts.log()
	started := time.Now()
	res := FileResult{Path: path}

	ctx, span := trace.Start(ctx, trace.ScopeFile, "file:"+filepath.Base(path))
	finish := func(status pipeline.Status, stage pipeline.Stage) FileResult {
		res.Elapsed = time.Since(started)
		span.End(string(status))
		sink.OnEvent(pipeline.Event{File: path, Stage: stage, Status: status, Err: res.LoadErr, Elapsed: res.Elapsed})
		return res
	}

	sink.OnEvent(pipeline.Event{File: path, Stage: pipeline.StageRead, Status: pipeline.StatusWorking})
	f, err := load(ctx, path, opts)
	if err != nil {
		res.LoadErr = err
		return finish(pipeline.StatusError, pipeline.StageRead)
	}
	res.File = f

	if opts != nil && opts.Cache != nil {
		sink.OnEvent(pipeline.Event{File: path, Stage: pipeline.StageCache, Status: pipeline.StatusWorking})
		payload, ok, err := opts.Cache.Get(f.Hash)
		switch {
		case err != nil:
			log.Warnw("cache read failed", "path", path, "error", err)
		case ok:
			log.Debugw("cache hit", "path", path)
			res.Cached = true
			res.Decls = payload.Decls
			res.Errors = payload.bind(f)
			return finish(pipeline.StatusCached, pipeline.StageCache)
		default:
			log.Debugw("cache miss", "path", path)
		}
	}

	sink.OnEvent(pipeline.Event{File: path, Stage: pipeline.StageParse, Status: pipeline.StatusWorking})
	m, err := parseFile(ctx, f, false, opts)
	if m != nil {
		res.Decls = len(m.Decls)
	}
	res.Errors = diag.Collect(err)
	if err != nil && res.Errors == nil {
		// не диагностика, а что-то иное
		res.LoadErr = err
	}

	if opts != nil && opts.Cache != nil && res.LoadErr == nil {
		if err := opts.Cache.Put(f.Hash, toPayload(res.Decls, res.Errors)); err != nil {
			log.Warnw("cache write failed", "path", path, "error", err)
		}
	}

	if res.Failed() {
		return finish(pipeline.StatusError, pipeline.StageParse)
	}
	return finish(pipeline.StatusDone, pipeline.StageParse)
}
