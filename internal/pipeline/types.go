// Package pipeline carries per-file progress events from the driver to
// whatever is watching: the Bubble Tea view, a log, or a test.
package pipeline

import "time"

// Stage is a step a file goes through.
type Stage string

const (
	// StageRead loads and normalises the file.
	StageRead Stage = "read"
	// StageCache looks the content hash up in the disk cache.
	StageCache Stage = "cache"
	// StageParse is the fused lex + parse + typecheck pass.
	StageParse Stage = "parse"
	// StageRender runs a generator or the formatter.
	StageRender Stage = "render"
)

// Status captures progress within a stage.
type Status string

const (
	// StatusQueued - file is known but not started.
	StatusQueued Status = "queued"
	// StatusWorking - the stage is running.
	StatusWorking Status = "working"
	// StatusCached - diagnostics came from the cache.
	StatusCached Status = "cached"
	// StatusDone - file finished without errors.
	StatusDone Status = "done"
	// StatusError - file finished with diagnostics or failed to load.
	StatusError Status = "error"
)

// Terminal reports whether no further events follow for the file.
func (s Status) Terminal() bool {
	return s == StatusCached || s == StatusDone || s == StatusError
}

// Event reports progress for a file (or for the whole run when File is empty).
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}
