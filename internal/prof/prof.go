// Package prof wraps runtime/pprof and runtime/trace for the CLI profiling flags.
package prof

import (
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"

	"github.com/cockroachdb/errors"
)

// Config lists the outputs to produce; empty paths are skipped.
type Config struct {
	CPU   string // CPU profile, sampled for the whole run
	Mem   string // heap profile, written on Stop
	Trace string // runtime execution trace
}

// Enabled reports whether any output is requested.
func (c Config) Enabled() bool {
	return c.CPU != "" || c.Mem != "" || c.Trace != ""
}

// Profiler is one profiling session. The zero value does nothing.
type Profiler struct {
	cfg       Config
	cpuFile   *os.File
	traceFile *os.File
}

// Start begins CPU profiling and the execution trace as configured.
// On error nothing is left running.
func Start(cfg Config) (*Profiler, error) {
	p := &Profiler{cfg: cfg}
	if cfg.CPU != "" {
		f, err := os.Create(cfg.CPU)
		if err != nil {
			return nil, errors.Wrap(err, "cpu profile")
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return nil, errors.Wrap(err, "cpu profile")
		}
		p.cpuFile = f
	}
	if cfg.Trace != "" {
		f, err := os.Create(cfg.Trace)
		if err != nil {
			p.stopCPU()
			return nil, errors.Wrap(err, "execution trace")
		}
		if err := trace.Start(f); err != nil {
			_ = f.Close()
			p.stopCPU()
			return nil, errors.Wrap(err, "execution trace")
		}
		p.traceFile = f
	}
	return p, nil
}

// Stop ends everything Start began and writes the heap profile.
// Safe on a nil Profiler and safe to call twice.
func (p *Profiler) Stop() error {
	if p == nil {
		return nil
	}
	var err error
	if p.traceFile != nil {
		trace.Stop()
		err = errors.CombineErrors(err, p.traceFile.Close())
		p.traceFile = nil
	}
	err = errors.CombineErrors(err, p.stopCPU())
	if p.cfg.Mem != "" {
		err = errors.CombineErrors(err, writeMem(p.cfg.Mem))
		p.cfg.Mem = ""
	}
	return err
}

func (p *Profiler) stopCPU() error {
	if p.cpuFile == nil {
		return nil
	}
	pprof.StopCPUProfile()
	err := p.cpuFile.Close()
	p.cpuFile = nil
	return err
}

func writeMem(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "heap profile")
	}
	defer func() { err = errors.CombineErrors(err, f.Close()) }()
	runtime.GC()
	return errors.Wrap(pprof.WriteHeapProfile(f), "heap profile")
}
