package main

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cedar/internal/diagfmt"
	"cedar/internal/driver"
	"cedar/internal/logger"
	"cedar/internal/observ"
	"cedar/internal/prof"
	"cedar/internal/trace"
)

// session holds everything derived from the global flags for one command run.
type session struct {
	stdout io.Writer
	stderr io.Writer

	color          bool
	quiet          bool
	timings        bool
	maxDiagnostics int
	diagFormat     string
	pathMode       diagfmt.PathMode
	uiMode         uiMode

	log    *zap.SugaredLogger
	timer  *observ.Timer
	tracer trace.Tracer
	span   *trace.Span
	prof   *prof.Profiler
}

type sessionKey struct{}

func withSession(ctx context.Context, s *session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

func sessionFrom(cmd *cobra.Command) *session {
	if cmd == nil || cmd.Context() == nil {
		return nil
	}
	s, _ := cmd.Context().Value(sessionKey{}).(*session)
	return s
}

type runFunc func(cmd *cobra.Command, args []string, s *session) error

// withSessionRun wraps a command body so the session is always closed,
// including when the body fails.
func withSessionRun(fn runFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s := sessionFrom(cmd)
		if s == nil {
			var err error
			if s, err = newSession(cmd); err != nil {
				return err
			}
		}
		ctx := trace.WithTracer(cmd.Context(), s.tracer)
		s.span = trace.Begin(s.tracer, trace.ScopeDriver, cmd.Name(), 0)
		cmd.SetContext(trace.WithSpan(ctx, s.span))

		err := fn(cmd, args, s)
		return errors.CombineErrors(err, s.close())
	}
}

func newSession(cmd *cobra.Command) (*session, error) {
	pf := cmd.Root().PersistentFlags()
	s := &session{stdout: cmd.OutOrStdout(), stderr: cmd.ErrOrStderr()}

	colorFlag, err := pf.GetString("color")
	if err != nil {
		return nil, errors.Wrap(err, "failed to get color flag")
	}
	switch strings.ToLower(colorFlag) {
	case "on":
		s.color = true
	case "off":
		s.color = false
	case "auto", "":
		s.color = isTerminal(os.Stderr)
	default:
		return nil, errors.WithHint(errors.Newf("invalid --color value %q", colorFlag), "expected auto|on|off")
	}
	color.NoColor = !s.color

	if s.quiet, err = pf.GetBool("quiet"); err != nil {
		return nil, errors.Wrap(err, "failed to get quiet flag")
	}
	if s.timings, err = pf.GetBool("timings"); err != nil {
		return nil, errors.Wrap(err, "failed to get timings flag")
	}
	if s.maxDiagnostics, err = pf.GetInt("max-diagnostics"); err != nil {
		return nil, errors.Wrap(err, "failed to get max-diagnostics flag")
	}
	if s.diagFormat, err = pf.GetString("diagnostics"); err != nil {
		return nil, errors.Wrap(err, "failed to get diagnostics flag")
	}
	switch s.diagFormat {
	case "pretty", "short", "json":
	default:
		return nil, errors.WithHint(errors.Newf("invalid --diagnostics value %q", s.diagFormat), "expected pretty|short|json")
	}

	pathMode, err := pf.GetString("path-mode")
	if err != nil {
		return nil, errors.Wrap(err, "failed to get path-mode flag")
	}
	var ok bool
	if s.pathMode, ok = diagfmt.ParsePathMode(pathMode); !ok {
		return nil, errors.WithHint(errors.Newf("invalid --path-mode value %q", pathMode), "expected auto|absolute|relative|basename")
	}

	uiFlag, err := pf.GetString("ui")
	if err != nil {
		return nil, errors.Wrap(err, "failed to get ui flag")
	}
	if s.uiMode, err = readUIMode(uiFlag); err != nil {
		return nil, err
	}

	verbose, err := pf.GetBool("verbose")
	if err != nil {
		return nil, errors.Wrap(err, "failed to get verbose flag")
	}
	logJSON, err := pf.GetBool("log-json")
	if err != nil {
		return nil, errors.Wrap(err, "failed to get log-json flag")
	}
	s.log = logger.New(logger.Config{Verbose: verbose, JSON: logJSON, Output: s.stderr})

	if s.tracer, err = setupTracing(cmd, s.stderr); err != nil {
		return nil, err
	}
	if s.timings {
		s.timer = observ.NewTimer()
	}
	if s.prof, err = startProfiling(cmd); err != nil {
		_ = s.tracer.Close()
		return nil, err
	}
	return s, nil
}

// setupTracing reads --trace and --trace-level. A path without a level
// traces at phase level.
func setupTracing(cmd *cobra.Command, stderr io.Writer) (trace.Tracer, error) {
	pf := cmd.Root().PersistentFlags()
	output, err := pf.GetString("trace")
	if err != nil {
		return nil, errors.Wrap(err, "failed to get trace flag")
	}
	levelStr, err := pf.GetString("trace-level")
	if err != nil {
		return nil, errors.Wrap(err, "failed to get trace-level flag")
	}
	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return nil, errors.Wrap(err, "--trace-level")
	}
	if level == trace.LevelOff {
		if output == "" {
			return trace.Nop, nil
		}
		level = trace.LevelPhase
	}
	cfg := trace.Config{Level: level, OutputPath: output}
	if output == "" || output == "-" {
		cfg.Output = stderr
	}
	t, err := trace.New(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create tracer")
	}
	return t, nil
}

func startProfiling(cmd *cobra.Command) (*prof.Profiler, error) {
	pf := cmd.Root().PersistentFlags()
	var cfg prof.Config
	var err error
	if cfg.CPU, err = pf.GetString("cpu-profile"); err != nil {
		return nil, errors.Wrap(err, "failed to get cpu-profile flag")
	}
	if cfg.Mem, err = pf.GetString("mem-profile"); err != nil {
		return nil, errors.Wrap(err, "failed to get mem-profile flag")
	}
	if cfg.Trace, err = pf.GetString("exec-trace"); err != nil {
		return nil, errors.Wrap(err, "failed to get exec-trace flag")
	}
	if !cfg.Enabled() {
		return nil, nil
	}
	return prof.Start(cfg)
}

// driverOptions builds the options shared by every driver call.
func (s *session) driverOptions() *driver.Options {
	return &driver.Options{Logger: s.log, Timer: s.timer}
}

// close flushes the tracer and the logger and prints timings. Safe to call twice.
func (s *session) close() error {
	if s == nil {
		return nil
	}
	var err error
	if s.span != nil {
		s.span.End("")
		s.span = nil
	}
	if s.tracer != nil {
		err = errors.CombineErrors(s.tracer.Flush(), s.tracer.Close())
		s.tracer = nil
	}
	if s.prof != nil {
		err = errors.CombineErrors(err, s.prof.Stop())
		s.prof = nil
	}
	if s.timer != nil {
		s.timer.WriteSummary(s.stderr)
		s.timer = nil
	}
	if s.log != nil {
		// stderr не поддерживает Sync на некоторых платформах
		_ = s.log.Sync()
	}
	return err
}
