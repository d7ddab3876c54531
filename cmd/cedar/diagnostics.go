package main

import (
	"fmt"

	"cedar/internal/diag"
	"cedar/internal/diagfmt"
)

// limit trims errs to --max-diagnostics; the second value is how many were dropped.
func (s *session) limit(errs []*diag.Error) ([]*diag.Error, int) {
	if s.maxDiagnostics > 0 && len(errs) > s.maxDiagnostics {
		return errs[:s.maxDiagnostics], len(errs) - s.maxDiagnostics
	}
	return errs, 0
}

// printDiagnostics renders errs in the selected format: pretty and short go
// to stderr, json goes to stdout so it can be piped.
func (s *session) printDiagnostics(errs []*diag.Error) error {
	if len(errs) == 0 {
		return nil
	}
	shown, dropped := s.limit(errs)
	var err error
	switch s.diagFormat {
	case "short":
		err = diagfmt.Short(s.stderr, shown, s.pathMode, "")
	case "json":
		err = diagfmt.JSON(s.stdout, shown, diagfmt.JSONOpts{PathMode: s.pathMode})
	default:
		err = diagfmt.Pretty(s.stderr, shown, diagfmt.PrettyOpts{
			Color:    s.color,
			PathMode: s.pathMode,
		})
	}
	if err != nil {
		return err
	}
	if dropped > 0 && s.diagFormat != "json" {
		s.errorf("... and %d more\n", dropped)
	}
	return nil
}

// reportFailure prints the diagnostics carried by err and returns
// errDiagnostics, or returns err unchanged when it carries none.
func (s *session) reportFailure(err error) error {
	errs := diag.Collect(err)
	if errs == nil {
		return err
	}
	if perr := s.printDiagnostics(errs); perr != nil {
		return perr
	}
	return errDiagnostics
}

func (s *session) errorf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.stderr, format, args...)
}

// infof печатает в stdout, если не --quiet.
func (s *session) infof(format string, args ...any) {
	if s.quiet {
		return
	}
	_, _ = fmt.Fprintf(s.stdout, format, args...)
}
