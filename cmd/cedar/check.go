package main

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"cedar/internal/diag"
	"cedar/internal/driver"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [flags] <file.cedar|directory>",
		Short: "Parse and typecheck schema files",
		Long: `Check parses and typechecks a schema file, or every *.cedar file under a
directory. Files are checked independently and in parallel.`,
		Args: cobra.ExactArgs(1),
		RunE: withSessionRun(runCheck),
	}
	cmd.Flags().Int("jobs", 0, "max parallel workers for directory runs (0=auto)")
	cmd.Flags().Bool("cache", false, "reuse results of unchanged files from the disk cache")
	cmd.Flags().String("cache-dir", "", "cache location (default $XDG_CACHE_HOME/cedar)")
	return cmd
}

func runCheck(cmd *cobra.Command, args []string, s *session) error {
	path := args[0]
	st, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(err, "%s %s", diag.IOLoadFileError.ID(), path)
	}
	opts := s.driverOptions()

	if !st.IsDir() {
		if _, err := driver.Check(cmd.Context(), path, opts); err != nil {
			return s.reportFailure(err)
		}
		if s.diagFormat != "json" {
			s.infof("%s: ok\n", path)
		}
		return nil
	}

	if opts.Jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
		return errors.Wrap(err, "failed to get jobs flag")
	}
	if opts.Cache, err = openCache(cmd); err != nil {
		return err
	}

	files, err := driver.ListSchemaFiles(path)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return errors.WithHintf(errors.Newf("no %s files in %s", driver.SchemaExt, path), "check a file directly or point at a directory of schemas")
	}

	var results []driver.FileResult
	if s.shouldUseTUI() {
		results, err = s.runCheckWithUI(cmd.Context(), "checking "+path, files, opts)
	} else {
		results, err = driver.CheckFiles(cmd.Context(), files, opts)
	}
	if err != nil {
		return err
	}
	return s.reportResults(results)
}

func openCache(cmd *cobra.Command) (*driver.DiskCache, error) {
	enabled, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return nil, errors.Wrap(err, "failed to get cache flag")
	}
	dir, err := cmd.Flags().GetString("cache-dir")
	if err != nil {
		return nil, errors.Wrap(err, "failed to get cache-dir flag")
	}
	if !enabled && dir == "" {
		return nil, nil
	}
	if dir != "" {
		return driver.NewDiskCache(dir)
	}
	return driver.OpenDiskCache("cedar")
}

// reportResults prints diagnostics of every failed file in path order and
// a one-line summary.
func (s *session) reportResults(results []driver.FileResult) error {
	var all []*diag.Error
	failed := 0
	for i := range results {
		r := &results[i]
		if !r.Failed() {
			continue
		}
		failed++
		if r.LoadErr != nil {
			reportError(s.stderr, r.LoadErr)
			continue
		}
		all = append(all, r.Errors...)
	}
	if err := s.printDiagnostics(all); err != nil {
		return err
	}
	if s.diagFormat != "json" {
		s.infof("checked %d files, %d with errors\n", len(results), failed)
	}
	if failed > 0 {
		return errDiagnostics
	}
	return nil
}
