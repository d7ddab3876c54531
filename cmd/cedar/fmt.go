package main

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"cedar/internal/driver"
)

func newFmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt [flags] file.cedar...",
		Short: "Print schema files in canonical form",
		Long: `Fmt prints every file in canonical form. Unknown types are kept; only syntax
errors stop it. Indentation is in spaces and comes from --indent, then cedar.toml [format].`,
		Args: cobra.MinimumNArgs(1),
		RunE: withSessionRun(runFmt),
	}
	cmd.Flags().BoolP("write", "w", false, "rewrite files in place instead of printing")
	cmd.Flags().Bool("check", false, "list files that are not formatted and exit 1")
	cmd.Flags().Int("indent", 0, "spaces per indent step (0 = from cedar.toml or 2)")
	return cmd
}

func runFmt(cmd *cobra.Command, args []string, s *session) error {
	write, err := cmd.Flags().GetBool("write")
	if err != nil {
		return errors.Wrap(err, "failed to get write flag")
	}
	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return errors.Wrap(err, "failed to get check flag")
	}
	if write && check {
		return errors.New("--write and --check are mutually exclusive")
	}
	indent, err := cmd.Flags().GetInt("indent")
	if err != nil {
		return errors.Wrap(err, "failed to get indent flag")
	}

	opts := s.driverOptions()
	unformatted := 0
	for _, path := range args {
		settings, err := driver.LoadSettings(path, opts)
		if err != nil {
			return err
		}
		res, err := driver.Format(cmd.Context(), path, settings.FormatOptions(indent), true, opts)
		if err != nil {
			return s.reportFailure(err)
		}
		switch {
		case check:
			if res.Changed {
				unformatted++
				_, _ = s.stdout.Write([]byte(path + "\n"))
			}
		case write:
			if !res.Changed {
				continue
			}
			if err := driver.WriteFile(path, res.Output, opts); err != nil {
				return err
			}
			s.infof("formatted %s\n", path)
		default:
			if _, err := s.stdout.Write(res.Output); err != nil {
				return err
			}
		}
	}
	if unformatted > 0 {
		return errDiagnostics
	}
	return nil
}
