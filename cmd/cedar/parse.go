package main

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"cedar/internal/diagfmt"
	"cedar/internal/driver"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] file.cedar",
		Short: "Parse a schema file and print its tree",
		Args:  cobra.ExactArgs(1),
		RunE:  withSessionRun(runParse),
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	cmd.Flags().Bool("no-typecheck", false, "print the tree even if it references unknown types")
	return cmd
}

func runParse(cmd *cobra.Command, args []string, s *session) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return errors.Wrap(err, "failed to get format flag")
	}
	noTypecheck, err := cmd.Flags().GetBool("no-typecheck")
	if err != nil {
		return errors.Wrap(err, "failed to get no-typecheck flag")
	}

	result, err := driver.Parse(cmd.Context(), args[0], noTypecheck, s.driverOptions())
	if err != nil {
		return s.reportFailure(err)
	}

	switch format {
	case "pretty":
		return diagfmt.FormatASTPretty(s.stdout, result.Module)
	case "json":
		return diagfmt.FormatASTJSON(s.stdout, result.Module)
	default:
		return errors.Newf("unknown format: %s", format)
	}
}
