package main

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"cedar/internal/diagfmt"
	"cedar/internal/driver"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] file.cedar",
		Short: "Print the tokens of a schema file",
		Args:  cobra.ExactArgs(1),
		RunE:  withSessionRun(runTokenize),
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string, s *session) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return errors.Wrap(err, "failed to get format flag")
	}

	result, err := driver.Tokenize(cmd.Context(), args[0], s.driverOptions())
	if err != nil {
		return s.reportFailure(err)
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(s.stdout, result.Tokens)
	case "json":
		return diagfmt.FormatTokensJSON(s.stdout, result.Tokens)
	default:
		return errors.Newf("unknown format: %s", format)
	}
}
