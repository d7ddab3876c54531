package main

import (
	"github.com/spf13/cobra"

	"cedar/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: withSessionRun(func(_ *cobra.Command, _ []string, s *session) error {
			_, err := s.stdout.Write([]byte(version.Line(s.color) + "\n"))
			return err
		}),
	}
}
