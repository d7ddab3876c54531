package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"cedar/internal/version"
)

// errDiagnostics означает, что диагностики уже напечатаны; нужен только код выхода.
var errDiagnostics = errors.New("diagnostics reported")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "cedar",
		Short:         "Cedar schema compiler",
		Long:          `Cedar checks schema files and generates server code from them`,
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.AddCommand(newTokenizeCmd())
	root.AddCommand(newParseCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newFmtCmd())
	root.AddCommand(newGenerateCmd())
	root.AddCommand(newVersionCmd())

	// Глобальные флаги
	pf := root.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.Bool("timings", false, "print phase timings to stderr")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics to show (0 = all)")
	pf.String("diagnostics", "pretty", "diagnostic format (pretty|short|json)")
	pf.String("path-mode", "auto", "how to print file paths (auto|absolute|relative|basename)")
	pf.String("trace", "", "write a phase trace to this file (- for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.Bool("verbose", false, "log operational details to stderr")
	pf.Bool("log-json", false, "log as JSON")
	pf.String("ui", "auto", "progress view for directory runs (auto|on|off)")
	pf.String("cpu-profile", "", "write a CPU profile to this file")
	pf.String("mem-profile", "", "write a heap profile to this file")
	pf.String("exec-trace", "", "write a runtime execution trace to this file")

	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		cmd.SetContext(withSession(cmd.Context(), s))
		return nil
	}
	return root
}

func main() {
	root := newRootCmd()
	err := root.Execute()
	if err == nil {
		return
	}
	if !errors.Is(err, errDiagnostics) {
		reportError(os.Stderr, err)
	}
	os.Exit(1)
}

// reportError prints err with any hints attached along the way.
func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v\n", err)
	if hint := errors.FlattenHints(err); hint != "" {
		fmt.Fprintf(w, "hint: %s\n", hint)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
