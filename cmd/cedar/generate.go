package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"cedar/internal/driver"
	"cedar/internal/gen"
)

func newGenerateCmd() *cobra.Command {
	reg := driver.Generators()
	cmd := &cobra.Command{
		Use:   "generate [flags] <language> file.cedar",
		Short: "Generate code from a schema file",
		Long: `Generate checks a schema file and renders it into the given language.
Available languages: ` + strings.Join(reg.Names(), ", ") + `.

Generator options come from --set key=value, then cedar.toml [generate.<language>].`,
		Args: cobra.ExactArgs(2),
		RunE: withSessionRun(func(cmd *cobra.Command, args []string, s *session) error {
			return runGenerate(cmd, args, s, reg)
		}),
	}
	cmd.Flags().StringP("out", "o", "", "output file or directory (default stdout)")
	cmd.Flags().StringArray("set", nil, "generator option as key=value (repeatable)")
	cmd.Flags().String("package", "", "shorthand for --set package=NAME")
	cmd.Flags().String("server", "", "shorthand for --set server=NAME")
	return cmd
}

func runGenerate(cmd *cobra.Command, args []string, s *session, reg *gen.Registry) error {
	lang, path := args[0], args[1]
	g, err := reg.Get(lang)
	if err != nil {
		return err
	}

	flags, err := generatorFlags(cmd)
	if err != nil {
		return err
	}
	opts := s.driverOptions()
	settings, err := driver.LoadSettings(path, opts)
	if err != nil {
		return err
	}
	meta := g.Metadata()
	cfg := settings.GeneratorConfig(meta.Name, flags)

	res, err := driver.Generate(cmd.Context(), path, g, cfg, opts)
	if err != nil {
		return s.reportFailure(err)
	}

	out, err := cmd.Flags().GetString("out")
	if err != nil {
		return errors.Wrap(err, "failed to get out flag")
	}
	if out == "" || out == "-" {
		_, err = s.stdout.Write(res.Output)
		return err
	}
	if st, err := os.Stat(out); err == nil && st.IsDir() {
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		out = filepath.Join(out, base+meta.Extension)
	}
	if err := driver.WriteFile(out, res.Output, opts); err != nil {
		return err
	}
	s.infof("wrote %s\n", out)
	return nil
}

// generatorFlags collects --set and the shorthand flags; later values win.
func generatorFlags(cmd *cobra.Command) (gen.Config, error) {
	cfg := gen.Config{}
	sets, err := cmd.Flags().GetStringArray("set")
	if err != nil {
		return nil, errors.Wrap(err, "failed to get set flag")
	}
	for _, kv := range sets {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return nil, errors.WithHint(errors.Newf("invalid --set %q", kv), "expected key=value")
		}
		cfg[strings.TrimSpace(k)] = v
	}
	for _, name := range []string{"package", "server"} {
		if !cmd.Flags().Changed(name) {
			continue
		}
		v, err := cmd.Flags().GetString(name)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get %s flag", name)
		}
		cfg[name] = v
	}
	return cfg, nil
}
