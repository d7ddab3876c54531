package driver

import (
	"cedar/internal/format"
	"cedar/internal/gen"
	"cedar/internal/project"
)

// Settings is the project configuration in effect for one input.
type Settings struct {
	Manifest *project.Manifest // nil without cedar.toml
}

// LoadSettings finds cedar.toml from the directory of path upward.
func LoadSettings(path string, opts *Options) (*Settings, error) {
	m, ok, err := project.Load(dirOf(path))
	if err != nil {
		return nil, err
	}
	if ok {
		opts.log().Debugw("manifest found", "path", m.Path)
	} else {
		opts.log().Debugw("no manifest", "start", dirOf(path))
	}
	return &Settings{Manifest: m}, nil
}

// GeneratorConfig merges manifest values for name with flags; flags win.
func (s *Settings) GeneratorConfig(name string, flags gen.Config) gen.Config {
	var out gen.Config
	if s == nil {
		out = gen.Config{}
	} else {
		out = s.Manifest.Generator(name)
	}
	for k, v := range flags {
		if v != "" {
			out[k] = v
		}
	}
	return out
}

// FormatOptions applies an explicit indent (> 0) on top of the manifest.
func (s *Settings) FormatOptions(indent int) format.Options {
	var m *project.Manifest
	if s != nil {
		m = s.Manifest
	}
	opt := format.Options{IndentWidth: m.Indent()}
	if indent > 0 {
		opt.IndentWidth = indent
	}
	return opt
}
