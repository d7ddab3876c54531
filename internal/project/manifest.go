// Package project reads cedar.toml, the per-directory configuration that
// sets formatter and generator defaults.
package project

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"

	"cedar/internal/gen"
)

// ManifestName is the file looked up from the input's directory upward.
const ManifestName = "cedar.toml"

const (
	defaultIndent = 2
	maxIndent     = 16
)

// ErrInvalidManifest marks every error caused by manifest content rather than I/O.
var ErrInvalidManifest = errors.New("invalid manifest")

// Manifest is a decoded cedar.toml.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config mirrors the TOML layout:
//
//	[format]
//	indent = 2
//
//	[generate.go]
//	package = "server"
//	server = "Server"
type Config struct {
	Format   FormatConfig                 `toml:"format"`
	Generate map[string]map[string]string `toml:"generate"`
}

// FormatConfig configures `cedar fmt`.
type FormatConfig struct {
	Indent int `toml:"indent"`
}

// Find walks up from startDir to locate cedar.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, errors.Wrap(err, "resolve start directory")
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, errors.Wrapf(err, "stat %q", candidate)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load finds and decodes the manifest governing startDir.
// ok is false when there is none; that is not an error.
func Load(startDir string) (*Manifest, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	m, err := Decode(path)
	if err != nil {
		return nil, true, err
	}
	return m, true, nil
}

// Decode reads the manifest at path.
func Decode(path string) (*Manifest, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrapf(err, "read %s", path)
		}
		return nil, invalid(errors.Wrapf(err, "%s: failed to parse TOML", path))
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		slices.Sort(keys)
		err := errors.Newf("%s: unknown key %q", path, keys[0])
		return nil, invalid(errors.WithHint(err, "known sections: [format], [generate.<lang>]"))
	}
	if meta.IsDefined("format", "indent") && (cfg.Format.Indent < 1 || cfg.Format.Indent > maxIndent) {
		return nil, invalid(errors.Newf("%s: [format].indent must be between 1 and %d, got %d", path, maxIndent, cfg.Format.Indent))
	}
	if cfg.Format.Indent == 0 {
		cfg.Format.Indent = defaultIndent
	}
	return &Manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, nil
}

func invalid(err error) error {
	return errors.Mark(err, ErrInvalidManifest)
}

// Generator returns the [generate.<name>] table as generator options.
// Nil-safe; the result is a copy.
func (m *Manifest) Generator(name string) gen.Config {
	out := gen.Config{}
	if m == nil {
		return out
	}
	for k, v := range m.Config.Generate[strings.ToLower(name)] {
		out[k] = v
	}
	return out
}

// Indent returns the formatter indent width, defaulting to 2.
func (m *Manifest) Indent() int {
	if m == nil || m.Config.Format.Indent == 0 {
		return defaultIndent
	}
	return m.Config.Format.Indent
}

