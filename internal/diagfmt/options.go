package diagfmt

import "cedar/internal/source"

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto keeps short or relative paths and shortens long absolute ones.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

func (m PathMode) String() string {
	switch m {
	case PathModeAbsolute:
		return "absolute"
	case PathModeRelative:
		return "relative"
	case PathModeBasename:
		return "basename"
	default:
		return "auto"
	}
}

// ParsePathMode accepts the names printed by String.
func ParsePathMode(s string) (PathMode, bool) {
	for _, m := range []PathMode{PathModeAuto, PathModeAbsolute, PathModeRelative, PathModeBasename} {
		if m.String() == s {
			return m, true
		}
	}
	return PathModeAuto, false
}

// DefaultContext is the number of source lines shown up to and including the error line.
const DefaultContext = 5

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color    bool
	Context  int8 // 0 - DefaultContext
	PathMode PathMode
	BaseDir  string
	// ShowCode adds the diagnostic code to the header.
	ShowCode bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	PathMode PathMode
	BaseDir  string
	Max      int // обрезка вывода, 0 - без ограничения
}

func displayPath(f *source.File, mode PathMode, baseDir string) string {
	if f == nil {
		return source.DefaultName
	}
	return f.FormatPath(mode.String(), baseDir)
}
