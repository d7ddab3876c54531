package trace

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Level controls tracing verbosity.
type Level uint8

const (
	LevelOff    Level = iota // no tracing
	LevelError               // only failures
	LevelPhase               // command + lex/parse/render passes
	LevelDetail              // plus one span per schema file
	LevelDebug               // everything
)

var levelNames = [...]string{"off", "error", "phase", "detail", "debug"}

// deepest scope emitted at each level; LevelOff and LevelError emit no spans
var levelScope = [...]Scope{LevelPhase: ScopePass, LevelDetail: ScopeFile, LevelDebug: ^Scope(0)}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// ParseLevel converts a string to a Level, case-insensitively.
func ParseLevel(s string) (Level, error) {
	for i, name := range levelNames {
		if strings.EqualFold(s, name) {
			return Level(i), nil
		}
	}
	return LevelOff, errors.WithHint(
		errors.Newf("invalid trace level: %q", s),
		"expected one of "+strings.Join(levelNames[:], "|"))
}

// ShouldEmit returns true if spans of the given scope are recorded at this level.
func (l Level) ShouldEmit(scope Scope) bool {
	return l >= LevelPhase && int(l) < len(levelScope) && scope <= levelScope[l]
}
