package token

import (
	"fmt"

	"cedar/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind   Kind
	Span   source.Span
	Text   string
	Line   uint32 // 1-based
	Column uint32 // 0-based, in code points
}

// Is reports whether the token has one of the given kinds.
func (t Token) Is(kinds ...Kind) bool {
	for _, k := range kinds {
		if t.Kind == k {
			return true
		}
	}
	return false
}

// IsIdent reports whether the token is a lowercase or capitalized identifier.
func (t Token) IsIdent() bool { return t.Kind == Name || t.Kind == CapName }

func (t Token) String() string {
	switch t.Kind {
	case Name, CapName, Invalid:
		return fmt.Sprintf("%s %q", t.Kind, t.Text)
	default:
		return t.Kind.String()
	}
}
