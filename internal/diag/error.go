package diag

import (
	"errors"
	"fmt"
	"strings"

	"cedar/internal/source"
)

// Error is a single lexical, syntax or semantic failure bound to the file
// it was found in. Line is 1-based, Column is 0-based and counts code
// points, so text before the error on its line may be non-ASCII.
type Error struct {
	Code    Code
	Message string
	File    *source.File
	Span    source.Span
	Line    uint32
	Column  uint32
}

// NewErrorAt builds an Error positioned at span inside file.
func NewErrorAt(file *source.File, code Code, span source.Span, line, column uint32, msg string) *Error {
	return &Error{
		Code:    code,
		Message: msg,
		File:    file,
		Span:    span,
		Line:    line,
		Column:  column,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.FileName(), e.Line, e.Column+1, e.Message)
}

// FileName returns the name the source was registered under.
func (e *Error) FileName() string {
	if e.File == nil {
		return source.DefaultName
	}
	return e.File.Path
}

// Source returns the full text the error was found in.
func (e *Error) Source() string {
	if e.File == nil {
		return ""
	}
	return string(e.File.Content)
}

// Phase reports which stage produced the error.
func (e *Error) Phase() Phase {
	return e.Code.Phase()
}

// Diagnostic converts the error into the storage form used by Bag.
func (e *Error) Diagnostic() Diagnostic {
	return NewError(e.Code, e.Span, e.Message)
}

// Errors is an ordered list of semantic failures collected over one parse.
type Errors []*Error

func (es Errors) Error() string {
	switch len(es) {
	case 0:
		return "no errors"
	case 1:
		return es[0].Error()
	}
	var b strings.Builder
	for i, e := range es {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e.Error())
	}
	return b.String()
}

// Unwrap exposes the individual errors to errors.Is/As.
func (es Errors) Unwrap() []error {
	out := make([]error, len(es))
	for i, e := range es {
		out[i] = e
	}
	return out
}

// Collect flattens err into the positioned errors it carries.
// It returns nil when err holds neither *Error nor Errors.
func Collect(err error) []*Error {
	if err == nil {
		return nil
	}
	var list Errors
	if errors.As(err, &list) {
		return list
	}
	var single *Error
	if errors.As(err, &single) {
		return []*Error{single}
	}
	return nil
}

// Report forwards every error in err to r and reports whether any was found.
func Report(r Reporter, err error) bool {
	errs := Collect(err)
	for _, e := range errs {
		r.Report(e.Code, SevError, e.Span, e.Message, nil)
	}
	return len(errs) > 0
}
