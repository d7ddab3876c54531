package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"cedar/internal/diag"
)

// Title is the report header for the phase of e.
func Title(e *diag.Error) string {
	if e.Phase() == diag.PhaseSemantic {
		return "Type error"
	}
	return "Parse error"
}

// Pretty пишет ошибки в человекочитаемом виде, по одной на блок:
//
//	Type error in schema.cedar:
//
//	1| record A {
//	2|   b B
//	-------^
//
//	unknown type 'B'
//
// Blocks are separated by two blank lines.
func Pretty(w io.Writer, errs []*diag.Error, opts PrettyOpts) error {
	p := newPainter(opts.Color)
	for i, e := range errs {
		if i > 0 {
			if _, err := io.WriteString(w, "\n\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, prettyOne(e, opts, p)); err != nil {
			return err
		}
	}
	return nil
}

func prettyOne(e *diag.Error, opts PrettyOpts, p painter) string {
	var sb strings.Builder

	title := Title(e)
	if opts.ShowCode {
		title += " [" + e.Code.ID() + "]"
	}
	fmt.Fprintf(&sb, "%s in %s:\n\n", p.header(title), displayPath(e.File, opts.PathMode, opts.BaseDir))

	if e.File != nil && e.Line > 0 {
		context := uint32(DefaultContext)
		if opts.Context > 0 {
			context = uint32(opts.Context)
		}
		first := uint32(1)
		if e.Line > context {
			first = e.Line - context + 1
		}
		padding := len(strconv.FormatUint(uint64(e.Line), 10))

		var errLine string
		for n := first; n <= e.Line; n++ {
			text := e.File.GetLine(n)
			if n == e.Line {
				errLine = text
			}
			fmt.Fprintf(&sb, "%s %s\n", p.gutter(fmt.Sprintf("%*d|", padding, n)), text)
		}
		sb.WriteString(p.caret(strings.Repeat("-", caretOffset(errLine, e.Column)+padding+2) + "^"))
		sb.WriteString("\n\n")
	}

	sb.WriteString(e.Message)
	sb.WriteByte('\n')
	return sb.String()
}

// caretOffset is the display width of the first col runes of line.
// Wide runes count double so the caret lines up on a terminal.
func caretOffset(line string, col uint32) int {
	width, n := 0, 0
	for _, r := range line {
		if n == int(col) {
			return width
		}
		width += runewidth.RuneWidth(r)
		n++
	}
	return width + int(col) - n
}

type painter struct {
	header, gutter, caret func(a ...any) string
}

func newPainter(enabled bool) painter {
	return painter{
		header: sprint(enabled, color.FgRed, color.Bold),
		gutter: sprint(enabled, color.FgBlue),
		caret:  sprint(enabled, color.FgRed, color.Bold),
	}
}

func sprint(enabled bool, attrs ...color.Attribute) func(a ...any) string {
	c := color.New(attrs...)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.SprintFunc()
}
