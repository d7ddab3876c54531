package doc

import (
	"fmt"
	"strings"
)

// Config - текущее смещение, шаг отступа и символ отступа.
type Config struct {
	Offset     int
	IndentBy   int
	IndentChar rune
}

// DefaultConfig indents by two spaces.
var DefaultConfig = Config{Offset: 0, IndentBy: 2, IndentChar: ' '}

// Tabs indents by one tab.
var Tabs = Config{Offset: 0, IndentBy: 1, IndentChar: '\t'}

// Indent returns the configuration one step deeper.
func (c Config) Indent() Config {
	c.Offset += c.IndentBy
	return c
}

func (c Config) prefix() string {
	if c.Offset <= 0 {
		return ""
	}
	return strings.Repeat(string(c.IndentChar), c.Offset)
}

// Render turns d into text. Rendering is pure: the same d and cfg give the same string.
func Render(d Doc, cfg Config) string {
	var sb strings.Builder
	render(&sb, d, cfg)
	return sb.String()
}

func render(sb *strings.Builder, d Doc, cfg Config) {
	switch d := orEmpty(d).(type) {
	case Empty:
	case Text:
		sb.WriteString(d.Value)
		render(sb, d.Next, cfg)
	case Line:
		sb.WriteByte('\n')
		sb.WriteString(cfg.prefix())
		render(sb, d.Next, cfg)
	case Block:
		inner := cfg.Indent()
		for _, child := range d.Children {
			render(sb, child, inner)
		}
	case Concat:
		for _, child := range d.Children {
			render(sb, child, cfg)
		}
	default:
		panic(fmt.Sprintf("doc: unexpected %T", d))
	}
}
