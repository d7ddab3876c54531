package lexer

import (
	"fmt"
	"unicode/utf8"

	"cedar/internal/source"

	"fortio.org/safecast"
)

// Cursor - позиция чтения в файле вместе с текущей строкой.
// Строки 1-based, колонки 0-based и считаются в рунах, не в байтах.
type Cursor struct {
	File  *source.File
	Off   uint32
	Limit uint32 // len(File.Content)

	Line uint32

	// рун в текущей строке до colOff; досчитывается лениво в Column
	col    uint32
	colOff uint32
}

func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{File: f, Limit: limit, Line: 1}
}

func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// Peek возвращает текущий байт или 0 на EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

// StartsWith проверяет, что с текущей позиции идёт prefix.
func (c *Cursor) StartsWith(prefix string) bool {
	rest := c.File.Content[c.Off:c.Limit]
	return len(rest) >= len(prefix) && string(rest[:len(prefix)]) == prefix
}

// Bump сдвигает курсор на байт и возвращает его.
// Перевод строки открывает новую строку.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	c.Off++
	if b == '\n' {
		c.Line++
		c.col, c.colOff = 0, c.Off
	}
	return b
}

// BumpRune съедает целую UTF-8 руну (RuneError на битых байтах).
func (c *Cursor) BumpRune() rune {
	if c.EOF() {
		return utf8.RuneError
	}
	r, sz := utf8.DecodeRune(c.File.Content[c.Off:c.Limit])
	usz, err := safecast.Conv[uint32](sz)
	if err != nil {
		panic(fmt.Errorf("rune size overflow: %w", err))
	}
	c.Off += usz
	return r
}

// SkipWhile съедает байты, пока pred истинен, и возвращает их число.
func (c *Cursor) SkipWhile(pred func(byte) bool) int {
	n := 0
	for !c.EOF() && pred(c.File.Content[c.Off]) {
		c.Bump()
		n++
	}
	return n
}

// Mark - сохранённая позиция начала токена.
type Mark struct {
	Off  uint32
	Line uint32
	Col  uint32
}

func (c *Cursor) Mark() Mark {
	return Mark{Off: c.Off, Line: c.Line, Col: c.Column()}
}

// Column - 0-based колонка текущей позиции в рунах.
func (c *Cursor) Column() uint32 {
	if c.Off > c.colOff {
		n, err := safecast.Conv[uint32](utf8.RuneCount(c.File.Content[c.colOff:c.Off]))
		if err != nil {
			panic(fmt.Errorf("column overflow: %w", err))
		}
		c.col += n
		c.colOff = c.Off
	}
	return c.col
}

// SpanFrom - Span от метки до текущей позиции.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{File: c.File.ID, Start: m.Off, End: c.Off}
}
