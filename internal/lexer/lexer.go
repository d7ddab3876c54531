package lexer

import (
	"cedar/internal/diag"
	"cedar/internal/source"
	"cedar/internal/token"
)

// Lexer is a fail-fast scanner over one schema file.
// It has a single reader and is not restartable.
type Lexer struct {
	file   *source.File
	cursor Cursor
	look   *token.Token
	err    *diag.Error
}

func New(file *source.File) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
	}
}

// Next возвращает следующий значимый токен.
// После EOF всегда возвращает EOF; после ошибки всегда возвращает ту же ошибку.
func (lx *Lexer) Next() (token.Token, error) {
	if lx.err != nil {
		return token.Token{Kind: token.Invalid}, lx.err
	}
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok, nil
	}

	lx.skipTrivia()

	if lx.cursor.EOF() {
		return lx.emit(token.EOF, lx.cursor.Mark()), nil
	}

	ch := lx.cursor.Peek()
	switch {
	case ch == '\n':
		return lx.scanNewline(), nil
	case isIdentStartByte(ch):
		return lx.scanIdentOrKeyword(), nil
	default:
		tok, ok := lx.scanPunct()
		if ok {
			return tok, nil
		}
		lx.err = lx.unexpectedChar()
		return token.Token{Kind: token.Invalid}, lx.err
	}
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() (token.Token, error) {
	t, err := lx.Next()
	if err != nil {
		return t, err
	}
	lx.look = &t
	return t, nil
}

// Tokenize scans the whole file. The returned slice always ends with EOF;
// on the first invalid character it returns nil and that error.
func Tokenize(file *source.File) ([]token.Token, error) {
	lx := New(file)
	tokens := make([]token.Token, 0, len(file.Content)/4+1)
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens, nil
		}
	}
}

func (lx *Lexer) emit(k token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind:   k,
		Span:   sp,
		Text:   string(lx.file.Content[sp.Start:sp.End]),
		Line:   start.Line,
		Column: start.Col,
	}
}

// scanNewline: токен перевода строки принадлежит строке, которую он закрывает.
func (lx *Lexer) scanNewline() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	return lx.emit(token.Newline, start)
}
