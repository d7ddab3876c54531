package lexer

import (
	"fmt"
	"strconv"

	"cedar/internal/diag"
	"cedar/internal/token"
)

// scanPunct съедает один символ пунктуации, если он известен.
func (lx *Lexer) scanPunct() (token.Token, bool) {
	k, ok := token.LookupPunct(lx.cursor.Peek())
	if !ok {
		return token.Token{}, false
	}
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	return lx.emit(k, start), true
}

func (lx *Lexer) unexpectedChar() *diag.Error {
	start := lx.cursor.Mark()
	r := lx.cursor.BumpRune()
	return diag.NewErrorAt(lx.file, diag.LexUnknownChar, lx.cursor.SpanFrom(start), start.Line, start.Col,
		fmt.Sprintf("unexpected %s", strconv.QuoteRune(r)))
}
