package lexer

import (
	"cedar/internal/token"
)

// scanIdentOrKeyword сканирует идентификатор целиком и проверяет через LookupKeyword.
// Регистр первой буквы выбирает Name или CapName.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	first := lx.cursor.Bump()
	lx.cursor.SkipWhile(isIdentContinueByte)

	tok := lx.emit(token.Name, start)
	if k, ok := token.LookupKeyword(tok.Text); ok {
		tok.Kind = k
	} else if isUpper(first) {
		tok.Kind = token.CapName
	}
	return tok
}
