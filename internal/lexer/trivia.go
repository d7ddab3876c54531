package lexer

// skipTrivia пропускает пробелы и //-комментарии до конца строки.
// Перевод строки не trivia: он значим для грамматики и остаётся в потоке.
// Табуляция не trivia и приводит к ошибке.
func (lx *Lexer) skipTrivia() {
	for {
		switch {
		case lx.cursor.Peek() == ' ':
			lx.cursor.Bump()
		case lx.cursor.StartsWith("//"):
			lx.cursor.SkipWhile(notNewline)
		default:
			return
		}
	}
}
