package lexer

// Только ASCII: идентификаторы схемы не бывают Unicode.
func isIdentStartByte(b byte) bool {
	return b == '_' || isUpper(b) || (b >= 'a' && b <= 'z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDigit(b)
}

func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func notNewline(b byte) bool { return b != '\n' }
