package token

var keywords = map[string]Kind{
	"enum":   KwEnum,
	"union":  KwUnion,
	"record": KwRecord,
	"fn":     KwFn,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

var punct = map[byte]Kind{
	'?': Question,
	',': Comma,
	':': Colon,
	'(': LParen,
	')': RParen,
	'{': LBrace,
	'}': RBrace,
	'[': LBracket,
	']': RBracket,
}

// LookupPunct maps a punctuation byte to its kind.
func LookupPunct(b byte) (Kind, bool) {
	k, ok := punct[b]
	return k, ok
}
