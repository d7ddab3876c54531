package parser

import (
	"fmt"

	"cedar/internal/ast"
	"cedar/internal/diag"
	"cedar/internal/token"
)

// scope - объявленные имена одного разбора.
// Типы и функции живут в разных пространствах имён.
type scope struct {
	types map[string]struct{}
	fns   map[string]struct{}
}

func newScope() *scope {
	s := &scope{
		types: make(map[string]struct{}, 16),
		fns:   make(map[string]struct{}, 8),
	}
	for _, name := range ast.Builtins() {
		s.types[name] = struct{}{}
	}
	return s
}

// semantic записывает несмертельную ошибку и продолжает разбор.
func (p *Parser) semantic(tok token.Token, code diag.Code, format string, args ...any) {
	e := diag.NewErrorAt(p.file, code, tok.Span, tok.Line, tok.Column, fmt.Sprintf(format, args...))
	p.errs = append(p.errs, e)
	p.report(e)
}

// declareType регистрирует имя типа до разбора тела, так что
// объявление может ссылаться на себя, но не на более поздние.
func (p *Parser) declareType(name token.Token) {
	if _, ok := p.scope.types[name.Text]; ok {
		p.semantic(name, diag.SemaRedeclaredType, "cannot redeclare type '%s'", name.Text)
		return
	}
	p.scope.types[name.Text] = struct{}{}
}

func (p *Parser) declareFn(name token.Token) {
	if _, ok := p.scope.fns[name.Text]; ok {
		p.semantic(name, diag.SemaRedeclaredFunction, "cannot redeclare function '%s'", name.Text)
		return
	}
	p.scope.fns[name.Text] = struct{}{}
}

// checkNamed проверяет ссылку на тип в момент её разбора.
func (p *Parser) checkNamed(name token.Token) {
	if _, ok := p.scope.types[name.Text]; !ok {
		p.semantic(name, diag.SemaUnknownType, "unknown type '%s'", name.Text)
	}
}

// checkDictKey сравнивает написание ключа с String буквально.
func (p *Parser) checkDictKey(key token.Token) {
	if key.Text != ast.String {
		p.semantic(key, diag.SemaDictKeyNotString, "dict keys must be Strings")
	}
}
