package parser

import (
	"fmt"

	"cedar/internal/diag"
	"cedar/internal/token"
)

// advance - съедает текущий токен и читает следующий.
// Ошибка лексера становится фатальной; текущим становится Invalid.
func (p *Parser) advance() token.Token {
	prev := p.tok
	next, err := p.lx.Next()
	if err != nil {
		if p.fatal == nil {
			p.fatal = diag.Collect(err)[0]
		}
		next = token.Token{Kind: token.Invalid}
	}
	p.tok = next
	return prev
}

func (p *Parser) at(k token.Kind) bool {
	return p.tok.Kind == k
}

func (p *Parser) failed() bool {
	return p.fatal != nil
}

// expect - ожидаем конкретный токен. Если нет - фатальная ошибка и (invalid,false).
// what описывает ожидаемое в сообщении; пустое значение - имя вида токена.
func (p *Parser) expect(k token.Kind, what string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	if what == "" {
		what = k.String()
	}
	p.errAt(p.tok, diag.SynUnexpectedToken, "expected %s, found %s", what, p.tok)
	return token.Token{Kind: token.Invalid}, false
}

// skipOne съедает токен вида k, если он текущий.
func (p *Parser) skipOne(k token.Kind) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) skipNewlines() {
	for p.at(token.Newline) {
		p.advance()
	}
}

// expectLineEnd requires a newline after a declaration unless the file ends.
func (p *Parser) expectLineEnd(decl string) bool {
	if p.at(token.EOF) || p.skipOne(token.Newline) {
		return true
	}
	p.errAt(p.tok, diag.SynExpectNewline, "expected newline after %s, found %s", decl, p.tok)
	return false
}

// separatedBy разбирает список elem через sep до until (until не съедается).
// Пустые строки допускаются, висячий разделитель - ровно один.
func separatedBy[T any](p *Parser, sep, until token.Kind, elem func() (T, bool)) ([]T, bool) {
	out := make([]T, 0, 4)
	for !p.at(until) && !p.failed() {
		p.skipNewlines()
		if len(out) > 0 {
			if _, ok := p.expect(sep, ""); !ok {
				return out, false
			}
		}
		p.skipNewlines()
		if p.at(until) {
			break
		}
		v, ok := elem()
		if !ok {
			return out, false
		}
		out = append(out, v)
		p.skipNewlines()
	}
	return out, !p.failed()
}

// errAt записывает фатальную ошибку на позиции tok; сохраняется только первая.
func (p *Parser) errAt(tok token.Token, code diag.Code, format string, args ...any) {
	if p.fatal != nil {
		return
	}
	p.fatal = diag.NewErrorAt(p.file, code, tok.Span, tok.Line, tok.Column, fmt.Sprintf(format, args...))
}

// report forwards e to the optional reporter.
func (p *Parser) report(e *diag.Error) {
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(e.Code, diag.SevError, e.Span, e.Message, nil)
	}
}
