package parser

import (
	"cedar/internal/ast"
	"cedar/internal/diag"
	"cedar/internal/token"
)

// TypeExpr := (TypeName | "[" TypeExpr "]" | "{" TypeName ":" TypeExpr "}") "?"?
func (p *Parser) parseType() (ast.TypeExpr, bool) {
	var (
		typ ast.TypeExpr
		ok  bool
	)
	switch p.tok.Kind {
	case token.LBracket:
		typ, ok = p.parseList()
	case token.LBrace:
		typ, ok = p.parseDict()
	case token.CapName:
		name := p.advance()
		p.checkNamed(name)
		typ, ok = ast.NewNamed(name.Text), true
	default:
		p.errAt(p.tok, diag.SynExpectType, "expected the name of a type, found %s", p.tok)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	if p.skipOne(token.Question) {
		return ast.NewNullable(typ), true
	}
	return typ, true
}

func (p *Parser) parseList() (ast.TypeExpr, bool) {
	p.advance() // [
	elem, ok := p.parseType()
	if !ok {
		return nil, false
	}
	if _, ok = p.expect(token.RBracket, ""); !ok {
		return nil, false
	}
	return ast.NewList(elem), true
}

func (p *Parser) parseDict() (ast.TypeExpr, bool) {
	p.advance() // {
	key, ok := p.expect(token.CapName, "the name of a type")
	if !ok {
		return nil, false
	}
	p.checkDictKey(key)
	if _, ok = p.expect(token.Colon, ""); !ok {
		return nil, false
	}
	value, ok := p.parseType()
	if !ok {
		return nil, false
	}
	if _, ok = p.expect(token.RBrace, ""); !ok {
		return nil, false
	}
	return ast.NewDict(key.Text, value), true
}
