package parser

import (
	"cedar/internal/ast"
	"cedar/internal/diag"
	"cedar/internal/token"
)

// enum := "enum" TypeName "{" (Tag ("," Tag)* ","?)? "}"
func (p *Parser) parseEnum() (ast.Decl, bool) {
	p.advance() // enum
	name, ok := p.expect(token.CapName, "the name of the enum")
	if !ok {
		return nil, false
	}
	p.declareType(name)
	if _, ok = p.expect(token.LBrace, ""); !ok {
		return nil, false
	}

	tags, ok := separatedBy(p, token.Comma, token.RBrace, p.parseTag)
	if !ok {
		return nil, false
	}
	p.skipNewlines()
	if _, ok = p.expect(token.RBrace, ""); !ok {
		return nil, false
	}
	p.skipNewlines()
	return &ast.Enum{Name: name.Text, Tags: tags}, true
}

func (p *Parser) parseTag() (ast.Tag, bool) {
	tok, ok := p.expect(token.CapName, "an enum tag")
	return ast.Tag{Name: tok.Text}, ok
}

// union := "union" TypeName "{" TypeTag ("," TypeTag)* ","? "}"
func (p *Parser) parseUnion() (ast.Decl, bool) {
	p.advance() // union
	name, ok := p.expect(token.CapName, "the name of the union")
	if !ok {
		return nil, false
	}
	p.declareType(name)
	if _, ok = p.expect(token.LBrace, ""); !ok {
		return nil, false
	}

	members, ok := separatedBy(p, token.Comma, token.RBrace, p.parseTypeTag)
	if !ok {
		return nil, false
	}
	p.skipNewlines()
	if len(members) == 0 {
		p.errAt(p.tok, diag.SynExpectUnionMember, "union '%s' must have at least one member type", name.Text)
		return nil, false
	}
	if _, ok = p.expect(token.RBrace, ""); !ok {
		return nil, false
	}
	p.skipNewlines()
	return &ast.Union{Name: name.Text, Members: members}, true
}

func (p *Parser) parseTypeTag() (*ast.Named, bool) {
	tok, ok := p.expect(token.CapName, "the name of a type")
	if !ok {
		return nil, false
	}
	p.checkNamed(tok)
	return ast.NewNamed(tok.Text), true
}

// record := "record" TypeName "{" (FieldName TypeExpr NEWLINE)* "}"
// The newline after the last attribute may be omitted.
func (p *Parser) parseRecord() (ast.Decl, bool) {
	p.advance() // record
	name, ok := p.expect(token.CapName, "the name of the record")
	if !ok {
		return nil, false
	}
	p.declareType(name)
	if _, ok = p.expect(token.LBrace, ""); !ok {
		return nil, false
	}

	attrs := make([]ast.Attribute, 0, 4)
	for !p.at(token.RBrace) {
		p.skipNewlines()
		if p.at(token.RBrace) {
			break
		}
		attr, ok := p.parseAttribute()
		if !ok {
			return nil, false
		}
		attrs = append(attrs, attr)
		if !p.at(token.RBrace) {
			if _, ok := p.expect(token.Newline, "newline after attribute"); !ok {
				return nil, false
			}
		}
	}
	p.advance() // }
	if !p.expectLineEnd("record") {
		return nil, false
	}
	return &ast.Record{Name: name.Text, Attributes: attrs}, true
}

func (p *Parser) parseAttribute() (ast.Attribute, bool) {
	name, ok := p.expect(token.Name, "the name of an attribute")
	if !ok {
		return ast.Attribute{}, false
	}
	typ, ok := p.parseType()
	return ast.Attribute{Name: name.Text, Type: typ}, ok
}

// function := "fn" FnName "(" (FieldName TypeExpr ("," FieldName TypeExpr)* ","?)? ")" TypeExpr
func (p *Parser) parseFunction() (ast.Decl, bool) {
	p.advance() // fn
	name, ok := p.expect(token.Name, "the name of the function")
	if !ok {
		return nil, false
	}
	p.declareFn(name)
	if _, ok = p.expect(token.LParen, ""); !ok {
		return nil, false
	}

	params, ok := separatedBy(p, token.Comma, token.RParen, p.parseParameter)
	if !ok {
		return nil, false
	}
	p.skipNewlines()
	if _, ok = p.expect(token.RParen, ""); !ok {
		return nil, false
	}
	p.skipNewlines()

	ret, ok := p.parseType()
	if !ok || !p.expectLineEnd("function") {
		return nil, false
	}
	return &ast.Function{Name: name.Text, Parameters: params, Return: ret}, true
}

func (p *Parser) parseParameter() (ast.Parameter, bool) {
	name, ok := p.expect(token.Name, "a name for the parameter")
	if !ok {
		return ast.Parameter{}, false
	}
	typ, ok := p.parseType()
	return ast.Parameter{Name: name.Text, Type: typ}, ok
}
