package parser

import (
	"cedar/internal/ast"
	"cedar/internal/diag"
	"cedar/internal/lexer"
	"cedar/internal/source"
	"cedar/internal/token"
)

type Options struct {
	// SkipTypecheck returns the raw tree even when semantic checks fail.
	SkipTypecheck bool
	// Reporter, if set, receives every diagnostic as soon as it is produced,
	// semantic ones included when SkipTypecheck hides them from the result.
	Reporter diag.Reporter
}

// Parser - состояние парсера на один файл.
// Один текущий токен плюс явный advance; всё состояние локально для разбора.
type Parser struct {
	file  *source.File
	lx    *lexer.Lexer
	tok   token.Token // текущий (ещё не съеденный) токен
	opts  Options
	scope *scope
	errs  diag.Errors // накопленные семантические ошибки
	fatal *diag.Error // первая лексическая/синтаксическая ошибка
}

// Parse разбирает и проверяет файл целиком.
// Lexical and syntax errors stop the parse and come back as a single *diag.Error.
// Semantic errors are collected over the whole file and come back as diag.Errors,
// unless SkipTypecheck is set.
func Parse(file *source.File, opts Options) (*ast.Module, error) {
	p := &Parser{
		file:  file,
		lx:    lexer.New(file),
		opts:  opts,
		scope: newScope(),
	}
	p.advance()

	mod := p.parseModule()
	if p.fatal != nil {
		p.report(p.fatal)
		return nil, p.fatal
	}
	if !opts.SkipTypecheck && len(p.errs) > 0 {
		return nil, p.errs
	}
	return mod, nil
}

// ParseString registers src as an in-memory file and parses it.
// An empty name becomes source.DefaultName.
func ParseString(name, src string, opts Options) (*ast.Module, error) {
	fs := source.NewFileSet()
	return Parse(fs.Get(fs.AddVirtual(name, []byte(src))), opts)
}

// parseModule - основной цикл верхнего уровня: пока не EOF - parseDecl.
func (p *Parser) parseModule() *ast.Module {
	mod := &ast.Module{Name: p.file.Path, Decls: []ast.Decl{}}
	for !p.failed() {
		p.skipNewlines()
		if p.at(token.EOF) {
			break
		}
		decl, ok := p.parseDecl()
		if !ok {
			break
		}
		mod.Decls = append(mod.Decls, decl)
	}
	return mod
}

// parseDecl выбирает по первому токену нужный распознаватель.
func (p *Parser) parseDecl() (ast.Decl, bool) {
	switch p.tok.Kind {
	case token.KwEnum:
		return p.parseEnum()
	case token.KwUnion:
		return p.parseUnion()
	case token.KwRecord:
		return p.parseRecord()
	case token.KwFn:
		return p.parseFunction()
	default:
		p.errAt(p.tok, diag.SynUnexpectedTopLevel, "expected function, record, union or enum, got %s", p.tok)
		return nil, false
	}
}
