package driver

import (
	"context"
	"strconv"

	"cedar/internal/lexer"
	"cedar/internal/source"
	"cedar/internal/token"
	"cedar/internal/trace"
)

// TokenizeResult holds the tokens of one file.
type TokenizeResult struct {
	File   *source.File
	Tokens []token.Token
}

// Tokenize loads path and scans it. A lexical failure comes back as the
// *diag.Error the lexer produced; File is set whenever loading succeeded.
func Tokenize(ctx context.Context, path string, opts *Options) (*TokenizeResult, error) {
	f, err := load(ctx, path, opts)
	if err != nil {
		return nil, err
	}
	res := &TokenizeResult{File: f}

	_, span := trace.Start(ctx, trace.ScopePass, "lex")
	done := opts.timer().Track("lex")
	res.Tokens, err = lexer.Tokenize(f)
	done("")
	span.WithExtra("tokens", strconv.Itoa(len(res.Tokens))).End("")
	if err != nil {
		return res, err
	}
	return res, nil
}
