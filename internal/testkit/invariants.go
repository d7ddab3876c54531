// Package testkit holds checks shared by unit tests and fuzz targets.
package testkit

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"cedar/internal/ast"
	"cedar/internal/format"
	"cedar/internal/parser"
	"cedar/internal/source"
	"cedar/internal/token"
)

// CheckTokenInvariants runs the basic invariants on a token stream of sf:
// 1) the stream is non-empty and ends with exactly one EOF
// 2) spans are in bounds, ordered and do not overlap
// 3) Text equals the bytes under the span
// 4) Line/Column agree with the file's line index
func CheckTokenInvariants(sf *source.File, tokens []token.Token) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	if len(tokens) == 0 {
		return fmt.Errorf("empty token stream")
	}
	for i, tok := range tokens[:len(tokens)-1] {
		if tok.Kind == token.EOF {
			return fmt.Errorf("EOF at %d before the end of the stream", i)
		}
	}
	if last := tokens[len(tokens)-1]; last.Kind != token.EOF {
		return fmt.Errorf("stream ends with %s, not EOF", last.Kind)
	}

	size, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	var prevEnd uint32
	for i, tok := range tokens {
		sp := tok.Span
		if sp.File != sf.ID {
			return fmt.Errorf("token %d (%s) points to file %d, want %d", i, tok, sp.File, sf.ID)
		}
		if sp.Start > sp.End || sp.End > size {
			return fmt.Errorf("token %d (%s) span %v out of bounds (size %d)", i, tok, sp, size)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("token %d (%s) overlaps previous token", i, tok)
		}
		prevEnd = sp.End
		if got := string(sf.Content[sp.Start:sp.End]); got != tok.Text {
			return fmt.Errorf("token %d text %q, source has %q", i, tok.Text, got)
		}
		pos := sf.Position(sp.Start)
		lineStart := sp.Start - (pos.Col - 1)
		col := utf8.RuneCount(sf.Content[lineStart:sp.Start])
		if pos.Line != tok.Line || col != int(tok.Column) {
			return fmt.Errorf("token %d (%s) at %d:%d, line index says %d:%d",
				i, tok, tok.Line, tok.Column, pos.Line, col)
		}
	}
	return nil
}

// CheckFormatRoundTrip formats m, parses the text back without typechecking
// and requires a structurally equal module. Formatting a second time must be
// a no-op.
func CheckFormatRoundTrip(m *ast.Module, opt format.Options) error {
	text := format.Module(m, opt)
	again, err := parser.ParseString("roundtrip.cedar", text, parser.Options{SkipTypecheck: true})
	if err != nil {
		return fmt.Errorf("formatted text does not parse: %w\n%s", err, text)
	}
	if !ast.Equal(m, again) {
		return fmt.Errorf("module changed after round-trip:\n%s", text)
	}
	if twice := format.Module(again, opt); twice != text {
		return fmt.Errorf("formatting is not idempotent:\n%s\n---\n%s", text, twice)
	}
	return nil
}
