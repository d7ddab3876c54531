// Package token defines lexical token kinds for cedar schemas.
// Invariants:
//   - Token.Text is the exact source slice covered by Token.Span.
//   - Line is 1-based, Column is a 0-based byte offset from the line start.
//   - Builtin type names (Bool, Int, ...) are ordinary CapName tokens.
//     They are recognized by the parser, not the lexer.
//   - Whitespace and // comments are never emitted; newlines are.
package token
