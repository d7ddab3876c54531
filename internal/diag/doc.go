// Package diag defines the diagnostic model shared by the lexer, the parser
// and the outer tooling.
//
// Two shapes coexist:
//
//   - Error / Errors are what the lexer and parser return. An Error is bound
//     to its source.File so a caller can re-render it later without the
//     FileSet; Errors is the aggregate produced when semantic checks fail.
//     Lexical and syntax errors are always a single *Error.
//   - Diagnostic / Bag / Reporter are the storage form used by the driver
//     for directory runs, caching and machine-readable output.
//
// Codes are grouped by numeric range: LEX1xxx, SYN2xxx, SEM3xxx, IO4xxx and
// PRJ5xxx. Code.Phase derives the producing stage from that range.
//
// Package diag does no formatting beyond the one-line golden form; pretty
// rendering lives in internal/diagfmt.
package diag
