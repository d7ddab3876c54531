// Package fuzztests houses fuzz harnesses that run arbitrary bytes through
// the whole core: source -> lexer -> parser/typechecker -> formatter and
// generators. They guard against panics, hangs and broken round-trips.
//
// Не делает: запись файлов, запуск CLI.
package fuzztests
