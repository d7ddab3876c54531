// Package format renders a parsed module back to canonical schema text.
//
// Назначение: `cedar fmt` и проверка round-trip (format -> parse -> equal).
// Не делает: сохранения комментариев и исходной раскладки; IO.
// Зависимости: internal/ast, internal/doc, internal/parser, internal/source.
package format
