// Package format re-emits T-SQL token streams with light normalization.
//
// Назначение: регистр ключевых слов и пробелы вокруг запятых.
// Не делает: переносов строк, отступов, перестановки токенов.
// Всё, что не затронуто правилами, выводится байт в байт.
// Зависимости: internal/lexer, internal/token, golang.org/x/text/cases.
package format
