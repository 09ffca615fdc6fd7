// Package fuzztests houses Go fuzz harnesses for the lexer and the
// expression parser. The goal is to smoke test robustness: no panics,
// no hangs and lossless token streams on arbitrary inputs.
//
// Назначение: прогонять байты через lexer/parser и проверять, что токены
// воспроизводят вход байт в байт.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/parser,
// internal/driver, internal/token.

package fuzztests
