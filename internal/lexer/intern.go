package lexer

import "sqlex/internal/source"

// internLimit: whitespace shorter than this shares one copy per lexer.
const internLimit = 4

// textPool: пул коротких trivia-строк на время жизни одного лексера.
type textPool struct {
	in *source.Interner
}

func newTextPool() textPool {
	return textPool{in: source.NewInterner(" ", "\n", "\t", "\r\n")}
}

func (p textPool) whitespace(s string) string {
	if len(s) >= internLimit {
		return s
	}
	return p.in.Canonical(s)
}
