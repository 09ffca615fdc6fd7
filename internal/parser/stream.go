package parser

import (
	"sqlex/internal/lexer"
	"sqlex/internal/token"
)

// Stream: курсор парсера поверх лексера.
// В режиме сравнения токен Assign выдаётся как Equal (тот же текст,
// span и trivia). Флаг один, без счётчика вложенности: кто меняет -
// тот и восстанавливает.
type Stream struct {
	lx         *lexer.Lexer
	comparison bool
	err        *Error
}

// NewStream wraps a lexer that has already been Reset.
func NewStream(lx *lexer.Lexer, comparison bool) *Stream {
	return &Stream{lx: lx, comparison: comparison}
}

func (s *Stream) Current() token.Token {
	tok := s.lx.Current()
	if s.comparison && tok.Kind == token.Assign {
		return tok.WithKind(token.Equal)
	}
	return tok
}

// Advance moves past the current token; false once on EOF or an error token.
func (s *Stream) Advance() bool {
	return s.lx.Advance()
}

// Precedence of the current token, 0 on EOF and error tokens.
func (s *Stream) Precedence() int {
	return s.Current().Kind.Precedence()
}

func (s *Stream) ComparisonContext() bool { return s.comparison }

// SetComparisonContext switches the flag and returns the previous value.
func (s *Stream) SetComparisonContext(on bool) (prev bool) {
	prev = s.comparison
	s.comparison = on
	return prev
}

// Err returns the first syntax error, nil while parsing succeeds.
func (s *Stream) Err() *Error { return s.err }

// fail записывает только первую ошибку; последующие игнорируются.
func (s *Stream) fail(e *Error) {
	if s.err == nil {
		s.err = e
	}
}

func (s *Stream) at(k token.Kind) bool {
	return s.Current().Kind == k
}
