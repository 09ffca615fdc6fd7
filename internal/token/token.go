package token

import (
	"strings"

	"sqlex/internal/source"
)

// Token is one lexeme with its surrounding trivia and decoded payload.
type Token struct {
	Kind     Kind
	Span     source.Span
	Text     string // bare source text
	Leading  []Trivia
	Trailing []Trivia

	Name  string  // identifiers: unescaped name (variables keep '@')
	Value string  // strings: unescaped; numbers: canonical text
	Int   int32   // Integer
	Float float64 // Float
}

func (t Token) IsEOF() bool   { return t.Kind == EOF }
func (t Token) IsError() bool { return t.Kind.IsError() }

// Precedence of the token's kind, 0 for sentinels.
func (t Token) Precedence() int { return t.Kind.Precedence() }

// Is сравнивает только Kind.
func (t Token) Is(k Kind) bool { return t.Kind == k }

// Render writes leading trivia, text and trailing trivia exactly as read.
func (t Token) Render(b *strings.Builder) {
	for _, tr := range t.Leading {
		b.WriteString(tr.Raw)
	}
	b.WriteString(t.Text)
	for _, tr := range t.Trailing {
		b.WriteString(tr.Raw)
	}
}

func (t Token) String() string {
	var b strings.Builder
	t.Render(&b)
	return b.String()
}

// Render concatenates the rendering of every token. For a complete stream
// (EOF included) the result equals the lexed input.
func Render(tokens []Token) string {
	var b strings.Builder
	for i := range tokens {
		tokens[i].Render(&b)
	}
	return b.String()
}

// WithKind returns a copy of t with a different kind; text, trivia and span
// are shared.
func (t Token) WithKind(k Kind) Token {
	t.Kind = k
	return t
}
