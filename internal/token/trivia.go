package token

import (
	"fmt"

	"sqlex/internal/source"
)

// Newline is the canonical line terminator stored in Trivia.Text.
const Newline = "\n"

type TriviaKind uint8

const (
	TriviaWhitespace TriviaKind = iota
	TriviaLineComment
	TriviaBlockComment
	triviaKindCount
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaWhitespace:
		return "whitespace"
	case TriviaLineComment:
		return "line_comment"
	case TriviaBlockComment:
		return "block_comment"
	default:
		return fmt.Sprintf("TriviaKind(%d)", uint8(k))
	}
}

// Trivia is whitespace or a comment attached to a token.
// Text is the comment body without delimiters, or the whitespace run with
// line terminators normalized to Newline. Raw is the exact source slice and
// is what rendering emits.
type Trivia struct {
	Kind TriviaKind
	Text string
	Raw  string
	Span source.Span
}

// NewTrivia rejects kinds outside the known set.
func NewTrivia(kind TriviaKind, text, raw string) (Trivia, error) {
	if kind >= triviaKindCount {
		return Trivia{}, fmt.Errorf("token: invalid trivia kind %d", uint8(kind))
	}
	return Trivia{Kind: kind, Text: text, Raw: raw}, nil
}

func (t Trivia) IsComment() bool {
	return t.Kind == TriviaLineComment || t.Kind == TriviaBlockComment
}
