package token_test

import (
	"testing"

	"sqlex/internal/token"
)

func TestNewTriviaValidatesKind(t *testing.T) {
	tr, err := token.NewTrivia(token.TriviaLineComment, " note", "-- note\r\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !tr.IsComment() || tr.Text != " note" {
		t.Fatalf("bad trivia: %+v", tr)
	}
	if _, err := token.NewTrivia(token.TriviaKind(7), "", ""); err == nil {
		t.Fatalf("kind 7 must be rejected")
	}
}

func TestRenderUsesRaw(t *testing.T) {
	toks := []token.Token{
		{
			Kind: token.KwSelect, Text: "SELECT",
			Trailing: []token.Trivia{{Kind: token.TriviaWhitespace, Text: " ", Raw: " "}},
		},
		{
			Kind: token.Integer, Text: "1", Int: 1,
			Trailing: []token.Trivia{{Kind: token.TriviaWhitespace, Text: token.Newline, Raw: "\r\n"}},
		},
		{
			Kind:    token.EOF,
			Leading: []token.Trivia{{Kind: token.TriviaLineComment, Text: " end", Raw: "-- end"}},
		},
	}
	if got, want := token.Render(toks), "SELECT 1\r\n-- end"; got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
	if toks[0].String() != "SELECT " {
		t.Fatalf("String = %q", toks[0].String())
	}
}
