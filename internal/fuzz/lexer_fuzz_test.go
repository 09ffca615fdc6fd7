package fuzztests

import (
	"errors"
	"testing"

	"sqlex/internal/driver"
	"sqlex/internal/lexer"
	"sqlex/internal/source"
)

func FuzzLexerRoundTrip(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		src := clampInput(input)
		err := driver.RoundTrip(src)
		if err == nil || errors.Is(err, driver.ErrLexical) {
			return
		}
		t.Fatalf("input %q: %v", src, err)
	})
}

func FuzzLexerSpans(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		src := clampInput(input)
		lx := lexer.New(lexer.Options{})
		lx.Reset(source.NewVirtualFile("fuzz.sql", []byte(src)))
		var prevEnd uint32
		for tok := range lx.All(true) {
			if tok.Span.Start < prevEnd || tok.Span.End < tok.Span.Start {
				t.Fatalf("input %q: token %s has span %s after %d", src, tok.Kind, tok.Span, prevEnd)
			}
			if int(tok.Span.End) > len(src) {
				t.Fatalf("input %q: span %s past end", src, tok.Span)
			}
			prevEnd = tok.Span.End
		}
	})
}
