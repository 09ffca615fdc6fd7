package fuzztests

import (
	"context"
	"testing"
	"time"

	"sqlex/internal/parser"
	"sqlex/internal/source"
	"sqlex/internal/testkit"
	"sqlex/internal/token"
)

// parseTimeout is the maximum time allowed for parsing a single input.
// If parsing takes longer, it indicates a potential infinite loop.
const parseTimeout = 5 * time.Second

// FuzzParserRoundTrip checks that a successful parse keeps every input byte.
func FuzzParserRoundTrip(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		src := clampInput(input)
		for _, ctx := range []parser.Context{parser.ContextComparison, parser.ContextAssignment} {
			sf := source.NewVirtualFile("fuzz.sql", []byte(src))
			res, err := parser.New(sf, parser.Options{Context: ctx}).ParseTop()
			if err != nil || res.Expr == nil {
				continue
			}
			if err := testkit.CheckSpanInvariants(res.Expr, sf); err != nil {
				t.Fatalf("input %q: %v", src, err)
			}
			got := token.Render(append(res.Expr.Tokens(), res.End))
			if got != src {
				t.Fatalf("input %q: rendered %q", src, got)
			}
		}
	})
}

// FuzzParserNoHang tests that the parser finishes on any input.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)
	f.Add([]byte("((((((((((1"))
	f.Add([]byte("a NOT NOT NOT b"))
	f.Add([]byte("x BETWEEN BETWEEN AND AND"))

	f.Fuzz(func(t *testing.T, input []byte) {
		src := clampInput(input)
		ctx, cancel := context.WithTimeout(context.Background(), parseTimeout)
		defer cancel()

		done := make(chan struct{})
		go func() {
			defer close(done)
			_, _ = parser.ParseExpression(src, parser.Options{})
			_, _ = parser.ParseSelectHeader(src, parser.Options{})
		}()

		select {
		case <-done:
		case <-ctx.Done():
			t.Fatalf("parser hang detected: parsing took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(src), truncateForLog(src, 200))
		}
	})
}

func truncateForLog(input string, maxLen int) string {
	if len(input) <= maxLen {
		return input
	}
	return input[:maxLen] + "..."
}
