package driver

import (
	"errors"
	"fmt"

	"sqlex/internal/diag"
	"sqlex/internal/lexer"
	"sqlex/internal/source"
	"sqlex/internal/token"
)

// ErrLexical: the stream ended on an error token, so it cannot reproduce
// the input.
var ErrLexical = errors.New("lexical error")

// RoundTripError reports the first byte where rendering diverged.
type RoundTripError struct {
	Offset int
	Want   string
	Got    string
}

func (e *RoundTripError) Error() string {
	return fmt.Sprintf("round trip differs at byte %d: want %q, got %q", e.Offset, e.Want, e.Got)
}

// RoundTrip lexes src and checks that the tokens render back to it exactly.
func RoundTrip(src string) error {
	return checkRendered(src, lexer.Tokenize(src, true))
}

func checkRendered(src string, toks []token.Token) error {
	if n := len(toks); n > 0 && toks[n-1].Kind.IsError() {
		last := toks[n-1]
		return fmt.Errorf("%w at byte %d: %s", ErrLexical, last.Span.Start, lexer.ErrorMessage(last))
	}
	got := token.Render(toks)
	if got == src {
		return nil
	}
	off := firstDiff(src, got)
	return &RoundTripError{Offset: off, Want: snippet(src, off), Got: snippet(got, off)}
}

func firstDiff(a, b string) int {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

func snippet(s string, off int) string {
	const width = 16
	if off >= len(s) {
		return ""
	}
	return s[off:min(len(s), off+width)]
}

// verifyRoundTrip adds an IO diagnostic when toks do not reproduce file.
// Streams that stopped on a lexical error are skipped: the lexer already
// reported them.
func verifyRoundTrip(file *source.File, toks []token.Token, bag *diag.Bag) bool {
	err := checkRendered(string(file.Content), toks)
	if err == nil {
		return true
	}
	var rt *RoundTripError
	if !errors.As(err, &rt) {
		return false
	}
	off := uint32(rt.Offset) //nolint:gosec // file size fits uint32, checked by FileSet.Add
	bag.Add(diag.NewError(diag.IORoundTripError, source.At(file.ID, off), rt.Error()))
	return false
}
