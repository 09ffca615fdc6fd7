package format

import (
	"errors"
	"fmt"
	"slices"

	"sqlex/internal/diag"
	"sqlex/internal/lexer"
	"sqlex/internal/source"
	"sqlex/internal/token"
)

// FormatTokens renders toks with the requested normalization. The input
// slice is not modified. Pass the EOF token too, it carries the tail trivia.
func FormatTokens(toks []token.Token, opt Options) []byte {
	if opt.NormalizeCommas {
		toks = slices.Clone(toks)
		normalizeCommas(toks)
	}
	size := 0
	for _, tok := range toks {
		size += len(tok.Text) + 1
	}
	w := NewWriter(opt.KeywordCase, size)
	for i, tok := range toks {
		w.WriteToken(tok, shouldRecase(toks, i))
	}
	return w.Bytes()
}

// shouldRecase: ключевое слово, не являющееся частью составного имени
// (dbo.Date, x::Parse).
func shouldRecase(toks []token.Token, i int) bool {
	if !toks[i].Kind.IsKeyword() {
		return false
	}
	if i > 0 && isNameSep(toks[i-1].Kind) {
		return false
	}
	if i+1 < len(toks) && toks[i+1].Kind == token.Dot {
		return false
	}
	return true
}

func isNameSep(k token.Kind) bool {
	return k == token.Dot || k == token.DoubleColon
}

// FormatSource lexes sf and formats it. Sources with a lexical error are
// returned unchanged together with the error.
func FormatSource(sf *source.File, opt Options) ([]byte, error) {
	if sf == nil {
		return nil, errors.New("format: nil source file")
	}
	bag := diag.NewBag(1)
	lx := lexer.New(lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	lx.Reset(sf)
	toks := lexer.Collect(lx, true)
	if bag.HasErrors() {
		d := bag.Items()[0]
		pos := sf.Position(d.Primary.Start)
		return sf.Content, fmt.Errorf("format: %s:%s: %s", sf.Path, pos, d.Message)
	}
	return FormatTokens(toks, opt), nil
}

// FormatString is FormatSource over an in-memory fragment.
func FormatString(src string, opt Options) (string, error) {
	out, err := FormatSource(source.NewVirtualFile("<fmt>", []byte(src)), opt)
	return string(out), err
}

// CheckRoundTrip formats sf and re-lexes the result, making sure the
// significant token kinds did not change.
func CheckRoundTrip(sf *source.File, opt Options) (ok bool, msg string) {
	formatted, err := FormatSource(sf, opt)
	if err != nil {
		return false, "fmt-check: " + err.Error()
	}
	before := lexer.Tokenize(string(sf.Content), false)
	after := lexer.Tokenize(string(formatted), false)
	if len(before) != len(after) {
		return false, fmt.Sprintf("fmt-check: token count changed %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i].Kind != after[i].Kind {
			return false, fmt.Sprintf("fmt-check: token %d changed kind %s -> %s", i, before[i].Kind, after[i].Kind)
		}
	}
	return true, ""
}
