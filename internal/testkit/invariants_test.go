package testkit

import (
	"testing"

	"sqlex/internal/ast"
	"sqlex/internal/parser"
	"sqlex/internal/source"
	"sqlex/internal/token"
)

func TestParsedTreesHoldInvariants(t *testing.T) {
	inputs := []string{
		"1 + 2 * 3",
		"((a)) NOT BETWEEN -1 AND f(x)",
		"name LIKE N'a%' ESCAPE '!' OR id IN (1, 2)",
		"dbo.f(x, 1) * 2",
		"t.*",
	}
	for _, src := range inputs {
		sf := source.NewVirtualFile("t.sql", []byte(src))
		res, err := parser.New(sf, parser.Options{}).ParseTop()
		if err != nil {
			t.Fatalf("%q: %v", src, err)
		}
		if err := CheckSpanInvariants(res.Expr, sf); err != nil {
			t.Errorf("%q: %v", src, err)
		}
	}
}

func TestDetectsMisplacedChild(t *testing.T) {
	sf := source.NewVirtualFile("t.sql", []byte("a + b"))
	tok := func(k token.Kind, text string, start uint32) token.Token {
		return token.Token{Kind: k, Text: text, Span: source.Span{File: sf.ID, Start: start, End: start + uint32(len(text))}}
	}
	bad := &ast.Binary{
		Left:  &ast.Identifier{Parts: []token.Token{tok(token.Identifier, "b", 4)}},
		Op:    tok(token.Plus, "+", 2),
		Right: &ast.Identifier{Parts: []token.Token{tok(token.Identifier, "a", 0)}},
	}
	if err := CheckSpanInvariants(bad, sf); err == nil {
		t.Fatal("expected an ordering error")
	}
	if err := CheckSpanInvariants(nil, sf); err == nil {
		t.Fatal("expected error for nil expression")
	}
}
