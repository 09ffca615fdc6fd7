package parser

import (
	"sqlex/internal/ast"
	"sqlex/internal/diag"
	"sqlex/internal/token"
)

// ParseBlock collects expressions until stop (or ')' when open is set).
//
//   - open != nil: the block is parenthesized and always yields a *ast.Block,
//     possibly empty; required makes an empty one an error.
//   - open == nil: a bare run; zero expressions yield nil ("absent") unless
//     required, which makes it an error.
func (p *Parser) ParseBlock(stop func(token.Token) bool, open *token.Token, required bool) (ast.Expr, bool) {
	var items []ast.Expr
	for {
		cur := p.s.Current()
		if cur.Kind == token.EOF ||
			(open != nil && cur.Kind == token.RParen) ||
			(stop != nil && stop(cur)) {
			break
		}
		e, ok := p.ParseExpression(0)
		if !ok {
			return nil, false
		}
		items = append(items, e)
	}

	if open == nil {
		if len(items) == 0 {
			if required {
				p.failUnexpected(diag.SynEmptyBlock, "expression")
				return nil, false
			}
			return nil, true
		}
		return &ast.Block{Items: items}, true
	}

	if required && len(items) == 0 && p.s.at(token.RParen) {
		p.fail(diag.SynEmptyBlock, "empty parentheses, expected expression")
		return nil, false
	}
	closing, ok := p.expectClose(*open)
	if !ok {
		return nil, false
	}
	o := *open
	return &ast.Block{Open: &o, Items: items, Close: &closing}, true
}

func (p *Parser) expectClose(open token.Token) (token.Token, bool) {
	if p.s.at(token.RParen) {
		return p.advance(), true
	}
	if p.s.Current().Kind.IsError() {
		p.failUnexpected(diag.SynExpectRParen, "')'")
		return token.Token{}, false
	}
	pos := p.file.Position(open.Span.Start)
	// вставка сразу после последнего съеденного токена, до его trivia
	at := p.errorSpan(p.s.Current())
	fix := &diag.Fix{
		Title: "insert ')'",
		Edits: []diag.FixEdit{diag.InsertAt(at.File, p.lastEnd, ")")},
	}
	p.failWith(diag.SynExpectRParen, fix, "expected ')' to close '(' at %s, found %s",
		pos, describe(p.s.Current()))
	return token.Token{}, false
}
