package parser

import (
	"sqlex/internal/ast"
	"sqlex/internal/diag"
	"sqlex/internal/token"
)

var comparisonBP = token.BindingPower(token.PrecComparison)

// parsePredicate разбирает BETWEEN / LIKE / IN после необязательного NOT.
func (p *Parser) parsePredicate(left ast.Expr, not *token.Token) (ast.Expr, bool) {
	switch p.s.Current().Kind {
	case token.KwBetween:
		return p.parseBetween(left, not)
	case token.KwLike:
		return p.parseLike(left, not)
	case token.KwIn:
		return p.parseIn(left, not)
	}
	p.failUnexpected(diag.SynExpectPredicate, "BETWEEN, LIKE or IN after NOT")
	return nil, false
}

// BETWEEN low AND high; обе границы на уровне сравнения, без AND: ошибка.
func (p *Parser) parseBetween(left ast.Expr, not *token.Token) (ast.Expr, bool) {
	between := p.advance()
	low, ok := p.ParseExpression(comparisonBP)
	if !ok {
		return nil, false
	}
	and, ok := p.expect(token.KwAnd, diag.SynBetweenMissingAnd, "AND in BETWEEN")
	if !ok {
		return nil, false
	}
	high, ok := p.ParseExpression(comparisonBP)
	if !ok {
		return nil, false
	}
	return &ast.Between{Operand: left, Not: not, Between: between, Start: low, And: and, Stop: high}, true
}

func (p *Parser) parseLike(left ast.Expr, not *token.Token) (ast.Expr, bool) {
	like := p.advance()
	pattern, ok := p.ParseExpression(comparisonBP)
	if !ok {
		return nil, false
	}
	n := &ast.Like{Operand: left, Not: not, Like: like, Pattern: pattern}
	if p.s.at(token.KwEscape) {
		esc := p.advance()
		ch, ok := p.ParseExpression(comparisonBP)
		if !ok {
			return nil, false
		}
		n.Escape, n.EscChar = &esc, ch
	}
	return n, true
}

// IN требует скобок и хотя бы одного элемента.
func (p *Parser) parseIn(left ast.Expr, not *token.Token) (ast.Expr, bool) {
	in := p.advance()
	if !p.s.at(token.LParen) {
		p.failUnexpected(diag.SynExpectLParen, "'(' after IN")
		return nil, false
	}
	open := p.advance()
	list, ok := p.ParseBlock(nil, &open, true)
	if !ok {
		return nil, false
	}
	return &ast.In{Operand: left, Not: not, In: in, List: list}, true
}

// IS [NOT] NULL
func (p *Parser) parseIsNull(left ast.Expr) (ast.Expr, bool) {
	is := p.advance()
	n := &ast.IsNull{Operand: left, Is: is}
	if p.s.at(token.KwNot) {
		not := p.advance()
		n.Not = &not
	}
	null, ok := p.expect(token.KwNull, diag.SynIsMissingNull, "NULL after IS")
	if !ok {
		return nil, false
	}
	n.Null = null
	// T-SQL не допускает x IS NULL IS NULL
	if p.s.at(token.KwIs) {
		p.fail(diag.SynUnexpectedToken, "unexpected IS after IS [NOT] NULL")
		return nil, false
	}
	return n, true
}
