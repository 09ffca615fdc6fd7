package parser

import (
	"sqlex/internal/ast"
	"sqlex/internal/diag"
	"sqlex/internal/token"
)

// ParseExpression: Pratt-разбор с порогом rbp (binding power справа).
// Продолжения поглощаются, пока BindingPower(уровень токена) > rbp.
// Ошибка липкая: после первой возвращаем (nil, false) до самого верха.
func (p *Parser) ParseExpression(rbp int) (ast.Expr, bool) {
	left, ok := p.nud()
	if !ok {
		return nil, false
	}
	for {
		tok := p.s.Current()
		level := ledLevel(tok.Kind)
		if level == 0 || token.BindingPower(level) <= rbp {
			break
		}
		kind := classifyLed(tok.Kind)
		if kind == ledNone || (kind == ledCall && !isCallee(left)) {
			break
		}
		left, ok = p.led(kind, left)
		if !ok {
			return nil, false
		}
	}
	return left, true
}

// nud: токен без левого операнда.
func (p *Parser) nud() (ast.Expr, bool) {
	tok := p.s.Current()
	switch {
	case tok.Kind.IsLiteral(), tok.Kind == token.KwNull:
		p.advance()
		return &ast.Literal{Token: tok}, true
	case isNameToken(tok.Kind), tok.Kind == token.Star:
		return p.parseName()
	case tok.Kind == token.Plus, tok.Kind == token.Minus, tok.Kind == token.Tilde, tok.Kind == token.KwNot:
		op := p.advance()
		operand, ok := p.ParseExpression(token.BindingPower(op.Kind.Precedence()))
		if !ok {
			return nil, false
		}
		return &ast.Unary{Op: op, Operand: operand}, true
	case tok.Kind == token.LParen:
		return p.parseParenExpr()
	case tok.Kind == token.EOF, tok.Kind.IsError():
		p.failUnexpected(diag.SynExpectExpression, "expression")
	default:
		p.fail(diag.SynUnexpectedToken, "unexpected %s, expected expression", describe(tok))
	}
	return nil, false
}

func (p *Parser) led(kind ledKind, left ast.Expr) (ast.Expr, bool) {
	switch kind {
	case ledBinary:
		op := p.advance()
		right, ok := p.ParseExpression(token.BindingPower(op.Kind.Precedence()))
		if !ok {
			return nil, false
		}
		return &ast.Binary{Left: left, Op: op, Right: right}, true
	case ledAssign:
		return p.parseAssign(left)
	case ledComma:
		return p.parseList(left)
	case ledCall:
		open := p.advance()
		args, ok := p.ParseBlock(nil, &open, false)
		if !ok {
			return nil, false
		}
		return &ast.Call{Callee: left, Args: args}, true
	case ledNot:
		not := p.advance()
		return p.parsePredicate(left, &not)
	case ledBetween, ledLike, ledIn:
		return p.parsePredicate(left, nil)
	case ledIs:
		return p.parseIsNull(left)
	}
	return left, true
}

// parseName: a, a.b.c, db..t, t.*, *, type::Method.
func (p *Parser) parseName() (ast.Expr, bool) {
	first := p.advance()
	id := &ast.Identifier{Parts: []token.Token{first}}
	if first.Kind == token.Star {
		return id, true
	}
	for p.s.at(token.Dot) || p.s.at(token.DoubleColon) {
		sep := p.advance()
		id.Seps = append(id.Seps, sep)
		cur := p.s.Current()
		switch {
		case sep.Kind == token.Dot && cur.Kind == token.Dot:
			id.Parts = append(id.Parts, token.Token{})
		case sep.Kind == token.Dot && cur.Kind == token.Star:
			id.Parts = append(id.Parts, p.advance())
			return id, true
		case isNameToken(cur.Kind):
			id.Parts = append(id.Parts, p.advance())
		default:
			p.failUnexpected(diag.SynUnexpectedToken, "name after '"+sep.Text+"'")
			return nil, false
		}
	}
	return id, true
}

// parseParenExpr: ( ... ). Один заключаемый элемент получает скобки
// метаданными вместо лишнего узла Block.
func (p *Parser) parseParenExpr() (ast.Expr, bool) {
	open := p.advance()
	e, ok := p.ParseBlock(nil, &open, true)
	if !ok {
		return nil, false
	}
	blk := e.(*ast.Block)
	if len(blk.Items) == 1 && ast.Enclosable(blk.Items[0]) {
		return ast.WithParen(blk.Items[0], ast.Paren{Open: *blk.Open, Close: *blk.Close}), true
	}
	return blk, true
}

// parseAssign: цель может быть только простым именем. Правая часть разбирается на bp-1
// (правоассоциативно) в режиме сравнения; режим восстанавливается всегда.
func (p *Parser) parseAssign(left ast.Expr) (ast.Expr, bool) {
	if !isAssignTarget(left) {
		p.fail(diag.SynAssignTarget, "left side of %s must be a plain identifier", describe(p.s.Current()))
		return nil, false
	}
	op := p.advance()
	prev := p.s.SetComparisonContext(true)
	value, ok := p.ParseExpression(token.BindingPower(token.PrecAssignment) - 1)
	p.s.SetComparisonContext(prev)
	if !ok {
		return nil, false
	}
	return &ast.Assign{Target: left, Op: op, Value: value}, true
}

// parseList: плоский список через запятую.
func (p *Parser) parseList(first ast.Expr) (ast.Expr, bool) {
	list := &ast.List{Items: []ast.Expr{first}}
	for p.s.at(token.Comma) {
		list.Commas = append(list.Commas, p.advance())
		item, ok := p.ParseExpression(token.BindingPower(token.PrecComma))
		if !ok {
			return nil, false
		}
		list.Items = append(list.Items, item)
	}
	return list, true
}

func isCallee(e ast.Expr) bool {
	id, ok := e.(*ast.Identifier)
	return ok && len(id.Parens) == 0 && !id.IsWildcard() && !id.IsVariable()
}

func isAssignTarget(e ast.Expr) bool {
	id, ok := e.(*ast.Identifier)
	return ok && len(id.Parens) == 0 && !id.IsWildcard()
}
