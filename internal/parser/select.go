package parser

import (
	"strings"

	"sqlex/internal/ast"
	"sqlex/internal/diag"
	"sqlex/internal/source"
	"sqlex/internal/token"
)

// SelectHeader is the head of a SELECT up to (not including) FROM, WHERE
// or whatever else ends the column list.
type SelectHeader struct {
	Select     token.Token
	Quantifier *token.Token // ALL | DISTINCT
	Top        *TopClause
	Columns    []Column
	Commas     []token.Token
	End        token.Token // первый токен после заголовка
}

// TopClause: TOP (n) | TOP n [PERCENT] [WITH TIES].
type TopClause struct {
	Top     token.Token
	Count   ast.Expr
	Percent *token.Token
	With    *token.Token
	Ties    *token.Token
}

// Column is expr [[AS] alias].
type Column struct {
	Expr  ast.Expr
	As    *token.Token
	Alias *token.Token
}

// AliasName returns the unescaped alias or "".
func (c Column) AliasName() string {
	if c.Alias == nil {
		return ""
	}
	if c.Alias.Kind.IsLiteral() {
		return c.Alias.Value
	}
	return c.Alias.Name
}

// Tokens of the header in source order, End excluded.
func (h *SelectHeader) Tokens() []token.Token {
	out := []token.Token{h.Select}
	if h.Quantifier != nil {
		out = append(out, *h.Quantifier)
	}
	if t := h.Top; t != nil {
		out = append(out, t.Top)
		out = append(out, t.Count.Tokens()...)
		for _, opt := range []*token.Token{t.Percent, t.With, t.Ties} {
			if opt != nil {
				out = append(out, *opt)
			}
		}
	}
	for i, col := range h.Columns {
		if i > 0 && i-1 < len(h.Commas) {
			out = append(out, h.Commas[i-1])
		}
		out = append(out, col.Expr.Tokens()...)
		if col.As != nil {
			out = append(out, *col.As)
		}
		if col.Alias != nil {
			out = append(out, *col.Alias)
		}
	}
	return out
}

func (h *SelectHeader) Span() source.Span {
	toks := h.Tokens()
	return toks[0].Span.Cover(toks[len(toks)-1].Span)
}

// Render reproduces the header source, trivia included.
func (h *SelectHeader) Render() string {
	return token.Render(h.Tokens())
}

// ParseSelectHeader parses SELECT [ALL|DISTINCT] [TOP ...] columns from src.
func ParseSelectHeader(src string, opts Options) (*SelectHeader, error) {
	p := NewString(src, opts)
	h, ok := p.ParseSelectHeader()
	if !ok {
		return nil, p.s.Err()
	}
	return h, nil
}

// ParseSelectHeader разбирает заголовок с текущей позиции. Колонки
// читаются в режиме присваивания: SELECT total = a + b.
func (p *Parser) ParseSelectHeader() (*SelectHeader, bool) {
	sel, ok := p.expect(token.KwSelect, diag.SynUnexpectedToken, "SELECT")
	if !ok {
		return nil, false
	}
	h := &SelectHeader{Select: sel}
	if p.s.at(token.KwAll) || p.s.at(token.KwDistinct) {
		q := p.advance()
		h.Quantifier = &q
	}
	if p.s.at(token.KwTop) {
		if h.Top, ok = p.parseTop(); !ok {
			return nil, false
		}
	}

	prev := p.s.SetComparisonContext(false)
	defer p.s.SetComparisonContext(prev)
	for {
		col, ok := p.parseColumn()
		if !ok {
			return nil, false
		}
		h.Columns = append(h.Columns, col)
		if !p.s.at(token.Comma) {
			break
		}
		h.Commas = append(h.Commas, p.advance())
	}
	h.End = p.s.Current()
	return h, true
}

func (p *Parser) parseTop() (*TopClause, bool) {
	t := &TopClause{Top: p.advance()}
	var ok bool
	if p.s.at(token.LParen) {
		t.Count, ok = p.parseParenExpr()
		if !ok {
			return nil, false
		}
		if _, isBlock := t.Count.(*ast.Block); isBlock {
			p.fail(diag.SynUnexpectedToken, "TOP expects a single expression")
			return nil, false
		}
	} else {
		// без скобок допустим только первичный операнд: TOP 10, TOP @n
		t.Count, ok = p.ParseExpression(token.BindingPower(token.PrecPrimary))
		if !ok {
			return nil, false
		}
	}
	if p.s.at(token.KwPercent) {
		pc := p.advance()
		t.Percent = &pc
	}
	if p.s.at(token.KwWith) {
		with := p.advance()
		ties := p.s.Current()
		if ties.Kind != token.Identifier || !strings.EqualFold(ties.Text, "TIES") {
			p.failUnexpected(diag.SynUnexpectedToken, "TIES after WITH")
			return nil, false
		}
		p.advance()
		t.With, t.Ties = &with, &ties
	}
	return t, true
}

func (p *Parser) parseColumn() (Column, bool) {
	e, ok := p.ParseExpression(token.BindingPower(token.PrecComma))
	if !ok {
		return Column{}, false
	}
	col := Column{Expr: e}
	if p.s.at(token.KwAs) {
		as := p.advance()
		col.As = &as
		if !isAlias(p.s.Current().Kind) {
			p.failUnexpected(diag.SynUnexpectedToken, "alias after AS")
			return Column{}, false
		}
	}
	if isAlias(p.s.Current().Kind) {
		alias := p.advance()
		col.Alias = &alias
	}
	return col, true
}

func isAlias(k token.Kind) bool {
	switch k {
	case token.Identifier, token.IdentifierQuoted, token.IdentifierQuotedBracket,
		token.String, token.NString:
		return true
	}
	return false
}
