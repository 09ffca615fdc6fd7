package parser

import (
	"fmt"

	"sqlex/internal/diag"
	"sqlex/internal/lexer"
	"sqlex/internal/source"
	"sqlex/internal/token"
)

// Error is the first syntax error of a parse.
type Error struct {
	Code  diag.Code
	Msg   string
	Span  source.Span
	Pos   source.LineCol
	Token token.Token
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s [%s]", e.Pos, e.Msg, e.Code.ID())
}

// errorSpan: на EOF ставим ошибку сразу после последнего токена.
func (p *Parser) errorSpan(tok token.Token) source.Span {
	if tok.Kind == token.EOF && p.lastEnd > 0 {
		return source.At(tok.Span.File, p.lastEnd)
	}
	return tok.Span
}

// fail записывает ошибку на текущем токене и репортит её.
func (p *Parser) fail(code diag.Code, format string, args ...any) {
	p.failWith(code, nil, format, args...)
}

func (p *Parser) failWith(code diag.Code, fix *diag.Fix, format string, args ...any) {
	if p.s.Err() != nil {
		return
	}
	tok := p.s.Current()
	sp := p.errorSpan(tok)
	e := &Error{
		Code:  code,
		Msg:   fmt.Sprintf(format, args...),
		Span:  sp,
		Pos:   p.file.Position(sp.Start),
		Token: tok,
	}
	p.s.fail(e)
	// лексер уже сообщил о своей ошибке
	if code == diag.SynLexical || p.opts.Reporter == nil {
		return
	}
	d := diag.NewError(code, sp, e.Msg)
	if fix != nil {
		d = d.WithFix(fix.Title, fix.Edits...)
	}
	diag.Send(p.opts.Reporter, d)
}

// failUnexpected выбирает код по текущему токену: лексическая ошибка,
// конец ввода или просто неожиданный токен.
func (p *Parser) failUnexpected(expectCode diag.Code, what string) {
	tok := p.s.Current()
	switch {
	case tok.Kind.IsError():
		p.fail(diag.SynLexical, "%s", lexer.ErrorMessage(tok))
	case tok.Kind == token.EOF:
		p.fail(expectCode, "expected %s, found end of input", what)
	default:
		p.fail(expectCode, "expected %s, found %s", what, describe(tok))
	}
}

func describe(tok token.Token) string {
	switch {
	case tok.Kind == token.EOF:
		return "end of input"
	case tok.Kind.IsKeyword():
		return "keyword " + tok.Text
	default:
		return fmt.Sprintf("%q", tok.Text)
	}
}
