package parser

import (
	"fmt"
	"strings"

	"sqlex/internal/ast"
	"sqlex/internal/diag"
	"sqlex/internal/lexer"
	"sqlex/internal/source"
	"sqlex/internal/token"
)

// Context selects how a bare '=' is read.
type Context uint8

const (
	// ContextComparison: '=' is equality (WHERE-like positions).
	ContextComparison Context = iota
	// ContextAssignment: '=' after a plain identifier assigns (SET, column lists).
	ContextAssignment
)

func (c Context) String() string {
	if c == ContextAssignment {
		return "assignment"
	}
	return "comparison"
}

// ParseContext accepts "comparison" or "assignment" in any case.
func ParseContext(s string) (Context, error) {
	switch strings.ToLower(s) {
	case "", "comparison":
		return ContextComparison, nil
	case "assignment":
		return ContextAssignment, nil
	}
	return ContextComparison, fmt.Errorf("invalid context: %q (expected: comparison|assignment)", s)
}

type Options struct {
	Context  Context
	Reporter diag.Reporter // nil: ошибки только в возвращаемом *Error
	File     string        // имя для виртуального файла
}

// Result of a top-level parse. On failure Expr is an *ast.Error.
type Result struct {
	Expr ast.Expr
	End  token.Token // токен, на котором остановились
}

// Parser: состояние разбора одного входа. Не потокобезопасен.
type Parser struct {
	s       *Stream
	file    *source.File
	opts    Options
	lastEnd uint32 // конец последнего съеденного токена
}

// New primes a lexer over file and wraps it.
func New(file *source.File, opts Options) *Parser {
	lx := lexer.New(lexer.Options{Reporter: opts.Reporter})
	lx.Reset(file)
	return &Parser{
		s:    NewStream(lx, opts.Context == ContextComparison),
		file: file,
		opts: opts,
	}
}

// NewString parses an in-memory fragment.
func NewString(src string, opts Options) *Parser {
	name := opts.File
	if name == "" {
		name = "<expr>"
	}
	return New(source.NewVirtualFile(name, []byte(src)), opts)
}

// Stream exposes the token cursor.
func (p *Parser) Stream() *Stream { return p.s }

func (p *Parser) File() *source.File { return p.file }

// Err returns the first syntax error or nil.
func (p *Parser) Err() *Error { return p.s.Err() }

// ParseExpression parses src as one complete expression.
func ParseExpression(src string, opts Options) (Result, error) {
	return NewString(src, opts).ParseTop()
}

// ParseTop parses one expression and requires the input to end there.
// Render(Expr) followed by End reproduces the input.
func (p *Parser) ParseTop() (Result, error) {
	expr, ok := p.ParseExpression(0)
	if ok {
		if !p.s.at(token.EOF) {
			p.failUnexpected(diag.SynTrailingTokens, "end of expression")
			ok = false
		}
	}
	if !ok {
		return p.errorResult(), p.s.Err()
	}
	return Result{Expr: expr, End: p.s.Current()}, nil
}

func (p *Parser) errorResult() Result {
	e := p.s.Err()
	if e == nil {
		// парсер вернул неуспех без ошибки: дефект
		panic("parser: failure without error")
	}
	return Result{
		Expr: &ast.Error{Message: e.Msg, At: e.Token},
		End:  p.s.Current(),
	}
}

// advance съедает текущий токен и запоминает его конец.
func (p *Parser) advance() token.Token {
	tok := p.s.Current()
	p.lastEnd = tok.Span.End
	p.s.Advance()
	return tok
}

// expect съедает токен вида k или фиксирует ошибку.
func (p *Parser) expect(k token.Kind, code diag.Code, what string) (token.Token, bool) {
	if p.s.at(k) {
		return p.advance(), true
	}
	p.failUnexpected(code, what)
	return token.Token{}, false
}
