package ast

import (
	"strings"

	"sqlex/internal/source"
	"sqlex/internal/token"
)

// Literal: строка, число, money, NULL.
type Literal struct {
	Enclosure
	Token token.Token
}

// Identifier is a one- or multi-part name: a, dbo.t, [db]..[t], t.*, geography::Point.
// Parts[i] has Kind None for an omitted part (db..t); Seps holds the
// separators between parts.
type Identifier struct {
	Enclosure
	Parts []token.Token
	Seps  []token.Token
}

type Unary struct {
	Enclosure
	Op      token.Token
	Operand Expr
}

type Binary struct {
	Enclosure
	Left  Expr
	Op    token.Token
	Right Expr
}

// Assign: target = value, or a compound form (+=, -=, ...).
type Assign struct {
	Enclosure
	Target Expr
	Op     token.Token
	Value  Expr
}

type IsNull struct {
	Enclosure
	Operand Expr
	Is      token.Token
	Not     *token.Token
	Null    token.Token
}

type Like struct {
	Enclosure
	Operand Expr
	Not     *token.Token
	Like    token.Token
	Pattern Expr
	Escape  *token.Token
	EscChar Expr // nil без ESCAPE
}

type Between struct {
	Enclosure
	Operand Expr
	Not     *token.Token
	Between token.Token
	Start   Expr
	And     token.Token
	Stop    Expr
}

// In: operand [NOT] IN (list); List is always a parenthesized *Block.
type In struct {
	Enclosure
	Operand Expr
	Not     *token.Token
	In      token.Token
	List    Expr
}

// List is a flat comma list: a, b, c.
type List struct {
	Enclosure
	Items  []Expr
	Commas []token.Token
}

// Block is a generic run of expressions, parenthesized when Open is set.
// An empty parenthesized block has no items.
type Block struct {
	Enclosure
	Open  *token.Token
	Items []Expr
	Close *token.Token
}

// Call: callee(args); Args is a parenthesized *Block, possibly empty.
type Call struct {
	Enclosure
	Callee Expr
	Args   Expr
}

// Error replaces the tree when parsing failed.
type Error struct {
	Enclosure
	Message string
	At      token.Token
}

func (*Literal) Kind() ExprKind    { return ExprLiteral }
func (*Identifier) Kind() ExprKind { return ExprIdentifier }
func (*Unary) Kind() ExprKind      { return ExprUnary }
func (*Binary) Kind() ExprKind     { return ExprBinary }
func (*Assign) Kind() ExprKind     { return ExprAssign }
func (*IsNull) Kind() ExprKind     { return ExprIsNull }
func (*Like) Kind() ExprKind       { return ExprLike }
func (*Between) Kind() ExprKind    { return ExprBetween }
func (*In) Kind() ExprKind         { return ExprIn }
func (*List) Kind() ExprKind       { return ExprList }
func (*Block) Kind() ExprKind      { return ExprBlock }
func (*Call) Kind() ExprKind       { return ExprCall }
func (*Error) Kind() ExprKind      { return ExprError }

func (n *Literal) Tokens() []token.Token    { return tokensOf(n) }
func (n *Identifier) Tokens() []token.Token { return tokensOf(n) }
func (n *Unary) Tokens() []token.Token      { return tokensOf(n) }
func (n *Binary) Tokens() []token.Token     { return tokensOf(n) }
func (n *Assign) Tokens() []token.Token     { return tokensOf(n) }
func (n *IsNull) Tokens() []token.Token     { return tokensOf(n) }
func (n *Like) Tokens() []token.Token       { return tokensOf(n) }
func (n *Between) Tokens() []token.Token    { return tokensOf(n) }
func (n *In) Tokens() []token.Token         { return tokensOf(n) }
func (n *List) Tokens() []token.Token       { return tokensOf(n) }
func (n *Block) Tokens() []token.Token      { return tokensOf(n) }
func (n *Call) Tokens() []token.Token       { return tokensOf(n) }
func (n *Error) Tokens() []token.Token      { return tokensOf(n) }

func (n *Literal) Span() source.Span    { return spanOf(n) }
func (n *Identifier) Span() source.Span { return spanOf(n) }
func (n *Unary) Span() source.Span      { return spanOf(n) }
func (n *Binary) Span() source.Span     { return spanOf(n) }
func (n *Assign) Span() source.Span     { return spanOf(n) }
func (n *IsNull) Span() source.Span     { return spanOf(n) }
func (n *Like) Span() source.Span       { return spanOf(n) }
func (n *Between) Span() source.Span    { return spanOf(n) }
func (n *In) Span() source.Span         { return spanOf(n) }
func (n *List) Span() source.Span       { return spanOf(n) }
func (n *Block) Span() source.Span      { return spanOf(n) }
func (n *Call) Span() source.Span       { return spanOf(n) }
func (n *Error) Span() source.Span      { return spanOf(n) }

func (n *Literal) appendInner(dst []token.Token) []token.Token {
	return append(dst, n.Token)
}

func (n *Identifier) appendInner(dst []token.Token) []token.Token {
	for i, part := range n.Parts {
		if i > 0 && i-1 < len(n.Seps) {
			dst = append(dst, n.Seps[i-1])
		}
		if part.Kind != token.None {
			dst = append(dst, part)
		}
	}
	return dst
}

func (n *Unary) appendInner(dst []token.Token) []token.Token {
	dst = append(dst, n.Op)
	return appendTokens(dst, n.Operand)
}

func (n *Binary) appendInner(dst []token.Token) []token.Token {
	dst = appendTokens(dst, n.Left)
	dst = append(dst, n.Op)
	return appendTokens(dst, n.Right)
}

func (n *Assign) appendInner(dst []token.Token) []token.Token {
	dst = appendTokens(dst, n.Target)
	dst = append(dst, n.Op)
	return appendTokens(dst, n.Value)
}

func (n *IsNull) appendInner(dst []token.Token) []token.Token {
	dst = appendTokens(dst, n.Operand)
	dst = append(dst, n.Is)
	dst = appendOpt(dst, n.Not)
	return append(dst, n.Null)
}

func (n *Like) appendInner(dst []token.Token) []token.Token {
	dst = appendTokens(dst, n.Operand)
	dst = appendOpt(dst, n.Not)
	dst = append(dst, n.Like)
	dst = appendTokens(dst, n.Pattern)
	dst = appendOpt(dst, n.Escape)
	return appendTokens(dst, n.EscChar)
}

func (n *Between) appendInner(dst []token.Token) []token.Token {
	dst = appendTokens(dst, n.Operand)
	dst = appendOpt(dst, n.Not)
	dst = append(dst, n.Between)
	dst = appendTokens(dst, n.Start)
	dst = append(dst, n.And)
	return appendTokens(dst, n.Stop)
}

func (n *In) appendInner(dst []token.Token) []token.Token {
	dst = appendTokens(dst, n.Operand)
	dst = appendOpt(dst, n.Not)
	dst = append(dst, n.In)
	return appendTokens(dst, n.List)
}

func (n *List) appendInner(dst []token.Token) []token.Token {
	for i, item := range n.Items {
		if i > 0 && i-1 < len(n.Commas) {
			dst = append(dst, n.Commas[i-1])
		}
		dst = appendTokens(dst, item)
	}
	return dst
}

func (n *Block) appendInner(dst []token.Token) []token.Token {
	dst = appendOpt(dst, n.Open)
	for _, item := range n.Items {
		dst = appendTokens(dst, item)
	}
	return appendOpt(dst, n.Close)
}

func (n *Call) appendInner(dst []token.Token) []token.Token {
	dst = appendTokens(dst, n.Callee)
	return appendTokens(dst, n.Args)
}

func (n *Error) appendInner(dst []token.Token) []token.Token {
	if n.At.Kind == token.None || n.At.Kind == token.EOF {
		return dst
	}
	return append(dst, n.At)
}

// HasNot reports the NOT form of the predicate.
func (n *IsNull) HasNot() bool  { return n.Not != nil }
func (n *Like) HasNot() bool    { return n.Not != nil }
func (n *Between) HasNot() bool { return n.Not != nil }
func (n *In) HasNot() bool      { return n.Not != nil }

// Name joins the unescaped parts with their separators.
func (n *Identifier) Name() string {
	var b strings.Builder
	for i, part := range n.Parts {
		if i > 0 && i-1 < len(n.Seps) {
			b.WriteString(n.Seps[i-1].Text)
		}
		switch {
		case part.Kind == token.Star:
			b.WriteByte('*')
		case part.Name != "":
			b.WriteString(part.Name)
		default:
			b.WriteString(part.Text)
		}
	}
	return b.String()
}

// IsWildcard: * или t.*
func (n *Identifier) IsWildcard() bool {
	return len(n.Parts) > 0 && n.Parts[len(n.Parts)-1].Kind == token.Star
}

// IsVariable: одиночная @переменная.
func (n *Identifier) IsVariable() bool {
	return len(n.Parts) == 1 && n.Parts[0].Kind.IsVariable()
}
