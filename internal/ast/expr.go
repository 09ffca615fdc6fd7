package ast

import (
	"sqlex/internal/source"
	"sqlex/internal/token"
)

// ExprKind enumerates the expression variants.
type ExprKind uint8

const (
	ExprLiteral ExprKind = iota
	ExprIdentifier
	ExprUnary
	ExprBinary
	ExprAssign
	ExprIsNull
	ExprLike
	ExprBetween
	ExprIn
	ExprList
	ExprBlock
	ExprCall
	ExprError
)

var exprKindNames = [...]string{
	ExprLiteral:    "Literal",
	ExprIdentifier: "Identifier",
	ExprUnary:      "Unary",
	ExprBinary:     "Binary",
	ExprAssign:     "Assign",
	ExprIsNull:     "IsNull",
	ExprLike:       "Like",
	ExprBetween:    "Between",
	ExprIn:         "In",
	ExprList:       "List",
	ExprBlock:      "Block",
	ExprCall:       "Call",
	ExprError:      "Error",
}

func (k ExprKind) String() string {
	if int(k) < len(exprKindNames) {
		return exprKindNames[k]
	}
	return "ExprKind(?)"
}

// Expr is implemented only by the node types of this package.
type Expr interface {
	Kind() ExprKind
	// Enclosing returns the parentheses around the node, innermost first.
	Enclosing() []Paren
	// Tokens returns every covered token in source order.
	Tokens() []token.Token
	// Span covers the first through the last token, trivia excluded.
	Span() source.Span

	appendInner(dst []token.Token) []token.Token
}

// Paren is one pair of parentheses folded onto a node.
type Paren struct {
	Open  token.Token
	Close token.Token
}

// Enclosure is embedded in every node.
type Enclosure struct {
	Parens []Paren
}

func (p Enclosure) Enclosing() []Paren { return p.Parens }

// appendTokens: открывающие скобки снаружи внутрь, затем узел, затем закрывающие.
func appendTokens(dst []token.Token, e Expr) []token.Token {
	if e == nil {
		return dst
	}
	ps := e.Enclosing()
	for i := len(ps) - 1; i >= 0; i-- {
		dst = append(dst, ps[i].Open)
	}
	dst = e.appendInner(dst)
	for _, p := range ps {
		dst = append(dst, p.Close)
	}
	return dst
}

func tokensOf(e Expr) []token.Token {
	return appendTokens(nil, e)
}

func spanOf(e Expr) source.Span {
	toks := tokensOf(e)
	if len(toks) == 0 {
		return source.Span{}
	}
	return toks[0].Span.Cover(toks[len(toks)-1].Span)
}

func appendOpt(dst []token.Token, t *token.Token) []token.Token {
	if t == nil {
		return dst
	}
	return append(dst, *t)
}
