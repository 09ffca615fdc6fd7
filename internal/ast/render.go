package ast

import (
	"strings"

	"sqlex/internal/token"
)

// Render reproduces the source text of e, trivia included.
func Render(e Expr) string {
	if e == nil {
		return ""
	}
	return token.Render(e.Tokens())
}

// Format prints a compact S-expression: 1+2*3 → +(1, *(2, 3)).
// Parentheses folded onto nodes are not shown.
func Format(e Expr) string {
	var b strings.Builder
	format(&b, e)
	return b.String()
}

func format(b *strings.Builder, e Expr) {
	switch n := e.(type) {
	case nil:
		b.WriteString("<nil>")
	case *Literal:
		b.WriteString(n.Token.Text)
	case *Identifier:
		b.WriteString(n.Name())
	case *Unary:
		call(b, opText(n.Op), n.Operand)
	case *Binary:
		call(b, opText(n.Op), n.Left, n.Right)
	case *Assign:
		call(b, "assign"+n.Op.Text, n.Target, n.Value)
	case *IsNull:
		name := "IS NULL"
		if n.HasNot() {
			name = "IS NOT NULL"
		}
		call(b, name, n.Operand)
	case *Like:
		name := notPrefix(n.HasNot(), "LIKE")
		if n.EscChar != nil {
			call(b, name, n.Operand, n.Pattern, n.EscChar)
			return
		}
		call(b, name, n.Operand, n.Pattern)
	case *Between:
		call(b, notPrefix(n.HasNot(), "BETWEEN"), n.Operand, n.Start, n.Stop)
	case *In:
		call(b, notPrefix(n.HasNot(), "IN"), n.Operand, n.List)
	case *List:
		b.WriteByte('[')
		for i, item := range n.Items {
			if i > 0 {
				b.WriteString(", ")
			}
			format(b, item)
		}
		b.WriteByte(']')
	case *Block:
		b.WriteByte('(')
		for i, item := range n.Items {
			if i > 0 {
				b.WriteString(" ")
			}
			format(b, item)
		}
		b.WriteByte(')')
	case *Call:
		format(b, n.Callee)
		call(b, "", callArgs(n)...)
	case *Error:
		b.WriteString("error(")
		b.WriteString(n.Message)
		b.WriteByte(')')
	}
}

func call(b *strings.Builder, name string, args ...Expr) {
	b.WriteString(name)
	b.WriteByte('(')
	for i, a := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		format(b, a)
	}
	b.WriteByte(')')
}

func notPrefix(not bool, name string) string {
	if not {
		return "NOT " + name
	}
	return name
}

// opText: ключевые слова, в верхнем регистре, символы как есть.
func opText(op token.Token) string {
	if op.Kind.IsKeyword() {
		return strings.ToUpper(op.Text)
	}
	return op.Text
}

// callArgs разворачивает f(a, b) в плоский список аргументов.
func callArgs(n *Call) []Expr {
	blk, ok := n.Args.(*Block)
	if !ok {
		return []Expr{n.Args}
	}
	if len(blk.Items) == 1 {
		if l, ok := blk.Items[0].(*List); ok {
			return l.Items
		}
	}
	return blk.Items
}
