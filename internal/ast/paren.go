package ast

// WithParen returns a copy of e enclosed in one more pair of parentheses.
// The original node is left untouched.
func WithParen(e Expr, p Paren) Expr {
	add := func(ps []Paren) Enclosure {
		out := make([]Paren, 0, len(ps)+1)
		out = append(out, ps...)
		return Enclosure{Parens: append(out, p)}
	}
	switch n := e.(type) {
	case *Literal:
		c := *n
		c.Enclosure = add(n.Parens)
		return &c
	case *Identifier:
		c := *n
		c.Enclosure = add(n.Parens)
		return &c
	case *Unary:
		c := *n
		c.Enclosure = add(n.Parens)
		return &c
	case *Binary:
		c := *n
		c.Enclosure = add(n.Parens)
		return &c
	case *Assign:
		c := *n
		c.Enclosure = add(n.Parens)
		return &c
	case *IsNull:
		c := *n
		c.Enclosure = add(n.Parens)
		return &c
	case *Like:
		c := *n
		c.Enclosure = add(n.Parens)
		return &c
	case *Between:
		c := *n
		c.Enclosure = add(n.Parens)
		return &c
	case *In:
		c := *n
		c.Enclosure = add(n.Parens)
		return &c
	case *List:
		c := *n
		c.Enclosure = add(n.Parens)
		return &c
	case *Block:
		c := *n
		c.Enclosure = add(n.Parens)
		return &c
	case *Call:
		c := *n
		c.Enclosure = add(n.Parens)
		return &c
	case *Error:
		c := *n
		c.Enclosure = add(n.Parens)
		return &c
	}
	panic("ast: WithParen on unknown node")
}

// Enclosable reports whether a parenthesized block holding only e may be
// folded into paren metadata on e. Comma lists keep their block.
func Enclosable(e Expr) bool {
	switch e.(type) {
	case *List, *Error, nil:
		return false
	}
	return true
}
