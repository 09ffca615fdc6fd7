package ast

// Rewrite applies fn bottom-up. A node is rebuilt only when one of its
// children changed; fn then decides what replaces it (returning the node
// itself keeps it). Untouched subtrees are shared with the input.
func Rewrite(e Expr, fn func(Expr) Expr) Expr {
	if e == nil {
		return nil
	}
	return fn(rebuild(e, fn))
}

func rebuild(e Expr, fn func(Expr) Expr) Expr {
	switch n := e.(type) {
	case *Unary:
		op := Rewrite(n.Operand, fn)
		if op == n.Operand {
			return n
		}
		c := *n
		c.Operand = op
		return &c
	case *Binary:
		l, r := Rewrite(n.Left, fn), Rewrite(n.Right, fn)
		if l == n.Left && r == n.Right {
			return n
		}
		c := *n
		c.Left, c.Right = l, r
		return &c
	case *Assign:
		t, v := Rewrite(n.Target, fn), Rewrite(n.Value, fn)
		if t == n.Target && v == n.Value {
			return n
		}
		c := *n
		c.Target, c.Value = t, v
		return &c
	case *IsNull:
		op := Rewrite(n.Operand, fn)
		if op == n.Operand {
			return n
		}
		c := *n
		c.Operand = op
		return &c
	case *Like:
		op, pat, esc := Rewrite(n.Operand, fn), Rewrite(n.Pattern, fn), Rewrite(n.EscChar, fn)
		if op == n.Operand && pat == n.Pattern && esc == n.EscChar {
			return n
		}
		c := *n
		c.Operand, c.Pattern, c.EscChar = op, pat, esc
		return &c
	case *Between:
		op, lo, hi := Rewrite(n.Operand, fn), Rewrite(n.Start, fn), Rewrite(n.Stop, fn)
		if op == n.Operand && lo == n.Start && hi == n.Stop {
			return n
		}
		c := *n
		c.Operand, c.Start, c.Stop = op, lo, hi
		return &c
	case *In:
		op, list := Rewrite(n.Operand, fn), Rewrite(n.List, fn)
		if op == n.Operand && list == n.List {
			return n
		}
		c := *n
		c.Operand, c.List = op, list
		return &c
	case *List:
		items, changed := rewriteAll(n.Items, fn)
		if !changed {
			return n
		}
		c := *n
		c.Items = items
		return &c
	case *Block:
		items, changed := rewriteAll(n.Items, fn)
		if !changed {
			return n
		}
		c := *n
		c.Items = items
		return &c
	case *Call:
		callee, args := Rewrite(n.Callee, fn), Rewrite(n.Args, fn)
		if callee == n.Callee && args == n.Args {
			return n
		}
		c := *n
		c.Callee, c.Args = callee, args
		return &c
	}
	return e
}

func rewriteAll(items []Expr, fn func(Expr) Expr) ([]Expr, bool) {
	var out []Expr
	for i, item := range items {
		r := Rewrite(item, fn)
		if r != item && out == nil {
			out = make([]Expr, len(items))
			copy(out, items[:i])
		}
		if out != nil {
			out[i] = r
		}
	}
	if out == nil {
		return items, false
	}
	return out, true
}
