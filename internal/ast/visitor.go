package ast

// Visitor has one method per variant; Accept dispatches exhaustively.
type Visitor[T any] interface {
	VisitLiteral(*Literal) T
	VisitIdentifier(*Identifier) T
	VisitUnary(*Unary) T
	VisitBinary(*Binary) T
	VisitAssign(*Assign) T
	VisitIsNull(*IsNull) T
	VisitLike(*Like) T
	VisitBetween(*Between) T
	VisitIn(*In) T
	VisitList(*List) T
	VisitBlock(*Block) T
	VisitCall(*Call) T
	VisitError(*Error) T
}

func Accept[T any](e Expr, v Visitor[T]) T {
	switch n := e.(type) {
	case *Literal:
		return v.VisitLiteral(n)
	case *Identifier:
		return v.VisitIdentifier(n)
	case *Unary:
		return v.VisitUnary(n)
	case *Binary:
		return v.VisitBinary(n)
	case *Assign:
		return v.VisitAssign(n)
	case *IsNull:
		return v.VisitIsNull(n)
	case *Like:
		return v.VisitLike(n)
	case *Between:
		return v.VisitBetween(n)
	case *In:
		return v.VisitIn(n)
	case *List:
		return v.VisitList(n)
	case *Block:
		return v.VisitBlock(n)
	case *Call:
		return v.VisitCall(n)
	case *Error:
		return v.VisitError(n)
	}
	panic("ast: Accept on unknown node")
}

// Children returns the direct child expressions in source order.
func Children(e Expr) []Expr {
	switch n := e.(type) {
	case *Unary:
		return []Expr{n.Operand}
	case *Binary:
		return []Expr{n.Left, n.Right}
	case *Assign:
		return []Expr{n.Target, n.Value}
	case *IsNull:
		return []Expr{n.Operand}
	case *Like:
		if n.EscChar != nil {
			return []Expr{n.Operand, n.Pattern, n.EscChar}
		}
		return []Expr{n.Operand, n.Pattern}
	case *Between:
		return []Expr{n.Operand, n.Start, n.Stop}
	case *In:
		return []Expr{n.Operand, n.List}
	case *List:
		return n.Items
	case *Block:
		return n.Items
	case *Call:
		return []Expr{n.Callee, n.Args}
	}
	return nil
}

// Inspect walks the tree depth-first; fn returning false skips the children.
func Inspect(e Expr, fn func(Expr) bool) {
	if e == nil || !fn(e) {
		return
	}
	for _, c := range Children(e) {
		Inspect(c, fn)
	}
}
