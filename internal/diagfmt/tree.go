package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"sqlex/internal/ast"
	"sqlex/internal/source"
)

// labeler builds the one-line label of a node.
type labeler struct{}

func (labeler) VisitLiteral(n *ast.Literal) string {
	return fmt.Sprintf("Literal %s %s", n.Token.Kind, n.Token.Text)
}

func (labeler) VisitIdentifier(n *ast.Identifier) string {
	return "Identifier " + n.Name()
}

func (labeler) VisitUnary(n *ast.Unary) string   { return "Unary " + n.Op.Text }
func (labeler) VisitBinary(n *ast.Binary) string { return "Binary " + n.Op.Text }
func (labeler) VisitAssign(n *ast.Assign) string { return "Assign " + n.Op.Text }

func (labeler) VisitIsNull(n *ast.IsNull) string {
	if n.HasNot() {
		return "IsNull NOT"
	}
	return "IsNull"
}

func (labeler) VisitLike(n *ast.Like) string       { return withNot("Like", n.HasNot()) }
func (labeler) VisitBetween(n *ast.Between) string { return withNot("Between", n.HasNot()) }
func (labeler) VisitIn(n *ast.In) string           { return withNot("In", n.HasNot()) }

func (labeler) VisitList(n *ast.List) string {
	return fmt.Sprintf("List (%d)", len(n.Items))
}

func (labeler) VisitBlock(n *ast.Block) string {
	if n.Open != nil {
		return fmt.Sprintf("Block () (%d)", len(n.Items))
	}
	return fmt.Sprintf("Block (%d)", len(n.Items))
}

func (labeler) VisitCall(*ast.Call) string { return "Call" }

func (labeler) VisitError(n *ast.Error) string { return "Error: " + n.Message }

func withNot(name string, not bool) string {
	if not {
		return name + " NOT"
	}
	return name
}

func nodeLabel(e ast.Expr, fs *source.FileSet) string {
	label := ast.Accept[string](e, labeler{})
	if n := len(e.Enclosing()); n > 0 {
		label += fmt.Sprintf(" parens=%d", n)
	}
	if fs != nil {
		sp := e.Span()
		if int(sp.File) < fs.Len() {
			start, end := fs.Resolve(sp)
			label += fmt.Sprintf(" [%d:%d-%d:%d]", start.Line, start.Col, end.Line, end.Col)
		}
	}
	return label
}

// FormatExprTree prints e as an indented tree:
//
//	Binary +
//	├─ Literal Integer 1
//	└─ Binary *
//	   ├─ Literal Integer 2
//	   └─ Literal Integer 3
//
// With a non-nil fs every label carries its line:col range.
func FormatExprTree(w io.Writer, e ast.Expr, fs *source.FileSet) error {
	if e == nil {
		_, err := fmt.Fprintln(w, "<empty>")
		return err
	}
	var b strings.Builder
	b.WriteString(nodeLabel(e, fs))
	b.WriteByte('\n')
	writeChildren(&b, e, "", fs)
	_, err := io.WriteString(w, b.String())
	return err
}

func writeChildren(b *strings.Builder, e ast.Expr, prefix string, fs *source.FileSet) {
	children := ast.Children(e)
	for i, c := range children {
		last := i == len(children)-1
		branch, next := "├─ ", "│  "
		if last {
			branch, next = "└─ ", "   "
		}
		b.WriteString(prefix)
		b.WriteString(branch)
		if c == nil {
			b.WriteString("<nil>\n")
			continue
		}
		b.WriteString(nodeLabel(c, fs))
		b.WriteByte('\n')
		writeChildren(b, c, prefix+next, fs)
	}
}
