// Package testkit holds structural checks shared by parser tests and fuzzers.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"sqlex/internal/ast"
	"sqlex/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parsed tree:
// 1) the root span belongs to sf and lies within its content
// 2) the tree's tokens appear in source order without overlap
// 3) every non-empty child span is inside its parent and after its previous sibling
func CheckSpanInvariants(e ast.Expr, sf *source.File) error {
	if e == nil || sf == nil {
		return fmt.Errorf("nil expression or file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	root := e.Span()
	if !root.Empty() && root.File != sf.ID {
		return fmt.Errorf("root span points to different file id: got=%d want=%d", root.File, sf.ID)
	}
	if root.End > lenContent {
		return fmt.Errorf("root span end beyond content: %d > %d", root.End, lenContent)
	}

	var prevEnd uint32
	for i, tok := range e.Tokens() {
		if tok.Span.End < tok.Span.Start {
			return fmt.Errorf("token %d (%s) has inverted span %v", i, tok.Kind, tok.Span)
		}
		if tok.Span.Start < prevEnd {
			return fmt.Errorf("token %d (%s) at %v overlaps previous end %d", i, tok.Kind, tok.Span, prevEnd)
		}
		prevEnd = tok.Span.End
	}

	var walkErr error
	ast.Inspect(e, func(n ast.Expr) bool {
		if walkErr != nil {
			return false
		}
		walkErr = checkChildren(n)
		return walkErr == nil
	})
	return walkErr
}

func checkChildren(parent ast.Expr) error {
	ps := parent.Span()
	var prev source.Span
	for _, c := range ast.Children(parent) {
		if c == nil {
			return fmt.Errorf("%s has a nil child", parent.Kind())
		}
		sp := c.Span()
		if sp.Empty() {
			continue
		}
		if !sp.Within(ps) {
			return fmt.Errorf("%s span %v is outside %s span %v", c.Kind(), sp, parent.Kind(), ps)
		}
		if !prev.Empty() && !prev.Precedes(sp) {
			return fmt.Errorf("%s span %v overlaps previous sibling %v", c.Kind(), sp, prev)
		}
		prev = sp
	}
	return nil
}
