// Package ast defines the expression tree produced by internal/parser.
//
// The variant set is closed: Literal, Identifier, Unary, Binary, Assign,
// IsNull, Like, Between, In, List, Block, Call and Error. Nodes are
// immutable once built; transformations (Rewrite) produce new nodes and
// reuse untouched subtrees.
//
// Every node enumerates the tokens it covers, depth-first in source order and
// including enclosing parentheses, so Render(e) reproduces the parsed text
// byte-for-byte together with its trivia.
package ast
