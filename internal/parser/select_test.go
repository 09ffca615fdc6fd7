package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sqlex/internal/ast"
	"sqlex/internal/diag"
	"sqlex/internal/token"
)

func TestSelectHeader(t *testing.T) {
	src := "SELECT DISTINCT TOP (10) a, b AS x, total = a + b, 'lit' 'alias' FROM t"
	h, err := ParseSelectHeader(src, Options{})
	require.NoError(t, err)

	require.NotNil(t, h.Quantifier)
	assert.Equal(t, token.KwDistinct, h.Quantifier.Kind)
	require.NotNil(t, h.Top)
	assert.Equal(t, "10", ast.Format(h.Top.Count))
	assert.Nil(t, h.Top.Percent)

	require.Len(t, h.Columns, 4)
	assert.Len(t, h.Commas, 3)
	assert.Equal(t, "a", ast.Format(h.Columns[0].Expr))
	assert.Equal(t, "", h.Columns[0].AliasName())
	assert.Equal(t, "x", h.Columns[1].AliasName())
	assert.NotNil(t, h.Columns[1].As)
	assert.Equal(t, "assign=(total, +(a, b))", ast.Format(h.Columns[2].Expr))
	assert.Equal(t, "alias", h.Columns[3].AliasName())
	assert.Nil(t, h.Columns[3].As)

	assert.Equal(t, token.KwFrom, h.End.Kind)
	assert.True(t, strings.HasPrefix(src, h.Render()))
	assert.Equal(t, "SELECT DISTINCT TOP (10) a, b AS x, total = a + b, 'lit' 'alias' ", h.Render())
}

func TestSelectHeaderTopForms(t *testing.T) {
	h, err := ParseSelectHeader("SELECT TOP 5 PERCENT WITH TIES *", Options{})
	require.NoError(t, err)
	require.NotNil(t, h.Top)
	assert.NotNil(t, h.Top.Percent)
	assert.NotNil(t, h.Top.Ties)
	require.Len(t, h.Columns, 1)
	id, ok := h.Columns[0].Expr.(*ast.Identifier)
	require.True(t, ok)
	assert.True(t, id.IsWildcard())
	assert.Equal(t, token.EOF, h.End.Kind)

	h, err = ParseSelectHeader("select top @n t.* where", Options{})
	require.NoError(t, err)
	assert.Equal(t, "@n", ast.Format(h.Top.Count))
	assert.Equal(t, token.KwWhere, h.End.Kind)
}

func TestSelectHeaderAssignmentRegardlessOfOptions(t *testing.T) {
	h, err := ParseSelectHeader("SELECT @a = 1, b", Options{Context: ContextComparison})
	require.NoError(t, err)
	_, ok := h.Columns[0].Expr.(*ast.Assign)
	assert.True(t, ok, "got %T", h.Columns[0].Expr)
}

func TestSelectHeaderErrors(t *testing.T) {
	tests := []struct {
		input string
		code  diag.Code
	}{
		{"SELECT FROM t", diag.SynUnexpectedToken},
		{"SELECT a AS", diag.SynUnexpectedToken},
		{"SELECT TOP 5 WITH x a", diag.SynUnexpectedToken},
		{"SELECT a,", diag.SynExpectExpression},
		{"a", diag.SynUnexpectedToken},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseSelectHeader(tt.input, Options{})
			var perr *Error
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.code, perr.Code, perr.Msg)
		})
	}
}
