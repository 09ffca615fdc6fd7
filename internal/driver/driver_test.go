package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sqlex/internal/ast"
	"sqlex/internal/diag"
	"sqlex/internal/parser"
	"sqlex/internal/token"
	"sqlex/internal/trace"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRoundTrip(t *testing.T) {
	for _, src := range []string{
		"",
		"SELECT 1 /* oops",
		"select [a]]b], N'x''y' -- tail\r\n",
		"\t$-0.5 + @v\n\n",
	} {
		assert.NoError(t, RoundTrip(src), "%q", src)
	}
	err := RoundTrip("SELECT 'open")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLexical))
}

func TestCheckRenderedReportsOffset(t *testing.T) {
	toks := []token.Token{{Kind: token.Identifier, Text: "ab"}, {Kind: token.EOF}}
	err := checkRendered("ax", toks)
	var rt *RoundTripError
	require.ErrorAs(t, err, &rt)
	assert.Equal(t, 1, rt.Offset)
	assert.Equal(t, "x", rt.Want)
	assert.Equal(t, "b", rt.Got)
}

func TestTokenizeSource(t *testing.T) {
	res := TokenizeSource(context.Background(), "q.sql", []byte("SELECT a, 'x"), Options{})
	require.NotEmpty(t, res.Tokens)
	last := res.Tokens[len(res.Tokens)-1]
	assert.Equal(t, token.ErrUnterminatedString, last.Kind)
	require.Equal(t, 1, res.Bag.Len())
	assert.Equal(t, diag.LexUnterminatedString, res.Bag.Items()[0].Code)
}

func TestTokenizeFileMissing(t *testing.T) {
	_, err := TokenizeFile(context.Background(), filepath.Join(t.TempDir(), "nope.sql"), Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParseExprSource(t *testing.T) {
	res := ParseExprSource(context.Background(), "<expr>", "@x = 1 + 2", Options{Context: parser.ContextAssignment})
	require.Nil(t, res.Err)
	assert.Equal(t, "assign=(@x, +(1, 2))", ast.Format(res.Expr))
	assert.Equal(t, "@x = 1 + 2", res.Render())

	res = ParseExprSource(context.Background(), "<expr>", "(1 +", Options{})
	require.NotNil(t, res.Err)
	assert.Equal(t, diag.SynExpectExpression, res.Err.Code)
	assert.True(t, res.Bag.HasErrors())
	_, isErr := res.Expr.(*ast.Error)
	assert.True(t, isErr)
}

func TestParseSelectSource(t *testing.T) {
	res := ParseSelectSource(context.Background(), "q.sql", "SELECT TOP 3 a AS x FROM t", Options{})
	require.Nil(t, res.Err)
	require.Len(t, res.Header.Columns, 1)
	assert.Equal(t, "x", res.Header.Columns[0].AliasName())
}

func TestCheckDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.sql", "SELECT 1;\r\n")
	writeFile(t, dir, "sub/b.SQL", "SELECT x /* nested /* c */ */ FROM t")
	writeFile(t, dir, "c.sql", "SELECT 'oops")
	writeFile(t, dir, "notes.txt", "ignored")

	var mu sync.Mutex
	var events []ProgressEvent
	opts := Options{Jobs: 2, Observer: func(ev ProgressEvent) {
		mu.Lock()
		events = append(events, ev)
		mu.Unlock()
	}}

	fs, results, err := CheckDir(context.Background(), dir, opts)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, 3, fs.Len())

	byName := map[string]FileResult{}
	for _, r := range results {
		byName[filepath.Base(r.Path)] = r
	}
	assert.True(t, byName["a.sql"].RoundTrip)
	assert.True(t, byName["b.SQL"].RoundTrip)
	assert.False(t, byName["c.sql"].RoundTrip)
	assert.True(t, byName["c.sql"].Bag.HasErrors())

	sum := Summarize(results, true)
	assert.Equal(t, 3, sum.Files)
	assert.Equal(t, 1, sum.Errors)
	assert.Equal(t, 1, sum.RoundTripFailures)

	done := 0
	for _, ev := range events {
		if ev.Status == ProgressDone {
			done++
			assert.Equal(t, 3, ev.Total)
		}
	}
	assert.Equal(t, 3, done)

	merged := MergeBags(results)
	assert.Equal(t, 1, merged.Len())
}

func TestTokenizeDirCancelled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.sql", "SELECT 1")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := TokenizeDir(ctx, dir, Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestListSQLFilesSingleFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "one.sql", "SELECT 1")
	files, err := ListSQLFiles(path)
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestTokenCache(t *testing.T) {
	cache, err := OpenTokenCache(filepath.Join(t.TempDir(), "cache"))
	require.NoError(t, err)
	dir := t.TempDir()
	src := "SELECT [a b], N'ü' -- c\n  FROM t /* end */"
	path := writeFile(t, dir, "q.sql", src)

	first, err := TokenizeFile(context.Background(), path, Options{Cache: cache})
	require.NoError(t, err)
	assert.False(t, first.Cached)

	second, err := TokenizeFile(context.Background(), path, Options{Cache: cache})
	require.NoError(t, err)
	assert.True(t, second.Cached)
	require.Len(t, second.Tokens, len(first.Tokens))
	for i := range first.Tokens {
		assert.Equal(t, first.Tokens[i].Kind, second.Tokens[i].Kind)
		assert.Equal(t, first.Tokens[i].Span, second.Tokens[i].Span)
		assert.Equal(t, first.Tokens[i].Name, second.Tokens[i].Name)
	}
	assert.Equal(t, src, token.Render(second.Tokens))

	require.NoError(t, cache.DropAll())
	third, err := TokenizeFile(context.Background(), path, Options{Cache: cache})
	require.NoError(t, err)
	assert.False(t, third.Cached)
}

func TestTokenCacheReplaysLexErrors(t *testing.T) {
	cache, err := OpenTokenCache(t.TempDir())
	require.NoError(t, err)
	src := []byte("SELECT 12abc")
	TokenizeSource(context.Background(), "a.sql", src, Options{Cache: cache})
	res := TokenizeSource(context.Background(), "a.sql", src, Options{Cache: cache})
	require.True(t, res.Cached)
	require.Equal(t, 1, res.Bag.Len())
	assert.Equal(t, diag.LexNumberIdentFollows, res.Bag.Items()[0].Code)
}

func TestNilCacheIsNoop(t *testing.T) {
	var c *TokenCache
	assert.NoError(t, c.DropAll())
	assert.Equal(t, "", c.Dir())
	ok, err := c.Get([32]byte{}, &TokenPayload{})
	assert.False(t, ok)
	assert.NoError(t, err)
}

func TestCheckDirTracesFilesPerWorker(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.sql", "b.sql", "c.sql"} {
		writeFile(t, dir, name, "SELECT 1")
	}
	ring := trace.NewRingTracer(64, trace.LevelDetail)
	ctx := trace.WithTracer(context.Background(), ring)

	_, results, err := CheckDir(ctx, dir, Options{Jobs: 2})
	require.NoError(t, err)
	require.Len(t, results, 3)

	files := map[string]bool{}
	var passEnd *trace.Event
	for _, ev := range ring.Snapshot() {
		switch {
		case ev.Scope == trace.ScopeFile && ev.Kind == trace.KindSpanEnd:
			assert.Equal(t, "lex", ev.Name)
			assert.Contains(t, []int{1, 2}, ev.Worker, "worker slot for %s", ev.File)
			assert.NotEmpty(t, ev.Extra["tokens"])
			files[filepath.Base(ev.File)] = true
		case ev.Scope == trace.ScopePass && ev.Kind == trace.KindSpanEnd:
			passEnd = &ev
		}
	}
	assert.Equal(t, map[string]bool{"a.sql": true, "b.sql": true, "c.sql": true}, files)
	require.NotNil(t, passEnd)
	assert.Equal(t, "check", passEnd.Name)
	assert.Equal(t, map[string]string{"files": "3", "jobs": "2"}, passEnd.Extra)
}
