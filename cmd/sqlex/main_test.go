package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sqlex/internal/parser"
)

// runCLI executes the root command with fresh flag values.
func runCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	resetFlags(rootCmd)
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(append([]string{"--color", "off"}, args...))
	err = rootCmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func TestTokenizeExpr(t *testing.T) {
	out, _, err := runCLI(t, "tokenize", "-e", "SELECT [a b]")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], `"SELECT"`)
	assert.Contains(t, lines[1], `name="a b"`)
}

func TestTokenizeJSONVerify(t *testing.T) {
	out, _, err := runCLI(t, "tokenize", "--format", "json", "--verify", "-e", "x -- c\n+ 1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "["))
	assert.Contains(t, out, `"line_comment"`)
}

func TestTokenizeLexicalError(t *testing.T) {
	_, stderr, err := runCLI(t, "tokenize", "-e", "'open")
	require.ErrorIs(t, err, errDiagnostics)
	assert.Contains(t, stderr, "LEX")
}

func TestParseExprForms(t *testing.T) {
	out, _, err := runCLI(t, "parse", "--format", "sexpr", "-e", "1 + 2 * 3")
	require.NoError(t, err)
	assert.Equal(t, "+(1, *(2, 3))\n", out)

	out, _, err = runCLI(t, "parse", "--context", "assignment", "--format", "sexpr", "-e", "@x = 1")
	require.NoError(t, err)
	assert.Equal(t, "assign=(@x, 1)\n", out)

	out, _, err = runCLI(t, "parse", "-e", "a IS NULL")
	require.NoError(t, err)
	assert.Equal(t, "IsNull\n└─ Identifier a\n", out)
}

func TestParseSyntaxError(t *testing.T) {
	_, stderr, err := runCLI(t, "parse", "-e", "(1 +")
	require.ErrorIs(t, err, errDiagnostics)
	assert.Contains(t, stderr, "SYN2002")
	assert.Contains(t, stderr, "<expr>:1:5")
}

func TestParseFix(t *testing.T) {
	out, errOut, err := runCLI(t, "parse", "--fix", "-e", "f(a, (b")
	require.NoError(t, err)
	assert.Equal(t, "f(a, (b))\n", out)
	assert.Equal(t, 2, strings.Count(errOut, "applied: insert ')' (SYN2003)"))

	_, _, err = runCLI(t, "parse", "--fix", "-e", "1 +")
	assert.ErrorIs(t, err, errDiagnostics)
}

func TestParseSelect(t *testing.T) {
	out, _, err := runCLI(t, "parse", "--select", "--format", "sexpr", "-e", "SELECT DISTINCT TOP 5 a AS x, b = 1 FROM t")
	require.NoError(t, err)
	assert.Equal(t, "SELECT DISTINCT\nTOP 5\ncolumn 1 AS x: a\ncolumn 2: assign=(b, 1)\n", out)
}

func TestParseBadContext(t *testing.T) {
	_, _, err := runCLI(t, "parse", "--context", "set", "-e", "1")
	require.Error(t, err)
	assert.Equal(t, 2, exitCode(err))
}

func TestFmtExpr(t *testing.T) {
	out, _, err := runCLI(t, "fmt", "--keyword-case", "upper", "--normalize-commas", "-e", "select a ,b from t")
	require.NoError(t, err)
	assert.Equal(t, "SELECT a, b FROM t", out)
}

func TestFmtWriteAndCheck(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "q.sql")
	require.NoError(t, os.WriteFile(path, []byte("select 1 -- keep me\n"), 0o644))

	out, _, err := runCLI(t, "fmt", "--keyword-case", "upper", "--check", dir)
	require.ErrorIs(t, err, errDiagnostics)
	assert.Equal(t, path+"\n", out)

	_, _, err = runCLI(t, "fmt", "--keyword-case", "upper", "-w", dir)
	require.NoError(t, err)
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1 -- keep me\n", string(got))

	_, _, err = runCLI(t, "fmt", "--keyword-case", "upper", "--check", dir)
	require.NoError(t, err)
}

func TestCheckDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ok.sql"), []byte("SELECT 1\r\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.sql"), []byte("SELECT 'x"), 0o644))

	_, stderr, err := runCLI(t, "check", "--ui", "off", dir)
	require.ErrorIs(t, err, errDiagnostics)
	assert.Contains(t, stderr, "bad.sql:1:8")
	assert.Contains(t, stderr, "checked 2 files")

	out, _, err := runCLI(t, "check", "--ui", "off", "--diag-format", "json", dir)
	require.ErrorIs(t, err, errDiagnostics)
	assert.Contains(t, out, `"count": 1`)

	out, _, err = runCLI(t, "check", "--ui", "off", "--diag-format", "golden", dir)
	require.ErrorIs(t, err, errDiagnostics)
	assert.Contains(t, out, "LEX1002")
	assert.Contains(t, out, "bad.sql:1:8")
}

func TestCheckClean(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.sql"), []byte("x = 1"), 0o644))
	_, stderr, err := runCLI(t, "check", "--ui", "off", dir)
	require.NoError(t, err)
	assert.Contains(t, stderr, "checked 1 files, 4 tokens: 0 errors, 0 warnings")
}

func TestCacheDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SQLEX_CACHE_DIR", dir)
	out, _, err := runCLI(t, "cache", "dir")
	require.NoError(t, err)
	assert.Equal(t, dir+"\n", out)
}

func TestTimingsAndProfiles(t *testing.T) {
	mem := filepath.Join(t.TempDir(), "mem.out")
	_, errOut, err := runCLI(t, "--timings", "--memprofile", mem, "tokenize", "-e", "a + 1")
	require.NoError(t, err)
	assert.Contains(t, errOut, "timings:")
	assert.Contains(t, errOut, "4 tokens")
	_, err = os.Stat(mem)
	assert.NoError(t, err)

	_, errOut, err = runCLI(t, "tokenize", "-e", "a")
	require.NoError(t, err)
	assert.NotContains(t, errOut, "timings:")
}

func TestVersionCommand(t *testing.T) {
	out, _, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "sqlex "), out)
}

func TestIncomplete(t *testing.T) {
	for src, want := range map[string]bool{"(1 +": true, "'abc": true, "a +": true, "1 ) 2": false} {
		res := parseErrFor(t, src)
		assert.Equal(t, want, incomplete(res), src)
	}
}

func parseErrFor(t *testing.T, src string) *parser.Error {
	t.Helper()
	_, err := parser.ParseExpression(src, parser.Options{})
	var pe *parser.Error
	require.ErrorAs(t, err, &pe, src)
	return pe
}
