package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sqlex/internal/lexer"
	"sqlex/internal/source"
)

func TestKeywordCase(t *testing.T) {
	src := "select Top (5) x -- Select here\n  from t where a Is not null /* AND */ and B like 'Select%'"
	cases := []struct {
		kc   KeywordCase
		want string
	}{
		{CaseUpper, "SELECT TOP (5) x -- Select here\n  FROM t WHERE a IS NOT NULL /* AND */ AND B LIKE 'Select%'"},
		{CaseLower, "select top (5) x -- Select here\n  from t where a is not null /* AND */ and B like 'Select%'"},
		{CasePreserve, src},
	}
	for _, tc := range cases {
		t.Run(tc.kc.String(), func(t *testing.T) {
			got, err := FormatString(src, Options{KeywordCase: tc.kc})
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestKeywordInsideQualifiedName(t *testing.T) {
	got, err := FormatString("cast(x as date) + dbo.Date + geography::Point(1, 2, 3)", Options{KeywordCase: CaseUpper})
	require.NoError(t, err)
	assert.Equal(t, "cast(x AS DATE) + dbo.Date + GEOGRAPHY::Point(1, 2, 3)", got)
}

func TestPreserveIsByteIdentical(t *testing.T) {
	srcs := []string{
		"",
		"   ",
		"a\r\n+ b",
		"SELECT 1 /* oops",
		"x = N'it''s' -- tail",
	}
	for _, src := range srcs {
		got, err := FormatString(src, Options{})
		require.NoError(t, err)
		assert.Equal(t, src, got)
	}
}

func TestNormalizeCommas(t *testing.T) {
	cases := []struct{ in, want string }{
		{"f(a ,b,  c)", "f(a, b, c)"},
		{"f(a,\n  b)", "f(a,\n  b)"},
		{"f(a, -- first\n b)", "f(a, -- first\n b)"},
		{"f(a, )", "f(a,)"},
		{"a , b", "a, b"},
		{"a /* x */ ,b", "a /* x */, b"},
	}
	for _, tc := range cases {
		got, err := FormatString(tc.in, Options{NormalizeCommas: true})
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestFormatTokensDoesNotMutateInput(t *testing.T) {
	toks := lexer.Tokenize("f(a ,b)", true)
	before := lexer.Tokenize("f(a ,b)", true)
	_ = FormatTokens(toks, Options{NormalizeCommas: true})
	assert.Equal(t, before, toks)
}

func TestFormatSourceLexicalError(t *testing.T) {
	sf := source.NewVirtualFile("bad.sql", []byte("select 'abc"))
	out, err := FormatSource(sf, Options{KeywordCase: CaseUpper})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.sql:1:8")
	assert.Equal(t, "select 'abc", string(out))
}

func TestCheckRoundTrip(t *testing.T) {
	sf := source.NewVirtualFile("q.sql", []byte("select a ,b from t where x in (1 ,2)"))
	ok, msg := CheckRoundTrip(sf, Options{KeywordCase: CaseLower, NormalizeCommas: true})
	assert.True(t, ok, msg)
}

func TestParseKeywordCase(t *testing.T) {
	for in, want := range map[string]KeywordCase{"UPPER": CaseUpper, "lower": CaseLower, "": CasePreserve, " preserve ": CasePreserve} {
		got, err := ParseKeywordCase(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseKeywordCase("title")
	assert.Error(t, err)
}
