package lexer_test

import (
	"fmt"
	"testing"

	"sqlex/internal/diag"
	"sqlex/internal/lexer"
	"sqlex/internal/source"
	"sqlex/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(d diag.Diagnostic) {
	r.diagnostics = append(r.diagnostics, d)
}

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.sql", []byte(input)))
	reporter := &testReporter{}
	lx := lexer.New(lexer.Options{Reporter: reporter})
	lx.Reset(file)
	return lx, reporter
}

func lexAll(t *testing.T, input string) []token.Token {
	t.Helper()
	lx, _ := makeTestLexer(input)
	return lexer.Collect(lx, true)
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func expectKinds(t *testing.T, input string, want ...token.Kind) []token.Token {
	t.Helper()
	toks := lexAll(t, input)
	got := kinds(toks)
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Fatalf("%q:\n got  %v\n want %v", input, got, want)
	}
	return toks
}

func TestOperatorsLongestMatch(t *testing.T) {
	expectKinds(t, "a != b !< c !> d",
		token.Identifier, token.BangEqual, token.Identifier, token.NotLess,
		token.Identifier, token.NotGreater, token.Identifier, token.EOF)
	expectKinds(t, "<= <> < >= > = ::",
		token.LessEqual, token.NotEqual, token.Less, token.GreaterEqual,
		token.Greater, token.Assign, token.DoubleColon, token.EOF)
	expectKinds(t, "+= -= *= /= %= &= ^= |= ~",
		token.PlusAssign, token.MinusAssign, token.StarAssign, token.SlashAssign,
		token.PercentAssign, token.AmpAssign, token.CaretAssign, token.PipeAssign,
		token.Tilde, token.EOF)
	expectKinds(t, "(a.b, c);x:y",
		token.LParen, token.Identifier, token.Dot, token.Identifier, token.Comma,
		token.Identifier, token.RParen, token.Semicolon, token.Identifier, token.Colon,
		token.Identifier, token.EOF)
}

func TestLoneBangIsInvalid(t *testing.T) {
	lx, rep := makeTestLexer("a ! b")
	toks := lexer.Collect(lx, true)
	if got := kinds(toks); fmt.Sprint(got) != fmt.Sprint([]token.Kind{token.Identifier, token.ErrInvalidChar}) {
		t.Fatalf("got %v", got)
	}
	if len(rep.diagnostics) != 1 || rep.diagnostics[0].Code != diag.LexInvalidChar {
		t.Fatalf("want one LEX1001, got %+v", rep.diagnostics)
	}
	if lx.Advance() || lx.Current().Kind != token.ErrInvalidChar {
		t.Fatalf("lexer must stay on the error sentinel")
	}
}

func TestStringEscape(t *testing.T) {
	toks := expectKinds(t, "'it''s'", token.String, token.EOF)
	if toks[0].Value != "it's" {
		t.Fatalf("value = %q", toks[0].Value)
	}
	toks = expectKinds(t, "N'ñ'", token.NString, token.EOF)
	if toks[0].Value != "ñ" || toks[0].Text != "N'ñ'" {
		t.Fatalf("nstring: %+v", toks[0])
	}
	toks = expectKinds(t, "N", token.Identifier, token.EOF)
	if toks[0].Name != "N" {
		t.Fatalf("bare N is an identifier")
	}
}

func TestUnterminatedString(t *testing.T) {
	lx, rep := makeTestLexer("SELECT 'abc")
	toks := lexer.Collect(lx, true)
	if got := kinds(toks); fmt.Sprint(got) != fmt.Sprint([]token.Kind{token.KwSelect, token.ErrUnterminatedString}) {
		t.Fatalf("got %v", got)
	}
	if rep.diagnostics[0].Code != diag.LexUnterminatedString {
		t.Fatalf("code %v", rep.diagnostics[0].Code)
	}
}

func TestDelimitedIdentifiers(t *testing.T) {
	toks := expectKinds(t, "[My Table]]Name]", token.IdentifierQuotedBracket, token.EOF)
	if toks[0].Name != "My Table]Name" {
		t.Fatalf("name = %q", toks[0].Name)
	}
	toks = expectKinds(t, `"a""b"`, token.IdentifierQuoted, token.EOF)
	if toks[0].Name != `a"b` {
		t.Fatalf("name = %q", toks[0].Name)
	}
	expectKinds(t, "[oops", token.ErrUnterminatedIdentifier)
	expectKinds(t, `"oops`, token.ErrUnterminatedIdentifier)
}

func TestIdentifiersAndKeywords(t *testing.T) {
	toks := expectKinds(t, "select @x, @@rowcount, #tmp, _a1, $action, Straße",
		token.KwSelect, token.Variable, token.Comma, token.Variable, token.Comma,
		token.Identifier, token.Comma, token.Identifier, token.Comma, token.Identifier,
		token.Comma, token.Identifier, token.EOF)
	if toks[1].Name != "@x" || toks[3].Name != "@@rowcount" || toks[9].Name != "$action" {
		t.Fatalf("names: %q %q %q", toks[1].Name, toks[3].Name, toks[9].Name)
	}
	// переменная не ищется в таблице ключевых слов
	expectKinds(t, "@select", token.Variable, token.EOF)
	expectKinds(t, "varchar INT", token.KwVarChar, token.KwInt, token.EOF)
}

func TestNumbers(t *testing.T) {
	cases := []struct {
		in    string
		kind  token.Kind
		value string
	}{
		{"42", token.Integer, "42"},
		{"007", token.Integer, "7"},
		{"2147483647", token.Integer, "2147483647"},
		{"2147483648", token.Decimal, "2147483648"},
		{"1.5", token.Decimal, "1.5"},
		{"1.", token.Decimal, "1.0"},
		{".5", token.Decimal, "0.5"},
		{"1e-5", token.Float, "1e-5"},
		{"1.5E+3", token.Float, "1.5E+3"},
		{".5e2", token.Float, ".5e2"},
		{"0x1F", token.Binary, "0x1F"},
		{"0x", token.Binary, "0x"},
	}
	for _, c := range cases {
		toks := expectKinds(t, c.in, c.kind, token.EOF)
		if toks[0].Value != c.value {
			t.Errorf("%q: value %q, want %q", c.in, toks[0].Value, c.value)
		}
	}
	toks := lexAll(t, "12")
	if toks[0].Int != 12 {
		t.Fatalf("Int = %d", toks[0].Int)
	}
	toks = lexAll(t, "1.5E+3")
	if toks[0].Float != 1500 {
		t.Fatalf("Float = %v", toks[0].Float)
	}
}

func TestNumberErrors(t *testing.T) {
	cases := []struct {
		in   string
		kind token.Kind
	}{
		{"1abc", token.ErrNumberIdentFollows},
		{"1.5x", token.ErrNumberIdentFollows},
		{"0x1G", token.ErrNumberIdentFollows},
		{"1e", token.ErrBadNumber},
		{"1e+", token.ErrBadNumber},
		{"123456789012345678901234567890123456789", token.ErrBadNumber},
	}
	for _, c := range cases {
		lx, rep := makeTestLexer(c.in)
		toks := lexer.Collect(lx, true)
		if len(toks) != 1 || toks[0].Kind != c.kind {
			t.Errorf("%q: got %v, want [%v]", c.in, kinds(toks), c.kind)
			continue
		}
		if toks[0].Text != c.in {
			t.Errorf("%q: error token text %q", c.in, toks[0].Text)
		}
		if len(rep.diagnostics) != 1 {
			t.Errorf("%q: want one diagnostic, got %d", c.in, len(rep.diagnostics))
		}
	}
}

func TestMoney(t *testing.T) {
	cases := []struct {
		in, value string
	}{
		{"$     0000123.40", "123.40"},
		{"$", "0"},
		{"$-0", "0"},
		{"$5.", "5.0"},
		{"$.5", "0.5"},
		{"$-12.5", "-12.5"},
		{"£10", "10"},
		{"€ 3", "3"},
	}
	for _, c := range cases {
		toks := expectKinds(t, c.in, token.Money, token.EOF)
		if toks[0].Value != c.value {
			t.Errorf("%q: value %q, want %q", c.in, toks[0].Value, c.value)
		}
	}
	expectKinds(t, "$1234567890123456", token.ErrBadNumber)
	toks := expectKinds(t, "$  ", token.Money, token.EOF)
	if toks[0].Text != "$" || toks[0].Trailing[0].Raw != "  " {
		t.Fatalf("blanks without digits belong to trivia, text %q", toks[0].Text)
	}
	// '$' без числа дальше: начало идентификатора
	expectKinds(t, "$ ;", token.Identifier, token.Semicolon, token.EOF)
}

func TestUnterminatedBlockCommentIsEOF(t *testing.T) {
	lx, rep := makeTestLexer("SELECT 1 /* oops")
	toks := lexer.Collect(lx, true)
	if got := kinds(toks); fmt.Sprint(got) != fmt.Sprint([]token.Kind{token.KwSelect, token.Integer, token.EOF}) {
		t.Fatalf("got %v", got)
	}
	if len(rep.diagnostics) != 0 {
		t.Fatalf("no diagnostics expected, got %+v", rep.diagnostics)
	}
	tr := toks[1].Trailing
	if len(tr) != 2 || tr[1].Kind != token.TriviaBlockComment || tr[1].Text != " oops" {
		t.Fatalf("trailing trivia: %+v", tr)
	}
}

func TestResetNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Reset(nil) must panic")
		}
	}()
	lexer.New(lexer.Options{}).Reset(nil)
}

func TestResetPrimesFirstToken(t *testing.T) {
	lx := lexer.New(lexer.Options{})
	if !lx.ResetString("a b") || lx.Current().Kind != token.Identifier {
		t.Fatalf("first token must be primed")
	}
	if lx.Next().Name != "a" || lx.Next().Name != "b" {
		t.Fatalf("Next order broken")
	}
	if lx.Next().Kind != token.EOF || lx.Next().Kind != token.EOF {
		t.Fatalf("EOF must stick")
	}
	if lx.ResetString("   ") {
		t.Fatalf("whitespace-only input has no real token")
	}
	if lx.Current().Kind != token.EOF || len(lx.Current().Leading) != 1 {
		t.Fatalf("EOF carries the final trivia: %+v", lx.Current())
	}
}
