package diagfmt

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"sqlex/internal/lexer"
	"sqlex/internal/source"
	"sqlex/internal/token"
)

func lexFile(t *testing.T, src string) (*source.FileSet, []token.Token) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.sql", []byte(src))
	lx := lexer.New(lexer.Options{})
	lx.Reset(fs.Get(id))
	return fs, lexer.Collect(lx, false)
}

func TestFormatTokensJSON(t *testing.T) {
	fs, toks := lexFile(t, "SELECT [a b] -- c\n, N'x''y'")
	var buf bytes.Buffer
	if err := FormatTokensJSON(&buf, toks, fs); err != nil {
		t.Fatal(err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 4 {
		t.Fatalf("got %d tokens: %+v", len(out), out)
	}
	if out[1].Name != "a b" || out[1].Text != "[a b]" {
		t.Errorf("bracketed = %+v", out[1])
	}
	if len(out[1].Trailing) != 2 || out[1].Trailing[1].Kind != "line_comment" {
		t.Errorf("trailing trivia = %+v", out[1].Trailing)
	}
	if out[3].Value != "x'y" || out[3].Line != 2 || out[3].Col != 3 {
		t.Errorf("nstring = %+v", out[3])
	}
}

func TestFormatTokensPretty(t *testing.T) {
	fs, toks := lexFile(t, "@v /* c */ + 1")
	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, toks, fs); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %q", lines)
	}
	if !strings.HasPrefix(lines[0], "1:1") || !strings.Contains(lines[0], `"@v"`) {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[0], "trail:block_comment") {
		t.Errorf("comment trivia not shown: %q", lines[0])
	}
}

func TestFormatTokensMsgpackMatchesJSONShape(t *testing.T) {
	fs, toks := lexFile(t, "a.b = 'q'")
	var buf bytes.Buffer
	if err := FormatTokensMsgpack(&buf, toks, fs); err != nil {
		t.Fatal(err)
	}
	var got []TokenOutput
	if err := msgpack.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if want := BuildTokensOutput(toks, fs); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v\nwant %+v", got, want)
	}
}
