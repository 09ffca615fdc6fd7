package fix

import (
	"errors"
	"testing"

	"sqlex/internal/diag"
	"sqlex/internal/parser"
	"sqlex/internal/source"
)

func insertFix(file source.FileID, at uint32, text string) diag.Fix {
	return diag.Fix{
		Title: "insert " + text,
		Edits: []diag.FixEdit{diag.InsertAt(file, at, text)},
	}
}

func TestApplyOnceTakesFirstInSourceOrder(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("q.sql", []byte("f(a, (b"))
	diags := []diag.Diagnostic{
		{Code: diag.SynExpectRParen, Primary: source.Span{File: id, Start: 7, End: 7}, Fixes: []diag.Fix{insertFix(id, 7, ")")}},
		{Code: diag.SynExpectRParen, Primary: source.Span{File: id, Start: 5, End: 5}, Fixes: []diag.Fix{insertFix(id, 5, "x")}},
	}
	res, err := Apply(fs, diags, ApplyModeOnce)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Applied) != 1 || res.Applied[0].Title != "insert x" {
		t.Fatalf("applied = %+v", res.Applied)
	}
	if got := string(res.Content[id]); got != "f(a, x(b" {
		t.Fatalf("content = %q", got)
	}
}

func TestApplyAllSkipsConflicts(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("q.sql", []byte("abcdef"))
	diags := []diag.Diagnostic{{
		Code:    diag.SynUnexpectedToken,
		Primary: source.Span{File: id},
		Fixes: []diag.Fix{
			{Title: "replace bc", Edits: []diag.FixEdit{{Span: source.Span{File: id, Start: 1, End: 3}, NewText: "X"}}},
			{Title: "replace cd", Edits: []diag.FixEdit{{Span: source.Span{File: id, Start: 2, End: 4}, NewText: "Y"}}},
			{Title: "append", Edits: []diag.FixEdit{{Span: source.Span{File: id, Start: 6, End: 6}, NewText: "!"}}},
			{Title: "empty"},
		},
	}}
	res, err := Apply(fs, diags, ApplyModeAll)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(res.Content[id]); got != "aXdef!" {
		t.Fatalf("content = %q", got)
	}
	if len(res.Applied) != 2 || len(res.Skipped) != 2 {
		t.Fatalf("applied=%+v skipped=%+v", res.Applied, res.Skipped)
	}
	reasons := map[string]string{}
	for _, s := range res.Skipped {
		reasons[s.Title] = s.Reason
	}
	if reasons["replace cd"] != "conflicts with a previously applied edit" || reasons["empty"] != "fix has no edits" {
		t.Fatalf("reasons = %v", reasons)
	}
}

func TestApplyNoFixes(t *testing.T) {
	fs := source.NewFileSet()
	fs.AddVirtual("q.sql", []byte("x"))
	_, err := Apply(fs, []diag.Diagnostic{{Code: diag.SynUnexpectedToken}}, ApplyModeAll)
	if !errors.Is(err, ErrNoFixes) {
		t.Fatalf("err = %v", err)
	}
}

func TestApplyEditsOutOfRange(t *testing.T) {
	_, err := ApplyEdits([]byte("ab"), []diag.FixEdit{{Span: source.Span{Start: 1, End: 5}}})
	if err == nil {
		t.Fatal("expected range error")
	}
}

func TestRepairClosesParens(t *testing.T) {
	got, applied, err := Repair("(a + (b -- note", parser.Options{}, 0)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if got != "(a + (b)) -- note" {
		t.Fatalf("got %q", got)
	}
	if len(applied) != 2 {
		t.Fatalf("applied = %+v", applied)
	}
}

func TestRepairGivesUpWithoutFix(t *testing.T) {
	got, applied, err := Repair("1 +", parser.Options{}, 0)
	if err == nil {
		t.Fatal("expected error")
	}
	if got != "1 +" || len(applied) != 0 {
		t.Fatalf("got %q applied %+v", got, applied)
	}
}
