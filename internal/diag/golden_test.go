package diag

import (
	"testing"

	"sqlex/internal/source"
)

func TestFormatGoldenDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	fs.SetBaseDir("/workspace")

	userFile, err := fs.Add("/workspace/testdata/golden/sample.sql", []byte("a\nb\n"), 0)
	if err != nil {
		t.Fatal(err)
	}

	diags := []Diagnostic{
		{
			Severity: SevWarning,
			Code:     LexBadNumber,
			Message:  "another",
			Primary:  source.Span{File: userFile, Start: 2, End: 3},
		},
		{
			Severity: SevError,
			Code:     SynUnexpectedToken,
			Message:  "first line\nsecond",
			Primary:  source.Span{File: userFile, Start: 0, End: 1},
			Notes: []Note{
				{Span: source.Span{File: userFile, Start: 2, End: 3}, Msg: "note line"},
			},
		},
	}

	expected := "error SYN2001 testdata/golden/sample.sql:1:1 first line second\n" +
		"note SYN2001 testdata/golden/sample.sql:2:1 note line\n" +
		"warning LEX1004 testdata/golden/sample.sql:2:1 another"

	if got := FormatGoldenDiagnostics(diags, fs, true); got != expected {
		t.Fatalf("unexpected golden diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
	if got := FormatGoldenDiagnostics(nil, fs, true); got != "" {
		t.Fatalf("empty input must render empty, got %q", got)
	}
}

func TestGoldenFixRows(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("q.sql", []byte("(a"))
	d := NewError(SynExpectRParen, source.Span{File: id, Start: 2, End: 2}, "expected ')'").
		WithNote(source.Span{File: id, Start: 0, End: 1}, "opened here").
		WithFix("insert ')'", InsertAt(id, 2, ")"))
	d.Fixes = append(d.Fixes, Fix{Title: "no edits"})
	stray := NewError(SynInfo, source.Span{File: 7}, "unknown file")

	want := "note SYN2003 q.sql:1:1 opened here\n" +
		"error SYN2003 q.sql:1:3 expected ')'\n" +
		"fix SYN2003 q.sql:1:3 insert ')'"
	if got := FormatGoldenDiagnostics([]Diagnostic{d, stray}, fs, true); got != want {
		t.Fatalf("want:\n%s\ngot:\n%s", want, got)
	}
	if got := FormatGoldenDiagnostics([]Diagnostic{d}, fs, false); got != "error SYN2003 q.sql:1:3 expected ')'" {
		t.Fatalf("without extras: %q", got)
	}
	if !d.IsSyntax() || d.IsLexical() || !d.Fixes[0].Edits[0].IsInsert() {
		t.Fatalf("classification of %+v", d)
	}
}

func TestSeverity(t *testing.T) {
	for in, want := range map[string]Severity{"info": SevInfo, "WARN": SevWarning, " error ": SevError} {
		got, err := ParseSeverity(in)
		if err != nil || got != want {
			t.Errorf("ParseSeverity(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseSeverity("fatal"); err == nil {
		t.Error("expected error for unknown severity")
	}
	if !SevError.AtLeast(SevWarning) || SevInfo.AtLeast(SevWarning) {
		t.Error("AtLeast ordering")
	}
	if SevWarning.Label() != "warning" || SevWarning.String() != "WARNING" {
		t.Error("labels")
	}
}

func TestCodeID(t *testing.T) {
	cases := map[Code]string{
		LexInvalidChar:     "LEX1001",
		SynExpectRParen:    "SYN2003",
		IORoundTripError:   "IO4002",
		UnknownCode:        "E0000",
		SynExpectPredicate: "SYN2011",
	}
	for c, want := range cases {
		if got := c.ID(); got != want {
			t.Errorf("%d.ID() = %s, want %s", c, got, want)
		}
	}
	if LexUnterminatedString.Title() == UnknownCode.Title() {
		t.Fatalf("lexical codes must carry a title")
	}
}
