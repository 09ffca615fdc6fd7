package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"sqlex/internal/diag"
	"sqlex/internal/source"
)

func TestJSONDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("q.sql", []byte("a +\n  (b"))
	bag := bagWith(
		diag.NewError(diag.SynExpectRParen, source.Span{File: id, Start: 8, End: 8}, "expected ')'").
			WithFix("insert ')'", diag.FixEdit{Span: source.Span{File: id, Start: 8, End: 8}, NewText: ")"}),
		diag.New(diag.SevWarning, diag.IOCacheError, source.Span{File: id}, "cache is read-only"),
		diag.NewError(diag.IOLoadFileError, source.Span{}, "gone"),
	)

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true, IncludeFixes: true}); err != nil {
		t.Fatal(err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, buf.String())
	}
	if out.Count != 3 || out.Errors != 2 {
		t.Fatalf("count=%d errors=%d", out.Count, out.Errors)
	}
	first := out.Diagnostics[0]
	if first.Code != "SYN2003" || first.Severity != "ERROR" {
		t.Errorf("first = %+v", first)
	}
	if first.Location == nil || first.Location.StartLine != 2 || first.Location.StartCol != 5 {
		t.Errorf("location = %+v", first.Location)
	}
	if len(first.Fixes) != 1 || first.Fixes[0].Edits[0].NewText != ")" {
		t.Errorf("fixes = %+v", first.Fixes)
	}
	if out.Diagnostics[2].Location != nil {
		t.Errorf("load error must not carry a location")
	}
}

func TestJSONMax(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("q.sql", []byte("x"))
	bag := bagWith(
		diag.NewError(diag.SynUnexpectedToken, source.Span{File: id}, "one"),
		diag.NewError(diag.SynUnexpectedToken, source.Span{File: id}, "two"),
	)
	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 1})
	if out.Count != 1 || out.Diagnostics[0].Message != "one" {
		t.Fatalf("out = %+v", out)
	}
	if out.Diagnostics[0].Location.StartLine != 0 {
		t.Errorf("positions should be omitted without IncludePositions")
	}
}
