package diag

import (
	"cmp"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"sqlex/internal/source"
)

// goldenLine is one rendered row: primary, note or fix.
type goldenLine struct {
	label string
	code  string
	path  string
	line  uint32
	col   uint32
	text  string
}

func (l goldenLine) String() string {
	return fmt.Sprintf("%s %s %s:%d:%d %s", l.label, l.code, l.path, l.line, l.col, l.text)
}

func compareGolden(a, b goldenLine) int {
	return cmp.Or(
		cmp.Compare(a.path, b.path),
		cmp.Compare(a.line, b.line),
		cmp.Compare(a.col, b.col),
		cmp.Compare(a.label, b.label),
		cmp.Compare(a.code, b.code),
		cmp.Compare(a.text, b.text),
	)
}

// FormatGoldenDiagnostics renders diagnostics one per line, sorted by
// path/line/column, with paths relative to the file set base dir:
//
//	error SYN2003 q.sql:1:8 expected ')' to close '(' at 1:6, found end of input
//
// With includeExtras, notes and fix titles follow as "note" and "fix" rows.
// Used by `check --diag-format golden` and by tests.
func FormatGoldenDiagnostics(diags []Diagnostic, fs *source.FileSet, includeExtras bool) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}
	rows := make([]goldenLine, 0, len(diags))
	for i := range diags {
		rows = appendGolden(rows, &diags[i], fs, includeExtras)
	}
	slices.SortStableFunc(rows, compareGolden)

	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n")
}

func appendGolden(out []goldenLine, d *Diagnostic, fs *source.FileSet, includeExtras bool) []goldenLine {
	code := d.Code.ID()
	if row, ok := goldenAt(fs, d.Primary); ok {
		row.label, row.code, row.text = d.Severity.Label(), code, flatten(d.Message)
		out = append(out, row)
	}
	if !includeExtras {
		return out
	}
	for _, note := range d.Notes {
		if row, ok := goldenAt(fs, note.Span); ok {
			row.label, row.code, row.text = "note", code, flatten(note.Msg)
			out = append(out, row)
		}
	}
	for _, fix := range d.Fixes {
		if len(fix.Edits) == 0 {
			continue
		}
		if row, ok := goldenAt(fs, fix.Edits[0].Span); ok {
			row.label, row.code, row.text = "fix", code, flatten(fix.Title)
			out = append(out, row)
		}
	}
	return out
}

// goldenAt резолвит позицию; чужой FileID не роняет вывод.
func goldenAt(fs *source.FileSet, span source.Span) (goldenLine, bool) {
	file, ok := fs.Lookup(span.File)
	if !ok || int(span.Start) > len(file.Content) {
		return goldenLine{}, false
	}
	start, _ := fs.Resolve(span)
	path := filepath.ToSlash(file.RelPath(fs.BaseDir()))
	for strings.HasPrefix(path, "./") {
		path = strings.TrimPrefix(path, "./")
	}
	return goldenLine{path: path, line: start.Line, col: start.Col}, true
}

// flatten keeps one diagnostic per line.
func flatten(msg string) string {
	return strings.Join(strings.Fields(msg), " ")
}
