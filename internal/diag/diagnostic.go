package diag

import (
	"sqlex/internal/source"
)

// Note points at a related location, e.g. the '(' a missing ')' should close.
type Note struct {
	Span source.Span
	Msg  string
}

// FixEdit replaces Span with NewText; an empty span is an insertion.
type FixEdit struct {
	Span    source.Span
	NewText string
}

// IsInsert reports a zero-width edit.
func (e FixEdit) IsInsert() bool { return e.Span.Empty() }

// InsertAt builds a zero-width edit at off.
func InsertAt(file source.FileID, off uint32, text string) FixEdit {
	return FixEdit{Span: source.At(file, off), NewText: text}
}

// Fix is a machine-applicable suggestion; all edits target one file.
type Fix struct {
	Title string
	Edits []FixEdit
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
	Fixes    []Fix
}

func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{Severity: sev, Code: code, Primary: primary, Message: msg}
}

func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}

func (d Diagnostic) WithFix(title string, edits ...FixEdit) Diagnostic {
	d.Fixes = append(d.Fixes, Fix{Title: title, Edits: edits})
	return d
}

// IsLexical reports a LEX code: the token stream itself is broken.
func (d Diagnostic) IsLexical() bool { return d.Code >= LexInfo && d.Code < SynInfo }

// IsSyntax reports a SYN code.
func (d Diagnostic) IsSyntax() bool { return d.Code >= SynInfo && d.Code < 3000 }
