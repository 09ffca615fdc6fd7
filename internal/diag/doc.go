// Package diag defines the diagnostic model shared by the lexer, the parser
// and the driver.
//
// Diagnostic is plain data: severity, a numeric Code with a stable string
// form (LEX1001, SYN2003, ...), a message, the primary source.Span and
// optional notes and fixes. Producers emit through a Reporter so they never
// depend on storage; BagReporter collects into a capped Bag, DedupReporter
// filters repeats.
//
// Package diag does no formatting beyond the single-line golden form.
// Pretty rendering lives in internal/diagfmt.
package diag
