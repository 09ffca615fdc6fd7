package diag

// Reporter receives diagnostics from the lexer and parser as they are found.
type Reporter interface {
	Report(d Diagnostic)
}

// ReporterFunc adapts a plain function.
type ReporterFunc func(d Diagnostic)

func (f ReporterFunc) Report(d Diagnostic) { f(d) }

// Send is Report with a nil check; phases hold optional reporters.
func Send(r Reporter, d Diagnostic) {
	if r != nil {
		r.Report(d)
	}
}

// BagReporter пишет в *Bag; nil Bag молча отбрасывает.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(d Diagnostic) {
	if r.Bag != nil {
		r.Bag.Add(d)
	}
}

// NopReporter drops everything.
type NopReporter struct{}

func (NopReporter) Report(Diagnostic) {}

// MultiReporter fans a diagnostic out to every non-nil reporter.
type MultiReporter []Reporter

func (m MultiReporter) Report(d Diagnostic) {
	for _, r := range m {
		Send(r, d)
	}
}
