package diag

import (
	"sync"

	"sqlex/internal/source"
)

// DedupReporter forwards a diagnostic only the first time its code,
// severity, primary span and message are seen. Safe for concurrent use.
type DedupReporter struct {
	next       Reporter
	mu         sync.Mutex
	seen       map[dedupKey]struct{}
	suppressed int
}

type dedupKey struct {
	code    Code
	sev     Severity
	primary source.Span
	msg     string
}

func NewDedupReporter(next Reporter) *DedupReporter {
	return &DedupReporter{next: next, seen: make(map[dedupKey]struct{})}
}

func (r *DedupReporter) Report(d Diagnostic) {
	if r == nil {
		return
	}
	k := dedupKey{d.Code, d.Severity, d.Primary, d.Message}
	r.mu.Lock()
	_, dup := r.seen[k]
	if dup {
		r.suppressed++
	} else {
		r.seen[k] = struct{}{}
	}
	r.mu.Unlock()
	if !dup {
		Send(r.next, d)
	}
}

// Suppressed returns how many duplicates were dropped.
func (r *DedupReporter) Suppressed() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.suppressed
}
