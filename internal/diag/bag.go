package diag

import (
	"cmp"
	"slices"

	"sqlex/internal/source"
)

// Bag collects diagnostics of one run up to a limit. Diagnostics over the
// limit are counted, not stored.
type Bag struct {
	items   []Diagnostic
	limit   int
	dropped int
}

// NewBag: limit <= 0 даёт пустой Bag, который растёт только через Merge.
func NewBag(limit int) *Bag {
	limit = max(limit, 0)
	return &Bag{
		items: make([]Diagnostic, 0, min(limit, 64)),
		limit: limit,
	}
}

// Add reports false when the limit is reached.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= b.limit {
		b.dropped++
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Limit() int   { return b.limit }
func (b *Bag) Len() int     { return len(b.items) }
func (b *Bag) Dropped() int { return b.dropped }

// Count returns how many stored diagnostics are at least sev.
func (b *Bag) Count(sev Severity) int {
	n := 0
	for i := range b.items {
		if b.items[i].Severity.AtLeast(sev) {
			n++
		}
	}
	return n
}

func (b *Bag) HasErrors() bool {
	return slices.ContainsFunc(b.items, func(d Diagnostic) bool { return d.Severity == SevError })
}

// Items is the backing slice; callers must not modify it.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Merge appends other's diagnostics and raises the limit to fit them.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	b.limit = max(b.limit, len(b.items)+len(other.items))
	b.items = append(b.items, other.items...)
	b.dropped += other.dropped
}

func compareDiagnostics(a, b Diagnostic) int {
	return cmp.Or(
		cmp.Compare(a.Primary.File, b.Primary.File),
		cmp.Compare(a.Primary.Start, b.Primary.Start),
		cmp.Compare(a.Primary.End, b.Primary.End),
		cmp.Compare(b.Severity, a.Severity), // error раньше warning
		cmp.Compare(a.Code, b.Code),
	)
}

// Sort orders by file, start, end, severity (errors first) and code.
func (b *Bag) Sort() {
	slices.SortStableFunc(b.items, compareDiagnostics)
}

// Dedup keeps the first diagnostic per code and primary span.
func (b *Bag) Dedup() {
	type key struct {
		code Code
		span source.Span
	}
	seen := make(map[key]struct{}, len(b.items))
	b.items = slices.DeleteFunc(b.items, func(d Diagnostic) bool {
		k := key{d.Code, d.Primary}
		if _, dup := seen[k]; dup {
			return true
		}
		seen[k] = struct{}{}
		return false
	})
}
