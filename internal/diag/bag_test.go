package diag

import (
	"testing"

	"sqlex/internal/source"
)

func TestBagLimitAndMerge(t *testing.T) {
	b := NewBag(2)
	sp := source.Span{Start: 1, End: 2}
	if !b.Add(NewError(LexBadNumber, sp, "a")) || !b.Add(NewError(LexBadNumber, sp, "b")) {
		t.Fatalf("first two adds must succeed")
	}
	if b.Add(NewError(LexBadNumber, sp, "c")) {
		t.Fatalf("third add must hit the limit")
	}
	if b.Dropped() != 1 {
		t.Fatalf("dropped = %d", b.Dropped())
	}
	other := NewBag(3)
	other.Add(New(SevWarning, SynUnexpectedToken, source.Span{Start: 0, End: 1}, "w"))
	b.Merge(other)
	if b.Len() != 3 || b.Limit() != 3 {
		t.Fatalf("merge: len=%d limit=%d", b.Len(), b.Limit())
	}
	b.Sort()
	if b.Items()[0].Code != SynUnexpectedToken {
		t.Fatalf("sort by start first, got %v", b.Items()[0].Code)
	}
	b.Dedup()
	if b.Len() != 2 {
		t.Fatalf("dedup by code+span, got %d", b.Len())
	}
	if !b.HasErrors() || b.Count(SevError) != 1 || b.Count(SevWarning) != 2 {
		t.Fatalf("counts: errors=%d warnings+=%d", b.Count(SevError), b.Count(SevWarning))
	}
}

func TestMergeIntoEmptyBag(t *testing.T) {
	out := NewBag(0)
	if out.Add(NewError(LexBadNumber, source.Span{}, "x")) {
		t.Fatalf("zero-limit bag must reject Add")
	}
	in := NewBag(4)
	in.Add(NewError(LexBadNumber, source.Span{}, "y"))
	out.Merge(in)
	if out.Len() != 1 || out.Dropped() != 1 {
		t.Fatalf("len=%d dropped=%d", out.Len(), out.Dropped())
	}
}

func TestSortErrorsBeforeWarnings(t *testing.T) {
	b := NewBag(4)
	sp := source.Span{Start: 2, End: 3}
	b.Add(New(SevWarning, IOCacheError, sp, "w"))
	b.Add(NewError(LexInvalidChar, sp, "e"))
	b.Sort()
	if b.Items()[0].Severity != SevError {
		t.Fatalf("error must sort first at equal span")
	}
}

func TestDedupReporter(t *testing.T) {
	bag := NewBag(10)
	r := NewDedupReporter(BagReporter{Bag: bag})
	sp := source.Span{Start: 3, End: 4}
	for range 3 {
		Send(r, NewError(LexInvalidChar, sp, "invalid character '!'"))
	}
	Send(r, NewError(LexInvalidChar, source.Span{Start: 5, End: 6}, "invalid character '!'").
		WithFix("remove", FixEdit{Span: source.Span{Start: 5, End: 6}}))
	if bag.Len() != 2 || r.Suppressed() != 2 {
		t.Fatalf("want 2 unique diagnostics and 2 suppressed, got %d/%d", bag.Len(), r.Suppressed())
	}
	if len(bag.Items()[1].Fixes) != 1 {
		t.Fatalf("fix must be forwarded")
	}
}

func TestMultiReporter(t *testing.T) {
	bag := NewBag(10)
	var seen []Code
	m := MultiReporter{BagReporter{Bag: bag}, nil, NopReporter{}, ReporterFunc(func(d Diagnostic) {
		seen = append(seen, d.Code)
	})}
	Send(m, NewError(SynExpectRParen, source.Span{}, "expected ')'"))
	Send(nil, NewError(SynExpectRParen, source.Span{}, "dropped"))
	if bag.Len() != 1 || len(seen) != 1 || seen[0] != SynExpectRParen {
		t.Fatalf("bag=%d seen=%v", bag.Len(), seen)
	}
}
