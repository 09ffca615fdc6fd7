package trace

import (
	"strconv"
	"sync/atomic"
	"time"
)

var (
	seqCounter  atomic.Uint64
	spanCounter atomic.Uint64
)

// NextSeq returns the next global sequence number.
func NextSeq() uint64 { return seqCounter.Add(1) }

// NextSpanID returns a process-unique span ID.
func NextSpanID() uint64 { return spanCounter.Add(1) }

// Span is an open interval between Begin and End.
// The disabled span has id 0 and a Nop tracer; all methods on it are no-ops.
type Span struct {
	tracer   Tracer
	id       uint64
	parentID uint64
	worker   int
	scope    Scope
	name     string
	file     string
	started  time.Time
	extra    map[string]string
}

var disabled = &Span{tracer: Nop}

// Begin emits a SpanBegin event and returns the span; parent is 0 for a root.
func Begin(t Tracer, scope Scope, name string, parent uint64) *Span {
	return begin(t, scope, name, "", parent, 0)
}

func begin(t Tracer, scope Scope, name, file string, parent uint64, worker int) *Span {
	if t == nil || !t.Enabled() || !t.Level().ShouldEmit(scope) {
		return disabled
	}
	sp := &Span{
		tracer:   t,
		id:       NextSpanID(),
		parentID: parent,
		worker:   worker,
		scope:    scope,
		name:     name,
		file:     file,
		started:  time.Now(),
	}
	t.Emit(sp.event(KindSpanBegin, sp.started, name, ""))
	return sp
}

func (s *Span) event(kind Kind, at time.Time, name, detail string) *Event {
	return &Event{
		Time:     at,
		Seq:      NextSeq(),
		Kind:     kind,
		Scope:    s.scope,
		SpanID:   s.id,
		ParentID: s.parentID,
		Worker:   s.worker,
		Name:     name,
		File:     s.file,
		Detail:   detail,
	}
}

// End emits SpanEnd and returns the span duration.
func (s *Span) End(detail string) time.Duration {
	if s == nil || s.id == 0 {
		return 0
	}
	now := time.Now()
	ev := s.event(KindSpanEnd, now, s.name, detail)
	ev.Extra = s.extra
	s.tracer.Emit(ev)
	return now.Sub(s.started)
}

// EndErr ends the span with "ok" or the error text.
func (s *Span) EndErr(err error) time.Duration {
	if err != nil {
		return s.End("error: " + err.Error())
	}
	return s.End("ok")
}

// WithExtra attaches a key/value to the end event.
func (s *Span) WithExtra(key, value string) *Span {
	if s == nil || s.id == 0 {
		return s
	}
	if s.extra == nil {
		s.extra = make(map[string]string)
	}
	s.extra[key] = value
	return s
}

// WithCount is WithExtra for counters: tokens, files, diagnostics.
func (s *Span) WithCount(key string, n int) *Span {
	return s.WithExtra(key, strconv.Itoa(n))
}

// Point emits an instant event inside the span.
func (s *Span) Point(name, detail string) {
	if s == nil || s.id == 0 {
		return
	}
	s.tracer.Emit(s.event(KindPoint, time.Now(), name, detail))
}

func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.id
}
