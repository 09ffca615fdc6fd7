package trace

import "errors"

// MultiTracer fans events out; its level is the most verbose member's.
type MultiTracer []Tracer

func (m MultiTracer) Emit(ev *Event) {
	for _, t := range m {
		t.Emit(ev)
	}
}

func (m MultiTracer) each(fn func(Tracer) error) error {
	errs := make([]error, 0, len(m))
	for _, t := range m {
		errs = append(errs, fn(t))
	}
	return errors.Join(errs...)
}

func (m MultiTracer) Flush() error { return m.each(Tracer.Flush) }
func (m MultiTracer) Close() error { return m.each(Tracer.Close) }

func (m MultiTracer) Level() Level {
	l := LevelOff
	for _, t := range m {
		l = max(l, t.Level())
	}
	return l
}

func (m MultiTracer) Enabled() bool { return m.Level() > LevelOff }
