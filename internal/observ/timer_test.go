package observ

import (
	"strings"
	"testing"
	"time"
)

func fakeClock(step time.Duration) func() time.Time {
	at := time.Unix(0, 0)
	return func() time.Time {
		at = at.Add(step)
		return at
	}
}

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	tm.now = fakeClock(500 * time.Millisecond)
	done := tm.Track("lex", "tokens")
	done(100)
	idx := tm.Begin("summarize", "")
	tm.End(idx, 0)
	tm.End(42, 1) // неизвестный индекс игнорируется

	r := tm.Report()
	if len(r.Phases) != 2 {
		t.Fatalf("phases = %d", len(r.Phases))
	}
	if r.Phases[0].DurationMS != 500 || r.Phases[0].PerSecond != 200 {
		t.Fatalf("lex = %+v", r.Phases[0])
	}
	if r.TotalMS != 1000 {
		t.Fatalf("total = %v", r.TotalMS)
	}

	s := tm.Summary()
	for _, want := range []string{"timings:", "100 tokens (200/s)", "summarize", "total"} {
		if !strings.Contains(s, want) {
			t.Errorf("summary missing %q:\n%s", want, s)
		}
	}
}

func TestEmptyTimer(t *testing.T) {
	if r := NewTimer().Report(); r.TotalMS != 0 || r.Phases != nil {
		t.Fatalf("report = %+v", r)
	}
}
