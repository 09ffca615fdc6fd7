package trace

import (
	"strconv"
	"sync"
	"time"
)

// StatusFunc reports extra fields for a heartbeat event.
type StatusFunc func() map[string]string

// Heartbeat emits periodic events so a stuck check run is visible in the
// trace: heartbeats keep coming while no span ends.
type Heartbeat struct {
	tracer   Tracer
	interval time.Duration
	status   StatusFunc
	stop     chan struct{}
	once     sync.Once
	wg       sync.WaitGroup
}

// StartHeartbeat returns nil when tracing is off or interval <= 0.
// status may be nil.
func StartHeartbeat(t Tracer, interval time.Duration, status StatusFunc) *Heartbeat {
	if t == nil || !t.Enabled() || interval <= 0 {
		return nil
	}
	h := &Heartbeat{tracer: t, interval: interval, status: status, stop: make(chan struct{})}
	h.wg.Add(1)
	go h.run()
	return h
}

func (h *Heartbeat) run() {
	defer h.wg.Done()
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()
	started := time.Now()
	var n int
	for {
		select {
		case now := <-ticker.C:
			n++
			ev := &Event{
				Time:   now,
				Seq:    NextSeq(),
				Kind:   KindHeartbeat,
				Scope:  ScopeDriver,
				Name:   "heartbeat",
				Detail: "#" + strconv.Itoa(n) + " after " + now.Sub(started).Round(time.Millisecond).String(),
			}
			if h.status != nil {
				ev.Extra = h.status()
			}
			h.tracer.Emit(ev)
		case <-h.stop:
			return
		}
	}
}

// Stop is idempotent and waits for the goroutine to exit.
func (h *Heartbeat) Stop() {
	if h == nil {
		return
	}
	h.once.Do(func() { close(h.stop) })
	h.wg.Wait()
}
