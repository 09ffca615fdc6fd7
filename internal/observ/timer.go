// Package observ measures the phases of a CLI run for --timings.
package observ

import (
	"fmt"
	"strings"
	"time"
)

// Phase records the duration of one step and how many items it handled.
type Phase struct {
	Name  string
	Unit  string
	Start time.Time
	Dur   time.Duration
	Items int
}

// Timer tracks phases in start order. Not safe for concurrent use.
type Timer struct {
	phases []Phase
	now    func() time.Time
}

// NewTimer creates a new empty Timer.
func NewTimer() *Timer { return &Timer{phases: make([]Phase, 0, 4), now: time.Now} }

// Begin starts a phase counting items of the given unit ("files", "tokens").
func (t *Timer) Begin(name, unit string) int {
	t.phases = append(t.phases, Phase{Name: name, Unit: unit, Start: t.now()})
	return len(t.phases) - 1
}

// End finishes a phase by its index.
func (t *Timer) End(idx, items int) {
	if idx < 0 || idx >= len(t.phases) {
		return
	}
	p := &t.phases[idx]
	p.Dur = t.now().Sub(p.Start)
	p.Items = items
}

// Track is Begin with the matching End returned as a closure.
func (t *Timer) Track(name, unit string) func(items int) {
	idx := t.Begin(name, unit)
	return func(items int) { t.End(idx, items) }
}

// PhaseReport is the serializable view of a phase.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Items      int     `json:"items,omitempty"`
	Unit       string  `json:"unit,omitempty"`
	PerSecond  float64 `json:"per_second,omitempty"`
}

// Report aggregates all phases.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

// Report формирует срез фаз и общую длительность в миллисекундах.
func (t *Timer) Report() Report {
	if len(t.phases) == 0 {
		return Report{}
	}
	report := Report{Phases: make([]PhaseReport, len(t.phases))}
	var total time.Duration
	for i, phase := range t.phases {
		total += phase.Dur
		pr := PhaseReport{
			Name:       phase.Name,
			DurationMS: durationToMillis(phase.Dur),
			Items:      phase.Items,
			Unit:       phase.Unit,
		}
		if phase.Items > 0 && phase.Dur > 0 {
			pr.PerSecond = float64(phase.Items) / phase.Dur.Seconds()
		}
		report.Phases[i] = pr
	}
	report.TotalMS = durationToMillis(total)
	return report
}

// Summary returns a human-readable table of all phases.
func (t *Timer) Summary() string {
	report := t.Report()
	var b strings.Builder
	b.WriteString("timings:\n")
	for _, p := range report.Phases {
		fmt.Fprintf(&b, "  %-12s %9.2f ms", p.Name, p.DurationMS)
		if p.Items > 0 {
			fmt.Fprintf(&b, "  %d %s", p.Items, p.Unit)
			if p.PerSecond > 0 {
				fmt.Fprintf(&b, " (%.0f/s)", p.PerSecond)
			}
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "  %-12s %9.2f ms\n", "total", report.TotalMS)
	return b.String()
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
