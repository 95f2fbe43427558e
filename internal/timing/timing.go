// Package timing measures the phases of a completion request.
package timing

import (
	"fmt"
	"strings"
	"time"
)

// mark is the end of one phase
type mark struct {
	label string
	at    time.Duration
}

// Timer splits the time since its creation into labeled phases
type Timer struct {
	start time.Time
	marks []mark
	now   func() time.Time
}

// NewTimer creates a timer starting now
func NewTimer() *Timer {
	return newTimerWithClock(time.Now)
}

func newTimerWithClock(now func() time.Time) *Timer {
	return &Timer{start: now(), now: now}
}

// Mark ends the current phase and returns how long it took
func (t *Timer) Mark(label string) time.Duration {
	at := t.now().Sub(t.start)
	phase := at
	if n := len(t.marks); n > 0 {
		phase = at - t.marks[n-1].at
	}
	t.marks = append(t.marks, mark{label: label, at: at})
	return phase
}

// Elapsed returns the time since the timer was created
func (t *Timer) Elapsed() time.Duration {
	return t.now().Sub(t.start)
}

// Phase returns the duration of a labeled phase
func (t *Timer) Phase(label string) (time.Duration, bool) {
	var prev time.Duration
	for _, m := range t.marks {
		if m.label == label {
			return m.at - prev, true
		}
		prev = m.at
	}
	return 0, false
}

// Summary formats the total and each phase in milliseconds,
// e.g. "Total: 1.250ms (init: 1.000ms, route: 0.250ms)"
func (t *Timer) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total: %s", millis(t.Elapsed()))

	if len(t.marks) > 0 {
		b.WriteString(" (")
		var prev time.Duration
		for i, m := range t.marks {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s: %s", m.label, millis(m.at-prev))
			prev = m.at
		}
		b.WriteString(")")
	}
	return b.String()
}

func millis(d time.Duration) string {
	return fmt.Sprintf("%.3fms", float64(d.Microseconds())/1000.0)
}
