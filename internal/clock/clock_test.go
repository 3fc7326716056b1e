package clock

import (
	"testing"
	"time"
)

func TestManual_AdvanceFiresInDeadlineOrder(t *testing.T) {
	start := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	m := NewManual(start)

	var order []string
	m.AfterFunc(2*time.Second, func() { order = append(order, "b") })
	m.AfterFunc(1*time.Second, func() { order = append(order, "a") })
	m.AfterFunc(5*time.Second, func() { order = append(order, "c") })

	m.Advance(3 * time.Second)
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("expected [a b], got %v", order)
	}
	if m.Pending() != 1 {
		t.Fatalf("expected 1 pending timer, got %d", m.Pending())
	}
	if got := m.Now(); !got.Equal(start.Add(3 * time.Second)) {
		t.Fatalf("expected clock at +3s, got %v", got)
	}
}

func TestManual_StopPreventsFiring(t *testing.T) {
	m := NewManual(time.Unix(0, 0))
	fired := false
	timer := m.AfterFunc(time.Second, func() { fired = true })

	if !timer.Stop() {
		t.Fatalf("expected first Stop to report true")
	}
	if timer.Stop() {
		t.Fatalf("expected second Stop to report false")
	}
	m.Advance(2 * time.Second)
	if fired {
		t.Fatalf("stopped timer fired")
	}
}

func TestManual_CallbackSchedulesWithinWindow(t *testing.T) {
	m := NewManual(time.Unix(0, 0))
	count := 0
	m.AfterFunc(time.Second, func() {
		count++
		m.AfterFunc(time.Second, func() { count++ })
	})

	m.Advance(2 * time.Second)
	if count != 2 {
		t.Fatalf("expected chained timer to fire, count=%d", count)
	}
}

func TestManual_CallbacksSeeDeadlineAndFinishBeforeAdvanceReturns(t *testing.T) {
	start := time.Unix(0, 0)
	m := NewManual(start)

	var seen []time.Time
	var later Timer
	m.AfterFunc(time.Second, func() {
		seen = append(seen, m.Now())
		later.Stop()
	})
	later = m.AfterFunc(2*time.Second, func() { seen = append(seen, m.Now()) })
	m.AfterFunc(3*time.Second, func() { seen = append(seen, m.Now()) })

	m.Advance(5 * time.Second)
	// No sleep or sync: effects must be visible as soon as Advance returns.
	if len(seen) != 2 {
		t.Fatalf("expected 2 callbacks, got %d", len(seen))
	}
	if !seen[0].Equal(start.Add(time.Second)) || !seen[1].Equal(start.Add(3*time.Second)) {
		t.Fatalf("callbacks saw %v, expected their own deadlines", seen)
	}
}

func TestToday_UsesDateLayout(t *testing.T) {
	m := NewManual(time.Date(2026, 1, 2, 23, 59, 0, 0, time.Local))
	if got := Today(m); got != "2026-01-02" {
		t.Fatalf("expected 2026-01-02, got %s", got)
	}
}
