package scheduler

import (
	"time"

	"GymSimulator/internal/clock"
)

type manualTask struct {
	due    time.Time
	period time.Duration
	fn     func()
}

// ManualTimers fires timers only when Advance moves its fake clock. It is
// meant for tests and is not safe for concurrent use.
type ManualTimers struct {
	clock *clock.FakeClock
	next  Token
	tasks map[Token]*manualTask
}

// NewManualTimers creates manual timers driving c.
func NewManualTimers(c *clock.FakeClock) *ManualTimers {
	return &ManualTimers{clock: c, tasks: make(map[Token]*manualTask)}
}

func (m *ManualTimers) Every(d time.Duration, fn func()) Token {
	if d <= 0 {
		return 0
	}
	return m.add(d, d, fn)
}

func (m *ManualTimers) After(d time.Duration, fn func()) Token {
	if d < 0 {
		d = 0
	}
	return m.add(d, 0, fn)
}

func (m *ManualTimers) Cancel(tok Token) {
	delete(m.tasks, tok)
}

// Pending is the number of live timers.
func (m *ManualTimers) Pending() int {
	return len(m.tasks)
}

func (m *ManualTimers) add(d, period time.Duration, fn func()) Token {
	m.next++
	m.tasks[m.next] = &manualTask{due: m.clock.Now().Add(d), period: period, fn: fn}
	return m.next
}

// Advance moves the clock forward by d, firing due timers in time order.
// Ties fire in scheduling order. Timers scheduled by callbacks fire within
// the same call when they fall due.
func (m *ManualTimers) Advance(d time.Duration) {
	end := m.clock.Now().Add(d)
	for {
		tok, t := m.earliest(end)
		if t == nil {
			break
		}
		m.clock.Set(t.due)
		if t.period > 0 {
			t.due = t.due.Add(t.period)
		} else {
			delete(m.tasks, tok)
		}
		t.fn()
	}
	m.clock.Set(end)
}

func (m *ManualTimers) earliest(end time.Time) (Token, *manualTask) {
	var (
		best    Token
		bestDue *manualTask
	)
	for tok, t := range m.tasks {
		if t.due.After(end) {
			continue
		}
		if bestDue == nil || t.due.Before(bestDue.due) || (t.due.Equal(bestDue.due) && tok < best) {
			best, bestDue = tok, t
		}
	}
	return best, bestDue
}
