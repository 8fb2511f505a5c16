// Package clock provides the deferred-callback capability the carousel uses
// for auto-advance, and a manual implementation that hosts advance once per
// frame so callbacks run on the host's own goroutine.
package clock

import "time"

// Timer is a cancelable one-shot callback.
type Timer interface {
	// Stop cancels the callback. It reports whether the call stopped the
	// timer; false means it already fired or was already stopped.
	Stop() bool
}

// Scheduler arms one-shot callbacks. The signature mirrors time.AfterFunc.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Manual is a Scheduler driven by explicit calls to Advance. It is not safe
// for concurrent use; callers own it from a single goroutine.
type Manual struct {
	now    time.Duration
	seq    uint64
	timers []*ManualTimer
}

// ManualTimer is a Timer armed on a Manual scheduler.
type ManualTimer struct {
	m        *Manual
	deadline time.Duration
	seq      uint64
	f        func()
	done     bool
}

func NewManual() *Manual {
	return &Manual{}
}

// AfterFunc arms f to run once the clock has advanced by d.
func (m *Manual) AfterFunc(d time.Duration, f func()) Timer {
	if d < 0 {
		d = 0
	}
	m.seq++
	t := &ManualTimer{m: m, deadline: m.now + d, seq: m.seq, f: f}
	m.timers = append(m.timers, t)
	return t
}

// Stop removes the timer from its scheduler.
func (t *ManualTimer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	t.m.remove(t)
	return true
}

// Advance moves the clock forward by d and runs every timer that comes due,
// earliest deadline first. Timers armed by a callback run in the same call
// when their deadline also falls inside the window. It returns the number
// of callbacks run.
func (m *Manual) Advance(d time.Duration) int {
	target := m.now + d
	fired := 0
	for {
		t := m.next(target)
		if t == nil {
			break
		}
		t.done = true
		m.remove(t)
		m.now = t.deadline
		t.f()
		fired++
	}
	m.now = target
	return fired
}

// Now returns the elapsed time since the scheduler was created.
func (m *Manual) Now() time.Duration { return m.now }

// Pending returns the number of armed timers.
func (m *Manual) Pending() int { return len(m.timers) }

func (m *Manual) next(target time.Duration) *ManualTimer {
	var best *ManualTimer
	for _, t := range m.timers {
		if t.deadline > target {
			continue
		}
		if best == nil || t.deadline < best.deadline ||
			(t.deadline == best.deadline && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (m *Manual) remove(t *ManualTimer) {
	for i, x := range m.timers {
		if x == t {
			m.timers = append(m.timers[:i], m.timers[i+1:]...)
			return
		}
	}
}
