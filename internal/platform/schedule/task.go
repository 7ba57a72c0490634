// Package schedule provides a cancellable delayed action: a single
// logical timer whose pending run can be superseded or stopped. It
// exists so state owners (like the triage board) can hold their own
// decay timers instead of tying them to any caller's lifecycle.
package schedule

import (
	"sync"
	"time"
)

// Task runs a function once after a delay. At most one run is pending
// at a time: scheduling again before the pending run fires supersedes
// it, and a superseded run never executes.
type Task struct {
	mu    sync.Mutex
	timer *time.Timer
	gen   uint64
}

func NewTask() *Task {
	return &Task{}
}

// After schedules fn to run once after d, replacing any pending run.
func (t *Task) After(d time.Duration, fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
	}
	t.gen++
	gen := t.gen
	t.timer = time.AfterFunc(d, func() {
		t.mu.Lock()
		run := t.gen == gen
		if run {
			t.timer = nil
		}
		t.mu.Unlock()
		if run {
			fn()
		}
	})
}

// Stop cancels any pending run. Safe to call when nothing is pending.
func (t *Task) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.gen++
}

// Pending reports whether a run is currently scheduled.
func (t *Task) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.timer != nil
}
