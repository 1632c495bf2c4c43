package hci

import (
	"sync"
	"time"
)

// stateTrigger holds the device state and wakes every waiter on change.
type stateTrigger struct {
	mu      sync.Mutex
	state   State
	changed chan struct{}
}

func newStateTrigger() *stateTrigger {
	return &stateTrigger{changed: make(chan struct{})}
}

func (t *stateTrigger) Get() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Set ORs bits into the state.
func (t *stateTrigger) Set(bits State) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.update(t.state | bits)
}

// Clear removes bits from the state.
func (t *stateTrigger) Clear(bits State) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.update(t.state &^ bits)
}

// TryAction starts action unless an action is already running. A stale
// ABORT left from an earlier Abort is dropped.
func (t *stateTrigger) TryAction(action State) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state&StateActionMask != 0 {
		return false
	}
	t.update((t.state &^ StateAbort) | action)
	return true
}

// Changed returns a channel closed on the next state change.
func (t *stateTrigger) Changed() <-chan struct{} {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.changed
}

// WaitAny blocks until a bit of mask is set or d elapses and reports
// whether the bit was seen.
func (t *stateTrigger) WaitAny(mask State, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	for {
		s, ch := t.snapshot()
		if s&mask != 0 {
			return true
		}

		select {
		case <-ch:
		case <-timer.C:
			return false
		}
	}
}

func (t *stateTrigger) update(s State) {
	if s == t.state {
		return
	}
	t.state = s
	close(t.changed)
	t.changed = make(chan struct{})
}

// snapshot returns the state together with the channel closed on its next change.
func (t *stateTrigger) snapshot() (State, <-chan struct{}) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state, t.changed
}
