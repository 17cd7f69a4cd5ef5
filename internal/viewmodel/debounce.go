package viewmodel

import (
	"sync"
	"time"
)

// Distinct delays for the two debounced inputs: typing in the search
// box and the overflow re-checks triggered by window resizes.
const (
	SearchDebounce = 300 * time.Millisecond
	ResizeDebounce = 150 * time.Millisecond
)

// Debouncer collapses a burst of triggers into one trailing call.
type Debouncer struct {
	delay time.Duration
	mu    sync.Mutex
	timer *time.Timer
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger schedules fn after the delay, cancelling any pending call.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending call.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
