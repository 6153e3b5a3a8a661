package core

import "time"

// FixedStep reports when a fixed interval has elapsed, for advancing a
// slideshow at a steady pace independent of the frame rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep that fires once per interval.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetInterval(interval)
	return fs
}

// SetInterval changes the period. Non-positive values fall back to one second.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = time.Second
	}
	f.step = interval
}

// SetClock replaces the time source. A nil clock restores time.Now.
func (f *FixedStep) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	f.now = now
}

// Reset discards accumulated time, so the next step is a full interval away.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}

// ShouldStep reports whether an interval has elapsed since the last step.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
