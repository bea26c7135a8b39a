package utils

import "time"

// defaultStep is used when a non-positive interval is requested
const defaultStep = time.Second / 60

// FixedStep paces simulation updates at a steady interval inside a faster frame loop
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep that fires once per interval. The first
// call to ShouldStep fires immediately.
func NewFixedStep(interval time.Duration) *FixedStep {
	f := &FixedStep{now: time.Now}
	f.SetInterval(interval)
	f.accumulator = f.step
	return f
}

// SetInterval changes the step interval
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = defaultStep
	}
	f.step = interval
}

// ShouldStep reports whether the simulation should advance by one tick
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		// never queue more than one pending step after a stall
		f.accumulator = min(f.accumulator, f.step)
		return true
	}
	return false
}
