package core

import "time"

// maxCatchUp bounds how many ticks Due hands out after a stall.
const maxCatchUp = 4

// FixedStep turns wall-clock time into whole playback ticks at a steady
// ticks-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
// The first call to Due yields one tick.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate; non-positive rates mean 60.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Step returns the duration of one tick.
func (f *FixedStep) Step() time.Duration { return f.step }

// Resync forgets the time since the last call, so a paused player does not
// jump ahead when it resumes.
func (f *FixedStep) Resync() {
	f.last = f.now()
	f.accumulator = 0
}

// Due returns the playback seconds owed since the previous call, in whole
// ticks. After a long stall at most maxCatchUp ticks are returned and the
// rest is dropped.
func (f *FixedStep) Due() float64 {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now

	ticks := int(f.accumulator / f.step)
	if ticks > maxCatchUp {
		ticks = maxCatchUp
		f.accumulator = 0
	} else {
		f.accumulator -= time.Duration(ticks) * f.step
	}
	return float64(ticks) * f.step.Seconds()
}
