// Package timer counts elapsed simulation time against a duration.
package timer

// Infinite is the duration sentinel for a timer that never completes.
// Such a timer is used purely as a stopwatch.
const Infinite = -1.0

// Timer accumulates elapsed time (milliseconds) toward a duration
type Timer struct {
	duration float64
	elapsed  float64
}

// New creates a timer for the given duration in milliseconds.
// Pass Infinite for a stopwatch.
func New(duration float64) *Timer {
	return &Timer{duration: duration}
}

// Update advances the timer by dt milliseconds
func (t *Timer) Update(dt float64) {
	t.elapsed += dt
}

// IsDone returns true once elapsed time reaches the duration.
// An infinite timer is never done.
func (t *Timer) IsDone() bool {
	if t.IsInfinite() {
		return false
	}
	return t.elapsed >= t.duration
}

// IsInfinite returns true if the timer has no duration
func (t *Timer) IsInfinite() bool {
	return t.duration < 0
}

// Elapsed returns the accumulated time in milliseconds
func (t *Timer) Elapsed() float64 {
	return t.elapsed
}

// Duration returns the configured duration (Infinite for stopwatches)
func (t *Timer) Duration() float64 {
	return t.duration
}

// Progress returns elapsed/duration clamped to 0..1 (0 for infinite timers)
func (t *Timer) Progress() float64 {
	if t.IsInfinite() || t.duration == 0 {
		if t.IsDone() {
			return 1
		}
		return 0
	}
	p := t.elapsed / t.duration
	if p > 1 {
		return 1
	}
	return p
}

// Reset sets elapsed time back to zero
func (t *Timer) Reset() {
	t.elapsed = 0
}
