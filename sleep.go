//go:build !(js && wasm)

package stopwatch

// SleepUntil blocks until the stopwatch reaches the given logical time.
// It returns immediately if that time has already passed.
//
// The sleep may overshoot like time.Sleep does, so most games should prefer
// vsync or a similar mechanism over this for holding a frame rate.
//
// The raw interval slept is t/speed - Time(), so at speeds other than 1 the
// stopwatch generally reads something other than t on return. With zero speed
// the interval is +Inf for positive t: a Sleeper source receives +Inf, and
// MonotonicSource blocks for the longest representable duration.
//
// SleepUntil panics with ErrSleepWhilePaused if the stopwatch is paused.
// Not available when built for the browser.
func (s *Stopwatch) SleepUntil(t float64) {
	if s.IsPaused() {
		panic(ErrSleepWhilePaused)
	}
	remaining := t/s.speed - s.Time()
	if !(remaining > 0) {
		return
	}
	if sl, ok := s.source.(Sleeper); ok {
		sl.Sleep(remaining)
		return
	}
	defaultSource.Sleep(remaining)
}
