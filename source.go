package stopwatch

import "sync"

// TimeSource provides raw monotonic time in seconds.
// Only differences between readings are used, so the epoch is arbitrary.
type TimeSource interface {
	Now() float64
}

// Sleeper blocks the caller for the given number of seconds.
// A TimeSource that also implements Sleeper is used by SleepUntil.
type Sleeper interface {
	Sleep(seconds float64)
}

// ManualSource provides a controllable time source for testing
type ManualSource struct {
	mu  sync.RWMutex
	now float64
}

// NewManualSource creates a manual source reading the given time
func NewManualSource(now float64) *ManualSource {
	return &ManualSource{now: now}
}

// Now returns the current manual time
func (m *ManualSource) Now() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Set sets the current manual time
func (m *ManualSource) Set(now float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

// Advance moves the current manual time forward by seconds
func (m *ManualSource) Advance(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now += seconds
}

// Sleep advances the source instead of blocking, so sleeps complete instantly
// and exactly. Non-positive durations are ignored.
func (m *ManualSource) Sleep(seconds float64) {
	if seconds <= 0 {
		return
	}
	m.Advance(seconds)
}
