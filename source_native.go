//go:build !(js && wasm)

package stopwatch

import (
	"math"
	"time"
)

// MonotonicSource reads the process monotonic clock.
// It implements Sleeper with time.Sleep.
type MonotonicSource struct {
	epoch time.Time
}

// NewMonotonicSource creates a source whose readings start near zero
func NewMonotonicSource() *MonotonicSource {
	return &MonotonicSource{epoch: time.Now()}
}

// Now returns seconds since the source was created.
// time.Since uses the monotonic reading, so wall clock jumps do not leak in.
func (m *MonotonicSource) Now() float64 {
	return time.Since(m.epoch).Seconds()
}

// Sleep blocks for at least the given seconds; non-positive values return immediately
func (m *MonotonicSource) Sleep(seconds float64) {
	if seconds <= 0 {
		return
	}
	time.Sleep(secondsToDuration(seconds))
}

// secondsToDuration saturates at the largest duration; a plain conversion of
// an out of range float is platform dependent
func secondsToDuration(seconds float64) time.Duration {
	ns := seconds * float64(time.Second)
	if ns >= math.MaxInt64 {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(ns)
}

var defaultSource = NewMonotonicSource()

// DefaultSource returns the platform time source shared by New and WithSpeed
func DefaultSource() TimeSource {
	return defaultSource
}
