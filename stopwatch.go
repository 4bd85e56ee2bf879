// Package stopwatch provides a pausable, speed-scaled logical clock for games
// and similar real-time applications.
//
// A Stopwatch measures time in seconds as float64. It reads a monotonic
// TimeSource only to learn how much raw time has passed; everything else
// (pausing, scaling, setting and nudging) is plain arithmetic on two anchors.
package stopwatch

import (
	"errors"
	"fmt"
	"time"
)

// ErrSleepWhilePaused is the panic value raised by SleepUntil on a paused stopwatch
var ErrSleepWhilePaused = errors.New("stopwatch: SleepUntil called while paused")

// Stopwatch tracks logical elapsed time in seconds.
//
// Stopwatch is a value type; copies are independent. The zero value has no
// time source and is not usable, construct with New, WithSpeed or NewWithSource.
// A Stopwatch is not safe for concurrent use.
type Stopwatch struct {
	source TimeSource

	// Raw reading that corresponds to logical zero
	start float64
	// Frozen end time, non-nil iff paused. Always replaced, never written through
	pausedAt *float64
	// Logical seconds per raw second
	speed float64
}

// New creates a running stopwatch at time 0 that advances one second per second
func New() Stopwatch {
	return WithSpeed(1.0)
}

// WithSpeed creates a stopwatch which advances the given amount every second.
//
// For instance, WithSpeed(1.0/60.0) creates a stopwatch which uses minutes as
// the time unit instead of seconds. The speed is not validated: zero yields
// Inf/NaN readings and negative speeds run the stopwatch backwards.
func WithSpeed(speed float64) Stopwatch {
	return NewWithSource(DefaultSource(), speed)
}

// NewWithSource creates a running stopwatch at time 0 reading raw time from src
func NewWithSource(src TimeSource, speed float64) Stopwatch {
	return Stopwatch{
		source: src,
		start:  src.Now(),
		speed:  speed,
	}
}

// Speed returns the scale factor fixed at construction
func (s *Stopwatch) Speed() float64 {
	return s.speed
}

// IsPaused returns whether the stopwatch is paused
func (s *Stopwatch) IsPaused() bool {
	return s.pausedAt != nil
}

// Pause freezes the stopwatch. Pausing a paused stopwatch does nothing.
func (s *Stopwatch) Pause() {
	if s.IsPaused() {
		return
	}
	end := s.source.Now()
	s.pausedAt = &end
}

// Unpause resumes the stopwatch from the time it was paused at.
// Unpausing a running stopwatch does nothing.
func (s *Stopwatch) Unpause() {
	if !s.IsPaused() {
		return
	}
	s.start = s.source.Now() - s.Time()/s.speed
	s.pausedAt = nil
}

// TogglePause pauses a running stopwatch and unpauses a paused one
func (s *Stopwatch) TogglePause() {
	if s.IsPaused() {
		s.Unpause()
	} else {
		s.Pause()
	}
}

// Time returns the current logical time in seconds
func (s *Stopwatch) Time() float64 {
	return (s.endTime() - s.start) * s.speed
}

// Elapsed returns the current logical time as a duration
func (s *Stopwatch) Elapsed() time.Duration {
	return time.Duration(s.Time() * float64(time.Second))
}

// SetTime sets the current logical time, keeping the pause state
func (s *Stopwatch) SetTime(t float64) {
	s.start = s.endTime() - t/s.speed
}

// Reset sets the current logical time to zero
func (s *Stopwatch) Reset() {
	s.SetTime(0)
}

// AddTime advances the stopwatch by delta logical seconds, paused or not.
// A negative delta rewinds it; the result may drop below zero.
func (s *Stopwatch) AddTime(delta float64) {
	s.start -= delta / s.speed
}

func (s *Stopwatch) String() string {
	if s.IsPaused() {
		return fmt.Sprintf("%.3fs (paused)", s.Time())
	}
	return fmt.Sprintf("%.3fs", s.Time())
}

// endTime is the raw instant elapsed time is measured against: the frozen
// pause instant while paused, otherwise now
func (s *Stopwatch) endTime() float64 {
	if s.pausedAt != nil {
		return *s.pausedAt
	}
	return s.source.Now()
}
