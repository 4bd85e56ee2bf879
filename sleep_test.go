//go:build !(js && wasm)

package stopwatch

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestSleepUntilAdvancesToTarget(t *testing.T) {
	tests := []struct {
		name   string
		speed  float64
		start  float64
		target float64
		rawDt  float64
		want   float64
	}{
		{"unit speed", 1.0, 2, 5, 3, 5},
		// target/speed - time: 6/2 - 2
		{"double speed", 2.0, 2, 6, 1, 4},
		// 1/(1/60) - 0.5
		{"minutes", 1.0 / 60.0, 0.5, 1, 59.5, 0.5 + 59.5/60.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sw, src := newTestStopwatch(tt.speed)
			sw.SetTime(tt.start)
			before := src.Now()

			sw.SleepUntil(tt.target)

			if got := src.Now() - before; !approxEqual(got, tt.rawDt) {
				t.Errorf("Expected to sleep %v raw seconds, slept %v", tt.rawDt, got)
			}
			if got := sw.Time(); !approxEqual(got, tt.want) {
				t.Errorf("Expected time %v after SleepUntil, got %v", tt.want, got)
			}
		})
	}
}

func TestSleepUntilZeroSpeed(t *testing.T) {
	sw, src := newTestStopwatch(0)

	sw.SleepUntil(-1)
	if got := src.Now(); got != 1000 {
		t.Errorf("Expected negative target to return without sleeping, source at %v", got)
	}

	sw.SleepUntil(0)
	if got := src.Now(); got != 1000 {
		t.Errorf("Expected NaN interval to return without sleeping, source at %v", got)
	}

	sw.SleepUntil(1)
	if got := src.Now(); !math.IsInf(got, 1) {
		t.Errorf("Expected +Inf sleep for positive target, source at %v", got)
	}
}

func TestSleepUntilPastTargetReturnsImmediately(t *testing.T) {
	sw, src := newTestStopwatch(1.0)
	src.Advance(10)
	before := src.Now()

	sw.SleepUntil(4)
	sw.SleepUntil(10)

	if src.Now() != before {
		t.Errorf("Expected no sleep for reached target, source moved by %v", src.Now()-before)
	}
}

func TestSleepUntilPanicsWhenPaused(t *testing.T) {
	sw, src := newTestStopwatch(1.0)
	sw.Pause()
	before := src.Now()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Expected SleepUntil to panic on paused stopwatch")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrSleepWhilePaused) {
			t.Errorf("Expected ErrSleepWhilePaused, got %v", r)
		}
		if src.Now() != before {
			t.Error("Expected no sleep before panic")
		}
	}()

	sw.SleepUntil(100)
}

// plainSource has no Sleep method, forcing the platform sleep
type plainSource struct {
	epoch time.Time
}

func (p plainSource) Now() float64 {
	return time.Since(p.epoch).Seconds()
}

func TestSleepUntilFallsBackToPlatformSleep(t *testing.T) {
	if testing.Short() {
		t.Skip("real-time test")
	}

	sw := NewWithSource(plainSource{epoch: time.Now()}, 1.0)
	start := time.Now()

	sw.SleepUntil(0.03)

	if elapsed := time.Since(start); elapsed < 25*time.Millisecond {
		t.Errorf("Expected to block about 30ms, blocked %v", elapsed)
	}
	if got := sw.Time(); got < 0.03 {
		t.Errorf("Expected stopwatch past target 0.03, got %v", got)
	}
}
