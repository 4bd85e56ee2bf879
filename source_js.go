//go:build js && wasm

package stopwatch

import "syscall/js"

// PerformanceSource reads the browser high resolution timer.
// The page has no blocking primitive, so it does not implement Sleeper.
type PerformanceSource struct {
	performance js.Value
}

// NewPerformanceSource binds to window.performance
func NewPerformanceSource() *PerformanceSource {
	return &PerformanceSource{performance: js.Global().Get("performance")}
}

// Now returns performance.now() converted from milliseconds to seconds
func (p *PerformanceSource) Now() float64 {
	return p.performance.Call("now").Float() / 1000.0
}

var defaultSource = NewPerformanceSource()

// DefaultSource returns the platform time source shared by New and WithSpeed
func DefaultSource() TimeSource {
	return defaultSource
}
