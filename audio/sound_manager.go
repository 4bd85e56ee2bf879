package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	speakerBufferDurationMs = 100

	tickDurationMs  = 40
	tickFrequencyHz = 1760.0
	tickAmplitude   = 0.25
	tickDecayRate   = 90.0 // envelope e-folds per second

	toggleDurationMs    = 120
	pauseFrequencyHz    = 330.0
	resumeFrequencyHz   = 660.0
	toggleVolumeOctaves = -3.0 // SineTone is full scale; 2^-3 brings it near tick level
)

// SoundManager plays the sandbox sounds: a click per logical second and a
// tone on pause/resume. Every operation is a no-op until Initialize succeeds.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the speaker. Calling it again after success does nothing.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*speakerBufferDurationMs))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything queued on the mixer
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker close; an empty mixer plays silence
	sm.initialized = false
}

// Initialized reports whether the speaker is running
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PlayTick plays a short click
func (sm *SoundManager) PlayTick() {
	sm.play(beep.Take(sampleRate.N(time.Millisecond*tickDurationMs), NewTickGenerator(sampleRate, tickFrequencyHz)))
}

// PlayToggle plays a low tone when pausing and a high tone when resuming
func (sm *SoundManager) PlayToggle(paused bool) {
	if !sm.Initialized() {
		return
	}

	freq := resumeFrequencyHz
	if paused {
		freq = pauseFrequencyHz
	}
	tone, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	quiet := &effects.Volume{Streamer: tone, Base: 2, Volume: toggleVolumeOctaves}
	sm.play(beep.Take(sampleRate.N(time.Millisecond*toggleDurationMs), quiet))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// TickGenerator generates an exponentially decaying sine click
type TickGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewTickGenerator creates a tick sound generator
func NewTickGenerator(sr beep.SampleRate, freq float64) *TickGenerator {
	return &TickGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *TickGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := tickAmplitude * math.Exp(-tickDecayRate*t) * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *TickGenerator) Err() error {
	return nil
}
