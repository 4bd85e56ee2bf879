package main

import (
	"math"
	"testing"

	"github.com/lixenwraith/stopwatch"
)

type recordingSound struct {
	ticks   int
	toggles []bool
}

func (r *recordingSound) PlayTick() { r.ticks++ }

func (r *recordingSound) PlayToggle(paused bool) { r.toggles = append(r.toggles, paused) }

func newTestApp(t *testing.T) (*App, *stopwatch.ManualSource, *recordingSound) {
	t.Helper()
	src := stopwatch.NewManualSource(500)
	snd := &recordingSound{}
	return NewApp(DefaultConfig(), src, snd), src, snd
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewAppCreatesWatches(t *testing.T) {
	app, src, _ := newTestApp(t)

	if len(app.Watches) != 3 {
		t.Fatalf("Expected 3 watches, got %d", len(app.Watches))
	}
	src.Advance(120)

	want := []float64{120, 2, 240}
	for i, w := range app.Watches {
		if got := w.Clock.Time(); !near(got, want[i]) {
			t.Errorf("Watch %q: expected %v, got %v", w.Name, want[i], got)
		}
	}
}

func TestNewAppNilSound(t *testing.T) {
	app := NewApp(DefaultConfig(), stopwatch.NewManualSource(0), nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Expected nil sound to be safe, panicked: %v", r)
		}
	}()
	app.Apply(ActionToggle)
	app.Update()
}

func TestAppSelection(t *testing.T) {
	app, _, _ := newTestApp(t)

	app.Apply(ActionPrev)
	if app.Selected != 2 {
		t.Errorf("Expected prev to wrap to 2, got %d", app.Selected)
	}
	app.Apply(ActionNext)
	if app.Selected != 0 {
		t.Errorf("Expected next to wrap to 0, got %d", app.Selected)
	}
	app.Apply(ActionNext)
	if app.Current().Name != "minutes" {
		t.Errorf("Expected minutes selected, got %q", app.Current().Name)
	}
}

func TestAppToggleAffectsSelectedOnly(t *testing.T) {
	app, src, snd := newTestApp(t)
	src.Advance(10)

	app.Apply(ActionToggle)
	src.Advance(10)

	if !app.Watches[0].Clock.IsPaused() {
		t.Error("Expected selected watch paused")
	}
	if got := app.Watches[0].Clock.Time(); !near(got, 10) {
		t.Errorf("Expected paused watch frozen at 10, got %v", got)
	}
	if got := app.Watches[2].Clock.Time(); !near(got, 40) {
		t.Errorf("Expected other watch running at 40, got %v", got)
	}
	if len(snd.toggles) != 1 || !snd.toggles[0] {
		t.Errorf("Expected one pause tone, got %v", snd.toggles)
	}
}

func TestAppToggleAllFollowsSelected(t *testing.T) {
	app, _, snd := newTestApp(t)

	app.Watches[1].Clock.Pause()
	app.Apply(ActionToggleAll)
	for _, w := range app.Watches {
		if !w.Clock.IsPaused() {
			t.Errorf("Expected %q paused", w.Name)
		}
	}

	app.Apply(ActionToggleAll)
	for _, w := range app.Watches {
		if w.Clock.IsPaused() {
			t.Errorf("Expected %q running", w.Name)
		}
	}
	if len(snd.toggles) != 2 || !snd.toggles[0] || snd.toggles[1] {
		t.Errorf("Expected pause then resume tones, got %v", snd.toggles)
	}
}

func TestAppAdjustments(t *testing.T) {
	app, src, _ := newTestApp(t)
	src.Advance(7)
	w := app.Current()

	app.Apply(ActionAdd)
	if got := w.Clock.Time(); !near(got, 12) {
		t.Errorf("Expected 12 after add, got %v", got)
	}
	app.Apply(ActionRewind)
	app.Apply(ActionRewind)
	if got := w.Clock.Time(); !near(got, 2) {
		t.Errorf("Expected 2 after two rewinds, got %v", got)
	}
	app.Apply(ActionSet)
	if got := w.Clock.Time(); !near(got, 30) {
		t.Errorf("Expected 30 after set, got %v", got)
	}
	app.Apply(ActionReset)
	if got := w.Clock.Time(); got != 0 {
		t.Errorf("Expected 0 after reset, got %v", got)
	}
}

func TestAppQuit(t *testing.T) {
	app, _, _ := newTestApp(t)

	if !app.Apply(ActionNone) {
		t.Error("Expected ActionNone to keep running")
	}
	if app.Apply(ActionQuit) {
		t.Error("Expected ActionQuit to stop")
	}
}

func TestAppUpdateTicks(t *testing.T) {
	app, src, snd := newTestApp(t)

	src.Advance(0.5)
	if app.Update() {
		t.Error("Expected no tick before first whole second")
	}

	src.Advance(0.6)
	if !app.Update() {
		t.Error("Expected tick after crossing one second")
	}
	if app.Update() {
		t.Error("Expected no repeated tick within the same second")
	}

	// Jumps from actions do not tick
	app.Apply(ActionAdd)
	if app.Update() {
		t.Error("Expected no tick after nudge")
	}

	app.Apply(ActionToggle)
	src.Advance(3)
	if app.Update() {
		t.Error("Expected no tick while paused")
	}

	if snd.ticks != 1 {
		t.Errorf("Expected exactly 1 tick, got %d", snd.ticks)
	}
}
