package main

import (
	"log"
	"math"

	"github.com/lixenwraith/stopwatch"
)

// SoundPlayer receives audible feedback; *audio.SoundManager satisfies it
type SoundPlayer interface {
	PlayTick()
	PlayToggle(paused bool)
}

type nopSound struct{}

func (nopSound) PlayTick() {}

func (nopSound) PlayToggle(bool) {}

// Watch is one labelled stopwatch row
type Watch struct {
	Name  string
	Clock stopwatch.Stopwatch

	// Last whole logical second observed, for tick detection
	lastWhole float64
}

// App holds the sandbox state between frames
type App struct {
	Watches  []*Watch
	Selected int

	nudge    float64
	setValue float64
	sound    SoundPlayer
}

// NewApp creates one running watch per configured row, all reading src
func NewApp(cfg *Config, src stopwatch.TimeSource, sound SoundPlayer) *App {
	if sound == nil {
		sound = nopSound{}
	}

	a := &App{
		Watches:  make([]*Watch, 0, len(cfg.Watches)),
		nudge:    cfg.Nudge,
		setValue: cfg.SetValue,
		sound:    sound,
	}
	for _, wc := range cfg.Watches {
		a.Watches = append(a.Watches, &Watch{
			Name:  wc.Name,
			Clock: stopwatch.NewWithSource(src, wc.SpeedOrDefault()),
		})
	}
	return a
}

// Current returns the selected watch
func (a *App) Current() *Watch {
	return a.Watches[a.Selected]
}

// Apply runs one action. Returns false when the sandbox should exit.
func (a *App) Apply(act Action) bool {
	w := a.Current()

	switch act {
	case ActionQuit:
		return false
	case ActionNext:
		a.Selected = (a.Selected + 1) % len(a.Watches)
	case ActionPrev:
		a.Selected = (a.Selected - 1 + len(a.Watches)) % len(a.Watches)
	case ActionToggle:
		w.Clock.TogglePause()
		a.sound.PlayToggle(w.Clock.IsPaused())
	case ActionToggleAll:
		// Follow the selected watch so mixed states converge
		pause := !w.Clock.IsPaused()
		for _, other := range a.Watches {
			if pause {
				other.Clock.Pause()
			} else {
				other.Clock.Unpause()
			}
		}
		a.sound.PlayToggle(pause)
	case ActionReset:
		w.Clock.Reset()
	case ActionAdd:
		w.Clock.AddTime(a.nudge)
	case ActionRewind:
		w.Clock.AddTime(-a.nudge)
	case ActionSet:
		w.Clock.SetTime(a.setValue)
	default:
		return true
	}

	log.Printf("action %s on %q: %s", act, w.Name, w.Clock.String())
	a.resync()
	return true
}

// Update plays a tick when the selected running watch crosses a whole second.
// Returns whether a tick was played.
func (a *App) Update() bool {
	ticked := false
	for i, w := range a.Watches {
		whole := math.Floor(w.Clock.Time())
		if whole > w.lastWhole && i == a.Selected && !w.Clock.IsPaused() {
			a.sound.PlayTick()
			ticked = true
		}
		w.lastWhole = whole
	}
	return ticked
}

// resync forgets crossings caused by jumps so they do not tick
func (a *App) resync() {
	for _, w := range a.Watches {
		w.lastWhole = math.Floor(w.Clock.Time())
	}
}
