// Command stopwatch-demo is a terminal sandbox for the stopwatch package.
// Each row is an independent stopwatch over the same clock; the selected row
// can be paused, reset, nudged and set from the keyboard.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stopwatch"
	"github.com/lixenwraith/stopwatch/audio"
)

var (
	configFlag = flag.String("config", "", "Path to TOML config file")
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/stopwatch-demo.log")
	fpsFlag    = flag.Float64("fps", 0, "Frame rate override (0 uses config)")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := LoadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *fpsFlag > 0 {
		cfg.FrameRate = *fpsFlag
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(cfg *Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}

	defer screen.Fini()
	// Panic recovery: restore the terminal before printing the stack
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSTOPWATCH-DEMO CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	var sound SoundPlayer
	if cfg.Sound {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			// Non-fatal, the sandbox runs silent
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer sm.Cleanup()
			sound = sm
		}
	}

	app := NewApp(cfg, stopwatch.DefaultSource(), sound)
	help := helpLine(cfg.Bindings)
	log.Printf("started with %d watches at %.1f fps", len(app.Watches), cfg.FrameRate)

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(screen, events, done)

	frame := stopwatch.New()
	interval := 1.0 / cfg.FrameRate
	next := interval
	meter := fpsMeter{}

	for {
	drain:
		for {
			select {
			case ev := <-events:
				switch ev := ev.(type) {
				case *tcell.EventKey:
					if !app.Apply(keyAction(ev.Key(), ev.Rune(), cfg.Bindings)) {
						return nil
					}
				case *tcell.EventResize:
					screen.Sync()
				}
			default:
				break drain
			}
		}

		app.Update()
		draw(screen, app, meter.Frame(frame.Time()), help)

		frame.SleepUntil(next)
		next += interval
		// Fell behind: skip missed frames instead of bursting to catch up
		if now := frame.Time(); now > next {
			log.Printf("frame overrun by %.1fms", (now-next)*1000)
			next = now + interval
		}
	}
}

// eventSource is the part of tcell.Screen the input goroutine reads
type eventSource interface {
	PollEvent() tcell.Event
}

// pollEvents forwards input until the screen is finalized or done is closed
func pollEvents(src eventSource, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := src.PollEvent()
		if ev == nil {
			// Screen finalized
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// fpsMeter averages frame counts over one second windows of frame time
type fpsMeter struct {
	windowStart float64
	frames      int
	fps         float64
}

// Frame records a frame at time now and returns the latest rate
func (m *fpsMeter) Frame(now float64) float64 {
	m.frames++
	if span := now - m.windowStart; span >= 1 {
		m.fps = float64(m.frames) / span
		m.frames = 0
		m.windowStart = now
	}
	return m.fps
}
