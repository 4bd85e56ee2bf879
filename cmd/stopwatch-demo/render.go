package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
)

var (
	styleTitle    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleRow      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleSelected = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen)
	stylePaused   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleHelp     = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// formatClock renders logical seconds as [-]mm:ss.mmm
func formatClock(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return fmt.Sprintf("%v", seconds)
	}
	sign := ""
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	ms := int64(math.Round(seconds * 1000))
	return fmt.Sprintf("%s%02d:%02d.%03d", sign, ms/60000, ms/1000%60, ms%1000)
}

// draw renders the watch list, the measured frame rate and the key help
func draw(screen tcell.Screen, app *App, fps float64, help string) {
	screen.Clear()
	width, height := screen.Size()

	drawText(screen, 0, 0, width, styleTitle, fmt.Sprintf("stopwatch sandbox  %5.1f fps", fps))

	for i, w := range app.Watches {
		y := 2 + i
		if y >= height-1 {
			break
		}

		style := styleRow
		marker := "  "
		if i == app.Selected {
			style = styleSelected
			marker = "> "
		}
		line := fmt.Sprintf("%s%-10s x%-8.4g %s", marker, w.Name, w.Clock.Speed(), formatClock(w.Clock.Time()))
		x := drawText(screen, 0, y, width, style, line)
		if w.Clock.IsPaused() {
			drawText(screen, x+1, y, width, stylePaused, "[PAUSED]")
		}
	}

	if height > 0 {
		drawText(screen, 0, height-1, width, styleHelp, help)
	}
	screen.Show()
}

// drawText writes s left to right, clipped at maxX. Returns the column after the last rune.
func drawText(screen tcell.Screen, x, y, maxX int, style tcell.Style, s string) int {
	for _, r := range s {
		if x >= maxX {
			break
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
