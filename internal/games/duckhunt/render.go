package duckhunt

import "github.com/vovakirdan/duckshoot/internal/core"

// SkyColor is the canvas background.
var SkyColor = core.ColorBlue

// Draw paints the world onto c: sky, then trees, then ducks in spawn order.
func Draw(w *World, c core.Canvas) {
	c.Clear(SkyColor)
	for _, t := range w.Trees {
		t.Draw(c)
	}
	for _, d := range w.Ducks {
		d.Draw(c)
	}
}
