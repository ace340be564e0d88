package duckhunt

import (
	"slices"

	"github.com/vovakirdan/duckshoot/internal/core"
)

// Shoot resolves a click at p. Ducks are tested newest first and at most one is hit.
// Clicks while the world is not running are ignored.
func Shoot(w *World, p core.Point) bool {
	if !w.Running {
		return false
	}
	for i := len(w.Ducks) - 1; i >= 0; i-- {
		if w.Ducks[i].Contains(p) {
			w.Ducks = slices.Delete(w.Ducks, i, i+1)
			w.Score++
			return true
		}
	}
	return false
}
