package duckhunt

import (
	"math/rand"

	"github.com/vovakirdan/duckshoot/internal/config"
	"github.com/vovakirdan/duckshoot/internal/core"
)

// Duck is a target floating up from the bottom of the canvas.
// X and Y are the top-left corner in canvas pixels.
type Duck struct {
	X, Y  int
	W, H  int
	Speed int // Pixels moved up per simulation tick
	Color core.RGB
}

// newDuck creates a duck just below the bottom edge at a random column.
func newDuck(rng *rand.Rand, cfg config.DuckHuntConfig) Duck {
	span := cfg.Duck.MaxInitialSpeed - cfg.Duck.MinSpeed + 1
	return Duck{
		X:     rng.Intn(cfg.Canvas.Width - cfg.Duck.Width),
		Y:     cfg.Canvas.Height,
		W:     cfg.Duck.Width,
		H:     cfg.Duck.Height,
		Speed: cfg.Duck.MinSpeed + rng.Intn(span),
		Color: core.RGB{
			R: uint8(rng.Intn(256)),
			G: uint8(rng.Intn(256)),
			B: uint8(rng.Intn(256)),
		},
	}
}

// Bounds returns the duck's bounding box.
func (d Duck) Bounds() core.Rect {
	return core.NewRect(d.X, d.Y, d.W, d.H)
}

// Contains reports whether p hits the duck. Edges count as hits.
func (d Duck) Contains(p core.Point) bool {
	return d.Bounds().ContainsInclusive(p.X, p.Y)
}

// Escaped reports whether the duck is entirely above the top edge.
func (d Duck) Escaped() bool {
	return d.Y+d.H < 0
}

// Draw paints the body, eye and beak.
func (d Duck) Draw(c core.Canvas) {
	c.FillEllipse(d.Bounds(), d.Color)
	c.FillEllipse(core.NewRect(d.X+d.W-10, d.Y+5, 5, 5), core.ColorBlack)
	c.FillRect(core.NewRect(d.X+d.W-5, d.Y+d.H/2, 10, 5), core.ColorOrange)
}

// Tree is static scenery. X is the trunk's center line and Y the top of the trunk.
type Tree struct {
	X, Y int
}

// newTree places a tree in the lower part of a canvasW x canvasH canvas.
func newTree(rng *rand.Rand, canvasW, canvasH int) Tree {
	x := canvasW / 2
	if canvasW > 60 {
		x = rng.Intn(canvasW-60) + 30
	}
	return Tree{
		X: x,
		Y: canvasH - rng.Intn(100) - 50,
	}
}

// Draw paints the trunk and then the foliage over it.
func (t Tree) Draw(c core.Canvas) {
	c.FillRect(core.NewRect(t.X-10, t.Y, 20, 50), core.ColorBrown)
	c.FillEllipse(core.NewRect(t.X-40, t.Y-40, 80, 80), core.ColorForest)
}
