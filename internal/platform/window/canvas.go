package window

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/duckshoot/internal/core"
)

// fillFunc paints an axis-aligned pixel rectangle on the destination.
type fillFunc func(x, y, w, h float32, c color.Color)

// imageFill fills rectangles on an ebiten image.
func imageFill(dst *ebiten.Image) fillFunc {
	return func(x, y, w, h float32, c color.Color) {
		vector.DrawFilledRect(dst, x, y, w, h, c, false)
	}
}

// imageCanvas draws the game canvas into a region of the window at 1:1 scale.
// Shapes are clipped to the region so nothing bleeds into the control bar.
type imageCanvas struct {
	fill   fillFunc
	region core.Rect
}

func newImageCanvas(fill fillFunc, region core.Rect) *imageCanvas {
	return &imageCanvas{fill: fill, region: region}
}

func (ic *imageCanvas) Size() (int, int) {
	return ic.region.W, ic.region.H
}

func (ic *imageCanvas) Clear(c core.RGB) {
	ic.FillRect(core.NewRect(0, 0, ic.region.W, ic.region.H), c)
}

func (ic *imageCanvas) FillRect(r core.Rect, c core.RGB) {
	clipped, ok := clip(r, ic.region.W, ic.region.H)
	if !ok {
		return
	}
	ic.fill(
		float32(ic.region.X+clipped.X), float32(ic.region.Y+clipped.Y),
		float32(clipped.W), float32(clipped.H), c,
	)
}

// FillEllipse draws the ellipse as one-pixel rows.
func (ic *imageCanvas) FillEllipse(r core.Rect, c core.RGB) {
	for _, s := range ellipseSpans(r) {
		ic.FillRect(s, c)
	}
}

// clip intersects r with the canvas bounds.
func clip(r core.Rect, w, h int) (core.Rect, bool) {
	x0 := core.Max(r.X, 0)
	y0 := core.Max(r.Y, 0)
	x1 := core.Min(r.Right(), w)
	y1 := core.Min(r.Bottom(), h)
	if x0 >= x1 || y0 >= y1 {
		return core.Rect{}, false
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0), true
}

// ellipseSpans returns the horizontal pixel runs covering the ellipse inscribed in r.
// A row is covered where its center line crosses the ellipse.
func ellipseSpans(r core.Rect) []core.Rect {
	if r.W <= 0 || r.H <= 0 {
		return nil
	}
	cx := float64(r.X) + float64(r.W)/2
	cy := float64(r.Y) + float64(r.H)/2
	rx := float64(r.W) / 2
	ry := float64(r.H) / 2

	spans := make([]core.Rect, 0, r.H)
	for y := r.Y; y < r.Bottom(); y++ {
		dy := (float64(y) + 0.5 - cy) / ry
		if dy*dy > 1 {
			continue
		}
		half := rx * math.Sqrt(1-dy*dy)
		x0 := int(math.Round(cx - half))
		x1 := int(math.Round(cx + half))
		if x1 <= x0 {
			x1 = x0 + 1
		}
		spans = append(spans, core.NewRect(x0, y, x1-x0, 1))
	}
	return spans
}
