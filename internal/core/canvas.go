package core

import "slices"

// Canvas is a pixel drawing surface addressed in canvas coordinates.
// Games draw onto a Canvas; platforms back it with a terminal raster or an image.
type Canvas interface {
	// Size returns the logical canvas size in pixels.
	Size() (w, h int)

	// Clear fills the whole canvas with a color.
	Clear(c RGB)

	// FillRect fills an axis-aligned rectangle.
	FillRect(r Rect, c RGB)

	// FillEllipse fills the ellipse inscribed in r.
	FillEllipse(r Rect, c RGB)
}

// ScreenCanvas rasterizes a pixel canvas onto a region of a character Screen.
// Each cell samples the canvas at its center, so shapes smaller than a cell are
// still painted into the cell that contains their center.
type ScreenCanvas struct {
	screen  *Screen
	region  Rect // Cells of the screen covered by the canvas
	canvasW int
	canvasH int
}

// NewScreenCanvas maps a canvasW x canvasH pixel canvas onto region of dst.
func NewScreenCanvas(dst *Screen, region Rect, canvasW, canvasH int) *ScreenCanvas {
	return &ScreenCanvas{
		screen:  dst,
		region:  region,
		canvasW: canvasW,
		canvasH: canvasH,
	}
}

// Size returns the logical canvas size in pixels.
func (sc *ScreenCanvas) Size() (int, int) {
	return sc.canvasW, sc.canvasH
}

// Clear paints every cell of the region.
func (sc *ScreenCanvas) Clear(c RGB) {
	sc.screen.FillRect(sc.region, c)
}

// FillRect paints the cells whose centers lie inside r.
func (sc *ScreenCanvas) FillRect(r Rect, c RGB) {
	sc.paint(sc.cells(r, func(px, py float64) bool {
		return px >= float64(r.X) && px < float64(r.Right()) &&
			py >= float64(r.Y) && py < float64(r.Bottom())
	}), c)
}

// FillEllipse paints the cells whose centers lie inside the ellipse inscribed in r.
func (sc *ScreenCanvas) FillEllipse(r Rect, c RGB) {
	sc.paint(sc.ellipseCells(r), c)
}

// EllipseCovers reports whether FillEllipse(r) paints screen cell (sx, sy).
func (sc *ScreenCanvas) EllipseCovers(r Rect, sx, sy int) bool {
	return slices.Contains(sc.ellipseCells(r), Point{X: sx - sc.region.X, Y: sy - sc.region.Y})
}

func (sc *ScreenCanvas) ellipseCells(r Rect) []Point {
	if r.W <= 0 || r.H <= 0 {
		return nil
	}
	cx := float64(r.X) + float64(r.W)/2
	cy := float64(r.Y) + float64(r.H)/2
	rx := float64(r.W) / 2
	ry := float64(r.H) / 2
	return sc.cells(r, func(px, py float64) bool {
		dx := (px - cx) / rx
		dy := (py - cy) / ry
		return dx*dx+dy*dy <= 1
	})
}

func (sc *ScreenCanvas) paint(cells []Point, c RGB) {
	for _, p := range cells {
		sc.screen.Paint(sc.region.X+p.X, sc.region.Y+p.Y, c)
	}
}

// cells returns the region-relative cells in the bounding box of r whose center
// satisfies inside. When no cell center is covered, the cell under the shape's
// center stands in for the shape.
func (sc *ScreenCanvas) cells(r Rect, inside func(px, py float64) bool) []Point {
	if sc.region.W <= 0 || sc.region.H <= 0 || sc.canvasW <= 0 || sc.canvasH <= 0 {
		return nil
	}

	x0, y0 := sc.cellAt(r.X, r.Y)
	x1, y1 := sc.cellAt(r.Right(), r.Bottom())

	var out []Point
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			if px, py := sc.cellCenter(cx, cy); inside(px, py) {
				out = append(out, Point{X: cx, Y: cy})
			}
		}
	}
	if len(out) > 0 {
		return out
	}

	mx, my := r.Center()
	if mx < 0 || mx >= sc.canvasW || my < 0 || my >= sc.canvasH {
		return nil
	}
	cx, cy := sc.cellAt(mx, my)
	return []Point{{X: cx, Y: cy}}
}

// cellAt returns the region-relative cell containing canvas pixel (px, py),
// clamped to the region.
func (sc *ScreenCanvas) cellAt(px, py int) (int, int) {
	cx := floorDiv(px*sc.region.W, sc.canvasW)
	cy := floorDiv(py*sc.region.H, sc.canvasH)
	return Clamp(cx, 0, sc.region.W-1), Clamp(cy, 0, sc.region.H-1)
}

// cellCenter returns the canvas position sampled by a region-relative cell.
func (sc *ScreenCanvas) cellCenter(cx, cy int) (float64, float64) {
	px := (float64(cx) + 0.5) * float64(sc.canvasW) / float64(sc.region.W)
	py := (float64(cy) + 0.5) * float64(sc.canvasH) / float64(sc.region.H)
	return px, py
}

// CanvasPoint converts a screen cell to the canvas pixel at its center.
// Returns false when the cell lies outside the canvas region.
func (sc *ScreenCanvas) CanvasPoint(sx, sy int) (Point, bool) {
	if !sc.region.Contains(sx, sy) {
		return Point{}, false
	}
	px, py := sc.cellCenter(sx-sc.region.X, sy-sc.region.Y)
	return Point{X: int(px), Y: int(py)}, true
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
