package duckhunt

import "github.com/vovakirdan/duckshoot/internal/core"

// Minimum terminal size for the game to be drawn.
const (
	minScreenW = 40
	minScreenH = 8
)

// buttonSlot is where a control bar button sits on the screen.
type buttonSlot struct {
	rect  core.Rect
	index int
}

// layout positions the control bar, canvas and dialog on a character screen.
// Row 0 is the control bar; the canvas fills the rows below it.
type layout struct {
	width, height int
	tooSmall      bool
	buttons       []buttonSlot
	labelX        int
	canvas        core.Rect
	dialog        core.Rect
	ok            core.Rect
}

func newLayout(width, height int, bar ControlBar, dialog Dialog) layout {
	l := layout{
		width:    width,
		height:   height,
		tooSmall: width < minScreenW || height < minScreenH,
	}
	if l.tooSmall {
		return l
	}

	x := 1
	for i, b := range bar.Buttons {
		w := len(buttonText(b.Label))
		l.buttons = append(l.buttons, buttonSlot{rect: core.NewRect(x, 0, w, 1), index: i})
		x += w + 1
	}
	l.labelX = x + 2
	l.canvas = core.NewRect(0, 1, width, height-1)

	dw := core.Clamp(len(dialog.Message)+6, 30, width-2)
	dh := 5
	dx := (width - dw) / 2
	dy := l.canvas.Y + (l.canvas.H-dh)/2
	l.dialog = core.NewRect(dx, dy, dw, dh)

	okText := buttonText(dialog.Button)
	l.ok = core.NewRect(dx+(dw-len(okText))/2, dy+3, len(okText), 1)

	return l
}

func buttonText(label string) string {
	return "[ " + label + " ]"
}

// screenCanvas returns the canvas raster for dst.
func (l layout) screenCanvas(dst *core.Screen, canvasW, canvasH int) *core.ScreenCanvas {
	return core.NewScreenCanvas(dst, l.canvas, canvasW, canvasH)
}

// canvasPoint maps screen cell (x, y) to the canvas pixel it shows.
// A cell painted by a duck maps to a point inside that duck, newest first,
// so a duck drawn only through its center cell can still be hit.
func (l layout) canvasPoint(w *World, canvasW, canvasH, x, y int) (core.Point, bool) {
	sc := l.screenCanvas(nil, canvasW, canvasH)
	p, ok := sc.CanvasPoint(x, y)
	if !ok {
		return p, false
	}
	for i := len(w.Ducks) - 1; i >= 0; i-- {
		b := w.Ducks[i].Bounds()
		if sc.EllipseCovers(b, x, y) {
			return core.Point{
				X: core.Clamp(p.X, b.X, b.Right()-1),
				Y: core.Clamp(p.Y, b.Y, b.Bottom()-1),
			}, true
		}
	}
	return p, true
}

// buttonAt returns the index of the button under cell (x, y), or -1.
func (l layout) buttonAt(x, y int) int {
	for _, slot := range l.buttons {
		if slot.rect.Contains(x, y) {
			return slot.index
		}
	}
	return -1
}
