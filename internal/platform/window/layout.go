package window

import (
	"github.com/vovakirdan/duckshoot/internal/core"
	"github.com/vovakirdan/duckshoot/internal/games/duckhunt"
)

// Pixel geometry of the window chrome.
const (
	barHeight    = 30
	buttonW      = 70
	buttonH      = 20
	buttonGap    = 10
	dialogW      = 300
	dialogH      = 120
	okW          = 80
	okH          = 24
	glyphW       = 6 // ebitenutil debug font cell
	glyphH       = 16
	labelSpacing = 20
)

// layout places the control bar above the canvas and the dialog in the middle of it.
type layout struct {
	canvas  core.Rect
	buttons []core.Rect
	labelX  int
	dialog  core.Rect
	ok      core.Rect
}

func newLayout(canvasW, canvasH, buttons int) layout {
	l := layout{canvas: core.NewRect(0, barHeight, canvasW, canvasH)}

	x := buttonGap
	y := (barHeight - buttonH) / 2
	for range buttons {
		l.buttons = append(l.buttons, core.NewRect(x, y, buttonW, buttonH))
		x += buttonW + buttonGap
	}
	l.labelX = x + buttonGap

	dx := l.canvas.X + (canvasW-dialogW)/2
	dy := l.canvas.Y + (canvasH-dialogH)/2
	l.dialog = core.NewRect(dx, dy, dialogW, dialogH)
	l.ok = core.NewRect(dx+(dialogW-okW)/2, dy+dialogH-okH-14, okW, okH)

	return l
}

// Size returns the logical window size.
func (l layout) Size() (int, int) {
	return l.canvas.W, l.canvas.Bottom()
}

// click resolves a press at window pixel (x, y) into frame input.
// An open dialog swallows every press except one on its button.
func (l layout) click(frame *core.InputFrame, x, y int, bar duckhunt.ControlBar, dialog duckhunt.Dialog) {
	if dialog.Open {
		if l.ok.Contains(x, y) {
			frame.Set(core.ActionConfirm)
		}
		return
	}

	for i, r := range l.buttons {
		if i >= len(bar.Buttons) || !r.Contains(x, y) {
			continue
		}
		if b := bar.Buttons[i]; b.Enabled {
			frame.Set(b.Action)
		}
		return
	}

	if l.canvas.Contains(x, y) {
		frame.Click(x-l.canvas.X, y-l.canvas.Y)
	}
}

// centeredText returns the top-left pixel for text centered in r.
func centeredText(r core.Rect, text string) (int, int) {
	return r.X + (r.W-len(text)*glyphW)/2, r.Y + (r.H-glyphH)/2
}
