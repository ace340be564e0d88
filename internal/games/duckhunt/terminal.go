package duckhunt

import (
	"fmt"

	"github.com/vovakirdan/duckshoot/internal/core"
)

// Render draws the control bar, the rasterized canvas and the dialog onto a character screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	bar := g.Controls()
	g.layout = newLayout(dst.Width(), dst.Height(), bar, g.shell.dialog)

	if g.layout.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	g.renderBar(dst, bar)

	canvasW, canvasH := g.CanvasSize()
	Draw(g.world, g.layout.screenCanvas(dst, canvasW, canvasH))

	switch {
	case g.shell.dialog.Open:
		g.renderDialog(dst)
	case g.shell.phase == PhaseIdle:
		g.renderHint(dst, "Click Start or press S to play")
	}
}

func (g *Game) renderBar(dst *core.Screen, bar ControlBar) {
	for _, slot := range g.layout.buttons {
		b := bar.Buttons[slot.index]
		fg := core.ColorWhite
		if !b.Enabled {
			fg = core.ColorDimmed
		}
		dst.DrawTextWithColor(slot.rect.X, slot.rect.Y, buttonText(b.Label), fg)
	}

	x := g.layout.labelX
	dst.DrawText(x, 0, bar.Score)
	x += len(bar.Score) + 3
	dst.DrawText(x, 0, bar.Missed)
	if bar.Pace != "" {
		x += len(bar.Missed) + 3
		dst.DrawTextWithColor(x, 0, bar.Pace, core.ColorDimmed)
	}

	help := "Q quit"
	dst.DrawTextWithColor(dst.Width()-len(help)-1, 0, help, core.ColorGray)
}

func (g *Game) renderDialog(dst *core.Screen) {
	d := g.layout.dialog
	dlg := g.shell.dialog

	dst.FillRect(d, core.ColorGray)
	dst.DrawBox(d)
	dst.DrawText(d.X+2, d.Y, " "+dlg.Title+" ")

	msgX := d.X + (d.W-len(dlg.Message))/2
	dst.DrawTextWithColor(msgX, d.Y+1, dlg.Message, core.ColorBlack)

	ok := g.layout.ok
	dst.DrawTextWithColor(ok.X, ok.Y, buttonText(dlg.Button), core.ColorButton)
}

func (g *Game) renderHint(dst *core.Screen, text string) {
	y := g.layout.canvas.Y + g.layout.canvas.H/2
	x := (dst.Width() - len(text)) / 2
	dst.DrawTextWithColor(x, y, text, core.ColorWhite)
}

// ScreenClick maps a press on the last rendered screen to the dialog button,
// a control bar button, or a shot at the canvas point under the cell.
// Clicking a cell that shows a duck aims at that duck.
func (g *Game) ScreenClick(frame *core.InputFrame, x, y int) {
	l := g.layout
	if l.tooSmall {
		return
	}

	if g.shell.dialog.Open {
		if l.ok.Contains(x, y) {
			frame.Set(core.ActionConfirm)
		}
		return
	}

	if i := l.buttonAt(x, y); i >= 0 {
		b := g.Controls().Buttons[i]
		if b.Enabled {
			frame.Set(b.Action)
		}
		return
	}

	canvasW, canvasH := g.CanvasSize()
	if p, ok := l.canvasPoint(g.world, canvasW, canvasH, x, y); ok {
		frame.Click(p.X, p.Y)
	}
}
