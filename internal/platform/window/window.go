// Package window runs Duck Hunt in a desktop window with Ebitengine.
// The canvas is drawn at its native pixel size under a one-line control bar.
package window

import (
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/duckshoot/internal/audio"
	"github.com/vovakirdan/duckshoot/internal/config"
	"github.com/vovakirdan/duckshoot/internal/core"
	"github.com/vovakirdan/duckshoot/internal/games/duckhunt"
	"github.com/vovakirdan/duckshoot/internal/platform/recorder"
	"github.com/vovakirdan/duckshoot/internal/storage"
)

var (
	barColor      = color.RGBA{40, 40, 40, 255}
	buttonColor   = color.RGBA{70, 70, 70, 255}
	disabledColor = color.RGBA{55, 55, 55, 255}
	dialogColor   = core.ColorGray
	shadeColor    = color.RGBA{0, 0, 0, 110}
)

// Options are the services a window uses. All fields are optional.
type Options struct {
	Store  *storage.Store
	Sound  *audio.SoundPlayer
	Logger *log.Logger
	Preset config.DifficultyPreset
	Player string
}

// Window adapts a Duck Hunt game to ebiten.Game.
type Window struct {
	game     *duckhunt.Game
	recorder *recorder.Recorder
	layout   layout
	frame    core.InputFrame
	state    core.GameState
}

// New resets the game and prepares a window for it.
func New(game *duckhunt.Game, cfg core.RuntimeConfig, opts Options) *Window {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	game.Reset(cfg)

	w, h := game.CanvasSize()
	return &Window{
		game: game,
		recorder: recorder.New(recorder.Options{
			GameID: game.ID(),
			Preset: opts.Preset,
			Player: opts.Player,
			Store:  opts.Store,
			Sound:  opts.Sound,
			Logger: opts.Logger,
		}),
		layout: newLayout(w, h, len(game.Controls().Buttons)),
		frame:  core.NewInputFrame(),
	}
}

// Update polls input and advances the game by one frame.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) || inpututil.IsKeyJustPressed(ebiten.KeyR) {
		w.frame.Set(core.ActionStart)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		w.frame.Set(core.ActionConfirm)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		w.Click(x, y)
	}

	w.step()
	return nil
}

// Click queues a press at window pixel (x, y) for the next frame.
func (w *Window) Click(x, y int) {
	w.layout.click(&w.frame, x, y, w.game.Controls(), w.game.Dialog())
}

func (w *Window) step() {
	result := w.game.Step(w.frame)
	w.state = result.State
	w.recorder.Record(result)
	w.frame.Clear()
}

// State returns the game state as of the last frame.
func (w *Window) State() core.GameState {
	return w.state
}

// Draw renders the control bar, the canvas and the dialog.
func (w *Window) Draw(screen *ebiten.Image) {
	fill := imageFill(screen)
	w.game.Draw(newImageCanvas(fill, w.layout.canvas))
	w.drawBar(screen, fill)

	dialog := w.game.Dialog()
	switch {
	case dialog.Open:
		w.drawDialog(screen, fill, dialog)
	case w.game.Phase() == duckhunt.PhaseIdle:
		hint := "Click Start or press S to play"
		x, y := centeredText(w.layout.canvas, hint)
		ebitenutil.DebugPrintAt(screen, hint, x, y)
	}
}

func (w *Window) drawBar(screen *ebiten.Image, fill fillFunc) {
	width, _ := w.layout.Size()
	fill(0, 0, float32(width), barHeight, barColor)

	bar := w.game.Controls()
	for i, r := range w.layout.buttons {
		if i >= len(bar.Buttons) {
			break
		}
		b := bar.Buttons[i]
		c := buttonColor
		if !b.Enabled {
			c = disabledColor
		}
		fill(float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c)
		x, y := centeredText(r, b.Label)
		ebitenutil.DebugPrintAt(screen, b.Label, x, y)
	}

	y := (barHeight - glyphH) / 2
	x := w.layout.labelX
	ebitenutil.DebugPrintAt(screen, bar.Score, x, y)
	x += len(bar.Score)*glyphW + labelSpacing
	ebitenutil.DebugPrintAt(screen, bar.Missed, x, y)
	if bar.Pace != "" {
		x += len(bar.Missed)*glyphW + labelSpacing
		ebitenutil.DebugPrintAt(screen, bar.Pace, x, y)
	}
}

func (w *Window) drawDialog(screen *ebiten.Image, fill fillFunc, dialog duckhunt.Dialog) {
	c := w.layout.canvas
	fill(float32(c.X), float32(c.Y), float32(c.W), float32(c.H), shadeColor)

	d := w.layout.dialog
	fill(float32(d.X), float32(d.Y), float32(d.W), float32(d.H), dialogColor)
	ebitenutil.DebugPrintAt(screen, dialog.Title, d.X+10, d.Y+8)

	msgX, _ := centeredText(d, dialog.Message)
	ebitenutil.DebugPrintAt(screen, dialog.Message, msgX, d.Y+40)

	ok := w.layout.ok
	fill(float32(ok.X), float32(ok.Y), float32(ok.W), float32(ok.H), core.ColorButton)
	x, y := centeredText(ok, dialog.Button)
	ebitenutil.DebugPrintAt(screen, dialog.Button, x, y)
}

// Layout keeps the logical size fixed; ebiten scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.layout.Size()
}

// Run opens the window and blocks until it is closed.
func Run(game *duckhunt.Game, cfg core.RuntimeConfig, opts Options) error {
	w := New(game, cfg, opts)

	width, height := w.layout.Size()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(fmt.Sprintf("%s (%s)", game.Title(), game.Preset()))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	// Termination from Update ends RunGame with a nil error
	return ebiten.RunGame(w)
}
