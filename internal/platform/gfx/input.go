package gfx

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Held keys repeat every tick; the rest fire once per press.
var (
	heldKeys = map[ebiten.Key]core.Action{
		ebiten.KeyArrowLeft:  core.ActionLeft,
		ebiten.KeyA:          core.ActionLeft,
		ebiten.KeyArrowRight: core.ActionRight,
		ebiten.KeyD:          core.ActionRight,
		ebiten.KeySpace:      core.ActionFire,
		ebiten.KeyArrowUp:    core.ActionFire,
	}
	pressedKeys = map[ebiten.Key]core.Action{
		ebiten.KeyEnter:  core.ActionConfirm,
		ebiten.KeyP:      core.ActionPause,
		ebiten.KeyR:      core.ActionRestart,
		ebiten.KeyEscape: core.ActionBack,
		ebiten.KeyQ:      core.ActionQuit,
	}
)

// pollInput reads this tick's keyboard state.
func pollInput() core.InputFrame {
	in := core.NewInputFrame()
	for k, a := range heldKeys {
		if ebiten.IsKeyPressed(k) {
			in.Set(a)
		}
	}
	for k, a := range pressedKeys {
		if inpututil.IsKeyJustPressed(k) {
			in.Set(a)
		}
	}
	return in
}
