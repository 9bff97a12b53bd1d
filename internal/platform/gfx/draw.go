package gfx

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders/sim"
	"github.com/vovakirdan/tui-invaders/internal/platform/raster"
)

// debugCharW is the width of one ebitenutil debug glyph.
const debugCharW = 6

// Draw paints the current snapshot. Colors come from the PNG exporter so a
// screenshot and the window look the same.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(raster.Background)
	snap := g.session.Snapshot()

	for _, b := range snap.Blocks {
		if b.Active {
			fillRect(screen, b.Rect, raster.ShieldColor)
		}
	}
	drawFormation(screen, snap.Snapshot)
	for _, p := range snap.Projectiles {
		c := raster.EnemyShot
		if p.Friendly {
			c = raster.FriendlyShot
		}
		fillRect(screen, p.Rect, c)
	}
	drawPlayer(screen, snap.Player)
	for _, e := range snap.Explosions {
		radius := snap.ExplosionSize / 2 * float64(sim.ExplosionFrames-e.Frame) / sim.ExplosionFrames
		vector.DrawFilledCircle(screen, float32(e.X), float32(e.Y), float32(max(radius, 1)), raster.BlastColor, true)
	}

	drawHUD(screen, snap)
}

func fillRect(dst *ebiten.Image, r sim.Rect, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func drawFormation(dst *ebiten.Image, s sim.Snapshot) {
	if s.Boss != nil {
		b := *s.Boss
		if !b.Active {
			return
		}
		fillRect(dst, b.Rect, raster.BossColor)
		if b.MaxHealth > 0 {
			w := b.Rect.W * float64(b.Health) / float64(b.MaxHealth)
			fillRect(dst, sim.Rect{X: b.Rect.X, Y: b.Rect.Y - 8, W: w, H: 4}, raster.BossBarColor)
		}
		return
	}

	for _, e := range s.Enemies {
		if !e.Active {
			continue
		}
		r := e.Rect
		c := raster.RowColor(e.Row)
		fillRect(dst, sim.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H * 0.7}, c)
		leg := r.W / 5
		inset := 0.0
		if s.SwarmFrame {
			inset = leg
		}
		fillRect(dst, sim.Rect{X: r.X + inset, Y: r.Y + r.H*0.7, W: leg, H: r.H * 0.3}, c)
		fillRect(dst, sim.Rect{X: r.Right() - leg - inset, Y: r.Y + r.H*0.7, W: leg, H: r.H * 0.3}, c)
	}
}

func drawPlayer(dst *ebiten.Image, p sim.PlayerView) {
	fillRect(dst, sim.Rect{X: p.X, Y: p.Y + p.H/2, W: p.W, H: p.H / 2}, raster.PlayerColor)
	fillRect(dst, sim.Rect{X: p.X + p.W*0.4, Y: p.Y, W: p.W * 0.2, H: p.H / 2}, raster.PlayerColor)
}

// centered prints text horizontally centered at row y.
func centered(dst *ebiten.Image, text string, y int) {
	x := (dst.Bounds().Dx() - len(text)*debugCharW) / 2
	ebitenutil.DebugPrintAt(dst, text, x, y)
}

func drawHUD(dst *ebiten.Image, snap invaders.Snapshot) {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()

	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("SCORE %d", snap.Player.Score), 8, 4)
	level := fmt.Sprintf("LEVEL %d/%d", snap.Level, snap.Levels)
	if snap.Mode == invaders.ModeEndless {
		level = fmt.Sprintf("LEVEL %d", snap.Level)
	}
	centered(dst, level, 4)
	hi := fmt.Sprintf("HI %d", snap.HighScore)
	ebitenutil.DebugPrintAt(dst, hi, w-8-len(hi)*debugCharW, 4)
	ebitenutil.DebugPrintAt(dst, "LIVES "+strings.Repeat("* ", max(snap.Player.Health, 0)), 8, h-20)

	mid := h / 2
	switch snap.Phase {
	case invaders.StateMenu:
		centered(dst, "S P A C E   I N V A D E R S", mid-30)
		centered(dst, "ENTER start   ARROWS move   SPACE fire   ESC quit", mid)
	case invaders.StatePaused:
		centered(dst, "PAUSED", mid-10)
		centered(dst, "P resume   ESC menu", mid+10)
	case invaders.StateGameOver:
		centered(dst, "GAME OVER", mid-10)
		centered(dst, fmt.Sprintf("Score %d   R restart   ENTER menu", snap.Player.Score), mid+10)
	case invaders.StateWon:
		centered(dst, "YOU WIN!", mid-10)
		centered(dst, fmt.Sprintf("Final score %d   R restart   ENTER menu", snap.Player.Score), mid+10)
	}
}
