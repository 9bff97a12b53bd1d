// Package raster draws session snapshots into images with gg. The frame
// command and the terminal screenshot key use it to export PNG files.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders/sim"
)

// Snapshotter is implemented by games that expose their world for drawing.
type Snapshotter interface {
	Snapshot() invaders.Snapshot
}

// Palette
var (
	Background   = color.RGBA{8, 8, 20, 255}
	PlayerColor  = color.RGBA{0, 230, 64, 255}
	ShieldColor  = color.RGBA{40, 180, 40, 255}
	FriendlyShot = color.RGBA{255, 240, 90, 255}
	EnemyShot    = color.RGBA{255, 70, 70, 255}
	BossColor    = color.RGBA{220, 30, 30, 255}
	BossBarColor = color.RGBA{255, 200, 0, 255}
	BlastColor   = color.RGBA{255, 150, 30, 255}
	TextColor    = color.RGBA{235, 235, 235, 255}
)

// bandColors shades the swarm bands of the shared palette.
var bandColors = map[core.Color]color.RGBA{
	core.ColorAlienTop: {200, 80, 220, 255},
	core.ColorAlienMid: {60, 200, 230, 255},
	core.ColorAlienLow: {90, 220, 90, 255},
}

// RowColor returns the color of a swarm row.
func RowColor(row int) color.RGBA {
	return bandColors[core.AlienRowColor(row)]
}

const (
	defaultWidth  = 800
	defaultHeight = 600
)

// Render draws a snapshot at the field's own size, one pixel per world unit.
func Render(snap invaders.Snapshot) image.Image {
	w, h := int(math.Ceil(snap.Field.W)), int(math.Ceil(snap.Field.H))
	if w <= 0 || h <= 0 {
		w, h = defaultWidth, defaultHeight
	}

	dc := gg.NewContext(w, h)
	dc.SetColor(Background)
	dc.Clear()

	drawShields(dc, snap.Snapshot)
	drawFormation(dc, snap.Snapshot)
	drawProjectiles(dc, snap.Snapshot)
	drawPlayer(dc, snap.Player)
	drawExplosions(dc, snap.Snapshot)
	drawHUD(dc, snap)

	return dc.Image()
}

// SavePNG renders a snapshot and writes it to path.
func SavePNG(path string, snap invaders.Snapshot) error {
	if err := gg.SavePNG(path, Render(snap)); err != nil {
		return fmt.Errorf("raster: cannot save %s: %w", path, err)
	}
	return nil
}

func fillRect(dc *gg.Context, r sim.Rect, c color.Color) {
	dc.SetColor(c)
	dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	dc.Fill()
}

func drawShields(dc *gg.Context, s sim.Snapshot) {
	for _, b := range s.Blocks {
		if b.Active {
			fillRect(dc, b.Rect, ShieldColor)
		}
	}
}

func drawFormation(dc *gg.Context, s sim.Snapshot) {
	if s.Boss != nil {
		drawBoss(dc, *s.Boss)
		return
	}
	for _, e := range s.Enemies {
		if !e.Active {
			continue
		}
		c := RowColor(e.Row)
		r := e.Rect
		// Body plus two legs that swap with the animation frame.
		fillRect(dc, sim.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H * 0.7}, c)
		leg := r.W / 5
		inset := 0.0
		if s.SwarmFrame {
			inset = leg
		}
		fillRect(dc, sim.Rect{X: r.X + inset, Y: r.Y + r.H*0.7, W: leg, H: r.H * 0.3}, c)
		fillRect(dc, sim.Rect{X: r.Right() - leg - inset, Y: r.Y + r.H*0.7, W: leg, H: r.H * 0.3}, c)
	}
}

func drawBoss(dc *gg.Context, b sim.BossView) {
	if !b.Active {
		return
	}
	fillRect(dc, b.Rect, BossColor)
	if b.MaxHealth > 0 {
		frac := float64(b.Health) / float64(b.MaxHealth)
		fillRect(dc, sim.Rect{X: b.Rect.X, Y: b.Rect.Y - 8, W: b.Rect.W * frac, H: 4}, BossBarColor)
	}
}

func drawProjectiles(dc *gg.Context, s sim.Snapshot) {
	for _, p := range s.Projectiles {
		c := EnemyShot
		if p.Friendly {
			c = FriendlyShot
		}
		fillRect(dc, p.Rect, c)
	}
}

func drawPlayer(dc *gg.Context, p sim.PlayerView) {
	if p.W <= 0 || p.H <= 0 {
		return
	}
	dc.SetColor(PlayerColor)
	dc.DrawRectangle(p.X, p.Y+p.H/2, p.W, p.H/2)
	dc.Fill()
	dc.MoveTo(p.X+p.W/2, p.Y)
	dc.LineTo(p.X+p.W*0.7, p.Y+p.H/2)
	dc.LineTo(p.X+p.W*0.3, p.Y+p.H/2)
	dc.ClosePath()
	dc.Fill()
}

func drawExplosions(dc *gg.Context, s sim.Snapshot) {
	for _, e := range s.Explosions {
		// Shrinks as the animation plays out.
		radius := s.ExplosionSize / 2 * float64(sim.ExplosionFrames-e.Frame) / sim.ExplosionFrames
		dc.SetColor(BlastColor)
		dc.DrawCircle(e.X, e.Y, max(radius, 1))
		dc.Fill()
	}
}

func drawHUD(dc *gg.Context, snap invaders.Snapshot) {
	dc.SetColor(TextColor)
	dc.DrawString(fmt.Sprintf("SCORE %d", snap.Player.Score), 8, 16)
	dc.DrawStringAnchored(fmt.Sprintf("LEVEL %d", snap.Level), float64(dc.Width())/2, 16, 0.5, 0)
	dc.DrawStringAnchored(fmt.Sprintf("HI %d", snap.HighScore), float64(dc.Width())-8, 16, 1, 0)
	dc.DrawString(fmt.Sprintf("LIVES %d", snap.Player.Health), 8, float64(dc.Height())-8)

	var banner string
	switch snap.Phase {
	case invaders.StatePaused:
		banner = "PAUSED"
	case invaders.StateGameOver:
		banner = "GAME OVER"
	case invaders.StateWon:
		banner = "YOU WIN!"
	}
	if banner != "" {
		dc.DrawStringAnchored(banner, float64(dc.Width())/2, float64(dc.Height())/2, 0.5, 0.5)
	}
}
