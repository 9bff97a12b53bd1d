package invaders

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders/sim"
)

// Visual characters for rendering
const (
	EnemyGlyphA     = 'M'
	EnemyGlyphB     = 'W'
	ShotChar        = '|'
	ShieldChar      = '#'
	SeparatorChar   = '─'
	minScreenWidth  = 40
	minScreenHeight = 16
)

// PlayerSprites holds one sprite per idle animation frame.
var PlayerSprites = [sim.PlayerFrames]string{"<=^=>", "<-^->", "<=^=>", "<~^~>"}

// ExplosionGlyphs holds one glyph per explosion frame, largest first.
var ExplosionGlyphs = [sim.ExplosionFrames]rune{'*', '+', '.'}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenWidth || dst.Height() < minScreenHeight {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenWidth, minScreenHeight))
		return
	}
	if g.world == nil {
		return
	}

	snap := g.Snapshot()
	vp := fieldViewport(snap.Field, dst)

	g.renderHUD(dst, snap)
	renderShields(dst, vp, snap.Snapshot)
	renderFormation(dst, vp, snap.Snapshot)
	renderProjectiles(dst, vp, snap.Snapshot)
	renderPlayer(dst, vp, snap.Player)
	renderExplosions(dst, vp, snap.Snapshot)
	g.renderOverlay(dst, snap)
}

// fieldViewport maps the field onto every row between the HUD and the
// status line.
func fieldViewport(f sim.Field, dst *core.Screen) core.Viewport {
	vp := core.NewViewport(f.W, f.H, dst.Width(), dst.Height()-3)
	vp.OffsetY = 2
	return vp
}

// renderHUD draws score, level and high score on top and lives below.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextColor(1, 0, fmt.Sprintf("SCORE %d", snap.Player.Score), core.ColorScore)

	levelText := fmt.Sprintf("LEVEL %d/%d", snap.Level, snap.Levels)
	if snap.Mode == ModeEndless {
		levelText = fmt.Sprintf("LEVEL %d", snap.Level)
	}
	dst.DrawTextCentered(0, levelText)

	hiText := fmt.Sprintf("HI %d", snap.HighScore)
	dst.DrawTextColor(dst.Width()-len(hiText)-1, 0, hiText, core.ColorHighScore)

	for x := range dst.Width() {
		dst.SetColor(x, 1, SeparatorChar, core.ColorRule)
	}

	lives := fmt.Sprintf("LIVES %s", strings.Repeat("♥", max(snap.Player.Health, 0)))
	dst.DrawTextColor(1, dst.Height()-1, lives, core.ColorLives)
}

func renderShields(dst *core.Screen, vp core.Viewport, s sim.Snapshot) {
	for _, b := range s.Blocks {
		if !b.Active {
			continue
		}
		dst.SetColor(vp.CellX(b.Rect.X), vp.CellY(b.Rect.Y), ShieldChar, core.ColorShield)
	}
}

func renderFormation(dst *core.Screen, vp core.Viewport, s sim.Snapshot) {
	if s.Boss != nil {
		renderBoss(dst, vp, *s.Boss)
		return
	}
	glyph := EnemyGlyphA
	if s.SwarmFrame {
		glyph = EnemyGlyphB
	}
	for _, e := range s.Enemies {
		if !e.Active {
			continue
		}
		r := vp.CellRect(e.Rect.X, e.Rect.Y, e.Rect.W, e.Rect.H)
		dst.DrawRectColor(r, glyph, core.AlienRowColor(e.Row))
	}
}

func renderBoss(dst *core.Screen, vp core.Viewport, b sim.BossView) {
	if !b.Active {
		return
	}
	r := vp.CellRect(b.Rect.X, b.Rect.Y, b.Rect.W, b.Rect.H)
	r.W = max(r.W, 3)
	r.H = max(r.H, 2)
	dst.DrawBoxColor(r, core.ColorBoss)

	label := fmt.Sprintf("BOSS HP:%d", b.Health)
	x := r.X + (r.W-utf8.RuneCountInString(label))/2
	dst.DrawTextColor(x, r.Y-1, label, core.ColorBossLabel)
}

func renderProjectiles(dst *core.Screen, vp core.Viewport, s sim.Snapshot) {
	for _, p := range s.Projectiles {
		color := core.ColorAlienShot
		if p.Friendly {
			color = core.ColorPlayerShot
		}
		dst.SetColor(vp.CellX(p.Rect.X+p.Rect.W/2), vp.CellY(p.Rect.Y), ShotChar, color)
	}
}

func renderPlayer(dst *core.Screen, vp core.Viewport, p sim.PlayerView) {
	sprite := PlayerSprites[p.Frame%sim.PlayerFrames]
	r := vp.CellRect(p.X, p.Y, p.W, p.H)
	x := r.X + (r.W-utf8.RuneCountInString(sprite))/2
	dst.DrawTextColor(x, r.Y, sprite, core.ColorPlayer)
}

func renderExplosions(dst *core.Screen, vp core.Viewport, s sim.Snapshot) {
	half := s.ExplosionSize / 2
	for _, e := range s.Explosions {
		glyph := ExplosionGlyphs[min(e.Frame, sim.ExplosionFrames-1)]
		r := vp.CellRect(e.X-half, e.Y-half, s.ExplosionSize, s.ExplosionSize)
		dst.DrawRectColor(r, glyph, core.ColorExplosion)
	}
}

// renderOverlay draws the session state messages.
func (g *Game) renderOverlay(dst *core.Screen, snap Snapshot) {
	switch snap.Phase {
	case StateMenu:
		drawCenteredBox(dst, g.Title(), "ENTER start  ←/→ move  SPACE fire")
	case StatePlaying:
		dst.DrawTextColor(dst.Width()-22, dst.Height()-1, "P pause  Q quit", core.ColorRule)
	case StatePaused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case StateGameOver:
		drawCenteredBox(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  R restart  ENTER menu", snap.Player.Score))
	case StateWon:
		drawCenteredBox(dst, "YOU WIN!",
			fmt.Sprintf("Final Score: %d  |  R restart  ENTER menu", snap.Player.Score))
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	titleW := utf8.RuneCountInString(title)
	subW := utf8.RuneCountInString(subtitle)

	boxW := min(max(titleW, subW)+4, dst.Width())
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBoxColor(box, core.ColorFrame)

	dst.DrawTextColor(boxX+(boxW-titleW)/2, boxY+1, title, core.ColorBanner)
	dst.DrawText(boxX+(boxW-subW)/2, boxY+3, subtitle)
}
