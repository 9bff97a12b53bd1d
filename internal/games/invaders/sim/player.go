package sim

// Intent is the horizontal movement the player asks for this tick.
type Intent int

const (
	IntentNone Intent = iota
	IntentLeft
	IntentRight
)

// PlayerFrames is the number of frames in the ship's idle animation.
const PlayerFrames = 4

// Player is the ship at the bottom of the field.
type Player struct {
	X, Y     float64
	W, H     float64
	VX       float64
	Cooldown float64 // seconds until the next shot is allowed
	Health   int
	Score    int
	Frame    int // 0..PlayerFrames-1, ping-pong

	frameDir  int
	animTimer float64
	cfg       PlayerConfig
}

// NewPlayer creates a ship centered on a field of width fieldW.
func NewPlayer(cfg PlayerConfig, fieldW float64) *Player {
	p := &Player{cfg: cfg}
	p.Reset(fieldW)
	return p
}

// Reset restores full health, zero score and the starting position.
func (p *Player) Reset(fieldW float64) {
	p.X = fieldW / 2
	p.Y = p.cfg.Y
	p.W = p.cfg.Width
	p.H = p.cfg.Height
	p.VX = 0
	p.Cooldown = 0
	p.Health = p.cfg.Health
	p.Score = 0
	p.Frame = 0
	p.frameDir = 1
	p.animTimer = 0
}

// SetIntent sets the horizontal velocity. Position changes on Advance.
func (p *Player) SetIntent(in Intent) {
	if p == nil {
		return
	}
	switch in {
	case IntentLeft:
		p.VX = -p.cfg.Speed
	case IntentRight:
		p.VX = p.cfg.Speed
	default:
		p.VX = 0
	}
}

// Advance moves the ship, keeps it inside [0, fieldW-W], runs down the
// shot cooldown and steps the idle animation.
func (p *Player) Advance(dt, fieldW float64) {
	if p == nil {
		return
	}
	p.X += p.VX * dt
	if p.X < 0 {
		p.X = 0
	}
	if p.X > fieldW-p.W {
		p.X = fieldW - p.W
	}

	if p.Cooldown > 0 {
		p.Cooldown -= dt
		if p.Cooldown < 0 {
			p.Cooldown = 0
		}
	}

	p.animTimer += dt
	if p.cfg.AnimStep > 0 && p.animTimer >= p.cfg.AnimStep {
		p.animTimer = 0
		p.Frame += p.frameDir
		if p.Frame >= PlayerFrames-1 {
			p.Frame = PlayerFrames - 1
			p.frameDir = -1
		} else if p.Frame <= 0 {
			p.Frame = 0
			p.frameDir = 1
		}
	}
}

// TryShoot fires one projectile from the middle of the ship's top edge when
// the cooldown has expired. The cooldown restarts even if the pool dropped
// the shot.
func (p *Player) TryShoot(ps *Projectiles) bool {
	if p == nil || ps == nil || p.Cooldown > 0 {
		return false
	}
	x := p.X + p.W/2 - ps.Width()/2
	ps.Fire(x, p.Y, HeadingUp)
	p.Cooldown = p.cfg.Cooldown
	return true
}

// Rect returns the ship hitbox.
func (p *Player) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// Alive reports whether the ship has health left.
func (p *Player) Alive() bool {
	return p.Health > 0
}
