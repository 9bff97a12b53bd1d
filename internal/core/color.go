package core

// Color names what a screen cell shows. Front ends pick the actual shade:
// the terminal maps each role to an ANSI code, the raster renderer to RGBA.
type Color uint8

// Palette roles.
const (
	ColorDefault Color = iota

	// Swarm bands, top rows score the most.
	ColorAlienTop
	ColorAlienMid
	ColorAlienLow

	ColorPlayer
	ColorPlayerShot
	ColorAlienShot
	ColorShield
	ColorBoss
	ColorBossLabel
	ColorExplosion

	// HUD and overlays.
	ColorScore
	ColorHighScore
	ColorLives
	ColorRule
	ColorFrame
	ColorBanner
)

// alienBands colors the five swarm rows of the classic formation.
var alienBands = [...]Color{ColorAlienTop, ColorAlienMid, ColorAlienMid, ColorAlienLow, ColorAlienLow}

// AlienRowColor returns the band of a swarm row counted from the top.
// Formations taller than five rows repeat the bands.
func AlienRowColor(row int) Color {
	if row < 0 {
		row = -row
	}
	return alienBands[row%len(alienBands)]
}
