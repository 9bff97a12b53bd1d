package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// colorStyles gives each palette role its ANSI 256 shade.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:    lipgloss.NewStyle(),
	core.ColorAlienTop:   lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorAlienMid:   lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorAlienLow:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorPlayer:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorPlayerShot: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorAlienShot:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorShield:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorBoss:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBossLabel:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorExplosion:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorScore:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorHighScore:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorLives:      lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorRule:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorFrame:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorBanner:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Background and HUD text is mostly default colored.
			style, ok := colorStyles[startColor]
			if !ok || startColor == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
