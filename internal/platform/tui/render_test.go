package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestRenderScreenLayout(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawText(0, 0, "SCORE")
	s.DrawTextColor(0, 2, "HI", core.ColorHighScore)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, expected 3", len(lines))
	}
	if lines[0] != "SCORE     " {
		t.Errorf("line 0 = %q, expected plain text", lines[0])
	}
	if !strings.Contains(lines[2], "HI") {
		t.Errorf("line 2 = %q, expected HI", lines[2])
	}
}

func TestRenderScreenUnknownColor(t *testing.T) {
	s := core.NewScreen(4, 1)
	s.SetColor(0, 0, 'x', core.Color(250))

	if out := RenderScreen(s); out != "x   " {
		t.Errorf("RenderScreen = %q, expected %q", out, "x   ")
	}
}
