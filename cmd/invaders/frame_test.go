package main

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/raster"
)

func newFrameGame(seed int64) *invaders.Game {
	g := invaders.New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func TestSimulateIsRepeatable(t *testing.T) {
	a := simulate(newFrameGame(7), 400)
	b := simulate(newFrameGame(7), 400)

	if a.Phase == invaders.StateMenu {
		t.Fatal("autopilot never left the menu")
	}
	if a.Tick == 0 {
		t.Error("no ticks simulated")
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("equal seeds produced different frames")
	}
}

func TestSimulateZeroTicks(t *testing.T) {
	snap := simulate(newFrameGame(1), 0)
	if snap.Phase != invaders.StateMenu {
		t.Errorf("phase = %q, expected menu", snap.Phase)
	}
}

func TestSimulateSavesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")
	if err := raster.SavePNG(out, simulate(newFrameGame(3), 120)); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
}

func TestPortOf(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{":23234", "23234"},
		{"0.0.0.0:2222", "2222"},
		{"[::1]:22", "22"},
		{"2222", "2222"},
	}
	for _, tt := range tests {
		if got := portOf(tt.addr); got != tt.want {
			t.Errorf("portOf(%q) = %q, want %q", tt.addr, got, tt.want)
		}
	}
}
