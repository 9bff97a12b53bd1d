package raster

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

func playingSnapshot(t *testing.T) invaders.Snapshot {
	t.Helper()
	g := invaders.New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7})
	g.Step(core.NewInputFrame(core.ActionConfirm))
	for range 10 {
		g.Step(core.NewInputFrame())
	}
	return g.Snapshot()
}

func sameColor(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

func TestRenderUsesFieldSize(t *testing.T) {
	snap := playingSnapshot(t)
	img := Render(snap)

	b := img.Bounds()
	if b.Dx() != int(snap.Field.W) || b.Dy() != int(snap.Field.H) {
		t.Errorf("bounds = %dx%d, expected %vx%v", b.Dx(), b.Dy(), snap.Field.W, snap.Field.H)
	}
}

func TestRenderEmptySnapshot(t *testing.T) {
	img := Render(invaders.Snapshot{})
	b := img.Bounds()
	if b.Dx() != defaultWidth || b.Dy() != defaultHeight {
		t.Errorf("bounds = %dx%d, expected %dx%d", b.Dx(), b.Dy(), defaultWidth, defaultHeight)
	}
}

func TestRenderDrawsEntities(t *testing.T) {
	snap := playingSnapshot(t)
	img := Render(snap)

	p := snap.Player
	if got := img.At(int(p.X+p.W/2), int(p.Y+p.H*0.75)); !sameColor(got, PlayerColor) {
		t.Errorf("player pixel = %v, expected %v", got, PlayerColor)
	}

	for _, b := range snap.Blocks {
		if !b.Active {
			continue
		}
		x, y := int(b.Rect.X+b.Rect.W/2), int(b.Rect.Y+b.Rect.H/2)
		if got := img.At(x, y); !sameColor(got, ShieldColor) {
			t.Errorf("shield pixel at (%d,%d) = %v, expected %v", x, y, got, ShieldColor)
		}
		break
	}

	if got := img.At(1, int(snap.Field.H/2)); !sameColor(got, Background) {
		t.Errorf("background pixel = %v, expected %v", got, Background)
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	snap := playingSnapshot(t)

	if err := SavePNG(path, snap); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != int(snap.Field.W) {
		t.Errorf("width = %d, expected %v", img.Bounds().Dx(), snap.Field.W)
	}
}

func TestSavePNGBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "frame.png")
	if err := SavePNG(path, invaders.Snapshot{}); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestGameIsSnapshotter(t *testing.T) {
	var _ Snapshotter = invaders.New()
}
