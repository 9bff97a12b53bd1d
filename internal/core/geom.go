// Package core provides fundamental types and utilities for the game and its front ends.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned cell rectangle on a Screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Viewport maps continuous world coordinates onto a grid of cells.
type Viewport struct {
	WorldW, WorldH float64 // world extent
	Cols, Rows     int     // cell extent
	OffsetX        int     // cell column of world x = 0
	OffsetY        int     // cell row of world y = 0
}

// NewViewport fits a world of worldW x worldH into cols x rows cells.
func NewViewport(worldW, worldH float64, cols, rows int) Viewport {
	return Viewport{WorldW: worldW, WorldH: worldH, Cols: max(cols, 1), Rows: max(rows, 1)}
}

// CellX returns the column containing world x.
func (v Viewport) CellX(x float64) int {
	if v.WorldW <= 0 {
		return v.OffsetX
	}
	return v.OffsetX + int(math.Floor(x*float64(v.Cols)/v.WorldW))
}

// CellY returns the row containing world y.
func (v Viewport) CellY(y float64) int {
	if v.WorldH <= 0 {
		return v.OffsetY
	}
	return v.OffsetY + int(math.Floor(y*float64(v.Rows)/v.WorldH))
}

// CellRect returns the cells covered by a world rectangle.
// Anything with a positive size covers at least one cell.
func (v Viewport) CellRect(x, y, w, h float64) Rect {
	x0, y0 := v.CellX(x), v.CellY(y)
	x1, y1 := v.CellX(x+w), v.CellY(y+h)
	return Rect{X: x0, Y: y0, W: max(x1-x0, 1), H: max(y1-y0, 1)}
}
