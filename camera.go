package main

import "github.com/milk9111/gridnav/common"

// Camera maps world units (origin centered, y up) onto screen pixels
// (top-left origin, y down). Fixed position; only the scale varies per
// scene.
type Camera struct {
	screenW int
	screenH int
	ppu     float64 // pixels per world unit
}

func NewCamera(screenW, screenH int, ppu float64) *Camera {
	if ppu <= 0 {
		ppu = 100
	}
	return &Camera{screenW: screenW, screenH: screenH, ppu: ppu}
}

func (c *Camera) SetScale(ppu float64) {
	if ppu > 0 {
		c.ppu = ppu
	}
}

func (c *Camera) Scale() float64 { return c.ppu }

// WorldToScreen converts a world point to screen pixels.
func (c *Camera) WorldToScreen(p common.Vec2) (float64, float64) {
	return float64(c.screenW)/2 + p.X*c.ppu, float64(c.screenH)/2 - p.Y*c.ppu
}

// ScreenToWorld converts a screen pixel (the cursor, typically) to world
// units.
func (c *Camera) ScreenToWorld(x, y int) common.Vec2 {
	return common.Vec2{
		X: (float64(x) - float64(c.screenW)/2) / c.ppu,
		Y: (float64(c.screenH)/2 - float64(y)) / c.ppu,
	}
}
