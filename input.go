package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/gridnav/common"
)

// Input holds the per-frame input state the game consumes.
type Input struct {
	// MouseWorld is the cursor position in world units.
	MouseWorld common.Vec2
	// MouseLeftPressed is true on the frame the left button was pressed.
	MouseLeftPressed bool
	// DebugToggled is true on the frame the debug overlay key was pressed.
	DebugToggled bool

	camera *Camera
}

func NewInput(camera *Camera) *Input {
	return &Input{camera: camera}
}

// Update polls the mouse and the few keys the demo uses.
func (i *Input) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		os.Exit(0)
	}

	mx, my := ebiten.CursorPosition()
	i.MouseWorld = i.camera.ScreenToWorld(mx, my)
	i.MouseLeftPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	i.DebugToggled = inpututil.IsKeyJustPressed(ebiten.KeyF1)
}
