package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/milk9111/gridnav/scene"
	"github.com/milk9111/gridnav/unit"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	tickSeconds = 1.0 / 60.0
)

type Game struct {
	frames    int
	sceneName string
	debug     bool

	world   *World
	camera  *Camera
	input   *Input
	watcher *scene.Watcher
}

func NewGame(sceneName string, debug bool) (*Game, error) {
	spec, err := scene.Load(sceneName)
	if err != nil {
		return nil, err
	}
	world, err := BuildWorld(spec, debug)
	if err != nil {
		return nil, fmt.Errorf("build scene %s: %w", sceneName, err)
	}

	camera := NewCamera(baseWidth, baseHeight, spec.PixelsPerUnit)
	g := &Game{
		sceneName: sceneName,
		debug:     debug,
		world:     world,
		camera:    camera,
		input:     NewInput(camera),
	}

	// Watch the on-disk scene dir when it exists; an embedded-only run has
	// nothing to reload.
	if info, err := os.Stat("scene"); err == nil && info.IsDir() {
		watcher, err := scene.NewWatcher("scene", "scene/scripts")
		if err != nil {
			log.Printf("scene watcher disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}

	return g, nil
}

func (g *Game) Update() error {
	g.frames++

	g.drainSceneEvents()

	g.input.Update()
	if g.input.DebugToggled {
		g.debug = !g.debug
	}
	if g.input.MouseLeftPressed {
		unit.AssignNearest(g.world.Player, g.input.MouseWorld)
	}

	g.world.Update(tickSeconds)
	return nil
}

// drainSceneEvents applies at most one pending scene reload per frame. A
// broken edit keeps the old world running and just logs.
func (g *Game) drainSceneEvents() {
	if g.watcher == nil {
		return
	}
	select {
	case name, ok := <-g.watcher.Events:
		if !ok {
			g.watcher = nil
			return
		}
		log.Printf("scene change: %s, rebuilding", name)
		spec, err := scene.Load(g.sceneName)
		if err != nil {
			log.Printf("scene reload failed: %v", err)
			return
		}
		world, err := BuildWorld(spec, g.debug)
		if err != nil {
			log.Printf("scene rebuild failed: %v", err)
			return
		}
		g.world = world
		g.camera.SetScale(spec.PixelsPerUnit)
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("scene watcher: %v", err)
		}
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawWorld(screen)
	if g.debug {
		g.drawDebug(screen)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %.1f  scene: %s  player: %s  F1 debug, F12 quit",
		ebiten.ActualFPS(), g.sceneName, g.world.Player.StateName()))
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
