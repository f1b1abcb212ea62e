package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	sceneName := flag.String("scene", "arena", "scene name in scene/ (basename, .yaml optional)")
	debug := flag.Bool("debug", false, "start with the grid debug overlay enabled")
	flag.Parse()

	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("gridnav")

	game, err := NewGame(*sceneName, *debug)
	if err != nil {
		log.Fatalf("startup: %v", err)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
