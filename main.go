package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"pong/game"
)

func main() {
	seed := flag.Int64("seed", 0, "Seed for serve directions (0 picks one from the clock)")
	debug := flag.Bool("debug", false, "Show the debug HUD (toggle in game with F1)")
	fullscreen := flag.Bool("fullscreen", false, "Start in fullscreen mode")
	profileDir := flag.String("profile", "", "Directory for CPU profiles captured on tick-rate drops (disabled when empty)")
	flag.Parse()

	config := game.DefaultConfig()
	config.Seed = *seed
	config.Debug = *debug
	config.ProfileDir = *profileDir

	g, err := game.NewGame(config)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.Title)
	ebiten.SetFullscreen(*fullscreen)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
