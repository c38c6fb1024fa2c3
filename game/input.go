package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"pong/match"
)

// InputProvider supplies the per-tick controls of both players
type InputProvider interface {
	// Input returns the snapshot for the current tick
	Input() match.Input
}

// KeyboardInput reads both players from one keyboard: W/S for the left
// paddle, the arrow keys for the right paddle and Space to serve.
type KeyboardInput struct{}

// Input returns the held movement keys and whether Space went down this tick
func (KeyboardInput) Input() match.Input {
	return match.Input{
		LeftUp:    ebiten.IsKeyPressed(ebiten.KeyW),
		LeftDown:  ebiten.IsKeyPressed(ebiten.KeyS),
		RightUp:   ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		RightDown: ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Serve:     inpututil.IsKeyJustPressed(ebiten.KeySpace),
	}
}

// command is a one-shot request from the keyboard outside of gameplay
type command int

const (
	commandNone command = iota
	commandQuit
	commandPause
	commandRestart
	commandToggleDebug
	commandToggleFullscreen
)

// readCommand returns the control key pressed this tick, if any
func readCommand() command {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return commandQuit
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		return commandPause
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		return commandRestart
	case inpututil.IsKeyJustPressed(ebiten.KeyF1):
		return commandToggleDebug
	}

	alt := ebiten.IsKeyPressed(ebiten.KeyAlt)
	if alt && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return commandToggleFullscreen
	}
	return commandNone
}
