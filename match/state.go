package match

import (
	"fmt"

	"github.com/google/uuid"
)

// Phase is the serve state of a match
type Phase int

const (
	// AwaitingServe: the ball bobs at the center until someone serves
	AwaitingServe Phase = iota
	// InPlay: full physics
	InPlay
)

func (p Phase) String() string {
	switch p {
	case AwaitingServe:
		return "awaiting serve"
	case InPlay:
		return "in play"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// State is the complete state of a match. It is a value: Step takes a State
// and returns the next one.
type State struct {
	// ID identifies the match in logs
	ID uuid.UUID

	Config Config

	Left  Paddle
	Right Paddle
	Ball  Ball
	Phase Phase

	// Rally counts paddle hits since the last serve
	Rally int
}

// New creates a match with both paddles centered and the ball awaiting serve
func New(config Config) State {
	return State{
		ID:     uuid.New(),
		Config: config,
		Left:   newPaddle(config, Left, 0),
		Right:  newPaddle(config, Right, 0),
		Ball:   newBall(config),
		Phase:  AwaitingServe,
	}
}

// Paddle returns the paddle of the given side
func (s State) Paddle(side Side) Paddle {
	if side == Left {
		return s.Left
	}
	return s.Right
}

// Score returns the points of the given side
func (s State) Score(side Side) int {
	return s.Paddle(side).Score
}
