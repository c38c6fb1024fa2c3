package match

// Input is the per-tick input snapshot. The movement keys are level-triggered;
// Serve is true only on the tick the serve key went down.
type Input struct {
	LeftUp    bool
	LeftDown  bool
	RightUp   bool
	RightDown bool
	Serve     bool
}

// Events describes what happened during a Step
type Events struct {
	Served     bool
	WallBounce bool

	// PaddleHit is indexed by Side
	PaddleHit [2]bool

	Scored bool
	Scorer Side
}

// Step advances the match by one tick of dt seconds. total is the time
// elapsed since the match started and drives the idle animation.
//
// The order is fixed: paddles, serve/idle, ball integration, walls, goal,
// paddle collisions. A goal ends the tick before paddle collisions are tested.
func Step(s State, in Input, dt, total float64, r Source) (State, Events) {
	var ev Events
	c := s.Config

	s.Left = MovePaddle(s.Left, in.LeftUp, in.LeftDown, dt, c.FieldHeight)
	s.Right = MovePaddle(s.Right, in.RightUp, in.RightDown, dt, c.FieldHeight)

	if s.Phase == AwaitingServe {
		if !in.Serve {
			s.Ball = Idle(s.Ball, c, total)
			return s, ev
		}
		s = Serve(s, r)
		ev.Served = true
	}

	s.Ball = Integrate(s.Ball, dt)
	s.Ball, ev.WallBounce = BounceWalls(s.Ball, c.FieldHeight)

	if scorer, ok := Goal(s.Ball, c); ok {
		ev.Scored = true
		ev.Scorer = scorer
		return Award(s, scorer), ev
	}

	// Both paddles are tested every tick; the direction guard in
	// BounceOffPaddle keeps a lingering overlap from reflecting twice.
	for _, side := range []Side{Left, Right} {
		if !Collides(s.Ball, s.Paddle(side)) {
			continue
		}
		var hit bool
		s.Ball, hit = BounceOffPaddle(s.Ball, side)
		if hit {
			ev.PaddleHit[side] = true
			s.Rally++
		}
	}

	return s, ev
}
