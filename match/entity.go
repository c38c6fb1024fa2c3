package match

// Side identifies one half of the field and the paddle that defends it
type Side int

const (
	Left Side = iota
	Right
)

// Opponent returns the other side
func (s Side) Opponent() Side {
	if s == Left {
		return Right
	}
	return Left
}

func (s Side) String() string {
	if s == Left {
		return "Left"
	}
	return "Right"
}

// Normal returns the outward normal of the paddle face that the ball hits
func (s Side) Normal() Vec2 {
	if s == Left {
		return Vec2{1, 0}
	}
	return Vec2{-1, 0}
}

// Rect is an axis-aligned rectangle given by its top-left corner and extents
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Paddle is a player's bat. Pos is the top-left corner.
type Paddle struct {
	Pos    Vec2
	Width  float64
	Height float64

	// Speed is the vertical speed in units per second
	Speed float64

	Score int
}

// Rect returns the paddle's rectangle
func (p Paddle) Rect() Rect {
	return Rect{X: p.Pos.X, Y: p.Pos.Y, Width: p.Width, Height: p.Height}
}

// Ball is the match ball. Pos is the center.
type Ball struct {
	Pos Vec2

	// Dir is the unit direction of travel
	Dir Vec2

	Speed  float64
	Radius float64
}

// Velocity returns the ball's velocity in units per second
func (b Ball) Velocity() Vec2 {
	return b.Dir.Scale(b.Speed)
}

// newPaddle creates a paddle centered vertically at its side's fixed offset
func newPaddle(c Config, side Side, score int) Paddle {
	return Paddle{
		Pos: Vec2{
			X: c.PaddleX(side),
			Y: c.FieldHeight/2 - c.PaddleHeight/2,
		},
		Width:  c.PaddleWidth,
		Height: c.PaddleHeight,
		Speed:  c.PaddleSpeed,
		Score:  score,
	}
}

// newBall creates a ball at the field center with no direction. The
// direction is assigned when it is served.
func newBall(c Config) Ball {
	return Ball{
		Pos:    Vec2{c.FieldWidth / 2, c.FieldHeight / 2},
		Speed:  c.BallSpeed,
		Radius: c.BallRadius,
	}
}
