package match

import "testing"

func TestCollides(t *testing.T) {
	c := DefaultConfig()
	left := newPaddle(c, Left, 0)
	right := newPaddle(c, Right, 0)
	midY := left.Pos.Y + left.Height/2

	leftFace := left.Pos.X + left.Width
	rightFace := right.Pos.X

	ball := func(x, y float64) Ball {
		return Ball{Pos: Vec2{x, y}, Radius: c.BallRadius}
	}

	tests := []struct {
		name   string
		ball   Ball
		paddle Paddle
		want   bool
	}{
		{"just touching left face", ball(leftFace+c.BallRadius-0.1, midY), left, true},
		{"one unit clear of left face", ball(leftFace+c.BallRadius+0.9, midY), left, false},
		{"exactly one radius away", ball(leftFace+c.BallRadius, midY), left, false},
		{"center inside paddle", ball(left.Pos.X+1, midY), left, true},
		{"just touching right face", ball(rightFace-c.BallRadius+0.1, midY), right, true},
		{"clear of right face", ball(rightFace-c.BallRadius-0.9, midY), right, false},
		{"above left paddle", ball(leftFace, left.Pos.Y-c.BallRadius-1), left, false},
		{"touching top edge", ball(left.Pos.X+5, left.Pos.Y-c.BallRadius+0.5), left, true},
		{"corner diagonal miss", ball(leftFace+11, left.Pos.Y-11), left, false},
		{"corner diagonal hit", ball(leftFace+10, left.Pos.Y-10), left, true},
		{"far field", ball(c.FieldWidth/2, c.FieldHeight/2), left, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Collides(tt.ball, tt.paddle); got != tt.want {
				t.Errorf("Collides(%v) = %v, want %v", tt.ball.Pos, got, tt.want)
			}
		})
	}
}

func TestCollidesWhenMovingRightward(t *testing.T) {
	c := DefaultConfig()
	p := newPaddle(c, Left, 0)
	b := Ball{
		Pos:    Vec2{p.Pos.X + p.Width + c.BallRadius - 0.1, p.Pos.Y + 10},
		Radius: c.BallRadius,
	}
	if !Collides(b, p) {
		t.Fatalf("ball at %v should overlap paddle %v", b.Pos, p.Rect())
	}
	b.Pos.X++
	if Collides(b, p) {
		t.Fatalf("ball at %v should be clear of paddle %v", b.Pos, p.Rect())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{5, 0, 10, 5},
		{0, 0, 10, 0},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}
