package match

import (
	"math/rand"
	"testing"
)

func TestMovePaddle(t *testing.T) {
	c := DefaultConfig()
	start := newPaddle(c, Left, 0)

	tests := []struct {
		name     string
		y        float64
		up, down bool
		dt       float64
		want     float64
	}{
		{"up", 200, true, false, 0.1, 170},
		{"down", 200, false, true, 0.1, 230},
		{"both cancel", 200, true, true, 0.1, 200},
		{"idle", 200, false, false, 0.1, 200},
		{"clamped at top", 10, true, false, 0.1, 0},
		{"clamped at bottom", c.FieldHeight - c.PaddleHeight - 5, false, true, 0.1, c.FieldHeight - c.PaddleHeight},
		{"huge dt", 200, false, true, 10, c.FieldHeight - c.PaddleHeight},
		{"zero dt", 200, true, false, 0, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := start
			p.Pos.Y = tt.y
			got := MovePaddle(p, tt.up, tt.down, tt.dt, c.FieldHeight)
			if !approx(got.Pos.Y, tt.want, eps) {
				t.Errorf("y = %v, want %v", got.Pos.Y, tt.want)
			}
			if got.Pos.X != p.Pos.X {
				t.Errorf("x moved from %v to %v", p.Pos.X, got.Pos.X)
			}
		})
	}
}

func TestMovePaddleStaysInField(t *testing.T) {
	c := DefaultConfig()
	r := rand.New(rand.NewSource(3))
	p := newPaddle(c, Right, 0)
	for i := 0; i < 5000; i++ {
		up := r.Intn(2) == 0
		down := r.Intn(2) == 0
		dt := r.Float64() * 0.5
		p = MovePaddle(p, up, down, dt, c.FieldHeight)
		if p.Pos.Y < 0 || p.Pos.Y > c.FieldHeight-p.Height {
			t.Fatalf("tick %d: paddle y = %v outside [0, %v]", i, p.Pos.Y, c.FieldHeight-p.Height)
		}
	}
}

func TestIntegrate(t *testing.T) {
	b := Ball{Pos: Vec2{100, 100}, Dir: Vec2{0.6, -0.8}, Speed: 200}

	got := Integrate(b, 0.5)
	if !approx(got.Pos.X, 160, eps) || !approx(got.Pos.Y, 20, eps) {
		t.Errorf("Integrate = %v, want {160 20}", got.Pos)
	}
	if got.Dir != b.Dir {
		t.Errorf("direction changed to %v", got.Dir)
	}

	if still := Integrate(b, 0); still.Pos != b.Pos {
		t.Errorf("Integrate with dt=0 moved ball to %v", still.Pos)
	}
}

func TestBounceWalls(t *testing.T) {
	const h = 480.0
	tests := []struct {
		name   string
		pos    Vec2
		dir    Vec2
		want   Vec2
		bounce bool
	}{
		{"top, heading up", Vec2{300, 10}, Vec2{0.6, -0.8}, Vec2{0.6, 0.8}, true},
		{"bottom, heading down", Vec2{300, 470}, Vec2{-0.6, 0.8}, Vec2{-0.6, -0.8}, true},
		{"exactly at top edge", Vec2{300, 15}, Vec2{0.6, -0.8}, Vec2{0.6, 0.8}, true},
		{"top, already leaving", Vec2{300, 10}, Vec2{0.6, 0.8}, Vec2{0.6, 0.8}, false},
		{"bottom, already leaving", Vec2{300, 470}, Vec2{0.6, -0.8}, Vec2{0.6, -0.8}, false},
		{"middle", Vec2{300, 240}, Vec2{0.6, -0.8}, Vec2{0.6, -0.8}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Ball{Pos: tt.pos, Dir: tt.dir, Speed: 225, Radius: 15}
			got, bounced := BounceWalls(b, h)
			if bounced != tt.bounce {
				t.Errorf("bounced = %v, want %v", bounced, tt.bounce)
			}
			if got.Dir != tt.want {
				t.Errorf("dir = %v, want %v", got.Dir, tt.want)
			}
			if got.Pos != tt.pos {
				t.Errorf("position changed to %v", got.Pos)
			}
		})
	}
}

func TestBounceOffPaddle(t *testing.T) {
	tests := []struct {
		name string
		side Side
		dir  Vec2
		want Vec2
		hit  bool
	}{
		{"left paddle, incoming", Left, Vec2{-0.6, 0.8}, Vec2{0.6, 0.8}, true},
		{"left paddle, outgoing", Left, Vec2{0.6, 0.8}, Vec2{0.6, 0.8}, false},
		{"right paddle, incoming", Right, Vec2{1, 0}, Vec2{-1, 0}, true},
		{"right paddle, outgoing", Right, Vec2{-0.6, -0.8}, Vec2{-0.6, -0.8}, false},
		{"vertical travel", Left, Vec2{0, 1}, Vec2{0, 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hit := BounceOffPaddle(Ball{Dir: tt.dir}, tt.side)
			if hit != tt.hit {
				t.Errorf("hit = %v, want %v", hit, tt.hit)
			}
			if !approx(got.Dir.X, tt.want.X, eps) || !approx(got.Dir.Y, tt.want.Y, eps) {
				t.Errorf("dir = %v, want %v", got.Dir, tt.want)
			}
		})
	}
}
