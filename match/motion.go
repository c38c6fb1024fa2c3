package match

// MovePaddle applies the held directional keys to a paddle and clamps it to
// the field. Up and down held together cancel out.
func MovePaddle(p Paddle, up, down bool, dt, fieldHeight float64) Paddle {
	if up {
		p.Pos.Y -= p.Speed * dt
	}
	if down {
		p.Pos.Y += p.Speed * dt
	}
	return ClampPaddle(p, fieldHeight)
}

// ClampPaddle keeps the paddle inside [0, fieldHeight-Height]
func ClampPaddle(p Paddle, fieldHeight float64) Paddle {
	p.Pos.Y = Clamp(p.Pos.Y, 0, fieldHeight-p.Height)
	return p
}

// Integrate advances the ball along its direction for dt seconds
func Integrate(b Ball, dt float64) Ball {
	b.Pos = b.Pos.Add(b.Dir.Scale(b.Speed * dt))
	return b
}

// BounceWalls flips the vertical direction when the ball touches the top or
// bottom edge while still heading into it. It reports whether a bounce happened.
func BounceWalls(b Ball, fieldHeight float64) (Ball, bool) {
	top := b.Pos.Y-b.Radius <= 0 && b.Dir.Y < 0
	bottom := b.Pos.Y+b.Radius >= fieldHeight && b.Dir.Y > 0
	if !top && !bottom {
		return b, false
	}
	b.Dir.Y = -b.Dir.Y
	return b, true
}

// BounceOffPaddle reflects the ball off the face of side's paddle. Balls
// already moving away from the face are left alone so an overlap spanning
// several ticks reflects only once.
func BounceOffPaddle(b Ball, side Side) (Ball, bool) {
	n := side.Normal()
	if b.Dir.Dot(n) >= 0 {
		return b, false
	}
	b.Dir = Reflect(b.Dir, n)
	return b, true
}
