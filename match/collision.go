package match

// Clamp limits value to the range [lo, hi]
func Clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// ClosestPoint returns the point of r nearest to p
func (r Rect) ClosestPoint(p Vec2) Vec2 {
	return Vec2{
		X: Clamp(p.X, r.X, r.X+r.Width),
		Y: Clamp(p.Y, r.Y, r.Y+r.Height),
	}
}

// Collides reports whether the ball overlaps the paddle. The ball center is
// clamped into the paddle rectangle and the squared distance to that point is
// compared against the squared radius.
func Collides(b Ball, p Paddle) bool {
	d := b.Pos.Sub(p.Rect().ClosestPoint(b.Pos))
	return d.Dot(d) < b.Radius*b.Radius
}
