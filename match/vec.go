package match

import "math"

// Vec2 represents a 2D vector
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v scaled by s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product of v and o
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Len returns the magnitude of v
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Reflect mirrors v about the surface with normal n: v - 2(v·n)n.
// n must be unit length; any other normal changes the length of the result.
func Reflect(v, n Vec2) Vec2 {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Source is the random source consumed by serves. *math/rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// RandomUnit returns a unit vector with a direction uniform on the circle
func RandomUnit(r Source) Vec2 {
	angle := r.Float64() * 2 * math.Pi
	return Vec2{math.Cos(angle), math.Sin(angle)}
}
