package match

import (
	"math"
	"math/rand"
	"testing"
)

const eps = 1e-9

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// fixedSource always returns the same sample
type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

func TestRandomUnitIsUnitLength(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		v := RandomUnit(r)
		if !approx(v.Len(), 1, 1e-5) {
			t.Fatalf("sample %d: |%v| = %v, want 1", i, v, v.Len())
		}
	}
}

func TestRandomUnitCoversCircle(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	var quadrants [4]int
	for i := 0; i < 10000; i++ {
		v := RandomUnit(r)
		q := 0
		if v.X < 0 {
			q |= 1
		}
		if v.Y < 0 {
			q |= 2
		}
		quadrants[q]++
	}
	for q, n := range quadrants {
		if n < 2000 || n > 3000 {
			t.Errorf("quadrant %d got %d of 10000 samples", q, n)
		}
	}
}

func TestRandomUnitAngles(t *testing.T) {
	tests := []struct {
		sample float64
		want   Vec2
	}{
		{0, Vec2{1, 0}},
		{0.25, Vec2{0, 1}},
		{0.5, Vec2{-1, 0}},
		{0.75, Vec2{0, -1}},
	}
	for _, tt := range tests {
		got := RandomUnit(fixedSource(tt.sample))
		if !approx(got.X, tt.want.X, 1e-12) || !approx(got.Y, tt.want.Y, 1e-12) {
			t.Errorf("RandomUnit(%v) = %v, want %v", tt.sample, got, tt.want)
		}
	}
}

func TestReflect(t *testing.T) {
	tests := []struct {
		name string
		v, n Vec2
		want Vec2
	}{
		{"head-on left face", Vec2{-1, 0}, Vec2{1, 0}, Vec2{1, 0}},
		{"glancing right face", Vec2{0.6, 0.8}, Vec2{-1, 0}, Vec2{-0.6, 0.8}},
		{"parallel to surface", Vec2{0, 1}, Vec2{1, 0}, Vec2{0, 1}},
		{"floor", Vec2{3, 4}, Vec2{0, -1}, Vec2{3, -4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reflect(tt.v, tt.n)
			if !approx(got.X, tt.want.X, eps) || !approx(got.Y, tt.want.Y, eps) {
				t.Errorf("Reflect(%v, %v) = %v, want %v", tt.v, tt.n, got, tt.want)
			}
		})
	}
}

func TestReflectPreservesLengthAndIsInvolution(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		v := Vec2{(r.Float64() - 0.5) * 1000, (r.Float64() - 0.5) * 1000}
		n := RandomUnit(r)

		once := Reflect(v, n)
		if !approx(once.Len(), v.Len(), 1e-9*math.Max(1, v.Len())) {
			t.Fatalf("|Reflect(%v, %v)| = %v, want %v", v, n, once.Len(), v.Len())
		}

		twice := Reflect(once, n)
		if !approx(twice.X, v.X, 1e-9) || !approx(twice.Y, v.Y, 1e-9) {
			t.Fatalf("Reflect(Reflect(%v)) = %v", v, twice)
		}
	}
}
