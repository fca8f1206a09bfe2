package geom

import (
	"math"

	"github.com/gogpu/gg"
)

// Vec2 is a 2D position or displacement in one of the editor's coordinate
// spaces. The space is implied by the caller; Vec2 itself carries none.
type Vec2 struct {
	X, Y float64
}

// V is a convenience function to create a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// FromPoint converts a gg point.
func FromPoint(p gg.Point) Vec2 {
	return Vec2{X: p.X, Y: p.Y}
}

// Point converts v to a gg point.
func (v Vec2) Point() gg.Point {
	return gg.Pt(v.X, v.Y)
}

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns v - w.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns v scaled by s.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Div returns v divided by s.
func (v Vec2) Div(s float64) Vec2 {
	return Vec2{X: v.X / s, Y: v.Y / s}
}

// Scale returns the component-wise product of v and w.
func (v Vec2) Scale(w Vec2) Vec2 {
	return Vec2{X: v.X * w.X, Y: v.Y * w.Y}
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of v and w.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Length returns the length of v.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSquared returns the squared length of v.
func (v Vec2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// DistanceSquared returns the squared distance between v and w.
func (v Vec2) DistanceSquared(w Vec2) float64 {
	return v.Sub(w).LengthSquared()
}

// Normalize returns a unit vector in the direction of v, or the zero vector
// when v has no length.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Lerp interpolates each axis independently: t.X for X and t.Y for Y.
func (v Vec2) Lerp(w, t Vec2) Vec2 {
	return Vec2{
		X: v.X + (w.X-v.X)*t.X,
		Y: v.Y + (w.Y-v.Y)*t.Y,
	}
}

// Floor rounds both components down.
func (v Vec2) Floor() Vec2 {
	return Vec2{X: math.Floor(v.X), Y: math.Floor(v.Y)}
}

// Min returns the component-wise minimum of a and b.
func Min(a, b Vec2) Vec2 {
	return Vec2{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
}

// Max returns the component-wise maximum of a and b.
func Max(a, b Vec2) Vec2 {
	return Vec2{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
}

// ClosestPointOnSegment returns the point of segment ab nearest to p.
func ClosestPointOnSegment(a, b, p Vec2) Vec2 {
	ap := p.Sub(a)
	ab := b.Sub(a)
	dot := ap.Dot(ab)
	if dot < 0 {
		return a
	}
	lenSq := ab.LengthSquared()
	if lenSq == 0 || dot > lenSq {
		return b
	}
	return a.Add(ab.Mul(dot / lenSq))
}
