package geom

import "math"

// Rect is an axis-aligned rectangle. Min is the top-left corner, Max the
// bottom-right one. A rectangle with Min > Max on either axis is inverted;
// the inverted rectangle returned by Inverted is the identity of Add.
type Rect struct {
	Min, Max Vec2
}

// R creates a rectangle from its corner coordinates without normalizing.
func R(x0, y0, x1, y1 float64) Rect {
	return Rect{Min: Vec2{X: x0, Y: y0}, Max: Vec2{X: x1, Y: y1}}
}

// NewRect creates a rectangle from two points.
// The points are normalized so Min <= Max.
func NewRect(p1, p2 Vec2) Rect {
	return Rect{Min: Min(p1, p2), Max: Max(p1, p2)}
}

// Inverted returns the empty sentinel rectangle.
func Inverted() Rect {
	return Rect{
		Min: Vec2{X: math.MaxFloat64, Y: math.MaxFloat64},
		Max: Vec2{X: -math.MaxFloat64, Y: -math.MaxFloat64},
	}
}

// IsInverted reports whether Min exceeds Max on either axis.
func (r Rect) IsInverted() bool {
	return r.Min.X > r.Max.X || r.Min.Y > r.Max.Y
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Size returns the width and height as a vector.
func (r Rect) Size() Vec2 {
	return r.Max.Sub(r.Min)
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return r.Min.Add(r.Max).Mul(0.5)
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Overlaps reports whether the interiors of r and o intersect.
func (r Rect) Overlaps(o Rect) bool {
	return o.Min.Y < r.Max.Y && o.Max.Y > r.Min.Y && o.Min.X < r.Max.X && o.Max.X > r.Min.X
}

// Add grows r to include p.
func (r Rect) Add(p Vec2) Rect {
	return Rect{Min: Min(r.Min, p), Max: Max(r.Max, p)}
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{Min: Min(r.Min, o.Min), Max: Max(r.Max, o.Max)}
}

// Expand grows r by d on every side.
func (r Rect) Expand(d Vec2) Rect {
	return Rect{Min: r.Min.Sub(d), Max: r.Max.Add(d)}
}

// Translate moves r by d.
func (r Rect) Translate(d Vec2) Rect {
	return Rect{Min: r.Min.Add(d), Max: r.Max.Add(d)}
}

// Normalize swaps coordinates so that Min <= Max.
func (r Rect) Normalize() Rect {
	return NewRect(r.Min, r.Max)
}

// OverlapsSegment reports whether the segment p1-p2 touches r.
// The test classifies the four corners against the implicit line through
// the segment: the segment crosses r unless every corner lies on one side.
func (r Rect) OverlapsSegment(p1, p2 Vec2) bool {
	if r.Contains(p1) || r.Contains(p2) {
		return true
	}
	r = r.Normalize()

	if (p1.X < r.Min.X && p2.X < r.Min.X) ||
		(p1.X > r.Max.X && p2.X > r.Max.X) ||
		(p1.Y < r.Min.Y && p2.Y < r.Min.Y) ||
		(p1.Y > r.Max.Y && p2.Y > r.Max.Y) {
		return false
	}

	corners := [4]Vec2{
		r.Min,
		{X: r.Max.X, Y: r.Min.Y},
		{X: r.Min.X, Y: r.Max.Y},
		r.Max,
	}
	sum, sumAbs := 0, 0
	for _, c := range corners {
		s := sign(lineEq(p1, p2, c))
		sum += s
		sumAbs += abs(s)
	}
	return abs(sum) != sumAbs
}

func lineEq(p1, p2, p Vec2) float64 {
	return (p2.Y-p1.Y)*p.X + (p1.X-p2.X)*p.Y + (p2.X*p1.Y - p1.X*p2.Y)
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
