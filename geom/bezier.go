package geom

import (
	"math"

	"github.com/gogpu/gg"
)

// LinkCurve is the cubic bezier drawn between two pins. The control points
// leave P0 and enter P3 horizontally, so links read left to right.
type LinkCurve struct {
	P0, P1, P2, P3 Vec2

	// Segments is the number of line segments used to flatten the curve
	// for drawing and distance queries. Always at least 1.
	Segments int
}

// NewLinkCurve builds the curve from start to end. When reversed is set
// (the link starts at an input pin) the endpoints are swapped so the curve
// still flows from output to input.
func NewLinkCurve(start, end Vec2, reversed bool, segmentsPerLength float64) LinkCurve {
	if reversed {
		start, end = end, start
	}
	length := end.Sub(start).Length()
	offset := Vec2{X: 0.25 * length}
	return LinkCurve{
		P0:       start,
		P1:       start.Add(offset),
		P2:       end.Sub(offset),
		P3:       end,
		Segments: max(int(length*segmentsPerLength), 1),
	}
}

// Bez returns the curve as a gg cubic bezier.
func (c LinkCurve) Bez() gg.CubicBez {
	return gg.NewCubicBez(c.P0.Point(), c.P1.Point(), c.P2.Point(), c.P3.Point())
}

// Eval evaluates the curve at t in [0, 1].
func (c LinkCurve) Eval(t float64) Vec2 {
	return FromPoint(c.Bez().Eval(t))
}

// ClosestPoint returns the point of the flattened curve nearest to p.
func (c LinkCurve) ClosestPoint(p Vec2) Vec2 {
	bez := c.Bez()
	last := c.P0
	closest := c.P0
	best := math.MaxFloat64
	step := 1 / float64(c.Segments)
	for i := 1; i <= c.Segments; i++ {
		cur := FromPoint(bez.Eval(step * float64(i)))
		onLine := ClosestPointOnSegment(last, cur, p)
		if d := p.DistanceSquared(onLine); d < best {
			closest = onLine
			best = d
		}
		last = cur
	}
	return closest
}

// Distance returns the distance from p to the flattened curve.
func (c LinkCurve) Distance(p Vec2) float64 {
	return c.ClosestPoint(p).Sub(p).Length()
}

// ContainingRect bounds the endpoints and control points, padded by pad.
// It is a cheap rejection test before Distance.
func (c LinkCurve) ContainingRect(pad float64) Rect {
	return NewRect(c.P0, c.P3).Add(c.P1).Add(c.P2).Expand(Vec2{X: pad, Y: pad})
}

// ChordOverlapsRect approximates a link by the bounding box of its straight
// chord and tests it against r.
func ChordOverlapsRect(r Rect, start, end Vec2) bool {
	return r.Overlaps(NewRect(start, end))
}
