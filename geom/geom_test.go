package geom

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func floatEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func vecsEqual(a, b Vec2) bool {
	return floatEqual(a.X, b.X) && floatEqual(a.Y, b.Y)
}

func TestVec2_Arithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(1, 2)

	if got := a.Add(b); got != V(4, 6) {
		t.Errorf("Add = %v, want (4, 6)", got)
	}
	if got := a.Sub(b); got != V(2, 2) {
		t.Errorf("Sub = %v, want (2, 2)", got)
	}
	if got := a.Mul(2); got != V(6, 8) {
		t.Errorf("Mul = %v, want (6, 8)", got)
	}
	if got := a.Div(2); got != V(1.5, 2) {
		t.Errorf("Div = %v, want (1.5, 2)", got)
	}
	if got := a.Scale(b); got != V(3, 8) {
		t.Errorf("Scale = %v, want (3, 8)", got)
	}
	if got := a.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := a.Dot(b); got != 11 {
		t.Errorf("Dot = %v, want 11", got)
	}
	if got := V(0, 0).Normalize(); got != (Vec2{}) {
		t.Errorf("Normalize(0) = %v, want zero", got)
	}
	if got := V(0, 5).Normalize(); !vecsEqual(got, V(0, 1)) {
		t.Errorf("Normalize = %v, want (0, 1)", got)
	}
	if got := V(0, 0).Lerp(V(10, 20), V(0.5, 0.25)); got != V(5, 5) {
		t.Errorf("Lerp = %v, want (5, 5)", got)
	}
	if got := V(1.7, -1.2).Floor(); got != V(1, -2) {
		t.Errorf("Floor = %v, want (1, -2)", got)
	}
}

func TestVec2_PointRoundTrip(t *testing.T) {
	v := V(1.25, -7)
	if got := FromPoint(v.Point()); got != v {
		t.Errorf("FromPoint(Point()) = %v, want %v", got, v)
	}
}

func TestClosestPointOnSegment(t *testing.T) {
	tests := []struct {
		name    string
		a, b, p Vec2
		want    Vec2
	}{
		{"before start", V(0, 0), V(10, 0), V(-5, 3), V(0, 0)},
		{"after end", V(0, 0), V(10, 0), V(15, 3), V(10, 0)},
		{"middle", V(0, 0), V(10, 0), V(4, 3), V(4, 0)},
		{"degenerate", V(2, 2), V(2, 2), V(5, 5), V(2, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClosestPointOnSegment(tt.a, tt.b, tt.p); !vecsEqual(got, tt.want) {
				t.Errorf("ClosestPointOnSegment = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRect_Basics(t *testing.T) {
	r := NewRect(V(10, 20), V(0, 0))
	if r.Min != V(0, 0) || r.Max != V(10, 20) {
		t.Fatalf("NewRect not normalized: %+v", r)
	}
	if r.Width() != 10 || r.Height() != 20 {
		t.Errorf("size = %vx%v, want 10x20", r.Width(), r.Height())
	}
	if r.Center() != V(5, 10) {
		t.Errorf("Center = %v, want (5, 10)", r.Center())
	}
	if !r.Contains(V(10, 20)) {
		t.Error("Contains should include edges")
	}
	if r.Contains(V(11, 5)) {
		t.Error("Contains(11, 5) = true")
	}
	if got := r.Expand(V(1, 2)); got != R(-1, -2, 11, 22) {
		t.Errorf("Expand = %+v", got)
	}
	if got := r.Translate(V(1, 1)); got != R(1, 1, 11, 21) {
		t.Errorf("Translate = %+v", got)
	}
}

func TestRect_InvertedIsAddIdentity(t *testing.T) {
	r := Inverted()
	if !r.IsInverted() {
		t.Fatal("Inverted().IsInverted() = false")
	}
	r = r.Add(V(3, 4))
	if r != R(3, 4, 3, 4) {
		t.Errorf("Inverted().Add = %+v, want point rect", r)
	}
	u := Inverted().Union(R(0, 0, 5, 5))
	if u != R(0, 0, 5, 5) {
		t.Errorf("Inverted().Union = %+v", u)
	}
}

func TestRect_Overlaps(t *testing.T) {
	base := R(0, 0, 10, 10)
	tests := []struct {
		name string
		o    Rect
		want bool
	}{
		{"inside", R(2, 2, 4, 4), true},
		{"partial", R(5, 5, 15, 15), true},
		{"touching edge", R(10, 0, 20, 10), false},
		{"disjoint", R(20, 20, 30, 30), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.o); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRect_OverlapsSegment(t *testing.T) {
	r := R(0, 0, 10, 10)
	tests := []struct {
		name   string
		p1, p2 Vec2
		want   bool
	}{
		{"endpoint inside", V(5, 5), V(50, 50), true},
		{"crossing", V(-5, 5), V(15, 5), true},
		{"diagonal through", V(-5, -5), V(15, 15), true},
		{"left of rect", V(-5, -5), V(-1, 20), false},
		{"missing corner", V(8, -5), V(15, 2), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.OverlapsSegment(tt.p1, tt.p2); got != tt.want {
				t.Errorf("OverlapsSegment(%v, %v) = %v, want %v", tt.p1, tt.p2, got, tt.want)
			}
		})
	}
}

func TestNewLinkCurve(t *testing.T) {
	c := NewLinkCurve(V(0, 0), V(100, 0), false, 0.1)
	if c.P1 != V(25, 0) || c.P2 != V(75, 0) {
		t.Errorf("control points = %v %v, want (25,0) (75,0)", c.P1, c.P2)
	}
	if c.Segments != 10 {
		t.Errorf("Segments = %d, want 10", c.Segments)
	}

	rev := NewLinkCurve(V(0, 0), V(100, 0), true, 0.1)
	if rev.P0 != V(100, 0) || rev.P3 != V(0, 0) {
		t.Errorf("reversed endpoints = %v %v", rev.P0, rev.P3)
	}

	short := NewLinkCurve(V(0, 0), V(1, 0), false, 0.1)
	if short.Segments != 1 {
		t.Errorf("short Segments = %d, want 1", short.Segments)
	}
}

func TestLinkCurve_EvalEndpoints(t *testing.T) {
	c := NewLinkCurve(V(10, 10), V(200, 80), false, 0.1)
	if got := c.Eval(0); !vecsEqual(got, c.P0) {
		t.Errorf("Eval(0) = %v, want %v", got, c.P0)
	}
	if got := c.Eval(1); !vecsEqual(got, c.P3) {
		t.Errorf("Eval(1) = %v, want %v", got, c.P3)
	}
}

func TestLinkCurve_Distance(t *testing.T) {
	c := NewLinkCurve(V(0, 0), V(100, 0), false, 0.1)

	tests := []struct {
		name string
		p    Vec2
		want float64
	}{
		{"on curve", V(50, 0), 0},
		{"above", V(50, -6), 6},
		{"past end", V(110, 0), 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Distance(tt.p); math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("Distance(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestLinkCurve_ContainingRect(t *testing.T) {
	c := NewLinkCurve(V(0, 0), V(100, 50), false, 0.1)
	r := c.ContainingRect(10)
	want := R(-10, -10, 110, 60)
	if !vecsEqual(r.Min, want.Min) || !vecsEqual(r.Max, want.Max) {
		t.Errorf("ContainingRect = %+v, want %+v", r, want)
	}
	for _, tt := range []float64{0, 0.25, 0.5, 0.75, 1} {
		if p := c.Eval(tt); !r.Contains(p) {
			t.Errorf("Eval(%v) = %v outside %+v", tt, p, r)
		}
	}
}

func TestChordOverlapsRect(t *testing.T) {
	if !ChordOverlapsRect(R(40, -5, 60, 5), V(0, -1), V(100, 1)) {
		t.Error("box on chord not reported")
	}
	if ChordOverlapsRect(R(40, 10, 60, 20), V(0, -1), V(100, 1)) {
		t.Error("box below chord reported")
	}
}
