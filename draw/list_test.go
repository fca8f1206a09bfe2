package draw

import (
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/nodes/geom"
)

func TestCommandType_String(t *testing.T) {
	tests := []struct {
		ct   CommandType
		want string
	}{
		{CmdPushClip, "PushClip"},
		{CmdPopClip, "PopClip"},
		{CmdLine, "Line"},
		{CmdRect, "Rect"},
		{CmdRectFilled, "RectFilled"},
		{CmdCircle, "Circle"},
		{CmdCircleFilled, "CircleFilled"},
		{CmdPolygon, "Polygon"},
		{CmdPolygonFilled, "PolygonFilled"},
		{CmdBezier, "Bezier"},
		{CmdText, "Text"},
		{CommandType(200), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.ct.String(); got != tt.want {
				t.Errorf("CommandType.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func textOf(cmds []Command) []string {
	var out []string
	for _, c := range cmds {
		if txt, ok := c.(Text); ok {
			out = append(out, txt.Text)
		}
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestList_MergeOrder(t *testing.T) {
	l := NewList()
	first := l.Grow(2)
	if first != 1 {
		t.Fatalf("Grow() = %d, want 1", first)
	}

	l.SetCurrent(2)
	l.AddText(geom.V(0, 0), gg.White, "c")
	l.SetCurrent(0)
	l.AddText(geom.V(0, 0), gg.White, "a")
	l.SetCurrent(1)
	l.AddText(geom.V(0, 0), gg.White, "b")

	l.Merge()
	if l.NumChannels() != 1 {
		t.Errorf("NumChannels() = %d after Merge, want 1", l.NumChannels())
	}
	if got := textOf(l.Commands()); !equalStrings(got, []string{"a", "b", "c"}) {
		t.Errorf("merged order = %v, want [a b c]", got)
	}
}

func TestList_SwapFollowsCursor(t *testing.T) {
	tests := []struct {
		name    string
		current int
		a, b    int
		want    int
	}{
		{"current is a", 1, 1, 3, 3},
		{"current is b", 3, 1, 3, 1},
		{"current untouched", 2, 1, 3, 2},
		{"same channel", 1, 1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewList()
			l.Grow(3)
			l.SetCurrent(tt.current)
			l.Swap(tt.a, tt.b)
			if l.Current() != tt.want {
				t.Errorf("Current() = %d, want %d", l.Current(), tt.want)
			}
		})
	}
}

func TestList_SwapMovesContents(t *testing.T) {
	l := NewList()
	l.Grow(2)
	l.SetCurrent(1)
	l.AddText(geom.Vec2{}, gg.White, "one")
	l.SetCurrent(2)
	l.AddText(geom.Vec2{}, gg.White, "two")

	l.Swap(1, 2)
	l.AddText(geom.Vec2{}, gg.White, "two'")

	if got := textOf(l.Channel(1)); !equalStrings(got, []string{"two", "two'"}) {
		t.Errorf("channel 1 = %v, want [two two']", got)
	}
	if got := textOf(l.Channel(2)); !equalStrings(got, []string{"one"}) {
		t.Errorf("channel 2 = %v, want [one]", got)
	}
}

func TestList_SetCurrentOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("SetCurrent(5) did not panic")
		}
	}()
	l := NewList()
	l.SetCurrent(5)
}

func TestList_ToHost(t *testing.T) {
	l := NewList()
	l.Origin = geom.V(100, 50)
	l.Scale = 2

	tests := []struct {
		in, want geom.Vec2
	}{
		{geom.V(100, 50), geom.V(100, 50)},
		{geom.V(110, 60), geom.V(120, 70)},
		{geom.V(90, 50), geom.V(80, 50)},
	}
	for _, tt := range tests {
		if got := l.ToHost(tt.in); got != tt.want {
			t.Errorf("ToHost(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestList_ResetAndLen(t *testing.T) {
	l := NewList()
	l.Grow(1)
	l.SetCurrent(1)
	l.AddLine(geom.V(0, 0), geom.V(1, 1), gg.Black, 1)
	l.AddQuadFilled(geom.V(0, 0), geom.V(1, 0), geom.V(1, 1), geom.V(0, 1), gg.Black)
	if l.Len() != 2 {
		t.Errorf("Len() = %d, want 2", l.Len())
	}

	l.Scale = 3
	l.Reset()
	if l.Len() != 0 || l.NumChannels() != 1 || l.Current() != 0 || l.Scale != 1 {
		t.Errorf("after Reset: len=%d channels=%d current=%d scale=%v",
			l.Len(), l.NumChannels(), l.Current(), l.Scale)
	}
}

func TestList_ShapeHelpers(t *testing.T) {
	l := NewList()
	curve := geom.NewLinkCurve(geom.V(0, 0), geom.V(100, 0), false, 0.1)

	l.PushClip(geom.R(0, 0, 10, 10))
	l.AddRect(geom.R(0, 0, 1, 1), gg.Black, 2, CornersAll, 1)
	l.AddRectFilled(geom.R(0, 0, 1, 1), gg.Black, 2, CornersTop)
	l.AddCircle(geom.V(0, 0), 4, gg.Black, 8, 1)
	l.AddCircleFilled(geom.V(0, 0), 4, gg.Black, 8)
	l.AddTriangle(geom.V(0, 0), geom.V(1, 0), geom.V(0, 1), gg.Black, 1)
	l.AddTriangleFilled(geom.V(0, 0), geom.V(1, 0), geom.V(0, 1), gg.Black)
	l.AddQuad(geom.V(0, 0), geom.V(1, 0), geom.V(1, 1), geom.V(0, 1), gg.Black, 1)
	l.AddBezier(curve, gg.Black, 3)
	l.AddText(geom.V(0, 0), gg.Black, "x")
	l.PopClip()

	want := []CommandType{
		CmdPushClip, CmdRect, CmdRectFilled, CmdCircle, CmdCircleFilled,
		CmdPolygon, CmdPolygonFilled, CmdPolygon, CmdBezier, CmdText, CmdPopClip,
	}
	got := l.Commands()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, c := range got {
		if c.Type() != want[i] {
			t.Errorf("command %d = %v, want %v", i, c.Type(), want[i])
		}
	}

	bez := got[8].(Bezier)
	if bez.Segments != curve.Segments || bez.P3 != curve.P3 {
		t.Errorf("Bezier = %+v, want curve %+v", bez, curve)
	}
}
