package nodes

import (
	"testing"

	"github.com/gogpu/nodes/geom"
)

func TestGridScreenRoundTrip(t *testing.T) {
	c := NewContext()
	c.ResetPanning(geom.V(-37, 12.5))
	c.BeginEditor(geom.R(50, 40, 850, 640), Input{})
	defer c.EndEditor()

	for _, p := range []geom.Vec2{{}, geom.V(10, 20), geom.V(-300.25, 1e4)} {
		if got := c.ScreenToGrid(c.GridToScreen(p)); got != p {
			t.Errorf("ScreenToGrid(GridToScreen(%v)) = %v", p, got)
		}
	}
	if got := c.GridToScreen(geom.V(0, 0)); got != geom.V(13, 52.5) {
		t.Errorf("GridToScreen(0, 0) = %v, want (13, 52.5)", got)
	}
}

func TestSetZoomKeepsPointFixed(t *testing.T) {
	c := NewContext()
	canvas := geom.R(50, 40, 850, 640)
	c.BeginEditor(canvas, Input{})
	c.EndEditor()

	gridAt := func(host geom.Vec2) geom.Vec2 { return c.ScreenToGrid(c.HostToScreen(host)) }
	for _, zoom := range []float64{2, 0.5, 3.25, 1} {
		pos := geom.V(300, 200)
		before := gridAt(pos)
		c.SetZoom(zoom, pos)
		if got := gridAt(pos); !vecsNear(got, before) {
			t.Errorf("SetZoom(%v): grid point moved from %v to %v", zoom, before, got)
		}
		if c.Zoom() != zoom {
			t.Errorf("Zoom = %v, want %v", c.Zoom(), zoom)
		}
	}
}

func TestSetZoomClamps(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0.1},
		{-4, 0.1},
		{0.05, 0.1},
		{25, 10},
		{4, 4},
	}
	for _, tt := range tests {
		c := NewContext()
		c.SetZoom(tt.in, geom.Vec2{})
		if got := c.Zoom(); got != tt.want {
			t.Errorf("SetZoom(%v): Zoom = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestZoomedCanvasRect(t *testing.T) {
	c := NewContext()
	c.SetZoom(2, geom.V(0, 0))
	c.BeginEditor(geom.R(100, 100, 900, 700), Input{MousePos: geom.V(500, 300)})
	defer c.EndEditor()

	if want := geom.R(100, 100, 500, 400); c.canvasRect != want {
		t.Errorf("canvasRect = %+v, want %+v", c.canvasRect, want)
	}
	if got := c.in.mousePos; got != geom.V(300, 200) {
		t.Errorf("mouse = %v, want (300, 200)", got)
	}
	if got := c.ScreenToHost(c.in.mousePos); got != geom.V(500, 300) {
		t.Errorf("ScreenToHost = %v, want (500, 300)", got)
	}
	if l := c.DrawList(); l.Scale != 2 || l.Origin != geom.V(100, 100) {
		t.Errorf("list origin, scale = %v, %v, want (100, 100), 2", l.Origin, l.Scale)
	}
}

func TestSnapAxis(t *testing.T) {
	tests := []struct {
		x, want float64
	}{
		{0, 0},
		{11, 0},
		{13, 24},
		{35, 24},
		{36, 48},
		{-11, 0},
		{-13, -24},
		{96, 96},
	}
	for _, tt := range tests {
		if got := snapAxis(tt.x, 24); got != tt.want {
			t.Errorf("snapAxis(%v, 24) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestMoveToNode(t *testing.T) {
	c := NewContext()
	c.SetNodeGridSpacePos(7, geom.V(120, -40))
	c.MoveToNode(7)
	if got := c.Panning(); got != geom.V(-120, 40) {
		t.Errorf("Panning = %v, want (-120, 40)", got)
	}
}

func TestNodePositionSpaces(t *testing.T) {
	c := NewContext()
	c.ResetPanning(geom.V(10, 20))
	c.BeginEditor(geom.R(5, 5, 805, 605), Input{})
	c.SetNodeScreenSpacePos(1, geom.V(115, 125))
	if got := c.NodeGridSpacePos(1); got != geom.V(100, 100) {
		t.Errorf("NodeGridSpacePos = %v, want (100, 100)", got)
	}
	if got := c.NodeEditorSpacePos(1); got != geom.V(110, 120) {
		t.Errorf("NodeEditorSpacePos = %v, want (110, 120)", got)
	}
	c.SetNodeEditorSpacePos(1, geom.V(10, 20))
	if got := c.NodeScreenSpacePos(1); got != geom.V(15, 25) {
		t.Errorf("NodeScreenSpacePos = %v, want (15, 25)", got)
	}
	c.EndEditor()
}
