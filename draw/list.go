package draw

import (
	"fmt"

	"github.com/gogpu/gg"

	"github.com/gogpu/nodes/geom"
)

// Layers is a stack of independently ordered command channels. The editor
// reorders node channels through it before merging.
type Layers interface {
	// NumChannels returns the number of channels.
	NumChannels() int
	// Current returns the channel receiving new commands.
	Current() int
	// SetCurrent selects the channel receiving new commands.
	SetCurrent(i int)
	// Swap exchanges the contents of two channels. When one of them is
	// the current channel the cursor follows its contents.
	Swap(a, b int)
}

// List collects the commands of one editor frame, split into channels.
// Coordinates are in the editor's zoom-normalized space; a backend maps
// them to host pixels with ToHost.
type List struct {
	// Origin is the fixed point of the zoom transform, usually the canvas
	// top-left corner in host pixels.
	Origin geom.Vec2
	// Scale is the zoom factor applied around Origin.
	Scale float64

	channels [][]Command
	current  int
}

var _ Layers = (*List)(nil)

// NewList returns an empty list with a single channel.
func NewList() *List {
	l := &List{}
	l.Reset()
	return l
}

// Reset drops every command, leaving one empty channel and an identity
// transform.
func (l *List) Reset() {
	l.channels = [][]Command{nil}
	l.current = 0
	l.Origin = geom.Vec2{}
	l.Scale = 1
}

// NumChannels implements Layers.
func (l *List) NumChannels() int { return len(l.channels) }

// Current implements Layers.
func (l *List) Current() int { return l.current }

// SetCurrent implements Layers.
func (l *List) SetCurrent(i int) {
	if i < 0 || i >= len(l.channels) {
		panic(fmt.Sprintf("draw: channel %d out of range [0, %d)", i, len(l.channels)))
	}
	l.current = i
}

// Grow appends n empty channels and returns the index of the first one.
func (l *List) Grow(n int) int {
	first := len(l.channels)
	for range n {
		l.channels = append(l.channels, nil)
	}
	return first
}

// Swap implements Layers.
func (l *List) Swap(a, b int) {
	if a == b {
		return
	}
	l.channels[a], l.channels[b] = l.channels[b], l.channels[a]
	switch l.current {
	case a:
		l.current = b
	case b:
		l.current = a
	}
}

// Merge concatenates all channels in order into channel 0.
func (l *List) Merge() {
	if len(l.channels) == 1 {
		return
	}
	l.channels = [][]Command{l.Commands()}
	l.current = 0
}

// Channel returns the commands recorded so far in channel i.
func (l *List) Channel(i int) []Command { return l.channels[i] }

// Commands returns every command in channel order.
func (l *List) Commands() []Command {
	if len(l.channels) == 1 {
		return l.channels[0]
	}
	n := 0
	for _, ch := range l.channels {
		n += len(ch)
	}
	out := make([]Command, 0, n)
	for _, ch := range l.channels {
		out = append(out, ch...)
	}
	return out
}

// Len returns the total number of commands.
func (l *List) Len() int {
	n := 0
	for _, ch := range l.channels {
		n += len(ch)
	}
	return n
}

// ToHost maps p from editor space to host pixels.
func (l *List) ToHost(p geom.Vec2) geom.Vec2 {
	return l.Origin.Add(p.Sub(l.Origin).Mul(l.Scale))
}

// Add appends cmd to the current channel.
func (l *List) Add(cmd Command) {
	l.channels[l.current] = append(l.channels[l.current], cmd)
}

// PushClip records a clip rectangle.
func (l *List) PushClip(r geom.Rect) { l.Add(PushClip{Rect: r}) }

// PopClip restores the previous clip.
func (l *List) PopClip() { l.Add(PopClip{}) }

func (l *List) AddLine(from, to geom.Vec2, col gg.RGBA, thickness float64) {
	l.Add(Line{From: from, To: to, Color: col, Thickness: thickness})
}

func (l *List) AddRect(r geom.Rect, col gg.RGBA, rounding float64, corners Corners, thickness float64) {
	l.Add(Rect{Rect: r, Color: col, Rounding: rounding, Corners: corners, Thickness: thickness})
}

func (l *List) AddRectFilled(r geom.Rect, col gg.RGBA, rounding float64, corners Corners) {
	l.Add(RectFilled{Rect: r, Color: col, Rounding: rounding, Corners: corners})
}

func (l *List) AddCircle(center geom.Vec2, radius float64, col gg.RGBA, segments int, thickness float64) {
	l.Add(Circle{Center: center, Radius: radius, Color: col, Segments: segments, Thickness: thickness})
}

func (l *List) AddCircleFilled(center geom.Vec2, radius float64, col gg.RGBA, segments int) {
	l.Add(CircleFilled{Center: center, Radius: radius, Color: col, Segments: segments})
}

func (l *List) AddTriangle(a, b, c geom.Vec2, col gg.RGBA, thickness float64) {
	l.Add(Polygon{Points: []geom.Vec2{a, b, c}, Color: col, Thickness: thickness})
}

func (l *List) AddTriangleFilled(a, b, c geom.Vec2, col gg.RGBA) {
	l.Add(PolygonFilled{Points: []geom.Vec2{a, b, c}, Color: col})
}

func (l *List) AddQuad(a, b, c, d geom.Vec2, col gg.RGBA, thickness float64) {
	l.Add(Polygon{Points: []geom.Vec2{a, b, c, d}, Color: col, Thickness: thickness})
}

func (l *List) AddQuadFilled(a, b, c, d geom.Vec2, col gg.RGBA) {
	l.Add(PolygonFilled{Points: []geom.Vec2{a, b, c, d}, Color: col})
}

// AddBezier records a link curve.
func (l *List) AddBezier(c geom.LinkCurve, col gg.RGBA, thickness float64) {
	l.Add(Bezier{P0: c.P0, P1: c.P1, P2: c.P2, P3: c.P3, Color: col, Thickness: thickness, Segments: c.Segments})
}

func (l *List) AddText(pos geom.Vec2, col gg.RGBA, text string) {
	l.Add(Text{Pos: pos, Color: col, Text: text})
}
