package draw

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/nodes/geom"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	// Clip commands
	CmdPushClip CommandType = iota // Intersect the clip with a rectangle
	CmdPopClip                     // Restore the previous clip

	// Shape commands
	CmdLine          // Straight line segment
	CmdRect          // Rectangle outline
	CmdRectFilled    // Filled rectangle
	CmdCircle        // Circle outline
	CmdCircleFilled  // Filled circle
	CmdPolygon       // Closed polygon outline
	CmdPolygonFilled // Filled convex polygon
	CmdBezier        // Cubic bezier stroke
	CmdText          // Text run
)

var commandTypeNames = [...]string{
	CmdPushClip:      "PushClip",
	CmdPopClip:       "PopClip",
	CmdLine:          "Line",
	CmdRect:          "Rect",
	CmdRectFilled:    "RectFilled",
	CmdCircle:        "Circle",
	CmdCircleFilled:  "CircleFilled",
	CmdPolygon:       "Polygon",
	CmdPolygonFilled: "PolygonFilled",
	CmdBezier:        "Bezier",
	CmdText:          "Text",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	Type() CommandType
}

// Corners selects which corners of a rectangle are rounded.
type Corners uint8

const (
	CornerTopLeft Corners = 1 << iota
	CornerTopRight
	CornerBottomLeft
	CornerBottomRight

	CornersNone   Corners = 0
	CornersTop            = CornerTopLeft | CornerTopRight
	CornersBottom         = CornerBottomLeft | CornerBottomRight
	CornersAll            = CornersTop | CornersBottom
)

// PushClip intersects the current clip with Rect.
type PushClip struct {
	Rect geom.Rect
}

// Type implements Command.
func (PushClip) Type() CommandType { return CmdPushClip }

// PopClip restores the clip saved by the matching PushClip.
type PopClip struct{}

// Type implements Command.
func (PopClip) Type() CommandType { return CmdPopClip }

// Line strokes the segment From-To.
type Line struct {
	From, To  geom.Vec2
	Color     gg.RGBA
	Thickness float64
}

// Type implements Command.
func (Line) Type() CommandType { return CmdLine }

// Rect strokes the outline of a rectangle.
type Rect struct {
	Rect      geom.Rect
	Color     gg.RGBA
	Rounding  float64
	Corners   Corners
	Thickness float64
}

// Type implements Command.
func (Rect) Type() CommandType { return CmdRect }

// RectFilled fills a rectangle.
type RectFilled struct {
	Rect     geom.Rect
	Color    gg.RGBA
	Rounding float64
	Corners  Corners
}

// Type implements Command.
func (RectFilled) Type() CommandType { return CmdRectFilled }

// Circle strokes a circle. A non-zero Segments draws a regular polygon
// with that many sides instead of a smooth circle.
type Circle struct {
	Center    geom.Vec2
	Radius    float64
	Color     gg.RGBA
	Segments  int
	Thickness float64
}

// Type implements Command.
func (Circle) Type() CommandType { return CmdCircle }

// CircleFilled fills a circle. Segments behaves as in Circle.
type CircleFilled struct {
	Center   geom.Vec2
	Radius   float64
	Color    gg.RGBA
	Segments int
}

// Type implements Command.
func (CircleFilled) Type() CommandType { return CmdCircleFilled }

// Polygon strokes the closed outline through Points.
type Polygon struct {
	Points    []geom.Vec2
	Color     gg.RGBA
	Thickness float64
}

// Type implements Command.
func (Polygon) Type() CommandType { return CmdPolygon }

// PolygonFilled fills the convex polygon through Points.
type PolygonFilled struct {
	Points []geom.Vec2
	Color  gg.RGBA
}

// Type implements Command.
func (PolygonFilled) Type() CommandType { return CmdPolygonFilled }

// Bezier strokes a cubic curve. Segments is a hint for backends that
// flatten curves themselves.
type Bezier struct {
	P0, P1, P2, P3 geom.Vec2
	Color          gg.RGBA
	Thickness      float64
	Segments       int
}

// Type implements Command.
func (Bezier) Type() CommandType { return CmdBezier }

// Text draws a single line of text with its top-left corner at Pos.
type Text struct {
	Pos   geom.Vec2
	Color gg.RGBA
	Text  string
}

// Type implements Command.
func (Text) Type() CommandType { return CmdText }
