package nodes

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/nodes/geom"
)

// ColorID names an entry of Style.Colors.
type ColorID int

const (
	ColNodeBackground ColorID = iota
	ColNodeBackgroundHovered
	ColNodeBackgroundSelected
	ColNodeOutline
	ColTitleBar
	ColTitleBarHovered
	ColTitleBarSelected
	ColLink
	ColLinkHovered
	ColLinkSelected
	ColPin
	ColPinHovered
	ColBoxSelector
	ColBoxSelectorOutline
	ColGridBackground
	ColGridLine
	ColGridLinePrimary
	ColMiniMapBackground
	ColMiniMapBackgroundHovered
	ColMiniMapOutline
	ColMiniMapOutlineHovered
	ColMiniMapNodeBackground
	ColMiniMapNodeBackgroundHovered
	ColMiniMapNodeBackgroundSelected
	ColMiniMapNodeOutline
	ColMiniMapLink
	ColMiniMapLinkSelected
	ColMiniMapCanvas
	ColMiniMapCanvasOutline

	// ColCount is the number of colour entries.
	ColCount
)

var colorNames = [ColCount]string{
	"NodeBackground", "NodeBackgroundHovered", "NodeBackgroundSelected", "NodeOutline",
	"TitleBar", "TitleBarHovered", "TitleBarSelected",
	"Link", "LinkHovered", "LinkSelected",
	"Pin", "PinHovered",
	"BoxSelector", "BoxSelectorOutline",
	"GridBackground", "GridLine", "GridLinePrimary",
	"MiniMapBackground", "MiniMapBackgroundHovered",
	"MiniMapOutline", "MiniMapOutlineHovered",
	"MiniMapNodeBackground", "MiniMapNodeBackgroundHovered", "MiniMapNodeBackgroundSelected",
	"MiniMapNodeOutline",
	"MiniMapLink", "MiniMapLinkSelected",
	"MiniMapCanvas", "MiniMapCanvasOutline",
}

// String returns the colour name without the Col prefix.
func (c ColorID) String() string {
	if c >= 0 && c < ColCount {
		return colorNames[c]
	}
	return "Unknown"
}

// ParseColorID looks a colour up by its String name.
func ParseColorID(name string) (ColorID, bool) {
	for i, n := range colorNames {
		if n == name {
			return ColorID(i), true
		}
	}
	return 0, false
}

// StyleFlags toggles optional editor rendering and behaviour.
type StyleFlags uint32

const (
	StyleNodeOutline StyleFlags = 1 << 0
	StyleGridLines   StyleFlags = 1 << 2
	// StyleGridLinesPrimary draws the lines through the grid origin in
	// ColGridLinePrimary.
	StyleGridLinesPrimary StyleFlags = 1 << 3
	// StyleGridSnapping snaps dragged nodes to GridSpacing.
	StyleGridSnapping StyleFlags = 1 << 4

	StyleFlagsNone StyleFlags = 0
)

// PinShape selects how a pin is drawn.
type PinShape int

const (
	PinShapeCircle PinShape = iota
	PinShapeCircleFilled
	PinShapeTriangle
	PinShapeTriangleFilled
	PinShapeQuad
	PinShapeQuadFilled
)

// AttributeFlags modify how links attach to pins declared while they are
// pushed.
type AttributeFlags uint32

const (
	AttributeFlagsNone AttributeFlags = 0
	// AttributeEnableLinkDetachWithDragClick lets a drag-click on the pin
	// detach the link under it.
	AttributeEnableLinkDetachWithDragClick AttributeFlags = 1 << 0
	// AttributeEnableLinkCreationOnSnap reports the link as created as soon
	// as a pending link snaps to the pin, before the mouse is released.
	AttributeEnableLinkCreationOnSnap AttributeFlags = 1 << 1
)

// MiniMapLocation selects the canvas corner of the mini-map.
type MiniMapLocation int

const (
	MiniMapBottomLeft MiniMapLocation = iota
	MiniMapBottomRight
	MiniMapTopLeft
	MiniMapTopRight
)

// Style holds every visual parameter of the editor.
type Style struct {
	GridSpacing float64

	NodeCornerRounding  float64
	NodePadding         geom.Vec2
	NodeBorderThickness float64

	LinkThickness             float64
	LinkLineSegmentsPerLength float64
	LinkHoverDistance         float64

	// PinCircleRadius is used by both circle shapes, the side lengths by the
	// quad and triangle shapes.
	PinCircleRadius       float64
	PinQuadSideLength     float64
	PinTriangleSideLength float64
	PinLineThickness      float64
	PinHoverRadius        float64
	PinOffset             float64

	MiniMapPadding geom.Vec2
	MiniMapOffset  geom.Vec2

	Flags  StyleFlags
	Colors [ColCount]gg.RGBA

	// ItemSpacing and TextColor drive the layout helpers (Label, Widget,
	// Dummy) placed inside nodes.
	ItemSpacing geom.Vec2
	TextColor   gg.RGBA
}

// DefaultStyle returns the default metrics with the dark colour preset.
func DefaultStyle() Style {
	s := Style{
		GridSpacing:               24,
		NodeCornerRounding:        4,
		NodePadding:               geom.V(8, 8),
		NodeBorderThickness:       1,
		LinkThickness:             3,
		LinkLineSegmentsPerLength: 0.1,
		LinkHoverDistance:         10,
		PinCircleRadius:           4,
		PinQuadSideLength:         7,
		PinTriangleSideLength:     9.5,
		PinLineThickness:          1,
		PinHoverRadius:            10,
		PinOffset:                 0,
		MiniMapPadding:            geom.V(8, 8),
		MiniMapOffset:             geom.V(4, 4),
		Flags:                     StyleNodeOutline | StyleGridLines,
		ItemSpacing:               geom.V(8, 4),
		TextColor:                 rgba8(255, 255, 255, 255),
	}
	StyleColorsDark(&s)
	return s
}

func rgba8(r, g, b, a uint8) gg.RGBA {
	return gg.RGBA{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: float64(a) / 255}
}

// StyleColorsDark applies the dark colour preset.
func StyleColorsDark(s *Style) {
	c := &s.Colors
	c[ColNodeBackground] = rgba8(50, 50, 50, 255)
	c[ColNodeBackgroundHovered] = rgba8(75, 75, 75, 255)
	c[ColNodeBackgroundSelected] = rgba8(75, 75, 75, 255)
	c[ColNodeOutline] = rgba8(100, 100, 100, 255)
	c[ColTitleBar] = rgba8(41, 74, 122, 255)
	c[ColTitleBarHovered] = rgba8(66, 150, 250, 255)
	c[ColTitleBarSelected] = rgba8(66, 150, 250, 255)
	c[ColLink] = rgba8(61, 133, 224, 200)
	c[ColLinkHovered] = rgba8(66, 150, 250, 255)
	c[ColLinkSelected] = rgba8(66, 150, 250, 255)
	c[ColPin] = rgba8(53, 150, 250, 180)
	c[ColPinHovered] = rgba8(53, 150, 250, 255)
	c[ColBoxSelector] = rgba8(61, 133, 224, 30)
	c[ColBoxSelectorOutline] = rgba8(61, 133, 224, 150)
	c[ColGridBackground] = rgba8(40, 40, 50, 200)
	c[ColGridLine] = rgba8(200, 200, 200, 40)
	c[ColGridLinePrimary] = rgba8(240, 240, 240, 60)
	s.TextColor = rgba8(255, 255, 255, 255)
	miniMapColors(s, rgba8(25, 25, 25, 150), rgba8(25, 25, 25, 200),
		rgba8(150, 150, 150, 100), rgba8(150, 150, 150, 200))
}

// StyleColorsClassic applies the classic colour preset.
func StyleColorsClassic(s *Style) {
	c := &s.Colors
	c[ColNodeBackground] = rgba8(50, 50, 50, 255)
	c[ColNodeBackgroundHovered] = rgba8(75, 75, 75, 255)
	c[ColNodeBackgroundSelected] = rgba8(75, 75, 75, 255)
	c[ColNodeOutline] = rgba8(100, 100, 100, 255)
	c[ColTitleBar] = rgba8(69, 69, 138, 255)
	c[ColTitleBarHovered] = rgba8(82, 82, 161, 255)
	c[ColTitleBarSelected] = rgba8(82, 82, 161, 255)
	c[ColLink] = rgba8(255, 255, 255, 100)
	c[ColLinkHovered] = rgba8(105, 99, 204, 153)
	c[ColLinkSelected] = rgba8(105, 99, 204, 153)
	c[ColPin] = rgba8(89, 102, 156, 170)
	c[ColPinHovered] = rgba8(102, 122, 179, 200)
	c[ColBoxSelector] = rgba8(82, 82, 161, 100)
	c[ColBoxSelectorOutline] = rgba8(82, 82, 161, 255)
	c[ColGridBackground] = rgba8(40, 40, 50, 200)
	c[ColGridLine] = rgba8(200, 200, 200, 40)
	c[ColGridLinePrimary] = rgba8(240, 240, 240, 60)
	s.TextColor = rgba8(230, 230, 230, 255)
	miniMapColors(s, rgba8(25, 25, 25, 100), rgba8(25, 25, 25, 200),
		rgba8(150, 150, 150, 100), rgba8(150, 150, 150, 200))
}

// StyleColorsLight applies the light colour preset.
func StyleColorsLight(s *Style) {
	c := &s.Colors
	c[ColNodeBackground] = rgba8(240, 240, 240, 255)
	c[ColNodeBackgroundHovered] = rgba8(240, 240, 240, 255)
	c[ColNodeBackgroundSelected] = rgba8(240, 240, 240, 255)
	c[ColNodeOutline] = rgba8(100, 100, 100, 255)
	c[ColTitleBar] = rgba8(248, 248, 248, 255)
	c[ColTitleBarHovered] = rgba8(209, 209, 209, 255)
	c[ColTitleBarSelected] = rgba8(209, 209, 209, 255)
	c[ColLink] = rgba8(66, 150, 250, 100)
	c[ColLinkHovered] = rgba8(66, 150, 250, 242)
	c[ColLinkSelected] = rgba8(66, 150, 250, 242)
	c[ColPin] = rgba8(66, 150, 250, 160)
	c[ColPinHovered] = rgba8(66, 150, 250, 255)
	c[ColBoxSelector] = rgba8(90, 170, 250, 30)
	c[ColBoxSelectorOutline] = rgba8(90, 170, 250, 150)
	c[ColGridBackground] = rgba8(225, 225, 225, 255)
	c[ColGridLine] = rgba8(180, 180, 180, 100)
	c[ColGridLinePrimary] = rgba8(120, 120, 120, 100)
	s.TextColor = rgba8(0, 0, 0, 255)
	miniMapColors(s, rgba8(25, 25, 25, 100), rgba8(25, 25, 25, 200),
		rgba8(150, 150, 150, 100), rgba8(150, 150, 150, 200))
}

// miniMapColors fills the mini-map entries shared by every preset.
// They are derived from the node and link colours already set.
func miniMapColors(s *Style, bg, bgHovered, outline, outlineHovered gg.RGBA) {
	c := &s.Colors
	c[ColMiniMapBackground] = bg
	c[ColMiniMapBackgroundHovered] = bgHovered
	c[ColMiniMapOutline] = outline
	c[ColMiniMapOutlineHovered] = outlineHovered
	c[ColMiniMapNodeBackground] = rgba8(200, 200, 200, 100)
	c[ColMiniMapNodeBackgroundHovered] = rgba8(200, 200, 200, 255)
	c[ColMiniMapNodeBackgroundSelected] = c[ColMiniMapNodeBackgroundHovered]
	c[ColMiniMapNodeOutline] = rgba8(200, 200, 200, 100)
	c[ColMiniMapLink] = c[ColLink]
	c[ColMiniMapLinkSelected] = c[ColLinkSelected]
	c[ColMiniMapCanvas] = rgba8(200, 200, 200, 25)
	c[ColMiniMapCanvasOutline] = rgba8(200, 200, 200, 200)
}

// StyleVar names a numeric Style field for PushStyleVar.
type StyleVar int

const (
	StyleVarGridSpacing StyleVar = iota
	StyleVarNodeCornerRounding
	StyleVarNodePadding
	StyleVarNodeBorderThickness
	StyleVarLinkThickness
	StyleVarLinkLineSegmentsPerLength
	StyleVarLinkHoverDistance
	StyleVarPinCircleRadius
	StyleVarPinQuadSideLength
	StyleVarPinTriangleSideLength
	StyleVarPinLineThickness
	StyleVarPinHoverRadius
	StyleVarPinOffset
	StyleVarMiniMapPadding
	StyleVarMiniMapOffset

	styleVarCount
)

// float returns a pointer to a scalar style variable, or nil when v is a
// vector variable.
func (s *Style) float(v StyleVar) *float64 {
	switch v {
	case StyleVarGridSpacing:
		return &s.GridSpacing
	case StyleVarNodeCornerRounding:
		return &s.NodeCornerRounding
	case StyleVarNodeBorderThickness:
		return &s.NodeBorderThickness
	case StyleVarLinkThickness:
		return &s.LinkThickness
	case StyleVarLinkLineSegmentsPerLength:
		return &s.LinkLineSegmentsPerLength
	case StyleVarLinkHoverDistance:
		return &s.LinkHoverDistance
	case StyleVarPinCircleRadius:
		return &s.PinCircleRadius
	case StyleVarPinQuadSideLength:
		return &s.PinQuadSideLength
	case StyleVarPinTriangleSideLength:
		return &s.PinTriangleSideLength
	case StyleVarPinLineThickness:
		return &s.PinLineThickness
	case StyleVarPinHoverRadius:
		return &s.PinHoverRadius
	case StyleVarPinOffset:
		return &s.PinOffset
	}
	return nil
}

// vec returns a pointer to a vector style variable, or nil when v is a
// scalar variable.
func (s *Style) vec(v StyleVar) *geom.Vec2 {
	switch v {
	case StyleVarNodePadding:
		return &s.NodePadding
	case StyleVarMiniMapPadding:
		return &s.MiniMapPadding
	case StyleVarMiniMapOffset:
		return &s.MiniMapOffset
	}
	return nil
}
