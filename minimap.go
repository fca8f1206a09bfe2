package nodes

import (
	"math"
	"slices"

	"github.com/gogpu/nodes/draw"
	"github.com/gogpu/nodes/geom"
)

// MiniMap enables an overview of the whole graph in a corner of the canvas
// for the current frame. fraction is the share of the canvas size it may
// take, clamped to (0, 1]. onNodeHover, when not nil, is called with the ID
// of the node under the mouse on the mini-map.
func (c *Context) MiniMap(fraction float64, location MiniMapLocation, onNodeHover func(nodeID int)) {
	c.requireScope(scopeEditor, "MiniMap")
	mm := &c.editor.miniMap
	mm.enabled = true
	mm.fraction = min(max(fraction, 0.001), 1)
	mm.location = location
	mm.onNodeHover = onNodeHover
}

// IsMiniMapHovered reports whether the mouse was over the mini-map in the
// last frame.
func (c *Context) IsMiniMapHovered() bool { return c.isMiniMapHovered() }

func (c *Context) isMiniMapHovered() bool {
	mm := &c.editor.miniMap
	return mm.enabled && c.mouseInside && mm.rect.Contains(c.in.mousePos)
}

func miniMapAlignment(loc MiniMapLocation) geom.Vec2 {
	switch loc {
	case MiniMapBottomRight:
		return geom.V(1, 1)
	case MiniMapBottomLeft:
		return geom.V(0, 1)
	case MiniMapTopRight:
		return geom.V(1, 0)
	}
	return geom.V(0, 0)
}

// miniMapLayout fits the grid content bounds into the mini-map corner.
func (c *Context) miniMapLayout() {
	e := c.editor
	mm := &e.miniMap
	if !mm.enabled {
		return
	}
	offset := c.style.MiniMapOffset.Div(e.zoom)
	border := c.style.MiniMapPadding.Div(e.zoom)
	canvas := c.canvasRect

	maxSize := canvas.Size().Mul(mm.fraction).Sub(border.Mul(2)).Floor()
	maxSize = geom.Max(maxSize, geom.V(1, 1))
	gridSize := maxSize
	if !e.gridContentBounds.IsInverted() {
		gridSize = geom.Max(e.gridContentBounds.Size().Floor(), geom.V(1, 1))
	}

	var size geom.Vec2
	if gridRatio, maxRatio := gridSize.X/gridSize.Y, maxSize.X/maxSize.Y; gridRatio > maxRatio {
		size = geom.V(maxSize.X, maxSize.X/gridRatio)
	} else {
		size = geom.V(maxSize.Y*gridRatio, maxSize.Y)
	}
	size = size.Floor()
	mm.scale = size.X / gridSize.X

	topLeft := canvas.Min.Add(offset).Add(border)
	bottomRight := canvas.Max.Sub(offset).Sub(border).Sub(size)
	pos := topLeft.Lerp(bottomRight, miniMapAlignment(mm.location)).Floor()

	mm.contentRect = geom.Rect{Min: pos, Max: pos.Add(size)}
	mm.rect = mm.contentRect.Expand(border)
}

// miniMapRecentre centres the canvas on the grid point under the mouse
// while the left button is held over the mini-map.
func (c *Context) miniMapRecentre() {
	e := c.editor
	if !c.in.leftDown || e.interaction.Kind() != InteractionNone || len(c.submission) == 0 {
		return
	}
	target := c.miniMapToGrid(c.in.mousePos)
	center := c.canvasRect.Size().Mul(0.5)
	e.panning = center.Sub(target).Floor()
}

func (c *Context) drawMiniMap() {
	e := c.editor
	mm := &e.miniMap
	if !mm.enabled {
		return
	}
	s := &c.style
	thin := 1 / e.zoom

	bg, outline := s.Colors[ColMiniMapBackground], s.Colors[ColMiniMapOutline]
	if c.isMiniMapHovered() {
		bg, outline = s.Colors[ColMiniMapBackgroundHovered], s.Colors[ColMiniMapOutlineHovered]
	}
	c.list.AddRectFilled(mm.rect, bg, 0, 0)
	c.list.AddRect(mm.rect, outline, 0, 0, thin)

	c.list.PushClip(mm.rect)

	for i := range e.links.Len() {
		if !e.links.Live(i) || i == c.deletedLink {
			continue
		}
		l := e.links.At(i)
		start, end := e.pins.At(l.startPin), e.pins.At(l.endPin)
		curve := geom.NewLinkCurve(c.screenToMiniMap(start.pos), c.screenToMiniMap(end.pos),
			start.kind == PinInput, s.LinkLineSegmentsPerLength/mm.scale)
		col := s.Colors[ColMiniMapLink]
		if slices.Contains(e.selectedLinks, i) {
			col = s.Colors[ColMiniMapLinkSelected]
		}
		c.list.AddBezier(curve, col, s.LinkThickness*mm.scale/e.zoom)
	}

	for _, idx := range c.submission {
		n := e.nodes.At(idx)
		r := geom.NewRect(c.screenToMiniMap(n.rect.Min), c.screenToMiniMap(n.rect.Max))
		rounding := math.Floor(n.layout.cornerRounding * mm.scale)

		col := s.Colors[ColMiniMapNodeBackground]
		switch {
		case e.interaction.Kind() == InteractionNone && c.mouseInside && r.Contains(c.in.mousePos):
			col = s.Colors[ColMiniMapNodeBackgroundHovered]
			if mm.onNodeHover != nil {
				mm.onNodeHover(e.nodes.ID(idx))
			}
		case slices.Contains(e.selectedNodes, idx):
			col = s.Colors[ColMiniMapNodeBackgroundSelected]
		}
		c.list.AddRectFilled(r, col, rounding, draw.CornersAll)
		c.list.AddRect(r, s.Colors[ColMiniMapNodeOutline], rounding, draw.CornersAll, thin)
	}

	view := geom.NewRect(c.screenToMiniMap(c.canvasRect.Min), c.screenToMiniMap(c.canvasRect.Max))
	c.list.AddRectFilled(view, s.Colors[ColMiniMapCanvas], 0, 0)
	c.list.AddRect(view, s.Colors[ColMiniMapCanvasOutline], 0, 0, thin)

	c.list.PopClip()
}
