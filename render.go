package nodes

import (
	"math"
	"slices"

	"github.com/gogpu/gg"

	"github.com/gogpu/nodes/draw"
	"github.com/gogpu/nodes/geom"
)

const pinCircleSegments = 8

func (c *Context) drawGrid() {
	s := c.style.GridSpacing
	if s <= 0 {
		return
	}
	pan := c.editor.panning
	size := c.canvasRect.Size()
	primary := c.style.Flags&StyleGridLinesPrimary != 0
	line := c.style.Colors[ColGridLine]
	primaryLine := c.style.Colors[ColGridLinePrimary]

	start := geom.V(positiveMod(pan.X, s), positiveMod(pan.Y, s))
	for k := 0; ; k++ {
		x := start.X + float64(k)*s
		if x >= size.X {
			break
		}
		col := line
		if primary && nearlyEqual(x, pan.X) {
			col = primaryLine
		}
		c.list.AddLine(c.editorToScreen(geom.V(x, 0)), c.editorToScreen(geom.V(x, size.Y)), col, 1)
	}
	for k := 0; ; k++ {
		y := start.Y + float64(k)*s
		if y >= size.Y {
			break
		}
		col := line
		if primary && nearlyEqual(y, pan.Y) {
			col = primaryLine
		}
		c.list.AddLine(c.editorToScreen(geom.V(0, y)), c.editorToScreen(geom.V(size.X, y)), col, 1)
	}
}

func positiveMod(v, m float64) float64 {
	r := math.Mod(v, m)
	if r < 0 {
		r += m
	}
	return r
}

func nearlyEqual(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func (c *Context) drawNode(idx int) {
	e := c.editor
	n := e.nodes.At(idx)
	hovered := c.hoveredNode == idx && e.interaction.Kind() != InteractionBoxSelection

	bg, title := n.colors.background, n.colors.titleBar
	switch {
	case slices.Contains(e.selectedNodes, idx):
		bg, title = n.colors.backgroundSelected, n.colors.titleBarSelected
	case hovered:
		bg, title = n.colors.backgroundHovered, n.colors.titleBarHovered
	}

	rounding := n.layout.cornerRounding
	c.list.AddRectFilled(n.rect, bg, rounding, draw.CornersAll)
	if n.titleBarContentRect.Height() > 0 {
		c.list.AddRectFilled(nodeTitleRect(n), title, rounding, draw.CornersTop)
	}
	if c.style.Flags&StyleNodeOutline != 0 {
		c.list.AddRect(n.rect, n.colors.outline, rounding, draw.CornersAll, n.layout.borderThickness)
	}

	for _, p := range n.pins {
		c.drawPin(p)
	}
}

func (c *Context) drawPin(idx int) {
	p := c.editor.pins.At(idx)
	col := p.colors.background
	if c.hoveredPin == idx {
		col = p.colors.hovered
	}
	drawPinShape(c.list, p.pos, p.shape, col, &c.style)
}

func drawPinShape(l *draw.List, center geom.Vec2, shape PinShape, col gg.RGBA, s *Style) {
	switch shape {
	case PinShapeCircle:
		l.AddCircle(center, s.PinCircleRadius, col, pinCircleSegments, s.PinLineThickness)
	case PinShapeCircleFilled:
		l.AddCircleFilled(center, s.PinCircleRadius, col, pinCircleSegments)
	case PinShapeQuad, PinShapeQuadFilled:
		h := s.PinQuadSideLength / 2
		tl := center.Add(geom.V(-h, h))
		bl := center.Add(geom.V(-h, -h))
		br := center.Add(geom.V(h, -h))
		tr := center.Add(geom.V(h, h))
		if shape == PinShapeQuad {
			l.AddQuad(tl, bl, br, tr, col, s.PinLineThickness)
		} else {
			l.AddQuadFilled(tl, bl, br, tr, col)
		}
	case PinShapeTriangle, PinShapeTriangleFilled:
		side := s.PinTriangleSideLength
		left := -math.Sqrt(3) / 6 * side
		right := math.Sqrt(3) / 3 * side
		v := 0.5 * side
		a := center.Add(geom.V(left, v))
		b := center.Add(geom.V(left, -v))
		tip := center.Add(geom.V(right, 0))
		if shape == PinShapeTriangle {
			l.AddTriangle(a, b, tip, col, 2*s.PinLineThickness)
		} else {
			l.AddTriangleFilled(a, b, tip, col)
		}
	}
}

func (c *Context) drawLink(idx int) {
	e := c.editor
	l := e.links.At(idx)
	if l.startPin < 0 || l.endPin < 0 {
		return
	}
	hovered := c.hoveredLink == idx && e.interaction.Kind() != InteractionBoxSelection

	col := l.colors.base
	switch {
	case slices.Contains(e.selectedLinks, idx):
		col = l.colors.selected
	case hovered:
		col = l.colors.hovered
	}
	c.list.AddBezier(c.linkCurve(l), col, c.style.LinkThickness/e.zoom)
}
