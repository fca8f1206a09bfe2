package nodes

import (
	"math"
	"slices"

	"github.com/gogpu/nodes/geom"
)

// resolveOccludedPins marks the pins covered by a node higher in the depth
// order. Occluded pins cannot be hovered.
func (c *Context) resolveOccludedPins() {
	e := c.editor
	c.occludedPins = slices.Grow(c.occludedPins[:0], e.pins.Len())[:e.pins.Len()]
	clear(c.occludedPins)

	order := c.submittedDepthOrder()
	for i := 0; i < len(order)-1; i++ {
		below := e.nodes.At(order[i])
		for _, above := range order[i+1:] {
			r := e.nodes.At(above).rect
			for _, p := range below.pins {
				if r.Contains(e.pins.At(p).pos) {
					c.occludedPins[p] = true
				}
			}
		}
	}
}

func (c *Context) resolveHoveredPin() int {
	e := c.editor
	best := -1
	bestDist := math.MaxFloat64
	radiusSq := c.style.PinHoverRadius * c.style.PinHoverRadius
	for i := range e.pins.Len() {
		if !e.pins.Live(i) || (i < len(c.occludedPins) && c.occludedPins[i]) {
			continue
		}
		d := e.pins.At(i).pos.DistanceSquared(c.in.mousePos)
		if d < radiusSq && d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// resolveHoveredNode picks the topmost node under the mouse.
func (c *Context) resolveHoveredNode() int {
	switch len(c.overlappingNodes) {
	case 0:
		return -1
	case 1:
		return c.overlappingNodes[0]
	}
	best, bestDepth := -1, -1
	for _, idx := range c.overlappingNodes {
		if d := slices.Index(c.editor.depthOrder, idx); d > bestDepth {
			best, bestDepth = idx, d
		}
	}
	return best
}

// resolveHoveredLink returns the first link attached to the hovered pin.
// With no pin hovered it returns the link closest to the mouse within
// LinkHoverDistance.
func (c *Context) resolveHoveredLink() int {
	e := c.editor
	best := -1
	bestDist := math.MaxFloat64
	for i := range e.links.Len() {
		if !e.links.Live(i) {
			continue
		}
		l := e.links.At(i)
		if c.hoveredPin >= 0 {
			if l.startPin == c.hoveredPin || l.endPin == c.hoveredPin {
				return i
			}
			continue
		}
		curve := c.linkCurve(l)
		if !curve.ContainingRect(c.style.LinkHoverDistance).Contains(c.in.mousePos) {
			continue
		}
		if d := curve.Distance(c.in.mousePos); d < c.style.LinkHoverDistance && d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// linkCurve builds the bezier of a link, always leaving the output side to
// the right.
func (c *Context) linkCurve(l *linkData) geom.LinkCurve {
	start := c.editor.pins.At(l.startPin)
	end := c.editor.pins.At(l.endPin)
	return geom.NewLinkCurve(start.pos, end.pos, start.kind == PinInput, c.style.LinkLineSegmentsPerLength)
}
