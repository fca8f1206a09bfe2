package nodes

import (
	"math"

	"github.com/gogpu/nodes/geom"
)

// The editor works with four coordinate spaces:
//
//   - grid: node origins, independent of pan and canvas placement
//   - editor: grid shifted by the pan offset
//   - screen: editor shifted to the canvas origin, divided by zoom around it
//   - mini-map: grid scaled into the mini-map content rectangle
//
// Host pixels relate to screen space through the zoom factor, with the
// canvas' top-left corner as the fixed point.

const (
	minZoom = 0.1
	maxZoom = 10
)

func (c *Context) canvasOrigin() geom.Vec2 { return c.canvasHost.Min }

func (c *Context) gridToScreen(v geom.Vec2) geom.Vec2 {
	return v.Add(c.canvasOrigin()).Add(c.editor.panning)
}

func (c *Context) screenToGrid(v geom.Vec2) geom.Vec2 {
	return v.Sub(c.canvasOrigin()).Sub(c.editor.panning)
}

func (c *Context) gridToEditor(v geom.Vec2) geom.Vec2 { return v.Add(c.editor.panning) }

func (c *Context) editorToGrid(v geom.Vec2) geom.Vec2 { return v.Sub(c.editor.panning) }

func (c *Context) editorToScreen(v geom.Vec2) geom.Vec2 { return v.Add(c.canvasOrigin()) }

func (c *Context) screenToEditor(v geom.Vec2) geom.Vec2 { return v.Sub(c.canvasOrigin()) }

func (c *Context) hostToScreen(p geom.Vec2) geom.Vec2 {
	o := c.canvasOrigin()
	return o.Add(p.Sub(o).Div(c.editor.zoom))
}

func (c *Context) screenToHost(p geom.Vec2) geom.Vec2 {
	o := c.canvasOrigin()
	return o.Add(p.Sub(o).Mul(c.editor.zoom))
}

func (c *Context) screenToMiniMap(v geom.Vec2) geom.Vec2 {
	mm := &c.editor.miniMap
	return c.screenToGrid(v).Sub(c.editor.gridContentBounds.Min).Mul(mm.scale).Add(mm.contentRect.Min)
}

func (c *Context) miniMapToGrid(v geom.Vec2) geom.Vec2 {
	mm := &c.editor.miniMap
	return v.Sub(mm.contentRect.Min).Div(mm.scale).Add(c.editor.gridContentBounds.Min)
}

// GridToScreen converts a grid-space point to editor screen space.
func (c *Context) GridToScreen(v geom.Vec2) geom.Vec2 { return c.gridToScreen(v) }

// ScreenToGrid converts an editor screen-space point to grid space.
func (c *Context) ScreenToGrid(v geom.Vec2) geom.Vec2 { return c.screenToGrid(v) }

// HostToScreen converts host pixels to editor screen space.
func (c *Context) HostToScreen(p geom.Vec2) geom.Vec2 { return c.hostToScreen(p) }

// ScreenToHost converts editor screen space to host pixels.
func (c *Context) ScreenToHost(p geom.Vec2) geom.Vec2 { return c.screenToHost(p) }

// snapToGrid rounds v to the nearest grid intersection when
// StyleGridSnapping is set.
func (c *Context) snapToGrid(v geom.Vec2) geom.Vec2 {
	if c.style.Flags&StyleGridSnapping == 0 {
		return v
	}
	s := c.style.GridSpacing
	return geom.V(snapAxis(v.X, s), snapAxis(v.Y, s))
}

func snapAxis(x, spacing float64) float64 {
	half := spacing * 0.5
	mod := math.Mod(math.Abs(x)+half, spacing) - half
	if x < 0 {
		return x + mod
	}
	return x - mod
}

// Zoom returns the editor's zoom factor.
func (c *Context) Zoom() float64 { return c.editor.zoom }

// SetZoom sets the zoom factor, clamped to [0.1, 10], keeping the grid
// point under the host position pos fixed.
func (c *Context) SetZoom(zoom float64, pos geom.Vec2) {
	e := c.editor
	zoom = min(max(zoom, minZoom), maxZoom)
	if zoom == e.zoom {
		return
	}
	p := pos.Sub(c.canvasOrigin())
	e.panning = e.panning.Add(p.Div(zoom)).Sub(p.Div(e.zoom))
	e.zoom = zoom
	if c.scope != scopeNone {
		c.in.mousePos = c.hostToScreen(c.in.hostMouse)
	}
}

// Panning returns the pan offset in grid units.
func (c *Context) Panning() geom.Vec2 { return c.editor.panning }

// ResetPanning sets the pan offset.
func (c *Context) ResetPanning(pan geom.Vec2) { c.editor.panning = pan }

// MoveToNode pans so the node's origin sits at the canvas origin.
func (c *Context) MoveToNode(id int) {
	i, _ := c.findOrCreateNode(id)
	c.editor.panning = c.editor.nodes.At(i).origin.Neg()
}
