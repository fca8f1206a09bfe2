package nodes

import (
	"slices"

	"github.com/gogpu/nodes/geom"
)

// BeginEditor opens a frame on the canvas rectangle, given in host pixels,
// with this frame's input snapshot. Every node, attribute and link must be
// declared before the matching EndEditor.
func (c *Context) BeginEditor(canvas geom.Rect, in Input) {
	c.requireScope(scopeNone, "BeginEditor")
	c.scope = scopeEditor
	e := c.editor

	// A widget that was not redeclared last frame cannot stay active.
	if c.hasActiveWidget && !c.activeWidgetSeen {
		c.hasActiveWidget = false
	}
	c.resetFrameState()

	e.autoPanningDelta = geom.Vec2{}
	e.gridContentBounds = geom.Inverted()
	e.miniMap.enabled = false
	e.nodes.Reset()
	e.pins.Reset()
	e.links.Reset()

	c.canvasHost = canvas.Normalize()
	origin := c.canvasHost.Min
	c.canvasRect = geom.Rect{Min: origin, Max: origin.Add(c.canvasHost.Size().Div(e.zoom))}
	c.in = c.tracker.next(in, c.io, c.hostToScreen, e.zoom)
	c.mouseInside = c.canvasRect.Contains(c.in.mousePos)

	c.list.Reset()
	c.list.Origin = origin
	c.list.Scale = e.zoom
	c.list.PushClip(c.canvasRect)
	c.list.AddRectFilled(c.canvasRect, c.style.Colors[ColGridBackground], 0, 0)
	if c.style.Flags&StyleGridLines != 0 {
		c.drawGrid()
	}
}

// EndEditor closes the frame: it resolves hover, advances the click
// interaction, renders nodes and links into depth-sorted channels and
// drops every object that was not redeclared.
func (c *Context) EndEditor() {
	c.requireScope(scopeEditor, "EndEditor")
	e := c.editor

	if e.gridContentBounds.IsInverted() {
		e.gridContentBounds = geom.NewRect(c.screenToGrid(c.canvasRect.Min), c.screenToGrid(c.canvasRect.Max))
	}

	if c.in.leftClicked && c.anyItemActive() {
		c.setInteraction(hostItemState{})
	}

	c.miniMapLayout()
	miniMapHovered := c.isMiniMapHovered()

	if k := e.interaction.Kind(); (k == InteractionNone || k == InteractionLinkCreation) &&
		c.mouseInside && !miniMapHovered {
		c.resolveHover()
	}

	for k, idx := range c.submission {
		c.list.SetCurrent(nodeBackgroundChannel(k))
		c.drawNode(idx)
	}

	if miniMapHovered {
		c.miniMapRecentre()
	} else {
		c.dispatchClick()
	}

	if shouldAutoPan(e.interaction.Kind()) && !c.mouseInside {
		c.autoPan()
	}

	interactionChannel := c.list.Grow(1)
	c.list.SetCurrent(interactionChannel)
	c.updateInteraction()
	c.drawMiniMap()

	c.list.SetCurrent(0)
	for i := range e.links.Len() {
		if e.links.Live(i) && i != c.deletedLink {
			c.drawLink(i)
		}
	}

	sortChannelsByDepth(c.list, c.submittedDepthOrder(), slices.Clone(c.submission))
	c.list.Merge()
	c.list.PopClip()

	e.sweep(c)
	e.miniMap.onNodeHover = nil
	c.scope = scopeNone
}

func shouldAutoPan(k InteractionKind) bool {
	return k == InteractionBoxSelection || k == InteractionLinkCreation || k == InteractionNode
}

// autoPan scrolls toward the mouse while a drag leaves the canvas.
func (c *Context) autoPan() {
	e := c.editor
	dir := c.canvasRect.Center().Sub(c.in.mousePos).Normalize()
	e.autoPanningDelta = dir.Mul(c.in.deltaTime * c.io.AutoPanningSpeed)
	e.panning = e.panning.Add(e.autoPanningDelta)
}

func (c *Context) resolveHover() {
	c.resolveOccludedPins()
	c.hoveredPin = c.resolveHoveredPin()
	if c.hoveredPin < 0 {
		c.hoveredNode = c.resolveHoveredNode()
	}
	if c.hoveredNode < 0 {
		c.hoveredLink = c.resolveHoveredLink()
	}
}

// dispatchClick starts an interaction from this frame's click, with
// priority link, pin, node, canvas.
func (c *Context) dispatchClick() {
	in := &c.in
	switch {
	case in.leftClicked && c.hoveredLink >= 0:
		c.beginLinkInteraction(c.hoveredLink)
	case in.leftClicked && c.hoveredPin >= 0:
		if c.editor.interaction.Kind() == InteractionNone {
			c.beginLinkCreation(c.hoveredPin)
		}
	case in.leftClicked && c.hoveredNode >= 0:
		c.beginNodeSelection(c.hoveredNode)
	case in.leftClicked || in.leftReleased || in.altClicked || in.wheel != 0:
		c.beginCanvasInteraction()
	}
}

func (c *Context) anyItemActive() bool {
	return c.hasActiveWidget || c.in.hostItemActive
}

func (c *Context) anyItemHovered() bool {
	return c.widgetHovered || c.in.hostItemHovered
}

// submittedDepthOrder returns the depth order restricted to nodes declared
// this frame.
func (c *Context) submittedDepthOrder() []int {
	order := make([]int, 0, len(c.submission))
	for _, idx := range c.editor.depthOrder {
		if _, ok := c.submissionOf[idx]; ok {
			order = append(order, idx)
		}
	}
	return order
}
