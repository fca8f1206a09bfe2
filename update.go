package nodes

import (
	"slices"

	"github.com/gogpu/nodes/geom"
)

func (c *Context) setInteraction(next clickInteraction) {
	e := c.editor
	if prev := e.interaction.Kind(); prev != next.Kind() {
		Logger().Debug("nodes: interaction", "from", prev, "to", next.Kind())
	}
	e.interaction = next
}

func (c *Context) beginCanvasInteraction() {
	e := c.editor
	if e.interaction.Kind() != InteractionNone {
		return
	}
	if c.hoveredNode >= 0 || c.hoveredLink >= 0 || c.hoveredPin >= 0 || c.anyItemHovered() || !c.mouseInside {
		return
	}
	switch {
	case c.in.altClicked:
		c.setInteraction(panningState{})
	case c.in.leftClicked:
		p := c.screenToGrid(c.in.mousePos)
		c.setInteraction(&boxSelectState{rect: geom.Rect{Min: p, Max: p}})
	}
}

func (c *Context) beginNodeSelection(idx int) {
	e := c.editor
	if e.interaction.Kind() != InteractionNone {
		return
	}
	c.setInteraction(nodeDragState{})

	if !slices.Contains(e.selectedNodes, idx) {
		e.selectedLinks = e.selectedLinks[:0]
		if !c.in.multiSelect {
			e.selectedNodes = e.selectedNodes[:0]
		}
		e.selectedNodes = append(e.selectedNodes, idx)
		c.raiseNode(idx)
	} else if c.in.multiSelect {
		e.selectedNodes = slices.DeleteFunc(e.selectedNodes, func(i int) bool { return i == idx })
		c.setInteraction(idleState{})
	}

	// Offsets are kept relative to the clicked node so the selection moves
	// as a block and can snap as one.
	origin := e.nodes.At(idx).origin
	e.primaryNodeOffset = origin.Add(c.canvasOrigin()).Add(e.panning).Sub(c.in.mousePos)
	e.selectedNodeOffsets = e.selectedNodeOffsets[:0]
	for _, sel := range e.selectedNodes {
		e.selectedNodeOffsets = append(e.selectedNodeOffsets, e.nodes.At(sel).origin.Sub(origin))
	}
}

// raiseNode moves a node to the top of the depth order.
func (c *Context) raiseNode(idx int) {
	e := c.editor
	if k := slices.Index(e.depthOrder, idx); k >= 0 {
		e.depthOrder = append(slices.Delete(e.depthOrder, k, k+1), idx)
	}
}

func (c *Context) beginLinkSelection(link int) {
	e := c.editor
	c.setInteraction(linkSelectState{})
	e.selectedNodes = e.selectedNodes[:0]
	e.selectedLinks = append(e.selectedLinks[:0], link)
}

// beginLinkDetach turns an existing link into a pending one anchored at
// the pin opposite detachPin, and hides the link for this frame.
func (c *Context) beginLinkDetach(link, detachPin int, kind LinkCreationKind) {
	e := c.editor
	l := e.links.At(link)
	start := l.startPin
	if start == detachPin {
		start = l.endPin
	}
	c.setInteraction(&linkCreateState{start: start, end: -1, kind: kind})
	c.deletedLink = link
	c.destroyedLink = e.links.ID(link)
}

func (c *Context) beginLinkInteraction(link int) {
	e := c.editor
	if e.interaction.Kind() != InteractionNone {
		return
	}
	l := e.links.At(link)

	if c.in.detachModifier {
		start, end := e.pins.At(l.startPin), e.pins.At(l.endPin)
		mouse := c.in.mousePos
		closest := l.endPin
		if mouse.DistanceSquared(start.pos) < mouse.DistanceSquared(end.pos) {
			closest = l.startPin
		}
		c.beginLinkDetach(link, closest, LinkCreationFromDetach)
		return
	}

	if c.hoveredPin >= 0 {
		if e.pins.At(c.hoveredPin).flags&AttributeEnableLinkDetachWithDragClick != 0 {
			c.beginLinkDetach(link, c.hoveredPin, LinkCreationFromDetach)
		} else {
			c.beginLinkCreation(c.hoveredPin)
		}
		return
	}
	c.beginLinkSelection(link)
}

func (c *Context) beginLinkCreation(pin int) {
	c.setInteraction(&linkCreateState{start: pin, end: -1, kind: LinkCreationStandard})
	c.ui |= uiLinkStarted
	c.linkStartedPin = c.editor.pins.ID(pin)
}

// updateInteraction advances the active interaction by one frame.
func (c *Context) updateInteraction() {
	e := c.editor
	switch st := e.interaction.(type) {
	case *boxSelectState:
		c.updateBoxSelection(st)
	case nodeDragState:
		c.translateSelectedNodes()
		if c.in.leftReleased {
			c.setInteraction(idleState{})
		}
	case linkSelectState:
		if c.in.leftReleased {
			c.setInteraction(idleState{})
		}
	case *linkCreateState:
		c.updateLinkCreation(st)
	case panningState:
		if c.in.altDragging {
			e.panning = e.panning.Add(c.in.delta)
		} else {
			c.setInteraction(idleState{})
		}
	case hostItemState:
		if c.in.leftReleased {
			c.setInteraction(idleState{})
		}
	}
}

func (c *Context) updateBoxSelection(st *boxSelectState) {
	e := c.editor
	st.rect.Max = c.screenToGrid(c.in.mousePos)
	box := geom.Rect{Min: c.gridToScreen(st.rect.Min), Max: c.gridToScreen(st.rect.Max)}

	c.updateBoxSelected(box)

	c.list.AddRectFilled(box, c.style.Colors[ColBoxSelector], 0, 0)
	c.list.AddRect(box, c.style.Colors[ColBoxSelectorOutline], 0, 0, 1)

	if c.in.leftReleased {
		// Raise the selected nodes above the rest, keeping their relative
		// order.
		if n := len(e.selectedNodes); n > 0 && n < len(e.depthOrder) {
			var kept, raised []int
			for _, idx := range e.depthOrder {
				if slices.Contains(e.selectedNodes, idx) {
					raised = append(raised, idx)
				} else {
					kept = append(kept, idx)
				}
			}
			e.depthOrder = append(kept, raised...)
		}
		c.setInteraction(idleState{})
	}
}

// updateBoxSelected replaces both selections with what box covers. box is
// in screen space.
func (c *Context) updateBoxSelected(box geom.Rect) {
	e := c.editor
	box = box.Normalize()

	e.selectedNodes = e.selectedNodes[:0]
	for _, idx := range c.submission {
		if box.Overlaps(e.nodes.At(idx).rect) {
			e.selectedNodes = append(e.selectedNodes, idx)
		}
	}

	e.selectedLinks = e.selectedLinks[:0]
	for i := range e.links.Len() {
		if !e.links.Live(i) {
			continue
		}
		l := e.links.At(i)
		start, end := e.pins.At(l.startPin), e.pins.At(l.endPin)
		if geom.ChordOverlapsRect(box, start.pos, end.pos) {
			e.selectedLinks = append(e.selectedLinks, i)
		}
	}
}

// translateSelectedNodes drags the selection, keeping every node at its
// captured offset from the primary node.
func (c *Context) translateSelectedNodes() {
	e := c.editor
	if !c.in.leftDragging {
		return
	}
	// With snapping a small jitter on click must not move the node.
	if c.style.Flags&StyleGridSnapping != 0 && c.in.dragMaxDistSq <= 5 {
		return
	}
	origin := c.snapToGrid(c.in.mousePos.Sub(c.canvasOrigin()).Sub(e.panning).Add(e.primaryNodeOffset))
	for k, idx := range e.selectedNodes {
		if k >= len(e.selectedNodeOffsets) {
			break
		}
		n := e.nodes.At(idx)
		if n.draggable {
			n.origin = origin.Add(e.selectedNodeOffsets[k]).Add(e.autoPanningDelta)
		}
	}
}

// findDuplicateLink returns a live link joining the two pins in either
// direction.
func (c *Context) findDuplicateLink(a, b int) int {
	e := c.editor
	key := normalizedPair(a, b)
	for i := range e.links.Len() {
		if !e.links.Live(i) {
			continue
		}
		l := e.links.At(i)
		if normalizedPair(l.startPin, l.endPin) == key {
			return i
		}
	}
	return -1
}

func normalizedPair(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

// shouldSnapToPin reports whether a pending link from start may attach to
// hovered: the pins belong to different nodes, have opposite kinds and
// are not already joined, unless the join is the link being detached.
func (c *Context) shouldSnapToPin(start, hovered, duplicate int) bool {
	e := c.editor
	sp, hp := e.pins.At(start), e.pins.At(hovered)
	if sp.parentNode == hp.parentNode || sp.kind == hp.kind {
		return false
	}
	return duplicate < 0 || duplicate == c.snapLink
}

func (c *Context) updateLinkCreation(st *linkCreateState) {
	e := c.editor
	hovered := c.hoveredPin

	duplicate := -1
	if hovered >= 0 {
		duplicate = c.findDuplicateLink(st.start, hovered)
	}
	shouldSnap := hovered >= 0 && c.shouldSnapToPin(st.start, hovered, duplicate)

	// Moving off a pin the pending link was created on again detaches
	// that link.
	if st.end >= 0 && hovered != st.end && c.snapLink >= 0 {
		c.beginLinkDetach(c.snapLink, st.end, st.kind)
		// beginLinkDetach replaces the state; keep working on the new one.
		st = e.interaction.(*linkCreateState)
	}

	startPos := e.pins.At(st.start).pos
	endPos := c.in.mousePos
	if shouldSnap {
		endPos = e.pins.At(hovered).pos
	}
	curve := geom.NewLinkCurve(startPos, endPos, e.pins.At(st.start).kind == PinInput, c.style.LinkLineSegmentsPerLength)
	c.list.AddBezier(curve, c.style.Colors[ColLink], c.style.LinkThickness/e.zoom)

	creationOnSnap := hovered >= 0 && e.pins.At(hovered).flags&AttributeEnableLinkCreationOnSnap != 0

	if !shouldSnap {
		st.end = -1
	}

	createLink := shouldSnap && (c.in.leftReleased || creationOnSnap)
	// While held, a link created on snap is reported once per pin.
	if createLink && duplicate < 0 && (c.in.leftReleased || st.end != hovered) {
		st.end = hovered
		c.raiseLinkCreated(st)
	}

	if c.in.leftReleased {
		c.setInteraction(idleState{})
		if !createLink {
			c.ui |= uiLinkDropped
			c.linkDroppedPin = e.pins.ID(st.start)
			c.linkDetached = st.kind == LinkCreationFromDetach
		}
	}
}

// raiseLinkCreated records the event with the output pin first.
func (c *Context) raiseLinkCreated(st *linkCreateState) {
	e := c.editor
	start, end := st.start, st.end
	if e.pins.At(start).kind != PinOutput {
		start, end = end, start
	}
	sp, ep := e.pins.At(start), e.pins.At(end)
	c.ui |= uiLinkCreated
	c.created = LinkCreatedEvent{
		StartPin:        e.pins.ID(start),
		EndPin:          e.pins.ID(end),
		StartNode:       c.nodeID(sp.parentNode),
		EndNode:         c.nodeID(ep.parentNode),
		CreatedFromSnap: !c.in.leftReleased,
	}
}

func (c *Context) nodeID(idx int) int {
	if idx < 0 {
		return -1
	}
	return c.editor.nodes.ID(idx)
}
