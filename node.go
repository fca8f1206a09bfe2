package nodes

import "github.com/gogpu/nodes/geom"

// findOrCreateNode returns the node slot for id. New nodes go on top of
// the depth order.
func (c *Context) findOrCreateNode(id int) (int, *nodeData) {
	e := c.editor
	i, created := e.nodes.FindOrCreate(id)
	if created {
		e.depthOrder = append(e.depthOrder, i)
	}
	return i, e.nodes.At(i)
}

// BeginNode opens the declaration of node id. Node contents are laid out
// from the node's origin, and drawn in the node's own channel pair so
// the whole node can be raised above others.
func (c *Context) BeginNode(id int) {
	c.requireScope(scopeEditor, "BeginNode")
	idx, node := c.findOrCreateNode(id)
	if _, dup := c.submissionOf[idx]; dup {
		fail(ErrDuplicateID, "node %d declared twice in one frame", id)
	}
	c.scope = scopeNode
	c.currentNode = idx

	s := &c.style
	node.colors = nodeColors{
		background:         s.Colors[ColNodeBackground],
		backgroundHovered:  s.Colors[ColNodeBackgroundHovered],
		backgroundSelected: s.Colors[ColNodeBackgroundSelected],
		outline:            s.Colors[ColNodeOutline],
		titleBar:           s.Colors[ColTitleBar],
		titleBarHovered:    s.Colors[ColTitleBarHovered],
		titleBarSelected:   s.Colors[ColTitleBarSelected],
	}
	node.layout = nodeLayout{
		cornerRounding:  s.NodeCornerRounding,
		padding:         s.NodePadding,
		borderThickness: s.NodeBorderThickness,
	}
	node.pins = node.pins[:0]
	node.titleBarContentRect = geom.Inverted()

	k := len(c.submission)
	c.submission = append(c.submission, idx)
	c.submissionOf[idx] = k
	c.list.Grow(2)
	c.list.SetCurrent(nodeForegroundChannel(k))

	c.layout.begin(c.gridToScreen(node.origin.Add(node.layout.padding)), s.ItemSpacing)
}

// EndNode closes the node declaration and fixes its screen rectangle and
// pin positions.
func (c *Context) EndNode() {
	c.requireScope(scopeNode, "EndNode")
	c.scope = scopeEditor
	e := c.editor
	idx := c.currentNode
	node := e.nodes.At(idx)

	content, _ := c.layout.endGroup()
	node.rect = content.Expand(node.layout.padding)

	e.gridContentBounds = e.gridContentBounds.Add(node.origin).Add(node.origin.Add(node.rect.Size()))

	if c.mouseInside && node.rect.Contains(c.in.mousePos) {
		c.overlappingNodes = append(c.overlappingNodes, idx)
	}

	for _, p := range node.pins {
		pin := e.pins.At(p)
		pin.pos = pinPosition(node.rect, pin.attrRect, pin.kind, c.style.PinOffset)
	}
	c.currentNode = -1
}

func pinPosition(node, attr geom.Rect, kind PinKind, offset float64) geom.Vec2 {
	y := (attr.Min.Y + attr.Max.Y) * 0.5
	if kind == PinInput {
		return geom.V(node.Min.X-offset, y)
	}
	return geom.V(node.Max.X+offset, y)
}

// BeginNodeTitleBar opens the title bar of the current node. Its contents
// are drawn over a ColTitleBar strip as wide as the node.
func (c *Context) BeginNodeTitleBar() {
	c.requireScope(scopeNode, "BeginNodeTitleBar")
	c.layout.beginGroup()
}

// EndNodeTitleBar closes the title bar and moves the layout cursor below it.
func (c *Context) EndNodeTitleBar() {
	c.requireScope(scopeNode, "EndNodeTitleBar")
	node := c.editor.nodes.At(c.currentNode)
	node.titleBarContentRect, _ = c.layout.endGroup()
	c.layout.setCursor(c.gridToScreen(nodeContentOrigin(node)))
}

func titleBarHeight(n *nodeData) float64 {
	return n.titleBarContentRect.Height() + 2*n.layout.padding.Y
}

func nodeContentOrigin(n *nodeData) geom.Vec2 {
	return n.origin.Add(geom.V(0, titleBarHeight(n))).Add(n.layout.padding)
}

func nodeTitleRect(n *nodeData) geom.Rect {
	r := n.titleBarContentRect.Expand(n.layout.padding)
	return geom.Rect{Min: r.Min, Max: r.Min.Add(geom.V(n.rect.Width(), r.Height()))}
}

// BeginInputAttribute declares an input pin with attribute ID id.
func (c *Context) BeginInputAttribute(id int, shape PinShape) {
	c.beginPinAttribute(id, PinInput, shape, "BeginInputAttribute")
}

// EndInputAttribute closes the input attribute.
func (c *Context) EndInputAttribute() { c.endAttribute("EndInputAttribute") }

// BeginOutputAttribute declares an output pin with attribute ID id.
func (c *Context) BeginOutputAttribute(id int, shape PinShape) {
	c.beginPinAttribute(id, PinOutput, shape, "BeginOutputAttribute")
}

// EndOutputAttribute closes the output attribute.
func (c *Context) EndOutputAttribute() { c.endAttribute("EndOutputAttribute") }

// BeginStaticAttribute declares attribute contents without a pin.
func (c *Context) BeginStaticAttribute(id int) {
	c.requireScope(scopeNode, "BeginStaticAttribute")
	c.scope = scopeAttribute
	c.currentAttrID = id
	c.currentPin = -1
	c.layout.beginGroup()
}

// EndStaticAttribute closes the static attribute.
func (c *Context) EndStaticAttribute() { c.endAttribute("EndStaticAttribute") }

func (c *Context) beginPinAttribute(id int, kind PinKind, shape PinShape, op string) {
	c.requireScope(scopeNode, op)
	c.scope = scopeAttribute
	c.currentAttrID = id
	c.layout.beginGroup()

	e := c.editor
	pi, _ := e.pins.FindOrCreate(id)
	node := e.nodes.At(c.currentNode)
	node.pins = append(node.pins, pi)

	pin := e.pins.At(pi)
	pin.parentNode = c.currentNode
	pin.kind = kind
	pin.shape = shape
	pin.flags = c.attrFlags
	pin.colors = pinColors{
		background: c.style.Colors[ColPin],
		hovered:    c.style.Colors[ColPinHovered],
	}
	c.currentPin = pi
}

func (c *Context) endAttribute(op string) {
	c.requireScope(scopeAttribute, op)
	c.scope = scopeNode
	r, active := c.layout.endGroup()
	if active {
		c.activeAttr = true
		c.activeAttrID = c.currentAttrID
	}
	if c.currentPin >= 0 {
		c.editor.pins.At(c.currentPin).attrRect = r
	}
	c.currentPin = -1
}

// Link declares link id between the attributes startAttr and endAttr.
// Attribute IDs that were not declared this frame get placeholder pins.
func (c *Context) Link(id, startAttr, endAttr int) {
	c.requireScope(scopeEditor, "Link")
	e := c.editor
	li, _ := e.links.FindOrCreate(id)
	start := c.linkPin(id, startAttr)
	end := c.linkPin(id, endAttr)

	link := e.links.At(li)
	link.startPin = start
	link.endPin = end
	link.colors = linkColors{
		base:     c.style.Colors[ColLink],
		hovered:  c.style.Colors[ColLinkHovered],
		selected: c.style.Colors[ColLinkSelected],
	}

	// A pending link that matches this one is snapped onto it, so the
	// state machine can tell a duplicate from the link it is creating.
	if lc, ok := e.interaction.(*linkCreateState); ok {
		onSnap := e.pins.At(end).flags&AttributeEnableLinkCreationOnSnap != 0
		if (onSnap && lc.start == start && lc.end == end) || (lc.start == end && lc.end == start) {
			c.snapLink = li
		}
	}
}

func (c *Context) linkPin(linkID, attrID int) int {
	i, created := c.editor.pins.FindOrCreate(attrID)
	if created {
		Logger().Warn("nodes: placeholder pin for undeclared attribute",
			"link", linkID, "attribute", attrID)
	}
	return i
}

// SetNodeGridSpacePos places node id at pos in grid space.
func (c *Context) SetNodeGridSpacePos(id int, pos geom.Vec2) {
	_, n := c.findOrCreateNode(id)
	n.origin = pos
}

// SetNodeEditorSpacePos places node id at pos in editor space.
func (c *Context) SetNodeEditorSpacePos(id int, pos geom.Vec2) {
	_, n := c.findOrCreateNode(id)
	n.origin = c.editorToGrid(pos)
}

// SetNodeScreenSpacePos places node id at pos in screen space.
func (c *Context) SetNodeScreenSpacePos(id int, pos geom.Vec2) {
	_, n := c.findOrCreateNode(id)
	n.origin = c.screenToGrid(pos)
}

// SetNodeDraggable controls whether dragging moves node id.
func (c *Context) SetNodeDraggable(id int, draggable bool) {
	_, n := c.findOrCreateNode(id)
	n.draggable = draggable
}

func (c *Context) mustNode(id int) *nodeData {
	return c.editor.nodes.At(c.editor.nodes.mustFind(id))
}

// NodeGridSpacePos returns the origin of node id in grid space.
func (c *Context) NodeGridSpacePos(id int) geom.Vec2 { return c.mustNode(id).origin }

// NodeEditorSpacePos returns the origin of node id in editor space.
func (c *Context) NodeEditorSpacePos(id int) geom.Vec2 {
	return c.gridToEditor(c.mustNode(id).origin)
}

// NodeScreenSpacePos returns the origin of node id in screen space.
func (c *Context) NodeScreenSpacePos(id int) geom.Vec2 {
	return c.gridToScreen(c.mustNode(id).origin)
}

// NodeDimensions returns the size of node id as of its last EndNode.
func (c *Context) NodeDimensions(id int) geom.Vec2 {
	r := c.mustNode(id).rect
	if r.IsInverted() {
		return geom.Vec2{}
	}
	return r.Size()
}
