package nodes

// Event queries report what happened in the last frame and must be called
// after EndEditor.

// IsLinkStarted reports the attribute ID of the pin a new link was dragged
// out of this frame.
func (c *Context) IsLinkStarted() (int, bool) {
	c.requireScope(scopeNone, "IsLinkStarted")
	return c.linkStartedPin, c.ui&uiLinkStarted != 0
}

// IsLinkDropped reports the attribute ID of the pin a pending link was
// anchored at when it was released without reaching a compatible pin.
// Detached links are reported only when includingDetached is set.
func (c *Context) IsLinkDropped(includingDetached bool) (int, bool) {
	c.requireScope(scopeNone, "IsLinkDropped")
	ok := c.ui&uiLinkDropped != 0 && (includingDetached || !c.linkDetached)
	return c.linkDroppedPin, ok
}

// IsLinkCreated reports a link the user completed this frame. The caller
// owns the graph and decides whether to add it.
func (c *Context) IsLinkCreated() (LinkCreatedEvent, bool) {
	c.requireScope(scopeNone, "IsLinkCreated")
	return c.created, c.ui&uiLinkCreated != 0
}

// IsLinkDestroyed reports the ID of a link the user detached this frame.
func (c *Context) IsLinkDestroyed() (int, bool) {
	c.requireScope(scopeNone, "IsLinkDestroyed")
	return c.destroyedLink, c.deletedLink >= 0
}

// IsEditorHovered reports whether the mouse is over the canvas.
func (c *Context) IsEditorHovered() bool { return c.mouseInside }

// IsNodeHovered reports the ID of the node under the mouse.
func (c *Context) IsNodeHovered() (int, bool) {
	c.requireScope(scopeNone, "IsNodeHovered")
	if c.hoveredNode < 0 {
		return 0, false
	}
	return c.editor.nodes.ID(c.hoveredNode), true
}

// IsLinkHovered reports the ID of the link under the mouse.
func (c *Context) IsLinkHovered() (int, bool) {
	c.requireScope(scopeNone, "IsLinkHovered")
	if c.hoveredLink < 0 {
		return 0, false
	}
	return c.editor.links.ID(c.hoveredLink), true
}

// IsPinHovered reports the attribute ID of the pin under the mouse.
func (c *Context) IsPinHovered() (int, bool) {
	c.requireScope(scopeNone, "IsPinHovered")
	if c.hoveredPin < 0 {
		return 0, false
	}
	return c.editor.pins.ID(c.hoveredPin), true
}

// IsAnyAttributeActive reports the ID of the attribute whose widget holds
// the mouse.
func (c *Context) IsAnyAttributeActive() (int, bool) {
	c.requireScope(scopeNone, "IsAnyAttributeActive")
	return c.activeAttrID, c.activeAttr
}

// IsAttributeActive reports whether the attribute just closed holds the
// mouse. It must be called right after its End*Attribute.
func (c *Context) IsAttributeActive() bool {
	c.requireScope(scopeNode, "IsAttributeActive")
	return c.layout.lastActive
}

// NumSelectedNodes returns the number of selected nodes.
func (c *Context) NumSelectedNodes() int { return len(c.editor.selectedNodes) }

// NumSelectedLinks returns the number of selected links.
func (c *Context) NumSelectedLinks() int { return len(c.editor.selectedLinks) }

// SelectedNodes returns the IDs of the selected nodes in selection order.
func (c *Context) SelectedNodes() []int {
	e := c.editor
	ids := make([]int, len(e.selectedNodes))
	for k, i := range e.selectedNodes {
		ids[k] = e.nodes.ID(i)
	}
	return ids
}

// SelectedLinks returns the IDs of the selected links.
func (c *Context) SelectedLinks() []int {
	e := c.editor
	ids := make([]int, len(e.selectedLinks))
	for k, i := range e.selectedLinks {
		ids[k] = e.links.ID(i)
	}
	return ids
}

// SelectNode adds node id to the selection. It panics if the node is
// unknown or already selected.
func (c *Context) SelectNode(id int) {
	e := c.editor
	e.selectedNodes = e.nodes.Select(e.selectedNodes, id)
}

// DeselectNode removes node id from the selection. It panics if the node is
// unknown or not selected.
func (c *Context) DeselectNode(id int) {
	e := c.editor
	e.selectedNodes = e.nodes.Deselect(e.selectedNodes, id)
}

// ClearNodeSelection deselects every node.
func (c *Context) ClearNodeSelection() { c.editor.selectedNodes = c.editor.selectedNodes[:0] }

// IsNodeSelected reports whether node id is selected.
func (c *Context) IsNodeSelected(id int) bool {
	e := c.editor
	return e.nodes.IsSelected(e.selectedNodes, id)
}

// SelectLink adds link id to the selection.
func (c *Context) SelectLink(id int) {
	e := c.editor
	e.selectedLinks = e.links.Select(e.selectedLinks, id)
}

// DeselectLink removes link id from the selection.
func (c *Context) DeselectLink(id int) {
	e := c.editor
	e.selectedLinks = e.links.Deselect(e.selectedLinks, id)
}

// ClearLinkSelection deselects every link.
func (c *Context) ClearLinkSelection() { c.editor.selectedLinks = c.editor.selectedLinks[:0] }

// IsLinkSelected reports whether link id is selected.
func (c *Context) IsLinkSelected(id int) bool {
	e := c.editor
	return e.links.IsSelected(e.selectedLinks, id)
}
