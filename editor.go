package nodes

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/nodes/geom"
)

// PinKind tells which side of a node a pin sits on.
type PinKind int

const (
	// PinNone marks placeholder pins created by Link for attribute IDs that
	// were never declared.
	PinNone PinKind = iota
	PinInput
	PinOutput
)

func (k PinKind) String() string {
	switch k {
	case PinInput:
		return "input"
	case PinOutput:
		return "output"
	}
	return "none"
}

type nodeColors struct {
	background, backgroundHovered, backgroundSelected gg.RGBA
	outline                                           gg.RGBA
	titleBar, titleBarHovered, titleBarSelected       gg.RGBA
}

type nodeLayout struct {
	cornerRounding  float64
	padding         geom.Vec2
	borderThickness float64
}

type nodeData struct {
	// origin is the top-left corner in grid space; everything else about a
	// node is recomputed from the declarations each frame.
	origin geom.Vec2

	// rect and titleBarContentRect are in screen space, valid after EndNode.
	rect                geom.Rect
	titleBarContentRect geom.Rect

	colors    nodeColors
	layout    nodeLayout
	pins      []int
	draggable bool
}

func newNode(int) nodeData {
	return nodeData{
		rect:                geom.Inverted(),
		titleBarContentRect: geom.Inverted(),
		draggable:           true,
	}
}

type pinColors struct {
	background, hovered gg.RGBA
}

type pinData struct {
	parentNode int
	kind       PinKind
	shape      PinShape
	flags      AttributeFlags

	// attrRect and pos are in screen space; pos is set at EndNode.
	attrRect geom.Rect
	pos      geom.Vec2
	colors   pinColors
}

func newPin(int) pinData {
	return pinData{parentNode: -1, shape: PinShapeCircleFilled}
}

type linkColors struct {
	base, hovered, selected gg.RGBA
}

type linkData struct {
	startPin, endPin int
	colors           linkColors
}

func newLink(int) linkData {
	return linkData{startPin: -1, endPin: -1}
}

type miniMapState struct {
	enabled     bool
	fraction    float64
	location    MiniMapLocation
	onNodeHover func(nodeID int)

	// Computed by the layout pass at EndEditor, in screen space.
	rect        geom.Rect
	contentRect geom.Rect
	scale       float64
}

// Editor is the retained state of one node canvas: object pools,
// selections, pan and zoom, depth order and the active interaction.
// A Context edits one Editor at a time; switch with Context.SetEditor.
type Editor struct {
	nodes *Pool[nodeData]
	pins  *Pool[pinData]
	links *Pool[linkData]

	// depthOrder lists node indices back to front.
	depthOrder []int

	panning          geom.Vec2
	zoom             float64
	autoPanningDelta geom.Vec2

	// gridContentBounds accumulates node extents in grid space; inverted
	// means no node was submitted.
	gridContentBounds geom.Rect

	selectedNodes []int
	selectedLinks []int

	// Drag bookkeeping, captured when a node drag starts.
	selectedNodeOffsets []geom.Vec2
	primaryNodeOffset   geom.Vec2

	interaction clickInteraction
	miniMap     miniMapState
}

// NewEditor creates an empty editor at zoom 1 with no panning.
func NewEditor() *Editor {
	return &Editor{
		nodes:             NewPool(newNode),
		pins:              NewPool(newPin),
		links:             NewPool(newLink),
		zoom:              1,
		gridContentBounds: geom.Inverted(),
		interaction:       idleState{},
	}
}

// NumNodes returns the number of nodes the editor retains.
func (e *Editor) NumNodes() int { return e.nodes.Len() }

// NumPins returns the number of pins the editor retains.
func (e *Editor) NumPins() int { return e.pins.Len() }

// NumLinks returns the number of links the editor retains.
func (e *Editor) NumLinks() int { return e.links.Len() }

// Interaction returns the kind of the active click interaction.
func (e *Editor) Interaction() InteractionKind { return e.interaction.Kind() }

// sweep compacts the pools and rewrites every retained index.
func (e *Editor) sweep(c *Context) {
	nodeRemap := e.nodes.Update()
	for i := range e.pins.Len() {
		p := e.pins.At(i)
		p.parentNode = remapIndex(p.parentNode, nodeRemap)
	}
	e.depthOrder = remapIndices(e.depthOrder, nodeRemap)
	if len(e.selectedNodeOffsets) == len(e.selectedNodes) {
		offsets := e.selectedNodeOffsets[:0]
		for k, i := range e.selectedNodes {
			if nodeRemap[i] >= 0 {
				offsets = append(offsets, e.selectedNodeOffsets[k])
			}
		}
		e.selectedNodeOffsets = offsets
	}
	e.selectedNodes = remapIndices(e.selectedNodes, nodeRemap)
	c.hoveredNode = remapIndex(c.hoveredNode, nodeRemap)

	pinRemap := e.pins.Update()
	for i := range e.nodes.Len() {
		n := e.nodes.At(i)
		n.pins = remapIndices(n.pins, pinRemap)
	}
	for i := range e.links.Len() {
		l := e.links.At(i)
		l.startPin = remapIndex(l.startPin, pinRemap)
		l.endPin = remapIndex(l.endPin, pinRemap)
		if l.startPin < 0 || l.endPin < 0 {
			// A link needs both endpoints; drop it with its pins.
			e.links.live[i] = false
		}
	}
	c.hoveredPin = remapIndex(c.hoveredPin, pinRemap)
	if lc, ok := e.interaction.(*linkCreateState); ok {
		lc.start = remapIndex(lc.start, pinRemap)
		lc.end = remapIndex(lc.end, pinRemap)
		if lc.start < 0 {
			e.interaction = idleState{}
		}
	}

	linkRemap := e.links.Update()
	e.selectedLinks = remapIndices(e.selectedLinks, linkRemap)
	c.hoveredLink = remapIndex(c.hoveredLink, linkRemap)
	c.deletedLink = remapIndex(c.deletedLink, linkRemap)
	c.snapLink = remapIndex(c.snapLink, linkRemap)

	if removed := countRemoved(nodeRemap) + countRemoved(pinRemap) + countRemoved(linkRemap); removed > 0 {
		Logger().Debug("nodes: pool sweep",
			"removed", removed,
			"nodes", e.nodes.Len(),
			"pins", e.pins.Len(),
			"links", e.links.Len())
	}
}

func countRemoved(remap []int) int {
	n := 0
	for _, r := range remap {
		if r < 0 {
			n++
		}
	}
	return n
}
