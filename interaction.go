package nodes

import "github.com/gogpu/nodes/geom"

// InteractionKind identifies the active click interaction of an editor.
type InteractionKind uint8

const (
	InteractionNone InteractionKind = iota
	InteractionPanning
	InteractionBoxSelection
	InteractionNode
	InteractionLink
	InteractionLinkCreation
	// InteractionHostItem means a widget inside a node owns the mouse.
	InteractionHostItem
)

var interactionNames = [...]string{
	InteractionNone:         "none",
	InteractionPanning:      "panning",
	InteractionBoxSelection: "box-selection",
	InteractionNode:         "node",
	InteractionLink:         "link",
	InteractionLinkCreation: "link-creation",
	InteractionHostItem:     "host-item",
}

func (k InteractionKind) String() string {
	if int(k) < len(interactionNames) {
		return interactionNames[k]
	}
	return "unknown"
}

// LinkCreationKind tells how a pending link was started.
type LinkCreationKind uint8

const (
	// LinkCreationStandard is a link dragged out of a pin.
	LinkCreationStandard LinkCreationKind = iota
	// LinkCreationFromDetach is an existing link detached from one end.
	LinkCreationFromDetach
)

// clickInteraction is the editor's single active interaction. Exactly one
// variant is held at any time; idleState is the rest state.
type clickInteraction interface {
	Kind() InteractionKind
}

type idleState struct{}

type panningState struct{}

type boxSelectState struct {
	// rect is in grid space; Min is the press position.
	rect geom.Rect
}

type nodeDragState struct{}

type linkSelectState struct{}

type linkCreateState struct {
	start int
	// end is the pin the pending link is snapped to, -1 when unsnapped.
	end  int
	kind LinkCreationKind
}

type hostItemState struct{}

func (idleState) Kind() InteractionKind        { return InteractionNone }
func (panningState) Kind() InteractionKind     { return InteractionPanning }
func (*boxSelectState) Kind() InteractionKind  { return InteractionBoxSelection }
func (nodeDragState) Kind() InteractionKind    { return InteractionNode }
func (linkSelectState) Kind() InteractionKind  { return InteractionLink }
func (*linkCreateState) Kind() InteractionKind { return InteractionLinkCreation }
func (hostItemState) Kind() InteractionKind    { return InteractionHostItem }

// uiState holds the one-frame events raised by the state machine.
type uiState uint8

const (
	uiLinkStarted uiState = 1 << iota
	uiLinkDropped
	uiLinkCreated
)

// LinkCreatedEvent describes a link completed by the user. StartPin is
// always the output side.
type LinkCreatedEvent struct {
	StartPin, EndPin   int
	StartNode, EndNode int
	// CreatedFromSnap is set when the link was reported while the mouse was
	// still held, through AttributeEnableLinkCreationOnSnap.
	CreatedFromSnap bool
}
