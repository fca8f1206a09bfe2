package nodes

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/nodes/draw"
	"github.com/gogpu/nodes/geom"
)

// scope tracks which Begin/End pair is open.
type scope uint8

const (
	scopeNone      scope = 1 << 0
	scopeEditor    scope = 1 << 1
	scopeNode      scope = 1 << 2
	scopeAttribute scope = 1 << 3
)

func (s scope) String() string {
	switch s {
	case scopeNone:
		return "none"
	case scopeEditor:
		return "editor"
	case scopeNode:
		return "node"
	case scopeAttribute:
		return "attribute"
	}
	return "mixed"
}

type colorPush struct {
	id    ColorID
	value gg.RGBA
}

type styleVarPush struct {
	v     StyleVar
	value geom.Vec2
}

// Context drives one editor per frame. The caller brackets each frame with
// BeginEditor and EndEditor and declares nodes, attributes and links in
// between; EndEditor resolves hover and interaction and leaves the frame's
// commands in DrawList.
//
// A Context is not safe for concurrent use. Separate Contexts are
// independent.
type Context struct {
	editor   *Editor
	style    Style
	io       IO
	measurer TextMeasurer
	list     *draw.List

	scope       scope
	tracker     inputTracker
	in          frameInput
	canvasHost  geom.Rect
	canvasRect  geom.Rect
	mouseInside bool

	// Per-frame declaration state.
	currentNode      int
	currentPin       int
	currentAttrID    int
	attrFlags        AttributeFlags
	attrFlagStack    []AttributeFlags
	submission       []int
	submissionOf     map[int]int
	overlappingNodes []int
	occludedPins     []bool
	layout           layout

	colorStack    []colorPush
	styleVarStack []styleVarPush

	// Hover and per-frame interaction results, as pool indices or -1.
	hoveredNode int
	hoveredLink int
	hoveredPin  int
	deletedLink int
	snapLink    int

	activeAttr   bool
	activeAttrID int

	// Widget activity for the layout helpers.
	activeWidget     int
	hasActiveWidget  bool
	activeWidgetSeen bool
	widgetHovered    bool

	ui             uiState
	linkStartedPin int
	linkDroppedPin int
	linkDetached   bool
	destroyedLink  int
	created        LinkCreatedEvent
}

// NewContext creates a Context editing a fresh Editor.
func NewContext(opts ...ContextOption) *Context {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.measurer == nil {
		o.measurer = FixedMeasurer{Advance: 7, LineHeight: 13}
	}
	if o.editor == nil {
		o.editor = NewEditor()
	}
	c := &Context{
		editor:        o.editor,
		style:         o.style,
		io:            o.io,
		measurer:      o.measurer,
		list:          draw.NewList(),
		scope:         scopeNone,
		attrFlagStack: []AttributeFlags{AttributeFlagsNone},
		submissionOf:  make(map[int]int),
	}
	c.resetFrameState()
	return c
}

// Editor returns the editor the Context is working on.
func (c *Context) Editor() *Editor { return c.editor }

// SetEditor switches the Context to e. It must be called outside
// BeginEditor/EndEditor.
func (c *Context) SetEditor(e *Editor) {
	c.requireScope(scopeNone, "SetEditor")
	c.editor = e
}

// Style returns the active style. Changes apply from the next declaration.
func (c *Context) Style() *Style { return &c.style }

// IO returns the input configuration.
func (c *Context) IO() *IO { return &c.io }

// DrawList returns the commands of the last completed frame. The list is
// reused by the next BeginEditor.
func (c *Context) DrawList() *draw.List { return c.list }

func (c *Context) requireScope(want scope, op string) {
	if c.scope&want == 0 {
		fail(ErrScope, "%s called in %v scope", op, c.scope)
	}
}

func (c *Context) resetFrameState() {
	c.hoveredNode = -1
	c.hoveredLink = -1
	c.hoveredPin = -1
	c.deletedLink = -1
	c.snapLink = -1
	c.currentNode = -1
	c.ui = 0
	c.activeAttr = false
	c.overlappingNodes = c.overlappingNodes[:0]
	c.submission = c.submission[:0]
	clear(c.submissionOf)
	c.widgetHovered = false
	c.activeWidgetSeen = false
}
