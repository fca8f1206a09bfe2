package nodes

import "github.com/gogpu/nodes/geom"

// MouseButton identifies a pointer button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle

	mouseButtonCount
)

var mouseButtonNames = [...]string{
	MouseLeft:   "left",
	MouseRight:  "right",
	MouseMiddle: "middle",
}

// String returns the lowercase button name.
func (b MouseButton) String() string {
	if b >= 0 && int(b) < len(mouseButtonNames) {
		return mouseButtonNames[b]
	}
	return "unknown"
}

// Modifiers is a set of keyboard modifier keys.
type Modifiers uint8

const (
	ModCtrl Modifiers = 1 << iota
	ModShift
	ModAlt
	ModSuper

	// ModNone disables a modifier-gated feature in IO.
	ModNone Modifiers = 0
)

// Held reports whether every key in m is held in mods. ModNone is never held.
func (m Modifiers) Held(mods Modifiers) bool {
	return m != ModNone && mods&m == m
}

// Input is the host's pointer and keyboard snapshot for one frame.
// Positions are in host pixels.
type Input struct {
	MousePos   geom.Vec2
	MouseDown  [mouseButtonCount]bool
	MouseWheel float64
	Mods       Modifiers

	// DeltaTime is the frame duration in seconds.
	DeltaTime float64

	// HostItemActive and HostItemHovered report widgets the host placed
	// inside nodes without going through Widget.
	HostItemActive  bool
	HostItemHovered bool
}

// IO configures how input drives the editor.
type IO struct {
	// EmulateThreeButtonMouse makes a left click while these modifiers are
	// held behave like the alt mouse button. ModNone disables it.
	EmulateThreeButtonMouse Modifiers

	// LinkDetachWithModifierClick detaches a clicked link from its nearer
	// pin while these modifiers are held. ModNone disables it.
	LinkDetachWithModifierClick Modifiers

	// MultipleSelectModifier toggles nodes in and out of the selection on
	// click. Ctrl is always accepted in addition.
	MultipleSelectModifier Modifiers

	// AltMouseButton pans the canvas.
	AltMouseButton MouseButton

	// AutoPanningSpeed is the pan speed in pixels per second while dragging
	// outside the canvas.
	AutoPanningSpeed float64
}

// DefaultIO returns the default input configuration.
func DefaultIO() IO {
	return IO{
		EmulateThreeButtonMouse:     ModNone,
		LinkDetachWithModifierClick: ModNone,
		MultipleSelectModifier:      ModCtrl,
		AltMouseButton:              MouseRight,
		AutoPanningSpeed:            500,
	}
}

// frameInput is the per-frame input state derived from two consecutive
// Input snapshots. Positions are in editor screen space (zoom-normalized).
type frameInput struct {
	hostMouse geom.Vec2
	mousePos  geom.Vec2
	delta     geom.Vec2
	wheel     float64
	deltaTime float64

	leftClicked, leftReleased, leftDragging bool
	leftDown                                bool
	altClicked, altDragging                 bool
	multiSelect, detachModifier             bool

	// dragMaxDistSq is the largest squared distance from the left click
	// position reached during the current press.
	dragMaxDistSq float64

	hostItemActive, hostItemHovered bool
}

// inputTracker keeps the previous snapshot so clicks and releases can be
// derived from button levels.
type inputTracker struct {
	prevDown    [mouseButtonCount]bool
	prevMouse   geom.Vec2
	clickPos    [mouseButtonCount]geom.Vec2
	dragMaxSq   [mouseButtonCount]float64
	hasPrevious bool
}

// next derives the frame input for in. toScreen maps host pixels to editor
// screen space; zoom converts host distances.
func (t *inputTracker) next(in Input, io IO, toScreen func(geom.Vec2) geom.Vec2, zoom float64) frameInput {
	var clicked, released, down [mouseButtonCount]bool
	for b := range mouseButtonCount {
		down[b] = in.MouseDown[b]
		clicked[b] = down[b] && !t.prevDown[b]
		released[b] = !down[b] && t.prevDown[b]
		if clicked[b] {
			t.clickPos[b] = in.MousePos
			t.dragMaxSq[b] = 0
		}
		if down[b] {
			d := in.MousePos.Sub(t.clickPos[b]).Div(zoom).LengthSquared()
			t.dragMaxSq[b] = max(t.dragMaxSq[b], d)
		}
	}

	var delta geom.Vec2
	if t.hasPrevious {
		delta = in.MousePos.Sub(t.prevMouse).Div(zoom)
	}

	alt := io.AltMouseButton
	if alt < 0 || alt >= mouseButtonCount {
		alt = MouseRight
	}
	threeButton := io.EmulateThreeButtonMouse.Held(in.Mods)

	fi := frameInput{
		hostMouse:       in.MousePos,
		mousePos:        toScreen(in.MousePos),
		delta:           delta,
		wheel:           in.MouseWheel,
		deltaTime:       in.DeltaTime,
		leftClicked:     clicked[MouseLeft],
		leftReleased:    released[MouseLeft],
		leftDragging:    down[MouseLeft],
		leftDown:        down[MouseLeft],
		altClicked:      (threeButton && clicked[MouseLeft]) || clicked[alt],
		altDragging:     (threeButton && down[MouseLeft]) || down[alt],
		multiSelect:     io.MultipleSelectModifier.Held(in.Mods) || ModCtrl.Held(in.Mods),
		detachModifier:  io.LinkDetachWithModifierClick.Held(in.Mods),
		dragMaxDistSq:   t.dragMaxSq[MouseLeft],
		hostItemActive:  in.HostItemActive,
		hostItemHovered: in.HostItemHovered,
	}

	t.prevDown = down
	t.prevMouse = in.MousePos
	t.hasPrevious = true
	return fi
}
