package scene

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/gogpu/nodes"
	"github.com/gogpu/nodes/geom"
)

// EventKind classifies a graph event reported by the editor.
type EventKind int

const (
	EventLinkStarted EventKind = iota
	EventLinkDropped
	EventLinkCreated
	EventLinkDestroyed
)

var eventNames = [...]string{
	EventLinkStarted:   "link started",
	EventLinkDropped:   "link dropped",
	EventLinkCreated:   "link created",
	EventLinkDestroyed: "link destroyed",
}

func (k EventKind) String() string {
	if k >= 0 && int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// Event is something the editor reported in one frame.
type Event struct {
	Frame int
	Kind  EventKind
	// Link is the ID the scene gave a created link, or the destroyed link.
	Link int
	// Pin is the started or dropped pin, or the start pin of a created link.
	Pin int
	// EndPin is the end pin of a created link.
	EndPin int
}

func (e Event) String() string {
	switch e.Kind {
	case EventLinkCreated:
		return fmt.Sprintf("frame %d: %s %d (%d -> %d)", e.Frame, e.Kind, e.Link, e.Pin, e.EndPin)
	case EventLinkDestroyed:
		return fmt.Sprintf("frame %d: %s %d", e.Frame, e.Kind, e.Link)
	}
	return fmt.Sprintf("frame %d: %s at pin %d", e.Frame, e.Kind, e.Pin)
}

// Report summarises a finished run.
type Report struct {
	Frames        int
	Events        []Event
	Links         []Link
	SelectedNodes []int
	SelectedLinks []int
	Panning       geom.Vec2
	Zoom          float64
}

// MiniMap configures the mini-map drawn each frame. A zero Fraction
// disables it.
type MiniMap struct {
	Fraction float64
	Location nodes.MiniMapLocation
}

// Runner declares the scene's graph every frame and applies the user's
// link edits to it, as a host application would.
type Runner struct {
	scene   *Scene
	ctx     *nodes.Context
	canvas  geom.Rect
	links   []Link
	nextID  int
	frame   int
	placed  bool
	miniMap MiniMap
	logger  *slog.Logger

	// OnFrame is called after every frame with the frame number.
	OnFrame func(frame int)
}

// NewRunner returns a runner playing s on ctx over canvas.
func NewRunner(s *Scene, ctx *nodes.Context, canvas geom.Rect) *Runner {
	r := &Runner{
		scene:  s,
		ctx:    ctx,
		canvas: canvas,
		links:  slices.Clone(s.Links),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, l := range r.links {
		r.nextID = max(r.nextID, l.ID+1)
	}
	return r
}

// SetMiniMap enables the mini-map.
func (r *Runner) SetMiniMap(m MiniMap) { r.miniMap = m }

// SetLogger routes per-frame event logs to l.
func (r *Runner) SetLogger(l *slog.Logger) {
	if l != nil {
		r.logger = l
	}
}

// Links returns the current graph links.
func (r *Runner) Links() []Link { return slices.Clone(r.links) }

// Step plays one frame of input and returns the events it produced.
func (r *Runner) Step(in nodes.Input) []Event {
	c := r.ctx
	if in.MouseWheel != 0 && r.canvas.Contains(in.MousePos) {
		c.SetZoom(c.Zoom()*(1+0.1*in.MouseWheel), in.MousePos)
	}

	c.BeginEditor(r.canvas, in)
	r.declare()
	if r.miniMap.Fraction > 0 {
		c.MiniMap(r.miniMap.Fraction, r.miniMap.Location, nil)
	}
	c.EndEditor()

	events := r.collect()
	for _, e := range events {
		r.logger.Debug("scene event", "frame", e.Frame, "kind", e.Kind.String(), "link", e.Link, "pin", e.Pin)
	}
	if r.OnFrame != nil {
		r.OnFrame(r.frame)
	}
	r.frame++
	return events
}

func (r *Runner) declare() {
	c := r.ctx
	for _, n := range r.scene.Nodes {
		if !r.placed {
			c.SetNodeGridSpacePos(n.ID, geom.V(n.Pos[0], n.Pos[1]))
			c.SetNodeDraggable(n.ID, !n.Locked)
		}
		c.BeginNode(n.ID)
		if n.Title != "" {
			c.BeginNodeTitleBar()
			c.Label(n.Title)
			c.EndNodeTitleBar()
		}
		if n.SnapLinks {
			c.PushAttributeFlag(nodes.AttributeEnableLinkCreationOnSnap)
		}
		for _, p := range n.Inputs {
			c.BeginInputAttribute(p.ID, p.PinShape())
			c.Label(p.Label)
			c.EndInputAttribute()
		}
		if n.SnapLinks {
			c.PopAttributeFlag()
		}
		for _, p := range n.Static {
			c.BeginStaticAttribute(p.ID)
			c.Label(p.Label)
			c.EndStaticAttribute()
		}
		for _, p := range n.Outputs {
			c.BeginOutputAttribute(p.ID, p.PinShape())
			c.Label(p.Label)
			c.EndOutputAttribute()
		}
		c.EndNode()
	}
	r.placed = true

	for _, l := range r.links {
		c.Link(l.ID, l.From, l.To)
	}
}

func (r *Runner) collect() []Event {
	c := r.ctx
	var events []Event
	if pin, ok := c.IsLinkStarted(); ok {
		events = append(events, Event{Frame: r.frame, Kind: EventLinkStarted, Pin: pin})
	}
	if pin, ok := c.IsLinkDropped(false); ok {
		events = append(events, Event{Frame: r.frame, Kind: EventLinkDropped, Pin: pin})
	}
	if ev, ok := c.IsLinkCreated(); ok {
		l := Link{ID: r.nextID, From: ev.StartPin, To: ev.EndPin}
		r.nextID++
		r.links = append(r.links, l)
		events = append(events, Event{Frame: r.frame, Kind: EventLinkCreated, Link: l.ID, Pin: l.From, EndPin: l.To})
	}
	if id, ok := c.IsLinkDestroyed(); ok {
		r.links = slices.DeleteFunc(r.links, func(l Link) bool { return l.ID == id })
		events = append(events, Event{Frame: r.frame, Kind: EventLinkDestroyed, Link: id})
	}
	return events
}

// Run plays every scripted frame, stopping early when ctx is cancelled.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	rep := &Report{}
	for _, f := range r.scene.Frames {
		in, err := f.Input()
		if err != nil {
			return nil, err
		}
		for range 1 + f.Repeat {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			rep.Events = append(rep.Events, r.Step(in)...)
		}
	}
	// A scene without frames still renders once.
	if r.frame == 0 {
		rep.Events = append(rep.Events, r.Step(nodes.Input{})...)
	}

	rep.Frames = r.frame
	rep.Links = r.Links()
	rep.SelectedNodes = r.ctx.SelectedNodes()
	rep.SelectedLinks = r.ctx.SelectedLinks()
	rep.Panning = r.ctx.Panning()
	rep.Zoom = r.ctx.Zoom()
	return rep, nil
}
