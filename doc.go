// Package nodes provides an immediate-mode node-graph editor for Go.
//
// # Overview
//
// The caller owns the graph. Every frame it declares the nodes, pins and
// links it wants shown; the editor lays them out, hit-tests the mouse,
// runs selection, dragging, panning and link creation, and emits draw
// commands for a host surface. The only retained state is visual: node
// positions, selections, pan, zoom and the interaction in progress.
//
// # Quick Start
//
//	ctx := nodes.NewContext()
//
//	// each frame
//	ctx.BeginEditor(geom.R(0, 0, 800, 600), input)
//
//	ctx.BeginNode(1)
//	ctx.BeginNodeTitleBar()
//	ctx.Label("add")
//	ctx.EndNodeTitleBar()
//	ctx.BeginInputAttribute(2, nodes.PinShapeCircleFilled)
//	ctx.Label("a")
//	ctx.EndInputAttribute()
//	ctx.BeginOutputAttribute(3, nodes.PinShapeTriangleFilled)
//	ctx.Label("sum")
//	ctx.EndOutputAttribute()
//	ctx.EndNode()
//
//	for _, l := range graph.Links {
//	    ctx.Link(l.ID, l.From, l.To)
//	}
//	ctx.EndEditor()
//
//	if ev, ok := ctx.IsLinkCreated(); ok {
//	    graph.AddLink(ev.StartPin, ev.EndPin)
//	}
//
//	backend.Replay(surface, ctx.DrawList())
//
// # Coordinate System
//
// Node origins are kept in grid space. Editor space is grid space offset by
// the pan; screen space is editor space offset by the canvas origin and
// divided by the zoom factor around it. Draw commands are in screen space,
// and the draw.List carries the origin and scale that map them back to
// host pixels.
//
// # Architecture
//
// The library is organized into:
//   - nodes: Context, Editor, declarations, hover, interactions, queries
//   - geom: vectors, rectangles, link curves
//   - draw: draw commands and the multi-channel list
//   - backend: replay of draw lists onto gg surfaces and font measurement
//
// A Context is not safe for concurrent use.
package nodes

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
