// Package backend renders editor draw lists with gg.
//
// The nodes package only records draw commands. This package replays a
// draw.List onto a Surface, which is either a gg.Context drawing pixels
// right away or a gg/recording Recorder capturing vector commands for
// later playback.
//
// # Target Registration
//
// Targets are registered via init() functions and selected at runtime.
// Both built-in targets are registered on import:
//
//	import "github.com/gogpu/nodes/backend"
//
// # Target Selection
//
// Use Default() to get the best available target, or Get() to request
// a specific target by name:
//
//	// Get the default (best available) target
//	t := backend.Default()
//
//	// Or request a specific target
//	t := backend.Get("recording")
//
// # Rendering a Frame
//
//	if err := t.Begin(800, 600); err != nil {
//		log.Fatal(err)
//	}
//	if err := backend.Replay(t.Surface(), ctx.DrawList()); err != nil {
//		log.Print(err)
//	}
//	if err := t.End(); err != nil {
//		log.Fatal(err)
//	}
//	_ = t.SaveToFile("graph.png")
//
// # Text
//
// Labels are laid out with a nodes.TextMeasurer. FontMeasurer measures
// with the same text.Face the targets draw with, so that node sizes match
// the rendered labels:
//
//	face, _, err := backend.LoadFace("", 13)
//	ctx := nodes.NewContext(nodes.WithTextMeasurer(backend.NewFontMeasurer(face)))
//	target := backend.NewRasterTarget(face)
//
// # Available Targets
//
// - "raster": immediate CPU rendering into a gg.Context (always available)
// - "recording": gg/recording capture played back into a recording backend
package backend
