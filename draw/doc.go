// Package draw holds the output of an editor frame: typed drawing commands
// collected into a List of re-orderable channels.
//
// Channels let the editor emit a node's background after its contents
// and still have it drawn underneath them, and let whole nodes be moved
// in front of each other after submission:
//
//	l := draw.NewList()
//	first := l.Grow(2)
//	l.SetCurrent(first + 1)
//	l.AddText(geom.V(10, 10), gg.White, "title")
//	l.SetCurrent(first)
//	l.AddRectFilled(geom.R(0, 0, 100, 40), gg.Black, 4, draw.CornersAll)
//	l.Merge()
//
// A List only records; package backend replays it onto gg surfaces.
package draw
