// Package geom provides the 2D primitives shared by the editor, the draw
// list and the backends: Vec2, Rect with an inverted "empty" sentinel, and
// LinkCurve, the horizontal-tangent cubic bezier used for links.
//
// Curve evaluation goes through gg.CubicBez so links match the curves gg
// itself rasterizes.
package geom
