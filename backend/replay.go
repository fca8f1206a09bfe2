package backend

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/nodes/draw"
	"github.com/gogpu/nodes/geom"
)

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498

// Replay draws every command of l onto s, mapping editor coordinates to
// host pixels with l.ToHost. Thicknesses and radii are scaled by l.Scale.
// Errors from individual fills and strokes are collected and returned
// together; drawing continues past them.
func Replay(s Surface, l *draw.List) error {
	r := replayer{s: s, l: l, scale: l.Scale}
	if r.scale == 0 {
		r.scale = 1
	}
	for i, cmd := range l.Commands() {
		if err := r.command(cmd); err != nil {
			r.errs = append(r.errs, fmt.Errorf("command %d (%v): %w", i, cmd.Type(), err))
		}
	}
	// Unbalanced clips are closed so the surface is left as it was found.
	for ; r.clipDepth > 0; r.clipDepth-- {
		s.Pop()
	}
	return errors.Join(r.errs...)
}

type replayer struct {
	s         Surface
	l         *draw.List
	scale     float64
	clipDepth int
	errs      []error
}

func (r *replayer) pt(p geom.Vec2) geom.Vec2 { return r.l.ToHost(p) }

func (r *replayer) rect(rc geom.Rect) geom.Rect {
	return geom.Rect{Min: r.pt(rc.Min), Max: r.pt(rc.Max)}
}

func (r *replayer) command(cmd draw.Command) error {
	s := r.s
	switch c := cmd.(type) {
	case draw.PushClip:
		s.Push()
		rectPath(s, r.rect(c.Rect), 0, draw.CornersNone)
		s.Clip()
		r.clipDepth++
	case draw.PopClip:
		if r.clipDepth == 0 {
			return errors.New("unbalanced PopClip")
		}
		s.Pop()
		r.clipDepth--
	case draw.Line:
		from, to := r.pt(c.From), r.pt(c.To)
		s.SetColor(c.Color)
		s.SetLineWidth(c.Thickness * r.scale)
		s.MoveTo(from.X, from.Y)
		s.LineTo(to.X, to.Y)
		return s.Stroke()
	case draw.Rect:
		s.SetColor(c.Color)
		s.SetLineWidth(c.Thickness * r.scale)
		rectPath(s, r.rect(c.Rect), c.Rounding*r.scale, c.Corners)
		return s.Stroke()
	case draw.RectFilled:
		s.SetColor(c.Color)
		rectPath(s, r.rect(c.Rect), c.Rounding*r.scale, c.Corners)
		return s.Fill()
	case draw.Circle:
		s.SetColor(c.Color)
		s.SetLineWidth(c.Thickness * r.scale)
		circlePath(s, r.pt(c.Center), c.Radius*r.scale, c.Segments)
		return s.Stroke()
	case draw.CircleFilled:
		s.SetColor(c.Color)
		circlePath(s, r.pt(c.Center), c.Radius*r.scale, c.Segments)
		return s.Fill()
	case draw.Polygon:
		s.SetColor(c.Color)
		s.SetLineWidth(c.Thickness * r.scale)
		r.polygonPath(c.Points)
		return s.Stroke()
	case draw.PolygonFilled:
		s.SetColor(c.Color)
		r.polygonPath(c.Points)
		return s.Fill()
	case draw.Bezier:
		p0, p1, p2, p3 := r.pt(c.P0), r.pt(c.P1), r.pt(c.P2), r.pt(c.P3)
		s.SetColor(c.Color)
		s.SetLineWidth(c.Thickness * r.scale)
		s.MoveTo(p0.X, p0.Y)
		s.CubicTo(p1.X, p1.Y, p2.X, p2.Y, p3.X, p3.Y)
		return s.Stroke()
	case draw.Text:
		p := r.pt(c.Pos)
		s.SetColor(c.Color)
		s.DrawString(c.Text, p.X, p.Y+s.Ascent())
	default:
		return fmt.Errorf("unsupported command %T", cmd)
	}
	return nil
}

func (r *replayer) polygonPath(points []geom.Vec2) {
	if len(points) < 2 {
		return
	}
	p := r.pt(points[0])
	r.s.MoveTo(p.X, p.Y)
	for _, q := range points[1:] {
		p = r.pt(q)
		r.s.LineTo(p.X, p.Y)
	}
	r.s.ClosePath()
}

// rectPath adds a closed rectangle path, rounding only the selected
// corners. The radius is clamped to half the shorter side. A rectangle
// rounded on every corner is left to the surface's rounded rectangle.
func rectPath(s Surface, rc geom.Rect, radius float64, corners draw.Corners) {
	rc = rc.Normalize()
	radius = min(radius, rc.Width()*0.5, rc.Height()*0.5)
	if radius <= 0 || corners == draw.CornersNone {
		s.MoveTo(rc.Min.X, rc.Min.Y)
		s.LineTo(rc.Max.X, rc.Min.Y)
		s.LineTo(rc.Max.X, rc.Max.Y)
		s.LineTo(rc.Min.X, rc.Max.Y)
		s.ClosePath()
		return
	}

	if corners == draw.CornersAll {
		s.DrawRoundedRectangle(rc.Min.X, rc.Min.Y, rc.Width(), rc.Height(), radius)
		return
	}

	rad := func(c draw.Corners) float64 {
		if corners&c != 0 {
			return radius
		}
		return 0
	}
	tl, tr := rad(draw.CornerTopLeft), rad(draw.CornerTopRight)
	br, bl := rad(draw.CornerBottomRight), rad(draw.CornerBottomLeft)
	x0, y0, x1, y1 := rc.Min.X, rc.Min.Y, rc.Max.X, rc.Max.Y
	k := 1 - kappa

	s.MoveTo(x0+tl, y0)
	s.LineTo(x1-tr, y0)
	if tr > 0 {
		s.CubicTo(x1-tr*k, y0, x1, y0+tr*k, x1, y0+tr)
	}
	s.LineTo(x1, y1-br)
	if br > 0 {
		s.CubicTo(x1, y1-br*k, x1-br*k, y1, x1-br, y1)
	}
	s.LineTo(x0+bl, y1)
	if bl > 0 {
		s.CubicTo(x0+bl*k, y1, x0, y1-bl*k, x0, y1-bl)
	}
	s.LineTo(x0, y0+tl)
	if tl > 0 {
		s.CubicTo(x0, y0+tl*k, x0+tl*k, y0, x0+tl, y0)
	}
	s.ClosePath()
}

// circlePath adds a circle, or a regular polygon when segments > 0.
func circlePath(s Surface, c geom.Vec2, radius float64, segments int) {
	if segments > 0 {
		for i := range segments {
			a := 2 * math.Pi * float64(i) / float64(segments)
			x, y := c.X+radius*math.Cos(a), c.Y+radius*math.Sin(a)
			if i == 0 {
				s.MoveTo(x, y)
			} else {
				s.LineTo(x, y)
			}
		}
		s.ClosePath()
		return
	}
	s.DrawCircle(c.X, c.Y, radius)
}
