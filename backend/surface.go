package backend

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	"github.com/gogpu/gg/text"
)

// Surface is the subset of a gg drawing context that Replay needs. Paths
// are built with the current point API and consumed by Fill, Stroke or
// Clip. Push and Pop save and restore the clip.
type Surface interface {
	SetColor(c gg.RGBA)
	SetLineWidth(w float64)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()

	// DrawCircle and DrawRoundedRectangle add closed gg shape paths.
	DrawCircle(x, y, r float64)
	DrawRoundedRectangle(x, y, w, h, r float64)

	Fill() error
	Stroke() error
	Clip()

	Push()
	Pop()

	// DrawString draws s with its baseline at y.
	DrawString(s string, x, y float64)
	// Ascent is the distance from the top of a line of text to its
	// baseline, zero when no font is set.
	Ascent() float64
}

func faceAscent(face text.Face) float64 {
	if face == nil {
		return 0
	}
	return face.Metrics().Ascent
}

// contextSurface draws directly into a gg.Context.
type contextSurface struct {
	dc   *gg.Context
	face text.Face
}

// NewContextSurface returns a Surface over dc. face may be nil, in which
// case text is skipped.
func NewContextSurface(dc *gg.Context, face text.Face) Surface {
	if face != nil {
		dc.SetFont(face)
	}
	return &contextSurface{dc: dc, face: face}
}

func (s *contextSurface) SetColor(c gg.RGBA)                       { s.dc.SetRGBA(c.R, c.G, c.B, c.A) }
func (s *contextSurface) SetLineWidth(w float64)                   { s.dc.SetLineWidth(w) }
func (s *contextSurface) MoveTo(x, y float64)                      { s.dc.MoveTo(x, y) }
func (s *contextSurface) LineTo(x, y float64)                      { s.dc.LineTo(x, y) }
func (s *contextSurface) CubicTo(c1x, c1y, c2x, c2y, x, y float64) { s.dc.CubicTo(c1x, c1y, c2x, c2y, x, y) }
func (s *contextSurface) ClosePath()                               { s.dc.ClosePath() }
func (s *contextSurface) DrawCircle(x, y, r float64)               { s.dc.DrawCircle(x, y, r) }
func (s *contextSurface) DrawRoundedRectangle(x, y, w, h, r float64) {
	s.dc.DrawRoundedRectangle(x, y, w, h, r)
}
func (s *contextSurface) Fill() error                              { return s.dc.Fill() }
func (s *contextSurface) Stroke() error                            { return s.dc.Stroke() }
func (s *contextSurface) Clip()                                    { s.dc.Clip() }
func (s *contextSurface) Push()                                    { s.dc.Push() }
func (s *contextSurface) Pop()                                     { s.dc.Pop() }
func (s *contextSurface) DrawString(str string, x, y float64)      { s.dc.DrawString(str, x, y) }
func (s *contextSurface) Ascent() float64                          { return faceAscent(s.face) }

// recorderSurface records into a recording.Recorder for deferred playback.
type recorderSurface struct {
	r    *recording.Recorder
	face text.Face
}

// NewRecorderSurface returns a Surface over r.
func NewRecorderSurface(r *recording.Recorder, face text.Face) Surface {
	if face != nil {
		r.SetFont(face)
	}
	return &recorderSurface{r: r, face: face}
}

func (s *recorderSurface) SetColor(c gg.RGBA)     { s.r.SetColor(c) }
func (s *recorderSurface) SetLineWidth(w float64) { s.r.SetLineWidth(w) }
func (s *recorderSurface) MoveTo(x, y float64)    { s.r.MoveTo(x, y) }
func (s *recorderSurface) LineTo(x, y float64)    { s.r.LineTo(x, y) }
func (s *recorderSurface) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	s.r.CubicTo(c1x, c1y, c2x, c2y, x, y)
}
func (s *recorderSurface) ClosePath() { s.r.ClosePath() }

func (s *recorderSurface) DrawCircle(x, y, r float64) { s.r.DrawCircle(x, y, r) }
func (s *recorderSurface) DrawRoundedRectangle(x, y, w, h, r float64) {
	s.r.DrawRoundedRectangle(x, y, w, h, r)
}

func (s *recorderSurface) Fill() error {
	s.r.Fill()
	return nil
}

func (s *recorderSurface) Stroke() error {
	s.r.Stroke()
	return nil
}

func (s *recorderSurface) Clip()                               { s.r.Clip() }
func (s *recorderSurface) Push()                               { s.r.Push() }
func (s *recorderSurface) Pop()                                { s.r.Pop() }
func (s *recorderSurface) DrawString(str string, x, y float64) { s.r.DrawString(str, x, y) }
func (s *recorderSurface) Ascent() float64                     { return faceAscent(s.face) }
