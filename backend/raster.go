package backend

import (
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Target name constants.
const (
	// TargetRaster draws straight into a gg.Context pixmap.
	TargetRaster = "raster"
	// TargetRecording records gg drawing commands and plays them back
	// into a gg/recording backend.
	TargetRecording = "recording"
)

// RasterTarget is the CPU target. Each frame is drawn immediately into a
// gg.Context.
type RasterTarget struct {
	face    text.Face
	dc      *gg.Context
	surface Surface
}

// init registers the raster target on package import.
func init() {
	Register(TargetRaster, PriorityRaster, func() Target {
		return &RasterTarget{}
	})
}

// NewRasterTarget creates a raster target drawing labels with face.
// face may be nil.
func NewRasterTarget(face text.Face) *RasterTarget {
	return &RasterTarget{face: face}
}

// SetFace sets the face used for text from the next Begin.
func (t *RasterTarget) SetFace(face text.Face) { t.face = face }

// Name returns the target identifier.
func (t *RasterTarget) Name() string {
	return TargetRaster
}

// Begin allocates the frame, reusing the previous context when the size
// is unchanged.
func (t *RasterTarget) Begin(width, height int) error {
	if t.dc != nil && t.dc.Width() == width && t.dc.Height() == height {
		t.dc.ClearPath()
		t.dc.ResetClip()
		t.dc.Clear()
	} else {
		if t.dc != nil {
			_ = t.dc.Close()
		}
		t.dc = gg.NewContext(width, height)
	}
	t.surface = NewContextSurface(t.dc, t.face)
	return nil
}

// Surface returns the frame surface.
func (t *RasterTarget) Surface() Surface { return t.surface }

// End finishes the frame.
func (t *RasterTarget) End() error {
	if t.dc == nil {
		return ErrNotStarted
	}
	return nil
}

// WriteTo encodes the frame as PNG.
func (t *RasterTarget) WriteTo(w io.Writer) (int64, error) {
	if t.dc == nil {
		return 0, ErrNotStarted
	}
	cw := &countingWriter{w: w}
	err := t.dc.EncodePNG(cw)
	return cw.n, err
}

// SaveToFile writes the frame to a PNG file.
func (t *RasterTarget) SaveToFile(path string) error {
	if t.dc == nil {
		return ErrNotStarted
	}
	return t.dc.SavePNG(path)
}

// Context returns the underlying gg.Context for advanced usage.
// Returns nil before the first Begin.
func (t *RasterTarget) Context() *gg.Context {
	return t.dc
}

// Close releases the context.
func (t *RasterTarget) Close() {
	if t.dc != nil {
		_ = t.dc.Close()
		t.dc = nil
	}
	t.surface = nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
