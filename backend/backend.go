package backend

import (
	"errors"
	"io"

	"github.com/gogpu/gg/text"
)

// Common backend errors.
var (
	// ErrTargetNotAvailable is returned when a requested target is not registered.
	ErrTargetNotAvailable = errors.New("backend: target not available")

	// ErrNotStarted is returned when a target is used before Begin.
	ErrNotStarted = errors.New("backend: target not started")
)

// Target is a render destination for editor frames.
// It hands out a Surface for Replay and turns what was drawn into an
// image once the frame is done.
//
// Targets must be registered via Register() and are selected via
// Get() or Default().
type Target interface {
	// Name returns the target identifier (e.g., "raster", "recording").
	Name() string

	// Begin prepares a frame of the given size in host pixels.
	// Any previous frame is discarded.
	Begin(width, height int) error

	// Surface returns the drawing surface of the current frame.
	// It is nil before Begin.
	Surface() Surface

	// End finishes the frame. Output methods can be used afterwards.
	End() error

	// WriteTo encodes the finished frame as PNG.
	WriteTo(w io.Writer) (int64, error)

	// SaveToFile writes the finished frame to a PNG file.
	SaveToFile(path string) error

	// Close releases all target resources.
	Close()
}

// TextTarget is a Target that draws labels with a configurable face.
// Both built-in targets implement it.
type TextTarget interface {
	Target

	// SetFace sets the face used by later frames. A nil face skips text.
	SetFace(face text.Face)
}
