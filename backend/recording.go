package backend

import (
	"fmt"
	"io"

	"github.com/gogpu/gg/recording"
	"github.com/gogpu/gg/text"

	// Register the raster playback backend.
	_ "github.com/gogpu/gg/recording/backends/raster"
)

// DefaultPlayback is the recording backend frames are played back into.
const DefaultPlayback = "raster"

// RecordingTarget records each frame as resolution-independent gg
// commands and plays them back into a recording.Backend on End. The
// recording can be played again into any other registered backend.
type RecordingTarget struct {
	face     text.Face
	playback string

	rec     *recording.Recorder
	surface Surface
	last    *recording.Recording
	out     recording.Backend
}

func init() {
	Register(TargetRecording, PriorityRecording, func() Target {
		return &RecordingTarget{playback: DefaultPlayback}
	})
}

// NewRecordingTarget creates a recording target that plays frames back
// into the named recording backend. An empty name selects DefaultPlayback.
func NewRecordingTarget(playback string, face text.Face) *RecordingTarget {
	if playback == "" {
		playback = DefaultPlayback
	}
	return &RecordingTarget{playback: playback, face: face}
}

// SetFace sets the face used for text from the next Begin.
func (t *RecordingTarget) SetFace(face text.Face) { t.face = face }

// Name returns the target identifier.
func (t *RecordingTarget) Name() string { return TargetRecording }

// Begin starts a new recording.
func (t *RecordingTarget) Begin(width, height int) error {
	t.rec = recording.NewRecorder(width, height)
	t.surface = NewRecorderSurface(t.rec, t.face)
	t.last = nil
	t.out = nil
	return nil
}

// Surface returns the recorder surface.
func (t *RecordingTarget) Surface() Surface { return t.surface }

// End finishes the recording and plays it back.
func (t *RecordingTarget) End() error {
	if t.rec == nil {
		return ErrNotStarted
	}
	t.last = t.rec.FinishRecording()
	t.rec = nil

	out, err := recording.NewBackend(t.playback)
	if err != nil {
		return err
	}
	if err := t.last.Playback(out); err != nil {
		return fmt.Errorf("backend: playback into %s: %w", t.playback, err)
	}
	t.out = out
	return nil
}

// Recording returns the last finished recording, or nil.
func (t *RecordingTarget) Recording() *recording.Recording { return t.last }

// WriteTo writes the played-back frame.
func (t *RecordingTarget) WriteTo(w io.Writer) (int64, error) {
	wb, ok := t.out.(recording.WriterBackend)
	if !ok {
		return 0, fmt.Errorf("backend: %s playback cannot write: %w", t.playback, ErrNotStarted)
	}
	return wb.WriteTo(w)
}

// SaveToFile saves the played-back frame.
func (t *RecordingTarget) SaveToFile(path string) error {
	fb, ok := t.out.(recording.FileBackend)
	if !ok {
		return fmt.Errorf("backend: %s playback cannot save: %w", t.playback, ErrNotStarted)
	}
	return fb.SaveToFile(path)
}

// Close drops the recording.
func (t *RecordingTarget) Close() {
	t.rec = nil
	t.surface = nil
	t.last = nil
	t.out = nil
}
