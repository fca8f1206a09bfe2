package backend

import (
	"bytes"
	"path/filepath"
	"slices"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/nodes/draw"
	"github.com/gogpu/nodes/geom"
)

func TestRasterTargetName(t *testing.T) {
	tg := NewRasterTarget(nil)
	if tg.Name() != "raster" {
		t.Errorf("Name() = %q, want %q", tg.Name(), "raster")
	}
}

func TestRasterTargetNotStarted(t *testing.T) {
	tg := NewRasterTarget(nil)
	if err := tg.End(); err != ErrNotStarted {
		t.Errorf("End() error = %v, want ErrNotStarted", err)
	}
	if _, err := tg.WriteTo(&bytes.Buffer{}); err != ErrNotStarted {
		t.Errorf("WriteTo() error = %v, want ErrNotStarted", err)
	}
	if tg.Surface() != nil {
		t.Error("Surface() before Begin should be nil")
	}
}

func TestRasterTargetRendersList(t *testing.T) {
	tg := NewRasterTarget(nil)
	if err := tg.Begin(100, 100); err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	defer tg.Close()

	l := draw.NewList()
	l.AddRectFilled(geom.R(10, 10, 90, 90), gg.RGBA2(1, 0, 0, 1), 0, draw.CornersNone)
	if err := Replay(tg.Surface(), l); err != nil {
		t.Fatalf("Replay() error = %v", err)
	}
	if err := tg.End(); err != nil {
		t.Fatalf("End() error = %v", err)
	}

	r, _, _, _ := tg.Context().Image().At(50, 50).RGBA()
	if r == 0 {
		t.Error("Replay() did not render any content")
	}
	r, _, _, _ = tg.Context().Image().At(5, 5).RGBA()
	if r != 0 {
		t.Error("Replay() drew outside the rectangle")
	}
}

func TestRasterTargetScalesAroundOrigin(t *testing.T) {
	tg := NewRasterTarget(nil)
	if err := tg.Begin(100, 100); err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	defer tg.Close()

	l := draw.NewList()
	l.Origin = geom.V(10, 10)
	l.Scale = 2
	// (10,10)-(30,30) in editor space covers (10,10)-(50,50) on the host.
	l.AddRectFilled(geom.R(10, 10, 30, 30), gg.RGBA2(0, 1, 0, 1), 0, draw.CornersNone)
	if err := Replay(tg.Surface(), l); err != nil {
		t.Fatalf("Replay() error = %v", err)
	}

	img := tg.Context().Image()
	if _, g, _, _ := img.At(45, 45).RGBA(); g == 0 {
		t.Error("scaled rectangle missing at (45, 45)")
	}
	if _, g, _, _ := img.At(55, 55).RGBA(); g != 0 {
		t.Error("scaled rectangle too large at (55, 55)")
	}
}

func TestRasterTargetClip(t *testing.T) {
	tg := NewRasterTarget(nil)
	if err := tg.Begin(100, 100); err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	defer tg.Close()

	l := draw.NewList()
	l.PushClip(geom.R(0, 0, 50, 100))
	l.AddRectFilled(geom.R(0, 0, 100, 100), gg.RGBA2(0, 0, 1, 1), 0, draw.CornersNone)
	l.PopClip()
	if err := Replay(tg.Surface(), l); err != nil {
		t.Fatalf("Replay() error = %v", err)
	}

	img := tg.Context().Image()
	if _, _, b, _ := img.At(25, 50).RGBA(); b == 0 {
		t.Error("clipped fill missing inside the clip")
	}
	if _, _, b, _ := img.At(75, 50).RGBA(); b != 0 {
		t.Error("fill leaked outside the clip")
	}
}

func TestRasterTargetWriteTo(t *testing.T) {
	tg := NewRasterTarget(nil)
	if err := tg.Begin(20, 20); err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	defer tg.Close()
	if err := tg.End(); err != nil {
		t.Fatalf("End() error = %v", err)
	}

	var buf bytes.Buffer
	n, err := tg.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if n != int64(buf.Len()) || n == 0 {
		t.Errorf("WriteTo() = %d bytes, buffer holds %d", n, buf.Len())
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("WriteTo() output is not a PNG")
	}
}

func TestRecordingTargetPlaysBack(t *testing.T) {
	tg := NewRecordingTarget("", nil)
	if err := tg.Begin(64, 64); err != nil {
		t.Fatalf("Begin() error = %v", err)
	}

	l := draw.NewList()
	l.AddRectFilled(geom.R(8, 8, 56, 56), gg.RGBA2(1, 1, 1, 1), 4, draw.CornersAll)
	l.AddCircle(geom.V(32, 32), 10, gg.RGBA2(0, 0, 0, 1), 8, 1)
	if err := Replay(tg.Surface(), l); err != nil {
		t.Fatalf("Replay() error = %v", err)
	}
	if err := tg.End(); err != nil {
		t.Fatalf("End() error = %v", err)
	}
	if tg.Recording() == nil || len(tg.Recording().Commands()) == 0 {
		t.Fatal("Recording() is empty after End")
	}

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := tg.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}
	tg.Close()
	if tg.Recording() != nil {
		t.Error("Close() kept the recording")
	}
}

func TestRecordingTargetUnknownPlayback(t *testing.T) {
	tg := NewRecordingTarget("no-such-backend", nil)
	if err := tg.Begin(8, 8); err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	if err := tg.End(); err == nil {
		t.Error("End() with an unknown playback backend should fail")
	}
}

func TestRegistryRegisterAndGet(t *testing.T) {
	// Built-in targets are auto-registered via init()
	for _, name := range []string{TargetRaster, TargetRecording} {
		if !IsRegistered(name) {
			t.Errorf("%s target should be auto-registered", name)
		}
		tg := Get(name)
		if tg == nil {
			t.Fatalf("Get(%s) returned nil", name)
		}
		if tg.Name() != name {
			t.Errorf("Get(%s).Name() = %q", name, tg.Name())
		}
	}
	if Get("nonexistent") != nil {
		t.Error("Get(nonexistent) should return nil")
	}
	if _, err := Lookup("nonexistent"); err != ErrTargetNotAvailable {
		t.Errorf("Lookup(nonexistent) error = %v, want ErrTargetNotAvailable", err)
	}
}

func TestRegistryAvailableSorted(t *testing.T) {
	names := Available()
	if !slices.IsSorted(names) {
		t.Errorf("Available() = %v, want sorted", names)
	}
	if !slices.Contains(names, TargetRaster) || !slices.Contains(names, TargetRecording) {
		t.Errorf("Available() = %v, want raster and recording", names)
	}
}

// namedTarget is a raster target registered under another name.
type namedTarget struct {
	*RasterTarget
	name string
}

func (t namedTarget) Name() string { return t.name }

func registerNamed(t *testing.T, name string, priority int) {
	t.Helper()
	Register(name, priority, func() Target { return namedTarget{NewRasterTarget(nil), name} })
	t.Cleanup(func() { Unregister(name) })
}

func TestRegistryDefaultPriority(t *testing.T) {
	if tg := Default(); tg == nil || tg.Name() != TargetRaster {
		t.Errorf("Default() = %v, want raster", tg)
	}

	Unregister(TargetRaster)
	defer Register(TargetRaster, PriorityRaster, func() Target { return &RasterTarget{} })

	if tg := Default(); tg == nil || tg.Name() != TargetRecording {
		t.Errorf("Default() without raster = %v, want recording", tg)
	}
}

func TestRegistryDefaultOrder(t *testing.T) {
	tests := []struct {
		name  string
		extra map[string]int
		want  string
	}{
		{"built-ins only", nil, TargetRaster},
		{"higher priority wins", map[string]int{"plotter": PriorityRaster + 1}, "plotter"},
		{"lower priority loses", map[string]int{"plotter": PriorityRecording - 1}, TargetRaster},
		{"tie broken by name", map[string]int{"aaa": PriorityRaster, "zzz": PriorityRaster}, "aaa"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for name, prio := range tt.extra {
				registerNamed(t, name, prio)
			}
			if tg := Default(); tg == nil || tg.Name() != tt.want {
				t.Errorf("Default() = %v, want %s", tg, tt.want)
			}
		})
	}
}

func TestRegistryDefaultSkipsNilFactories(t *testing.T) {
	Register("broken", PriorityRaster+1, func() Target { return nil })
	defer Unregister("broken")

	if tg := MustDefault(); tg.Name() != TargetRaster {
		t.Errorf("MustDefault() = %s, want raster", tg.Name())
	}
}

func TestRegistryCustomTarget(t *testing.T) {
	registerNamed(t, "custom", 0)

	if !IsRegistered("custom") {
		t.Fatal("custom target not registered")
	}
	if tg := Get("custom"); tg == nil || tg.Name() != "custom" {
		t.Errorf("Get(custom) = %v, want the custom target", tg)
	}
	Unregister("custom")
	if IsRegistered("custom") {
		t.Error("custom target still registered after Unregister")
	}
}

func TestRegisterRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		factory TargetFactory
	}{
		{"empty name", "", func() Target { return &RasterTarget{} }},
		{"nil factory", "nil", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Register did not panic")
				}
			}()
			Register(tt.target, 0, tt.factory)
		})
	}
}

func TestBuiltinTargetsDrawText(t *testing.T) {
	for _, name := range []string{TargetRaster, TargetRecording} {
		if _, ok := Get(name).(TextTarget); !ok {
			t.Errorf("%s target does not implement TextTarget", name)
		}
	}
}
