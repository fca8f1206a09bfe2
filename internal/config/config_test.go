package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/nodes"
	"github.com/gogpu/nodes/geom"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestDefaultMatchesEditorDefaults(t *testing.T) {
	style, io := nodes.DefaultStyle(), nodes.DefaultIO()
	wantStyle, wantIO := style, io
	if err := Default().Apply(&style, &io); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if style != wantStyle {
		t.Errorf("Apply(Default()) changed the style")
	}
	if io != wantIO {
		t.Errorf("Apply(Default()) io = %+v, want %+v", io, wantIO)
	}
}

const sampleTOML = `
[style]
preset = "light"
grid_spacing = 32
node_padding = [4, 6]
grid_snapping = true

[style.colors]
NodeBackground = "#102030"

[io]
alt_mouse_button = "middle"
link_detach_modifier = "ctrl+alt"

[minimap]
location = "top-left"

[canvas]
width = 640
height = 480
`

const sampleYAML = `
style:
  preset: light
  grid_spacing: 32
  node_padding: [4, 6]
  grid_snapping: true
  colors:
    NodeBackground: "#102030"
io:
  alt_mouse_button: middle
  link_detach_modifier: ctrl+alt
minimap:
  location: top-left
canvas:
  width: 640
  height: 480
`

func TestLoadFormats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"toml", "nodes.toml", sampleTOML},
		{"yaml", "nodes.yaml", sampleYAML},
		{"yml", "nodes.yml", sampleYAML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, tt.file, tt.content))
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if cfg.Canvas.Width != 640 || cfg.Canvas.Height != 480 {
				t.Errorf("canvas = %dx%d, want 640x480", cfg.Canvas.Width, cfg.Canvas.Height)
			}
			// Unset fields keep their defaults.
			if cfg.Canvas.Zoom != 1 || cfg.MiniMap.Fraction != 0.2 {
				t.Errorf("defaults lost: zoom %v fraction %v", cfg.Canvas.Zoom, cfg.MiniMap.Fraction)
			}
			if cfg.MiniMap.CornerLocation() != nodes.MiniMapTopLeft {
				t.Errorf("CornerLocation() = %v, want top-left", cfg.MiniMap.CornerLocation())
			}

			style, io := nodes.DefaultStyle(), nodes.DefaultIO()
			if err := cfg.Apply(&style, &io); err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			if style.GridSpacing != 32 || style.NodePadding != geom.V(4, 6) {
				t.Errorf("style metrics = %v %v", style.GridSpacing, style.NodePadding)
			}
			if style.Flags&nodes.StyleGridSnapping == 0 {
				t.Error("grid snapping flag not set")
			}
			if got, want := style.Colors[nodes.ColNodeBackground], gg.Hex("#102030"); got != want {
				t.Errorf("NodeBackground = %v, want %v", got, want)
			}
			light := nodes.DefaultStyle()
			nodes.StyleColorsLight(&light)
			if style.Colors[nodes.ColLink] != light.Colors[nodes.ColLink] {
				t.Error("light preset not applied")
			}
			if io.AltMouseButton != nodes.MouseMiddle {
				t.Errorf("AltMouseButton = %v, want middle", io.AltMouseButton)
			}
			if io.LinkDetachWithModifierClick != nodes.ModCtrl|nodes.ModAlt {
				t.Errorf("LinkDetachWithModifierClick = %v, want ctrl+alt", io.LinkDetachWithModifierClick)
			}
		})
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg.Canvas != Default().Canvas {
		t.Errorf("Load(\"\") canvas = %+v, want defaults", cfg.Canvas)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"unsupported extension", "nodes.ini", "x=1"},
		{"malformed toml", "bad.toml", "[style\n"},
		{"unknown yaml field", "bad.yaml", "style:\n  nope: 1\n"},
		{"bad preset", "p.toml", "[style]\npreset = \"neon\"\n"},
		{"zero grid", "g.toml", "[style]\ngrid_spacing = 0\n"},
		{"bad colour value", "c.toml", "[style.colors]\nLink = \"red\"\n"},
		{"unknown colour", "u.toml", "[style.colors]\nSky = \"#ffffff\"\n"},
		{"bad modifier", "m.toml", "[io]\nlink_detach_modifier = \"hyper\"\n"},
		{"zoom out of range", "z.toml", "[canvas]\nzoom = 20.0\n"},
		{"minimap fraction", "f.yaml", "minimap:\n  fraction: 1.5\n"},
		{"unknown target", "t.toml", "[render]\ntarget = \"vulkan\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeFile(t, tt.file, tt.content)); err == nil {
				t.Errorf("Load() accepted %q", tt.content)
			}
		})
	}

	if _, err := Load("nodes.ini"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Load(.ini) error = %v, want ErrUnsupportedFormat", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want not exist", err)
	}
}

func TestParseModifiers(t *testing.T) {
	tests := []struct {
		in      string
		want    nodes.Modifiers
		wantErr bool
	}{
		{"", nodes.ModNone, false},
		{"none", nodes.ModNone, false},
		{"ctrl", nodes.ModCtrl, false},
		{"Shift+Alt", nodes.ModShift | nodes.ModAlt, false},
		{"ctrl + super", nodes.ModCtrl | nodes.ModSuper, false},
		{"ctrl+meta", nodes.ModNone, true},
	}
	for _, tt := range tests {
		got, err := ParseModifiers(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseModifiers(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseModifiers(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseMouseButton(t *testing.T) {
	for _, b := range []nodes.MouseButton{nodes.MouseLeft, nodes.MouseRight, nodes.MouseMiddle} {
		got, err := ParseMouseButton(b.String())
		if err != nil || got != b {
			t.Errorf("ParseMouseButton(%q) = %v, %v", b.String(), got, err)
		}
	}
	if _, err := ParseMouseButton("fourth"); err == nil {
		t.Error("ParseMouseButton(fourth) should fail")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Style.Preset = "classic"
	cfg.Canvas.Width = 900
	cfg.Style.Colors = map[string]string{"Link": "#ff8800"}

	path := filepath.Join(t.TempDir(), "sub", "nodes.toml")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Style.Preset != "classic" || got.Canvas.Width != 900 || got.Style.Colors["Link"] != "#ff8800" {
		t.Errorf("round trip = %+v", got)
	}
}
