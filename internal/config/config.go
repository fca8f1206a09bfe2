// Package config loads editor style, input and render settings from TOML
// or YAML files.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gogpu/gg"

	"github.com/gogpu/nodes"
	"github.com/gogpu/nodes/geom"
)

// Config holds nodesdemo configuration.
type Config struct {
	Style   StyleConfig   `toml:"style" yaml:"style"`
	IO      IOConfig      `toml:"io" yaml:"io"`
	MiniMap MiniMapConfig `toml:"minimap" yaml:"minimap"`
	Canvas  CanvasConfig  `toml:"canvas" yaml:"canvas"`
	Render  RenderConfig  `toml:"render" yaml:"render"`
}

// StyleConfig overrides editor style metrics and colours.
type StyleConfig struct {
	Preset             string     `toml:"preset" yaml:"preset" validate:"oneof=dark classic light"`
	GridSpacing        float64    `toml:"grid_spacing" yaml:"grid_spacing" validate:"gt=0"`
	NodeCornerRounding float64    `toml:"node_corner_rounding" yaml:"node_corner_rounding" validate:"gte=0"`
	NodePadding        [2]float64 `toml:"node_padding" yaml:"node_padding" validate:"dive,gte=0"`
	LinkThickness      float64    `toml:"link_thickness" yaml:"link_thickness" validate:"gt=0"`
	PinHoverRadius     float64    `toml:"pin_hover_radius" yaml:"pin_hover_radius" validate:"gte=0"`

	NodeOutline      bool `toml:"node_outline" yaml:"node_outline"`
	GridLines        bool `toml:"grid_lines" yaml:"grid_lines"`
	GridLinesPrimary bool `toml:"grid_lines_primary" yaml:"grid_lines_primary"`
	GridSnapping     bool `toml:"grid_snapping" yaml:"grid_snapping"`

	// Colors maps colour names such as "NodeBackground" to "#RRGGBB" or
	// "#RRGGBBAA".
	Colors map[string]string `toml:"colors" yaml:"colors" validate:"dive,keys,required,endkeys,hexcolor"`
}

// IOConfig controls how input drives the editor. Modifier sets are written
// as "ctrl+shift"; an empty string disables the feature.
type IOConfig struct {
	AltMouseButton          string  `toml:"alt_mouse_button" yaml:"alt_mouse_button" validate:"oneof=left right middle"`
	EmulateThreeButtonMouse string  `toml:"emulate_three_button_mouse" yaml:"emulate_three_button_mouse"`
	LinkDetachModifier      string  `toml:"link_detach_modifier" yaml:"link_detach_modifier"`
	MultipleSelectModifier  string  `toml:"multiple_select_modifier" yaml:"multiple_select_modifier"`
	AutoPanningSpeed        float64 `toml:"auto_panning_speed" yaml:"auto_panning_speed" validate:"gte=0"`
}

// MiniMapConfig places the mini-map.
type MiniMapConfig struct {
	Enabled  bool    `toml:"enabled" yaml:"enabled"`
	Fraction float64 `toml:"fraction" yaml:"fraction" validate:"gt=0,lte=1"`
	Location string  `toml:"location" yaml:"location" validate:"oneof=bottom-left bottom-right top-left top-right"`
}

// CanvasConfig sizes the rendered canvas.
type CanvasConfig struct {
	Width  int     `toml:"width" yaml:"width" validate:"gt=0,lte=16384"`
	Height int     `toml:"height" yaml:"height" validate:"gt=0,lte=16384"`
	Zoom   float64 `toml:"zoom" yaml:"zoom" validate:"gte=0.1,lte=10"`
}

// RenderConfig selects the output target and font.
type RenderConfig struct {
	Target   string  `toml:"target" yaml:"target" validate:"omitempty,oneof=raster recording"`
	Font     string  `toml:"font" yaml:"font"`
	FontSize float64 `toml:"font_size" yaml:"font_size" validate:"gt=0"`
}

// Default returns the default configuration.
func Default() *Config {
	s := nodes.DefaultStyle()
	io := nodes.DefaultIO()
	return &Config{
		Style: StyleConfig{
			Preset:             "dark",
			GridSpacing:        s.GridSpacing,
			NodeCornerRounding: s.NodeCornerRounding,
			NodePadding:        [2]float64{s.NodePadding.X, s.NodePadding.Y},
			LinkThickness:      s.LinkThickness,
			PinHoverRadius:     s.PinHoverRadius,
			NodeOutline:        true,
			GridLines:          true,
		},
		IO: IOConfig{
			AltMouseButton:         io.AltMouseButton.String(),
			MultipleSelectModifier: "ctrl",
			AutoPanningSpeed:       io.AutoPanningSpeed,
		},
		MiniMap: MiniMapConfig{Enabled: true, Fraction: 0.2, Location: "bottom-right"},
		Canvas:  CanvasConfig{Width: 1280, Height: 720, Zoom: 1},
		Render:  RenderConfig{Target: "", FontSize: 13},
	}
}

var validate = validator.New()

// Validate checks field ranges and that every colour name is known.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	var errs []error
	for name := range c.Style.Colors {
		if _, ok := nodes.ParseColorID(name); !ok {
			errs = append(errs, fmt.Errorf("config: unknown colour %q", name))
		}
	}
	for _, m := range []string{c.IO.EmulateThreeButtonMouse, c.IO.LinkDetachModifier, c.IO.MultipleSelectModifier} {
		if _, err := ParseModifiers(m); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Apply writes the configuration into a style and an IO. The colour preset
// is applied first and individual colours override it.
func (c *Config) Apply(style *nodes.Style, io *nodes.IO) error {
	if err := c.Validate(); err != nil {
		return err
	}

	switch c.Style.Preset {
	case "classic":
		nodes.StyleColorsClassic(style)
	case "light":
		nodes.StyleColorsLight(style)
	default:
		nodes.StyleColorsDark(style)
	}
	style.GridSpacing = c.Style.GridSpacing
	style.NodeCornerRounding = c.Style.NodeCornerRounding
	style.NodePadding = geom.V(c.Style.NodePadding[0], c.Style.NodePadding[1])
	style.LinkThickness = c.Style.LinkThickness
	style.PinHoverRadius = c.Style.PinHoverRadius

	style.Flags = nodes.StyleFlagsNone
	if c.Style.NodeOutline {
		style.Flags |= nodes.StyleNodeOutline
	}
	if c.Style.GridLines {
		style.Flags |= nodes.StyleGridLines
	}
	if c.Style.GridLinesPrimary {
		style.Flags |= nodes.StyleGridLinesPrimary
	}
	if c.Style.GridSnapping {
		style.Flags |= nodes.StyleGridSnapping
	}
	for name, hex := range c.Style.Colors {
		id, _ := nodes.ParseColorID(name)
		style.Colors[id] = gg.Hex(hex)
	}

	io.AltMouseButton, _ = ParseMouseButton(c.IO.AltMouseButton)
	io.EmulateThreeButtonMouse, _ = ParseModifiers(c.IO.EmulateThreeButtonMouse)
	io.LinkDetachWithModifierClick, _ = ParseModifiers(c.IO.LinkDetachModifier)
	io.MultipleSelectModifier, _ = ParseModifiers(c.IO.MultipleSelectModifier)
	io.AutoPanningSpeed = c.IO.AutoPanningSpeed
	return nil
}

// CornerLocation returns the mini-map corner.
func (m MiniMapConfig) CornerLocation() nodes.MiniMapLocation {
	switch m.Location {
	case "bottom-left":
		return nodes.MiniMapBottomLeft
	case "top-left":
		return nodes.MiniMapTopLeft
	case "top-right":
		return nodes.MiniMapTopRight
	}
	return nodes.MiniMapBottomRight
}

var modifierNames = map[string]nodes.Modifiers{
	"ctrl":  nodes.ModCtrl,
	"shift": nodes.ModShift,
	"alt":   nodes.ModAlt,
	"super": nodes.ModSuper,
}

// ParseModifiers parses a "+"-separated modifier set such as "ctrl+alt".
// The empty string and "none" yield nodes.ModNone.
func ParseModifiers(s string) (nodes.Modifiers, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "none" {
		return nodes.ModNone, nil
	}
	var mods nodes.Modifiers
	for _, part := range strings.Split(s, "+") {
		m, ok := modifierNames[strings.TrimSpace(part)]
		if !ok {
			return nodes.ModNone, fmt.Errorf("config: unknown modifier %q", part)
		}
		mods |= m
	}
	return mods, nil
}

// ParseMouseButton parses "left", "right" or "middle".
func ParseMouseButton(s string) (nodes.MouseButton, error) {
	for _, b := range []nodes.MouseButton{nodes.MouseLeft, nodes.MouseRight, nodes.MouseMiddle} {
		if b.String() == s {
			return b, nil
		}
	}
	return nodes.MouseLeft, fmt.Errorf("config: unknown mouse button %q", s)
}
