// Package scene describes a node graph and a scripted input sequence that
// drives a nodes.Context headlessly.
package scene

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/gogpu/nodes"
	"github.com/gogpu/nodes/internal/config"
)

// Scene is a graph plus the frames of input played against it.
type Scene struct {
	Name   string  `toml:"name" yaml:"name"`
	Nodes  []Node  `toml:"nodes" yaml:"nodes" validate:"dive"`
	Links  []Link  `toml:"links" yaml:"links" validate:"dive"`
	Frames []Frame `toml:"frames" yaml:"frames" validate:"dive"`
}

// Node is one graph node. Pin IDs share a namespace across all nodes.
type Node struct {
	ID        int        `toml:"id" yaml:"id"`
	Title     string     `toml:"title" yaml:"title"`
	Pos       [2]float64 `toml:"pos" yaml:"pos"`
	Inputs    []Pin      `toml:"inputs" yaml:"inputs" validate:"dive"`
	Outputs   []Pin      `toml:"outputs" yaml:"outputs" validate:"dive"`
	Static    []Pin      `toml:"static" yaml:"static" validate:"dive"`
	Locked    bool       `toml:"locked" yaml:"locked"`
	SnapLinks bool       `toml:"snap_links" yaml:"snap_links"`
}

// Pin is an attribute row of a node.
type Pin struct {
	ID    int    `toml:"id" yaml:"id"`
	Label string `toml:"label" yaml:"label"`
	Shape string `toml:"shape" yaml:"shape" validate:"omitempty,oneof=circle circle-filled triangle triangle-filled quad quad-filled"`
}

// Link joins an output pin to an input pin.
type Link struct {
	ID   int `toml:"id" yaml:"id"`
	From int `toml:"from" yaml:"from"`
	To   int `toml:"to" yaml:"to"`
}

// Frame is one input snapshot. Repeat plays it that many extra times.
type Frame struct {
	Mouse     [2]float64 `toml:"mouse" yaml:"mouse"`
	Down      []string   `toml:"down" yaml:"down" validate:"dive,oneof=left right middle"`
	Wheel     float64    `toml:"wheel" yaml:"wheel"`
	Mods      string     `toml:"mods" yaml:"mods"`
	DeltaTime float64    `toml:"dt" yaml:"dt" validate:"gte=0"`
	Repeat    int        `toml:"repeat" yaml:"repeat" validate:"gte=0"`
}

var pinShapes = map[string]nodes.PinShape{
	"":                nodes.PinShapeCircleFilled,
	"circle":          nodes.PinShapeCircle,
	"circle-filled":   nodes.PinShapeCircleFilled,
	"triangle":        nodes.PinShapeTriangle,
	"triangle-filled": nodes.PinShapeTriangleFilled,
	"quad":            nodes.PinShapeQuad,
	"quad-filled":     nodes.PinShapeQuadFilled,
}

// PinShape returns the nodes shape for p. Unset shapes are filled circles.
func (p Pin) PinShape() nodes.PinShape { return pinShapes[p.Shape] }

// Input converts f to a nodes.Input.
func (f Frame) Input() (nodes.Input, error) {
	in := nodes.Input{
		MouseWheel: f.Wheel,
		DeltaTime:  f.DeltaTime,
	}
	in.MousePos.X, in.MousePos.Y = f.Mouse[0], f.Mouse[1]
	for _, name := range f.Down {
		b, err := config.ParseMouseButton(name)
		if err != nil {
			return nodes.Input{}, err
		}
		in.MouseDown[b] = true
	}
	mods, err := config.ParseModifiers(f.Mods)
	if err != nil {
		return nodes.Input{}, err
	}
	in.Mods = mods
	return in, nil
}

var validate = validator.New()

// Validate checks the struct tags, identifier uniqueness and that links
// reference declared pins.
func (s *Scene) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("scene: %w", err)
	}

	var errs []error
	nodeIDs := map[int]bool{}
	pins := map[int]string{}
	for _, n := range s.Nodes {
		if nodeIDs[n.ID] {
			errs = append(errs, fmt.Errorf("scene: duplicate node id %d", n.ID))
		}
		nodeIDs[n.ID] = true
		for kind, list := range map[string][]Pin{"input": n.Inputs, "output": n.Outputs, "static": n.Static} {
			for _, p := range list {
				if _, ok := pins[p.ID]; ok {
					errs = append(errs, fmt.Errorf("scene: duplicate pin id %d", p.ID))
				}
				pins[p.ID] = kind
			}
		}
	}

	linkIDs := map[int]bool{}
	for _, l := range s.Links {
		if linkIDs[l.ID] {
			errs = append(errs, fmt.Errorf("scene: duplicate link id %d", l.ID))
		}
		linkIDs[l.ID] = true
		if pins[l.From] != "output" {
			errs = append(errs, fmt.Errorf("scene: link %d starts at %d, not an output pin", l.ID, l.From))
		}
		if pins[l.To] != "input" {
			errs = append(errs, fmt.Errorf("scene: link %d ends at %d, not an input pin", l.ID, l.To))
		}
	}

	for i, f := range s.Frames {
		if _, err := f.Input(); err != nil {
			errs = append(errs, fmt.Errorf("scene: frame %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// FrameCount returns the number of frames the script plays, repeats
// included.
func (s *Scene) FrameCount() int {
	n := 0
	for _, f := range s.Frames {
		n += 1 + f.Repeat
	}
	return n
}

// Load reads a TOML or YAML scene and validates it.
func Load(path string) (*Scene, error) {
	var s Scene
	if err := config.DecodeFile(path, &s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &s, nil
}
