package nodes

import (
	"testing"

	"github.com/gogpu/nodes/geom"
)

func TestColorIDNames(t *testing.T) {
	for id := range ColCount {
		name := id.String()
		got, ok := ParseColorID(name)
		if !ok || got != id {
			t.Errorf("ParseColorID(%q) = (%v, %v), want (%v, true)", name, got, ok, id)
		}
	}
	if _, ok := ParseColorID("NoSuchColor"); ok {
		t.Error("ParseColorID accepted an unknown name")
	}
	if got := ColorID(-1).String(); got != "Unknown" {
		t.Errorf("String() = %q, want Unknown", got)
	}
}

func TestStylePresetsDiffer(t *testing.T) {
	dark, classic, light := DefaultStyle(), DefaultStyle(), DefaultStyle()
	StyleColorsClassic(&classic)
	StyleColorsLight(&light)

	if dark.Colors == classic.Colors || dark.Colors == light.Colors || classic.Colors == light.Colors {
		t.Error("colour presets are not distinct")
	}
	for _, s := range []Style{dark, classic, light} {
		for id := range ColCount {
			if s.Colors[id].A == 0 {
				t.Errorf("colour %v is fully transparent", id)
			}
		}
	}
	// Presets only touch colours.
	if light.GridSpacing != dark.GridSpacing || light.NodePadding != dark.NodePadding {
		t.Error("preset changed style metrics")
	}
}

func TestColorStack(t *testing.T) {
	c := NewContext()
	orig := c.Style().Colors[ColLink]
	red := rgba8(255, 0, 0, 255)
	blue := rgba8(0, 0, 255, 255)

	c.PushColorStyle(ColLink, red)
	c.PushColorStyle(ColLink, blue)
	if got := c.Style().Colors[ColLink]; got != blue {
		t.Errorf("after two pushes = %v, want %v", got, blue)
	}
	c.PopColorStyle()
	if got := c.Style().Colors[ColLink]; got != red {
		t.Errorf("after one pop = %v, want %v", got, red)
	}
	c.PopColorStyle()
	if got := c.Style().Colors[ColLink]; got != orig {
		t.Errorf("after two pops = %v, want %v", got, orig)
	}
	expectPanic(t, ErrStack, c.PopColorStyle)
}

func TestStyleVarStack(t *testing.T) {
	c := NewContext()
	s := c.Style()

	c.PushStyleVar(StyleVarLinkThickness, 9)
	c.PushStyleVarVec2(StyleVarNodePadding, geom.V(2, 3))
	if s.LinkThickness != 9 || s.NodePadding != geom.V(2, 3) {
		t.Fatalf("pushed values = %v, %v", s.LinkThickness, s.NodePadding)
	}
	c.PopStyleVar(2)
	if s.LinkThickness != 3 || s.NodePadding != geom.V(8, 8) {
		t.Errorf("restored values = %v, %v, want 3, (8, 8)", s.LinkThickness, s.NodePadding)
	}
	expectPanic(t, ErrStack, func() { c.PopStyleVar(1) })
}

func TestStyleVarArity(t *testing.T) {
	c := NewContext()
	expectPanic(t, ErrStyleVar, func() { c.PushStyleVar(StyleVarNodePadding, 1) })
	expectPanic(t, ErrStyleVar, func() { c.PushStyleVarVec2(StyleVarGridSpacing, geom.V(1, 1)) })
}

func TestAttributeFlagStack(t *testing.T) {
	c := NewContext()
	c.PushAttributeFlag(AttributeEnableLinkDetachWithDragClick)
	c.PushAttributeFlag(AttributeEnableLinkCreationOnSnap)
	if want := AttributeEnableLinkDetachWithDragClick | AttributeEnableLinkCreationOnSnap; c.attrFlags != want {
		t.Errorf("flags = %v, want %v", c.attrFlags, want)
	}
	c.PopAttributeFlag()
	if c.attrFlags != AttributeEnableLinkDetachWithDragClick {
		t.Errorf("flags after pop = %v", c.attrFlags)
	}
	c.PopAttributeFlag()
	if c.attrFlags != AttributeFlagsNone {
		t.Errorf("flags after second pop = %v, want none", c.attrFlags)
	}
	expectPanic(t, ErrStack, c.PopAttributeFlag)
}

func TestPushedColorAppliesToDeclaredNode(t *testing.T) {
	c := NewContext()
	green := rgba8(0, 200, 0, 255)
	c.BeginEditor(testCanvas, Input{})
	c.SetNodeGridSpacePos(1, geom.V(10, 10))
	c.PushColorStyle(ColNodeBackground, green)
	c.BeginNode(1)
	c.Label("x")
	c.EndNode()
	c.PopColorStyle()
	c.EndEditor()

	i, _ := c.editor.nodes.Find(1)
	if got := c.editor.nodes.At(i).colors.background; got != green {
		t.Errorf("node background = %v, want %v", got, green)
	}
}
