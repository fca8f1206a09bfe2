package nodes

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/nodes/geom"
)

// PushColorStyle overrides a style colour until the matching
// PopColorStyle. Objects declared in between keep the pushed colour.
func (c *Context) PushColorStyle(id ColorID, col gg.RGBA) {
	c.colorStack = append(c.colorStack, colorPush{id: id, value: c.style.Colors[id]})
	c.style.Colors[id] = col
}

// PopColorStyle restores the colour replaced by the last PushColorStyle.
func (c *Context) PopColorStyle() {
	n := len(c.colorStack)
	if n == 0 {
		fail(ErrStack, "PopColorStyle without PushColorStyle")
	}
	top := c.colorStack[n-1]
	c.colorStack = c.colorStack[:n-1]
	c.style.Colors[top.id] = top.value
}

// PushStyleVar overrides a scalar style variable.
func (c *Context) PushStyleVar(v StyleVar, value float64) {
	p := c.style.float(v)
	if p == nil {
		fail(ErrStyleVar, "%d is not a scalar style variable", v)
	}
	c.styleVarStack = append(c.styleVarStack, styleVarPush{v: v, value: geom.V(*p, 0)})
	*p = value
}

// PushStyleVarVec2 overrides a vector style variable.
func (c *Context) PushStyleVarVec2(v StyleVar, value geom.Vec2) {
	p := c.style.vec(v)
	if p == nil {
		fail(ErrStyleVar, "%d is not a vector style variable", v)
	}
	c.styleVarStack = append(c.styleVarStack, styleVarPush{v: v, value: *p})
	*p = value
}

// PopStyleVar restores the last count style variables.
func (c *Context) PopStyleVar(count int) {
	for range count {
		n := len(c.styleVarStack)
		if n == 0 {
			fail(ErrStack, "PopStyleVar without PushStyleVar")
		}
		top := c.styleVarStack[n-1]
		c.styleVarStack = c.styleVarStack[:n-1]
		if p := c.style.float(top.v); p != nil {
			*p = top.value.X
		} else {
			*c.style.vec(top.v) = top.value
		}
	}
}

// PushAttributeFlag adds flag to the flags of pins declared until the
// matching PopAttributeFlag.
func (c *Context) PushAttributeFlag(flag AttributeFlags) {
	c.attrFlags |= flag
	c.attrFlagStack = append(c.attrFlagStack, c.attrFlags)
}

// PopAttributeFlag restores the attribute flags of the last push.
func (c *Context) PopAttributeFlag() {
	n := len(c.attrFlagStack)
	// The bottom entry holds the default flags and is never popped.
	if n <= 1 {
		fail(ErrStack, "PopAttributeFlag without PushAttributeFlag")
	}
	c.attrFlagStack = c.attrFlagStack[:n-1]
	c.attrFlags = c.attrFlagStack[n-2]
}
