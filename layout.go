package nodes

import (
	"unicode/utf8"

	"github.com/gogpu/nodes/geom"
)

// TextMeasurer reports the size of a single line of text in screen units.
type TextMeasurer interface {
	Measure(text string) geom.Vec2
}

// FixedMeasurer sizes text with a constant advance per rune. It is the
// default when no font is available.
type FixedMeasurer struct {
	Advance    float64
	LineHeight float64
}

// Measure implements TextMeasurer.
func (m FixedMeasurer) Measure(text string) geom.Vec2 {
	return geom.V(float64(utf8.RuneCountInString(text))*m.Advance, m.LineHeight)
}

type layoutGroup struct {
	start  geom.Vec2
	bounds geom.Rect
	active bool
}

// layout is a vertical item cursor with nested groups. A group's rect
// spans from its start position to the furthest item placed in it.
type layout struct {
	cursor  geom.Vec2
	spacing geom.Vec2
	groups  []layoutGroup

	lastItem    geom.Rect
	lastHovered bool
	lastActive  bool
}

func (l *layout) begin(pos, spacing geom.Vec2) {
	l.cursor = pos
	l.spacing = spacing
	l.groups = l.groups[:0]
	l.beginGroup()
}

func (l *layout) setCursor(p geom.Vec2) { l.cursor = p }

// item places a rect of the given size at the cursor and moves the cursor
// to the next line.
func (l *layout) item(size geom.Vec2) geom.Rect {
	r := geom.Rect{Min: l.cursor, Max: l.cursor.Add(size)}
	if n := len(l.groups); n > 0 {
		g := &l.groups[n-1]
		g.bounds = g.bounds.Union(r)
	}
	l.cursor = geom.V(r.Min.X, r.Max.Y+l.spacing.Y)
	l.lastItem = r
	l.lastHovered = false
	l.lastActive = false
	return r
}

func (l *layout) beginGroup() {
	l.groups = append(l.groups, layoutGroup{start: l.cursor, bounds: geom.Inverted()})
}

// endGroup closes the innermost group, places it as a single item and
// reports whether an active item was inside it.
func (l *layout) endGroup() (geom.Rect, bool) {
	n := len(l.groups)
	g := l.groups[n-1]
	l.groups = l.groups[:n-1]

	r := geom.Rect{Min: g.start, Max: g.start}
	if !g.bounds.IsInverted() {
		r.Max = geom.Max(g.start, g.bounds.Max)
	}
	l.cursor = g.start
	l.item(r.Size())
	if g.active {
		l.markActive()
		l.lastActive = true
	}
	return r, g.active
}

func (l *layout) markActive() {
	for i := range l.groups {
		l.groups[i].active = true
	}
}

// Label places a line of text at the layout cursor.
func (c *Context) Label(text string) {
	c.requireScope(scopeNode|scopeAttribute, "Label")
	r := c.layout.item(c.measurer.Measure(text))
	c.list.AddText(r.Min, c.style.TextColor, text)
}

// Dummy reserves empty space at the layout cursor.
func (c *Context) Dummy(size geom.Vec2) {
	c.requireScope(scopeNode|scopeAttribute, "Dummy")
	c.layout.item(size)
}

// Widget reserves an interactive rectangle at the layout cursor and reports
// whether it was pressed, that is clicked and released over it, this
// frame. While the button is held after a click on it the widget is
// active: the editor leaves the mouse to it and IsAnyAttributeActive
// reports its attribute. The host draws the widget itself, using
// LastItemRect and DrawList.
func (c *Context) Widget(id int, size geom.Vec2) bool {
	c.requireScope(scopeNode|scopeAttribute, "Widget")
	r := c.layout.item(size)
	hovered := c.mouseInside && r.Contains(c.in.mousePos)
	if hovered {
		c.widgetHovered = true
	}
	if hovered && c.in.leftClicked {
		c.activeWidget = id
		c.hasActiveWidget = true
	}

	pressed := false
	active := c.hasActiveWidget && c.activeWidget == id
	if active {
		c.activeWidgetSeen = true
		if !c.in.leftDown {
			pressed = hovered
			c.hasActiveWidget = false
			active = false
		}
	}
	if active {
		c.layout.markActive()
	}
	c.layout.lastHovered = hovered
	c.layout.lastActive = active
	return pressed
}

// LastItemRect returns the screen rect of the last placed item, in the
// coordinates of DrawList.
func (c *Context) LastItemRect() geom.Rect { return c.layout.lastItem }

// IsItemHovered reports whether the mouse is over the last widget.
func (c *Context) IsItemHovered() bool { return c.layout.lastHovered }

// IsItemActive reports whether the last widget or group holds the mouse.
func (c *Context) IsItemActive() bool { return c.layout.lastActive }
