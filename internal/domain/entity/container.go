package entity

// DockContainer is the splitter tree of areas inside one top-level window.
// The main window embeds one; each floating container owns another.
type DockContainer struct {
	ID       string
	Root     *LayoutNode // nil when empty
	Bounds   Rect        // Pixel bounds used for geometry computation
	Floating *FloatingContainer
}

// NewDockContainer creates an empty container.
func NewDockContainer(id string, bounds Rect) *DockContainer {
	return &DockContainer{ID: id, Bounds: bounds}
}

// IsFloating reports whether this container belongs to a floating window.
func (c *DockContainer) IsFloating() bool {
	return c.Floating != nil
}

// IsEmpty reports whether the container holds no area.
func (c *DockContainer) IsEmpty() bool {
	return c.Root == nil
}

// Areas returns all areas in visual order.
func (c *DockContainer) Areas() []*DockArea {
	if c.Root == nil {
		return nil
	}
	return c.Root.Areas()
}

// AreaCount returns the number of areas.
func (c *DockContainer) AreaCount() int {
	return len(c.Areas())
}

// DockWidgets returns all widgets in area then tab order.
func (c *DockContainer) DockWidgets() []*DockWidget {
	var out []*DockWidget
	for _, a := range c.Areas() {
		out = append(out, a.Widgets...)
	}
	return out
}

// FindArea returns the area with the given ID, or nil.
func (c *DockContainer) FindArea(id string) *DockArea {
	for _, a := range c.Areas() {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// ContainsArea reports whether a is part of this container's tree.
func (c *DockContainer) ContainsArea(a *DockArea) bool {
	if a == nil {
		return false
	}
	for _, candidate := range c.Areas() {
		if candidate == a {
			return true
		}
	}
	return false
}

// LastArea returns the last area in visual order, or nil.
func (c *DockContainer) LastArea() *DockArea {
	areas := c.Areas()
	if len(areas) == 0 {
		return nil
	}
	return areas[len(areas)-1]
}
