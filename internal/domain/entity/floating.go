package entity

import "time"

// FloatingContainer is a top-level window wrapping exactly one DockContainer.
type FloatingContainer struct {
	ID        string
	Title     string
	Geometry  Rect
	Container *DockContainer
	CreatedAt time.Time
}

// NewFloatingContainer creates a floating window and its (empty) container.
// The container's bounds follow the window geometry.
func NewFloatingContainer(id, containerID string, geometry Rect) *FloatingContainer {
	f := &FloatingContainer{
		ID:        id,
		Geometry:  geometry,
		CreatedAt: time.Now(),
	}
	f.Container = NewDockContainer(containerID, geometry)
	f.Container.Floating = f
	return f
}

// MoveTo repositions the window, keeping its size.
func (f *FloatingContainer) MoveTo(p Point) {
	f.Geometry.X = p.X
	f.Geometry.Y = p.Y
	f.Container.Bounds = f.Geometry
}

// DockWidgets returns all widgets hosted by this window.
func (f *FloatingContainer) DockWidgets() []*DockWidget {
	return f.Container.DockWidgets()
}

// IsEmpty reports whether the window hosts no widget.
func (f *FloatingContainer) IsEmpty() bool {
	return f.Container.IsEmpty()
}
