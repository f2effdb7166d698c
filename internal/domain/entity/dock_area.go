package entity

// DockArea is a tab group: an ordered list of widgets sharing one region.
// It owns no content; an area with zero widgets must not stay in a container.
type DockArea struct {
	ID           string
	Widgets      []*DockWidget // Tab order
	CurrentIndex int

	Node      *LayoutNode    // Leaf holding this area
	Container *DockContainer // Container the leaf belongs to

	// AllowedAreas are the drop zones the area overlay offers for this area.
	AllowedAreas DockLocations
}

// NewDockArea creates an empty, detached area.
func NewDockArea(id string) *DockArea {
	return &DockArea{
		ID:           id,
		CurrentIndex: -1,
		AllowedAreas: AllDockLocations(),
	}
}

// Count returns the number of tabs.
func (a *DockArea) Count() int {
	return len(a.Widgets)
}

// IndexOf returns the tab index of w, or -1.
func (a *DockArea) IndexOf(w *DockWidget) int {
	for i, candidate := range a.Widgets {
		if candidate == w {
			return i
		}
	}
	return -1
}

// Contains reports whether w is a tab of this area.
func (a *DockArea) Contains(w *DockWidget) bool {
	return a.IndexOf(w) >= 0
}

// CurrentWidget returns the visible tab, or nil.
func (a *DockArea) CurrentWidget() *DockWidget {
	if a.CurrentIndex >= 0 && a.CurrentIndex < len(a.Widgets) {
		return a.Widgets[a.CurrentIndex]
	}
	return nil
}

// WidgetNames returns the object names in tab order.
func (a *DockArea) WidgetNames() []string {
	names := make([]string, 0, len(a.Widgets))
	for _, w := range a.Widgets {
		names = append(names, w.Name)
	}
	return names
}

// IsFloating reports whether the area lives in a floating container.
func (a *DockArea) IsFloating() bool {
	return a.Container != nil && a.Container.IsFloating()
}

// VisibleWidgets returns the tabs that are not collapsed into a side strip.
func (a *DockArea) VisibleWidgets() []*DockWidget {
	var out []*DockWidget
	for _, w := range a.Widgets {
		if !w.IsAutoHide() {
			out = append(out, w)
		}
	}
	return out
}
