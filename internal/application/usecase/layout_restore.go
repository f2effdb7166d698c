package usecase

import "github.com/bnema/dockyard/internal/domain/entity"

// WidgetLookup resolves a widget name from a layout state. A nil result means
// the widget is not registered and is skipped.
type WidgetLookup func(name string) *entity.DockWidget

// BuildContainer constructs a detached container from a decoded tree.
//
// Widgets are only referenced from the new areas; their Area, State and
// LastArea fields are left untouched so a failed restore leaves them as
// they were. Unknown names are dropped, empty areas are skipped and the
// result is collapsed like any other tree.
func (uc *ManageLayoutUseCase) BuildContainer(id string, bounds entity.Rect, state entity.ContainerState, lookup WidgetLookup) *entity.DockContainer {
	c := entity.NewDockContainer(id, bounds)
	root := uc.buildNode(state.Root, lookup)
	if root == nil {
		return c
	}
	root.Parent = nil
	c.Root = root
	for _, area := range root.Areas() {
		area.Container = c
	}
	return c
}

func (uc *ManageLayoutUseCase) buildNode(s *entity.NodeState, lookup WidgetLookup) *entity.LayoutNode {
	if s == nil {
		return nil
	}
	if s.Area != nil {
		return uc.buildLeaf(s.Area, lookup)
	}

	n := &entity.LayoutNode{
		ID:          uc.idGenerator(),
		Orientation: s.Orientation,
	}
	for i, childState := range s.Children {
		child := uc.buildNode(childState, lookup)
		if child == nil {
			continue
		}
		size := 1.0
		if len(s.Sizes) == len(s.Children) {
			size = s.Sizes[i]
		}
		insertChild(n, len(n.Children), child, size)
	}

	switch len(n.Children) {
	case 0:
		return nil
	case 1:
		only := n.Children[0]
		only.Parent = nil
		return only
	}

	normalizeSizes(n.Sizes)
	for i := 0; i < len(n.Children); i++ {
		child := n.Children[i]
		if child.IsSplitter() && child.Orientation == n.Orientation {
			grandchildren := len(child.Children)
			flattenChild(n, i)
			i += grandchildren - 1
		}
	}
	for i := range n.Sizes {
		n.Sizes[i] = roundSplitRatio(n.Sizes[i])
	}
	normalizeSizes(n.Sizes)
	return n
}

func (uc *ManageLayoutUseCase) buildLeaf(s *entity.AreaState, lookup WidgetLookup) *entity.LayoutNode {
	area := uc.NewArea()
	current := ""
	if s.CurrentIndex >= 0 && s.CurrentIndex < len(s.Widgets) {
		current = s.Widgets[s.CurrentIndex]
	}
	for _, name := range s.Widgets {
		w := lookup(name)
		if w == nil {
			continue
		}
		if name == current {
			area.CurrentIndex = len(area.Widgets)
		}
		area.Widgets = append(area.Widgets, w)
	}
	if len(area.Widgets) == 0 {
		return nil
	}
	if area.CurrentIndex < 0 {
		area.CurrentIndex = 0
	}
	return entity.NewLeaf(uc.idGenerator(), area)
}

// CommitContainer points every widget of c at its new area. It is the second
// half of an all-or-nothing restore.
func (uc *ManageLayoutUseCase) CommitContainer(c *entity.DockContainer) {
	for _, area := range c.Areas() {
		for _, w := range area.Widgets {
			w.Area = area
			w.LastArea = area
		}
		refreshWidgetStates(area)
	}
}
