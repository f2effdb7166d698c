package entity

import (
	"fmt"
	"math"
)

// LayoutStateVersion is the current schema version for layout state.
// Increment when making breaking changes to the serialization format.
const LayoutStateVersion = 1

// LayoutState is a complete, codec-neutral snapshot of a dock manager layout.
type LayoutState struct {
	Version      int             `json:"version" yaml:"version"`
	Widgets      []WidgetState   `json:"widgets" yaml:"widgets"`
	Main         ContainerState  `json:"main" yaml:"main"`
	Floating     []FloatingState `json:"floating,omitempty" yaml:"floating,omitempty"`
	ActiveWidget string          `json:"active_widget,omitempty" yaml:"active_widget,omitempty"`
}

// WidgetState captures one registered widget.
type WidgetState struct {
	Name     string            `json:"name" yaml:"name"`
	Closed   bool              `json:"closed" yaml:"closed"`
	AutoHide DockLocation      `json:"auto_hide,omitempty" yaml:"auto_hide,omitempty"`
	Features []FeatureOverride `json:"features,omitempty" yaml:"features,omitempty"`
}

// ContainerState captures a splitter tree.
type ContainerState struct {
	Root *NodeState `json:"root,omitempty" yaml:"root,omitempty"`
}

// NodeState captures a node of the splitter tree.
type NodeState struct {
	Orientation Orientation  `json:"orientation" yaml:"orientation"`
	Sizes       []float64    `json:"sizes,omitempty" yaml:"sizes,omitempty"`
	Children    []*NodeState `json:"children,omitempty" yaml:"children,omitempty"` // Non-nil for splitters
	Area        *AreaState   `json:"area,omitempty" yaml:"area,omitempty"`         // Non-nil for leaves
}

// AreaState captures a tab group.
type AreaState struct {
	CurrentIndex int      `json:"current_index" yaml:"current_index"`
	Widgets      []string `json:"widgets" yaml:"widgets"`
}

// FloatingState captures a floating window.
type FloatingState struct {
	Title     string         `json:"title,omitempty" yaml:"title,omitempty"`
	Geometry  Rect           `json:"geometry" yaml:"geometry"`
	Container ContainerState `json:"container" yaml:"container"`
}

// SnapshotContainer captures the tree of c.
func SnapshotContainer(c *DockContainer) ContainerState {
	if c == nil {
		return ContainerState{}
	}
	return ContainerState{Root: snapshotNode(c.Root)}
}

func snapshotNode(n *LayoutNode) *NodeState {
	if n == nil {
		return nil
	}
	if n.IsLeaf() {
		return &NodeState{
			Area: &AreaState{
				CurrentIndex: n.Area.CurrentIndex,
				Widgets:      n.Area.WidgetNames(),
			},
		}
	}
	s := &NodeState{
		Orientation: n.Orientation,
		Sizes:       append([]float64(nil), n.Sizes...),
		Children:    make([]*NodeState, 0, len(n.Children)),
	}
	for _, child := range n.Children {
		s.Children = append(s.Children, snapshotNode(child))
	}
	return s
}

// Walk visits every node of the state tree.
func (s *NodeState) Walk(fn func(*NodeState)) {
	if s == nil {
		return
	}
	fn(s)
	for _, c := range s.Children {
		c.Walk(fn)
	}
}

// AreaCount returns the number of leaves in every container.
func (s *LayoutState) AreaCount() int {
	count := 0
	visit := func(n *NodeState) {
		if n.Area != nil {
			count++
		}
	}
	s.Main.Root.Walk(visit)
	for _, f := range s.Floating {
		f.Container.Root.Walk(visit)
	}
	return count
}

// Validate checks structural consistency: known version, well-formed
// splitters, non-empty areas, in-range current tabs and every placed widget
// declared exactly once.
func (s *LayoutState) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: nil state", ErrMalformedState)
	}
	if s.Version < 1 || s.Version > LayoutStateVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrMalformedState, s.Version)
	}

	declared := make(map[string]WidgetState, len(s.Widgets))
	for _, w := range s.Widgets {
		if w.Name == "" {
			return fmt.Errorf("%w: widget without name", ErrMalformedState)
		}
		if _, dup := declared[w.Name]; dup {
			return fmt.Errorf("%w: widget %q declared twice", ErrMalformedState, w.Name)
		}
		if w.AutoHide != NoDockLocation && !w.AutoHide.IsEdge() {
			return fmt.Errorf("%w: widget %q has invalid auto-hide side %q", ErrMalformedState, w.Name, w.AutoHide)
		}
		for _, o := range w.Features {
			if !KnownFeature(o.Feature) {
				return fmt.Errorf("%w: widget %q has unknown feature %q", ErrMalformedState, w.Name, o.Feature)
			}
		}
		declared[w.Name] = w
	}

	placed := make(map[string]bool)
	check := func(c ContainerState, floating bool) error {
		if c.Root == nil {
			if floating {
				return fmt.Errorf("%w: empty floating container", ErrMalformedState)
			}
			return nil
		}
		return validateNode(c.Root, declared, placed)
	}
	if err := check(s.Main, false); err != nil {
		return err
	}
	for _, f := range s.Floating {
		if err := check(f.Container, true); err != nil {
			return err
		}
	}

	for _, w := range s.Widgets {
		if !w.Closed && !placed[w.Name] {
			return fmt.Errorf("%w: open widget %q is not placed", ErrMalformedState, w.Name)
		}
		if w.Closed && placed[w.Name] {
			return fmt.Errorf("%w: closed widget %q is placed", ErrMalformedState, w.Name)
		}
	}
	return nil
}

func validateNode(n *NodeState, declared map[string]WidgetState, placed map[string]bool) error {
	if n.Area != nil {
		if len(n.Children) > 0 {
			return fmt.Errorf("%w: leaf with children", ErrMalformedState)
		}
		if len(n.Area.Widgets) == 0 {
			return fmt.Errorf("%w: empty area", ErrMalformedState)
		}
		if n.Area.CurrentIndex < 0 || n.Area.CurrentIndex >= len(n.Area.Widgets) {
			return fmt.Errorf("%w: current index %d out of range", ErrMalformedState, n.Area.CurrentIndex)
		}
		for _, name := range n.Area.Widgets {
			if _, ok := declared[name]; !ok {
				return fmt.Errorf("%w: undeclared widget %q", ErrMalformedState, name)
			}
			if placed[name] {
				return fmt.Errorf("%w: widget %q placed twice", ErrMalformedState, name)
			}
			placed[name] = true
		}
		return nil
	}

	if len(n.Children) < 2 {
		return fmt.Errorf("%w: splitter with %d children", ErrMalformedState, len(n.Children))
	}
	if len(n.Sizes) != 0 && len(n.Sizes) != len(n.Children) {
		return fmt.Errorf("%w: %d sizes for %d children", ErrMalformedState, len(n.Sizes), len(n.Children))
	}
	for _, size := range n.Sizes {
		if math.IsNaN(size) || math.IsInf(size, 0) || size < 0 {
			return fmt.Errorf("%w: invalid size %v", ErrMalformedState, size)
		}
	}
	for _, child := range n.Children {
		if child == nil {
			return fmt.Errorf("%w: nil child", ErrMalformedState)
		}
		if err := validateNode(child, declared, placed); err != nil {
			return err
		}
	}
	return nil
}
