package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

const (
	minInsertRatio = 0.05
	maxInsertRatio = 0.95

	splitRatioRoundFactor = 100.0
)

// ErrNothingToMove is returned when a move would leave the layout unchanged.
var ErrNothingToMove = errors.New("nothing to move")

// ManageLayoutUseCase handles splitter tree and tab group operations.
// It keeps the tree fully collapsed: no empty area and no splitter with
// fewer than two children survives an operation.
type ManageLayoutUseCase struct {
	idGenerator IDGenerator
}

// NewManageLayoutUseCase creates a new layout management use case.
func NewManageLayoutUseCase(idGenerator IDGenerator) *ManageLayoutUseCase {
	if idGenerator == nil {
		idGenerator = UUIDGenerator()
	}
	return &ManageLayoutUseCase{
		idGenerator: idGenerator,
	}
}

// NewArea creates a detached, empty area with a fresh ID.
func (uc *ManageLayoutUseCase) NewArea() *entity.DockArea {
	return entity.NewDockArea(uc.idGenerator())
}

// NewID returns a fresh identifier from the configured generator.
func (uc *ManageLayoutUseCase) NewID() string {
	return uc.idGenerator()
}

// InsertAreaInput contains parameters for splicing an area into a container.
type InsertAreaInput struct {
	Container *entity.DockContainer
	Target    *entity.DockArea // Optional: nil targets the container's outer edge
	Location  entity.DockLocation
	Area      *entity.DockArea
	Ratio     float64 // Share taken by the new area, 0 means default
	// EqualSplit resizes every sibling to the same share after insertion.
	EqualSplit bool
}

// InsertArea splices a detached area into the container at Location relative
// to Target (or to the whole container when Target is nil).
func (uc *ManageLayoutUseCase) InsertArea(ctx context.Context, input InsertAreaInput) error {
	if input.Area == nil {
		return fmt.Errorf("area is required")
	}
	if input.Area.Node != nil {
		return fmt.Errorf("area %s is already part of a layout", input.Area.ID)
	}

	leaf := entity.NewLeaf(uc.idGenerator(), input.Area)
	if err := uc.InsertNode(ctx, InsertNodeInput{
		Container:  input.Container,
		Target:     input.Target,
		Location:   input.Location,
		Node:       leaf,
		Ratio:      input.Ratio,
		EqualSplit: input.EqualSplit,
	}); err != nil {
		input.Area.Node = nil
		return err
	}
	return nil
}

// InsertNodeInput contains parameters for splicing a whole subtree.
type InsertNodeInput struct {
	Container  *entity.DockContainer
	Target     *entity.DockArea
	Location   entity.DockLocation
	Node       *entity.LayoutNode
	Ratio      float64
	EqualSplit bool
}

// InsertNode splices a detached subtree (a leaf or a splitter) into the
// container. Used for area insertion and for re-merging floating containers.
func (uc *ManageLayoutUseCase) InsertNode(ctx context.Context, input InsertNodeInput) error {
	log := logging.FromContext(ctx)

	c := input.Container
	if c == nil {
		return fmt.Errorf("%w: container is required", entity.ErrInvalidTarget)
	}
	if input.Node == nil {
		return fmt.Errorf("node is required")
	}
	if input.Target != nil && !c.ContainsArea(input.Target) {
		return fmt.Errorf("%w: area %s is not in container %s", entity.ErrInvalidTarget, input.Target.ID, c.ID)
	}

	node := input.Node
	node.Parent = nil

	if c.Root == nil {
		if input.Target != nil {
			return fmt.Errorf("%w: container %s is empty", entity.ErrInvalidTarget, c.ID)
		}
		c.Root = node
		uc.adoptSubtree(c, node)
		log.Debug().Str("container", c.ID).Msg("node became container root")
		return nil
	}

	loc := input.Location
	if !loc.IsEdge() {
		return fmt.Errorf("%w: cannot split at %q", entity.ErrInvalidTarget, loc)
	}

	ratio := clampFloat64(input.Ratio, minInsertRatio, maxInsertRatio)
	if input.Ratio == 0 {
		ratio = entity.DefaultSplitRatio
	}
	orientation := loc.Orientation()
	before := loc.InsertsBefore()

	target := c.Root
	if input.Target != nil {
		target = input.Target.Node
	}

	var splitter *entity.LayoutNode
	switch {
	case input.Target == nil && target.IsSplitter() && target.Orientation == orientation:
		// Container edge along the root splitter: shrink everybody.
		for i := range target.Sizes {
			target.Sizes[i] *= 1 - ratio
		}
		idx := len(target.Children)
		if before {
			idx = 0
		}
		insertChild(target, idx, node, ratio)
		splitter = target
	case input.Target != nil && target.Parent != nil && target.Parent.Orientation == orientation:
		// Adjacent sibling in the existing splitter, carved out of the target's share.
		parent := target.Parent
		idx := parent.IndexOf(target)
		share := parent.Sizes[idx]
		parent.Sizes[idx] = share * (1 - ratio)
		if !before {
			idx++
		}
		insertChild(parent, idx, node, share*ratio)
		splitter = parent
	default:
		// Replace the target with a new splitter holding both.
		splitter = &entity.LayoutNode{
			ID:          uc.idGenerator(),
			Orientation: orientation,
		}
		replaceNode(c, target, splitter)
		if before {
			splitter.Children = []*entity.LayoutNode{node, target}
			splitter.Sizes = []float64{ratio, 1 - ratio}
		} else {
			splitter.Children = []*entity.LayoutNode{target, node}
			splitter.Sizes = []float64{1 - ratio, ratio}
		}
		target.Parent = splitter
		node.Parent = splitter
	}

	if node.IsSplitter() && node.Orientation == splitter.Orientation {
		flattenChild(splitter, splitter.IndexOf(node))
	}

	if input.EqualSplit {
		for i := range splitter.Sizes {
			splitter.Sizes[i] = 1
		}
	}
	normalizeSizes(splitter.Sizes)
	uc.adoptSubtree(c, node)

	log.Info().
		Str("container", c.ID).
		Str("location", string(loc)).
		Str("splitter", splitter.ID).
		Int("siblings", len(splitter.Children)).
		Msg("node inserted")

	return nil
}

// adoptSubtree points every area below node at container c and refreshes
// the lifecycle state of their widgets.
func (uc *ManageLayoutUseCase) adoptSubtree(c *entity.DockContainer, node *entity.LayoutNode) {
	for _, area := range node.Areas() {
		area.Container = c
		refreshWidgetStates(area)
	}
}

// AddWidget inserts a detached widget into area at index (-1 appends) and
// makes it the current tab.
func (uc *ManageLayoutUseCase) AddWidget(ctx context.Context, area *entity.DockArea, w *entity.DockWidget, index int) error {
	log := logging.FromContext(ctx)
	if area == nil {
		return fmt.Errorf("%w: area is required", entity.ErrInvalidTarget)
	}
	if w == nil {
		return fmt.Errorf("widget is required")
	}
	if w.Area != nil {
		return fmt.Errorf("widget %s is still owned by area %s", w.Name, w.Area.ID)
	}

	if index < 0 || index > len(area.Widgets) {
		index = len(area.Widgets)
	}
	area.Widgets = append(area.Widgets, nil)
	copy(area.Widgets[index+1:], area.Widgets[index:])
	area.Widgets[index] = w
	area.CurrentIndex = index

	w.Area = area
	w.LastArea = area
	refreshWidgetStates(area)

	log.Debug().
		Str("widget", w.Name).
		Str("area", area.ID).
		Int("index", index).
		Msg("widget added to area")
	return nil
}

// RemoveWidget detaches w from its area. When the area becomes empty it is
// removed from its container and returned.
func (uc *ManageLayoutUseCase) RemoveWidget(ctx context.Context, w *entity.DockWidget) (*entity.DockArea, error) {
	log := logging.FromContext(ctx)
	if w == nil || w.Area == nil {
		return nil, fmt.Errorf("%w: widget is not in an area", entity.ErrWidgetNotFound)
	}

	area := w.Area
	idx := area.IndexOf(w)
	if idx < 0 {
		return nil, fmt.Errorf("widget %s not found in area %s", w.Name, area.ID)
	}

	area.Widgets = append(area.Widgets[:idx], area.Widgets[idx+1:]...)
	if area.CurrentIndex > idx {
		area.CurrentIndex--
	}
	if area.CurrentIndex >= len(area.Widgets) {
		area.CurrentIndex = len(area.Widgets) - 1
	}
	w.Area = nil

	log.Debug().
		Str("widget", w.Name).
		Str("area", area.ID).
		Int("remaining", len(area.Widgets)).
		Msg("widget removed from area")

	if len(area.Widgets) > 0 {
		return nil, nil
	}

	area.CurrentIndex = -1
	if area.Node != nil {
		if err := uc.RemoveArea(ctx, area); err != nil {
			return nil, err
		}
	}
	return area, nil
}

// RemoveArea detaches area's leaf and collapses degenerate splitters.
func (uc *ManageLayoutUseCase) RemoveArea(ctx context.Context, area *entity.DockArea) error {
	log := logging.FromContext(ctx)
	if area == nil || area.Node == nil || area.Container == nil {
		return fmt.Errorf("%w: area is not part of a layout", entity.ErrInvalidTarget)
	}

	c := area.Container
	node := area.Node
	parent := node.Parent
	detachNode(c, node)
	uc.collapse(c, parent)

	area.Node = nil
	area.Container = nil

	log.Info().
		Str("area", area.ID).
		Str("container", c.ID).
		Int("areas_left", c.AreaCount()).
		Msg("area removed")
	return nil
}

// DetachRoot removes and returns the whole tree of c, leaving it empty.
func (uc *ManageLayoutUseCase) DetachRoot(c *entity.DockContainer) *entity.LayoutNode {
	root := c.Root
	c.Root = nil
	if root != nil {
		root.Parent = nil
	}
	return root
}

// collapse walks up from n removing empty splitters and replacing
// single-child splitters by their child.
func (uc *ManageLayoutUseCase) collapse(c *entity.DockContainer, n *entity.LayoutNode) {
	for n != nil && n.IsSplitter() {
		parent := n.Parent
		switch len(n.Children) {
		case 0:
			detachNode(c, n)
		case 1:
			child := n.Children[0]
			replaceNode(c, n, child)
			n.Children = nil
			n.Sizes = nil
			if parent != nil && child.IsSplitter() && child.Orientation == parent.Orientation {
				flattenChild(parent, parent.IndexOf(child))
			}
		default:
			normalizeSizes(n.Sizes)
			return
		}
		n = parent
	}
}

// MoveWidgetInput contains parameters for re-parenting a widget.
type MoveWidgetInput struct {
	Widget    *entity.DockWidget
	Target    *entity.DockArea      // Optional when Container is set
	Container *entity.DockContainer // Used when Target is nil
	Location  entity.DockLocation
	Ratio     float64
	// EqualSplit resizes every sibling to the same share after insertion.
	EqualSplit bool
}

// MoveWidget re-parents a widget as one remove-then-insert step. It returns
// the area now holding the widget.
func (uc *ManageLayoutUseCase) MoveWidget(ctx context.Context, input MoveWidgetInput) (*entity.DockArea, error) {
	log := logging.FromContext(ctx)
	w := input.Widget
	if w == nil || w.Area == nil {
		return nil, fmt.Errorf("%w: widget is not docked", entity.ErrWidgetNotFound)
	}

	container := input.Container
	if input.Target != nil {
		if input.Target.Container == nil || !input.Target.Container.ContainsArea(input.Target) {
			return nil, fmt.Errorf("%w: area %s is not part of a layout", entity.ErrInvalidTarget, input.Target.ID)
		}
		container = input.Target.Container
	}
	if container == nil {
		return nil, fmt.Errorf("%w: no target area or container", entity.ErrInvalidTarget)
	}
	if !input.Location.Valid() {
		return nil, fmt.Errorf("%w: invalid location %q", entity.ErrInvalidTarget, input.Location)
	}

	source := w.Area

	// Center against an empty container has nothing to tab into; the moved
	// widget's new area becomes the root instead.
	if input.Location == entity.DockCenter && (input.Target != nil || !container.IsEmpty()) {
		target := input.Target
		if target == nil {
			target = container.LastArea()
		}
		if target == nil {
			return nil, fmt.Errorf("%w: container %s has no area to tab into", entity.ErrInvalidTarget, container.ID)
		}
		if target == source {
			return source, ErrNothingToMove
		}
		if _, err := uc.RemoveWidget(ctx, w); err != nil {
			return nil, err
		}
		if err := uc.AddWidget(ctx, target, w, -1); err != nil {
			return nil, err
		}
		log.Info().
			Str("widget", w.Name).
			Str("from_area", source.ID).
			Str("to_area", target.ID).
			Msg("widget moved into area")
		return target, nil
	}

	if input.Target == source && source.Count() == 1 {
		return source, ErrNothingToMove
	}

	area := uc.NewArea()
	if _, err := uc.RemoveWidget(ctx, w); err != nil {
		return nil, err
	}
	if err := uc.AddWidget(ctx, area, w, -1); err != nil {
		return nil, err
	}
	if err := uc.InsertArea(ctx, InsertAreaInput{
		Container:  container,
		Target:     input.Target,
		Location:   input.Location,
		Area:       area,
		Ratio:      input.Ratio,
		EqualSplit: input.EqualSplit,
	}); err != nil {
		return nil, err
	}

	log.Info().
		Str("widget", w.Name).
		Str("from_area", source.ID).
		Str("to_area", area.ID).
		Str("location", string(input.Location)).
		Msg("widget moved into new area")
	return area, nil
}

// SetCurrentIndex selects the visible tab of area.
func (uc *ManageLayoutUseCase) SetCurrentIndex(area *entity.DockArea, index int) error {
	if area == nil {
		return fmt.Errorf("%w: area is required", entity.ErrInvalidTarget)
	}
	if index < 0 || index >= len(area.Widgets) {
		return fmt.Errorf("tab index %d out of range [0,%d)", index, len(area.Widgets))
	}
	area.CurrentIndex = index
	return nil
}

// MoveTab reorders a tab inside its area; the moved tab stays current.
func (uc *ManageLayoutUseCase) MoveTab(area *entity.DockArea, from, to int) error {
	if area == nil {
		return fmt.Errorf("%w: area is required", entity.ErrInvalidTarget)
	}
	n := len(area.Widgets)
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("tab move %d->%d out of range [0,%d)", from, to, n)
	}
	if from == to {
		return nil
	}
	w := area.Widgets[from]
	area.Widgets = append(area.Widgets[:from], area.Widgets[from+1:]...)
	area.Widgets = append(area.Widgets, nil)
	copy(area.Widgets[to+1:], area.Widgets[to:])
	area.Widgets[to] = w
	area.CurrentIndex = to
	return nil
}

// SetSplitSizes assigns relative sizes to a splitter. Each share is clamped to
// minShare, then the sizes are normalised and rounded.
func (uc *ManageLayoutUseCase) SetSplitSizes(ctx context.Context, node *entity.LayoutNode, sizes []float64, minShare float64) error {
	log := logging.FromContext(ctx)
	if node == nil || !node.IsSplitter() {
		return fmt.Errorf("%w: not a splitter", entity.ErrInvalidTarget)
	}
	if len(sizes) != len(node.Children) {
		return fmt.Errorf("got %d sizes for %d children", len(sizes), len(node.Children))
	}

	out := make([]float64, len(sizes))
	for i, s := range sizes {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return fmt.Errorf("invalid size %v", s)
		}
		out[i] = math.Max(s, 0)
	}
	normalizeSizes(out)
	for i := range out {
		out[i] = roundSplitRatio(math.Max(out[i], minShare))
	}
	normalizeSizes(out)

	log.Debug().
		Str("splitter", node.ID).
		Floats64("old_sizes", node.Sizes).
		Floats64("new_sizes", out).
		Msg("split sizes set")
	node.Sizes = out
	return nil
}

// ValidateTree checks the structural invariants of a container.
func (uc *ManageLayoutUseCase) ValidateTree(c *entity.DockContainer) error {
	if c == nil {
		return fmt.Errorf("container is nil")
	}
	if c.Root == nil {
		return nil
	}
	if c.Root.Parent != nil {
		return fmt.Errorf("root %s has a parent", c.Root.ID)
	}

	var err error
	c.Root.Walk(func(n *entity.LayoutNode) bool {
		switch {
		case n.IsLeaf():
			if len(n.Children) > 0 {
				err = fmt.Errorf("leaf %s has children", n.ID)
			} else if n.Area.Count() == 0 {
				err = fmt.Errorf("area %s is empty", n.Area.ID)
			} else if n.Area.Node != n {
				err = fmt.Errorf("area %s does not point at its leaf", n.Area.ID)
			} else if n.Area.Container != c {
				err = fmt.Errorf("area %s does not point at its container", n.Area.ID)
			}
		case len(n.Children) < 2:
			err = fmt.Errorf("splitter %s has %d children", n.ID, len(n.Children))
		case len(n.Sizes) != len(n.Children):
			err = fmt.Errorf("splitter %s has %d sizes for %d children", n.ID, len(n.Sizes), len(n.Children))
		default:
			for _, child := range n.Children {
				if child.Parent != n {
					err = fmt.Errorf("node %s has a stale parent", child.ID)
				}
			}
		}
		return err == nil
	})
	return err
}

func refreshWidgetStates(area *entity.DockArea) {
	state := entity.DockWidgetDocked
	if area.IsFloating() {
		state = entity.DockWidgetFloating
	}
	for _, w := range area.Widgets {
		w.State = state
	}
}

func insertChild(parent *entity.LayoutNode, idx int, child *entity.LayoutNode, size float64) {
	parent.Children = append(parent.Children, nil)
	copy(parent.Children[idx+1:], parent.Children[idx:])
	parent.Children[idx] = child

	parent.Sizes = append(parent.Sizes, 0)
	copy(parent.Sizes[idx+1:], parent.Sizes[idx:])
	parent.Sizes[idx] = size

	child.Parent = parent
}

// replaceNode puts repl where old is, keeping old's share in its parent.
func replaceNode(c *entity.DockContainer, old, repl *entity.LayoutNode) {
	parent := old.Parent
	if parent == nil {
		c.Root = repl
		repl.Parent = nil
		return
	}
	parent.Children[parent.IndexOf(old)] = repl
	repl.Parent = parent
	old.Parent = nil
}

// detachNode removes n (and its share) from its parent, or empties the container.
func detachNode(c *entity.DockContainer, n *entity.LayoutNode) {
	parent := n.Parent
	n.Parent = nil
	if parent == nil {
		if c.Root == n {
			c.Root = nil
		}
		return
	}
	idx := parent.IndexOf(n)
	if idx < 0 {
		return
	}
	parent.Children = append(parent.Children[:idx], parent.Children[idx+1:]...)
	if idx < len(parent.Sizes) {
		parent.Sizes = append(parent.Sizes[:idx], parent.Sizes[idx+1:]...)
	}
}

// flattenChild merges a same-orientation child splitter into parent.
func flattenChild(parent *entity.LayoutNode, idx int) {
	child := parent.Children[idx]
	share := parent.Sizes[idx]

	childSizes := append([]float64(nil), child.Sizes...)
	normalizeSizes(childSizes)

	children := make([]*entity.LayoutNode, 0, len(parent.Children)+len(child.Children)-1)
	sizes := make([]float64, 0, cap(children))
	children = append(children, parent.Children[:idx]...)
	sizes = append(sizes, parent.Sizes[:idx]...)
	for i, grandchild := range child.Children {
		grandchild.Parent = parent
		children = append(children, grandchild)
		sizes = append(sizes, share*childSizes[i])
	}
	children = append(children, parent.Children[idx+1:]...)
	sizes = append(sizes, parent.Sizes[idx+1:]...)

	parent.Children = children
	parent.Sizes = sizes
	child.Children = nil
	child.Sizes = nil
	child.Parent = nil
}

func normalizeSizes(sizes []float64) {
	if len(sizes) == 0 {
		return
	}
	total := 0.0
	for _, s := range sizes {
		total += s
	}
	if total <= 0 {
		for i := range sizes {
			sizes[i] = 1 / float64(len(sizes))
		}
		return
	}
	for i := range sizes {
		sizes[i] /= total
	}
}

func roundSplitRatio(ratio float64) float64 {
	// Keep snapshots stable and readable; avoids persisting noisy float values.
	return math.Round(ratio*splitRatioRoundFactor) / splitRatioRoundFactor
}

func clampFloat64(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
