// Package dock is the docking engine facade: it owns the main container, the
// floating containers, the widget registry, both overlays and the drag system,
// and drives host content through the entity.Content contract.
//
// All methods must be called from the host's UI thread.
package dock

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/dockyard/internal/app/mainloop"
	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/infrastructure/layoutcodec"
	"github.com/bnema/dockyard/internal/logging"
)

const (
	mainContainerID = "main"

	defaultMainWidth  = 1280
	defaultMainHeight = 800

	minSplitShare = 0.05
)

// Options configures a Manager. Zero values fall back to defaults.
type Options struct {
	Config   entity.DockManagerConfig
	AutoHide entity.AutoHideConfig
	Drag     DragConfig

	// Bounds of the main container in screen pixels.
	Bounds entity.Rect

	Codec       port.LayoutCodec
	Style       port.StyleProvider
	Painter     port.OverlayPainter
	Dispatcher  port.Dispatcher
	IDGenerator usecase.IDGenerator
}

// DefaultOptions returns the options used by NewManager for zero fields.
func DefaultOptions() Options {
	return Options{
		Config:   entity.DefaultDockManagerConfig(),
		AutoHide: entity.DefaultAutoHideConfig(),
		Drag:     DefaultDragConfig(),
		Bounds:   entity.Rect{W: defaultMainWidth, H: defaultMainHeight},
	}
}

// Manager is the dock manager facade and registry.
type Manager struct {
	cfg      entity.DockManagerConfig
	autoHide entity.AutoHideConfig

	layout *usecase.ManageLayoutUseCase
	codec  port.LayoutCodec
	style  port.StyleProvider
	newID  usecase.IDGenerator

	relayout   *mainloop.Coalescer
	dirty      []*entity.DockContainer
	presented  map[*entity.DockWidget]presentation
	batchDepth int

	changedInBatch bool

	main      *entity.DockContainer
	floating  []*entity.FloatingContainer
	widgets   map[string]*entity.DockWidget
	order     []*entity.DockWidget
	active    *entity.DockWidget
	lastAdded *entity.DockArea

	areaOverlay      *Overlay
	containerOverlay *Overlay
	drag             *DragSystem

	events events
}

// NewManager creates a dock manager with an empty main container.
func NewManager(opts Options) *Manager {
	defaults := DefaultOptions()
	if opts.Config == (entity.DockManagerConfig{}) {
		opts.Config = defaults.Config
	}
	if opts.Config.DefaultSplitRatio <= 0 || opts.Config.DefaultSplitRatio >= 1 {
		opts.Config.DefaultSplitRatio = entity.DefaultSplitRatio
	}
	if opts.AutoHide == (entity.AutoHideConfig{}) {
		opts.AutoHide = defaults.AutoHide
	}
	if opts.Drag == (DragConfig{}) {
		opts.Drag = defaults.Drag
	}
	if opts.Bounds.Empty() {
		opts.Bounds = defaults.Bounds
	}
	if opts.Drag.Screen.Empty() {
		opts.Drag.Screen = opts.Bounds
	}
	if opts.Codec == nil {
		opts.Codec = layoutcodec.NewXMLCodec(opts.Config.XMLAutoFormatting)
	}
	if opts.Style == nil {
		opts.Style = NewDefaultStyleProvider()
	}
	if opts.Dispatcher == nil {
		opts.Dispatcher = mainloop.NewInlineDispatcher()
	}
	if opts.IDGenerator == nil {
		opts.IDGenerator = usecase.UUIDGenerator()
	}

	m := &Manager{
		cfg:       opts.Config,
		autoHide:  opts.AutoHide,
		layout:    usecase.NewManageLayoutUseCase(opts.IDGenerator),
		codec:     opts.Codec,
		style:     opts.Style,
		newID:     opts.IDGenerator,
		relayout:  mainloop.NewCoalescer(opts.Dispatcher),
		presented: make(map[*entity.DockWidget]presentation),
		main:      entity.NewDockContainer(mainContainerID, opts.Bounds),
		widgets:   make(map[string]*entity.DockWidget),
	}
	m.areaOverlay = NewOverlay(port.OverlayArea, opts.Style, opts.Painter)
	m.containerOverlay = NewOverlay(port.OverlayContainer, opts.Style, opts.Painter)
	m.drag = newDragSystem(m, opts.Drag)
	return m
}

// Close drops queued relayout work. The manager must not be used afterwards.
func (m *Manager) Close() {
	m.drag.Cancel(context.Background())
	m.relayout.Destroy()
}

// Config returns the manager configuration.
func (m *Manager) Config() entity.DockManagerConfig {
	return m.cfg
}

// SetConfig replaces the manager configuration.
func (m *Manager) SetConfig(cfg entity.DockManagerConfig) {
	if cfg.DefaultSplitRatio <= 0 || cfg.DefaultSplitRatio >= 1 {
		cfg.DefaultSplitRatio = entity.DefaultSplitRatio
	}
	m.cfg = cfg
}

// AutoHideConfig returns the auto-hide configuration.
func (m *Manager) AutoHideConfig() entity.AutoHideConfig {
	return m.autoHide
}

// SetAutoHideConfig replaces the auto-hide configuration.
func (m *Manager) SetAutoHideConfig(cfg entity.AutoHideConfig) {
	m.autoHide = cfg
}

// Style returns the style provider.
func (m *Manager) Style() port.StyleProvider {
	return m.style
}

// MainContainer returns the container embedded in the main window.
func (m *Manager) MainContainer() *entity.DockContainer {
	return m.main
}

// Bounds returns the main container bounds.
func (m *Manager) Bounds() entity.Rect {
	return m.main.Bounds
}

// SetBounds resizes the main container.
func (m *Manager) SetBounds(bounds entity.Rect) {
	m.main.Bounds = bounds
	m.invalidate(m.main)
}

// AreaOverlay returns the overlay drawn over single areas during drags.
func (m *Manager) AreaOverlay() *Overlay {
	return m.areaOverlay
}

// ContainerOverlay returns the overlay drawn over the main container in
// global docking mode.
func (m *Manager) ContainerOverlay() *Overlay {
	return m.containerOverlay
}

// Drag returns the drag system.
func (m *Manager) Drag() *DragSystem {
	return m.drag
}

// FindDockWidget returns the registered widget with the given name.
func (m *Manager) FindDockWidget(name string) (*entity.DockWidget, bool) {
	w, ok := m.widgets[name]
	return w, ok
}

// DockWidgets returns every registered widget in registration order.
func (m *Manager) DockWidgets() []*entity.DockWidget {
	return append([]*entity.DockWidget(nil), m.order...)
}

// DockAreas returns the areas of the main container followed by those of
// each floating container.
func (m *Manager) DockAreas() []*entity.DockArea {
	areas := m.main.Areas()
	for _, f := range m.floating {
		areas = append(areas, f.Container.Areas()...)
	}
	return areas
}

// FloatingContainers returns the floating containers in creation order.
func (m *Manager) FloatingContainers() []*entity.FloatingContainer {
	return append([]*entity.FloatingContainer(nil), m.floating...)
}

// Containers returns the main container followed by every floating one.
func (m *Manager) Containers() []*entity.DockContainer {
	out := []*entity.DockContainer{m.main}
	for _, f := range m.floating {
		out = append(out, f.Container)
	}
	return out
}

// AreaGeometry returns the computed rectangle of every area of c.
func (m *Manager) AreaGeometry(c *entity.DockContainer) []usecase.AreaGeometry {
	return usecase.ComputeGeometry(c)
}

// ContainerAt returns the top-most container under p, or nil. Floating
// windows stack above the main window in creation order.
func (m *Manager) ContainerAt(p entity.Point) *entity.DockContainer {
	return m.containerAt(p, nil)
}

func (m *Manager) containerAt(p entity.Point, exclude *entity.FloatingContainer) *entity.DockContainer {
	for i := len(m.floating) - 1; i >= 0; i-- {
		f := m.floating[i]
		if f == exclude {
			continue
		}
		if f.Geometry.Contains(p) {
			return f.Container
		}
	}
	if m.main.Bounds.Contains(p) {
		return m.main
	}
	return nil
}

// ownsArea reports whether area is alive in one of the manager's containers.
func (m *Manager) ownsArea(area *entity.DockArea) bool {
	if area == nil || area.Container == nil {
		return false
	}
	if !m.ownsContainer(area.Container) {
		return false
	}
	return area.Container.ContainsArea(area)
}

func (m *Manager) ownsContainer(c *entity.DockContainer) bool {
	if c == m.main {
		return true
	}
	for _, f := range m.floating {
		if f.Container == c {
			return true
		}
	}
	return false
}

func (m *Manager) isRegistered(w *entity.DockWidget) bool {
	if w == nil {
		return false
	}
	return m.widgets[w.Name] == w
}

func (m *Manager) register(ctx context.Context, w *entity.DockWidget) bool {
	if m.isRegistered(w) {
		return false
	}
	m.widgets[w.Name] = w
	m.order = append(m.order, w)
	logging.FromContext(ctx).Debug().Str("widget", w.Name).Msg("dock widget registered")
	return true
}

func (m *Manager) unregister(w *entity.DockWidget) {
	delete(m.widgets, w.Name)
	for i, candidate := range m.order {
		if candidate == w {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	if m.active == w {
		m.active = nil
	}
	delete(m.presented, w)
}

// checkAddable rejects nil widgets, name clashes and widgets that are
// already placed.
func (m *Manager) checkAddable(w *entity.DockWidget) error {
	if w == nil {
		return fmt.Errorf("dock widget is required")
	}
	if w.Name == "" {
		return fmt.Errorf("dock widget name is required")
	}
	if other, ok := m.widgets[w.Name]; ok && other != w {
		return fmt.Errorf("%w: %q", entity.ErrDuplicateWidget, w.Name)
	}
	if w.Area != nil {
		return fmt.Errorf("dock widget %q is already placed in area %s", w.Name, w.Area.ID)
	}
	return nil
}

func (m *Manager) insertPolicy() (ratio float64, equal bool) {
	return m.cfg.DefaultSplitRatio, m.cfg.EqualSplitOnInsertion
}

// defaultTabTarget is the area a Center insertion without target joins.
func (m *Manager) defaultTabTarget() *entity.DockArea {
	if m.lastAdded != nil && m.lastAdded.Container == m.main && m.ownsArea(m.lastAdded) {
		return m.lastAdded
	}
	return m.main.LastArea()
}

// AddDockWidget places a widget into the layout.
//
// With a target area, Center adds a tab and an edge splits around the target.
// Without one, edges create a new area at the outer edge of the main
// container and Center tabs into the last added area (or becomes the first
// area of an empty container).
func (m *Manager) AddDockWidget(ctx context.Context, location entity.DockLocation, w *entity.DockWidget, target *entity.DockArea) (*entity.DockArea, error) {
	log := logging.FromContext(ctx)

	if err := m.checkAddable(w); err != nil {
		return nil, err
	}
	if !location.Valid() {
		return nil, fmt.Errorf("%w: invalid location %q", entity.ErrInvalidTarget, location)
	}
	if target != nil && !m.ownsArea(target) {
		return nil, fmt.Errorf("%w: area %s is not part of this manager", entity.ErrInvalidTarget, target.ID)
	}

	var area *entity.DockArea
	if location == entity.DockCenter {
		dest := target
		if dest == nil {
			dest = m.defaultTabTarget()
		}
		if dest != nil {
			if err := m.layout.AddWidget(ctx, dest, w, -1); err != nil {
				return nil, err
			}
			area = dest
		}
	}

	if area == nil {
		container := m.main
		if target != nil {
			container = target.Container
		}
		area = m.layout.NewArea()
		if err := m.layout.AddWidget(ctx, area, w, -1); err != nil {
			return nil, err
		}
		ratio, equal := m.insertPolicy()
		loc := location
		if loc == entity.DockCenter {
			loc = entity.DockRight
		}
		if err := m.layout.InsertArea(ctx, usecase.InsertAreaInput{
			Container:  container,
			Target:     target,
			Location:   loc,
			Area:       area,
			Ratio:      ratio,
			EqualSplit: equal,
		}); err != nil {
			detachFromArea(area, w)
			return nil, err
		}
	}

	added := m.register(ctx, w)
	m.lastAdded = area
	m.invalidate(area.Container)

	log.Info().
		Str("widget", w.Name).
		Str("location", string(location)).
		Str("area", area.ID).
		Int("tabs", area.Count()).
		Msg("dock widget added")

	if added {
		m.fireAdded(w)
	}
	m.layoutChanged()
	return area, nil
}

// detachFromArea undoes an AddWidget on an area that never got inserted.
func detachFromArea(area *entity.DockArea, w *entity.DockWidget) {
	if idx := area.IndexOf(w); idx >= 0 {
		area.Widgets = append(area.Widgets[:idx], area.Widgets[idx+1:]...)
	}
	area.CurrentIndex = len(area.Widgets) - 1
	w.Area = nil
	w.State = entity.DockWidgetHidden
}

// AddDockWidgetTab adds w as a new tab of target (or of the default area).
func (m *Manager) AddDockWidgetTab(ctx context.Context, w *entity.DockWidget, target *entity.DockArea) (*entity.DockArea, error) {
	return m.AddDockWidget(ctx, entity.DockCenter, w, target)
}

// InsertDockWidget adds w as a tab of area at index.
func (m *Manager) InsertDockWidget(ctx context.Context, w *entity.DockWidget, area *entity.DockArea, index int) error {
	if err := m.checkAddable(w); err != nil {
		return err
	}
	if !m.ownsArea(area) {
		return fmt.Errorf("%w: area is not part of this manager", entity.ErrInvalidTarget)
	}
	if err := m.layout.AddWidget(ctx, area, w, index); err != nil {
		return err
	}
	added := m.register(ctx, w)
	m.lastAdded = area
	m.invalidate(area.Container)
	if added {
		m.fireAdded(w)
	}
	m.layoutChanged()
	return nil
}

// RemoveDockWidget detaches and unregisters w. Emptied areas, splitters and
// floating containers are collapsed.
func (m *Manager) RemoveDockWidget(ctx context.Context, w *entity.DockWidget) error {
	log := logging.FromContext(ctx)

	if !m.isRegistered(w) {
		return errWidgetNotFound(w)
	}

	var source *entity.DockContainer
	if w.Area != nil {
		source = w.Area.Container
		if _, err := m.layout.RemoveWidget(ctx, w); err != nil {
			return err
		}
	}
	m.conceal(w)
	w.State = entity.DockWidgetHidden
	w.AutoHide = entity.NoDockLocation
	w.LastArea = nil
	m.unregister(w)
	m.pruneFloating(ctx)
	m.invalidate(source)

	log.Info().Str("widget", w.Name).Msg("dock widget removed")

	m.fireRemoved(w)
	m.layoutChanged()
	return nil
}

// MoveDockWidget re-parents a docked widget in one step. A nil target means
// the outer edge of the main container.
func (m *Manager) MoveDockWidget(ctx context.Context, w *entity.DockWidget, location entity.DockLocation, target *entity.DockArea) (*entity.DockArea, error) {
	log := logging.FromContext(ctx)

	if !m.isRegistered(w) || w.Area == nil {
		return nil, fmt.Errorf("%w: %v is not docked", entity.ErrWidgetNotFound, widgetName(w))
	}
	if !w.Features.CanMove() {
		return nil, fmt.Errorf("%w: %q cannot move", entity.ErrFeatureDisabled, w.Name)
	}
	if target != nil && !m.ownsArea(target) {
		return nil, fmt.Errorf("%w: area %s is not part of this manager", entity.ErrInvalidTarget, target.ID)
	}

	source := w.Area.Container
	ratio, equal := m.insertPolicy()
	area, err := m.layout.MoveWidget(ctx, usecase.MoveWidgetInput{
		Widget:     w,
		Target:     target,
		Container:  m.main,
		Location:   location,
		Ratio:      ratio,
		EqualSplit: equal,
	})
	if errors.Is(err, usecase.ErrNothingToMove) {
		log.Debug().Str("widget", w.Name).Msg("move is a no-op")
		return area, nil
	}
	if err != nil {
		return nil, err
	}

	m.pruneFloating(ctx)
	m.invalidate(source, area.Container)
	m.layoutChanged()
	return area, nil
}

// SetCurrentTab selects the visible tab of area.
func (m *Manager) SetCurrentTab(area *entity.DockArea, index int) error {
	if !m.ownsArea(area) {
		return fmt.Errorf("%w: area is not part of this manager", entity.ErrInvalidTarget)
	}
	if err := m.layout.SetCurrentIndex(area, index); err != nil {
		return err
	}
	m.invalidate(area.Container)
	return nil
}

// MoveTab reorders a tab inside its area.
func (m *Manager) MoveTab(area *entity.DockArea, from, to int) error {
	if !m.ownsArea(area) {
		return fmt.Errorf("%w: area is not part of this manager", entity.ErrInvalidTarget)
	}
	if err := m.layout.MoveTab(area, from, to); err != nil {
		return err
	}
	m.invalidate(area.Container)
	m.layoutChanged()
	return nil
}

// SetSplitSizes assigns relative sizes to a splitter of one of the managed
// containers. Shares below 5% are raised to 5%.
func (m *Manager) SetSplitSizes(ctx context.Context, node *entity.LayoutNode, sizes []float64) error {
	var owner *entity.DockContainer
	for _, c := range m.Containers() {
		if c.Root == nil {
			continue
		}
		c.Root.Walk(func(n *entity.LayoutNode) bool {
			if n == node {
				owner = c
			}
			return owner == nil
		})
	}
	if owner == nil {
		return fmt.Errorf("%w: splitter is not part of this manager", entity.ErrInvalidTarget)
	}
	if err := m.layout.SetSplitSizes(ctx, node, sizes, minSplitShare); err != nil {
		return err
	}
	m.invalidate(owner)
	m.layoutChanged()
	return nil
}

// SetActiveDockWidget focuses w and makes it the current tab of its area.
func (m *Manager) SetActiveDockWidget(ctx context.Context, w *entity.DockWidget) error {
	if !m.isRegistered(w) || w.Area == nil {
		return fmt.Errorf("%w: %v is not docked", entity.ErrWidgetNotFound, widgetName(w))
	}
	if !w.Features.Focusable {
		return fmt.Errorf("%w: %q is not focusable", entity.ErrFeatureDisabled, w.Name)
	}
	if err := m.layout.SetCurrentIndex(w.Area, w.Area.IndexOf(w)); err != nil {
		return err
	}
	m.active = w
	m.invalidate(w.Area.Container)
	logging.FromContext(ctx).Debug().Str("widget", w.Name).Msg("dock widget activated")
	return nil
}

// ActiveDockWidget returns the focused widget, or nil.
func (m *Manager) ActiveDockWidget() *entity.DockWidget {
	if m.active != nil && (m.active.Area == nil || !m.isRegistered(m.active)) {
		m.active = nil
	}
	return m.active
}

func widgetName(w *entity.DockWidget) string {
	if w == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%q", w.Name)
}
