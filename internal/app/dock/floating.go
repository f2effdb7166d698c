package dock

import (
	"context"
	"fmt"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

const floatingOffset = 20

var defaultFloatingGeometry = entity.Rect{X: 100, Y: 100, W: 400, H: 300}

// newFloating creates and registers an empty floating container.
func (m *Manager) newFloating(geometry entity.Rect, title string) *entity.FloatingContainer {
	f := entity.NewFloatingContainer(m.newID(), m.newID(), geometry)
	f.Title = title
	m.floating = append(m.floating, f)
	return f
}

// floatingGeometryFor places a torn-out area next to where it was.
func (m *Manager) floatingGeometryFor(area *entity.DockArea) entity.Rect {
	if area != nil && area.Container != nil {
		if r, ok := usecase.GeometryOf(usecase.ComputeGeometry(area.Container), area); ok && !r.Empty() {
			return r.Translate(floatingOffset, floatingOffset)
		}
	}
	return defaultFloatingGeometry
}

// AddDockWidgetFloating registers w directly in a new floating container.
func (m *Manager) AddDockWidgetFloating(ctx context.Context, w *entity.DockWidget, geometry entity.Rect) (*entity.FloatingContainer, error) {
	if err := m.checkAddable(w); err != nil {
		return nil, err
	}
	if geometry.Empty() {
		geometry = defaultFloatingGeometry
	}

	f := m.newFloating(geometry, w.Title)
	area := m.layout.NewArea()
	if err := m.layout.AddWidget(ctx, area, w, -1); err != nil {
		m.dropFloating(f)
		return nil, err
	}
	if err := m.layout.InsertArea(ctx, usecase.InsertAreaInput{Container: f.Container, Location: entity.DockCenter, Area: area}); err != nil {
		detachFromArea(area, w)
		m.dropFloating(f)
		return nil, err
	}

	added := m.register(ctx, w)
	m.invalidate(f.Container)
	logging.FromContext(ctx).Info().
		Str("widget", w.Name).
		Str("floating", f.ID).
		Msg("dock widget added floating")

	m.fireFloatingCreated(f)
	if added {
		m.fireAdded(w)
	}
	m.layoutChanged()
	return f, nil
}

// FloatDockWidget tears w out into a new floating container. An empty
// geometry places the window next to the widget's area.
func (m *Manager) FloatDockWidget(ctx context.Context, w *entity.DockWidget, geometry entity.Rect) (*entity.FloatingContainer, error) {
	log := logging.FromContext(ctx)

	if !m.isRegistered(w) || w.Area == nil {
		return nil, fmt.Errorf("%w: %s is not docked", entity.ErrWidgetNotFound, widgetName(w))
	}
	if !w.Features.CanFloat() {
		return nil, fmt.Errorf("%w: %q cannot float", entity.ErrFeatureDisabled, w.Name)
	}
	if geometry.Empty() {
		geometry = m.floatingGeometryFor(w.Area)
	}

	source := w.Area.Container
	if _, err := m.layout.RemoveWidget(ctx, w); err != nil {
		return nil, err
	}

	f := m.newFloating(geometry, w.Title)
	area := m.layout.NewArea()
	if err := m.layout.AddWidget(ctx, area, w, -1); err != nil {
		return nil, err
	}
	if err := m.layout.InsertArea(ctx, usecase.InsertAreaInput{Container: f.Container, Location: entity.DockCenter, Area: area}); err != nil {
		return nil, err
	}

	log.Info().
		Str("widget", w.Name).
		Str("floating", f.ID).
		Int("x", geometry.X).
		Int("y", geometry.Y).
		Msg("dock widget floated")

	m.fireFloatingCreated(f)
	m.pruneFloating(ctx)
	m.invalidate(source, f.Container)
	m.layoutChanged()
	return f, nil
}

// FloatDockArea tears a whole area out. Every tab must be floatable.
func (m *Manager) FloatDockArea(ctx context.Context, area *entity.DockArea, geometry entity.Rect) (*entity.FloatingContainer, error) {
	log := logging.FromContext(ctx)

	if !m.ownsArea(area) {
		return nil, fmt.Errorf("%w: area is not part of this manager", entity.ErrInvalidTarget)
	}
	for _, w := range area.Widgets {
		if !w.Features.CanFloat() {
			return nil, fmt.Errorf("%w: %q cannot float", entity.ErrFeatureDisabled, w.Name)
		}
	}
	if area.IsFloating() && area.Container.AreaCount() == 1 {
		return area.Container.Floating, nil
	}
	if geometry.Empty() {
		geometry = m.floatingGeometryFor(area)
	}

	source := area.Container
	if err := m.layout.RemoveArea(ctx, area); err != nil {
		return nil, err
	}

	title := ""
	if cw := area.CurrentWidget(); cw != nil {
		title = cw.Title
	}
	f := m.newFloating(geometry, title)
	if err := m.layout.InsertArea(ctx, usecase.InsertAreaInput{Container: f.Container, Location: entity.DockCenter, Area: area}); err != nil {
		return nil, err
	}

	log.Info().
		Str("area", area.ID).
		Str("floating", f.ID).
		Int("tabs", area.Count()).
		Msg("dock area floated")

	m.fireFloatingCreated(f)
	m.pruneFloating(ctx)
	m.invalidate(source, f.Container)
	m.layoutChanged()
	return f, nil
}

// DockFloatingContainer merges the whole tree of f back into the main
// container. A nil target docks at the outer edge of the main container;
// Center with a target tabs every widget of f into it.
func (m *Manager) DockFloatingContainer(ctx context.Context, f *entity.FloatingContainer, target *entity.DockArea, location entity.DockLocation) error {
	log := logging.FromContext(ctx)

	if !m.isFloating(f) {
		return fmt.Errorf("%w: floating container is not part of this manager", entity.ErrInvalidTarget)
	}
	if !location.Valid() {
		return fmt.Errorf("%w: invalid location %q", entity.ErrInvalidTarget, location)
	}
	if target != nil {
		if !m.ownsArea(target) {
			return fmt.Errorf("%w: area is not part of this manager", entity.ErrInvalidTarget)
		}
		if target.Container == f.Container {
			return fmt.Errorf("%w: cannot dock a floating container into itself", entity.ErrInvalidTarget)
		}
	}

	dest := m.main
	if target != nil {
		dest = target.Container
	}

	if location == entity.DockCenter && (target != nil || !dest.IsEmpty()) {
		if target == nil {
			target = dest.LastArea()
		}
		for _, w := range f.DockWidgets() {
			if _, err := m.layout.MoveWidget(ctx, usecase.MoveWidgetInput{
				Widget:   w,
				Target:   target,
				Location: entity.DockCenter,
			}); err != nil {
				return err
			}
		}
	} else {
		loc := location
		if loc == entity.DockCenter {
			loc = entity.DockRight
		}
		root := m.layout.DetachRoot(f.Container)
		ratio, equal := m.insertPolicy()
		if err := m.layout.InsertNode(ctx, usecase.InsertNodeInput{
			Container:  dest,
			Target:     target,
			Location:   loc,
			Node:       root,
			Ratio:      ratio,
			EqualSplit: equal,
		}); err != nil {
			f.Container.Root = root
			return err
		}
	}

	log.Info().
		Str("floating", f.ID).
		Str("container", dest.ID).
		Str("location", string(location)).
		Msg("floating container docked")

	m.pruneFloating(ctx)
	m.invalidate(dest)
	m.layoutChanged()
	return nil
}

// MoveFloatingContainer repositions a floating window.
func (m *Manager) MoveFloatingContainer(ctx context.Context, f *entity.FloatingContainer, p entity.Point) error {
	if !m.isFloating(f) {
		return fmt.Errorf("%w: floating container is not part of this manager", entity.ErrInvalidTarget)
	}
	f.MoveTo(p)
	logging.FromContext(ctx).Debug().
		Str("floating", f.ID).
		Int("x", p.X).
		Int("y", p.Y).
		Msg("floating container moved")
	m.invalidate(f.Container)
	return nil
}

// ResizeFloatingContainer changes the window geometry of f.
func (m *Manager) ResizeFloatingContainer(f *entity.FloatingContainer, geometry entity.Rect) error {
	if !m.isFloating(f) {
		return fmt.Errorf("%w: floating container is not part of this manager", entity.ErrInvalidTarget)
	}
	if geometry.Empty() {
		return fmt.Errorf("%w: empty geometry", entity.ErrInvalidTarget)
	}
	f.Geometry = geometry
	f.Container.Bounds = geometry
	m.invalidate(f.Container)
	return nil
}

func (m *Manager) isFloating(f *entity.FloatingContainer) bool {
	if f == nil {
		return false
	}
	for _, candidate := range m.floating {
		if candidate == f {
			return true
		}
	}
	return false
}

// pruneFloating destroys floating containers whose last widget left.
func (m *Manager) pruneFloating(ctx context.Context) {
	kept := m.floating[:0]
	var destroyed []*entity.FloatingContainer
	for _, f := range m.floating {
		if f.IsEmpty() {
			destroyed = append(destroyed, f)
			continue
		}
		kept = append(kept, f)
	}
	for i := len(kept); i < len(m.floating); i++ {
		m.floating[i] = nil
	}
	m.floating = kept

	for _, f := range destroyed {
		logging.FromContext(ctx).Debug().Str("floating", f.ID).Msg("floating container destroyed")
		m.fireFloatingDestroyed(f)
	}
}

// dropFloating removes f without firing any event.
func (m *Manager) dropFloating(f *entity.FloatingContainer) {
	for i, candidate := range m.floating {
		if candidate == f {
			m.floating = append(m.floating[:i], m.floating[i+1:]...)
			return
		}
	}
}
