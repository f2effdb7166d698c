package dock

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

// Snapshot captures the live layout as a codec-neutral state.
func (m *Manager) Snapshot() *entity.LayoutState {
	base := entity.DefaultDockWidgetFeatures()
	state := &entity.LayoutState{
		Version: entity.LayoutStateVersion,
		Widgets: make([]entity.WidgetState, 0, len(m.order)),
		Main:    entity.SnapshotContainer(m.main),
	}
	for _, w := range m.order {
		state.Widgets = append(state.Widgets, entity.WidgetState{
			Name:     w.Name,
			Closed:   w.Area == nil,
			AutoHide: w.AutoHide,
			Features: w.Features.Overrides(base),
		})
	}
	for _, f := range m.floating {
		state.Floating = append(state.Floating, entity.FloatingState{
			Title:     f.Title,
			Geometry:  f.Geometry,
			Container: entity.SnapshotContainer(f.Container),
		})
	}
	if active := m.ActiveDockWidget(); active != nil {
		state.ActiveWidget = active.Name
	}
	return state
}

// SaveState encodes the live layout with the configured codec.
func (m *Manager) SaveState() ([]byte, error) {
	blob, err := m.codec.Encode(m.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("encode layout state: %w", err)
	}
	return blob, nil
}

// Codec returns the layout codec in use.
func (m *Manager) Codec() port.LayoutCodec {
	return m.codec
}

// RestoreState replaces the live layout with the one encoded in blob.
//
// Decoding, validation and construction of the new trees happen before any
// live object is touched: on error the layout is exactly as before.
// Widgets named in the blob but not registered are skipped; registered
// widgets the blob does not mention end up closed.
func (m *Manager) RestoreState(ctx context.Context, blob []byte) error {
	state, err := m.codec.Decode(blob)
	if err != nil {
		if !errors.Is(err, entity.ErrMalformedState) {
			err = fmt.Errorf("%w: %w", entity.ErrMalformedState, err)
		}
		return err
	}
	if err := state.Validate(); err != nil {
		return err
	}
	return m.applyState(ctx, state)
}

// ApplyState is RestoreState for an already decoded state.
func (m *Manager) ApplyState(ctx context.Context, state *entity.LayoutState) error {
	if err := state.Validate(); err != nil {
		return err
	}
	return m.applyState(ctx, state)
}

func (m *Manager) applyState(ctx context.Context, state *entity.LayoutState) error {
	log := logging.FromContext(ctx)

	lookup := func(name string) *entity.DockWidget {
		return m.widgets[name]
	}

	mainTree := m.layout.BuildContainer(m.main.ID, m.main.Bounds, state.Main, lookup)
	if err := m.layout.ValidateTree(mainTree); err != nil {
		return fmt.Errorf("%w: %w", entity.ErrMalformedState, err)
	}
	var floating []*entity.FloatingContainer
	for _, fs := range state.Floating {
		geometry := fs.Geometry
		if geometry.Empty() {
			geometry = defaultFloatingGeometry
		}
		f := entity.NewFloatingContainer(m.newID(), m.newID(), geometry)
		f.Title = fs.Title
		built := m.layout.BuildContainer(f.Container.ID, geometry, fs.Container, lookup)
		if built.IsEmpty() {
			continue
		}
		if err := m.layout.ValidateTree(built); err != nil {
			return fmt.Errorf("%w: %w", entity.ErrMalformedState, err)
		}
		f.Container = built
		built.Floating = f
		floating = append(floating, f)
	}

	declared := make(map[string]entity.WidgetState, len(state.Widgets))
	for _, ws := range state.Widgets {
		declared[ws.Name] = ws
	}

	// Commit.
	oldFloating := m.floating
	for _, w := range m.order {
		w.Area = nil
	}
	m.main.Root = mainTree.Root
	for _, area := range m.main.Areas() {
		area.Container = m.main
	}
	m.floating = floating
	m.layout.CommitContainer(m.main)
	for _, f := range floating {
		m.layout.CommitContainer(f.Container)
	}

	base := entity.DefaultDockWidgetFeatures()
	for _, w := range m.order {
		ws, ok := declared[w.Name]
		if ok {
			w.Features = base.Apply(ws.Features)
		}
		if w.Area == nil {
			w.State = entity.DockWidgetHidden
			w.AutoHide = entity.NoDockLocation
			m.conceal(w)
			continue
		}
		w.AutoHide = entity.NoDockLocation
		if ok && ws.AutoHide.IsEdge() && m.autoHide.Enabled && !w.Features.Pinned {
			w.AutoHide = ws.AutoHide
		}
	}
	for _, area := range m.DockAreas() {
		if cw := area.CurrentWidget(); cw != nil && cw.IsAutoHide() {
			if next := nextVisibleTab(area, cw); next >= 0 {
				area.CurrentIndex = next
			}
		}
	}

	m.active = nil
	if w, ok := m.widgets[state.ActiveWidget]; ok && w.Area != nil {
		m.active = w
	}
	m.lastAdded = nil
	m.dirty = nil

	log.Info().
		Int("areas", len(m.DockAreas())).
		Int("floating", len(floating)).
		Int("widgets", len(m.order)).
		Msg("layout state restored")

	for _, f := range oldFloating {
		m.fireFloatingDestroyed(f)
	}
	for _, f := range floating {
		m.fireFloatingCreated(f)
	}
	m.invalidate(m.Containers()...)
	m.layoutChanged()
	return nil
}
