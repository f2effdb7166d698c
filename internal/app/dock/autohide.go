package dock

import (
	"context"
	"fmt"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

// SetAutoHide collapses w into the side strip of the given edge. The widget
// keeps its area membership; only its content is hidden.
func (m *Manager) SetAutoHide(ctx context.Context, w *entity.DockWidget, side entity.DockLocation) error {
	log := logging.FromContext(ctx)

	if !m.autoHide.Enabled {
		return fmt.Errorf("%w: auto-hide is disabled", entity.ErrFeatureDisabled)
	}
	if !m.isRegistered(w) || w.Area == nil {
		return fmt.Errorf("%w: %s is not docked", entity.ErrWidgetNotFound, widgetName(w))
	}
	if w.Features.Pinned {
		return fmt.Errorf("%w: %q is pinned", entity.ErrFeatureDisabled, w.Name)
	}
	if !side.IsEdge() {
		return fmt.Errorf("%w: auto-hide side must be an edge, got %q", entity.ErrInvalidTarget, side)
	}
	if w.AutoHide == side {
		return nil
	}

	w.AutoHide = side
	area := w.Area
	if area.CurrentWidget() == w {
		if next := nextVisibleTab(area, w); next >= 0 {
			area.CurrentIndex = next
		}
	}

	log.Info().
		Str("widget", w.Name).
		Str("side", string(side)).
		Msg("dock widget auto-hidden")

	m.invalidate(area.Container)
	m.layoutChanged()
	return nil
}

// RestoreFromAutoHide brings w back from its side strip as the current tab.
func (m *Manager) RestoreFromAutoHide(ctx context.Context, w *entity.DockWidget) error {
	if !m.isRegistered(w) {
		return errWidgetNotFound(w)
	}
	if !w.IsAutoHide() {
		return nil
	}
	w.AutoHide = entity.NoDockLocation
	if w.Area != nil {
		w.Area.CurrentIndex = w.Area.IndexOf(w)
		m.invalidate(w.Area.Container)
	}
	logging.FromContext(ctx).Info().Str("widget", w.Name).Msg("dock widget restored from auto-hide")
	m.layoutChanged()
	return nil
}

// IsAutoHide reports whether w sits in a side strip.
func (m *Manager) IsAutoHide(w *entity.DockWidget) bool {
	return w != nil && w.IsAutoHide()
}

// AutoHideWidgets returns the widgets collapsed into the strip of side, in
// registration order.
func (m *Manager) AutoHideWidgets(side entity.DockLocation) []*entity.DockWidget {
	var out []*entity.DockWidget
	for _, w := range m.order {
		if w.AutoHide == side && side != entity.NoDockLocation {
			out = append(out, w)
		}
	}
	return out
}

// nextVisibleTab returns the index of the first tab after w (wrapping) that
// is not auto-hidden, or -1.
func nextVisibleTab(area *entity.DockArea, w *entity.DockWidget) int {
	n := len(area.Widgets)
	start := area.IndexOf(w)
	for i := 1; i < n; i++ {
		idx := (start + i) % n
		if !area.Widgets[idx].IsAutoHide() {
			return idx
		}
	}
	return -1
}
