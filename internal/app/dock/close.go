package dock

import (
	"context"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

// CloseDockWidget closes w as a user close button would. It returns false
// when the widget is already closed, is not closable, or its close handler
// vetoed the close.
//
// With CustomCloseHandling the handler is asked first; a nil handler accepts.
// An accepted close fires AboutToClose, the widget leaves its area and is
// either hidden (remembered as closed) or, with DeleteOnClose, unregistered.
func (m *Manager) CloseDockWidget(ctx context.Context, w *entity.DockWidget) bool {
	if !m.isRegistered(w) {
		logging.FromContext(ctx).Debug().Str("widget", widgetName(w)).Msg("close ignored for unknown widget")
		return false
	}
	log := logging.FromContext(logging.WithWidget(ctx, w.Name))

	if w.Area == nil {
		log.Debug().Msg("close ignored: already closed")
		return false
	}
	if !w.Features.Closable {
		log.Debug().Msg("close rejected: not closable")
		return false
	}
	if !handlerAccepts(w) {
		log.Debug().Msg("close vetoed by handler")
		return false
	}

	m.closeWidget(ctx, w)
	m.layoutChanged()
	return true
}

// handlerAccepts asks the custom close handler of w, if any.
func handlerAccepts(w *entity.DockWidget) bool {
	if !w.Features.CustomCloseHandling {
		return true
	}
	h := w.CloseHandler()
	return h == nil || h(w)
}

// closeWidget performs the close without feature checks.
func (m *Manager) closeWidget(ctx context.Context, w *entity.DockWidget) {
	log := logging.FromContext(logging.WithWidget(ctx, w.Name))

	m.fireAboutToClose(w)

	var source *entity.DockContainer
	if w.Area != nil {
		source = w.Area.Container
		if _, err := m.layout.RemoveWidget(ctx, w); err != nil {
			log.Warn().Err(err).Msg("failed to detach closing widget")
		}
	}
	m.conceal(w)
	w.State = entity.DockWidgetHidden
	w.AutoHide = entity.NoDockLocation
	if m.active == w {
		m.active = nil
	}

	if w.Features.DeleteOnClose {
		if w.Features.DeleteContentOnClose {
			if content := w.TakeWidget(); content != nil {
				content.Release()
			}
		}
		w.LastArea = nil
		m.unregister(w)
		m.fireRemoved(w)
		log.Info().Msg("dock widget closed and deleted")
	} else {
		log.Info().Msg("dock widget closed")
	}

	m.pruneFloating(ctx)
	m.invalidate(source)
}

// CloseDockArea closes every tab of area. Tabs that are not closable stay,
// unless one of the tabs has ForceCloseWithArea. It returns true when the
// area is gone afterwards.
func (m *Manager) CloseDockArea(ctx context.Context, area *entity.DockArea) bool {
	log := logging.FromContext(ctx)
	if !m.ownsArea(area) {
		return false
	}

	force := false
	for _, w := range area.Widgets {
		if w.Features.ForceCloseWithArea {
			force = true
			break
		}
	}

	m.BeginBatchOperation()
	defer m.EndBatchOperation()

	widgets := append([]*entity.DockWidget(nil), area.Widgets...)
	for _, w := range widgets {
		switch {
		case force:
			m.closeWidget(ctx, w)
		case !w.Features.Closable:
			continue
		case !handlerAccepts(w):
			continue
		default:
			m.closeWidget(ctx, w)
		}
	}
	m.layoutChanged()

	closed := area.Node == nil
	log.Info().
		Str("area", area.ID).
		Bool("forced", force).
		Bool("closed", closed).
		Msg("dock area close requested")
	return closed
}

// ShowDockWidget re-docks a closed widget into the area it was closed from
// when that area is still alive, otherwise into a new area at the right
// edge of the main container.
func (m *Manager) ShowDockWidget(ctx context.Context, w *entity.DockWidget) (*entity.DockArea, error) {
	if !m.isRegistered(w) {
		return nil, errWidgetNotFound(w)
	}
	if w.Area != nil {
		return w.Area, nil
	}
	target := w.LastArea
	if target != nil && m.ownsArea(target) {
		return m.AddDockWidget(ctx, entity.DockCenter, w, target)
	}
	return m.AddDockWidget(ctx, entity.DockRight, w, nil)
}

// ToggleView shows a closed widget or closes an open one.
func (m *Manager) ToggleView(ctx context.Context, w *entity.DockWidget, open bool) error {
	if !m.isRegistered(w) {
		return errWidgetNotFound(w)
	}
	if open {
		_, err := m.ShowDockWidget(ctx, w)
		return err
	}
	if w.Area != nil {
		m.CloseDockWidget(ctx, w)
	}
	return nil
}
