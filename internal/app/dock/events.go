package dock

import "github.com/bnema/dockyard/internal/domain/entity"

// WidgetCallback receives dock widget lifecycle notifications.
type WidgetCallback func(w *entity.DockWidget)

// FloatingCallback receives floating container lifecycle notifications.
type FloatingCallback func(f *entity.FloatingContainer)

// LayoutCallback is notified after any structural layout change.
type LayoutCallback func()

// registry keeps subscribers of one event kind in registration order.
type registry[T any] struct {
	nextID int
	subs   []subscriber[T]
}

type subscriber[T any] struct {
	id int
	fn T
}

func (r *registry[T]) add(fn T) func() {
	r.nextID++
	id := r.nextID
	r.subs = append(r.subs, subscriber[T]{id: id, fn: fn})
	return func() {
		for i, s := range r.subs {
			if s.id == id {
				r.subs = append(r.subs[:i], r.subs[i+1:]...)
				return
			}
		}
	}
}

// snapshot returns the current subscribers so a callback unsubscribing
// during dispatch does not disturb the iteration.
func (r *registry[T]) snapshot() []T {
	out := make([]T, len(r.subs))
	for i, s := range r.subs {
		out[i] = s.fn
	}
	return out
}

type events struct {
	added             registry[WidgetCallback]
	removed           registry[WidgetCallback]
	aboutToClose      registry[WidgetCallback]
	floatingCreated   registry[FloatingCallback]
	floatingDestroyed registry[FloatingCallback]
	layoutChanged     registry[LayoutCallback]
}

// OnDockWidgetAdded registers fn for newly registered widgets.
// The returned function unsubscribes.
func (m *Manager) OnDockWidgetAdded(fn WidgetCallback) func() {
	return m.events.added.add(fn)
}

// OnDockWidgetRemoved registers fn for unregistered widgets.
func (m *Manager) OnDockWidgetRemoved(fn WidgetCallback) func() {
	return m.events.removed.add(fn)
}

// OnDockWidgetAboutToClose registers fn, called before a widget closes.
func (m *Manager) OnDockWidgetAboutToClose(fn WidgetCallback) func() {
	return m.events.aboutToClose.add(fn)
}

// OnFloatingContainerCreated registers fn for new floating windows.
func (m *Manager) OnFloatingContainerCreated(fn FloatingCallback) func() {
	return m.events.floatingCreated.add(fn)
}

// OnFloatingContainerDestroyed registers fn for destroyed floating windows.
func (m *Manager) OnFloatingContainerDestroyed(fn FloatingCallback) func() {
	return m.events.floatingDestroyed.add(fn)
}

// OnLayoutChanged registers fn, called once per completed mutation (once per
// outermost batch).
func (m *Manager) OnLayoutChanged(fn LayoutCallback) func() {
	return m.events.layoutChanged.add(fn)
}

func (m *Manager) fireAdded(w *entity.DockWidget) {
	for _, fn := range m.events.added.snapshot() {
		fn(w)
	}
}

func (m *Manager) fireRemoved(w *entity.DockWidget) {
	for _, fn := range m.events.removed.snapshot() {
		fn(w)
	}
}

func (m *Manager) fireAboutToClose(w *entity.DockWidget) {
	for _, fn := range m.events.aboutToClose.snapshot() {
		fn(w)
	}
}

func (m *Manager) fireFloatingCreated(f *entity.FloatingContainer) {
	for _, fn := range m.events.floatingCreated.snapshot() {
		fn(f)
	}
}

func (m *Manager) fireFloatingDestroyed(f *entity.FloatingContainer) {
	for _, fn := range m.events.floatingDestroyed.snapshot() {
		fn(f)
	}
}

// layoutChanged fires OnLayoutChanged now, or at the end of the outermost batch.
func (m *Manager) layoutChanged() {
	if m.batchDepth > 0 {
		m.changedInBatch = true
		return
	}
	for _, fn := range m.events.layoutChanged.snapshot() {
		fn()
	}
}
