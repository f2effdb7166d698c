package dock

import (
	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
)

const relayoutKey = "relayout"

// presentation is the last state pushed to a content handle.
type presentation struct {
	host    string
	visible bool
	bounds  entity.Rect
}

// BeginBatchOperation suspends relayout and layout-changed notifications
// until the matching EndBatchOperation. Batches nest.
func (m *Manager) BeginBatchOperation() {
	m.batchDepth++
}

// EndBatchOperation closes a batch. The outermost End relayouts every
// container touched during the batch once and fires OnLayoutChanged once.
func (m *Manager) EndBatchOperation() {
	if m.batchDepth == 0 {
		return
	}
	m.batchDepth--
	if m.batchDepth > 0 {
		return
	}
	if len(m.dirty) > 0 {
		m.scheduleRelayout()
	}
	if m.changedInBatch {
		m.changedInBatch = false
		m.layoutChanged()
	}
}

// InBatch reports whether a batch operation is open.
func (m *Manager) InBatch() bool {
	return m.batchDepth > 0
}

// invalidate marks containers for relayout. Outside a batch the relayout is
// posted right away (coalesced per manager).
func (m *Manager) invalidate(containers ...*entity.DockContainer) {
	for _, c := range containers {
		if c == nil || m.isDirty(c) {
			continue
		}
		m.dirty = append(m.dirty, c)
	}
	if m.batchDepth > 0 || len(m.dirty) == 0 {
		return
	}
	m.scheduleRelayout()
}

func (m *Manager) isDirty(c *entity.DockContainer) bool {
	for _, d := range m.dirty {
		if d == c {
			return true
		}
	}
	return false
}

func (m *Manager) scheduleRelayout() {
	m.relayout.Post(relayoutKey, m.flushRelayout)
}

// RelayoutPending reports whether a relayout is queued on the dispatcher.
func (m *Manager) RelayoutPending() bool {
	return m.relayout.Pending(relayoutKey)
}

// flushRelayout computes geometry for every dirty container still owned by
// the manager and pushes it to the content handles.
func (m *Manager) flushRelayout() {
	dirty := m.dirty
	m.dirty = nil
	for _, c := range dirty {
		if !m.ownsContainer(c) {
			continue
		}
		m.presentContainer(c)
	}
}

func (m *Manager) presentContainer(c *entity.DockContainer) {
	for _, g := range usecase.ComputeGeometry(c) {
		current := g.Area.CurrentWidget()
		for _, w := range g.Area.Widgets {
			show := w == current && !w.IsAutoHide()
			m.present(w, c.ID, show, g.Rect)
		}
	}
}

// present drives one content handle, skipping calls that would not change
// anything.
func (m *Manager) present(w *entity.DockWidget, host string, visible bool, bounds entity.Rect) {
	content := w.Widget()
	if content == nil {
		return
	}
	prev, known := m.presented[w]
	if !known || prev.host != host {
		content.Reparent(host)
	}
	if visible {
		if !known || !prev.visible || prev.bounds != bounds {
			content.SetBounds(bounds)
		}
		if !known || !prev.visible {
			content.Show()
		}
	} else if !known || prev.visible {
		content.Hide()
	}
	m.presented[w] = presentation{host: host, visible: visible, bounds: bounds}
}

// conceal hides the content of a widget leaving the layout.
func (m *Manager) conceal(w *entity.DockWidget) {
	content := w.Widget()
	if content == nil {
		return
	}
	prev, known := m.presented[w]
	if !known || prev.visible {
		content.Hide()
	}
	prev.visible = false
	m.presented[w] = prev
}
