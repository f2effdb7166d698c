package dock_test

import (
	"testing"

	"github.com/bnema/dockyard/internal/app/dock"
	"github.com/bnema/dockyard/internal/app/mainloop"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_AddDockWidget_FirstCenterBecomesRoot(t *testing.T) {
	m := newTestManager(t)

	w1, area := addWidget(t, m, entity.DockCenter, "W1", nil)

	require.NotNil(t, m.MainContainer().Root)
	assert.True(t, m.MainContainer().Root.IsLeaf())
	assert.Same(t, area, w1.Area)
	assert.Equal(t, entity.DockWidgetDocked, w1.State)
	assert.Equal(t, testBounds, geometryOf(t, m, area))
}

func TestManager_AddDockWidget_CenterWithoutTargetTabsIntoLastAdded(t *testing.T) {
	m := newTestManager(t)
	_, left := addWidget(t, m, entity.DockLeft, "W1", nil)
	_, right := addWidget(t, m, entity.DockRight, "W2", nil)

	w3, area := addWidget(t, m, entity.DockCenter, "W3", nil)

	assert.Same(t, right, area)
	assert.Equal(t, [][]string{{"W1"}, {"W2", "W3"}}, areaNames(m.DockAreas()))
	assert.True(t, w3.IsCurrentTab())
	assert.NotSame(t, left, area)
}

func TestManager_AddDockWidget_EdgeWithoutTargetSplitsOuterEdge(t *testing.T) {
	m := newTestManager(t)
	_, a1 := addWidget(t, m, entity.DockCenter, "W1", nil)

	_, a2 := addWidget(t, m, entity.DockLeft, "W2", nil)

	root := m.MainContainer().Root
	require.True(t, root.IsSplitter())
	assert.Equal(t, entity.OrientationHorizontal, root.Orientation)
	assert.Equal(t, entity.Rect{X: 0, Y: 0, W: 500, H: 600}, geometryOf(t, m, a2))
	assert.Equal(t, entity.Rect{X: 500, Y: 0, W: 500, H: 600}, geometryOf(t, m, a1))
}

func TestManager_AddDockWidget_EdgeWithTargetSplitsTarget(t *testing.T) {
	m := newTestManager(t)
	_, a1 := addWidget(t, m, entity.DockCenter, "W1", nil)
	_, a2 := addWidget(t, m, entity.DockRight, "W2", nil)

	_, a3 := addWidget(t, m, entity.DockBottom, "W3", a2)

	assert.Equal(t, entity.Rect{X: 0, Y: 0, W: 500, H: 600}, geometryOf(t, m, a1))
	assert.Equal(t, entity.Rect{X: 500, Y: 0, W: 500, H: 300}, geometryOf(t, m, a2))
	assert.Equal(t, entity.Rect{X: 500, Y: 300, W: 500, H: 300}, geometryOf(t, m, a3))
}

func TestManager_AddDockWidget_EqualSplitOnInsertion(t *testing.T) {
	cfg := entity.DefaultDockManagerConfig()
	cfg.EqualSplitOnInsertion = true
	m := dock.NewManager(dock.Options{Config: cfg, Bounds: entity.Rect{W: 900, H: 600}, IDGenerator: sequentialIDs("id")})
	t.Cleanup(m.Close)

	addWidget(t, m, entity.DockCenter, "A", nil)
	addWidget(t, m, entity.DockRight, "B", nil)
	addWidget(t, m, entity.DockRight, "C", nil)

	assert.InDeltaSlice(t, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}, m.MainContainer().Root.Sizes, 1e-9)
}

func TestManager_AddDockWidget_Rejections(t *testing.T) {
	m := newTestManager(t)
	addWidget(t, m, entity.DockCenter, "W1", nil)

	dup, _ := newWidget("W1")
	_, err := m.AddDockWidget(testContext(), entity.DockLeft, dup, nil)
	assert.ErrorIs(t, err, entity.ErrDuplicateWidget)

	other := newTestManager(t)
	_, foreign := addWidget(t, other, entity.DockCenter, "X", nil)
	w, _ := newWidget("W2")
	_, err = m.AddDockWidget(testContext(), entity.DockLeft, w, foreign)
	assert.ErrorIs(t, err, entity.ErrInvalidTarget)

	_, err = m.AddDockWidget(testContext(), entity.NoDockLocation, w, nil)
	assert.ErrorIs(t, err, entity.ErrInvalidTarget)

	assert.Len(t, m.DockWidgets(), 1)
	assert.Nil(t, w.Area)
}

func TestManager_RemoveDockWidget_CollapsesTree(t *testing.T) {
	m := newTestManager(t)
	addWidget(t, m, entity.DockCenter, "W1", nil)
	w2, _ := addWidget(t, m, entity.DockLeft, "W2", nil)

	var removed []string
	m.OnDockWidgetRemoved(func(w *entity.DockWidget) { removed = append(removed, w.Name) })

	require.NoError(t, m.RemoveDockWidget(testContext(), w2))

	assert.True(t, m.MainContainer().Root.IsLeaf())
	assert.Equal(t, []string{"W2"}, removed)
	_, found := m.FindDockWidget("W2")
	assert.False(t, found)
	assert.Equal(t, entity.DockWidgetHidden, w2.State)

	assert.ErrorIs(t, m.RemoveDockWidget(testContext(), w2), entity.ErrWidgetNotFound)
}

func TestManager_MoveDockWidget(t *testing.T) {
	m := newTestManager(t)
	w1, a1 := addWidget(t, m, entity.DockCenter, "W1", nil)
	w2, _ := addWidget(t, m, entity.DockLeft, "W2", nil)

	area, err := m.MoveDockWidget(testContext(), w2, entity.DockCenter, a1)
	require.NoError(t, err)

	assert.Same(t, a1, area)
	assert.Equal(t, [][]string{{"W1", "W2"}}, areaNames(m.DockAreas()))

	same, err := m.MoveDockWidget(testContext(), w2, entity.DockCenter, a1)
	require.NoError(t, err)
	assert.Same(t, a1, same)

	w1.Features.Movable = false
	_, err = m.MoveDockWidget(testContext(), w1, entity.DockTop, nil)
	assert.ErrorIs(t, err, entity.ErrFeatureDisabled)
}

func TestManager_TabsAndFocus(t *testing.T) {
	m := newTestManager(t)
	w1, area := addWidget(t, m, entity.DockCenter, "W1", nil)
	w2, _ := addWidget(t, m, entity.DockCenter, "W2", nil)
	w3, _ := newWidget("W3")
	require.NoError(t, m.InsertDockWidget(testContext(), w3, area, 0))

	assert.Equal(t, []string{"W3", "W1", "W2"}, area.WidgetNames())
	assert.Same(t, w3, area.CurrentWidget())

	require.NoError(t, m.MoveTab(area, 0, 2))
	assert.Equal(t, []string{"W1", "W2", "W3"}, area.WidgetNames())

	require.NoError(t, m.SetCurrentTab(area, 1))
	assert.Same(t, w2, area.CurrentWidget())
	assert.Error(t, m.SetCurrentTab(area, 7))

	require.NoError(t, m.SetActiveDockWidget(testContext(), w1))
	assert.Same(t, w1, m.ActiveDockWidget())
	assert.Same(t, w1, area.CurrentWidget())

	w2.Features.Focusable = false
	assert.ErrorIs(t, m.SetActiveDockWidget(testContext(), w2), entity.ErrFeatureDisabled)
}

func TestManager_RelayoutDrivesContent(t *testing.T) {
	m := newTestManager(t)
	w1, c1 := newWidget("W1")
	_, err := m.AddDockWidget(testContext(), entity.DockCenter, w1, nil)
	require.NoError(t, err)

	assert.True(t, c1.visible)
	assert.Equal(t, "main", c1.host)
	assert.Equal(t, testBounds, c1.bounds)

	w2, c2 := newWidget("W2")
	_, err = m.AddDockWidget(testContext(), entity.DockCenter, w2, nil)
	require.NoError(t, err)

	assert.False(t, c1.visible, "background tab is hidden")
	assert.True(t, c2.visible)

	m.SetBounds(entity.Rect{W: 800, H: 400})
	assert.Equal(t, entity.Rect{W: 800, H: 400}, c2.bounds)
	assert.Equal(t, entity.Rect{W: 1000, H: 600}, c1.bounds, "hidden content is not resized")
}

func TestManager_BatchDefersRelayoutAndLayoutChanged(t *testing.T) {
	queue := mainloop.NewQueueDispatcher()
	m := dock.NewManager(dock.Options{Bounds: testBounds, Dispatcher: queue, IDGenerator: sequentialIDs("id")})
	t.Cleanup(m.Close)

	changed := 0
	m.OnLayoutChanged(func() { changed++ })

	m.BeginBatchOperation()
	m.BeginBatchOperation()
	w1, c1 := newWidget("W1")
	_, err := m.AddDockWidget(testContext(), entity.DockCenter, w1, nil)
	require.NoError(t, err)
	addWidget(t, m, entity.DockRight, "W2", nil)
	m.EndBatchOperation()

	assert.True(t, m.InBatch())
	assert.Zero(t, changed)
	assert.False(t, m.RelayoutPending())

	m.EndBatchOperation()
	assert.Equal(t, 1, changed)
	assert.True(t, m.RelayoutPending())
	assert.Empty(t, c1.calls)

	assert.Equal(t, 1, queue.Drain())
	assert.True(t, c1.visible)
	assert.Equal(t, entity.Rect{W: 500, H: 600}, c1.bounds)

	m.EndBatchOperation()
	assert.False(t, m.InBatch())
}

func TestManager_LifecycleCallbacksInRegistrationOrder(t *testing.T) {
	m := newTestManager(t)

	var log []string
	m.OnDockWidgetAdded(func(w *entity.DockWidget) { log = append(log, "first "+w.Name) })
	unsubscribe := m.OnDockWidgetAdded(func(w *entity.DockWidget) { log = append(log, "second "+w.Name) })
	m.OnDockWidgetAdded(func(w *entity.DockWidget) {
		log = append(log, "third "+w.Name)
		assert.NotNil(t, w.Area, "callbacks run after the mutation")
	})

	addWidget(t, m, entity.DockCenter, "A", nil)
	unsubscribe()
	addWidget(t, m, entity.DockCenter, "B", nil)

	assert.Equal(t, []string{"first A", "second A", "third A", "first B", "third B"}, log)
}

func TestManager_DockWidgetsKeepsRegistrationOrder(t *testing.T) {
	m := newTestManager(t)
	addWidget(t, m, entity.DockCenter, "c", nil)
	addWidget(t, m, entity.DockLeft, "a", nil)
	addWidget(t, m, entity.DockTop, "b", nil)

	var names []string
	for _, w := range m.DockWidgets() {
		names = append(names, w.Name)
	}
	assert.Equal(t, []string{"c", "a", "b"}, names)
}

func TestManager_SetSplitSizes(t *testing.T) {
	m := newTestManager(t)
	_, a1 := addWidget(t, m, entity.DockCenter, "W1", nil)
	addWidget(t, m, entity.DockRight, "W2", nil)

	root := m.MainContainer().Root
	require.NoError(t, m.SetSplitSizes(testContext(), root, []float64{3, 1}))
	assert.Equal(t, []float64{0.75, 0.25}, root.Sizes)
	assert.Equal(t, 750, geometryOf(t, m, a1).W)

	foreign := &entity.LayoutNode{Children: []*entity.LayoutNode{{}, {}}}
	assert.ErrorIs(t, m.SetSplitSizes(testContext(), foreign, []float64{1, 1}), entity.ErrInvalidTarget)
}
