package usecase_test

import (
	"testing"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLayoutFixture(t *testing.T) (*usecase.ManageLayoutUseCase, *entity.DockContainer) {
	t.Helper()
	uc := usecase.NewManageLayoutUseCase(sequentialIDs("n"))
	return uc, entity.NewDockContainer("main", entity.Rect{W: 1000, H: 600})
}

func insert(t *testing.T, uc *usecase.ManageLayoutUseCase, c *entity.DockContainer, target *entity.DockArea, loc entity.DockLocation, area *entity.DockArea) {
	t.Helper()
	require.NoError(t, uc.InsertArea(testContext(), usecase.InsertAreaInput{
		Container: c,
		Target:    target,
		Location:  loc,
		Area:      area,
	}))
	require.NoError(t, uc.ValidateTree(c))
}

func TestManageLayoutUseCase_InsertArea_EmptyContainerBecomesRoot(t *testing.T) {
	uc, c := newLayoutFixture(t)
	a := newAreaWith(t, uc, "editor")

	insert(t, uc, c, nil, entity.DockLeft, a)

	require.NotNil(t, c.Root)
	assert.True(t, c.Root.IsLeaf())
	assert.Same(t, a, c.Root.Area)
	assert.Same(t, c, a.Container)
	assert.Equal(t, entity.DockWidgetDocked, a.Widgets[0].State)
}

func TestManageLayoutUseCase_InsertArea_TargetInEmptyContainerFails(t *testing.T) {
	uc, c := newLayoutFixture(t)
	other := entity.NewDockContainer("other", entity.Rect{W: 10, H: 10})
	target := newAreaWith(t, uc, "x")
	insert(t, uc, other, nil, entity.DockLeft, target)

	err := uc.InsertArea(testContext(), usecase.InsertAreaInput{
		Container: c,
		Target:    target,
		Location:  entity.DockRight,
		Area:      newAreaWith(t, uc, "y"),
	})
	assert.ErrorIs(t, err, entity.ErrInvalidTarget)
	assert.Nil(t, c.Root)
}

func TestManageLayoutUseCase_InsertArea_CenterIsNotASplit(t *testing.T) {
	uc, c := newLayoutFixture(t)
	a := newAreaWith(t, uc, "a")
	insert(t, uc, c, nil, entity.DockLeft, a)

	b := newAreaWith(t, uc, "b")
	err := uc.InsertArea(testContext(), usecase.InsertAreaInput{
		Container: c, Target: a, Location: entity.DockCenter, Area: b,
	})
	assert.ErrorIs(t, err, entity.ErrInvalidTarget)
	assert.Nil(t, b.Node)
	assert.Equal(t, []string{a.ID}, areaIDs(c))
}

func TestManageLayoutUseCase_InsertArea_SplitsTarget(t *testing.T) {
	uc, c := newLayoutFixture(t)
	a := newAreaWith(t, uc, "a")
	b := newAreaWith(t, uc, "b")
	insert(t, uc, c, nil, entity.DockLeft, a)
	insert(t, uc, c, a, entity.DockRight, b)

	root := c.Root
	require.True(t, root.IsSplitter())
	assert.Equal(t, entity.OrientationHorizontal, root.Orientation)
	assert.Equal(t, []string{a.ID, b.ID}, areaIDs(c))
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, root.Sizes, 1e-9)
}

func TestManageLayoutUseCase_InsertArea_TopWrapsInVerticalSplitter(t *testing.T) {
	uc, c := newLayoutFixture(t)
	a := newAreaWith(t, uc, "a")
	b := newAreaWith(t, uc, "b")
	top := newAreaWith(t, uc, "top")
	insert(t, uc, c, nil, entity.DockLeft, a)
	insert(t, uc, c, a, entity.DockRight, b)
	insert(t, uc, c, b, entity.DockTop, top)

	// H[a, V[top, b]]
	root := c.Root
	require.Len(t, root.Children, 2)
	inner := root.Children[1]
	require.True(t, inner.IsSplitter())
	assert.Equal(t, entity.OrientationVertical, inner.Orientation)
	assert.Same(t, top, inner.Children[0].Area)
	assert.Same(t, b, inner.Children[1].Area)
	assert.Equal(t, []string{a.ID, top.ID, b.ID}, areaIDs(c))
}

func TestManageLayoutUseCase_InsertArea_SameOrientationAddsSibling(t *testing.T) {
	uc, c := newLayoutFixture(t)
	a := newAreaWith(t, uc, "a")
	b := newAreaWith(t, uc, "b")
	mid := newAreaWith(t, uc, "mid")
	insert(t, uc, c, nil, entity.DockLeft, a)
	insert(t, uc, c, a, entity.DockRight, b)
	insert(t, uc, c, a, entity.DockRight, mid)

	root := c.Root
	require.Len(t, root.Children, 3)
	assert.Equal(t, []string{a.ID, mid.ID, b.ID}, areaIDs(c))
	assert.InDeltaSlice(t, []float64{0.25, 0.25, 0.5}, root.Sizes, 1e-9)
}

func TestManageLayoutUseCase_InsertArea_ContainerEdgeShrinksRootSplitter(t *testing.T) {
	uc, c := newLayoutFixture(t)
	a := newAreaWith(t, uc, "a")
	b := newAreaWith(t, uc, "b")
	side := newAreaWith(t, uc, "side")
	insert(t, uc, c, nil, entity.DockLeft, a)
	insert(t, uc, c, a, entity.DockRight, b)
	insert(t, uc, c, nil, entity.DockLeft, side)

	assert.Equal(t, []string{side.ID, a.ID, b.ID}, areaIDs(c))
	assert.InDeltaSlice(t, []float64{0.5, 0.25, 0.25}, c.Root.Sizes, 1e-9)
}

func TestManageLayoutUseCase_InsertArea_EqualSplit(t *testing.T) {
	uc, c := newLayoutFixture(t)
	a := newAreaWith(t, uc, "a")
	b := newAreaWith(t, uc, "b")
	d := newAreaWith(t, uc, "d")
	insert(t, uc, c, nil, entity.DockLeft, a)
	insert(t, uc, c, a, entity.DockRight, b)
	require.NoError(t, uc.InsertArea(testContext(), usecase.InsertAreaInput{
		Container: c, Target: b, Location: entity.DockRight, Area: d, EqualSplit: true,
	}))

	assert.InDeltaSlice(t, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}, c.Root.Sizes, 1e-9)
}

func TestManageLayoutUseCase_InsertArea_RatioIsClamped(t *testing.T) {
	uc, c := newLayoutFixture(t)
	a := newAreaWith(t, uc, "a")
	b := newAreaWith(t, uc, "b")
	insert(t, uc, c, nil, entity.DockLeft, a)
	require.NoError(t, uc.InsertArea(testContext(), usecase.InsertAreaInput{
		Container: c, Target: a, Location: entity.DockBottom, Area: b, Ratio: 3,
	}))

	assert.InDeltaSlice(t, []float64{0.05, 0.95}, c.Root.Sizes, 1e-9)
}

func TestManageLayoutUseCase_RemoveArea_CollapsesSingleChildSplitter(t *testing.T) {
	uc, c := newLayoutFixture(t)
	a := newAreaWith(t, uc, "a")
	b := newAreaWith(t, uc, "b")
	below := newAreaWith(t, uc, "below")
	insert(t, uc, c, nil, entity.DockLeft, a)
	insert(t, uc, c, a, entity.DockRight, b)
	insert(t, uc, c, a, entity.DockBottom, below)

	require.NoError(t, uc.RemoveArea(testContext(), below))
	require.NoError(t, uc.ValidateTree(c))

	assert.Same(t, c.Root, a.Node.Parent)
	assert.Equal(t, []string{a.ID, b.ID}, areaIDs(c))
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, c.Root.Sizes, 1e-9)
	assert.Nil(t, below.Node)
	assert.Nil(t, below.Container)
}

func TestManageLayoutUseCase_RemoveArea_FlattensSameOrientation(t *testing.T) {
	uc, c := newLayoutFixture(t)
	a := newAreaWith(t, uc, "a")
	b := newAreaWith(t, uc, "b")
	cc := newAreaWith(t, uc, "c")
	d := newAreaWith(t, uc, "d")
	insert(t, uc, c, nil, entity.DockLeft, a)
	insert(t, uc, c, a, entity.DockRight, b)
	insert(t, uc, c, b, entity.DockBottom, cc)
	insert(t, uc, c, cc, entity.DockRight, d)

	// H[a, V[b, H[c, d]]] -> H[a, c, d]
	require.NoError(t, uc.RemoveArea(testContext(), b))
	require.NoError(t, uc.ValidateTree(c))

	root := c.Root
	assert.Equal(t, entity.OrientationHorizontal, root.Orientation)
	require.Len(t, root.Children, 3)
	assert.Equal(t, []string{a.ID, cc.ID, d.ID}, areaIDs(c))
	assert.InDeltaSlice(t, []float64{0.5, 0.25, 0.25}, root.Sizes, 1e-9)
}

func TestManageLayoutUseCase_RemoveArea_LastAreaEmptiesContainer(t *testing.T) {
	uc, c := newLayoutFixture(t)
	a := newAreaWith(t, uc, "a")
	insert(t, uc, c, nil, entity.DockLeft, a)

	require.NoError(t, uc.RemoveArea(testContext(), a))
	assert.True(t, c.IsEmpty())
}

func TestManageLayoutUseCase_AddWidget_RejectsOwnedWidget(t *testing.T) {
	uc, _ := newLayoutFixture(t)
	a := newAreaWith(t, uc, "a")

	err := uc.AddWidget(testContext(), uc.NewArea(), a.Widgets[0], -1)
	assert.Error(t, err)
	assert.Same(t, a, a.Widgets[0].Area)
}

func TestManageLayoutUseCase_AddWidget_InsertsAtIndexAndSelects(t *testing.T) {
	uc, _ := newLayoutFixture(t)
	area := newAreaWith(t, uc, "one", "three")

	require.NoError(t, uc.AddWidget(testContext(), area, entity.NewDockWidget("two", ""), 1))

	assert.Equal(t, []string{"one", "two", "three"}, area.WidgetNames())
	assert.Equal(t, 1, area.CurrentIndex)
	assert.Same(t, area, area.Widgets[1].LastArea)
}

func TestManageLayoutUseCase_RemoveWidget_AdjustsCurrentIndex(t *testing.T) {
	uc, c := newLayoutFixture(t)
	area := newAreaWith(t, uc, "one", "two", "three")
	insert(t, uc, c, nil, entity.DockLeft, area)
	require.NoError(t, uc.SetCurrentIndex(area, 2))

	first := area.Widgets[0]
	removed, err := uc.RemoveWidget(testContext(), first)
	require.NoError(t, err)
	assert.Nil(t, removed)
	assert.Nil(t, first.Area)
	assert.Equal(t, 1, area.CurrentIndex)
	assert.Equal(t, "three", area.CurrentWidget().Name)

	last := area.Widgets[1]
	_, err = uc.RemoveWidget(testContext(), last)
	require.NoError(t, err)
	assert.Equal(t, 0, area.CurrentIndex)
}

func TestManageLayoutUseCase_RemoveWidget_EmptyAreaIsRemoved(t *testing.T) {
	uc, c := newLayoutFixture(t)
	a := newAreaWith(t, uc, "a")
	b := newAreaWith(t, uc, "b")
	insert(t, uc, c, nil, entity.DockLeft, a)
	insert(t, uc, c, a, entity.DockRight, b)

	removed, err := uc.RemoveWidget(testContext(), b.Widgets[0])
	require.NoError(t, err)
	assert.Same(t, b, removed)
	assert.Equal(t, -1, b.CurrentIndex)
	assert.True(t, c.Root.IsLeaf())
	assert.Same(t, a, c.Root.Area)
}

func TestManageLayoutUseCase_RemoveWidget_NotDocked(t *testing.T) {
	uc, _ := newLayoutFixture(t)

	_, err := uc.RemoveWidget(testContext(), entity.NewDockWidget("loose", ""))
	assert.ErrorIs(t, err, entity.ErrWidgetNotFound)
}

func TestManageLayoutUseCase_MoveWidget_OntoOwnAreaIsNoop(t *testing.T) {
	uc, c := newLayoutFixture(t)
	a := newAreaWith(t, uc, "solo")
	insert(t, uc, c, nil, entity.DockLeft, a)
	w := a.Widgets[0]

	got, err := uc.MoveWidget(testContext(), usecase.MoveWidgetInput{Widget: w, Target: a, Location: entity.DockCenter})
	assert.ErrorIs(t, err, usecase.ErrNothingToMove)
	assert.Same(t, a, got)

	got, err = uc.MoveWidget(testContext(), usecase.MoveWidgetInput{Widget: w, Target: a, Location: entity.DockLeft})
	assert.ErrorIs(t, err, usecase.ErrNothingToMove)
	assert.Same(t, a, got)
	assert.Same(t, a, c.Root.Area)
}

func TestManageLayoutUseCase_MoveWidget_IntoOtherAreaAsTab(t *testing.T) {
	uc, c := newLayoutFixture(t)
	a := newAreaWith(t, uc, "a1", "a2")
	b := newAreaWith(t, uc, "b")
	insert(t, uc, c, nil, entity.DockLeft, a)
	insert(t, uc, c, a, entity.DockRight, b)
	w := b.Widgets[0]

	got, err := uc.MoveWidget(testContext(), usecase.MoveWidgetInput{Widget: w, Target: a, Location: entity.DockCenter})
	require.NoError(t, err)
	require.NoError(t, uc.ValidateTree(c))

	assert.Same(t, a, got)
	assert.Equal(t, []string{"a1", "a2", "b"}, a.WidgetNames())
	assert.Equal(t, 2, a.CurrentIndex)
	assert.True(t, c.Root.IsLeaf())
	assert.Nil(t, b.Node)
}

func TestManageLayoutUseCase_MoveWidget_SplitsOwnAreaWhenItHasSiblings(t *testing.T) {
	uc, c := newLayoutFixture(t)
	a := newAreaWith(t, uc, "a1", "a2")
	insert(t, uc, c, nil, entity.DockLeft, a)
	w := a.Widgets[1]

	got, err := uc.MoveWidget(testContext(), usecase.MoveWidgetInput{Widget: w, Target: a, Location: entity.DockBottom})
	require.NoError(t, err)
	require.NoError(t, uc.ValidateTree(c))

	assert.NotSame(t, a, got)
	assert.Equal(t, []string{a.ID, got.ID}, areaIDs(c))
	assert.Equal(t, entity.OrientationVertical, c.Root.Orientation)
	assert.Equal(t, []string{"a1"}, a.WidgetNames())
	assert.Equal(t, []string{"a2"}, got.WidgetNames())
}

func TestManageLayoutUseCase_MoveWidget_SoleWidgetNextToSibling(t *testing.T) {
	uc, c := newLayoutFixture(t)
	a := newAreaWith(t, uc, "a")
	b := newAreaWith(t, uc, "b")
	d := newAreaWith(t, uc, "d")
	insert(t, uc, c, nil, entity.DockLeft, a)
	insert(t, uc, c, a, entity.DockRight, b)
	insert(t, uc, c, b, entity.DockRight, d)

	// Moving a's only widget to the right of d removes a and re-inserts.
	got, err := uc.MoveWidget(testContext(), usecase.MoveWidgetInput{
		Widget: a.Widgets[0], Target: d, Location: entity.DockRight,
	})
	require.NoError(t, err)
	require.NoError(t, uc.ValidateTree(c))

	assert.Equal(t, []string{b.ID, d.ID, got.ID}, areaIDs(c))
	assert.Nil(t, a.Node)
}

func TestManageLayoutUseCase_MoveWidget_ToContainerEdge(t *testing.T) {
	uc, c := newLayoutFixture(t)
	a := newAreaWith(t, uc, "a", "log")
	insert(t, uc, c, nil, entity.DockLeft, a)

	got, err := uc.MoveWidget(testContext(), usecase.MoveWidgetInput{
		Widget: a.Widgets[1], Container: c, Location: entity.DockBottom, Ratio: 0.3,
	})
	require.NoError(t, err)
	require.NoError(t, uc.ValidateTree(c))

	assert.Equal(t, []string{a.ID, got.ID}, areaIDs(c))
	assert.InDeltaSlice(t, []float64{0.7, 0.3}, c.Root.Sizes, 1e-9)
}

func TestManageLayoutUseCase_MoveWidget_CenterIntoEmptyContainerBecomesRoot(t *testing.T) {
	uc, c := newLayoutFixture(t)
	floating := entity.NewDockContainer("floating", entity.Rect{W: 300, H: 200})
	a := newAreaWith(t, uc, "a")
	insert(t, uc, floating, nil, entity.DockLeft, a)
	w := a.Widgets[0]

	got, err := uc.MoveWidget(testContext(), usecase.MoveWidgetInput{
		Widget: w, Container: c, Location: entity.DockCenter,
	})
	require.NoError(t, err)
	require.NoError(t, uc.ValidateTree(c))

	require.NotNil(t, c.Root)
	assert.Same(t, got, c.Root.Area)
	assert.Same(t, got, w.Area)
	assert.True(t, floating.IsEmpty())
}

func TestManageLayoutUseCase_MoveWidget_InvalidTarget(t *testing.T) {
	uc, c := newLayoutFixture(t)
	a := newAreaWith(t, uc, "a")
	insert(t, uc, c, nil, entity.DockLeft, a)

	detached := newAreaWith(t, uc, "detached")
	_, err := uc.MoveWidget(testContext(), usecase.MoveWidgetInput{
		Widget: a.Widgets[0], Target: detached, Location: entity.DockLeft,
	})
	assert.ErrorIs(t, err, entity.ErrInvalidTarget)
	assert.Same(t, a, c.Root.Area)

	_, err = uc.MoveWidget(testContext(), usecase.MoveWidgetInput{
		Widget: a.Widgets[0], Container: c, Location: "diagonal",
	})
	assert.ErrorIs(t, err, entity.ErrInvalidTarget)
}

func TestManageLayoutUseCase_MoveTab(t *testing.T) {
	uc, _ := newLayoutFixture(t)
	area := newAreaWith(t, uc, "a", "b", "c")

	require.NoError(t, uc.MoveTab(area, 0, 2))
	assert.Equal(t, []string{"b", "c", "a"}, area.WidgetNames())
	assert.Equal(t, 2, area.CurrentIndex)

	require.NoError(t, uc.MoveTab(area, 2, 0))
	assert.Equal(t, []string{"a", "b", "c"}, area.WidgetNames())

	assert.Error(t, uc.MoveTab(area, 0, 3))
	assert.Error(t, uc.SetCurrentIndex(area, -1))
}

func TestManageLayoutUseCase_SetSplitSizes(t *testing.T) {
	uc, c := newLayoutFixture(t)
	a := newAreaWith(t, uc, "a")
	b := newAreaWith(t, uc, "b")
	insert(t, uc, c, nil, entity.DockLeft, a)
	insert(t, uc, c, a, entity.DockRight, b)

	require.NoError(t, uc.SetSplitSizes(testContext(), c.Root, []float64{300, 700}, 0))
	assert.InDeltaSlice(t, []float64{0.3, 0.7}, c.Root.Sizes, 1e-9)

	require.NoError(t, uc.SetSplitSizes(testContext(), c.Root, []float64{1, 99}, 0.1))
	assert.InDelta(t, 0.1, c.Root.Sizes[0], 0.01)

	assert.Error(t, uc.SetSplitSizes(testContext(), c.Root, []float64{1}, 0))
	assert.ErrorIs(t, uc.SetSplitSizes(testContext(), a.Node, []float64{1}, 0), entity.ErrInvalidTarget)
}
