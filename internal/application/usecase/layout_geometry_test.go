package usecase_test

import (
	"testing"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeGeometry_SplitsBounds(t *testing.T) {
	uc, c := newLayoutFixture(t)
	a := newAreaWith(t, uc, "a")
	b := newAreaWith(t, uc, "b")
	d := newAreaWith(t, uc, "d")
	insert(t, uc, c, nil, entity.DockLeft, a)
	insert(t, uc, c, a, entity.DockRight, b)
	insert(t, uc, c, b, entity.DockBottom, d)

	geoms := usecase.ComputeGeometry(c)
	require.Len(t, geoms, 3)

	ra, ok := usecase.GeometryOf(geoms, a)
	require.True(t, ok)
	assert.Equal(t, entity.Rect{X: 0, Y: 0, W: 500, H: 600}, ra)

	rb, _ := usecase.GeometryOf(geoms, b)
	assert.Equal(t, entity.Rect{X: 500, Y: 0, W: 500, H: 300}, rb)

	rd, _ := usecase.GeometryOf(geoms, d)
	assert.Equal(t, entity.Rect{X: 500, Y: 300, W: 500, H: 300}, rd)
}

func TestComputeGeometry_LastChildTakesRemainder(t *testing.T) {
	uc, _ := newLayoutFixture(t)
	c := entity.NewDockContainer("odd", entity.Rect{X: 10, Y: 20, W: 101, H: 50})
	a := newAreaWith(t, uc, "a")
	b := newAreaWith(t, uc, "b")
	d := newAreaWith(t, uc, "d")
	insert(t, uc, c, nil, entity.DockLeft, a)
	require.NoError(t, uc.InsertArea(testContext(), usecase.InsertAreaInput{
		Container: c, Target: a, Location: entity.DockRight, Area: b, EqualSplit: true,
	}))
	require.NoError(t, uc.InsertArea(testContext(), usecase.InsertAreaInput{
		Container: c, Target: b, Location: entity.DockRight, Area: d, EqualSplit: true,
	}))

	geoms := usecase.ComputeGeometry(c)
	total := 0
	for _, g := range geoms {
		total += g.Rect.W
		assert.Equal(t, 50, g.Rect.H)
	}
	assert.Equal(t, 101, total)
	assert.Equal(t, 111, geoms[2].Rect.X+geoms[2].Rect.W)
}

func TestComputeGeometry_EmptyContainer(t *testing.T) {
	assert.Empty(t, usecase.ComputeGeometry(entity.NewDockContainer("x", entity.Rect{W: 10, H: 10})))
	assert.Empty(t, usecase.ComputeGeometry(nil))
}

func TestAreaAt(t *testing.T) {
	uc, c := newLayoutFixture(t)
	a := newAreaWith(t, uc, "a")
	b := newAreaWith(t, uc, "b")
	insert(t, uc, c, nil, entity.DockLeft, a)
	insert(t, uc, c, a, entity.DockRight, b)
	geoms := usecase.ComputeGeometry(c)

	assert.Same(t, a, usecase.AreaAt(geoms, entity.Point{X: 100, Y: 100}))
	assert.Same(t, b, usecase.AreaAt(geoms, entity.Point{X: 500, Y: 100}))
	assert.Nil(t, usecase.AreaAt(geoms, entity.Point{X: 1000, Y: 100}))
}

func TestNearestArea(t *testing.T) {
	uc, c := newLayoutFixture(t)
	a := newAreaWith(t, uc, "a")
	b := newAreaWith(t, uc, "b")
	insert(t, uc, c, nil, entity.DockLeft, a)
	insert(t, uc, c, a, entity.DockRight, b)
	geoms := usecase.ComputeGeometry(c)

	// Centers are (250,300) and (750,300).
	assert.Same(t, b, usecase.NearestArea(geoms, entity.Point{X: 700, Y: 450}, 200))
	assert.Same(t, a, usecase.NearestArea(geoms, entity.Point{X: 250, Y: 480}, 200))
	assert.Nil(t, usecase.NearestArea(geoms, entity.Point{X: 500, Y: 700}, 200))
}
