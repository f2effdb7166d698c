package dock_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/bnema/dockyard/internal/app/dock"
	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func sequentialIDs(prefix string) usecase.IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

var testBounds = entity.Rect{W: 1000, H: 600}

func newTestManager(t *testing.T) *dock.Manager {
	t.Helper()
	m := dock.NewManager(dock.Options{
		Bounds:      testBounds,
		IDGenerator: sequentialIDs("id"),
	})
	t.Cleanup(m.Close)
	return m
}

// fakeContent records what the engine asked the host to do.
type fakeContent struct {
	host     string
	visible  bool
	bounds   entity.Rect
	shows    int
	hides    int
	released int
	calls    []string
}

func (c *fakeContent) Show() {
	c.visible = true
	c.shows++
	c.calls = append(c.calls, "show")
}

func (c *fakeContent) Hide() {
	c.visible = false
	c.hides++
	c.calls = append(c.calls, "hide")
}

func (c *fakeContent) SetBounds(r entity.Rect) {
	c.bounds = r
	c.calls = append(c.calls, fmt.Sprintf("bounds %d,%d %dx%d", r.X, r.Y, r.W, r.H))
}

func (c *fakeContent) Reparent(hostID string) {
	c.host = hostID
	c.calls = append(c.calls, "reparent "+hostID)
}

func (c *fakeContent) Release() {
	c.released++
	c.calls = append(c.calls, "release")
}

func newWidget(name string) (*entity.DockWidget, *fakeContent) {
	w := entity.NewDockWidget(name, "")
	content := &fakeContent{}
	w.SetWidget(content)
	return w, content
}

func addWidget(t *testing.T, m *dock.Manager, loc entity.DockLocation, name string, target *entity.DockArea) (*entity.DockWidget, *entity.DockArea) {
	t.Helper()
	w, _ := newWidget(name)
	area, err := m.AddDockWidget(testContext(), loc, w, target)
	require.NoError(t, err)
	return w, area
}

func areaNames(areas []*entity.DockArea) [][]string {
	out := make([][]string, 0, len(areas))
	for _, a := range areas {
		out = append(out, a.WidgetNames())
	}
	return out
}

func geometryOf(t *testing.T, m *dock.Manager, area *entity.DockArea) entity.Rect {
	t.Helper()
	r, ok := usecase.GeometryOf(m.AreaGeometry(area.Container), area)
	require.True(t, ok, "area %s has no geometry", area.ID)
	return r
}
