package dock_test

import (
	"testing"

	"github.com/bnema/dockyard/internal/app/dock"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/infrastructure/layoutcodec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildSampleLayout creates [editor, notes] | (console over output) plus a
// floating preview. console is not closable and output is auto-hidden.
func buildSampleLayout(t *testing.T, m *dock.Manager) {
	t.Helper()
	ctx := testContext()

	_, editor := addWidget(t, m, entity.DockCenter, "editor", nil)
	addWidget(t, m, entity.DockCenter, "notes", editor)
	console, consoleArea := addWidget(t, m, entity.DockRight, "console", nil)
	console.Features.Closable = false
	output, _ := addWidget(t, m, entity.DockBottom, "output", consoleArea)
	require.NoError(t, m.SetSplitSizes(ctx, m.MainContainer().Root, []float64{0.7, 0.3}))

	preview, _ := newWidget("preview")
	_, err := m.AddDockWidgetFloating(ctx, preview, entity.Rect{X: 100, Y: 120, W: 320, H: 240})
	require.NoError(t, err)

	require.NoError(t, m.SetAutoHide(ctx, output, entity.DockBottom))
	require.NoError(t, m.SetCurrentTab(editor, 0))
}

func TestSaveRestore_RoundTripIsStable(t *testing.T) {
	m := newTestManager(t)
	buildSampleLayout(t, m)

	blob, err := m.SaveState()
	require.NoError(t, err)

	notes, _ := m.FindDockWidget("notes")
	require.True(t, m.CloseDockWidget(testContext(), notes))
	console, _ := m.FindDockWidget("console")
	_, err = m.MoveDockWidget(testContext(), console, entity.DockLeft, nil)
	require.NoError(t, err)

	require.NoError(t, m.RestoreState(testContext(), blob))

	again, err := m.SaveState()
	require.NoError(t, err)
	assert.Equal(t, string(blob), string(again))
	assert.Equal(t, entity.DockWidgetDocked, notes.State)
	assert.False(t, console.Features.Closable)
}

func TestRestoreState_IntoFreshManager(t *testing.T) {
	source := newTestManager(t)
	buildSampleLayout(t, source)
	blob, err := source.SaveState()
	require.NoError(t, err)

	target := newTestManager(t)
	for _, name := range []string{"editor", "notes", "console", "output", "preview", "extra"} {
		addWidget(t, target, entity.DockCenter, name, nil)
	}

	var created []*entity.FloatingContainer
	target.OnFloatingContainerCreated(func(f *entity.FloatingContainer) { created = append(created, f) })

	require.NoError(t, target.RestoreState(testContext(), blob))

	assert.Equal(t, [][]string{{"editor", "notes"}, {"console"}, {"output"}, {"preview"}}, areaNames(target.DockAreas()))
	require.Len(t, created, 1)
	assert.Equal(t, entity.Rect{X: 100, Y: 120, W: 320, H: 240}, created[0].Geometry)

	extra, _ := target.FindDockWidget("extra")
	assert.True(t, extra.IsClosed(), "registered widgets missing from the state are closed")

	output, _ := target.FindDockWidget("output")
	assert.Equal(t, entity.DockBottom, output.AutoHide)

	preview, _ := target.FindDockWidget("preview")
	assert.Equal(t, entity.DockWidgetFloating, preview.State)

	console, _ := target.FindDockWidget("console")
	assert.False(t, console.Features.Closable)
	assert.InDeltaSlice(t, []float64{0.7, 0.3}, target.MainContainer().Root.Sizes, 1e-9)
}

func TestRestoreState_SkipsUnregisteredWidgets(t *testing.T) {
	source := newTestManager(t)
	buildSampleLayout(t, source)
	blob, err := source.SaveState()
	require.NoError(t, err)

	target := newTestManager(t)
	addWidget(t, target, entity.DockCenter, "console", nil)
	addWidget(t, target, entity.DockCenter, "editor", nil)

	require.NoError(t, target.RestoreState(testContext(), blob))

	assert.Equal(t, [][]string{{"editor"}, {"console"}}, areaNames(target.DockAreas()))
	assert.Empty(t, target.FloatingContainers())
}

func TestRestoreState_TruncatedBlobLeavesLayoutUnchanged(t *testing.T) {
	m := newTestManager(t)
	buildSampleLayout(t, m)
	before, err := m.SaveState()
	require.NoError(t, err)

	changed := 0
	m.OnLayoutChanged(func() { changed++ })

	err = m.RestoreState(testContext(), before[:len(before)/2])
	assert.ErrorIs(t, err, entity.ErrMalformedState)

	after, err := m.SaveState()
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
	assert.Zero(t, changed)
}

func TestRestoreState_StructurallyInvalidStateIsRejected(t *testing.T) {
	m := newTestManager(t)
	addWidget(t, m, entity.DockCenter, "a", nil)
	before, err := m.SaveState()
	require.NoError(t, err)

	bad := &entity.LayoutState{
		Version: entity.LayoutStateVersion,
		Widgets: []entity.WidgetState{{Name: "a"}},
		Main: entity.ContainerState{Root: &entity.NodeState{
			Children: []*entity.NodeState{{Area: &entity.AreaState{Widgets: []string{"a"}}}},
		}},
	}
	assert.ErrorIs(t, m.ApplyState(testContext(), bad), entity.ErrMalformedState)

	after, err := m.SaveState()
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestManager_SaveStateWithYAMLCodec(t *testing.T) {
	m := dock.NewManager(dock.Options{
		Bounds:      testBounds,
		Codec:       layoutcodec.NewYAMLCodec(),
		IDGenerator: sequentialIDs("id"),
	})
	t.Cleanup(m.Close)
	buildSampleLayout(t, m)

	blob, err := m.SaveState()
	require.NoError(t, err)
	assert.Equal(t, layoutcodec.FormatYAML, layoutcodec.Sniff(blob))

	require.NoError(t, m.RestoreState(testContext(), blob))
	assert.Len(t, m.FloatingContainers(), 1)
}
