package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	portmocks "github.com/bnema/dockyard/internal/application/port/mocks"
	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
	repomocks "github.com/bnema/dockyard/internal/domain/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var perspectiveClock = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newPerspectivesFixture(t *testing.T) (
	*usecase.ManagePerspectivesUseCase,
	*portmocks.MockLayoutStateStore,
	*repomocks.MockPerspectiveRepository,
	*portmocks.MockPerspectiveCodec,
) {
	t.Helper()
	store := portmocks.NewMockLayoutStateStore(t)
	repo := repomocks.NewMockPerspectiveRepository(t)
	codec := portmocks.NewMockPerspectiveCodec(t)
	uc := usecase.NewManagePerspectivesUseCase(store, repo, codec)
	uc.SetClock(func() time.Time { return perspectiveClock })
	return uc, store, repo, codec
}

func TestManagePerspectivesUseCase_SavePerspective_CreatesAndSetsCurrent(t *testing.T) {
	ctx := testContext()
	uc, store, _, _ := newPerspectivesFixture(t)
	store.EXPECT().SaveState().Return([]byte("<layout/>"), nil).Once()

	var saved []string
	uc.OnPerspectiveSaved(func(name string) { saved = append(saved, name) })

	p, err := uc.SavePerspective(ctx, "Coding", "editor focus")
	require.NoError(t, err)

	assert.Equal(t, "Coding", p.Name)
	assert.Equal(t, "editor focus", p.Description)
	assert.Equal(t, []byte("<layout/>"), p.Layout)
	assert.Equal(t, perspectiveClock, p.Created)
	assert.Equal(t, "Coding", uc.Current())
	assert.Equal(t, []string{"Coding"}, saved)
}

func TestManagePerspectivesUseCase_SavePerspective_OverwriteKeepsDescription(t *testing.T) {
	ctx := testContext()
	uc, store, _, _ := newPerspectivesFixture(t)
	store.EXPECT().SaveState().Return([]byte("v1"), nil).Once()
	store.EXPECT().SaveState().Return([]byte("v2"), nil).Once()

	_, err := uc.SavePerspective(ctx, "Coding", "editor focus")
	require.NoError(t, err)

	later := perspectiveClock.Add(time.Hour)
	uc.SetClock(func() time.Time { return later })
	p, err := uc.SavePerspective(ctx, "Coding", "")
	require.NoError(t, err)

	assert.Equal(t, []byte("v2"), p.Layout)
	assert.Equal(t, "editor focus", p.Description)
	assert.Equal(t, perspectiveClock, p.Created)
	assert.Equal(t, later, p.Modified)
	assert.Len(t, uc.Names(), 1)
}

func TestManagePerspectivesUseCase_SavePerspective_Errors(t *testing.T) {
	ctx := testContext()
	uc, store, _, _ := newPerspectivesFixture(t)

	_, err := uc.SavePerspective(ctx, "", "")
	assert.Error(t, err)

	store.EXPECT().SaveState().Return(nil, errors.New("boom")).Once()
	_, err = uc.SavePerspective(ctx, "x", "")
	assert.Error(t, err)
	assert.False(t, uc.HasPerspective("x"))
	assert.Empty(t, uc.Current())
}

func TestManagePerspectivesUseCase_SavePerspective_CapturesPreview(t *testing.T) {
	ctx := testContext()
	uc, store, _, _ := newPerspectivesFixture(t)
	renderer := portmocks.NewMockPreviewRenderer(t)
	uc.SetPreviewRenderer(renderer)

	state := &entity.LayoutState{Version: entity.LayoutStateVersion}
	bounds := entity.Rect{W: 800, H: 600}
	store.EXPECT().SaveState().Return([]byte("blob"), nil).Once()
	store.EXPECT().Snapshot().Return(state).Once()
	store.EXPECT().Bounds().Return(bounds).Once()
	renderer.EXPECT().RenderPreview(mock.Anything, state, bounds).Return([]byte("png"), nil).Once()

	p, err := uc.SavePerspective(ctx, "Preview", "")
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), p.Preview)
}

func TestManagePerspectivesUseCase_LoadPerspective(t *testing.T) {
	ctx := testContext()
	uc, store, _, _ := newPerspectivesFixture(t)
	store.EXPECT().SaveState().Return([]byte("a"), nil).Once()
	store.EXPECT().SaveState().Return([]byte("b"), nil).Once()
	_, err := uc.SavePerspective(ctx, "A", "")
	require.NoError(t, err)
	_, err = uc.SavePerspective(ctx, "B", "")
	require.NoError(t, err)

	var loaded []string
	uc.OnPerspectiveLoaded(func(name string) { loaded = append(loaded, name) })

	store.EXPECT().RestoreState(mock.Anything, []byte("a")).Return(nil).Once()
	require.NoError(t, uc.LoadPerspective(ctx, "A"))
	assert.Equal(t, "A", uc.Current())
	assert.Equal(t, []string{"A"}, loaded)
}

func TestManagePerspectivesUseCase_LoadPerspective_FailureKeepsCurrent(t *testing.T) {
	ctx := testContext()
	uc, store, _, _ := newPerspectivesFixture(t)
	store.EXPECT().SaveState().Return([]byte("a"), nil).Once()
	store.EXPECT().SaveState().Return([]byte("broken"), nil).Once()
	_, err := uc.SavePerspective(ctx, "Broken", "")
	require.NoError(t, err)
	_, err = uc.SavePerspective(ctx, "A", "")
	require.NoError(t, err)

	store.EXPECT().RestoreState(mock.Anything, []byte("broken")).Return(entity.ErrMalformedState).Once()
	err = uc.LoadPerspective(ctx, "Broken")
	assert.ErrorIs(t, err, entity.ErrMalformedState)
	assert.Equal(t, "A", uc.Current())

	err = uc.LoadPerspective(ctx, "missing")
	assert.ErrorIs(t, err, entity.ErrPerspectiveNotFound)
}

func TestManagePerspectivesUseCase_RenamePerspective(t *testing.T) {
	ctx := testContext()
	uc, store, _, _ := newPerspectivesFixture(t)
	store.EXPECT().SaveState().Return([]byte("x"), nil).Times(2)
	_, err := uc.SavePerspective(ctx, "A", "")
	require.NoError(t, err)
	_, err = uc.SavePerspective(ctx, "B", "")
	require.NoError(t, err)

	err = uc.RenamePerspective(ctx, "A", "B")
	assert.ErrorIs(t, err, entity.ErrNameConflict)
	assert.True(t, uc.HasPerspective("A"))

	err = uc.RenamePerspective(ctx, "missing", "C")
	assert.ErrorIs(t, err, entity.ErrPerspectiveNotFound)

	require.NoError(t, uc.RenamePerspective(ctx, "B", "C"))
	assert.Equal(t, []string{"A", "C"}, uc.Names())
	assert.Equal(t, "C", uc.Current())

	p, ok := uc.Perspective("C")
	require.True(t, ok)
	assert.Equal(t, "C", p.Name)
}

func TestManagePerspectivesUseCase_RemovePerspective(t *testing.T) {
	ctx := testContext()
	uc, store, _, _ := newPerspectivesFixture(t)
	store.EXPECT().SaveState().Return([]byte("x"), nil).Once()
	_, err := uc.SavePerspective(ctx, "A", "")
	require.NoError(t, err)

	var removed []string
	uc.OnPerspectiveRemoved(func(name string) { removed = append(removed, name) })

	require.NoError(t, uc.RemovePerspective(ctx, "A"))
	assert.Empty(t, uc.Current())
	assert.Equal(t, []string{"A"}, removed)
	assert.ErrorIs(t, uc.RemovePerspective(ctx, "A"), entity.ErrPerspectiveNotFound)
}

func TestManagePerspectivesUseCase_ExportImport_RoundTrip(t *testing.T) {
	ctx := testContext()
	uc, store, _, codec := newPerspectivesFixture(t)
	store.EXPECT().SaveState().Return([]byte("<DockingState/>"), nil).Once()
	_, err := uc.SavePerspective(ctx, "A", "desc")
	require.NoError(t, err)

	var exported *entity.Perspective
	codec.EXPECT().EncodePerspective(mock.Anything, mock.AnythingOfType("*entity.Perspective")).
		RunAndReturn(func(_ io.Writer, p *entity.Perspective) error {
			exported = p.Clone()
			return nil
		}).Once()
	codec.EXPECT().DecodePerspective(mock.Anything).
		RunAndReturn(func(io.Reader) (*entity.Perspective, error) {
			return exported.Clone(), nil
		}).Twice()

	var buf bytes.Buffer
	require.NoError(t, uc.ExportPerspective(ctx, "A", &buf))

	_, err = uc.ImportPerspective(ctx, &buf, "")
	assert.ErrorIs(t, err, entity.ErrNameConflict)

	imported, err := uc.ImportPerspective(ctx, &buf, "A copy")
	require.NoError(t, err)
	assert.Equal(t, "A copy", imported.Name)
	assert.Equal(t, []byte("<DockingState/>"), imported.Layout)
	assert.Equal(t, "desc", imported.Description)

	store.EXPECT().RestoreState(mock.Anything, []byte("<DockingState/>")).Return(nil).Once()
	require.NoError(t, uc.LoadPerspective(ctx, "A copy"))
}

func TestManagePerspectivesUseCase_ImportPerspective_RejectsEmptyLayout(t *testing.T) {
	ctx := testContext()
	uc, _, _, codec := newPerspectivesFixture(t)
	codec.EXPECT().DecodePerspective(mock.Anything).Return(&entity.Perspective{Name: "empty"}, nil).Once()

	_, err := uc.ImportPerspective(ctx, bytes.NewReader(nil), "")
	assert.ErrorIs(t, err, entity.ErrMalformedState)
	assert.False(t, uc.HasPerspective("empty"))
}

func TestManagePerspectivesUseCase_SaveAllLoadAll(t *testing.T) {
	ctx := testContext()
	uc, store, repo, _ := newPerspectivesFixture(t)
	store.EXPECT().SaveState().Return([]byte("x"), nil).Times(2)
	_, err := uc.SavePerspective(ctx, "B", "")
	require.NoError(t, err)
	_, err = uc.SavePerspective(ctx, "A", "")
	require.NoError(t, err)

	var stored *entity.PerspectiveSet
	repo.EXPECT().SaveAll(mock.Anything, mock.AnythingOfType("*entity.PerspectiveSet")).
		RunAndReturn(func(_ context.Context, set *entity.PerspectiveSet) error {
			stored = set
			return nil
		}).Once()
	require.NoError(t, uc.SaveAll(ctx))
	require.NotNil(t, stored)
	assert.Equal(t, "A", stored.Current)
	require.Len(t, stored.Perspectives, 2)
	assert.Equal(t, "A", stored.Perspectives[0].Name)

	other, _, otherRepo, _ := newPerspectivesFixture(t)
	otherRepo.EXPECT().LoadAll(mock.Anything).Return(stored, nil).Once()
	require.NoError(t, other.LoadAll(ctx))
	assert.Equal(t, []string{"A", "B"}, other.Names())
	assert.Equal(t, "A", other.Current())
}

func TestManagePerspectivesUseCase_LoadAll_DropsUnknownCurrent(t *testing.T) {
	ctx := testContext()
	uc, _, repo, _ := newPerspectivesFixture(t)
	repo.EXPECT().LoadAll(mock.Anything).Return(&entity.PerspectiveSet{
		Current: "gone",
		Perspectives: []*entity.Perspective{
			{Name: "A", Layout: []byte("x")},
			{Name: "no-layout"},
		},
	}, nil).Once()

	require.NoError(t, uc.LoadAll(ctx))
	assert.Equal(t, []string{"A"}, uc.Names())
	assert.Empty(t, uc.Current())
}

func TestManagePerspectivesUseCase_CreateDefaultPerspectives(t *testing.T) {
	ctx := testContext()
	uc, store, _, _ := newPerspectivesFixture(t)
	store.EXPECT().SaveState().Return([]byte("x"), nil).Times(3)

	require.NoError(t, uc.CreateDefaultPerspectives(ctx))
	assert.Equal(t, []string{"Debug", "Default", "Design"}, uc.Names())

	store.EXPECT().RestoreState(mock.Anything, []byte("x")).Return(nil).Once()
	require.NoError(t, uc.ResetToDefault(ctx))
	assert.Equal(t, usecase.DefaultPerspectiveName, uc.Current())
}

func TestManagePerspectivesUseCase_AutoSave_ReSavesCurrentOnly(t *testing.T) {
	ctx := testContext()
	uc, store, repo, _ := newPerspectivesFixture(t)

	assert.ErrorIs(t, uc.AutoSave(ctx), usecase.ErrNoCurrentPerspective)

	store.EXPECT().SaveState().Return([]byte("v1"), nil).Once()
	_, err := uc.SavePerspective(ctx, "Work", "")
	require.NoError(t, err)

	store.EXPECT().SaveState().Return([]byte("v2"), nil).Once()
	repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(p *entity.Perspective) bool {
		return p.Name == "Work" && string(p.Layout) == "v2"
	})).Return(nil).Once()
	repo.EXPECT().SetCurrent(mock.Anything, "Work").Return(nil).Once()

	require.NoError(t, uc.AutoSave(ctx))
	assert.Equal(t, []string{"Work"}, uc.Names())
}

func TestManagePerspectivesUseCase_EnableAutoSave(t *testing.T) {
	ctx := testContext()
	uc, _, _, _ := newPerspectivesFixture(t)

	assert.Error(t, uc.EnableAutoSave(ctx, time.Second))

	scheduler := portmocks.NewMockAutoSaveScheduler(t)
	uc.SetAutoSaveScheduler(scheduler)
	assert.Error(t, uc.EnableAutoSave(ctx, 0))

	scheduler.EXPECT().Start(mock.Anything, 30*time.Second, mock.Anything).Return().Once()
	scheduler.EXPECT().Running().Return(true).Once()
	scheduler.EXPECT().Stop().Return().Once()

	require.NoError(t, uc.EnableAutoSave(ctx, 30*time.Second))
	assert.True(t, uc.AutoSaveEnabled())
	uc.DisableAutoSave()
}

func TestManagePerspectivesUseCase_List(t *testing.T) {
	ctx := testContext()
	uc, store, _, _ := newPerspectivesFixture(t)
	store.EXPECT().SaveState().Return([]byte("abc"), nil).Times(2)
	_, err := uc.SavePerspective(ctx, "Z", "last")
	require.NoError(t, err)
	_, err = uc.SavePerspective(ctx, "M", "")
	require.NoError(t, err)

	infos := uc.List()
	require.Len(t, infos, 2)
	assert.Equal(t, "M", infos[0].Name)
	assert.True(t, infos[0].IsCurrent)
	assert.Equal(t, 3, infos[0].LayoutSize)
	assert.False(t, infos[1].IsCurrent)
}

func TestManagePerspectivesUseCase_UniqueName(t *testing.T) {
	ctx := testContext()
	uc, store, _, _ := newPerspectivesFixture(t)
	store.EXPECT().SaveState().Return([]byte("<layout/>"), nil).Times(3)

	assert.Equal(t, "Coding", uc.UniqueName("Coding"))

	for _, name := range []string{"Coding", "Coding_1", "Coding_3"} {
		_, err := uc.SavePerspective(ctx, name, "")
		require.NoError(t, err)
	}
	assert.Equal(t, "Coding_2", uc.UniqueName("Coding"))
	assert.Equal(t, "Coding_1_1", uc.UniqueName("Coding_1"))
}
