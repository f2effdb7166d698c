package model

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/app/dock"
	"github.com/bnema/dockyard/internal/application/port/mocks"
	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

type fixture struct {
	ctx      context.Context
	manager  *dock.Manager
	uc       *usecase.ManagePerspectivesUseCase
	sidebar  *entity.DockWidget
	persists int
	drained  int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := logging.WithContext(context.Background(), logging.NewFromConfigValues("error", "console"))

	m := dock.NewManager(dock.Options{})
	t.Cleanup(m.Close)

	editor := entity.NewDockWidget("editor", "Editor")
	sidebar := entity.NewDockWidget("sidebar", "Sidebar")
	_, err := m.AddDockWidget(ctx, entity.DockCenter, editor, nil)
	require.NoError(t, err)
	_, err = m.AddDockWidget(ctx, entity.DockLeft, sidebar, nil)
	require.NoError(t, err)

	return &fixture{
		ctx:     ctx,
		manager: m,
		uc:      usecase.NewManagePerspectivesUseCase(m, nil, nil),
		sidebar: sidebar,
	}
}

func (f *fixture) model() PerspectivesModel {
	return NewPerspectivesModel(f.ctx, styles.NewTheme(dock.DefaultDockStyle()), PerspectivesModelConfig{
		Perspectives: f.uc,
		Codec:        f.manager.Codec(),
		Persist: func(context.Context) error {
			f.persists++
			return nil
		},
		Drain: func() int {
			f.drained++
			return 1
		},
		AutoSaveInterval: time.Minute,
	})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m PerspectivesModel, msgs ...tea.Msg) PerspectivesModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(PerspectivesModel)
		require.True(t, ok)
	}
	return m
}

func names(m PerspectivesModel) []string {
	out := make([]string, 0, len(m.items))
	for _, info := range m.items {
		out = append(out, info.Name)
	}
	return out
}

func TestPerspectivesModel_SaveSuggestsUniqueName(t *testing.T) {
	f := newFixture(t)
	m := f.model()
	assert.Contains(t, m.View(), "No perspectives saved")

	m = press(t, m, runes("s"))
	assert.Equal(t, promptSave, m.prompt)
	assert.Equal(t, "Perspective", m.input.Value())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter}, runes("s"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []string{"Perspective", "Perspective_1"}, names(m))
	assert.Equal(t, "Perspective_1", f.uc.Current())
	assert.Equal(t, 2, f.persists)
	assert.Equal(t, 1, m.selectedIdx)
	assert.Contains(t, m.View(), "Saved Perspective_1")
}

func TestPerspectivesModel_EscCancelsPrompt(t *testing.T) {
	f := newFixture(t)
	m := press(t, f.model(), runes("s"), tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, promptNone, m.prompt)
	assert.Empty(t, m.items)
	assert.Zero(t, f.persists)
}

func TestPerspectivesModel_LoadRestoresLayout(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.SavePerspective(f.ctx, "work", "")
	require.NoError(t, err)
	require.True(t, f.manager.CloseDockWidget(f.ctx, f.sidebar))
	require.True(t, f.sidebar.IsClosed())

	m := press(t, f.model(), tea.KeyMsg{Type: tea.KeyEnter})

	assert.NoError(t, m.err)
	assert.False(t, f.sidebar.IsClosed())
	assert.Equal(t, "work", f.uc.Current())
	assert.Equal(t, 1, f.persists)
}

func TestPerspectivesModel_Rename(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.SavePerspective(f.ctx, "work", "")
	require.NoError(t, err)

	m := press(t, f.model(), runes("r"))
	assert.Equal(t, "work", m.input.Value())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlU}, runes("focus"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []string{"focus"}, names(m))
	assert.Equal(t, "focus", f.uc.Current())
}

func TestPerspectivesModel_RenameConflictShowsError(t *testing.T) {
	f := newFixture(t)
	for _, name := range []string{"a", "b"} {
		_, err := f.uc.SavePerspective(f.ctx, name, "")
		require.NoError(t, err)
	}

	m := press(t, f.model(), runes("r"), tea.KeyMsg{Type: tea.KeyCtrlU}, runes("b"), tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, errors.Is(m.err, entity.ErrNameConflict))
	assert.Equal(t, []string{"a", "b"}, names(m))
	assert.Zero(t, f.persists)
	assert.Contains(t, m.View(), "Error")
}

func TestPerspectivesModel_DeleteAsksForConfirmation(t *testing.T) {
	f := newFixture(t)
	for _, name := range []string{"a", "b"} {
		_, err := f.uc.SavePerspective(f.ctx, name, "")
		require.NoError(t, err)
	}
	m := f.model()

	m = press(t, m, runes("x"))
	require.NotNil(t, m.confirm)
	assert.Contains(t, m.View(), "Delete perspective a?")

	m = press(t, m, runes("n"))
	assert.Nil(t, m.confirm)
	assert.Equal(t, []string{"a", "b"}, names(m))

	m = press(t, m, runes("j"), runes("d"), runes("y"))
	assert.Equal(t, []string{"a"}, names(m))
	assert.Equal(t, 0, m.selectedIdx)
	assert.Equal(t, 1, f.persists)
}

func TestPerspectivesModel_ExpandShowsLayoutTree(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.SavePerspective(f.ctx, "work", "")
	require.NoError(t, err)

	m := press(t, f.model(), tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, m.expandedIdx)
	view := m.View()
	assert.Contains(t, view, "main")
	assert.Contains(t, view, "sidebar")
	assert.Contains(t, view, "editor")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, -1, m.expandedIdx)
}

func TestPerspectivesModel_TickDrainsQueue(t *testing.T) {
	f := newFixture(t)
	m := f.model()
	require.NotNil(t, m.Init())

	next, cmd := m.Update(tickMsg(time.Now()))
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, f.drained)
	_, ok := next.(PerspectivesModel)
	assert.True(t, ok)
}

func TestPerspectivesModel_ToggleAutoSave(t *testing.T) {
	f := newFixture(t)
	scheduler := mocks.NewMockAutoSaveScheduler(t)
	f.uc.SetAutoSaveScheduler(scheduler)

	scheduler.EXPECT().Running().Return(false).Once()
	scheduler.EXPECT().Start(mock.Anything, time.Minute, mock.Anything).Once()
	m := press(t, f.model(), runes("a"))
	assert.Equal(t, "Auto-save every 1m0s", m.statusMessage)

	scheduler.EXPECT().Running().Return(true).Once()
	scheduler.EXPECT().Stop().Once()
	m = press(t, m, runes("a"))
	assert.Equal(t, "Auto-save off", m.statusMessage)
}

func TestPerspectivesModel_NavigationStaysInRange(t *testing.T) {
	f := newFixture(t)
	for _, name := range []string{"a", "b"} {
		_, err := f.uc.SavePerspective(f.ctx, name, "")
		require.NoError(t, err)
	}

	m := press(t, f.model(), runes("k"), runes("k"))
	assert.Equal(t, 0, m.selectedIdx)
	m = press(t, m, runes("j"), runes("j"), runes("j"))
	assert.Equal(t, 1, m.selectedIdx)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
