package styles

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/bnema/dockyard/internal/app/dock"
	"github.com/bnema/dockyard/internal/domain/entity"
)

func testTheme() *Theme {
	return NewTheme(dock.DefaultDockStyle())
}

func TestRenderLayout(t *testing.T) {
	state := &entity.LayoutState{
		Version: entity.LayoutStateVersion,
		Widgets: []entity.WidgetState{
			{Name: "files"}, {Name: "editor"}, {Name: "log"},
			{Name: "bookmarks", AutoHide: entity.DockLeft},
			{Name: "help", Closed: true},
		},
		Main: entity.ContainerState{Root: &entity.NodeState{
			Orientation: entity.OrientationHorizontal,
			Sizes:       []float64{0.25, 0.75},
			Children: []*entity.NodeState{
				{Area: &entity.AreaState{Widgets: []string{"files", "bookmarks"}}},
				{Area: &entity.AreaState{Widgets: []string{"editor"}}},
			},
		}},
		Floating: []entity.FloatingState{{
			Title:     "Log",
			Geometry:  entity.Rect{X: 10, Y: 20, W: 300, H: 200},
			Container: entity.ContainerState{Root: &entity.NodeState{Area: &entity.AreaState{Widgets: []string{"log"}}}},
		}},
		ActiveWidget: "editor",
	}

	out := testTheme().RenderLayout(state)

	for _, want := range []string{
		"horizontal",
		"[0.25 0.75]",
		"├─ ",
		"└─ ",
		"files bookmarks",
		"editor*",
		"Log",
		"10,20 300x200",
		"left: bookmarks",
		"help",
	} {
		assert.Contains(t, out, want)
	}
}

func TestRenderLayout_Empty(t *testing.T) {
	assert.Contains(t, testTheme().RenderLayout(nil), "empty layout")
	assert.Contains(t, testTheme().RenderLayout(&entity.LayoutState{}), "(empty)")
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		at   time.Time
		want string
	}{
		{time.Time{}, "never"},
		{now.Add(-10 * time.Second), "just now"},
		{now.Add(-5 * time.Minute), "5m ago"},
		{now.Add(-3 * time.Hour), "3h ago"},
		{now.Add(-2 * 24 * time.Hour), "2d ago"},
		{now.Add(-14 * 24 * time.Hour), "2w ago"},
		{now.Add(-60 * 24 * time.Hour), "2mo ago"},
		{now.Add(-800 * 24 * time.Hour), "2y ago"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, relativeTime(now, tt.at))
	}
}

func TestConfirmModel(t *testing.T) {
	m := NewConfirm(testTheme(), "Delete?")
	assert.False(t, m.Done())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.True(t, m.Yes)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.Done())
	assert.True(t, m.Result())

	m = NewConfirm(testTheme(), "Delete?")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.Done())
	assert.False(t, m.Result())

	m = NewConfirm(testTheme(), "Delete?")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	assert.True(t, m.Result())
	assert.Contains(t, m.View(), "Delete?")
}

func TestSizeBadge(t *testing.T) {
	th := testTheme()
	assert.Contains(t, th.SizeBadge(512), "512 B")
	assert.Contains(t, th.SizeBadge(2048), "2.0 KiB")
}
