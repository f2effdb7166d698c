package cli

import (
	"context"
	"fmt"

	"github.com/bnema/dockyard/internal/app/dock"
	"github.com/bnema/dockyard/internal/domain/entity"
)

// DemoWidgets lists the widgets BuildDemoLayout registers, in insertion order.
var DemoWidgets = []string{"editor", "files", "outline", "console", "log", "properties", "bookmarks", "search"}

// BuildDemoLayout fills an empty manager with an IDE-like layout: a file
// tree and outline on the left, the editor over a console/log strip, a
// properties panel on the right, an auto-hidden bookmarks tab and a floating
// search window.
func BuildDemoLayout(ctx context.Context, m *dock.Manager) error {
	if len(m.DockWidgets()) > 0 {
		return fmt.Errorf("demo layout needs an empty dock manager")
	}

	w := make(map[string]*entity.DockWidget, len(DemoWidgets))
	for _, name := range DemoWidgets {
		w[name] = entity.NewDockWidget(name, demoTitle(name))
	}
	w["editor"].Features.Closable = false

	m.BeginBatchOperation()
	defer m.EndBatchOperation()

	editor, err := m.AddDockWidget(ctx, entity.DockCenter, w["editor"], nil)
	if err != nil {
		return err
	}
	files, err := m.AddDockWidget(ctx, entity.DockLeft, w["files"], nil)
	if err != nil {
		return err
	}
	steps := []func() error{
		func() error { _, err := m.AddDockWidgetTab(ctx, w["outline"], files); return err },
		func() error { _, err := m.AddDockWidgetTab(ctx, w["bookmarks"], files); return err },
		func() error {
			console, err := m.AddDockWidget(ctx, entity.DockBottom, w["console"], editor)
			if err != nil {
				return err
			}
			_, err = m.AddDockWidgetTab(ctx, w["log"], console)
			return err
		},
		func() error { _, err := m.AddDockWidget(ctx, entity.DockRight, w["properties"], nil); return err },
		func() error {
			_, err := m.AddDockWidgetFloating(ctx, w["search"], entity.Rect{X: 880, Y: 120, W: 360, H: 240})
			return err
		},
		func() error { return m.SetCurrentTab(files, 0) },
		func() error { return m.SetActiveDockWidget(ctx, w["editor"]) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	// Auto-hide is optional; a disabled feature leaves bookmarks as a tab.
	if m.AutoHideConfig().Enabled {
		if err := m.SetAutoHide(ctx, w["bookmarks"], entity.DockLeft); err != nil {
			return err
		}
	}
	return nil
}

func demoTitle(name string) string {
	if name == "" {
		return ""
	}
	return string(name[0]-'a'+'A') + name[1:]
}
