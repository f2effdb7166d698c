package styles

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// RenderLayout draws a layout snapshot as an indented tree: the main
// container, each floating window, then auto-hidden and closed widgets.
func (t *Theme) RenderLayout(state *entity.LayoutState) string {
	if state == nil {
		return t.Subtle.Render("(empty layout)")
	}

	var b strings.Builder
	b.WriteString(t.Title.Render("main"))
	b.WriteString("\n")
	t.renderNode(&b, state.Main.Root, "", true, state.ActiveWidget)

	for _, f := range state.Floating {
		title := f.Title
		if title == "" {
			title = "floating"
		}
		g := f.Geometry
		fmt.Fprintf(&b, "%s %s %s\n",
			t.Highlight.Render(IconFloat),
			t.Title.Render(title),
			t.Subtle.Render(fmt.Sprintf("%d,%d %dx%d", g.X, g.Y, g.W, g.H)))
		t.renderNode(&b, f.Container.Root, "", true, state.ActiveWidget)
	}

	hidden := map[entity.DockLocation][]string{}
	var closed []string
	for _, w := range state.Widgets {
		if w.AutoHide != entity.NoDockLocation {
			hidden[w.AutoHide] = append(hidden[w.AutoHide], w.Name)
		}
		if w.Closed {
			closed = append(closed, w.Name)
		}
	}
	if len(hidden) > 0 {
		sides := make([]string, 0, len(hidden))
		for side := range hidden {
			sides = append(sides, string(side))
		}
		sort.Strings(sides)
		b.WriteString(t.Title.Render("auto-hide"))
		b.WriteString("\n")
		for _, side := range sides {
			fmt.Fprintf(&b, "  %s %s: %s\n",
				t.Subtle.Render(IconHidden), side,
				strings.Join(hidden[entity.DockLocation(side)], ", "))
		}
	}
	if len(closed) > 0 {
		fmt.Fprintf(&b, "%s %s\n", t.Title.Render("closed:"), t.Subtle.Render(strings.Join(closed, ", ")))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (t *Theme) renderNode(b *strings.Builder, n *entity.NodeState, prefix string, last bool, active string) {
	if n == nil {
		b.WriteString(t.Subtle.Render(prefix + "└─ (empty)"))
		b.WriteString("\n")
		return
	}

	branch, indent := "├─ ", "│  "
	if last {
		branch, indent = "└─ ", "   "
	}
	b.WriteString(t.Branch.Render(prefix + branch))

	if n.Area != nil {
		b.WriteString(t.renderArea(n.Area, active))
		b.WriteString("\n")
		return
	}

	sizes := make([]string, len(n.Sizes))
	for i, s := range n.Sizes {
		sizes[i] = fmt.Sprintf("%.2f", s)
	}
	fmt.Fprintf(b, "%s %s\n",
		t.Splitter.Render(n.Orientation.String()),
		t.Subtle.Render("["+strings.Join(sizes, " ")+"]"))
	for i, child := range n.Children {
		t.renderNode(b, child, prefix+indent, i == len(n.Children)-1, active)
	}
}

func (t *Theme) renderArea(a *entity.AreaState, active string) string {
	tabs := make([]string, len(a.Widgets))
	for i, name := range a.Widgets {
		label := name
		if name == active {
			label += "*"
		}
		if i == a.CurrentIndex {
			tabs[i] = t.TabOpen.Render(label)
		} else {
			tabs[i] = t.Tab.Render(label)
		}
	}
	return t.Area.Render("area") + " " + strings.Join(tabs, " ")
}
