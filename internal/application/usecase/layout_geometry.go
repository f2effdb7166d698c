package usecase

import (
	"math"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// AreaGeometry is the pixel rectangle assigned to an area.
type AreaGeometry struct {
	Area  *entity.DockArea
	Rect  entity.Rect
	Depth int
}

// ComputeGeometry lays out every area of c inside c.Bounds. Splitter shares are
// converted to whole pixels; the last child absorbs the rounding remainder.
func ComputeGeometry(c *entity.DockContainer) []AreaGeometry {
	if c == nil || c.Root == nil {
		return nil
	}
	var out []AreaGeometry
	layoutNode(c.Root, c.Bounds, 0, &out)
	return out
}

func layoutNode(n *entity.LayoutNode, r entity.Rect, depth int, out *[]AreaGeometry) {
	if n.IsLeaf() {
		*out = append(*out, AreaGeometry{Area: n.Area, Rect: r, Depth: depth})
		return
	}

	total := r.W
	if n.Orientation == entity.OrientationVertical {
		total = r.H
	}

	offset := 0
	for i, child := range n.Children {
		length := total - offset
		if i < len(n.Children)-1 {
			share := 0.0
			if i < len(n.Sizes) {
				share = n.Sizes[i]
			}
			length = int(math.Round(share * float64(total)))
			if offset+length > total {
				length = total - offset
			}
		}

		childRect := entity.Rect{X: r.X + offset, Y: r.Y, W: length, H: r.H}
		if n.Orientation == entity.OrientationVertical {
			childRect = entity.Rect{X: r.X, Y: r.Y + offset, W: r.W, H: length}
		}
		layoutNode(child, childRect, depth+1, out)
		offset += length
	}
}

// GeometryOf returns the rectangle of area, or false when it is not laid out.
func GeometryOf(geoms []AreaGeometry, area *entity.DockArea) (entity.Rect, bool) {
	for _, g := range geoms {
		if g.Area == area {
			return g.Rect, true
		}
	}
	return entity.Rect{}, false
}

// AreaAt returns the innermost area whose rectangle contains p.
func AreaAt(geoms []AreaGeometry, p entity.Point) *entity.DockArea {
	var best *AreaGeometry
	for i := range geoms {
		g := &geoms[i]
		if !g.Rect.Contains(p) {
			continue
		}
		if best == nil ||
			g.Rect.Area() < best.Rect.Area() ||
			(g.Rect.Area() == best.Rect.Area() && g.Depth > best.Depth) {
			best = g
		}
	}
	if best == nil {
		return nil
	}
	return best.Area
}

// NearestArea returns the area whose center is closest to p within radius.
// Ties go to the first area in visual order.
func NearestArea(geoms []AreaGeometry, p entity.Point, radius float64) *entity.DockArea {
	var best *entity.DockArea
	bestDist := math.Inf(1)
	for _, g := range geoms {
		if g.Rect.Empty() {
			continue
		}
		d := g.Rect.Center().DistanceTo(p)
		if d <= radius && d < bestDist {
			best = g.Area
			bestDist = d
		}
	}
	return best
}
