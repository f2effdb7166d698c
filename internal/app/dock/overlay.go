package dock

import (
	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
)

// Overlay computes drop indicators over a target rectangle and reports
// which drop zone the pointer is on.
//
// The area overlay draws a cross of five indicators around the target
// center; the container overlay draws the four edge indicators along the
// target frame plus a center one.
type Overlay struct {
	kind    port.OverlayKind
	style   port.StyleProvider
	painter port.OverlayPainter

	allowed   entity.DockLocations
	visible   bool
	target    entity.Rect
	location  entity.DockLocation
	optimized bool
	global    bool
	painted   bool
}

// NewOverlay creates a hidden overlay. painter may be nil.
func NewOverlay(kind port.OverlayKind, style port.StyleProvider, painter port.OverlayPainter) *Overlay {
	if style == nil {
		style = NewDefaultStyleProvider()
	}
	return &Overlay{
		kind:    kind,
		style:   style,
		painter: painter,
		allowed: entity.AllDockLocations(),
	}
}

// Kind returns which overlay this is.
func (o *Overlay) Kind() port.OverlayKind {
	return o.kind
}

// SetPainter installs the painter used by later repaints.
func (o *Overlay) SetPainter(p port.OverlayPainter) {
	o.painter = p
}

// SetAllowedAreas restricts the indicators offered. Nil allows every zone.
func (o *Overlay) SetAllowedAreas(locations entity.DockLocations) {
	if locations == nil {
		locations = entity.AllDockLocations()
	}
	o.allowed = append(entity.DockLocations(nil), locations...)
}

// AllowedAreas returns the zones the overlay offers, global mode applied.
func (o *Overlay) AllowedAreas() entity.DockLocations {
	if !o.global {
		return append(entity.DockLocations(nil), o.allowed...)
	}
	var out entity.DockLocations
	for _, l := range o.allowed {
		if l.IsEdge() {
			out = append(out, l)
		}
	}
	return out
}

// SetGlobalMode limits the overlay to the outer edges of its target.
func (o *Overlay) SetGlobalMode(global bool) {
	o.global = global
}

// GlobalMode reports whether only outer edges are offered.
func (o *Overlay) GlobalMode() bool {
	return o.global
}

// SetOptimizedRendering skips repaints that would draw the same frame.
// The drag system enables it for the duration of a gesture.
func (o *Overlay) SetOptimizedRendering(optimized bool) {
	o.optimized = optimized
}

// OptimizedRendering reports whether redundant repaints are skipped.
func (o *Overlay) OptimizedRendering() bool {
	return o.optimized
}

// Visible reports whether the overlay is shown.
func (o *Overlay) Visible() bool {
	return o.visible
}

// Target returns the rectangle the overlay is shown over.
func (o *Overlay) Target() entity.Rect {
	return o.target
}

// Location returns the highlighted drop zone, or NoDockLocation.
func (o *Overlay) Location() entity.DockLocation {
	return o.location
}

// ShowOverlay shows the overlay over target and highlights the zone under p.
// It returns that zone, or NoDockLocation when p is on no allowed indicator.
func (o *Overlay) ShowOverlay(target entity.Rect, p entity.Point) entity.DockLocation {
	location := o.dropLocation(target, p)
	changed := !o.visible || o.target != target || o.location != location
	o.visible = true
	o.target = target
	o.location = location
	if changed || !o.optimized || !o.painted {
		o.paint()
	}
	return location
}

// HideOverlay hides the overlay and clears the highlighted zone.
func (o *Overlay) HideOverlay() {
	wasVisible := o.visible
	o.visible = false
	o.location = entity.NoDockLocation
	o.painted = false
	if wasVisible && o.painter != nil {
		o.painter.ClearOverlay(o.kind)
	}
}

// DropLocationAt returns the allowed zone under p for the current target
// without repainting.
func (o *Overlay) DropLocationAt(p entity.Point) entity.DockLocation {
	if !o.visible {
		return entity.NoDockLocation
	}
	return o.dropLocation(o.target, p)
}

func (o *Overlay) dropLocation(target entity.Rect, p entity.Point) entity.DockLocation {
	if target.Empty() {
		return entity.NoDockLocation
	}
	allowed := o.AllowedAreas()
	for _, ind := range o.indicators(target) {
		if allowed.Contains(ind.Location) && ind.Rect.Contains(p) {
			return ind.Location
		}
	}
	return entity.NoDockLocation
}

// Indicators returns the allowed indicators for the current target.
func (o *Overlay) Indicators() []port.OverlayIndicator {
	if !o.visible {
		return nil
	}
	allowed := o.AllowedAreas()
	var out []port.OverlayIndicator
	for _, ind := range o.indicators(o.target) {
		if !allowed.Contains(ind.Location) {
			continue
		}
		ind.Active = ind.Location == o.location
		out = append(out, ind)
	}
	return out
}

// indicators lays out all five indicators over target in paint order.
func (o *Overlay) indicators(target entity.Rect) []port.OverlayIndicator {
	style := o.style.DockStyle()
	size := style.IndicatorSize
	c := target.Center()

	at := func(x, y int) entity.Rect {
		return entity.Rect{X: x, Y: y, W: size, H: size}
	}
	centered := func(p entity.Point) entity.Rect {
		return at(p.X-size/2, p.Y-size/2)
	}

	out := make([]port.OverlayIndicator, 0, 5)
	for _, loc := range entity.AllDockLocations() {
		var r entity.Rect
		if o.kind == port.OverlayContainer {
			margin := style.ContainerMargin
			switch loc {
			case entity.DockTop:
				r = at(c.X-size/2, target.Y+margin)
			case entity.DockBottom:
				r = at(c.X-size/2, target.Y+target.H-margin-size)
			case entity.DockLeft:
				r = at(target.X+margin, c.Y-size/2)
			case entity.DockRight:
				r = at(target.X+target.W-margin-size, c.Y-size/2)
			default:
				r = centered(c)
			}
		} else {
			spacing := style.IndicatorSpacing
			switch loc {
			case entity.DockTop:
				r = centered(entity.Point{X: c.X, Y: c.Y - spacing})
			case entity.DockBottom:
				r = centered(entity.Point{X: c.X, Y: c.Y + spacing})
			case entity.DockLeft:
				r = centered(entity.Point{X: c.X - spacing, Y: c.Y})
			case entity.DockRight:
				r = centered(entity.Point{X: c.X + spacing, Y: c.Y})
			default:
				r = centered(c)
			}
		}
		out = append(out, port.OverlayIndicator{Location: loc, Rect: r})
	}
	return out
}

// DropPreview returns the region dropped content would occupy at location.
// Area drops take half of the target, container drops a third.
func (o *Overlay) DropPreview(target entity.Rect, location entity.DockLocation) entity.Rect {
	div := 2
	if o.kind == port.OverlayContainer {
		div = 3
	}
	switch location {
	case entity.DockLeft:
		return entity.Rect{X: target.X, Y: target.Y, W: target.W / div, H: target.H}
	case entity.DockRight:
		w := target.W / div
		return entity.Rect{X: target.X + target.W - w, Y: target.Y, W: w, H: target.H}
	case entity.DockTop:
		return entity.Rect{X: target.X, Y: target.Y, W: target.W, H: target.H / div}
	case entity.DockBottom:
		h := target.H / div
		return entity.Rect{X: target.X, Y: target.Y + target.H - h, W: target.W, H: h}
	case entity.DockCenter:
		return target
	default:
		return entity.Rect{}
	}
}

// Frame returns what the painter would draw right now.
func (o *Overlay) Frame() port.OverlayFrame {
	return port.OverlayFrame{
		Kind:        o.kind,
		Target:      o.target,
		Indicators:  o.Indicators(),
		DropPreview: o.DropPreview(o.target, o.location),
		Location:    o.location,
		Optimized:   o.optimized,
		Style:       o.style.DockStyle(),
	}
}

func (o *Overlay) paint() {
	o.painted = true
	if o.painter == nil {
		return
	}
	o.painter.PaintOverlay(o.Frame())
}
