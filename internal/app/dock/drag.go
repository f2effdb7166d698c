package dock

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

// DragState is the phase of the drag state machine.
type DragState int

const (
	DragInactive DragState = iota
	DragStarted
	DragActive
	DragEnding
)

func (s DragState) String() string {
	switch s {
	case DragStarted:
		return "started"
	case DragActive:
		return "active"
	case DragEnding:
		return "ending"
	default:
		return "inactive"
	}
}

// DragConfig holds the drag thresholds.
type DragConfig struct {
	StartThreshold      int           // Pointer travel before a press becomes a drag
	GlobalEdgeThreshold int           // Distance from the screen edge that enables global docking
	GlobalMinDuration   time.Duration // Minimum gesture age before global docking
	GlobalMinDistance   float64       // Minimum pointer travel before global docking
	LocalSearchRadius   float64       // Nearest-area fallback radius

	// Screen is the rectangle the edge threshold is measured against.
	// Empty means the main container bounds.
	Screen entity.Rect
}

// DefaultDragConfig returns the default thresholds.
func DefaultDragConfig() DragConfig {
	return DragConfig{
		StartThreshold:      4,
		GlobalEdgeThreshold: 20,
		GlobalMinDuration:   500 * time.Millisecond,
		GlobalMinDistance:   50,
		LocalSearchRadius:   200,
	}
}

// DragContext describes the gesture in progress.
type DragContext struct {
	Widget   *entity.DockWidget        // Set for a tab drag
	Floating *entity.FloatingContainer // Set for a floating window drag

	StartTime time.Time
	StartPos  entity.Point
	LastTime  time.Time
	LastPos   entity.Point

	Distance float64 // Accumulated pointer travel in pixels
	Velocity float64 // Pixels per millisecond over the last move

	Global          bool
	TargetArea      *entity.DockArea
	TargetContainer *entity.DockContainer
	Location        entity.DockLocation

	floatingOrigin entity.Point
}

// Duration returns the age of the gesture at its last event.
func (c *DragContext) Duration() time.Duration {
	return c.LastTime.Sub(c.StartTime)
}

// TargetChange is emitted every time the highlighted drop target changes.
type TargetChange struct {
	Seq       int
	At        time.Time
	Pos       entity.Point
	Area      string // Area ID, empty for container-level targets
	Container string
	Location  entity.DockLocation
	Global    bool
}

// DropAction is what a release did.
type DropAction int

const (
	DropNone DropAction = iota
	DropInsert
	DropMerge
	DropTearOut
	DropMoveFloating
	DropCancelled
)

func (a DropAction) String() string {
	switch a {
	case DropInsert:
		return "insert"
	case DropMerge:
		return "merge"
	case DropTearOut:
		return "tear-out"
	case DropMoveFloating:
		return "move-floating"
	case DropCancelled:
		return "cancelled"
	default:
		return "none"
	}
}

// DropResult reports the outcome of Release.
type DropResult struct {
	Action    DropAction
	Area      *entity.DockArea
	Container *entity.DockContainer
	Location  entity.DockLocation
	Floating  *entity.FloatingContainer
	Err       error
}

// DragSystem turns pointer events into overlay hints and, on release,
// layout mutations.
type DragSystem struct {
	m     *Manager
	cfg   DragConfig
	state DragState
	ctx   *DragContext

	seq       int
	onChanged registry[func(TargetChange)]
}

func newDragSystem(m *Manager, cfg DragConfig) *DragSystem {
	return &DragSystem{m: m, cfg: cfg}
}

// Config returns the thresholds in use.
func (d *DragSystem) Config() DragConfig {
	return d.cfg
}

// SetConfig replaces the thresholds. A gesture in progress sees the new
// values from its next pointer event.
func (d *DragSystem) SetConfig(cfg DragConfig) {
	d.cfg = cfg
}

// State returns the current phase.
func (d *DragSystem) State() DragState {
	return d.state
}

// Armed reports whether a press is waiting to pass the start threshold.
func (d *DragSystem) Armed() bool {
	return d.ctx != nil && d.state == DragInactive
}

// Context returns a copy of the gesture context, or nil.
func (d *DragSystem) Context() *DragContext {
	if d.ctx == nil {
		return nil
	}
	c := *d.ctx
	return &c
}

// OnTargetChanged registers fn for every drop target change.
func (d *DragSystem) OnTargetChanged(fn func(TargetChange)) func() {
	return d.onChanged.add(fn)
}

// BeginDrag arms a tab drag of w at p.
func (d *DragSystem) BeginDrag(ctx context.Context, w *entity.DockWidget, p entity.Point, t time.Time) error {
	if !d.m.isRegistered(w) || w.Area == nil {
		return fmt.Errorf("%w: %s is not docked", entity.ErrWidgetNotFound, widgetName(w))
	}
	if !w.Features.CanMove() {
		return fmt.Errorf("%w: %q cannot move", entity.ErrFeatureDisabled, w.Name)
	}
	d.reset()
	d.ctx = &DragContext{
		Widget:    w,
		StartTime: t,
		StartPos:  p,
		LastTime:  t,
		LastPos:   p,
	}
	logging.FromContext(logging.WithWidget(ctx, w.Name)).Debug().
		Int("x", p.X).
		Int("y", p.Y).
		Msg("drag armed")
	return nil
}

// BeginFloatingDrag arms a drag of a floating window's title bar at p.
func (d *DragSystem) BeginFloatingDrag(ctx context.Context, f *entity.FloatingContainer, p entity.Point, t time.Time) error {
	if !d.m.isFloating(f) {
		return fmt.Errorf("%w: floating container is not part of this manager", entity.ErrInvalidTarget)
	}
	for _, w := range f.DockWidgets() {
		if !w.Features.CanMove() {
			return fmt.Errorf("%w: %q cannot move", entity.ErrFeatureDisabled, w.Name)
		}
	}
	d.reset()
	d.ctx = &DragContext{
		Floating:       f,
		StartTime:      t,
		StartPos:       p,
		LastTime:       t,
		LastPos:        p,
		floatingOrigin: entity.Point{X: f.Geometry.X, Y: f.Geometry.Y},
	}
	logging.FromContext(ctx).Debug().
		Str("floating", f.ID).
		Int("x", p.X).
		Int("y", p.Y).
		Msg("floating drag armed")
	return nil
}

// PointerMove feeds a pointer position into the gesture.
func (d *DragSystem) PointerMove(ctx context.Context, p entity.Point, t time.Time) error {
	if d.ctx == nil || d.state == DragEnding {
		return ErrDragInactive
	}
	c := d.ctx

	if d.state == DragInactive {
		if p.DistanceTo(c.StartPos) <= float64(d.cfg.StartThreshold) {
			return nil
		}
		d.track(p, t)
		d.start(ctx)
		return nil
	}

	d.state = DragActive
	d.track(p, t)
	if c.Floating != nil {
		c.Floating.MoveTo(entity.Point{
			X: c.floatingOrigin.X + p.X - c.StartPos.X,
			Y: c.floatingOrigin.Y + p.Y - c.StartPos.Y,
		})
	}
	d.updateTarget(ctx, p, t)
	return nil
}

func (d *DragSystem) track(p entity.Point, t time.Time) {
	c := d.ctx
	step := p.DistanceTo(c.LastPos)
	c.Distance += step
	if dt := t.Sub(c.LastTime); dt > 0 {
		c.Velocity = step / (float64(dt) / float64(time.Millisecond))
	}
	c.LastPos = p
	c.LastTime = t
}

// start enters Started: overlays switch to optimized rendering and the
// dragged widget's own area is hinted.
func (d *DragSystem) start(ctx context.Context) {
	d.state = DragStarted
	d.m.areaOverlay.SetOptimizedRendering(true)
	d.m.containerOverlay.SetOptimizedRendering(true)

	c := d.ctx
	logging.FromContext(ctx).Debug().
		Str("payload", payloadOf(c)).
		Msg("drag started")

	if c.Widget == nil || c.Widget.Area == nil {
		return
	}
	area := c.Widget.Area
	rect, ok := usecase.GeometryOf(usecase.ComputeGeometry(area.Container), area)
	if !ok {
		return
	}
	d.m.areaOverlay.SetAllowedAreas(area.AllowedAreas)
	loc := d.m.areaOverlay.ShowOverlay(rect, c.LastPos)
	d.setTarget(area, area.Container, loc, false, c.LastPos, c.LastTime)
}

// globalMode reports whether the gesture qualifies for global docking.
func (d *DragSystem) globalMode(p entity.Point) bool {
	c := d.ctx
	screen := d.cfg.Screen
	if screen.Empty() {
		screen = d.m.main.Bounds
	}
	return screen.NearEdge(p, d.cfg.GlobalEdgeThreshold) &&
		c.Duration() > d.cfg.GlobalMinDuration &&
		c.Distance > d.cfg.GlobalMinDistance
}

func (d *DragSystem) updateTarget(ctx context.Context, p entity.Point, t time.Time) {
	m := d.m

	if d.globalMode(p) {
		m.areaOverlay.HideOverlay()
		m.containerOverlay.SetGlobalMode(true)
		m.containerOverlay.SetAllowedAreas(entity.OuterDockLocations())
		loc := m.containerOverlay.ShowOverlay(m.main.Bounds, p)
		d.setTarget(nil, m.main, loc, true, p, t)
		return
	}
	m.containerOverlay.SetGlobalMode(false)

	var exclude *entity.FloatingContainer
	if d.ctx.Floating != nil {
		exclude = d.ctx.Floating
	}
	container := m.containerAt(p, exclude)
	if container == nil {
		m.areaOverlay.HideOverlay()
		m.containerOverlay.HideOverlay()
		d.setTarget(nil, nil, entity.NoDockLocation, false, p, t)
		return
	}

	if container.IsEmpty() {
		m.areaOverlay.HideOverlay()
		m.containerOverlay.SetAllowedAreas(entity.AllDockLocations())
		loc := m.containerOverlay.ShowOverlay(container.Bounds, p)
		d.setTarget(nil, container, loc, false, p, t)
		return
	}
	m.containerOverlay.HideOverlay()

	geoms := usecase.ComputeGeometry(container)
	area := usecase.AreaAt(geoms, p)
	if area == nil {
		area = usecase.NearestArea(geoms, p, d.cfg.LocalSearchRadius)
	}
	if area == nil {
		m.areaOverlay.HideOverlay()
		d.setTarget(nil, container, entity.NoDockLocation, false, p, t)
		return
	}
	rect, _ := usecase.GeometryOf(geoms, area)
	m.areaOverlay.SetAllowedAreas(area.AllowedAreas)
	loc := m.areaOverlay.ShowOverlay(rect, p)
	d.setTarget(area, container, loc, false, p, t)
	logging.FromContext(ctx).Trace().
		Str("area", area.ID).
		Str("location", string(loc)).
		Msg("drag over area")
}

func (d *DragSystem) setTarget(area *entity.DockArea, container *entity.DockContainer, loc entity.DockLocation, global bool, p entity.Point, t time.Time) {
	c := d.ctx
	if c.TargetArea == area && c.TargetContainer == container && c.Location == loc && c.Global == global {
		return
	}
	c.TargetArea = area
	c.TargetContainer = container
	c.Location = loc
	c.Global = global

	d.seq++
	change := TargetChange{Seq: d.seq, At: t, Pos: p, Location: loc, Global: global}
	if area != nil {
		change.Area = area.ID
	}
	if container != nil {
		change.Container = container.ID
	}
	for _, fn := range d.onChanged.snapshot() {
		fn(change)
	}
}

// Release ends the gesture at p and applies the drop.
func (d *DragSystem) Release(ctx context.Context, p entity.Point, t time.Time) DropResult {
	log := logging.FromContext(ctx)

	if d.ctx == nil || d.state == DragEnding {
		return DropResult{Action: DropNone, Err: ErrDragInactive}
	}
	if d.state == DragInactive {
		d.finish()
		return DropResult{Action: DropNone}
	}
	if p != d.ctx.LastPos {
		d.state = DragActive
		d.track(p, t)
		if d.ctx.Floating != nil {
			d.ctx.Floating.MoveTo(entity.Point{
				X: d.ctx.floatingOrigin.X + p.X - d.ctx.StartPos.X,
				Y: d.ctx.floatingOrigin.Y + p.Y - d.ctx.StartPos.Y,
			})
		}
		d.updateTarget(ctx, p, t)
	}

	d.state = DragEnding
	c := d.ctx
	result := d.drop(ctx, c, p)
	d.finish()

	log.Info().
		Str("payload", payloadOf(c)).
		Str("action", result.Action.String()).
		Str("location", string(result.Location)).
		AnErr("error", result.Err).
		Msg("drag released")
	return result
}

func payloadOf(c *DragContext) string {
	if c.Widget != nil {
		return c.Widget.Name
	}
	if c.Floating != nil {
		return c.Floating.ID
	}
	return ""
}

func (d *DragSystem) drop(ctx context.Context, c *DragContext, p entity.Point) DropResult {
	m := d.m
	hasTarget := c.Location != entity.NoDockLocation && c.TargetContainer != nil

	action := DropInsert
	if c.Location == entity.DockCenter {
		action = DropMerge
	}

	if c.Widget != nil {
		w := c.Widget
		switch {
		case hasTarget:
			area, err := m.MoveDockWidget(ctx, w, c.Location, c.TargetArea)
			if err != nil {
				return DropResult{Action: DropNone, Location: c.Location, Err: err}
			}
			return DropResult{Action: action, Area: area, Container: area.Container, Location: c.Location}
		case c.TargetContainer == nil && m.containerAt(p, nil) == nil && w.Features.CanFloat():
			geometry := entity.Rect{X: p.X, Y: p.Y, W: defaultFloatingGeometry.W, H: defaultFloatingGeometry.H}
			if w.Area != nil {
				if r, ok := usecase.GeometryOf(usecase.ComputeGeometry(w.Area.Container), w.Area); ok && !r.Empty() {
					geometry.W, geometry.H = r.W, r.H
				}
			}
			f, err := m.FloatDockWidget(ctx, w, geometry)
			if err != nil {
				return DropResult{Action: DropNone, Err: err}
			}
			return DropResult{Action: DropTearOut, Floating: f, Container: f.Container, Area: w.Area}
		default:
			return DropResult{Action: DropNone}
		}
	}

	f := c.Floating
	if hasTarget {
		if err := m.DockFloatingContainer(ctx, f, c.TargetArea, c.Location); err != nil {
			return DropResult{Action: DropNone, Location: c.Location, Floating: f, Err: err}
		}
		return DropResult{Action: action, Location: c.Location, Container: c.TargetContainer, Area: c.TargetArea}
	}
	if err := m.MoveFloatingContainer(ctx, f, entity.Point{X: f.Geometry.X, Y: f.Geometry.Y}); err != nil {
		return DropResult{Action: DropNone, Floating: f, Err: err}
	}
	return DropResult{Action: DropMoveFloating, Floating: f, Container: f.Container}
}

// Cancel aborts the gesture, putting a dragged floating window back where
// it started. It is legal with no gesture in progress.
func (d *DragSystem) Cancel(ctx context.Context) DropResult {
	if d.ctx == nil {
		d.state = DragInactive
		return DropResult{Action: DropCancelled}
	}
	c := d.ctx
	d.state = DragEnding
	if c.Floating != nil && d.m.isFloating(c.Floating) {
		c.Floating.MoveTo(c.floatingOrigin)
	}
	logging.FromContext(ctx).Debug().Str("payload", payloadOf(c)).Msg("drag cancelled")
	d.finish()
	return DropResult{Action: DropCancelled, Floating: c.Floating}
}

func (d *DragSystem) finish() {
	m := d.m
	m.areaOverlay.HideOverlay()
	m.containerOverlay.HideOverlay()
	m.areaOverlay.SetOptimizedRendering(false)
	m.containerOverlay.SetOptimizedRendering(false)
	m.containerOverlay.SetGlobalMode(false)
	d.ctx = nil
	d.state = DragInactive
}

func (d *DragSystem) reset() {
	if d.ctx != nil {
		d.finish()
	}
	d.seq = 0
}
