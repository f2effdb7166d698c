package port

import "github.com/bnema/dockyard/internal/domain/entity"

// OverlayKind distinguishes the two overlay instances.
type OverlayKind int

const (
	OverlayArea OverlayKind = iota
	OverlayContainer
)

// String returns the overlay name.
func (k OverlayKind) String() string {
	if k == OverlayContainer {
		return "container"
	}
	return "area"
}

// OverlayIndicator is one drop zone drawn by an overlay.
type OverlayIndicator struct {
	Location entity.DockLocation
	Rect     entity.Rect
	Active   bool
}

// OverlayFrame describes everything a painter needs to draw one overlay.
type OverlayFrame struct {
	Kind       OverlayKind
	Target     entity.Rect
	Indicators []OverlayIndicator
	// DropPreview is the region the dragged content would occupy.
	DropPreview entity.Rect
	Location    entity.DockLocation
	Optimized   bool
	Style       DockStyle
}

// OverlayPainter draws overlay hints on behalf of the engine.
type OverlayPainter interface {
	PaintOverlay(frame OverlayFrame)
	ClearOverlay(kind OverlayKind)
}
