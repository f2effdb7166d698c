package port

import (
	"context"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// PreviewRenderer produces a thumbnail of a layout, stored with perspectives.
type PreviewRenderer interface {
	RenderPreview(ctx context.Context, state *entity.LayoutState, bounds entity.Rect) ([]byte, error)
}
